// internal/input/action.go
package input

// Action — логическое действие, к которому привязаны клавиши устройства.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	MoveUp
	MoveDown
	CameraLeft
	CameraRight
	CameraUp
	CameraDown
	ZoomOut
	ZoomIn
	ToggleLock
	Fire
	Pause
	Quit
	actionCount
)

var actionNames = [...]string{
	MoveLeft:    "move_left",
	MoveRight:   "move_right",
	MoveUp:      "move_up",
	MoveDown:    "move_down",
	CameraLeft:  "camera_left",
	CameraRight: "camera_right",
	CameraUp:    "camera_up",
	CameraDown:  "camera_down",
	ZoomOut:     "zoom_out",
	ZoomIn:      "zoom_in",
	ToggleLock:  "toggle_lock",
	Fire:        "fire",
	Pause:       "pause",
	Quit:        "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}
