// internal/component/camera.go
package component

// Camera — ортографическая камера.
type Camera struct {
	Zoom   float32 // масштаб проекции, больше — видно больше мира
	Locked bool
}

// CameraMode — состояние камеры.
type CameraMode int

const (
	CameraLocked CameraMode = iota
	CameraUnlocked
)

func (m CameraMode) String() string {
	if m == CameraLocked {
		return "locked"
	}
	return "unlocked"
}

// Mode возвращает текущее состояние камеры.
func (c *Camera) Mode() CameraMode {
	if c.Locked {
		return CameraLocked
	}
	return CameraUnlocked
}
