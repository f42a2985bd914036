// internal/system/camera.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/event"
	"go-topdown-arena/internal/input"
	"go-topdown-arena/internal/utils"
)

// CameraSystem — машина состояний камеры: Locked / Unlocked, панорамирование и зум.
type CameraSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	cfg             config.CameraConfig
	movementMode    config.MovementMode
	logger          *zap.Logger
}

// NewCameraSystem: movementMode тот же, что у ввода, чтобы закреплённая камера не отставала от игрока по диагонали.
func NewCameraSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cfg config.CameraConfig, movementMode config.MovementMode, logger *zap.Logger) *CameraSystem {
	return &CameraSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
		movementMode:    movementMode,
		logger:          logger.Named("camera"),
	}
}

// Update читает уже обновлённую позицию игрока, поэтому идёт последней фазой тика.
func (s *CameraSystem) Update(deltaTime float64, dev input.Device) {
	cam, camT, ok := s.ecs.Camera()
	if !ok {
		return
	}
	_, pt, hasPlayer := s.ecs.Player()

	camT.Translate(s.panDirection(cam, dev).Mul(float32(deltaTime) * s.cfg.PanSpeed))

	if dev.JustPressed(input.ToggleLock) && hasPlayer {
		s.toggle(cam, camT, pt)
	}
	if cam.Locked && s.cfg.LockedPan == config.LockedPanSnap && hasPlayer {
		camT.SetXY(pt.XY())
	}

	if dev.Held(input.ZoomOut) {
		cam.Zoom += s.cfg.ZoomStep
	}
	if dev.Held(input.ZoomIn) {
		cam.Zoom -= s.cfg.ZoomStep
	}
	cam.Zoom = utils.Clamp(cam.Zoom, config.MinZoom, s.cfg.MaxZoom)
}

// panDirection: стрелки двигают камеру всегда, а закреплённая в режиме mirror
// ещё и повторяет клавиши движения игрока. Диагональ суммируется так же, как у игрока.
func (s *CameraSystem) panDirection(cam *component.Camera, dev input.Device) mgl32.Vec3 {
	mirror := cam.Locked && s.cfg.LockedPan == config.LockedPanMirror
	held := func(camKey, moveKey input.Action) bool {
		return dev.Held(camKey) || (mirror && dev.Held(moveKey))
	}

	var dir mgl32.Vec3
	if held(input.CameraLeft, input.MoveLeft) {
		dir[0] -= 1
	}
	if held(input.CameraRight, input.MoveRight) {
		dir[0] += 1
	}
	if held(input.CameraUp, input.MoveUp) {
		dir[1] += 1
	}
	if held(input.CameraDown, input.MoveDown) {
		dir[1] -= 1
	}
	if s.movementMode == config.MovementNormalized && dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return dir
}

// toggle переключает состояние и центрирует камеру на игроке. Z камеры не меняется.
func (s *CameraSystem) toggle(cam *component.Camera, camT, pt *component.Transform) {
	cam.Locked = !cam.Locked
	camT.SetXY(pt.XY())
	s.logger.Debug("camera toggled",
		zap.Stringer("mode", cam.Mode()),
		zap.Float32s("position", camT.Position[:]),
	)
	s.eventDispatcher.Dispatch(event.Event{Type: event.CameraLockToggled, Data: cam.Mode()})
}
