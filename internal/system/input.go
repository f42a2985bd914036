// internal/system/input.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/event"
	"go-topdown-arena/internal/input"
)

// InputSystem переводит состояние устройства в направление движения игрока
// и, при выстреле, в SpawnEvent.
type InputSystem struct {
	ecs          *entity.ECS
	queue        *event.SpawnQueue
	movementMode config.MovementMode
	fireMode     config.FireMode
	logger       *zap.Logger
}

func NewInputSystem(ecs *entity.ECS, queue *event.SpawnQueue, cfg config.InputConfig, logger *zap.Logger) *InputSystem {
	return &InputSystem{
		ecs:          ecs,
		queue:        queue,
		movementMode: cfg.MovementMode,
		fireMode:     cfg.FireMode,
		logger:       logger.Named("input"),
	}
}

// MoveDirection суммирует единичные векторы нажатых клавиш движения.
func MoveDirection(dev input.Device, mode config.MovementMode) mgl32.Vec3 {
	var dir mgl32.Vec3
	if dev.Held(input.MoveLeft) {
		dir[0] -= 1
	}
	if dev.Held(input.MoveRight) {
		dir[0] += 1
	}
	if dev.Held(input.MoveUp) {
		dir[1] += 1
	}
	if dev.Held(input.MoveDown) {
		dir[1] -= 1
	}
	if mode == config.MovementNormalized && dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return dir
}

func (s *InputSystem) Update(dev input.Device) {
	player, pt, ok := s.ecs.Player()
	if !ok {
		return
	}
	player.MoveDir = MoveDirection(dev, s.movementMode)

	if s.fireTriggered(dev) {
		s.fire(dev, player, pt)
	}
}

func (s *InputSystem) fireTriggered(dev input.Device) bool {
	if s.fireMode == config.FireContinuous {
		return dev.Held(input.Fire)
	}
	return dev.JustPressed(input.Fire)
}

// fire ставит в очередь SpawnEvent. Без камеры, без курсора или при клике
// точно в игрока выстрел пропускается.
func (s *InputSystem) fire(dev input.Device, player *component.Player, pt *component.Transform) {
	cam, camT, ok := s.ecs.Camera()
	if !ok {
		return
	}
	cx, cy, ok := dev.Cursor()
	if !ok {
		return
	}
	w, h := dev.Viewport()
	if w <= 0 || h <= 0 || cx < 0 || cy < 0 || cx > float32(w) || cy > float32(h) {
		return
	}

	click := ScreenToWorld(cx, cy, cam, camT, w, h)
	playerPos := pt.XY()
	dir, angle, ok := Aim(playerPos, click)
	if !ok {
		s.logger.Debug("fire skipped: click on player", zap.Float32s("player_pos", playerPos[:]))
		return
	}

	s.queue.Push(event.SpawnEvent{
		Origin:    playerPos.Add(dir.Mul(player.Radius)),
		Direction: dir,
		Angle:     angle,
	})
	s.logger.Debug("fire event",
		zap.Float32s("player_pos", playerPos[:]),
		zap.Float32s("click_pos", click[:]),
		zap.Float32("angle", angle),
	)
}
