// internal/system/movement.go
package system

import (
	"go-topdown-arena/internal/entity"
)

// MovementSystem двигает игрока по направлению, записанному фазой ввода.
// Ускорения нет: скорость меняется мгновенно.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	player, pt, ok := s.ecs.Player()
	if !ok {
		return
	}
	pt.Translate(player.MoveDir.Mul(player.Speed * float32(deltaTime)))
}
