// internal/system/kinematics.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-topdown-arena/internal/entity"
)

// KinematicsSystem интегрирует скорость скриптовых сущностей. Столкновений нет.
type KinematicsSystem struct {
	ecs *entity.ECS
}

func NewKinematicsSystem(ecs *entity.ECS) *KinematicsSystem {
	return &KinematicsSystem{ecs: ecs}
}

func (s *KinematicsSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)
	for id, vel := range s.ecs.Velocities {
		if t, ok := s.ecs.Transforms[id]; ok {
			t.Translate(mgl32.Vec3{vel.Value.X() * dt, vel.Value.Y() * dt, 0})
		}
	}
}
