package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/types"
)

const (
	testWidth  = 800
	testHeight = 600
)

// newTestWorld создаёт мир с игроком в (x, y) и камерой в начале координат.
func newTestWorld(x, y float32) *entity.ECS {
	ecs := entity.NewECS()
	ecs.PlayerID = ecs.NewEntity()
	ecs.Transforms[ecs.PlayerID] = component.NewTransform(x, y, config.PlayerDepth)
	ecs.Players[ecs.PlayerID] = &component.Player{
		Speed:  config.PlayerSpeed,
		Radius: config.PlayerRadius,
		Gun:    component.GunGlock,
	}

	ecs.CameraID = ecs.NewEntity()
	ecs.Transforms[ecs.CameraID] = component.NewTransform(0, 0, config.CameraDepth)
	ecs.Cameras[ecs.CameraID] = &component.Camera{Zoom: 1, Locked: true}
	return ecs
}

func addWalker(ecs *entity.ECS, pos mgl32.Vec2, speed float32, cmds ...component.Command) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = component.NewTransform(pos.X(), pos.Y(), 0.5)
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.CommandQueues[id] = component.NewCommandQueue(cmds...)
	return id
}
