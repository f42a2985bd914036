// internal/entity/ecs.go
package entity

import (
	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/types"
)

// ECS хранит все сущности симуляции в таблицах, индексированных по EntityID.
// Поведения здесь нет, только данные.
type ECS struct {
	NextID        types.EntityID
	Transforms    map[types.EntityID]*component.Transform
	Players       map[types.EntityID]*component.Player
	Projectiles   map[types.EntityID]*component.Projectile
	Cameras       map[types.EntityID]*component.Camera
	Velocities    map[types.EntityID]*component.Velocity
	CommandQueues map[types.EntityID]*component.CommandQueue
	Renderables   map[types.EntityID]*component.Renderable

	PlayerID types.EntityID // ID сущности игрока
	CameraID types.EntityID // ID главной камеры
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Transforms:    make(map[types.EntityID]*component.Transform),
		Players:       make(map[types.EntityID]*component.Player),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Cameras:       make(map[types.EntityID]*component.Camera),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		CommandQueues: make(map[types.EntityID]*component.CommandQueue),
		Renderables:   make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Players, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Cameras, id)
	delete(ecs.Velocities, id)
	delete(ecs.CommandQueues, id)
	delete(ecs.Renderables, id)
	if ecs.PlayerID == id {
		ecs.PlayerID = types.NoEntity
	}
	if ecs.CameraID == id {
		ecs.CameraID = types.NoEntity
	}
}

// Player возвращает компоненты игрока. ok == false, если игрока нет.
func (ecs *ECS) Player() (*component.Player, *component.Transform, bool) {
	p, hasPlayer := ecs.Players[ecs.PlayerID]
	t, hasTransform := ecs.Transforms[ecs.PlayerID]
	if !hasPlayer || !hasTransform {
		return nil, nil, false
	}
	return p, t, true
}

// Camera возвращает компоненты главной камеры. ok == false, если камеры нет.
func (ecs *ECS) Camera() (*component.Camera, *component.Transform, bool) {
	c, hasCamera := ecs.Cameras[ecs.CameraID]
	t, hasTransform := ecs.Transforms[ecs.CameraID]
	if !hasCamera || !hasTransform {
		return nil, nil, false
	}
	return c, t, true
}
