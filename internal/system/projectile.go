// internal/system/projectile.go
package system

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/event"
	"go-topdown-arena/internal/types"
)

// ProjectileSystem создаёт снаряды из очереди выстрелов, двигает их и удаляет улетевшие.
type ProjectileSystem struct {
	ecs             *entity.ECS
	queue           *event.SpawnQueue
	eventDispatcher *event.Dispatcher
	maxTravel       float32
	maxLive         int
	seq             uint64
	logger          *zap.Logger
}

func NewProjectileSystem(ecs *entity.ECS, queue *event.SpawnQueue, eventDispatcher *event.Dispatcher, cfg config.ProjectileConfig, logger *zap.Logger) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		queue:           queue,
		eventDispatcher: eventDispatcher,
		maxTravel:       cfg.MaxTravel,
		maxLive:         cfg.MaxLive,
		logger:          logger.Named("projectile"),
	}
}

// Spawn полностью опустошает очередь: один снаряд на событие, в порядке поступления.
func (s *ProjectileSystem) Spawn() int {
	events := s.queue.Drain()
	for _, ev := range events {
		id := s.ecs.NewEntity()
		s.seq++
		t := component.NewTransform(ev.Origin.X(), ev.Origin.Y(), 0)
		t.Rotation = ev.Angle
		s.ecs.Transforms[id] = t
		s.ecs.Projectiles[id] = &component.Projectile{
			Direction: ev.Direction,
			Speed:     config.ProjectileSpeed,
			Angle:     ev.Angle,
			Origin:    ev.Origin,
			Seq:       s.seq,
		}
		s.ecs.Renderables[id] = &component.Renderable{
			Color:  config.ProjectileColor,
			Radius: config.ProjectileRadius,
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileSpawned, Data: id})
	}
	return len(events)
}

// Update двигает все снаряды: position += direction * speed * dt, затем применяет политику удаления.
func (s *ProjectileSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)
	for id, proj := range s.ecs.Projectiles {
		t := s.ecs.Transforms[id]
		if t == nil {
			s.removeProjectile(id)
			continue
		}
		step := proj.Direction.Mul(proj.Speed * dt)
		t.Translate(mgl32.Vec3{step.X(), step.Y(), 0})
	}
	s.despawn()
}

// despawn удаляет снаряды дальше maxTravel от точки появления,
// а затем самые старые, если живых больше maxLive.
func (s *ProjectileSystem) despawn() {
	if s.maxTravel > 0 {
		limit := s.maxTravel * s.maxTravel
		for id, proj := range s.ecs.Projectiles {
			d := s.ecs.Transforms[id].XY().Sub(proj.Origin)
			if d.Dot(d) > limit {
				s.removeProjectile(id)
			}
		}
	}

	excess := len(s.ecs.Projectiles) - s.maxLive
	if s.maxLive <= 0 || excess <= 0 {
		return
	}
	ids := make([]types.EntityID, 0, len(s.ecs.Projectiles))
	for id := range s.ecs.Projectiles {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b types.EntityID) int {
		sa, sb := s.ecs.Projectiles[a].Seq, s.ecs.Projectiles[b].Seq
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	})
	for _, id := range ids[:excess] {
		s.removeProjectile(id)
	}
	s.logger.Debug("projectile cap reached", zap.Int("removed", excess), zap.Int("max_live", s.maxLive))
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileDespawned, Data: id})
}
