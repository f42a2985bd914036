package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/event"
	"go-topdown-arena/internal/types"
)

type projectileFixture struct {
	ecs       *entity.ECS
	queue     *event.SpawnQueue
	sys       *ProjectileSystem
	spawned   []types.EntityID
	despawned []types.EntityID
}

func newProjectileFixture(t *testing.T, cfg config.ProjectileConfig) *projectileFixture {
	t.Helper()
	f := &projectileFixture{ecs: newTestWorld(0, 0), queue: event.NewSpawnQueue()}
	d := event.NewDispatcher()
	d.Subscribe(event.ListenerFunc(func(e event.Event) {
		switch e.Type {
		case event.ProjectileSpawned:
			f.spawned = append(f.spawned, e.Data.(types.EntityID))
		case event.ProjectileDespawned:
			f.despawned = append(f.despawned, e.Data.(types.EntityID))
		}
	}), event.ProjectileSpawned, event.ProjectileDespawned)
	f.sys = NewProjectileSystem(f.ecs, f.queue, d, cfg, zaptest.NewLogger(t))
	return f
}

func TestSpawnDrainsQueueInArrivalOrder(t *testing.T) {
	f := newProjectileFixture(t, config.ProjectileConfig{})
	f.queue.Push(event.SpawnEvent{Origin: mgl32.Vec2{1, 0}, Direction: mgl32.Vec2{1, 0}, Angle: 0.5})
	f.queue.Push(event.SpawnEvent{Origin: mgl32.Vec2{2, 0}, Direction: mgl32.Vec2{0, 1}, Angle: 1.5})

	require.Equal(t, 2, f.sys.Spawn())
	assert.Zero(t, f.queue.Len(), "queue must not carry events over")
	require.Len(t, f.spawned, 2)

	first, second := f.ecs.Projectiles[f.spawned[0]], f.ecs.Projectiles[f.spawned[1]]
	assert.Less(t, first.Seq, second.Seq)
	assert.Equal(t, mgl32.Vec2{1, 0}, first.Direction)
	assert.Equal(t, float32(config.ProjectileSpeed), first.Speed)
	assert.Equal(t, float32(1.5), f.ecs.Transforms[f.spawned[1]].Rotation)
	assert.Equal(t, float32(2), f.ecs.Transforms[f.spawned[1]].Position.X())
	assert.Contains(t, f.ecs.Renderables, f.spawned[0])
}

func TestProjectileIntegration(t *testing.T) {
	for _, dt := range []float64{0, 0.001, 0.016, 0.1, 0.5} {
		f := newProjectileFixture(t, config.ProjectileConfig{})
		dir := mgl32.Vec2{3, 4}.Normalize()
		f.queue.Push(event.SpawnEvent{Origin: mgl32.Vec2{10, -5}, Direction: dir})
		f.sys.Spawn()
		id := f.spawned[0]
		before := f.ecs.Transforms[id].Position

		f.sys.Update(dt)

		after := f.ecs.Transforms[id].Position
		step := float32(config.ProjectileSpeed * dt)
		assert.InDelta(t, before.X()+dir.X()*step, after.X(), 1e-3, "dt=%v", dt)
		assert.InDelta(t, before.Y()+dir.Y()*step, after.Y(), 1e-3, "dt=%v", dt)
		assert.Equal(t, before.Z(), after.Z())
	}
}

func TestProjectilesDespawnPastMaxTravel(t *testing.T) {
	f := newProjectileFixture(t, config.ProjectileConfig{MaxTravel: 150})
	f.queue.Push(event.SpawnEvent{Direction: mgl32.Vec2{1, 0}})
	f.sys.Spawn()
	id := f.spawned[0]

	f.sys.Update(0.1) // 100 единиц
	assert.Contains(t, f.ecs.Projectiles, id)

	f.sys.Update(0.1) // 200 единиц
	assert.NotContains(t, f.ecs.Projectiles, id)
	assert.NotContains(t, f.ecs.Transforms, id)
	assert.Equal(t, []types.EntityID{id}, f.despawned)
}

func TestProjectilesCappedOldestFirst(t *testing.T) {
	f := newProjectileFixture(t, config.ProjectileConfig{MaxLive: 2})
	for i := 0; i < 3; i++ {
		f.queue.Push(event.SpawnEvent{Direction: mgl32.Vec2{0, 1}})
	}
	f.sys.Spawn()
	f.sys.Update(0.016)

	assert.Len(t, f.ecs.Projectiles, 2)
	assert.NotContains(t, f.ecs.Projectiles, f.spawned[0])
	assert.Contains(t, f.ecs.Projectiles, f.spawned[2])
}

func TestProjectilesWithoutDespawnPolicyPersist(t *testing.T) {
	f := newProjectileFixture(t, config.ProjectileConfig{})
	f.queue.Push(event.SpawnEvent{Direction: mgl32.Vec2{1, 0}})
	f.sys.Spawn()
	for i := 0; i < 100; i++ {
		f.sys.Update(1)
	}
	assert.Len(t, f.ecs.Projectiles, 1)
	assert.Empty(t, f.despawned)
}
