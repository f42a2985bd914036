package event

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnQueueDrainKeepsArrivalOrder(t *testing.T) {
	q := NewSpawnQueue()
	for i := 0; i < 3; i++ {
		q.Push(SpawnEvent{Origin: mgl32.Vec2{float32(i), 0}, Direction: mgl32.Vec2{1, 0}})
	}
	// дубликаты не схлопываются
	q.Push(SpawnEvent{Origin: mgl32.Vec2{2, 0}, Direction: mgl32.Vec2{1, 0}})

	got := q.Drain()
	require.Len(t, got, 4)
	for i, want := range []float32{0, 1, 2, 2} {
		assert.Equal(t, want, got[i].Origin.X())
	}
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Drain())
}

func TestSpawnQueueDrainedSliceIsIndependent(t *testing.T) {
	q := NewSpawnQueue()
	q.Push(SpawnEvent{Angle: 1})
	first := q.Drain()
	q.Push(SpawnEvent{Angle: 2})

	require.Len(t, first, 1)
	assert.Equal(t, float32(1), first[0].Angle)
}

func TestDispatcherDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Subscribe(ListenerFunc(func(Event) { calls = append(calls, "a") }), ProjectileSpawned, ProjectileDespawned)
	d.Subscribe(ListenerFunc(func(Event) { calls = append(calls, "b") }), ProjectileSpawned)

	d.Dispatch(Event{Type: ProjectileSpawned})
	d.Dispatch(Event{Type: ProjectileDespawned})
	d.Dispatch(Event{Type: CommandCompleted})

	assert.Equal(t, []string{"a", "b", "a"}, calls)
}
