package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/event"
)

func newCommandSystem(t *testing.T, ecs *entity.ECS, arrival config.ArrivalMode) (*CommandSystem, *[]event.Event) {
	t.Helper()
	var seen []event.Event
	d := event.NewDispatcher()
	d.Subscribe(event.ListenerFunc(func(e event.Event) { seen = append(seen, e) }),
		event.CommandCompleted, event.CommandFailed)
	cfg := config.CommandConfig{Arrival: arrival, Epsilon: config.ArrivalEpsilon}
	return NewCommandSystem(ecs, d, cfg, zaptest.NewLogger(t)), &seen
}

func TestMoveToCurrentPositionCompletesFirstTick(t *testing.T) {
	for _, mode := range []config.ArrivalMode{config.ArrivalExact, config.ArrivalTolerant} {
		ecs := entity.NewECS()
		pos := mgl32.Vec2{12.5, -3}
		id := addWalker(ecs, pos, 50, component.MoveTo{Target: pos})
		s, seen := newCommandSystem(t, ecs, mode)

		require.NoError(t, s.Update(0.016))

		assert.Zero(t, ecs.CommandQueues[id].Len(), "mode=%s", mode)
		require.Len(t, *seen, 1)
		assert.Equal(t, event.CommandCompleted, (*seen)[0].Type)
	}
}

func TestMoveToExactCompletesWhenPredictionLands(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, mgl32.Vec2{0, 0}, 10, component.MoveTo{Target: mgl32.Vec2{20, 0}})
	s, _ := newCommandSystem(t, ecs, config.ArrivalExact)
	k := NewKinematicsSystem(ecs)

	require.NoError(t, s.Update(1))
	assert.Equal(t, mgl32.Vec2{10, 0}, ecs.Velocities[id].Value)
	k.Update(1)
	assert.Equal(t, 1, ecs.CommandQueues[id].Len())

	// (10, 0) + (10, 0) == цель: команда снята, скорость обнулена.
	require.NoError(t, s.Update(1))
	k.Update(1)

	assert.Zero(t, ecs.CommandQueues[id].Len())
	assert.Equal(t, mgl32.Vec2{}, ecs.Velocities[id].Value)
	assert.Equal(t, mgl32.Vec2{10, 0}, ecs.Transforms[id].XY())
	assert.Equal(t, float32(0.5), ecs.Transforms[id].Position.Z())
}

func TestMoveToExactDoesNotTeleportOnCompletion(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, mgl32.Vec2{0, 0}, 120, component.MoveTo{Target: mgl32.Vec2{120, 0}})
	ecs.Velocities[id].Value = mgl32.Vec2{120, 0}
	s, _ := newCommandSystem(t, ecs, config.ArrivalExact)
	k := NewKinematicsSystem(ecs)

	require.NoError(t, s.Update(1.0/60))
	k.Update(1.0 / 60)

	assert.Zero(t, ecs.CommandQueues[id].Len())
	assert.Equal(t, mgl32.Vec2{0, 0}, ecs.Transforms[id].XY())
	assert.Equal(t, mgl32.Vec2{}, ecs.Velocities[id].Value)
}

func TestMoveToTolerantConverges(t *testing.T) {
	ecs := entity.NewECS()
	target := mgl32.Vec2{103.3, -47.9}
	id := addWalker(ecs, mgl32.Vec2{0, 0}, config.NPCSpeed, component.MoveTo{Target: target})
	s, _ := newCommandSystem(t, ecs, config.ArrivalTolerant)
	k := NewKinematicsSystem(ecs)

	ticks := 0
	for ; ticks < 1000 && ecs.CommandQueues[id].Len() > 0; ticks++ {
		require.NoError(t, s.Update(1.0/60))
		k.Update(1.0 / 60)
	}
	require.Less(t, ticks, 1000, "walker never arrived")
	assert.Equal(t, target, ecs.Transforms[id].XY())
}

func TestCommandsRunInFIFOOrder(t *testing.T) {
	ecs := entity.NewECS()
	first, second := mgl32.Vec2{5, 0}, mgl32.Vec2{5, 5}
	id := addWalker(ecs, mgl32.Vec2{0, 0}, 100, component.MoveTo{Target: first}, component.MoveTo{Target: second})
	s, _ := newCommandSystem(t, ecs, config.ArrivalTolerant)

	require.NoError(t, s.Update(0.1))
	assert.Equal(t, first, ecs.Transforms[id].XY())
	cmd, ok := ecs.CommandQueues[id].Peek()
	require.True(t, ok)
	assert.Equal(t, component.MoveTo{Target: second}, cmd)
}

func TestAttackIsReportedAsNotImplemented(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, mgl32.Vec2{0, 0}, 10, component.Attack{})
	s, seen := newCommandSystem(t, ecs, config.ArrivalTolerant)

	err := s.Update(0.016)

	assert.ErrorIs(t, err, ErrAttackNotImplemented)
	assert.Equal(t, 1, ecs.CommandQueues[id].Len(), "failed command stays queued")
	require.Len(t, *seen, 1)
	failure, ok := (*seen)[0].Data.(event.CommandFailure)
	require.True(t, ok)
	assert.Equal(t, id, failure.Entity)
}

func TestEmptyQueueIsNoop(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, mgl32.Vec2{1, 1}, 10)
	s, seen := newCommandSystem(t, ecs, config.ArrivalExact)

	require.NoError(t, s.Update(0.016))
	assert.Equal(t, mgl32.Vec2{1, 1}, ecs.Transforms[id].XY())
	assert.Empty(t, *seen)
}
