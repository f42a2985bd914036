package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-topdown-arena/internal/app"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/input"
)

func newPlay(t *testing.T) (*StateMachine, *app.Game) {
	t.Helper()
	g, err := app.NewGame(context.Background(), config.Default(), zaptest.NewLogger(t))
	require.NoError(t, err)
	sm := NewStateMachine()
	sm.SetState(NewPlayState(sm, g))
	return sm, g
}

func TestPauseStopsTicks(t *testing.T) {
	sm, g := newPlay(t)
	dev := input.NewSnapshot(config.ScreenWidth, config.ScreenHeight)

	require.NoError(t, sm.Update(0.016, dev))
	assert.Equal(t, uint64(1), g.Tick())

	require.NoError(t, sm.Update(0.016, dev.Press(input.Pause)))
	assert.Equal(t, "pause", sm.Current().Name())
	dev.Next()

	_, before, _ := g.ECS.Player()
	pos := before.Position
	require.NoError(t, sm.Update(0.016, dev.Hold(input.MoveRight)))
	assert.Equal(t, uint64(1), g.Tick())
	assert.Equal(t, pos, before.Position)
}

func TestPauseResumes(t *testing.T) {
	sm, g := newPlay(t)
	dev := input.NewSnapshot(config.ScreenWidth, config.ScreenHeight)

	require.NoError(t, sm.Update(0.016, dev.Press(input.Pause)))
	dev.Next()
	require.NoError(t, sm.Update(0.016, dev.Press(input.Pause)))
	assert.Equal(t, "play", sm.Current().Name())
	dev.Next()

	require.NoError(t, sm.Update(0.016, dev))
	assert.Equal(t, uint64(1), g.Tick())
}

func TestEmptyMachineIsNoop(t *testing.T) {
	sm := NewStateMachine()
	assert.NoError(t, sm.Update(0.016, input.NewSnapshot(1, 1)))
	assert.Nil(t, sm.Current())
}
