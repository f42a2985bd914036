// internal/state/pause_state.go
package state

import (
	"go-topdown-arena/internal/app"
	"go-topdown-arena/internal/input"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Name() string { return "pause" }

func (s *PauseState) Enter() {
	s.previousState.Game().Logger().Info("paused")
}

// Update ждёт повторного нажатия Pause. Мир в паузе не меняется.
func (s *PauseState) Update(_ float64, dev input.Device) error {
	if dev.JustPressed(input.Pause) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Exit() {
	s.previousState.Game().Logger().Info("resumed")
}

// Game возвращает мир, поставленный на паузу.
func (s *PauseState) Game() *app.Game {
	return s.previousState.Game()
}
