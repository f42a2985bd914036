// internal/state/play_state.go
package state

import (
	"go-topdown-arena/internal/app"
	"go-topdown-arena/internal/input"
)

var _ State = (*PlayState)(nil)

// PlayState крутит симуляцию. Pause переводит в PauseState, тик при этом не выполняется.
type PlayState struct {
	sm   *StateMachine
	game *app.Game
}

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	return &PlayState{sm: sm, game: game}
}

func (s *PlayState) Name() string { return "play" }

func (s *PlayState) Enter() {
	s.game.Logger().Debug("state entered")
}

func (s *PlayState) Update(deltaTime float64, dev input.Device) error {
	if dev.JustPressed(input.Pause) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}
	return s.game.Update(deltaTime, dev)
}

func (s *PlayState) Exit() {}

// Game возвращает мир, который крутит состояние.
func (s *PlayState) Game() *app.Game {
	return s.game
}
