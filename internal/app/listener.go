// internal/app/listener.go
package app

import (
	"go.uber.org/zap"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/event"
)

// Stats — счётчики событий мира. Подписывается на Dispatcher в NewGame.
type Stats struct {
	ProjectilesSpawned   int
	ProjectilesDespawned int
	LockToggles          int
	CommandsCompleted    int
	CommandsFailed       int

	logger *zap.Logger
}

func NewStats(logger *zap.Logger) *Stats {
	return &Stats{logger: logger.Named("stats")}
}

// LiveProjectiles — число снарядов, которые сейчас в мире.
func (s *Stats) LiveProjectiles() int {
	return s.ProjectilesSpawned - s.ProjectilesDespawned
}

// OnEvent реализует интерфейс event.Listener.
func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileSpawned:
		s.ProjectilesSpawned++
	case event.ProjectileDespawned:
		s.ProjectilesDespawned++
	case event.CameraLockToggled:
		s.LockToggles++
		if mode, ok := e.Data.(component.CameraMode); ok {
			s.logger.Info("camera mode changed", zap.Stringer("mode", mode))
		}
	case event.CommandCompleted:
		s.CommandsCompleted++
	case event.CommandFailed:
		s.CommandsFailed++
		if f, ok := e.Data.(event.CommandFailure); ok {
			s.logger.Warn("command failed", zap.Uint64("entity", uint64(f.Entity)), zap.Error(f.Err))
		}
	}
}
