// cmd/headless/main.go
//
// Прогоняет симуляцию без окна: фиксированный шаг, скриптовый ввод.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/injector"
	"go-topdown-arena/internal/input"
	"go-topdown-arena/internal/state"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults are used when empty)")
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60, "fixed tick duration in seconds")
	fireEvery := flag.Int("fire-every", 10, "fire at the cursor every N ticks, 0 disables firing")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	game, err := injector.InitializeGame(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	logger := game.Logger()
	defer func() { _ = logger.Sync() }()

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, game))

	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	dev := input.NewSnapshot(w, h).Point(float32(w)*3/4, float32(h)/4)
	failed := 0
	for i := 0; i < *ticks; i++ {
		dev.Release(input.MoveRight, input.MoveUp, input.Fire)
		// Первая половина — вправо, вторая — вверх.
		if i < *ticks/2 {
			dev.Hold(input.MoveRight)
		} else {
			dev.Hold(input.MoveUp)
		}
		if *fireEvery > 0 && i%*fireEvery == 0 {
			dev.Press(input.Fire)
		}
		if err := sm.Update(*dt, dev); err != nil {
			failed++
			logger.Debug("tick errors", zap.Error(err))
		}
		dev.Next()
	}

	_, pt, _ := game.ECS.Player()
	cam, camT, _ := game.ECS.Camera()
	logger.Info("simulation finished",
		zap.Uint64("ticks", game.Tick()),
		zap.Float64("game_time", game.Time()),
		zap.Float32s("player", pt.Position[:]),
		zap.Float32s("camera", camT.Position[:]),
		zap.Stringer("camera_mode", cam.Mode()),
		zap.Int("projectiles_spawned", game.Stats.ProjectilesSpawned),
		zap.Int("projectiles_despawned", game.Stats.ProjectilesDespawned),
		zap.Int("projectiles_live", game.Stats.LiveProjectiles()),
		zap.Int("lock_toggles", game.Stats.LockToggles),
		zap.Int("commands_completed", game.Stats.CommandsCompleted),
		zap.Int("commands_failed", game.Stats.CommandsFailed),
		zap.Int("ticks_with_errors", failed),
	)
}
