// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-topdown-arena/internal/app"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/injector"
	"go-topdown-arena/internal/input"
	"go-topdown-arena/internal/platform"
	"go-topdown-arena/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	game           *app.Game
	device         *platform.Device
	renderer       *platform.Renderer
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.device.JustPressed(input.Quit) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	if err := a.stateMachine.Update(deltaTime, a.device); err != nil {
		// Ошибки команд не останавливают игру.
		a.game.Logger().Debug("tick errors", zap.Error(err))
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	_, paused := a.stateMachine.Current().(*state.PauseState)
	a.renderer.Draw(screen, a.game, paused)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.device.SetViewport(a.width, a.height)
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults are used when empty)")
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

	if cfg.PprofAddr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", cfg.PprofAddr))
			if err := http.ListenAndServe(cfg.PprofAddr, nil); err != nil {
				logger.Warn("pprof stopped", zap.Error(err))
			}
		}()
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, game))

	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	appGame := &AppGame{
		stateMachine:   sm,
		game:           game,
		device:         platform.NewDevice(platform.DefaultBindings(), w, h),
		renderer:       platform.NewRenderer(),
		width:          w,
		height:         h,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Top-down Arena")
	if err := ebiten.RunGame(appGame); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game stopped", zap.Error(err))
	}
	logger.Info("game finished", zap.Uint64("ticks", game.Tick()), zap.Int("projectiles_fired", game.Stats.ProjectilesSpawned))
}
