// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/event"
	"go-topdown-arena/internal/input"
	"go-topdown-arena/internal/system"
	"go-topdown-arena/pkg/tilemap"
)

var (
	// ErrNoPlayer — мир собран без игрока.
	ErrNoPlayer = errors.New("world has no player entity")
	// ErrNoCamera — мир собран без камеры.
	ErrNoCamera = errors.New("world has no camera entity")
)

// Game holds the simulation state and runs the tick phases in a fixed order.
type Game struct {
	RunID      uuid.UUID
	ECS        *entity.ECS
	TileMap    *tilemap.TileMap
	SpawnQueue *event.SpawnQueue

	InputSystem      *system.InputSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	CommandSystem    *system.CommandSystem
	KinematicsSystem *system.KinematicsSystem
	CameraSystem     *system.CameraSystem
	EventDispatcher  *event.Dispatcher
	Stats            *Stats

	cfg      *config.Config
	logger   *zap.Logger
	gameTime float64
	tick     uint64
}

// NewGame builds the world: the tile map is generated concurrently with entity spawning.
// A world without a player or a camera is rejected.
func NewGame(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger = logger.With(zap.Stringer("run_id", runID))

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	queue := event.NewSpawnQueue()
	g := &Game{
		RunID:            runID,
		ECS:              ecs,
		SpawnQueue:       queue,
		EventDispatcher:  eventDispatcher,
		InputSystem:      system.NewInputSystem(ecs, queue, cfg.Input, logger),
		ProjectileSystem: system.NewProjectileSystem(ecs, queue, eventDispatcher, cfg.Projectiles, logger),
		MovementSystem:   system.NewMovementSystem(ecs),
		CommandSystem:    system.NewCommandSystem(ecs, eventDispatcher, cfg.Commands, logger),
		KinematicsSystem: system.NewKinematicsSystem(ecs),
		CameraSystem:     system.NewCameraSystem(ecs, eventDispatcher, cfg.Camera, cfg.Input.MovementMode, logger),
		cfg:              cfg,
		logger:           logger,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		m, err := tilemap.Generate(gctx, cfg.Map)
		if err != nil {
			return fmt.Errorf("generate map: %w", err)
		}
		g.TileMap = m
		return nil
	})
	g.spawnWorld()
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ValidateWorld(ecs); err != nil {
		return nil, err
	}

	g.Stats = NewStats(logger)
	eventDispatcher.Subscribe(g.Stats,
		event.ProjectileSpawned,
		event.ProjectileDespawned,
		event.CameraLockToggled,
		event.CommandCompleted,
		event.CommandFailed,
	)

	logger.Info("world created",
		zap.String("map_mode", string(cfg.Map.Mode)),
		zap.Int("map_width", g.TileMap.Width),
		zap.Int("map_height", g.TileMap.Height),
		zap.Int("overlay_tiles", g.TileMap.OverlayLen()),
		zap.Int64("map_seed", g.TileMap.Seed),
		zap.Uint64("map_fingerprint", g.TileMap.Fingerprint()),
		zap.Int("npcs", len(cfg.NPCs)),
	)
	return g, nil
}

// ValidateWorld проверяет, что в мире есть игрок и камера.
func ValidateWorld(ecs *entity.ECS) error {
	var errs []error
	if _, _, ok := ecs.Player(); !ok {
		errs = append(errs, ErrNoPlayer)
	}
	if _, _, ok := ecs.Camera(); !ok {
		errs = append(errs, ErrNoCamera)
	}
	return errors.Join(errs...)
}

// spawnWorld создаёт камеру, игрока и скриптовых NPC.
func (g *Game) spawnWorld() {
	ecs := g.ECS

	ecs.CameraID = ecs.NewEntity()
	ecs.Transforms[ecs.CameraID] = component.NewTransform(0, 0, config.CameraDepth)
	ecs.Cameras[ecs.CameraID] = &component.Camera{Zoom: 1, Locked: g.cfg.Camera.StartLocked}

	pc := g.cfg.Player
	ecs.PlayerID = ecs.NewEntity()
	pt := component.NewTransform(pc.Position.X, pc.Position.Y, config.PlayerDepth)
	pt.Scale = pc.Radius
	ecs.Transforms[ecs.PlayerID] = pt
	ecs.Players[ecs.PlayerID] = &component.Player{
		Speed:  pc.Speed,
		Radius: pc.Radius,
		Gun:    component.GunGlock,
	}
	ecs.Renderables[ecs.PlayerID] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    pc.Radius,
		HasStroke: true,
	}
	if g.cfg.Camera.StartLocked {
		ecs.Transforms[ecs.CameraID].SetXY(pt.XY())
	}

	for _, npc := range g.cfg.NPCs {
		id := ecs.NewEntity()
		ecs.Transforms[id] = component.NewTransform(npc.Position.X, npc.Position.Y, config.PlayerDepth)
		ecs.Velocities[id] = &component.Velocity{Speed: npc.Speed}
		queue := component.NewCommandQueue()
		for _, p := range npc.Route {
			queue.Push(component.MoveTo{Target: mgl32.Vec2{p.X, p.Y}})
		}
		if npc.Attack {
			queue.Push(component.Attack{})
		}
		ecs.CommandQueues[id] = queue
		ecs.Renderables[id] = &component.Renderable{Color: config.NPCColor, Radius: config.NPCRadius}
	}
}

// Update runs one tick. The only errors returned are from commands that could not be executed;
// the tick itself always completes.
func (g *Game) Update(deltaTime float64, dev input.Device) error {
	g.tick++
	g.gameTime += deltaTime

	g.InputSystem.Update(dev)
	g.ProjectileSystem.Spawn()
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	err := g.CommandSystem.Update(deltaTime)
	g.KinematicsSystem.Update(deltaTime)
	g.CameraSystem.Update(deltaTime, dev)

	if err != nil {
		return fmt.Errorf("tick %d: %w", g.tick, err)
	}
	return nil
}

// Time — игровое время в секундах.
func (g *Game) Time() float64 {
	return g.gameTime
}

// Tick — номер последнего тика.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Config возвращает конфигурацию, с которой собран мир.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Logger возвращает логгер мира с run_id.
func (g *Game) Logger() *zap.Logger {
	return g.logger
}
