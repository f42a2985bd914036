// internal/config/file.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go-topdown-arena/pkg/tilemap"
)

// ErrInvalid оборачивает все ошибки валидации конфигурации.
var ErrInvalid = errors.New("invalid config")

// MovementMode — как суммируются клавиши направления.
type MovementMode string

const (
	MovementRawSum     MovementMode = "raw-sum"    // диагональ быстрее в √2 раз
	MovementNormalized MovementMode = "normalized" // скорость одинакова во всех направлениях
)

// FireMode — когда срабатывает выстрел.
type FireMode string

const (
	FireEdge       FireMode = "edge"       // один выстрел на нажатие
	FireContinuous FireMode = "continuous" // каждый тик, пока зажато
)

// ArrivalMode — проверка прибытия для MoveTo.
type ArrivalMode string

const (
	ArrivalExact    ArrivalMode = "exact"
	ArrivalTolerant ArrivalMode = "tolerant"
)

// LockedPan — поведение закреплённой камеры.
type LockedPan string

const (
	LockedPanMirror LockedPan = "mirror" // клавиши движения двигают и камеру
	LockedPanSnap   LockedPan = "snap"   // камера каждый тик встаёт на игрока
)

// Point — точка на плоскости.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerConfig struct {
	Speed    float32 `yaml:"speed"`
	Radius   float32 `yaml:"radius"`
	Position Point   `yaml:"position"`
}

type InputConfig struct {
	MovementMode MovementMode `yaml:"movement_mode"`
	FireMode     FireMode     `yaml:"fire_mode"`
}

type ProjectileConfig struct {
	// MaxTravel — дистанция от точки появления, после которой снаряд удаляется. 0 — не удалять.
	MaxTravel float32 `yaml:"max_travel"`
	// MaxLive — предел живых снарядов, лишние (самые старые) удаляются. 0 — без предела.
	MaxLive int `yaml:"max_live"`
}

type CameraConfig struct {
	PanSpeed float32 `yaml:"pan_speed"`
	ZoomStep float32 `yaml:"zoom_step"`
	// MaxZoom — потолок масштаба, 0 — без потолка. Нижняя граница всегда MinZoom.
	MaxZoom     float32   `yaml:"max_zoom"`
	LockedPan   LockedPan `yaml:"locked_pan"`
	StartLocked bool      `yaml:"start_locked"`
}

type CommandConfig struct {
	Arrival ArrivalMode `yaml:"arrival"`
	Epsilon float32     `yaml:"epsilon"`
}

// NPCConfig описывает скриптовую сущность и её маршрут.
type NPCConfig struct {
	Position Point   `yaml:"position"`
	Speed    float32 `yaml:"speed"`
	Route    []Point `yaml:"route"`
	Attack   bool    `yaml:"attack"` // добавить Attack в конец очереди
}

// Config — полная конфигурация запуска.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Development bool   `yaml:"development"`
	PprofAddr   string `yaml:"pprof_addr"`

	Viewport    ViewportConfig   `yaml:"viewport"`
	Player      PlayerConfig     `yaml:"player"`
	Input       InputConfig      `yaml:"input"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Camera      CameraConfig     `yaml:"camera"`
	Commands    CommandConfig    `yaml:"commands"`
	NPCs        []NPCConfig      `yaml:"npcs"`
	Map         tilemap.Params   `yaml:"map"`
}

// Default возвращает конфигурацию, собранную из констант пакета.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Viewport: ViewportConfig{Width: ScreenWidth, Height: ScreenHeight},
		Player:   PlayerConfig{Speed: PlayerSpeed, Radius: PlayerRadius},
		Input: InputConfig{
			MovementMode: MovementRawSum,
			FireMode:     FireEdge,
		},
		Projectiles: ProjectileConfig{
			MaxTravel: ProjectileMaxTravel,
			MaxLive:   ProjectileMaxLive,
		},
		Camera: CameraConfig{
			PanSpeed:    CameraPanSpeed,
			ZoomStep:    ZoomStep,
			MaxZoom:     MaxZoom,
			LockedPan:   LockedPanMirror,
			StartLocked: true,
		},
		Commands: CommandConfig{
			Arrival: ArrivalTolerant,
			Epsilon: ArrivalEpsilon,
		},
		Map: tilemap.Params{
			Mode:        tilemap.ModeFill,
			WidthChunks: MapWidthChunks, HeightChunks: MapHeightChunks,
			ChunkSize:   ChunkSize,
			TileSize:    TileSize,
			Origin:      [2]float32{MapOriginX, MapOriginY},
			DefaultTile: DefaultTile,
			Scatter: tilemap.ScatterParams{
				Count:       ScatterCount,
				Tile:        ScatterTile,
				RegionScale: ScatterRegionScale,
				Animation: tilemap.Animation{
					Start:         ScatterStartFrame,
					Frames:        ScatterFrameCount,
					FrameDuration: ScatterFrameDuration,
				},
			},
		},
	}
}

// Load читает YAML поверх Default и проверяет результат.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse декодирует YAML из r. Неизвестные ключи — ошибка.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0, "viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	check(c.Player.Speed >= 0, "player.speed must be >= 0, got %v", c.Player.Speed)
	check(c.Player.Radius >= 0, "player.radius must be >= 0, got %v", c.Player.Radius)

	check(c.Input.MovementMode == MovementRawSum || c.Input.MovementMode == MovementNormalized,
		"unknown input.movement_mode %q", c.Input.MovementMode)
	check(c.Input.FireMode == FireEdge || c.Input.FireMode == FireContinuous,
		"unknown input.fire_mode %q", c.Input.FireMode)

	check(c.Projectiles.MaxTravel >= 0, "projectiles.max_travel must be >= 0, got %v", c.Projectiles.MaxTravel)
	check(c.Projectiles.MaxLive >= 0, "projectiles.max_live must be >= 0, got %d", c.Projectiles.MaxLive)

	check(c.Camera.ZoomStep > 0, "camera.zoom_step must be > 0, got %v", c.Camera.ZoomStep)
	check(c.Camera.PanSpeed >= 0, "camera.pan_speed must be >= 0, got %v", c.Camera.PanSpeed)
	check(c.Camera.MaxZoom == 0 || c.Camera.MaxZoom >= MinZoom,
		"camera.max_zoom must be 0 or >= %v, got %v", MinZoom, c.Camera.MaxZoom)
	check(c.Camera.LockedPan == LockedPanMirror || c.Camera.LockedPan == LockedPanSnap,
		"unknown camera.locked_pan %q", c.Camera.LockedPan)

	check(c.Commands.Arrival == ArrivalExact || c.Commands.Arrival == ArrivalTolerant,
		"unknown commands.arrival %q", c.Commands.Arrival)
	check(c.Commands.Epsilon >= 0, "commands.epsilon must be >= 0, got %v", c.Commands.Epsilon)

	for i, npc := range c.NPCs {
		check(npc.Speed > 0, "npcs[%d].speed must be > 0, got %v", i, npc.Speed)
	}

	if err := c.Map.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: map: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}
