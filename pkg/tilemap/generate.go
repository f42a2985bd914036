// pkg/tilemap/generate.go
package tilemap

import (
	"context"
	"errors"
	"fmt"

	"go-topdown-arena/internal/utils"
)

// Mode — режим генерации.
type Mode string

const (
	ModeFill    Mode = "fill"    // только базовый слой
	ModeScatter Mode = "scatter" // базовый слой + случайные анимированные тайлы на оверлее
)

// ScatterParams — параметры случайной расстановки.
type ScatterParams struct {
	Count int `yaml:"count"`
	Tile  int `yaml:"tile"`
	// RegionScale — доля сетки (от левого нижнего угла), внутри которой выбираются клетки.
	RegionScale float64   `yaml:"region_scale"`
	Animation   Animation `yaml:"animation"`
}

// Params — параметры генерации карты.
type Params struct {
	Mode         Mode          `yaml:"mode"`
	WidthChunks  int           `yaml:"width_chunks"`
	HeightChunks int           `yaml:"height_chunks"`
	ChunkSize    int           `yaml:"chunk_size"`
	TileSize     float32       `yaml:"tile_size"`
	Origin       [2]float32    `yaml:"origin,flow"`
	DefaultTile  int           `yaml:"default_tile"`
	Seed         int64         `yaml:"seed"` // 0 — сид от текущего времени
	Scatter      ScatterParams `yaml:"scatter"`
}

// ErrBadParams возвращается из Validate.
var ErrBadParams = errors.New("bad tilemap params")

// Size возвращает размер сетки в тайлах.
func (p Params) Size() (int, int) {
	return p.WidthChunks * p.ChunkSize, p.HeightChunks * p.ChunkSize
}

// Region возвращает размер подобласти, в которой расставляется оверлей.
func (p Params) Region() (int, int) {
	w, h := p.Size()
	return int(float64(w) * p.Scatter.RegionScale), int(float64(h) * p.Scatter.RegionScale)
}

func (p Params) Validate() error {
	if p.Mode != ModeFill && p.Mode != ModeScatter {
		return fmt.Errorf("%w: unknown mode %q", ErrBadParams, p.Mode)
	}
	if p.WidthChunks <= 0 || p.HeightChunks <= 0 || p.ChunkSize <= 0 {
		return fmt.Errorf("%w: map size must be positive, got %dx%d chunks of %d",
			ErrBadParams, p.WidthChunks, p.HeightChunks, p.ChunkSize)
	}
	if p.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %v", ErrBadParams, p.TileSize)
	}
	if p.Mode != ModeScatter {
		return nil
	}
	s := p.Scatter
	if s.Count < 0 {
		return fmt.Errorf("%w: scatter count must be >= 0, got %d", ErrBadParams, s.Count)
	}
	if s.RegionScale <= 0 || s.RegionScale > 1 {
		return fmt.Errorf("%w: scatter region scale must be in (0, 1], got %v", ErrBadParams, s.RegionScale)
	}
	if rw, rh := p.Region(); rw == 0 || rh == 0 {
		return fmt.Errorf("%w: scatter region is empty (%dx%d)", ErrBadParams, rw, rh)
	}
	if s.Animation.Frames < 0 || s.Animation.FrameDuration < 0 {
		return fmt.Errorf("%w: negative animation parameters", ErrBadParams)
	}
	return nil
}

// Generate строит карту. Выполняется один раз при создании мира.
func Generate(ctx context.Context, p Params) (*TileMap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w, h := p.Size()
	m := newTileMap(w, h, p.TileSize, p.Origin)

	// Базовый слой: каждая клетка — тайл по умолчанию
	for y := 0; y < h; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := m.base[y*w : (y+1)*w]
		for x := range row {
			row[x] = p.DefaultTile
		}
	}

	if p.Mode == ModeScatter {
		rng := utils.NewPRNGService(p.Seed)
		m.Seed = rng.Seed()
		if err := scatter(ctx, m, p, rng); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// scatter расставляет Count тайлов в случайные клетки подобласти.
// Повторные попадания в одну клетку просто перезаписывают её.
func scatter(ctx context.Context, m *TileMap, p Params, rng *utils.PRNGService) error {
	rw, rh := p.Region()
	var anim *Animation
	if p.Scatter.Animation.Frames > 0 {
		a := p.Scatter.Animation
		anim = &a
	}
	for i := 0; i < p.Scatter.Count; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		c := Coord{X: rng.Intn(rw), Y: rng.Intn(rh)}
		m.overlay[c] = Tile{Index: p.Scatter.Tile, Animation: anim}
	}
	return nil
}
