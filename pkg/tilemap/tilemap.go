// pkg/tilemap/tilemap.go
package tilemap

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Coord — клетка сетки. (0,0) — левый нижний угол карты.
type Coord struct {
	X, Y int
}

// Animation — циклическая анимация тайла.
type Animation struct {
	Start         int     `yaml:"start"`
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frame_duration"` // секунд на кадр
}

// FrameAt возвращает индекс кадра атласа в момент t (секунды).
func (a Animation) FrameAt(t float64) int {
	if a.Frames <= 1 || a.FrameDuration <= 0 || t < 0 {
		return a.Start
	}
	step := int(t / a.FrameDuration)
	return a.Start + step%a.Frames
}

// Tile — тайл оверлея.
type Tile struct {
	Index     int
	Animation *Animation // nil — статичный тайл
}

// TileMap — двухслойная карта: плотный базовый слой и разреженный оверлей.
// После сборки не изменяется.
type TileMap struct {
	Width, Height int
	TileSize      float32
	Origin        [2]float32 // мировые координаты левого нижнего угла
	Seed          int64      // сид, с которым собран оверлей

	base    []int
	overlay map[Coord]Tile
}

func newTileMap(w, h int, tileSize float32, origin [2]float32) *TileMap {
	return &TileMap{
		Width:    w,
		Height:   h,
		TileSize: tileSize,
		Origin:   origin,
		base:     make([]int, w*h),
		overlay:  make(map[Coord]Tile),
	}
}

func (m *TileMap) inBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.Width && c.Y < m.Height
}

// BaseAt возвращает индекс тайла базового слоя.
func (m *TileMap) BaseAt(c Coord) (int, bool) {
	if !m.inBounds(c) {
		return 0, false
	}
	return m.base[c.Y*m.Width+c.X], true
}

// OverlayAt возвращает тайл оверлея, если он есть.
func (m *TileMap) OverlayAt(c Coord) (Tile, bool) {
	t, ok := m.overlay[c]
	return t, ok
}

// OverlayLen — число занятых клеток оверлея.
func (m *TileMap) OverlayLen() int {
	return len(m.overlay)
}

// OverlayCoords возвращает занятые клетки оверлея, отсортированные по Y, затем по X.
func (m *TileMap) OverlayCoords() []Coord {
	out := make([]Coord, 0, len(m.overlay))
	for c := range m.overlay {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// CellCenter возвращает мировые координаты центра клетки.
func (m *TileMap) CellCenter(c Coord) (float32, float32) {
	return m.Origin[0] + (float32(c.X)+0.5)*m.TileSize,
		m.Origin[1] + (float32(c.Y)+0.5)*m.TileSize
}

// RemoveTile — точка расширения для удаления тайлов во время игры.
// Карта неизменяема, поэтому всегда возвращает false.
func (m *TileMap) RemoveTile(Coord) bool {
	return false
}

// Fingerprint — хэш содержимого оверлея, не зависящий от порядка обхода map.
func (m *TileMap) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 32)
	for _, c := range m.OverlayCoords() {
		t := m.overlay[c]
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c.X))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c.Y))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t.Index))
		if t.Animation != nil {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(t.Animation.Start))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(t.Animation.Frames))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
