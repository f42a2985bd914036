// internal/platform/device.go
package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-topdown-arena/internal/input"
)

// Bindings — клавиши для каждого действия.
type Bindings map[input.Action][]ebiten.Key

// DefaultBindings: WASD — движение, стрелки — камера, Y — фиксация, Z/X — зум.
func DefaultBindings() Bindings {
	return Bindings{
		input.MoveLeft:    {ebiten.KeyA},
		input.MoveRight:   {ebiten.KeyD},
		input.MoveUp:      {ebiten.KeyW},
		input.MoveDown:    {ebiten.KeyS},
		input.CameraLeft:  {ebiten.KeyArrowLeft},
		input.CameraRight: {ebiten.KeyArrowRight},
		input.CameraUp:    {ebiten.KeyArrowUp},
		input.CameraDown:  {ebiten.KeyArrowDown},
		input.ZoomOut:     {ebiten.KeyZ},
		input.ZoomIn:      {ebiten.KeyX},
		input.ToggleLock:  {ebiten.KeyY},
		input.Fire:        {ebiten.KeySpace},
		input.Pause:       {ebiten.KeyP},
		input.Quit:        {ebiten.KeyEscape},
	}
}

// Device читает клавиатуру и мышь ebiten. Fire срабатывает и от левой кнопки мыши.
type Device struct {
	bindings      Bindings
	width, height int
}

var _ input.Device = (*Device)(nil)

func NewDevice(bindings Bindings, width, height int) *Device {
	return &Device{bindings: bindings, width: width, height: height}
}

// SetViewport обновляет размер окна (из Layout).
func (d *Device) SetViewport(w, h int) {
	d.width, d.height = w, h
}

func (d *Device) Held(a input.Action) bool {
	for _, k := range d.bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return a == input.Fire && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (d *Device) JustPressed(a input.Action) bool {
	for _, k := range d.bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return a == input.Fire && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Cursor возвращает позицию мыши, если она внутри окна.
func (d *Device) Cursor() (float32, float32, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return 0, 0, false
	}
	return float32(x), float32(y), true
}

func (d *Device) Viewport() (int, int) {
	return d.width, d.height
}
