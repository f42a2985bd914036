// internal/platform/renderer.go
package platform

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-topdown-arena/internal/app"
	"go-topdown-arena/internal/config"
	"go-topdown-arena/internal/system"
	"go-topdown-arena/pkg/tilemap"
)

const (
	projectileTrail = 12.0
	hudX, hudY      = 10, 20
	hudLineHeight   = 16
)

// Renderer рисует карту, сущности и HUD. Сам мир не меняет.
type Renderer struct {
	fontFace font.Face
}

func NewRenderer() *Renderer {
	return &Renderer{fontFace: basicfont.Face7x13}
}

func (r *Renderer) Draw(screen *ebiten.Image, g *app.Game, paused bool) {
	screen.Fill(config.BackgroundColor)

	cam, camT, ok := g.ECS.Camera()
	if !ok {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	toScreen := func(p mgl32.Vec2) (float32, float32) {
		return system.WorldToScreen(p, cam, camT, w, h)
	}
	scale := 1 / cam.Zoom

	r.drawTileMap(screen, g.TileMap, g.Time(), toScreen, scale, w, h)

	for _, id := range system.DrawOrder(g.ECS) {
		rend, t := g.ECS.Renderables[id], g.ECS.Transforms[id]
		x, y := toScreen(t.XY())
		radius := rend.Radius * scale
		if _, ok := g.ECS.Projectiles[id]; ok {
			tx, ty := toScreen(t.XY().Sub(system.Facing(t.Rotation).Mul(projectileTrail)))
			vector.StrokeLine(screen, tx, ty, x, y, radius, rend.Color, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, rend.Color, true)
		if rend.HasStroke {
			vector.StrokeCircle(screen, x, y, radius, 2, config.StrokeColor, true)
		}
	}

	r.drawHUD(screen, g, paused)
}

func (r *Renderer) drawTileMap(screen *ebiten.Image, m *tilemap.TileMap, now float64, toScreen func(mgl32.Vec2) (float32, float32), scale float32, w, h int) {
	if m == nil {
		return
	}
	size := m.TileSize * scale
	drawCell := func(c tilemap.Coord, index int) {
		cx, cy := m.CellCenter(c)
		x, y := toScreen(mgl32.Vec2{cx, cy})
		if x+size < 0 || y+size < 0 || x-size > float32(w) || y-size > float32(h) {
			return
		}
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, tileColor(index), false)
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := tilemap.Coord{X: x, Y: y}
			if idx, ok := m.BaseAt(c); ok {
				drawCell(c, idx)
			}
		}
	}
	for _, c := range m.OverlayCoords() {
		t, _ := m.OverlayAt(c)
		idx := t.Index
		if t.Animation != nil {
			idx = t.Animation.FrameAt(now)
		}
		drawCell(c, idx)
	}
}

func tileColor(index int) color.RGBA {
	if index < 0 {
		index = -index
	}
	return config.TileColors[index%len(config.TileColors)]
}

func (r *Renderer) drawHUD(screen *ebiten.Image, g *app.Game, paused bool) {
	cam, _, _ := g.ECS.Camera()
	lines := []string{
		fmt.Sprintf("zoom %.2f  camera %s", cam.Zoom, cam.Mode()),
		fmt.Sprintf("projectiles %d  fired %d", g.Stats.LiveProjectiles(), g.Stats.ProjectilesSpawned),
		fmt.Sprintf("tick %d  t=%.1fs", g.Tick(), g.Time()),
	}
	if paused {
		lines = append(lines, "PAUSED (P)")
	}
	for i, line := range lines {
		text.Draw(screen, line, r.fontFace, hudX, hudY+i*hudLineHeight, config.TextLightColor)
	}
}
