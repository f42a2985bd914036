// internal/system/view.go
package system

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"go-topdown-arena/internal/component"
	"go-topdown-arena/internal/entity"
	"go-topdown-arena/internal/types"
)

const (
	viewNear = 0.0
	viewFar  = 1000.0
)

// Projection — ортографическая проекция камеры для окна w×h.
// Zoom масштабирует видимую область: 2.0 показывает вдвое больше мира.
func Projection(cam *component.Camera, w, h int) mgl32.Mat4 {
	hw := float32(w) / 2 * cam.Zoom
	hh := float32(h) / 2 * cam.Zoom
	return mgl32.Ortho(-hw, hw, -hh, hh, viewNear, viewFar)
}

// CameraMatrix — мировой трансформ камеры.
func CameraMatrix(t *component.Transform) mgl32.Mat4 {
	p := t.Position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z())
}

// CursorToNDC переводит пиксели окна (Y вниз) в координаты устройства [-1, 1] (Y вверх).
func CursorToNDC(x, y float32, w, h int) mgl32.Vec2 {
	return mgl32.Vec2{
		x/float32(w)*2 - 1,
		1 - y/float32(h)*2,
	}
}

// Unproject переводит координаты устройства в мир через обратную проекцию и трансформ камеры.
// Глубина отбрасывается.
func Unproject(ndc mgl32.Vec2, cam *component.Camera, camT *component.Transform, w, h int) mgl32.Vec2 {
	ndcToWorld := CameraMatrix(camT).Mul4(Projection(cam, w, h).Inv())
	world := mgl32.TransformCoordinate(ndc.Vec3(-1), ndcToWorld)
	return world.Vec2()
}

// ScreenToWorld — CursorToNDC + Unproject.
func ScreenToWorld(x, y float32, cam *component.Camera, camT *component.Transform, w, h int) mgl32.Vec2 {
	return Unproject(CursorToNDC(x, y, w, h), cam, camT, w, h)
}

// WorldToScreen — обратное преобразование для отрисовки: мир -> пиксели окна.
func WorldToScreen(p mgl32.Vec2, cam *component.Camera, camT *component.Transform, w, h int) (float32, float32) {
	worldToNDC := Projection(cam, w, h).Mul4(CameraMatrix(camT).Inv())
	ndc := mgl32.TransformCoordinate(p.Vec3(0), worldToNDC)
	return (ndc.X() + 1) / 2 * float32(w), (1 - ndc.Y()) / 2 * float32(h)
}

// DrawOrder возвращает отрисовываемые сущности по возрастанию Z, при равном Z по ID.
// Сущности с большим Z рисуются позже, то есть поверх.
func DrawOrder(ecs *entity.ECS) []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Renderables))
	for id := range ecs.Renderables {
		if _, ok := ecs.Transforms[id]; ok {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b types.EntityID) int {
		if c := cmp.Compare(ecs.Transforms[a].Position.Z(), ecs.Transforms[b].Position.Z()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ids
}

// Facing — единичный вектор, куда смотрит спрайт «носом вверх», повёрнутый на rotation.
func Facing(rotation float32) mgl32.Vec2 {
	s, c := math.Sincos(float64(rotation))
	return mgl32.Vec2{float32(-s), float32(c)}
}
