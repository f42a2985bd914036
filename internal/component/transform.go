// internal/component/transform.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Transform — позиция, поворот вокруг оси Z и масштаб.
// Z используется только для порядка отрисовки и не меняется при движении.
type Transform struct {
	Position mgl32.Vec3
	Rotation float32 // радианы
	Scale    float32
}

// NewTransform создаёт трансформ в точке (x, y, z) с единичным масштабом.
func NewTransform(x, y, z float32) *Transform {
	return &Transform{Position: mgl32.Vec3{x, y, z}, Scale: 1}
}

// XY возвращает позицию без глубины.
func (t *Transform) XY() mgl32.Vec2 {
	return t.Position.Vec2()
}

// Translate сдвигает позицию на delta, сохраняя исходный Z.
func (t *Transform) Translate(delta mgl32.Vec3) {
	z := t.Position.Z()
	t.Position = t.Position.Add(delta)
	t.Position[2] = z
}

// SetXY ставит X и Y, не трогая Z.
func (t *Transform) SetXY(xy mgl32.Vec2) {
	t.Position[0] = xy.X()
	t.Position[1] = xy.Y()
}
