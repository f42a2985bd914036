// internal/system/aim.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Aim считает направление и угол выстрела из точки from в точку to.
// Угол = atan2(from - to) + π/2: спрайт снаряда нарисован «носом вверх».
// ok == false, если точки совпадают и направление не определено.
func Aim(from, to mgl32.Vec2) (dir mgl32.Vec2, angle float32, ok bool) {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec2{}, 0, false
	}
	diff := from.Sub(to)
	angle = float32(math.Atan2(float64(diff.Y()), float64(diff.X())) + math.Pi/2)
	return d.Mul(1 / l), angle, true
}
