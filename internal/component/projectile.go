// internal/component/projectile.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Direction mgl32.Vec2 // всегда единичной длины
	Speed     float32
	Angle     float32    // только для ориентации спрайта
	Origin    mgl32.Vec2 // точка появления, нужна для деспавна
	Seq       uint64     // порядковый номер, меньше — старше
}
