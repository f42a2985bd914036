// internal/component/player.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Player — управляемый игроком персонаж.
type Player struct {
	Speed  float32 // единиц в секунду
	Radius float32 // радиус персонажа, снаряд появляется на его краю
	Gun    Weapon
	// MoveDir пишется фазой ввода и читается фазой движения.
	// Не нормализуется в режиме raw-sum.
	MoveDir mgl32.Vec3
}
