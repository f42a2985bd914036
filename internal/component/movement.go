// component/movement.go
package component

import "github.com/go-gl/mathgl/mgl32"

// Velocity — компонент скорости для скриптовых сущностей.
type Velocity struct {
	Value mgl32.Vec2
	Speed float32
}
