// internal/component/weapon.go
package component

// Weapon описывает оружие игрока. Пока справочная информация:
// логика стрельбы эти поля не читает.
type Weapon struct {
	Name     string
	FireRate float32 // выстрелов в секунду
	Damage   int
	Spread   float32 // радианы
}

// GunGlock — стартовое оружие.
var GunGlock = Weapon{
	Name:     "glock",
	FireRate: 3,
	Damage:   12,
	Spread:   0.05,
}
