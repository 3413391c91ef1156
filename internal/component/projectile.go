// internal/component/projectile.go
package component

import (
	"image/color"

	"go-maze-runners/pkg/maze"
)

// Projectile представляет летящий снаряд эмиттера.
// Позиция хранится отдельно, в ECS.Positions.
type Projectile struct {
	Direction maze.Cell // единичный вектор
	Speed     float64   // пикселей в секунду
	Damage    int
	// Active становится true, когда снаряд впервые оказался в открытой клетке.
	// До этого он ещё внутри стены-эмиттера и стены его не уничтожают.
	Active bool
}

// Text — всплывающая надпись (урон, лечение)
type Text struct {
	Value     string
	Color     color.RGBA
	SpawnTime float64 // игровое время появления
	Duration  float64
}
