// internal/component/player.go
package component

import "go-maze-runners/pkg/maze"

// Player — аватар игрока.
// Cell — логическая клетка, X/Y — пиксельная позиция левого верхнего угла для отрисовки.
type Player struct {
	Cell   maze.Cell
	X, Y   float64
	Health int
	Move   *Movement // nil — стоит на месте
}

// IsMoving сообщает, идёт ли анимация шага
func (p *Player) IsMoving() bool {
	return p.Move != nil
}

// PlaceAt ставит игрока в клетку без анимации
func (p *Player) PlaceAt(c maze.Cell, cellSize float64) {
	p.Cell = c
	p.X = float64(c.Col) * cellSize
	p.Y = float64(c.Row) * cellSize
	p.Move = nil
}

// Center — центр аватара в мировых координатах
func (p *Player) Center(cellSize float64) (float64, float64) {
	return p.X + cellSize/2, p.Y + cellSize/2
}

// Cheats — отладочные переключатели
type Cheats struct {
	ShowAllTraps bool
	NoCollision  bool
	FogOn        bool
}

// Camera — масштаб и смещение вида. Смещение вычисляется каждый тик.
type Camera struct {
	Zoom, TargetZoom float64
	OffsetX, OffsetY float64
}
