// internal/level/items.go
package level

import (
	"go-maze-runners/pkg/maze"

	"github.com/zyedidia/generic/mapset"
)

// Emitter — ловушка в стене, периодически стреляющая снарядом вдоль коридора
type Emitter struct {
	Cell      maze.Cell // клетка стены
	Direction maze.Cell // единичный вектор направления выстрела
	Cooldown  float64   // секунды между выстрелами
	LastShot  float64   // игровое время последнего выстрела
}

// PlaceItems раскидывает ловушки и лечебные станции по открытым клеткам.
// Один бросок на клетку: значения не пересекаются, клетка не бывает и тем и другим.
func PlaceItems(grid *maze.Grid, entrance, exit maze.Cell, trapProb, healProb float64, rng maze.Rand) (traps, heals mapset.Set[maze.Cell]) {
	traps = mapset.New[maze.Cell]()
	heals = mapset.New[maze.Cell]()
	for _, cell := range grid.OpenCells() {
		if cell == entrance || cell == exit {
			continue
		}
		roll := rng.Float64()
		switch {
		case roll < trapProb:
			traps.Put(cell)
		case roll < trapProb+healProb:
			heals.Put(cell)
		}
	}
	return traps, heals
}

// PlaceProjectileEmitters ставит эмиттеры во внутренние стены, стоящие между
// открытой клеткой-гнездом и открытым коридором в том же направлении.
// Направления перебираются по порядку до первого удачного броска, так что
// у стены не больше одного эмиттера.
func PlaceProjectileEmitters(grid *maze.Grid, spawnChance, cooldown float64, rng maze.Rand) []*Emitter {
	var emitters []*Emitter
	for r := 1; r < grid.Height-1; r++ {
		for c := 1; c < grid.Width-1; c++ {
			cell := maze.Cell{Row: r, Col: c}
			if grid.IsOpen(cell) {
				continue
			}
			for _, dir := range maze.Directions {
				if !grid.IsOpen(cell.Add(dir)) || !grid.IsOpen(cell.Add(dir.Scale(2))) {
					continue
				}
				if rng.Float64() < spawnChance {
					emitters = append(emitters, &Emitter{
						Cell:      cell,
						Direction: dir,
						Cooldown:  cooldown,
					})
					break
				}
			}
		}
	}
	return emitters
}

// PlacePowerUps — независимый бросок на каждую открытую клетку, кроме входа и выхода.
// Лимит инвентаря здесь не учитывается.
func PlacePowerUps(grid *maze.Grid, entrance, exit maze.Cell, chance float64, rng maze.Rand) mapset.Set[maze.Cell] {
	powerUps := mapset.New[maze.Cell]()
	for _, cell := range grid.OpenCells() {
		if cell == entrance || cell == exit {
			continue
		}
		if rng.Float64() < chance {
			powerUps.Put(cell)
		}
	}
	return powerUps
}
