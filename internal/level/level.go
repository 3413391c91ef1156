// internal/level/level.go
package level

import (
	"fmt"
	"math"

	"go-maze-runners/internal/config"
	"go-maze-runners/pkg/maze"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Level — один сгенерированный лабиринт со всем содержимым.
// Меняются только расходуемые множества (лечение, усиления) и таймеры эмиттеров.
type Level struct {
	Grid            *maze.Grid
	Entrance        maze.Cell
	Exit            maze.Cell
	Traps           mapset.Set[maze.Cell]
	HealingStations mapset.Set[maze.Cell]
	PowerUps        mapset.Set[maze.Cell]
	Emitters        []*Emitter
	Difficulty      Difficulty
}

// New собирает пустой уровень поверх готовой сетки. Удобно для тестов.
func New(grid *maze.Grid, entrance, exit maze.Cell, difficulty Difficulty) *Level {
	return &Level{
		Grid:            grid,
		Entrance:        entrance,
		Exit:            exit,
		Traps:           mapset.New[maze.Cell](),
		HealingStations: mapset.New[maze.Cell](),
		PowerUps:        mapset.New[maze.Cell](),
		Difficulty:      difficulty,
	}
}

// Generate строит новый уровень для текущего счёта:
// лабиринт, вход/выход, ловушки, лечение, эмиттеры и (на средних картах) усиления.
func Generate(score int, s *config.Settings, rng maze.Rand) (*Level, error) {
	difficulty := DifficultyForScore(score, s)

	grid, err := maze.Generate(difficulty.MazeSize, difficulty.MazeSize, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate level for score %d: %w", score, err)
	}
	entrance, exit := maze.PlaceEntranceExit(grid, rng)

	lvl := New(grid, entrance, exit, difficulty)
	lvl.Traps, lvl.HealingStations = PlaceItems(grid, entrance, exit,
		difficulty.TrapProbability, s.Hazards.HealProbability, rng)
	lvl.Emitters = PlaceProjectileEmitters(grid, difficulty.ProjectileSpawnChance, s.Projectile.Cooldown, rng)
	if difficulty.SizeClass == Medium {
		lvl.PowerUps = PlacePowerUps(grid, entrance, exit, s.PowerUp.SpawnChance, rng)
	}

	log.WithFields(log.Fields{
		"score":     score,
		"size":      difficulty.MazeSize,
		"class":     difficulty.SizeClass,
		"traps":     lvl.Traps.Size(),
		"heals":     lvl.HealingStations.Size(),
		"emitters":  len(lvl.Emitters),
		"power_ups": lvl.PowerUps.Size(),
	}).Debug("level generated")

	return lvl, nil
}

// CellSize — размер клетки в пикселях, чтобы лабиринт целиком влез в область
func (l *Level) CellSize(areaWidth, areaHeight float64) float64 {
	return math.Min(areaWidth/float64(l.Grid.Width), areaHeight/float64(l.Grid.Height))
}

// IsVisible: предмет виден, если он в одной строке или столбце с игроком
// и между ними нет стен.
func (l *Level) IsVisible(item, player maze.Cell) bool {
	var step maze.Cell
	switch {
	case item.Row == player.Row && item.Col != player.Col:
		step.Col = sign(item.Col - player.Col)
	case item.Col == player.Col && item.Row != player.Row:
		step.Row = sign(item.Row - player.Row)
	case item == player:
		return true
	default:
		return false
	}
	for c := player.Add(step); c != item; c = c.Add(step) {
		if !l.Grid.IsOpen(c) {
			return false
		}
	}
	return true
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
