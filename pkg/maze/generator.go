// pkg/maze/generator.go
package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/stack"
)

// MinSize — минимальная сторона лабиринта
const MinSize = 5

// ErrInvalidSize возвращается, если размеры чётные или слишком маленькие.
var ErrInvalidSize = errors.New("maze: width and height must be odd and >= 5")

// Rand — источник случайности для генерации.
// Ему удовлетворяют *rand.Rand и utils.PRNGService.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// carveSteps — шаги между узлами виртуального графа (узлы только на нечётных координатах)
var carveSteps = []Cell{
	{Row: -2, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: -2}, {Row: 0, Col: 2},
}

// Generate строит идеальный лабиринт итеративным DFS с явным стеком.
// Все клетки начинаются стенами, вырезание идёт от (1,1).
func Generate(width, height int, rng Rand) (*Grid, error) {
	if width < MinSize || height < MinSize || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrInvalidSize)
	}

	grid := NewGrid(width, height)
	start := Cell{Row: 1, Col: 1}
	grid.Set(start, Open)

	frontier := stack.New[Cell]()
	frontier.Push(start)

	neighbors := make([]Cell, 0, len(carveSteps))
	for frontier.Size() > 0 {
		current := frontier.Peek()

		neighbors = neighbors[:0]
		for _, step := range carveSteps {
			next := current.Add(step)
			// Внешняя рамка остаётся стеной
			if next.Row <= 0 || next.Row >= height-1 || next.Col <= 0 || next.Col >= width-1 {
				continue
			}
			if grid.At(next) == Wall {
				neighbors = append(neighbors, next)
			}
		}

		if len(neighbors) == 0 {
			frontier.Pop()
			continue
		}

		chosen := neighbors[rng.Intn(len(neighbors))]
		between := Cell{
			Row: current.Row + (chosen.Row-current.Row)/2,
			Col: current.Col + (chosen.Col-current.Col)/2,
		}
		grid.Set(between, Open)
		grid.Set(chosen, Open)
		frontier.Push(chosen)
	}

	return grid, nil
}

// PlaceEntranceExit пробивает выход в верхней строке и вход в нижней.
// Предпочитаются нечётные столбцы, у которых соседняя внутренняя клетка уже открыта.
func PlaceEntranceExit(grid *Grid, rng Rand) (entrance, exit Cell) {
	exitCol := pickBoundaryColumn(grid, 1, rng)
	entranceCol := pickBoundaryColumn(grid, grid.Height-2, rng)

	exit = Cell{Row: 0, Col: exitCol}
	entrance = Cell{Row: grid.Height - 1, Col: entranceCol}
	grid.Set(exit, Open)
	grid.Set(entrance, Open)
	return entrance, exit
}

func pickBoundaryColumn(grid *Grid, innerRow int, rng Rand) int {
	var all, preferred []int
	for col := 1; col < grid.Width; col += 2 {
		all = append(all, col)
		if grid.IsOpen(Cell{Row: innerRow, Col: col}) {
			preferred = append(preferred, col)
		}
	}
	if len(preferred) == 0 {
		preferred = all
	}
	return preferred[rng.Intn(len(preferred))]
}
