// pkg/maze/grid.go
package maze

// CellState — состояние клетки лабиринта
type CellState uint8

const (
	Wall CellState = iota
	Open
)

// Cell представляет клетку сетки (строка, столбец).
// Тот же тип используется как вектор направления.
type Cell struct {
	Row, Col int
}

// Directions — четыре кардинальных направления: вверх, вниз, влево, вправо.
// Порядок важен: он совпадает с приоритетом клавиш движения.
var Directions = []Cell{
	{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1},
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Scale multiplies a direction vector by a scalar.
func (c Cell) Scale(factor int) Cell {
	return Cell{Row: c.Row * factor, Col: c.Col * factor}
}

// IsZero сообщает, что вектор нулевой (нет направления)
func (c Cell) IsZero() bool {
	return c.Row == 0 && c.Col == 0
}

// Grid — прямоугольная сетка клеток, хранится построчно
type Grid struct {
	Width, Height int
	cells         []CellState
}

// NewGrid создаёт сетку, целиком заполненную стенами
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]CellState, width*height),
	}
}

// InBounds проверяет, что клетка внутри сетки
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// At возвращает состояние клетки; всё за пределами сетки считается стеной.
func (g *Grid) At(c Cell) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// IsOpen — сокращение для At(c) == Open
func (g *Grid) IsOpen(c Cell) bool {
	return g.At(c) == Open
}

// Set меняет состояние клетки. Клетки вне сетки игнорируются.
func (g *Grid) Set(c Cell, state CellState) {
	if !g.InBounds(c) {
		return
	}
	g.cells[g.index(c)] = state
}

// OpenCells возвращает все открытые клетки в порядке строк
func (g *Grid) OpenCells() []Cell {
	result := make([]Cell, 0, len(g.cells)/2)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.cells[r*g.Width+c] == Open {
				result = append(result, Cell{Row: r, Col: c})
			}
		}
	}
	return result
}

// CountOpen возвращает количество открытых клеток
func (g *Grid) CountOpen() int {
	n := 0
	for _, s := range g.cells {
		if s == Open {
			n++
		}
	}
	return n
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.Width + c.Col
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (open).
// Handy for fixtures; rows shorter than the first are padded with walls.
func ParseGrid(rows ...string) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for r, line := range rows {
		for c, ch := range line {
			if c >= g.Width {
				break
			}
			if ch != '#' {
				g.Set(Cell{Row: r, Col: c}, Open)
			}
		}
	}
	return g
}
