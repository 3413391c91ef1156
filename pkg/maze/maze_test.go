package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floodFill(g *Grid, from Cell) map[Cell]bool {
	seen := map[Cell]bool{from: true}
	stack := []Cell{from}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			n := c.Add(d)
			if g.IsOpen(n) && !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return seen
}

func countEdges(g *Grid) int {
	edges := 0
	for _, c := range g.OpenCells() {
		if g.IsOpen(c.Add(Cell{Row: 0, Col: 1})) {
			edges++
		}
		if g.IsOpen(c.Add(Cell{Row: 1, Col: 0})) {
			edges++
		}
	}
	return edges
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"even width", 20, 21},
		{"even height", 21, 22},
		{"too small", 3, 3},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Generate(tt.width, tt.height, rand.New(rand.NewSource(1)))
			require.ErrorIs(t, err, ErrInvalidSize)
			assert.Nil(t, grid)
		})
	}
}

func TestGenerateProducesPerfectMaze(t *testing.T) {
	for _, size := range []int{5, 21, 41, 61} {
		for seed := int64(1); seed <= 10; seed++ {
			grid, err := Generate(size, size, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			open := grid.OpenCells()
			require.NotEmpty(t, open)

			// Одна компонента связности
			reached := floodFill(grid, Cell{Row: 1, Col: 1})
			assert.Len(t, reached, len(open), "size %d seed %d: not all open cells reachable", size, seed)

			// Дерево: рёбер ровно на одно меньше, чем вершин
			assert.Equal(t, len(open)-1, countEdges(grid), "size %d seed %d: carving produced a cycle", size, seed)

			// Нет открытых блоков 2x2
			for r := 0; r < grid.Height-1; r++ {
				for c := 0; c < grid.Width-1; c++ {
					block := grid.IsOpen(Cell{r, c}) && grid.IsOpen(Cell{r + 1, c}) &&
						grid.IsOpen(Cell{r, c + 1}) && grid.IsOpen(Cell{r + 1, c + 1})
					assert.False(t, block, "open 2x2 block at %d,%d", r, c)
				}
			}

			// Рамка цела
			for c := 0; c < grid.Width; c++ {
				assert.Equal(t, Wall, grid.At(Cell{0, c}))
				assert.Equal(t, Wall, grid.At(Cell{grid.Height - 1, c}))
			}
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a, err := Generate(21, 21, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(21, 21, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.OpenCells(), b.OpenCells())
}

func TestPlaceEntranceExit(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid, err := Generate(21, 21, rng)
		require.NoError(t, err)

		entrance, exit := PlaceEntranceExit(grid, rng)

		assert.Equal(t, 0, exit.Row)
		assert.Equal(t, grid.Height-1, entrance.Row)
		assert.Equal(t, 1, exit.Col%2)
		assert.Equal(t, 1, entrance.Col%2)
		assert.True(t, grid.IsOpen(exit))
		assert.True(t, grid.IsOpen(entrance))
		assert.True(t, grid.IsOpen(Cell{Row: 1, Col: exit.Col}))
		assert.True(t, grid.IsOpen(Cell{Row: grid.Height - 2, Col: entrance.Col}))
	}
}

func TestPlaceEntranceExitFallsBackToAnyOddColumn(t *testing.T) {
	grid := NewGrid(7, 7)
	entrance, exit := PlaceEntranceExit(grid, rand.New(rand.NewSource(3)))

	assert.Contains(t, []int{1, 3, 5}, exit.Col)
	assert.Contains(t, []int{1, 3, 5}, entrance.Col)
	assert.True(t, grid.IsOpen(exit))
	assert.True(t, grid.IsOpen(entrance))
}

func TestFindPath(t *testing.T) {
	t.Run("start equals goal", func(t *testing.T) {
		grid := ParseGrid("...", "...", "...")
		path := FindPath(grid, Cell{1, 1}, Cell{1, 1})
		assert.Equal(t, []Cell{{1, 1}}, path)
	})

	t.Run("unreachable goal", func(t *testing.T) {
		grid := ParseGrid(
			".#...",
			"##.#.",
			"...#.",
		)
		assert.Empty(t, FindPath(grid, Cell{0, 0}, Cell{2, 4}))
	})

	t.Run("wall endpoints", func(t *testing.T) {
		grid := ParseGrid("..#", "...")
		assert.Empty(t, FindPath(grid, Cell{0, 0}, Cell{0, 2}))
		assert.Empty(t, FindPath(grid, Cell{0, 0}, Cell{5, 5}))
	})

	t.Run("shortest path", func(t *testing.T) {
		grid := ParseGrid(
			".....",
			".###.",
			".....",
		)
		path := FindPath(grid, Cell{0, 0}, Cell{2, 4})
		require.Len(t, path, 7)
		assert.Equal(t, Cell{0, 0}, path[0])
		assert.Equal(t, Cell{2, 4}, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			dr := path[i].Row - path[i-1].Row
			dc := path[i].Col - path[i-1].Col
			assert.Equal(t, 1, dr*dr+dc*dc, "steps must be 4-connected")
			assert.True(t, grid.IsOpen(path[i]))
		}
	})
}

func TestInterpolate(t *testing.T) {
	const cellSize = 10.0
	path := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}}

	x, y, ok := Interpolate(path, 0, cellSize)
	require.True(t, ok)
	assert.InDelta(t, 5.0, x, 1e-9)
	assert.InDelta(t, 5.0, y, 1e-9)

	x, y, ok = Interpolate(path, 1, cellSize)
	require.True(t, ok)
	assert.InDelta(t, 25.0, x, 1e-9)
	assert.InDelta(t, 15.0, y, 1e-9)

	// Середина пути длиной 30 — на 15, т.е. посередине второго отрезка
	x, y, ok = Interpolate(path, 0.5, cellSize)
	require.True(t, ok)
	assert.InDelta(t, 20.0, x, 1e-9)
	assert.InDelta(t, 5.0, y, 1e-9)

	_, _, ok = Interpolate(nil, 0.5, cellSize)
	assert.False(t, ok)

	for _, p := range []float64{0, 0.3, 1} {
		x, y, ok = Interpolate([]Cell{{2, 3}}, p, cellSize)
		require.True(t, ok)
		assert.InDelta(t, 35.0, x, 1e-9)
		assert.InDelta(t, 25.0, y, 1e-9)
	}
}

func TestGeneratedMazeIsSolvable(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	grid, err := Generate(41, 41, rng)
	require.NoError(t, err)
	entrance, exit := PlaceEntranceExit(grid, rng)

	assert.NotEqual(t, entrance, exit)
	path := FindPath(grid, entrance, exit)
	require.NotEmpty(t, path)
	assert.Equal(t, entrance, path[0])
	assert.Equal(t, exit, path[len(path)-1])
}
