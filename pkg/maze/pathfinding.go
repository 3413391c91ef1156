// pkg/maze/pathfinding.go
package maze

import (
	"math"

	"github.com/zyedidia/generic/queue"
)

// FindPath находит кратчайший путь (BFS) по открытым клеткам от start до goal.
// Возвращает nil, если цель недостижима.
func FindPath(grid *Grid, start, goal Cell) []Cell {
	if !grid.IsOpen(start) || !grid.IsOpen(goal) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	// cameFrom хранит индекс предыдущей клетки; -1 — не посещена
	cameFrom := make([]int, grid.Width*grid.Height)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	startIdx := grid.index(start)
	goalIdx := grid.index(goal)
	cameFrom[startIdx] = startIdx

	frontier := queue.New[Cell]()
	frontier.Enqueue(start)
	found := false
	for !frontier.Empty() {
		current := frontier.Dequeue()
		if current == goal {
			found = true
			break
		}
		currentIdx := grid.index(current)
		for _, d := range Directions {
			next := current.Add(d)
			if !grid.IsOpen(next) {
				continue
			}
			nextIdx := grid.index(next)
			if cameFrom[nextIdx] != -1 {
				continue
			}
			cameFrom[nextIdx] = currentIdx
			frontier.Enqueue(next)
		}
	}
	if !found {
		return nil
	}

	return reconstructPath(grid, cameFrom, startIdx, goalIdx)
}

func reconstructPath(grid *Grid, cameFrom []int, startIdx, goalIdx int) []Cell {
	path := []Cell{}
	for idx := goalIdx; ; idx = cameFrom[idx] {
		path = append(path, Cell{Row: idx / grid.Width, Col: idx % grid.Width})
		if idx == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// CellCenter возвращает мировые координаты центра клетки
func CellCenter(c Cell, cellSize float64) (x, y float64) {
	return float64(c.Col)*cellSize + cellSize/2, float64(c.Row)*cellSize + cellSize/2
}

// Interpolate returns the world point at fraction progress of the path's arc length.
// ok is false for an empty path.
func Interpolate(path []Cell, progress, cellSize float64) (x, y float64, ok bool) {
	if len(path) == 0 {
		return 0, 0, false
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	xs := make([]float64, len(path))
	ys := make([]float64, len(path))
	for i, c := range path {
		xs[i], ys[i] = CellCenter(c, cellSize)
	}

	distances := make([]float64, len(path)-1)
	total := 0.0
	for i := range distances {
		distances[i] = math.Hypot(xs[i+1]-xs[i], ys[i+1]-ys[i])
		total += distances[i]
	}

	target := total * progress
	acc := 0.0
	for i, d := range distances {
		if d > 0 && acc+d >= target {
			t := (target - acc) / d
			return xs[i] + (xs[i+1]-xs[i])*t, ys[i] + (ys[i+1]-ys[i])*t, true
		}
		acc += d
	}
	last := len(path) - 1
	return xs[last], ys[last], true
}
