package system

import (
	"image/color"

	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/level"
	"go-maze-runners/pkg/maze"
	"go-maze-runners/pkg/render"
)

const testCellSize = 10.0

// newTestECS собирает сессию поверх нарисованного лабиринта.
// Игрок стоит на входе, размер клетки 10 пикселей.
func newTestECS(entrance, exit maze.Cell, rows ...string) *entity.ECS {
	grid := maze.ParseGrid(rows...)
	ecs := entity.NewECS(100)
	ecs.Level = level.New(grid, entrance, exit, level.Difficulty{CritChance: 0.1})
	ecs.CellSize = testCellSize
	ecs.Player.PlaceAt(entrance, testCellSize)
	return ecs
}

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }
func (r fixedRand) Intn(int) int     { return 0 }

// recordingSurface запоминает вызовы отрисовки
type recordingSurface struct {
	rects    []color.Color
	strokes  int
	circles  []color.Color
	lines    int
	polygons int
	texts    []string
	fogs     []render.Fog
}

func (s *recordingSurface) DrawRect(_, _, _, _ float64, clr color.Color) {
	s.rects = append(s.rects, clr)
}

func (s *recordingSurface) StrokeRect(_, _, _, _, _ float64, _ color.Color) { s.strokes++ }

func (s *recordingSurface) DrawCircle(_, _, _ float64, clr color.Color) {
	s.circles = append(s.circles, clr)
}

func (s *recordingSurface) DrawLines(_ []render.Point, _ float64, _ color.Color) { s.lines++ }
func (s *recordingSurface) DrawPolygon(_ []render.Point, _ color.Color)          { s.polygons++ }

func (s *recordingSurface) DrawText(str string, _, _ float64, _ color.Color) {
	s.texts = append(s.texts, str)
}

func (s *recordingSurface) DrawFog(fog render.Fog) { s.fogs = append(s.fogs, fog) }

func countColor(colors []color.Color, want color.Color) int {
	n := 0
	for _, c := range colors {
		if c == want {
			n++
		}
	}
	return n
}
