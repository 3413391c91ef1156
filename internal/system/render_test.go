package system

import (
	"testing"

	"go-maze-runners/internal/component"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/level"
	"go-maze-runners/pkg/maze"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroNoise struct{}

func (zeroNoise) Noise2D(_, _ float64) float64 { return 0 }

func newRenderFixture() *RenderSystem {
	ecs := newTestECS(maze.Cell{Row: 1, Col: 1}, maze.Cell{Row: 0, Col: 1},
		"#.####",
		"#....#",
		"#.##.#",
		"#....#",
		"######",
	)
	return NewRenderSystem(ecs, zeroNoise{}, config.Default().Fog, 600, 600)
}

func TestRenderHidesTrapsOutOfSight(t *testing.T) {
	s := newRenderFixture()
	s.ecs.Level.Traps.Put(maze.Cell{Row: 1, Col: 3}) // та же строка, видно
	s.ecs.Level.Traps.Put(maze.Cell{Row: 3, Col: 3}) // не видно
	s.ecs.Level.Emitters = []*level.Emitter{{Cell: maze.Cell{Row: 2, Col: 2}, Direction: down}}

	surface := &recordingSurface{}
	s.Draw(surface)
	assert.Equal(t, 1, countColor(surface.rects, config.TrapColor))
	assert.Zero(t, surface.polygons)

	s.ecs.Cheats.ShowAllTraps = true
	surface = &recordingSurface{}
	s.Draw(surface)
	assert.Equal(t, 2, countColor(surface.rects, config.TrapColor))
	assert.Equal(t, 1, surface.polygons)
	assert.Equal(t, 1, surface.strokes, "exit outline")
}

func TestRenderFogOnlyOnBossLevels(t *testing.T) {
	s := newRenderFixture()

	surface := &recordingSurface{}
	s.Draw(surface)
	assert.Empty(t, surface.fogs)

	s.ecs.Level.Difficulty.IsBoss = true
	surface = &recordingSurface{}
	s.Draw(surface)
	require.Len(t, surface.fogs, 1)
	fog := surface.fogs[0]
	assert.Equal(t, uint8(255), fog.Opacity)
	assert.Equal(t, 600.0, fog.Width)
	assert.Equal(t, 600.0, fog.Height)
	assert.Len(t, fog.Holes, 3)

	s.ecs.Cheats.FogOn = false
	surface = &recordingSurface{}
	s.Draw(surface)
	assert.Empty(t, surface.fogs)
}

func TestFogWidensDuringSustain(t *testing.T) {
	s := newRenderFixture()
	s.ecs.Level.Difficulty.IsBoss = true

	base := s.BuildFog()
	s.ecs.Eyes.State = &component.Sustain{Path: []maze.Cell{{Row: 1, Col: 1}, {Row: 0, Col: 1}}}
	wide := s.BuildFog()

	// первая дыра — 5/6 радиуса; радиус 6 клеток по 10 px
	assert.InDelta(t, 15+50.0, base.Holes[0].Points[0].X, 1e-9)
	assert.InDelta(t, 15+75.0, wide.Holes[0].Points[0].X, 1e-9)
}

func TestRenderSustainPathAndPopups(t *testing.T) {
	s := newRenderFixture()
	s.ecs.Eyes.State = &component.Sustain{Path: []maze.Cell{{Row: 1, Col: 1}, {Row: 0, Col: 1}}}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: 10, Y: 10}
	s.ecs.Texts[id] = &component.Text{Value: "+50", Color: config.HealTextColor}

	surface := &recordingSurface{}
	s.Draw(surface)
	assert.Equal(t, 1, surface.lines)
	assert.Equal(t, 2, countColor(surface.circles, config.DivineEyesColor))
	assert.Equal(t, []string{"+50"}, surface.texts)
}
