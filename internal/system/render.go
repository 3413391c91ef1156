// internal/system/render.go
package system

import (
	"math"

	"go-maze-runners/internal/component"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/entity"
	"go-maze-runners/pkg/maze"
	"go-maze-runners/pkg/render"
)

// RenderSystem рисует мир через render.Surface. Состояние не меняет.
type RenderSystem struct {
	ecs   *entity.ECS
	noise render.Noise2D
	fog   config.FogSettings
	viewW float64
	viewH float64
}

func NewRenderSystem(ecs *entity.ECS, noise render.Noise2D, fog config.FogSettings, viewW, viewH float64) *RenderSystem {
	return &RenderSystem{ecs: ecs, noise: noise, fog: fog, viewW: viewW, viewH: viewH}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	if s.ecs.Level == nil {
		return
	}
	cs := s.ecs.CellSize
	zoom := s.ecs.Camera.Zoom
	size := math.Ceil(cs * zoom)

	surface.DrawRect(0, 0, s.viewW, s.viewH, config.BackgroundColor)
	s.drawMaze(surface, cs, size)
	s.drawSustainPath(surface, cs, zoom)
	s.drawItems(surface, cs, size, zoom)

	for id := range s.ecs.Projectiles {
		if pos, ok := s.ecs.Positions[id]; ok {
			x, y := WorldToScreen(pos.X, pos.Y, s.ecs)
			surface.DrawCircle(x, y, cs*config.ProjectileRadiusFactor*zoom, config.ProjectileColor)
		}
	}

	px, py := WorldToScreen(s.ecs.Player.X, s.ecs.Player.Y, s.ecs)
	surface.DrawRect(px, py, size, size, config.PlayerColor)

	for id, txt := range s.ecs.Texts {
		if pos, ok := s.ecs.Positions[id]; ok {
			x, y := WorldToScreen(pos.X, pos.Y, s.ecs)
			surface.DrawText(txt.Value, x, y, txt.Color)
		}
	}

	// Сфера поверх всего, кроме тумана
	if ox, oy, ok := OrbPosition(s.ecs); ok {
		shift := cs * config.FlyingOrbShiftFactor
		x, y := WorldToScreen(ox-shift, oy-shift, s.ecs)
		surface.DrawCircle(x, y, cs*config.FlyingOrbRadiusFactor*zoom, config.DivineEyesColor)
	}

	if s.ecs.Level.Difficulty.IsBoss && s.ecs.Cheats.FogOn {
		surface.DrawFog(s.BuildFog())
	}
}

func (s *RenderSystem) drawMaze(surface render.Surface, cs, size float64) {
	grid := s.ecs.Level.Grid
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			cell := maze.Cell{Row: r, Col: c}
			x, y := WorldToScreen(float64(c)*cs, float64(r)*cs, s.ecs)
			if !grid.IsOpen(cell) {
				surface.DrawRect(x, y, size, size, config.WallColor)
			}
			if cell == s.ecs.Level.Exit {
				surface.StrokeRect(x, y, size, size, config.ExitStrokeWidth, config.ExitColor)
			}
		}
	}
}

func (s *RenderSystem) drawSustainPath(surface render.Surface, cs, zoom float64) {
	state, ok := s.ecs.Eyes.State.(*component.Sustain)
	if !ok {
		return
	}
	points := make([]render.Point, 0, len(state.Path))
	for _, c := range state.Path {
		wx, wy := maze.CellCenter(c, cs)
		x, y := WorldToScreen(wx, wy, s.ecs)
		points = append(points, render.Point{X: x, Y: y})
	}
	if len(points) >= 2 {
		surface.DrawLines(points, max(1, math.Floor(config.PathLineWidth*zoom)), config.DivinePathColor)
	}
	for _, p := range points {
		surface.DrawCircle(p.X, p.Y, cs*config.PathOrbRadiusFactor*zoom, config.DivineEyesColor)
	}
}

func (s *RenderSystem) drawItems(surface render.Surface, cs, size, zoom float64) {
	lvl := s.ecs.Level
	player := s.ecs.Player.Cell
	showAll := s.ecs.Cheats.ShowAllTraps

	lvl.PowerUps.Each(func(c maze.Cell) {
		wx, wy := maze.CellCenter(c, cs)
		x, y := WorldToScreen(wx, wy, s.ecs)
		surface.DrawCircle(x, y, cs*config.ItemRadiusFactor*zoom, config.DivineEyesColor)
	})
	lvl.HealingStations.Each(func(c maze.Cell) {
		x, y := WorldToScreen(float64(c.Col)*cs, float64(c.Row)*cs, s.ecs)
		surface.DrawRect(x, y, size, size, config.HealColor)
	})
	lvl.Traps.Each(func(c maze.Cell) {
		if !showAll && !lvl.IsVisible(c, player) {
			return
		}
		x, y := WorldToScreen(float64(c.Col)*cs, float64(c.Row)*cs, s.ecs)
		surface.DrawRect(x, y, size, size, config.TrapColor)
	})
	for _, e := range lvl.Emitters {
		if !showAll && !lvl.IsVisible(e.Cell, player) {
			continue
		}
		wx, wy := maze.CellCenter(e.Cell, cs)
		x, y := WorldToScreen(wx, wy, s.ecs)
		surface.DrawCircle(x, y, cs*config.ItemRadiusFactor*zoom, config.TrapColor)
		surface.DrawPolygon(muzzle(x, y, e.Direction, cs*zoom/2), config.TrapColor)
	}
}

// muzzle — треугольник от центра эмиттера к краю клетки в сторону выстрела
func muzzle(x, y float64, dir maze.Cell, reach float64) []render.Point {
	dx, dy := float64(dir.Col), float64(dir.Row)
	// перпендикуляр к направлению
	nx, ny := -dy, dx
	w := reach * 0.4
	return []render.Point{
		{X: x + nx*w, Y: y + ny*w},
		{X: x - nx*w, Y: y - ny*w},
		{X: x + dx*reach, Y: y + dy*reach},
	}
}

// BuildFog строит слой тумана вокруг игрока в экранных координатах.
// При активном Sustain радиус больше.
func (s *RenderSystem) BuildFog() render.Fog {
	cs := s.ecs.CellSize
	radius := s.fog.RadiusCells * cs
	if _, sustain := s.ecs.Eyes.State.(*component.Sustain); sustain {
		radius *= s.fog.SustainBoost
	}
	params := render.FogParams{
		Points:          config.FogPolygonPoints,
		Radius:          radius,
		AmplitudeFactor: s.fog.AmplitudeFactor,
		NoiseScale:      s.fog.NoiseScale,
		Speed:           s.fog.Speed,
		FadeWidth:       s.fog.FadeWidth,
		FadeSteps:       s.fog.FadeSteps,
		Opacity:         s.fog.Opacity,
	}

	cx, cy := s.ecs.Player.Center(cs)
	polygon := render.FogPolygon(cx, cy, s.ecs.GameTime, params, s.noise)
	holes := render.FogHoles(polygon, cx, cy, params)
	for _, hole := range holes {
		for i, p := range hole.Points {
			hole.Points[i].X, hole.Points[i].Y = WorldToScreen(p.X, p.Y, s.ecs)
		}
	}

	scx, scy := WorldToScreen(cx, cy, s.ecs)
	return render.Fog{
		Width:   s.viewW,
		Height:  s.viewH,
		CenterX: scx,
		CenterY: scy,
		Opacity: s.fog.Opacity,
		Holes:   holes,
	}
}
