// internal/system/projectile.go
package system

import (
	"math"

	"go-maze-runners/internal/component"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/event"
	"go-maze-runners/internal/types"
	"go-maze-runners/pkg/maze"
)

// ProjectileSystem запускает снаряды из эмиттеров, двигает их и проверяет попадания
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	speedFactor     float64
	damage          int
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, settings *config.Settings) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		speedFactor:     settings.Projectile.SpeedFactor,
		damage:          settings.Hazards.TrapDamage,
	}
}

// FireEmitters: эмиттер стреляет, когда с прошлого выстрела прошло не меньше Cooldown.
// Снаряд появляется на границе стены и коридора.
func (s *ProjectileSystem) FireEmitters() {
	now := s.ecs.GameTime
	cs := s.ecs.CellSize
	for _, emitter := range s.ecs.Level.Emitters {
		if now-emitter.LastShot < emitter.Cooldown {
			continue
		}
		cx, cy := maze.CellCenter(emitter.Cell, cs)
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{
			X: cx + float64(emitter.Direction.Col)*cs/2,
			Y: cy + float64(emitter.Direction.Row)*cs/2,
		}
		s.ecs.Projectiles[id] = &component.Projectile{
			Direction: emitter.Direction,
			Speed:     cs * s.speedFactor,
			Damage:    s.damage,
		}
		emitter.LastShot = now
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	cs := s.ecs.CellSize
	grid := s.ecs.Level.Grid
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		pos.X += float64(proj.Direction.Col) * proj.Speed * deltaTime
		pos.Y += float64(proj.Direction.Row) * proj.Speed * deltaTime

		cell := maze.Cell{Row: int(math.Floor(pos.Y / cs)), Col: int(math.Floor(pos.X / cs))}
		if !grid.InBounds(cell) {
			s.removeProjectile(id)
			continue
		}
		open := grid.IsOpen(cell)
		if !proj.Active {
			if !open {
				continue
			}
			proj.Active = true
		}
		if !open {
			s.removeProjectile(id)
			continue
		}

		if s.hitsPlayer(pos, cs) {
			ApplyDamage(s.ecs, s.eventDispatcher, proj.Damage, false, event.SourceProjectile)
			s.removeProjectile(id)
		}
	}
}

// hitsPlayer — пересечение квадрата снаряда (0.2 клетки) с квадратом игрока (1 клетка)
func (s *ProjectileSystem) hitsPlayer(pos *component.Position, cs float64) bool {
	half := cs * config.ProjectileBoxFactor / 2
	px, py := s.ecs.Player.X, s.ecs.Player.Y
	return pos.X-half < px+cs && pos.X+half > px &&
		pos.Y-half < py+cs && pos.Y+half > py
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	s.ecs.RemoveEntity(id)
}
