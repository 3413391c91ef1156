// internal/system/collision.go
package system

import (
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/event"
	"go-maze-runners/pkg/maze"
)

// CollisionSystem обрабатывает контакт игрока с содержимым клеток:
// ловушки, лечебные станции, усиления и выход.
// Все проверки работают только когда игрок стоит.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             maze.Rand
	hazards         config.HazardSettings
	maxInventory    int
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng maze.Rand, settings *config.Settings) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		hazards:         settings.Hazards,
		maxInventory:    settings.PowerUp.MaxInventory,
	}
}

func (s *CollisionSystem) active() bool {
	return !s.ecs.Player.IsMoving() && !s.ecs.Cheats.NoCollision
}

// CheckTraps: ловушка срабатывает один раз за визит.
// Метка сбрасывается, как только игрок стоит не на ловушке.
func (s *CollisionSystem) CheckTraps() {
	if !s.active() {
		return
	}
	cell := s.ecs.Player.Cell
	if !s.ecs.Level.Traps.Has(cell) {
		s.ecs.LastDamaged = nil
		return
	}
	if s.ecs.LastDamaged != nil && *s.ecs.LastDamaged == cell {
		return
	}

	damage := s.hazards.TrapDamage
	crit := s.rng.Float64() < s.ecs.Level.Difficulty.CritChance
	if crit {
		damage += int(s.hazards.CritHealthFactor * float64(s.ecs.Player.Health))
	}
	ApplyDamage(s.ecs, s.eventDispatcher, damage, crit, event.SourceTrap)
	s.ecs.LastDamaged = &cell
}

// CheckHealing: станция одноразовая, лечит долю текущего здоровья
func (s *CollisionSystem) CheckHealing() {
	if !s.active() {
		return
	}
	cell := s.ecs.Player.Cell
	if !s.ecs.Level.HealingStations.Has(cell) {
		return
	}
	health := s.ecs.Player.Health
	amount := int(float64(health)+float64(health)*s.hazards.HealFactor) - health
	Heal(s.ecs, s.eventDispatcher, amount)
	s.ecs.Level.HealingStations.Remove(cell)
}

// CheckPowerUps: клетка исчезает всегда, инвентарь растёт только до лимита
func (s *CollisionSystem) CheckPowerUps() {
	if !s.active() {
		return
	}
	cell := s.ecs.Player.Cell
	if !s.ecs.Level.PowerUps.Has(cell) {
		return
	}
	eyes := s.ecs.Eyes
	granted := eyes.Inventory < s.maxInventory
	if granted {
		eyes.Inventory++
	}
	s.ecs.Level.PowerUps.Remove(cell)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{
		Inventory: eyes.Inventory,
		Granted:   granted,
		X:         s.ecs.Player.X,
		Y:         s.ecs.Player.Y,
	}})
}

// ReachedExit — игрок стоит на клетке выхода (коллизии тут не важны)
func (s *CollisionSystem) ReachedExit() bool {
	return !s.ecs.Player.IsMoving() && s.ecs.Player.Cell == s.ecs.Level.Exit
}
