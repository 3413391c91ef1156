// internal/system/divine_eyes.go
package system

import (
	"go-maze-runners/internal/component"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/event"
	"go-maze-runners/pkg/maze"
)

// DivineEyesSystem ведёт машину состояний усиления:
// Inactive -> Animating (сфера летит к выходу) -> Sustain (путь виден до конца уровня).
type DivineEyesSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	settings        config.PowerUpSettings
}

func NewDivineEyesSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, settings config.PowerUpSettings) *DivineEyesSystem {
	return &DivineEyesSystem{ecs: ecs, eventDispatcher: eventDispatcher, settings: settings}
}

// Grant добавляет одно усиление, если есть место
func (s *DivineEyesSystem) Grant() bool {
	eyes := s.ecs.Eyes
	if eyes.Inventory >= s.settings.MaxInventory {
		return false
	}
	eyes.Inventory++
	s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{
		Inventory: eyes.Inventory,
		Granted:   true,
		X:         s.ecs.Player.X,
		Y:         s.ecs.Player.Y,
	}})
	return true
}

// Activate тратит одно усиление, если оно не активно и путь до выхода существует
func (s *DivineEyesSystem) Activate() bool {
	eyes := s.ecs.Eyes
	if _, idle := eyes.State.(component.Inactive); !idle || eyes.Inventory <= 0 {
		return false
	}
	path := maze.FindPath(s.ecs.Level.Grid, s.ecs.Player.Cell, s.ecs.Level.Exit)
	if len(path) == 0 {
		return false
	}
	eyes.Inventory--
	eyes.State = component.NewAnimating(path, s.settings.AnimationDuration)
	s.eventDispatcher.Dispatch(event.Event{Type: event.DivineEyesActivated, Data: event.PowerUpData{
		Inventory: eyes.Inventory,
		Granted:   true,
		X:         s.ecs.Player.X,
		Y:         s.ecs.Player.Y,
	}})
	return true
}

func (s *DivineEyesSystem) Update(deltaTime float64) {
	eyes := s.ecs.Eyes
	switch state := eyes.State.(type) {
	case *component.Animating:
		if state.Advance(deltaTime) {
			eyes.State = &component.Sustain{Path: state.Path}
		}
	case *component.Sustain:
		// Пустой результат (например, игрок за пределами сетки) оставляет старый путь
		if path := maze.FindPath(s.ecs.Level.Grid, s.ecs.Player.Cell, s.ecs.Level.Exit); len(path) > 0 {
			state.Path = path
		}
	}
}

// OrbPosition — мировая позиция летящей сферы; ok=false, если анимации нет
func OrbPosition(ecs *entity.ECS) (x, y float64, ok bool) {
	state, animating := ecs.Eyes.State.(*component.Animating)
	if !animating {
		return 0, 0, false
	}
	return maze.Interpolate(state.Path, state.Progress, ecs.CellSize)
}
