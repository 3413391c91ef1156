// internal/system/text.go
package system

import (
	"fmt"
	"image/color"

	"go-maze-runners/internal/component"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/event"
)

// TextSystem создаёт всплывающие надписи по игровым событиям и убирает устаревшие.
type TextSystem struct {
	ecs      *entity.ECS
	settings config.PopupSettings
}

// NewTextSystem создает систему и подписывает её на события урона, лечения и усилений.
func NewTextSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, settings config.PopupSettings) *TextSystem {
	s := &TextSystem{ecs: ecs, settings: settings}
	eventDispatcher.Subscribe(event.PlayerDamaged, s,
		event.PlayerHealed, event.PowerUpCollected, event.DivineEyesActivated)
	return s
}

func (s *TextSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.DamageData:
		if data.Crit {
			s.Spawn(fmt.Sprintf("CRIT! -%d", data.Amount), config.CritTextColor, data.X, data.Y)
		} else {
			s.Spawn(fmt.Sprintf("-%d", data.Amount), config.DamageTextColor, data.X, data.Y)
		}
	case event.HealData:
		s.Spawn(fmt.Sprintf("+%d", data.Amount), config.HealTextColor, data.X, data.Y)
	case event.PowerUpData:
		switch {
		case e.Type == event.DivineEyesActivated:
			s.Spawn("Divine Eyes opened", config.DivineEyesColor, data.X, data.Y)
		case data.Granted:
			s.Spawn("Divine Eyes +1", config.DivineEyesColor, data.X, data.Y)
		}
	}
}

// Spawn добавляет надпись в мировой точке (x, y)
func (s *TextSystem) Spawn(value string, clr color.RGBA, x, y float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Texts[id] = &component.Text{
		Value:     value,
		Color:     clr,
		SpawnTime: s.ecs.GameTime,
		Duration:  s.settings.Duration,
	}
}

// Update удаляет истёкшие надписи, остальные поднимаются вверх
func (s *TextSystem) Update(deltaTime float64) {
	for id, txt := range s.ecs.Texts {
		if s.ecs.GameTime-txt.SpawnTime > txt.Duration {
			s.ecs.RemoveEntity(id)
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Y -= s.settings.RiseSpeed * deltaTime
		}
	}
}
