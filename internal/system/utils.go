// internal/system/utils.go
package system

import (
	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/event"
)

// ApplyDamage наносит урон игроку и публикует PlayerDamaged.
// Здоровье может уйти ниже нуля; конец игры проверяет app.Game после всех фаз.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, amount int, crit bool, source event.Source) {
	player := ecs.Player
	player.Health -= amount
	dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageData{
		Amount:   amount,
		Crit:     crit,
		Source:   source,
		X:        player.X,
		Y:        player.Y,
		HealthAt: player.Health,
	}})
}

// Heal добавляет здоровье и публикует PlayerHealed. Верхнего предела нет.
func Heal(ecs *entity.ECS, dispatcher *event.Dispatcher, amount int) {
	player := ecs.Player
	player.Health += amount
	dispatcher.Dispatch(event.Event{Type: event.PlayerHealed, Data: event.HealData{
		Amount:   amount,
		X:        player.X,
		Y:        player.Y,
		HealthAt: player.Health,
	}})
}
