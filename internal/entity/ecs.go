// internal/entity/ecs.go
package entity

import (
	"go-maze-runners/internal/component"
	"go-maze-runners/internal/level"
	"go-maze-runners/internal/types"
	"go-maze-runners/pkg/maze"
)

// ECS — состояние одной игровой сессии: счёт, игрок, уровень и динамические сущности.
// Владелец один — app.Game; системы получают его по указателю.
type ECS struct {
	GameTime float64 // секунды с начала сессии
	NextID   types.EntityID
	Score    int
	CellSize float64
	Level    *level.Level
	Player   *component.Player
	Eyes     *component.DivineEyes
	Camera   *component.Camera
	Cheats   *component.Cheats
	GameOver bool

	// LastDamaged — ловушка, по которой уже прошёл урон; nil — нет
	LastDamaged *maze.Cell

	Positions   map[types.EntityID]*component.Position
	Projectiles map[types.EntityID]*component.Projectile
	Texts       map[types.EntityID]*component.Text
}

func NewECS(startHealth int) *ECS {
	return &ECS{
		NextID:      1,
		Player:      &component.Player{Health: startHealth},
		Eyes:        component.NewDivineEyes(),
		Camera:      &component.Camera{Zoom: 1, TargetZoom: 1},
		Cheats:      &component.Cheats{FogOn: true},
		Positions:   make(map[types.EntityID]*component.Position),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Texts:       make(map[types.EntityID]*component.Text),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Texts, id)
}

// ClearProjectiles удаляет все снаряды (при смене уровня)
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
}
