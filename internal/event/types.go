// internal/event/types.go
package event

const (
	LevelCompleted      EventType = "LevelCompleted"      // Игрок дошёл до выхода (или чит L)
	PlayerDamaged       EventType = "PlayerDamaged"       // Ловушка или снаряд
	PlayerHealed        EventType = "PlayerHealed"        // Лечебная станция или чит H
	PowerUpCollected    EventType = "PowerUpCollected"    // Подобрано «Божественное око»
	DivineEyesActivated EventType = "DivineEyesActivated" // Активация усиления
	GameOver            EventType = "GameOver"            // Здоровье кончилось или чит E
)

// Source — источник урона
type Source string

const (
	SourceTrap       Source = "trap"
	SourceProjectile Source = "projectile"
)

// DamageData — данные события PlayerDamaged
type DamageData struct {
	Amount   int
	Crit     bool
	Source   Source
	X, Y     float64 // мировая точка для всплывающего текста
	HealthAt int     // здоровье после урона
}

// HealData — данные события PlayerHealed
type HealData struct {
	Amount   int
	X, Y     float64
	HealthAt int
}

// PowerUpData — данные событий PowerUpCollected и DivineEyesActivated
type PowerUpData struct {
	Inventory int
	Granted   bool // false — инвентарь уже полон, клетка просто исчезла
	X, Y      float64
}

// LevelData — данные события LevelCompleted
type LevelData struct {
	Score    int
	MazeSize int
	IsBoss   bool
}

// GameOverData — данные события GameOver
type GameOverData struct {
	Score  int
	Reason string
}
