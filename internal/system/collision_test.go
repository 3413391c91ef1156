package system

import (
	"testing"

	"go-maze-runners/internal/component"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/event"
	"go-maze-runners/pkg/maze"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func corridor() []string {
	return []string{
		"#.###",
		"#...#",
		"#####",
	}
}

func newCollisionFixture(roll float64) (*CollisionSystem, *eventLog, maze.Cell) {
	ecs := newTestECS(maze.Cell{Row: 1, Col: 1}, maze.Cell{Row: 0, Col: 1}, corridor()...)
	dispatcher := event.NewDispatcher()
	log := &eventLog{}
	dispatcher.Subscribe(event.PlayerDamaged, log, event.PlayerHealed, event.PowerUpCollected)
	trap := maze.Cell{Row: 1, Col: 2}
	ecs.Level.Traps.Put(trap)
	return NewCollisionSystem(ecs, dispatcher, fixedRand(roll), config.Default()), log, trap
}

func TestTrapTriggersOncePerVisit(t *testing.T) {
	s, log, trap := newCollisionFixture(0.5)
	player := s.ecs.Player

	player.PlaceAt(trap, testCellSize)
	s.CheckTraps()
	s.CheckTraps()
	assert.Equal(t, 80, player.Health)
	require.Len(t, log.events, 1)

	player.PlaceAt(maze.Cell{Row: 1, Col: 3}, testCellSize)
	s.CheckTraps()
	assert.Nil(t, s.ecs.LastDamaged)

	player.PlaceAt(trap, testCellSize)
	s.CheckTraps()
	assert.Equal(t, 60, player.Health)
	assert.Len(t, log.events, 2)
}

func TestTrapCriticalHit(t *testing.T) {
	s, log, trap := newCollisionFixture(0.0)
	s.ecs.Player.PlaceAt(trap, testCellSize)

	s.CheckTraps()
	assert.Equal(t, 100-45, s.ecs.Player.Health)
	require.Len(t, log.events, 1)
	data := log.events[0].Data.(event.DamageData)
	assert.True(t, data.Crit)
	assert.Equal(t, 45, data.Amount)
	assert.Equal(t, event.SourceTrap, data.Source)
}

func TestTrapIgnoredWhileMovingOrWithoutCollision(t *testing.T) {
	s, _, trap := newCollisionFixture(0.5)
	player := s.ecs.Player
	player.PlaceAt(trap, testCellSize)

	player.Move = component.NewMovement(0, 0, trap, 0, 0, 1)
	s.CheckTraps()
	assert.Equal(t, 100, player.Health)

	player.Move = nil
	s.ecs.Cheats.NoCollision = true
	s.CheckTraps()
	assert.Equal(t, 100, player.Health)
}

func TestHealingIsMultiplicative(t *testing.T) {
	s, log, _ := newCollisionFixture(0.5)
	station := maze.Cell{Row: 1, Col: 3}
	s.ecs.Level.HealingStations.Put(station)
	s.ecs.Player.Health = 40
	s.ecs.Player.PlaceAt(station, testCellSize)

	s.CheckHealing()
	assert.Equal(t, 60, s.ecs.Player.Health)
	assert.False(t, s.ecs.Level.HealingStations.Has(station))
	require.Len(t, log.events, 1)
	assert.Equal(t, 20, log.events[0].Data.(event.HealData).Amount)

	s.CheckHealing()
	assert.Equal(t, 60, s.ecs.Player.Health, "station is single-use")
}

func TestPowerUpAtCapacityIsStillConsumed(t *testing.T) {
	s, log, _ := newCollisionFixture(0.5)
	cell := maze.Cell{Row: 1, Col: 3}
	s.ecs.Level.PowerUps.Put(cell)
	s.ecs.Eyes.Inventory = 2
	s.ecs.Player.PlaceAt(cell, testCellSize)

	s.CheckPowerUps()
	assert.Equal(t, 2, s.ecs.Eyes.Inventory)
	assert.False(t, s.ecs.Level.PowerUps.Has(cell))
	require.Len(t, log.events, 1)
	assert.False(t, log.events[0].Data.(event.PowerUpData).Granted)
}

func TestPowerUpIncrementsInventory(t *testing.T) {
	s, _, _ := newCollisionFixture(0.5)
	cell := maze.Cell{Row: 1, Col: 3}
	s.ecs.Level.PowerUps.Put(cell)
	s.ecs.Player.PlaceAt(cell, testCellSize)

	s.CheckPowerUps()
	assert.Equal(t, 1, s.ecs.Eyes.Inventory)
}

func TestReachedExit(t *testing.T) {
	s, _, _ := newCollisionFixture(0.5)
	assert.False(t, s.ReachedExit())

	s.ecs.Player.PlaceAt(maze.Cell{Row: 0, Col: 1}, testCellSize)
	assert.True(t, s.ReachedExit())

	s.ecs.Player.Move = component.NewMovement(0, 0, maze.Cell{}, 0, 0, 1)
	assert.False(t, s.ReachedExit())
}
