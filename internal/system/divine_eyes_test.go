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

func newEyesFixture(rows ...string) *DivineEyesSystem {
	ecs := newTestECS(maze.Cell{Row: 1, Col: 3}, maze.Cell{Row: 0, Col: 1}, rows...)
	return NewDivineEyesSystem(ecs, event.NewDispatcher(), config.Default().PowerUp)
}

func TestDivineEyesLifecycle(t *testing.T) {
	s := newEyesFixture(corridor()...)
	eyes := s.ecs.Eyes

	assert.False(t, s.Activate(), "empty inventory")

	require.True(t, s.Grant())
	require.True(t, s.Grant())
	assert.False(t, s.Grant(), "inventory is capped")

	require.True(t, s.Activate())
	assert.Equal(t, 1, eyes.Inventory)
	anim, ok := eyes.State.(*component.Animating)
	require.True(t, ok)
	assert.Len(t, anim.Path, 4)
	assert.Zero(t, anim.Progress)

	assert.False(t, s.Activate(), "already active")
	assert.Equal(t, 1, eyes.Inventory)

	s.Update(2.5)
	assert.InDelta(t, 0.5, anim.Progress, 1e-3)
	_, _, ok = OrbPosition(s.ecs)
	assert.True(t, ok)

	s.Update(3)
	sustain, ok := eyes.State.(*component.Sustain)
	require.True(t, ok)
	_, _, ok = OrbPosition(s.ecs)
	assert.False(t, ok)

	// путь следует за игроком
	s.ecs.Player.PlaceAt(maze.Cell{Row: 1, Col: 1}, testCellSize)
	s.Update(0.016)
	assert.Equal(t, []maze.Cell{{Row: 1, Col: 1}, {Row: 0, Col: 1}}, sustain.Path)

	// без пути старый путь сохраняется
	s.ecs.Player.PlaceAt(maze.Cell{Row: -3, Col: -3}, testCellSize)
	s.Update(0.016)
	assert.Len(t, sustain.Path, 2)
}

func TestDivineEyesNeedsReachableExit(t *testing.T) {
	s := newEyesFixture(
		"#.###",
		"##..#",
		"#####",
	)
	s.ecs.Eyes.Inventory = 1

	assert.False(t, s.Activate())
	assert.Equal(t, 1, s.ecs.Eyes.Inventory)
	assert.Equal(t, "inactive", s.ecs.Eyes.State.Name())
}
