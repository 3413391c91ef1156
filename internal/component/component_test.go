package component

import (
	"testing"

	"go-maze-runners/pkg/maze"

	"github.com/stretchr/testify/assert"
)

func TestMovementAdvance(t *testing.T) {
	m := NewMovement(0, 0, maze.Cell{Row: 0, Col: 1}, 10, 0, 0.2)

	x, y, done := m.Advance(0.1)
	assert.False(t, done)
	assert.InDelta(t, 5.0, x, 1e-3)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, _, done = m.Advance(0.15)
	assert.True(t, done)
	assert.Equal(t, 10.0, x)
}

func TestAnimatingAdvance(t *testing.T) {
	a := NewAnimating([]maze.Cell{{Row: 1, Col: 1}}, 5)

	assert.False(t, a.Advance(2.5))
	assert.InDelta(t, 0.5, a.Progress, 1e-3)

	assert.True(t, a.Advance(3))
	assert.Equal(t, 1.0, a.Progress)
}

func TestPlayerPlaceAt(t *testing.T) {
	p := &Player{Move: NewMovement(0, 0, maze.Cell{}, 0, 0, 1)}
	p.PlaceAt(maze.Cell{Row: 2, Col: 3}, 10)

	assert.False(t, p.IsMoving())
	assert.Equal(t, 30.0, p.X)
	assert.Equal(t, 20.0, p.Y)
	cx, cy := p.Center(10)
	assert.Equal(t, 35.0, cx)
	assert.Equal(t, 25.0, cy)
}

func TestDivineEyesReset(t *testing.T) {
	d := NewDivineEyes()
	d.Inventory = 2
	d.State = &Sustain{}

	d.Reset()
	assert.Equal(t, "inactive", d.State.Name())
	assert.Equal(t, 2, d.Inventory)
}
