// internal/system/movement.go
package system

import (
	"go-maze-runners/internal/component"
	"go-maze-runners/internal/entity"
	"go-maze-runners/pkg/maze"
)

// MovementSystem двигает игрока по клеткам с анимацией шага
type MovementSystem struct {
	ecs          *entity.ECS
	moveDuration float64
}

func NewMovementSystem(ecs *entity.ECS, moveDuration float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, moveDuration: moveDuration}
}

// TryStart начинает шаг в направлении dir, если игрок стоит.
// Без коллизий можно шагать куда угодно, в том числе в стены и за пределы сетки.
func (s *MovementSystem) TryStart(dir maze.Cell) bool {
	player := s.ecs.Player
	if player.IsMoving() || dir.IsZero() {
		return false
	}
	target := player.Cell.Add(dir)
	if !s.ecs.Cheats.NoCollision && !s.ecs.Level.Grid.IsOpen(target) {
		return false
	}

	cs := s.ecs.CellSize
	player.Move = component.NewMovement(
		player.X, player.Y,
		target, float64(target.Col)*cs, float64(target.Row)*cs,
		s.moveDuration,
	)
	return true
}

// Update продвигает анимацию; по окончании логическая клетка переходит в цель
func (s *MovementSystem) Update(deltaTime float64) {
	player := s.ecs.Player
	if !player.IsMoving() {
		return
	}
	x, y, done := player.Move.Advance(deltaTime)
	player.X, player.Y = x, y
	if done {
		player.Cell = player.Move.Target
		player.Move = nil
	}
}
