// component/movement.go
package component

import (
	"go-maze-runners/internal/utils"
	"go-maze-runners/pkg/maze"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Position — компонент позиции (мировые пиксели)
type Position struct {
	X, Y float64
}

// Movement — шаг игрока на соседнюю клетку.
// Твин идёт от 0 до 1 за фиксированное время, позиция интерполируется между StartX/Y и TargetX/Y.
type Movement struct {
	StartX, StartY   float64
	TargetX, TargetY float64
	Target           maze.Cell
	tween            *gween.Tween
}

// NewMovement начинает линейный шаг длительностью duration секунд
func NewMovement(startX, startY float64, target maze.Cell, targetX, targetY, duration float64) *Movement {
	return &Movement{
		StartX:  startX,
		StartY:  startY,
		TargetX: targetX,
		TargetY: targetY,
		Target:  target,
		tween:   gween.New(0, 1, float32(duration), ease.Linear),
	}
}

// Advance продвигает шаг на dt и возвращает текущую позицию и признак завершения
func (m *Movement) Advance(dt float64) (x, y float64, done bool) {
	t, finished := m.tween.Update(float32(dt))
	if finished {
		return m.TargetX, m.TargetY, true
	}
	k := float64(t)
	return utils.Lerp(m.StartX, m.TargetX, k), utils.Lerp(m.StartY, m.TargetY, k), false
}
