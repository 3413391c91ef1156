// internal/component/divine_eyes.go
package component

import (
	"go-maze-runners/pkg/maze"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DivineEyesState — состояние усиления «Божественное око».
// Реализации: Inactive, *Animating, *Sustain.
type DivineEyesState interface {
	Name() string
	divineEyesState()
}

// Inactive — усиление не активно
type Inactive struct{}

// Animating — сфера летит от игрока к выходу по замороженному пути
type Animating struct {
	Progress float64
	Path     []maze.Cell
	tween    *gween.Tween
}

// Sustain — путь до выхода пересчитывается каждый тик до смены уровня
type Sustain struct {
	Path []maze.Cell
}

func (Inactive) Name() string   { return "inactive" }
func (*Animating) Name() string { return "animating" }
func (*Sustain) Name() string   { return "sustain" }

func (Inactive) divineEyesState()   {}
func (*Animating) divineEyesState() {}
func (*Sustain) divineEyesState()   {}

// NewAnimating запускает анимацию длительностью duration секунд
func NewAnimating(path []maze.Cell, duration float64) *Animating {
	return &Animating{
		Path:  path,
		tween: gween.New(0, 1, float32(duration), ease.Linear),
	}
}

// Advance продвигает прогресс; true — анимация закончилась
func (a *Animating) Advance(dt float64) bool {
	p, finished := a.tween.Update(float32(dt))
	a.Progress = float64(p)
	if finished {
		a.Progress = 1
	}
	return finished
}

// DivineEyes — инвентарь и текущее состояние усиления
type DivineEyes struct {
	Inventory int
	State     DivineEyesState
}

// NewDivineEyes возвращает пустой инвентарь в неактивном состоянии
func NewDivineEyes() *DivineEyes {
	return &DivineEyes{State: Inactive{}}
}

// Reset сбрасывает состояние, инвентарь сохраняется
func (d *DivineEyes) Reset() {
	d.State = Inactive{}
}
