// internal/state/pause_state.go
package state

import (
	"go-maze-runners/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию: время не идёт, клавиши игры не читаются
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	surface := s.previousState.Surface()
	surface.DrawRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay)
	surface.DrawText("PAUSED", config.GameAreaWidth/2-25, config.ScreenHeight/2-10, config.TextLightColor)
	surface.DrawText("F9 / Esc: resume", config.GameAreaWidth/2-55, config.ScreenHeight/2+15, config.TextLightColor)
}

func (s *PauseState) Exit() {}
