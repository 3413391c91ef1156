// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-maze-runners/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итоговый счёт поверх последнего кадра.
// Enter — новая партия, Escape — выход.
type GameOverState struct {
	sm   *StateMachine
	last *PlayState
}

func NewGameOverState(sm *StateMachine, last *PlayState) *GameOverState {
	return &GameOverState{sm: sm, last: last}
}

func (s *GameOverState) Enter() {
	log.WithField("score", s.last.Game().ECS.Score).Info("Game Over! Final Score")
}

func (s *GameOverState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		next, err := NewPlayState(s.sm, s.last.session)
		if err != nil {
			return fmt.Errorf("failed to restart: %w", err)
		}
		s.sm.SetState(next)
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)

	surface := s.last.Surface()
	cx, cy := float64(config.GameAreaWidth/2), float64(config.ScreenHeight/2)
	surface.DrawRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.GameOverOverlay)
	surface.DrawText("GAME OVER", cx-40, cy-30, config.TextLightColor)
	surface.DrawText(fmt.Sprintf("Final score: %d", s.last.Game().ECS.Score), cx-50, cy-5, config.TextLightColor)
	surface.DrawText("Enter: restart   Esc: quit", cx-90, cy+20, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
