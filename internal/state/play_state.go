// internal/state/play_state.go
package state

import (
	"go-maze-runners/internal/app"
	"go-maze-runners/internal/ui"
	"go-maze-runners/pkg/maze"
	"go-maze-runners/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

var _ State = (*PlayState)(nil)

// Порядок важен: при нескольких зажатых стрелках побеждает первая
var directionKeys = []struct {
	key ebiten.Key
	dir maze.Cell
}{
	{ebiten.KeyArrowUp, maze.Cell{Row: -1}},
	{ebiten.KeyArrowDown, maze.Cell{Row: 1}},
	{ebiten.KeyArrowLeft, maze.Cell{Col: -1}},
	{ebiten.KeyArrowRight, maze.Cell{Col: 1}},
}

// PlayState — основное состояние: опрос клавиш, тик игры, отрисовка
type PlayState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	surface *render.EbitenSurface
	sidebar *ui.Sidebar
}

func NewPlayState(sm *StateMachine, session *Session) (*PlayState, error) {
	game, err := session.NewGame()
	if err != nil {
		return nil, err
	}
	return &PlayState{
		sm:      sm,
		session: session,
		game:    game,
		surface: render.NewEbitenSurface(session.FontFace),
		sidebar: ui.NewSidebar(session.Settings),
	}, nil
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return nil
	}

	if err := p.game.Update(deltaTime, pollInput()); err != nil {
		return err
	}

	if p.game.IsOver() {
		if p.game.QuitRequested() {
			log.WithField("score", p.game.ECS.Score).Info("quit")
			return ebiten.Termination
		}
		p.sm.SetState(NewGameOverState(p.sm, p))
	}
	return nil
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.surface.SetTarget(screen)
	p.game.Draw(p.surface)
	p.sidebar.Draw(p.surface, p.game.ECS)
}

func (p *PlayState) Exit() {}

// Game — текущая партия
func (p *PlayState) Game() *app.Game {
	return p.game
}

// Surface — поверхность последней отрисовки (для оверлеев паузы и конца игры)
func (p *PlayState) Surface() render.Surface {
	return p.surface
}

func pollInput() app.Input {
	var in app.Input
	for _, dk := range directionKeys {
		if ebiten.IsKeyPressed(dk.key) {
			in.Direction = dk.dir
			break
		}
	}
	in.ZoomIn = ebiten.IsKeyPressed(ebiten.KeyZ)
	in.ZoomOut = ebiten.IsKeyPressed(ebiten.KeyX)

	in.ToggleTraps = inpututil.IsKeyJustPressed(ebiten.KeyT)
	in.ToggleCollision = inpututil.IsKeyJustPressed(ebiten.KeyN)
	in.CheatHeal = inpututil.IsKeyJustPressed(ebiten.KeyH)
	in.CompleteLevel = inpututil.IsKeyJustPressed(ebiten.KeyL)
	in.EndGame = inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.ToggleFog = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.GrantEyes = inpututil.IsKeyJustPressed(ebiten.KeyO)
	in.ActivateEyes = inpututil.IsKeyJustPressed(ebiten.KeyP)
	return in
}
