// internal/state/session.go
package state

import (
	"go-maze-runners/internal/app"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/utils"

	"golang.org/x/image/font"
)

// Session — всё, что нужно для запуска новой партии (в том числе после рестарта)
type Session struct {
	Settings  *config.Settings
	FontFace  font.Face
	Publisher app.SnapshotPublisher // nil — без отладочного сервера
}

// NewGame создаёт партию с сидом из настроек (0 — по времени)
func (s *Session) NewGame() (*app.Game, error) {
	prng := utils.NewPRNGService(s.Settings.Seed)
	game, err := app.NewGame(s.Settings, prng, prng.Seed())
	if err != nil {
		return nil, err
	}
	if s.Publisher != nil {
		game.SetPublisher(s.Publisher)
	}
	return game, nil
}
