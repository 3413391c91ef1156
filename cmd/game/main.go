// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"go-maze-runners/internal/config"
	"go-maze-runners/internal/debug"
	"go-maze-runners/internal/state"
	"go-maze-runners/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	cfgPath := flag.String("config", config.DefaultCfgPath, "path to YAML settings (missing file = defaults)")
	seed := flag.Int64("seed", 0, "PRNG seed, overrides settings (0 = keep settings value)")
	debugAddr := flag.String("debug-addr", "", "debug HTTP address, overrides settings")
	flag.Parse()

	settings, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *debugAddr != "" {
		settings.Debug.Addr = *debugAddr
	}

	level, err := log.ParseLevel(settings.Debug.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", settings.Debug.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	face, err := render.LoadFontFace(config.HUDFontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	session := &state.Session{Settings: settings, FontFace: face}

	var server *debug.Server
	if settings.Debug.Addr != "" {
		server = debug.NewServer(settings.Debug.Addr)
		session.Publisher = server
		go func() {
			if err := server.ListenAndServe(); err != nil {
				log.WithError(err).Error("debug server stopped")
			}
		}()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	play, err := state.NewPlayState(sm, session)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	sm.SetState(play)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TargetTPS)
	runErr := ebiten.RunGame(app)

	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("debug server shutdown")
		}
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
