// internal/app/game.go
package app

import (
	"fmt"

	"go-maze-runners/internal/config"
	"go-maze-runners/internal/debug"
	"go-maze-runners/internal/entity"
	"go-maze-runners/internal/event"
	"go-maze-runners/internal/level"
	"go-maze-runners/internal/system"
	"go-maze-runners/pkg/maze"
	"go-maze-runners/pkg/render"

	log "github.com/sirupsen/logrus"
)

// Input — состояние клавиатуры за один тик.
// Direction — первое зажатое направление по приоритету вверх, вниз, влево, вправо.
type Input struct {
	Direction maze.Cell
	ZoomIn    bool
	ZoomOut   bool

	// Одноразовые нажатия
	ToggleTraps     bool
	ToggleCollision bool
	CheatHeal       bool
	CompleteLevel   bool
	EndGame         bool
	ToggleFog       bool
	GrantEyes       bool
	ActivateEyes    bool
}

// SnapshotPublisher получает снимок сессии после каждого тика
type SnapshotPublisher interface {
	Publish(snap debug.Snapshot)
}

type phase struct {
	name string
	run  func(deltaTime float64, in Input) error
}

// Game holds the session state and runs the per-tick pipeline.
type Game struct {
	ECS              *entity.ECS
	Settings         *config.Settings
	EventDispatcher  *event.Dispatcher
	Rng              maze.Rand
	MovementSystem   *system.MovementSystem
	CollisionSystem  *system.CollisionSystem
	DivineEyesSystem *system.DivineEyesSystem
	ProjectileSystem *system.ProjectileSystem
	TextSystem       *system.TextSystem
	CameraSystem     *system.CameraSystem
	RenderSystem     *system.RenderSystem

	seed      int64
	tick      uint64
	quit      bool
	phases    []phase
	publisher SnapshotPublisher
}

// NewGame создаёт сессию и первый уровень (score = 0).
// seed только для логов и снимков; вся случайность идёт из rng.
func NewGame(settings *config.Settings, rng maze.Rand, seed int64) (*Game, error) {
	ecs := entity.NewECS(settings.Player.StartHealth)
	eventDispatcher := event.NewDispatcher()
	viewW, viewH := float64(config.GameAreaWidth), float64(config.ScreenHeight)

	g := &Game{
		ECS:              ecs,
		Settings:         settings,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		MovementSystem:   system.NewMovementSystem(ecs, settings.Player.MoveDuration),
		CollisionSystem:  system.NewCollisionSystem(ecs, eventDispatcher, rng, settings),
		DivineEyesSystem: system.NewDivineEyesSystem(ecs, eventDispatcher, settings.PowerUp),
		ProjectileSystem: system.NewProjectileSystem(ecs, eventDispatcher, settings),
		TextSystem:       system.NewTextSystem(ecs, eventDispatcher, settings.Popup),
		CameraSystem:     system.NewCameraSystem(ecs, settings.Camera, viewW, viewH),
		RenderSystem:     system.NewRenderSystem(ecs, render.NewPerlinNoise(seed), settings.Fog, viewW, viewH),
		seed:             seed,
	}
	g.phases = []phase{
		{"zoom", g.phaseZoom},
		{"move-start", g.phaseMoveStart},
		{"move-advance", g.phaseMoveAdvance},
		{"traps", g.phaseTraps},
		{"healing", g.phaseHealing},
		{"power-ups", g.phasePowerUps},
		{"exit", g.phaseExit},
		{"divine-eyes", g.phaseDivineEyes},
		{"emitters", g.phaseEmitters},
		{"projectiles", g.phaseProjectiles},
		{"popups", g.phasePopups},
		{"camera", g.phaseCamera},
	}

	eventDispatcher.Subscribe(event.LevelCompleted, &eventLogger{},
		event.PlayerDamaged, event.PlayerHealed, event.PowerUpCollected,
		event.DivineEyesActivated, event.GameOver)

	lvl, err := level.Generate(0, settings, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create first level: %w", err)
	}
	g.loadLevel(lvl)
	g.CameraSystem.Update()

	log.WithFields(log.Fields{"seed": seed, "size": lvl.Grid.Width}).Info("game started")
	return g, nil
}

// SetPublisher подключает получателя снимков (отладочный сервер)
func (g *Game) SetPublisher(p SnapshotPublisher) {
	g.publisher = p
}

// IsOver — здоровье кончилось или игрок вышел читом E
func (g *Game) IsOver() bool {
	return g.ECS.GameOver
}

// QuitRequested — игра закрыта читом E, экран итогов не нужен
func (g *Game) QuitRequested() bool {
	return g.quit
}

// Update продвигает сессию на deltaTime секунд.
// Сначала одноразовые клавиши, затем фазы строго по порядку.
func (g *Game) Update(deltaTime float64, in Input) error {
	if g.ECS.GameOver {
		return nil
	}
	g.ECS.GameTime += deltaTime
	g.tick++

	if err := g.handleCheats(in); err != nil {
		return err
	}
	if g.ECS.GameOver {
		g.publish()
		return nil
	}

	for _, p := range g.phases {
		if err := p.run(deltaTime, in); err != nil {
			return fmt.Errorf("phase %s: %w", p.name, err)
		}
	}

	if g.ECS.Player.Health <= 0 {
		g.endGame("health depleted")
	}
	g.publish()
	return nil
}

// Draw рисует игровую область
func (g *Game) Draw(surface render.Surface) {
	g.RenderSystem.Draw(surface)
}

func (g *Game) handleCheats(in Input) error {
	ecs := g.ECS
	if in.ToggleTraps {
		ecs.Cheats.ShowAllTraps = !ecs.Cheats.ShowAllTraps
		log.WithField("on", ecs.Cheats.ShowAllTraps).Info("cheat: show all traps")
	}
	if in.ToggleCollision {
		ecs.Cheats.NoCollision = !ecs.Cheats.NoCollision
		log.WithField("on", ecs.Cheats.NoCollision).Info("cheat: no collision")
	}
	if in.CheatHeal {
		system.Heal(ecs, g.EventDispatcher, g.Settings.Player.CheatHeal)
	}
	if in.CompleteLevel {
		log.Info("cheat: complete level")
		if err := g.completeLevel(); err != nil {
			return err
		}
	}
	if in.EndGame {
		g.quit = true
		g.endGame("quit")
		return nil
	}
	if in.ToggleFog {
		ecs.Cheats.FogOn = !ecs.Cheats.FogOn
		log.WithField("on", ecs.Cheats.FogOn).Info("cheat: fog")
	}
	if in.GrantEyes {
		g.DivineEyesSystem.Grant()
	}
	if in.ActivateEyes {
		g.DivineEyesSystem.Activate()
	}
	return nil
}

func (g *Game) phaseZoom(deltaTime float64, in Input) error {
	g.CameraSystem.UpdateZoom(deltaTime, in.ZoomIn, in.ZoomOut)
	return nil
}

func (g *Game) phaseMoveStart(_ float64, in Input) error {
	g.MovementSystem.TryStart(in.Direction)
	return nil
}

func (g *Game) phaseMoveAdvance(deltaTime float64, _ Input) error {
	g.MovementSystem.Update(deltaTime)
	return nil
}

func (g *Game) phaseTraps(float64, Input) error {
	g.CollisionSystem.CheckTraps()
	return nil
}

func (g *Game) phaseHealing(float64, Input) error {
	g.CollisionSystem.CheckHealing()
	return nil
}

func (g *Game) phasePowerUps(float64, Input) error {
	g.CollisionSystem.CheckPowerUps()
	return nil
}

func (g *Game) phaseExit(float64, Input) error {
	if !g.CollisionSystem.ReachedExit() {
		return nil
	}
	return g.completeLevel()
}

func (g *Game) phaseDivineEyes(deltaTime float64, _ Input) error {
	g.DivineEyesSystem.Update(deltaTime)
	return nil
}

func (g *Game) phaseEmitters(float64, Input) error {
	g.ProjectileSystem.FireEmitters()
	return nil
}

func (g *Game) phaseProjectiles(deltaTime float64, _ Input) error {
	g.ProjectileSystem.Update(deltaTime)
	return nil
}

func (g *Game) phasePopups(deltaTime float64, _ Input) error {
	g.TextSystem.Update(deltaTime)
	return nil
}

func (g *Game) phaseCamera(float64, Input) error {
	g.CameraSystem.Update()
	return nil
}

// completeLevel увеличивает счёт и строит новый уровень под новую сложность
func (g *Game) completeLevel() error {
	g.ECS.Score++
	lvl, err := level.Generate(g.ECS.Score, g.Settings, g.Rng)
	if err != nil {
		return fmt.Errorf("failed to regenerate level: %w", err)
	}
	g.loadLevel(lvl)
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{
		Score:    g.ECS.Score,
		MazeSize: lvl.Difficulty.MazeSize,
		IsBoss:   lvl.Difficulty.IsBoss,
	}})
	return nil
}

// loadLevel ставит уровень и сбрасывает всё, что к нему привязано.
// Всплывающие надписи переживают смену уровня.
func (g *Game) loadLevel(lvl *level.Level) {
	ecs := g.ECS
	ecs.Level = lvl
	ecs.CellSize = lvl.CellSize(float64(config.GameAreaWidth), float64(config.ScreenHeight))
	ecs.Player.PlaceAt(lvl.Entrance, ecs.CellSize)
	ecs.ClearProjectiles()
	ecs.LastDamaged = nil
	ecs.Eyes.Reset()
}

func (g *Game) endGame(reason string) {
	g.ECS.GameOver = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
		Score:  g.ECS.Score,
		Reason: reason,
	}})
}

// Snapshot собирает снимок текущего состояния
func (g *Game) Snapshot() debug.Snapshot {
	ecs := g.ECS
	d := ecs.Level.Difficulty
	return debug.Snapshot{
		Seed:        g.seed,
		Tick:        g.tick,
		GameTime:    ecs.GameTime,
		Score:       ecs.Score,
		Health:      ecs.Player.Health,
		MazeSize:    d.MazeSize,
		SizeClass:   d.SizeClass.String(),
		IsBoss:      d.IsBoss,
		Player:      [2]int{ecs.Player.Cell.Row, ecs.Player.Cell.Col},
		Projectiles: len(ecs.Projectiles),
		Popups:      len(ecs.Texts),
		Inventory:   ecs.Eyes.Inventory,
		DivineEyes:  ecs.Eyes.State.Name(),
		GameOver:    ecs.GameOver,
	}
}

func (g *Game) publish() {
	if g.publisher != nil {
		g.publisher.Publish(g.Snapshot())
	}
}
