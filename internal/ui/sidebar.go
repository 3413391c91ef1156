// internal/ui/sidebar.go
package ui

import (
	"fmt"
	"math"

	"go-maze-runners/internal/component"
	"go-maze-runners/internal/config"
	"go-maze-runners/internal/entity"
	"go-maze-runners/pkg/render"
)

var keyHelp = []string{
	"Powerups:",
	"P: Activate Divine Eyes",
	"",
	"Zoom:",
	"Z: Zoom In",
	"X: Zoom Out",
	"",
	"Cheat Codes:",
	"T: Toggle Traps",
	"N: Toggle No Coll",
	"H: +%d Health",
	"L: Complete Level",
	"E: End Game",
	"F: Toggle Fog",
	"O: Spawn Divine Eyes",
}

// Sidebar — правая панель с отладочной информацией и подсказками по клавишам
type Sidebar struct {
	X, Y, Width, Height float64
	maxInventory        int
	cheatHeal           int
}

func NewSidebar(settings *config.Settings) *Sidebar {
	return &Sidebar{
		X:            config.GameAreaWidth,
		Width:        config.SidebarWidth,
		Height:       config.ScreenHeight,
		maxInventory: settings.PowerUp.MaxInventory,
		cheatHeal:    settings.Player.CheatHeal,
	}
}

// Lines собирает строки панели для текущего состояния
func (s *Sidebar) Lines(ecs *entity.ECS) []string {
	mapLine := "Map: ?"
	if ecs.Level != nil {
		mapLine = fmt.Sprintf("Map: %dx%d", ecs.Level.Grid.Width, ecs.Level.Grid.Height)
		if ecs.Level.Difficulty.IsBoss {
			mapLine += " (boss)"
		}
	}
	eyesState := "OFF"
	if _, idle := ecs.Eyes.State.(component.Inactive); !idle {
		eyesState = ecs.Eyes.State.Name()
	}

	lines := []string{
		"DEBUG INFO",
		fmt.Sprintf("Score: %d", ecs.Score),
		fmt.Sprintf("Health: %d", ecs.Player.Health),
		mapLine,
		fmt.Sprintf("Zoom: %.1f", math.Trunc(ecs.Camera.Zoom*100)/100),
		fmt.Sprintf("Divine Eyes: %d/%d", ecs.Eyes.Inventory, s.maxInventory),
		"",
		"divineEyesActive: " + eyesState,
		"showAllTraps: " + onOff(ecs.Cheats.ShowAllTraps),
		"noCollision: " + onOff(ecs.Cheats.NoCollision),
		"maze_bossFog: " + onOff(ecs.Cheats.FogOn),
		"",
	}
	for _, l := range keyHelp {
		if l == "H: +%d Health" {
			l = fmt.Sprintf(l, s.cheatHeal)
		}
		lines = append(lines, l)
	}
	return lines
}

func (s *Sidebar) Draw(surface render.Surface, ecs *entity.ECS) {
	surface.DrawRect(s.X, s.Y, s.Width, s.Height, config.SidebarColor)
	for i, line := range s.Lines(ecs) {
		if line == "" {
			continue
		}
		surface.DrawText(line, s.X+config.HUDPaddingX, s.Y+config.HUDPaddingY+float64(i*config.HUDLineHeight), config.TextLightColor)
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
