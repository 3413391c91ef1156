// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	SidebarWidth   = ScreenWidth / 4
	GameAreaWidth  = ScreenWidth - SidebarWidth
	MaxDeltaTime   = 0.06
	TargetTPS      = 60
	WindowTitle    = "Maze Runners v0.0.2"
	DefaultCfgPath = "maze-runners.yaml"

	HUDFontSize   = 14
	HUDLineHeight = 20
	HUDPaddingX   = 10
	HUDPaddingY   = 10

	// Доли размера клетки для отрисовки
	ItemRadiusFactor       = 0.3
	ProjectileRadiusFactor = 0.1
	ProjectileBoxFactor    = 0.2
	PathOrbRadiusFactor    = 0.1
	FlyingOrbRadiusFactor  = 0.15
	FlyingOrbShiftFactor   = 0.05
	PathLineWidth          = 3.0
	ExitStrokeWidth        = 2.0

	FogPolygonPoints = 60
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	WallColor       = color.RGBA{128, 128, 128, 255}
	PlayerColor     = color.RGBA{0, 255, 0, 255}
	TrapColor       = color.RGBA{255, 0, 0, 255}
	HealColor       = color.RGBA{0, 0, 255, 255}
	ExitColor       = color.RGBA{255, 255, 255, 255}
	SidebarColor    = color.RGBA{30, 30, 30, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	ProjectileColor = color.RGBA{255, 0, 0, 255}
	DamageTextColor = color.RGBA{255, 165, 0, 255} // обычный урон
	CritTextColor   = color.RGBA{255, 215, 0, 255} // критический урон
	HealTextColor   = color.RGBA{0, 0, 255, 255}
	DivineEyesColor = color.RGBA{255, 255, 0, 255}
	DivinePathColor = color.RGBA{200, 200, 200, 255}
	GameOverOverlay = color.RGBA{0, 0, 0, 180}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
