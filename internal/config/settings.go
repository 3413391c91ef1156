// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings — настраиваемые параметры игры. Значения по умолчанию берутся из Default(),
// YAML-файл переопределяет только указанные ключи.
type Settings struct {
	Seed       int64              `yaml:"seed"` // 0 — случайный сид
	Maze       MazeSettings       `yaml:"maze"`
	Player     PlayerSettings     `yaml:"player"`
	Hazards    HazardSettings     `yaml:"hazards"`
	Projectile ProjectileSettings `yaml:"projectile"`
	PowerUp    PowerUpSettings    `yaml:"powerUp"`
	Camera     CameraSettings     `yaml:"camera"`
	Fog        FogSettings        `yaml:"fog"`
	Popup      PopupSettings      `yaml:"popup"`
	Debug      DebugSettings      `yaml:"debug"`
}

// MazeSettings — размеры лабиринтов по уровням сложности (все нечётные)
type MazeSettings struct {
	SmallSize  int `yaml:"smallSize"`
	MediumSize int `yaml:"mediumSize"`
	BossSize   int `yaml:"bossSize"`
	BossEvery  int `yaml:"bossEvery"` // босс-уровень, когда score кратен этому числу
}

type PlayerSettings struct {
	StartHealth  int     `yaml:"startHealth"`
	MoveDuration float64 `yaml:"moveDuration"` // секунды на один шаг
	CheatHeal    int     `yaml:"cheatHeal"`
}

type HazardSettings struct {
	TrapDamage       int     `yaml:"trapDamage"`
	TrapProbSmall    float64 `yaml:"trapProbSmall"`
	TrapProbMedium   float64 `yaml:"trapProbMedium"`
	TrapProbBoss     float64 `yaml:"trapProbBoss"`
	HealProbability  float64 `yaml:"healProbability"`
	CritChanceNormal float64 `yaml:"critChanceNormal"`
	CritChanceBoss   float64 `yaml:"critChanceBoss"`
	CritHealthFactor float64 `yaml:"critHealthFactor"` // доля текущего здоровья, добавляемая к криту
	HealFactor       float64 `yaml:"healFactor"`       // лечение — доля текущего здоровья
}

type ProjectileSettings struct {
	Cooldown        float64 `yaml:"cooldown"`    // секунды
	SpeedFactor     float64 `yaml:"speedFactor"` // клеток в секунду
	BossSpawnChance float64 `yaml:"bossSpawnChance"`
	BaseSpawnChance float64 `yaml:"baseSpawnChance"`
	SpawnChanceStep float64 `yaml:"spawnChanceStep"` // прибавка за каждое очко
	MaxSpawnChance  float64 `yaml:"maxSpawnChance"`
}

type PowerUpSettings struct {
	SpawnChance       float64 `yaml:"spawnChance"`
	MaxInventory      int     `yaml:"maxInventory"`
	AnimationDuration float64 `yaml:"animationDuration"` // секунды полёта сферы
}

type CameraSettings struct {
	MinZoom    float64 `yaml:"minZoom"`
	MaxZoom    float64 `yaml:"maxZoom"`
	ZoomSpeed  float64 `yaml:"zoomSpeed"`  // изменение целевого зума в секунду
	InterpRate float64 `yaml:"interpRate"` // скорость сглаживания зума
}

type FogSettings struct {
	RadiusCells     float64 `yaml:"radiusCells"`
	AmplitudeFactor float64 `yaml:"amplitudeFactor"`
	NoiseScale      float64 `yaml:"noiseScale"`
	Speed           float64 `yaml:"speed"`
	Opacity         uint8   `yaml:"opacity"`
	FadeWidth       float64 `yaml:"fadeWidth"`
	FadeSteps       int     `yaml:"fadeSteps"`
	SustainBoost    float64 `yaml:"sustainBoost"` // множитель радиуса при активных Divine Eyes
}

type PopupSettings struct {
	Duration  float64 `yaml:"duration"`  // секунды
	RiseSpeed float64 `yaml:"riseSpeed"` // пикселей в секунду
}

// DebugSettings — отладочный HTTP (pprof + снимок сессии) и логирование
type DebugSettings struct {
	Addr     string `yaml:"addr"` // пусто — сервер выключен
	LogLevel string `yaml:"logLevel"`
}

// Default возвращает настройки, совпадающие с оригинальной игрой
func Default() *Settings {
	return &Settings{
		Maze: MazeSettings{
			SmallSize:  21,
			MediumSize: 41,
			BossSize:   61,
			BossEvery:  5,
		},
		Player: PlayerSettings{
			StartHealth:  100,
			MoveDuration: 0.2,
			CheatHeal:    50,
		},
		Hazards: HazardSettings{
			TrapDamage:       20,
			TrapProbSmall:    0.02,
			TrapProbMedium:   0.035,
			TrapProbBoss:     0.05,
			HealProbability:  0.01,
			CritChanceNormal: 0.10,
			CritChanceBoss:   0.25,
			CritHealthFactor: 0.25,
			HealFactor:       0.5,
		},
		Projectile: ProjectileSettings{
			Cooldown:        5.0,
			SpeedFactor:     1.5,
			BossSpawnChance: 0.30,
			BaseSpawnChance: 0.02,
			SpawnChanceStep: 0.005,
			MaxSpawnChance:  0.15,
		},
		PowerUp: PowerUpSettings{
			SpawnChance:       0.001,
			MaxInventory:      2,
			AnimationDuration: 5.0,
		},
		Camera: CameraSettings{
			MinZoom:    1.0,
			MaxZoom:    3.0,
			ZoomSpeed:  0.5,
			InterpRate: 5.0,
		},
		Fog: FogSettings{
			RadiusCells:     6,
			AmplitudeFactor: 0.1,
			NoiseScale:      1.5,
			Speed:           0.3,
			Opacity:         255,
			FadeWidth:       0.5,
			FadeSteps:       3,
			SustainBoost:    1.5,
		},
		Popup: PopupSettings{
			Duration:  1.0,
			RiseSpeed: 50,
		},
		Debug: DebugSettings{
			Addr:     "localhost:6060",
			LogLevel: "info",
		},
	}
}

// Load читает YAML поверх настроек по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func Load(path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// Validate проверяет корректность настроек
func (s *Settings) Validate() error {
	for name, size := range map[string]int{
		"maze.smallSize":  s.Maze.SmallSize,
		"maze.mediumSize": s.Maze.MediumSize,
		"maze.bossSize":   s.Maze.BossSize,
	} {
		if size < 5 || size%2 == 0 {
			return fmt.Errorf("%s must be odd and >= 5, got %d", name, size)
		}
	}
	if s.Maze.BossEvery < 1 {
		return fmt.Errorf("maze.bossEvery must be >= 1, got %d", s.Maze.BossEvery)
	}

	if s.Player.StartHealth <= 0 {
		return fmt.Errorf("player.startHealth must be > 0, got %d", s.Player.StartHealth)
	}
	if s.Player.MoveDuration <= 0 {
		return fmt.Errorf("player.moveDuration must be > 0, got %v", s.Player.MoveDuration)
	}

	for name, p := range map[string]float64{
		"hazards.trapProbSmall":      s.Hazards.TrapProbSmall,
		"hazards.trapProbMedium":     s.Hazards.TrapProbMedium,
		"hazards.trapProbBoss":       s.Hazards.TrapProbBoss,
		"hazards.healProbability":    s.Hazards.HealProbability,
		"hazards.critChanceNormal":   s.Hazards.CritChanceNormal,
		"hazards.critChanceBoss":     s.Hazards.CritChanceBoss,
		"projectile.bossSpawnChance": s.Projectile.BossSpawnChance,
		"projectile.baseSpawnChance": s.Projectile.BaseSpawnChance,
		"projectile.maxSpawnChance":  s.Projectile.MaxSpawnChance,
		"powerUp.spawnChance":        s.PowerUp.SpawnChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, p)
		}
	}
	if s.Hazards.TrapProbBoss+s.Hazards.HealProbability > 1 {
		return fmt.Errorf("hazards.trapProbBoss + hazards.healProbability must not exceed 1")
	}

	if s.Projectile.Cooldown <= 0 {
		return fmt.Errorf("projectile.cooldown must be > 0, got %v", s.Projectile.Cooldown)
	}
	if s.PowerUp.MaxInventory < 0 {
		return fmt.Errorf("powerUp.maxInventory must be >= 0, got %d", s.PowerUp.MaxInventory)
	}
	if s.PowerUp.AnimationDuration <= 0 {
		return fmt.Errorf("powerUp.animationDuration must be > 0, got %v", s.PowerUp.AnimationDuration)
	}

	if s.Camera.MinZoom <= 0 || s.Camera.MaxZoom < s.Camera.MinZoom {
		return fmt.Errorf("camera zoom range [%v, %v] is invalid", s.Camera.MinZoom, s.Camera.MaxZoom)
	}
	if s.Fog.FadeSteps < 1 {
		return fmt.Errorf("fog.fadeSteps must be >= 1, got %d", s.Fog.FadeSteps)
	}
	if s.Popup.Duration <= 0 {
		return fmt.Errorf("popup.duration must be > 0, got %v", s.Popup.Duration)
	}
	return nil
}
