// internal/level/difficulty.go
package level

import (
	"math"

	"go-maze-runners/internal/config"
)

// SizeClass — класс размера лабиринта
type SizeClass int

const (
	Small SizeClass = iota
	Medium
	Boss
)

func (c SizeClass) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Boss:
		return "boss"
	default:
		return "unknown"
	}
}

// Difficulty — параметры уровня, выведенные из счёта
type Difficulty struct {
	SizeClass             SizeClass
	MazeSize              int
	TrapProbability       float64
	CritChance            float64
	ProjectileSpawnChance float64
	IsBoss                bool
}

// DifficultyForScore выбирает уровень сложности по текущему счёту.
// Босс-уровень проверяется первым: score>0 и кратен BossEvery.
func DifficultyForScore(score int, s *config.Settings) Difficulty {
	var d Difficulty
	switch {
	case score > 0 && score%s.Maze.BossEvery == 0:
		d = Difficulty{
			SizeClass:       Boss,
			MazeSize:        s.Maze.BossSize,
			TrapProbability: s.Hazards.TrapProbBoss,
			CritChance:      s.Hazards.CritChanceBoss,
			IsBoss:          true,
		}
	case score < 2:
		d = Difficulty{
			SizeClass:       Small,
			MazeSize:        s.Maze.SmallSize,
			TrapProbability: s.Hazards.TrapProbSmall,
			CritChance:      s.Hazards.CritChanceNormal,
		}
	default:
		d = Difficulty{
			SizeClass:       Medium,
			MazeSize:        s.Maze.MediumSize,
			TrapProbability: s.Hazards.TrapProbMedium,
			CritChance:      s.Hazards.CritChanceNormal,
		}
	}

	if d.IsBoss {
		d.ProjectileSpawnChance = s.Projectile.BossSpawnChance
	} else {
		p := s.Projectile
		d.ProjectileSpawnChance = math.Min(p.BaseSpawnChance+p.SpawnChanceStep*float64(score), p.MaxSpawnChance)
	}
	return d
}
