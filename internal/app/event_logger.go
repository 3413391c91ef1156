// internal/app/event_logger.go
package app

import (
	"go-maze-runners/internal/event"

	log "github.com/sirupsen/logrus"
)

// eventLogger пишет игровые события в лог
type eventLogger struct{}

func (l *eventLogger) OnEvent(e event.Event) {
	entry := log.WithField("event", e.Type)
	switch data := e.Data.(type) {
	case event.DamageData:
		entry.WithFields(log.Fields{
			"amount": data.Amount,
			"crit":   data.Crit,
			"source": data.Source,
			"health": data.HealthAt,
		}).Debug("player damaged")
	case event.HealData:
		entry.WithFields(log.Fields{"amount": data.Amount, "health": data.HealthAt}).Debug("player healed")
	case event.PowerUpData:
		entry.WithFields(log.Fields{"inventory": data.Inventory, "granted": data.Granted}).Debug("divine eyes")
	case event.LevelData:
		entry.WithFields(log.Fields{
			"score": data.Score,
			"size":  data.MazeSize,
			"boss":  data.IsBoss,
		}).Info("level completed")
	case event.GameOverData:
		entry.WithFields(log.Fields{"score": data.Score, "reason": data.Reason}).Info("game over")
	default:
		entry.Debug("event")
	}
}
