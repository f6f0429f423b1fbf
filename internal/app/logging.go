package app

import (
	"log"

	"go-echo-arena/internal/event"
)

var allEventTypes = []event.EventType{
	event.ShotFired,
	event.ProjectileBounced,
	event.EnemyHit,
	event.EnemyKilled,
	event.PickupSpawned,
	event.PickupCollected,
	event.PlayerDamaged,
	event.PlayerJumped,
	event.PlayerDashed,
	event.LevelCleared,
	event.GameOver,
}

// EventLogger writes gameplay events to the standard logger, tagged with
// the run and tick they happened in.
type EventLogger struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	prefix := l.game.runID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	tick := l.game.loop.Ticks()

	switch data := e.Data.(type) {
	case event.ShotData:
		log.Printf("[%s #%d] %s: %d pulses at %.2f rad from (%.0f, %.0f)", prefix, tick, e.Type, data.Count, data.Angle, data.X, data.Y)
	case event.HitData:
		log.Printf("[%s #%d] %s: enemy %d took %.1f at (%.0f, %.0f)", prefix, tick, e.Type, data.EnemyID, data.Damage, data.X, data.Y)
	case event.DamageData:
		log.Printf("[%s #%d] %s: -%d from enemy %d, health %d", prefix, tick, e.Type, data.Amount, data.EnemyID, data.Health)
	case event.PointData:
		log.Printf("[%s #%d] %s: entity %d at (%.0f, %.0f)", prefix, tick, e.Type, data.ID, data.X, data.Y)
	default:
		log.Printf("[%s #%d] %s: %v", prefix, tick, e.Type, data)
	}
}
