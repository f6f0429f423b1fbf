package render

import (
	"image/color"

	"go-echo-arena/internal/config"
	"go-echo-arena/internal/event"
)

// ring is a short-lived expanding circle drawn where something happened.
type ring struct {
	X, Y      float64
	Radius    float64
	Growth    float64 // radius added per frame
	Age, Life float64 // ms
	Color     color.RGBA
}

// Effects turns gameplay events into rings. It is a pure presentation
// layer: nothing it does feeds back into the simulation.
type Effects struct {
	rings []ring
}

func NewEffects() *Effects {
	return &Effects{}
}

// OnEvent реализует интерфейс event.Listener.
func (e *Effects) OnEvent(ev event.Event) {
	switch data := ev.Data.(type) {
	case event.HitData:
		if ev.Type == event.EnemyKilled {
			e.add(data.X, data.Y, 12, 2.5, 400, config.EnemyColor)
		} else {
			e.add(data.X, data.Y, 6, 1.5, 250, config.EchoColor)
		}
	case event.PointData:
		switch ev.Type {
		case event.PickupSpawned:
			e.add(data.X, data.Y, 4, 1, 500, config.CrystalColor)
		case event.PickupCollected:
			e.add(data.X, data.Y, 20, 2, 300, config.CrystalColor)
		case event.ProjectileBounced:
			e.add(data.X, data.Y, 4, 1, 150, config.EchoColor)
		case event.PlayerJumped, event.PlayerDashed:
			e.add(data.X, data.Y, 8, 1, 200, config.PlayerColor)
		}
	case event.ShotData:
		e.add(data.X, data.Y, config.EchoRadius, 2, 200, config.EchoColor)
	}
}

// SubscribeTo registers the effects for every event they draw.
func (e *Effects) SubscribeTo(d *event.Dispatcher) {
	d.SubscribeAll(e,
		event.EnemyHit, event.EnemyKilled, event.PickupSpawned, event.PickupCollected,
		event.ProjectileBounced, event.PlayerJumped, event.PlayerDashed, event.ShotFired,
	)
}

func (e *Effects) add(x, y, radius, growth, life float64, c color.RGBA) {
	e.rings = append(e.rings, ring{X: x, Y: y, Radius: radius, Growth: growth, Life: life, Color: c})
}

// Advance ages every ring by dt ms and drops the expired ones.
func (e *Effects) Advance(dt float64) {
	live := e.rings[:0]
	for _, r := range e.rings {
		r.Age += dt
		r.Radius += r.Growth
		if r.Age < r.Life {
			live = append(live, r)
		}
	}
	e.rings = live
}

// Clear drops every ring.
func (e *Effects) Clear() {
	e.rings = e.rings[:0]
}

// Len returns the number of live rings.
func (e *Effects) Len() int {
	return len(e.rings)
}
