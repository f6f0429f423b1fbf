package interfaces

import "go-echo-arena/internal/component"

// Renderer receives one snapshot per display frame. The session never waits
// on it and ignores what it does with the data.
type Renderer interface {
	Render(snap *Snapshot)
}

// Snapshot is a read-only copy of the session state. Slices are freshly
// allocated per snapshot, so renderers may keep them.
type Snapshot struct {
	Mode   component.Mode
	Score  int
	Depth  int
	Tick   uint64
	Alpha  float64 // fraction of the next tick already accumulated
	RunID  string
	Player PlayerView

	Projectiles []ProjectileView
	Enemies     []EnemyView
	Pickups     []PickupView
}

// Box is an axis-aligned entity body.
type Box struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

type PlayerView struct {
	Box
	VX, VY        float64
	Health        int
	MaxHealth     int
	MoveDirection int
	Invincible    bool
	Blink         bool    // invincibility flash phase
	DashReady     float64 // 0..1, 1 when the dash is available
	EchoReady     float64 // 0..1, 1 when the echo can fire
}

type ProjectileView struct {
	Box
	Angle     float64
	IsMain    bool
	Bounces   int
	Alpha     float64
	PulseSize float64
	Trail     []component.TrailPoint
}

type EnemyView struct {
	Box
	Kind      string
	Health    float64
	MaxHealth float64
	Stunned   bool
	Flashing  bool
}

type PickupView struct {
	Box
	PulsePhase float64
}
