package component

// TrailPoint is one interpolated sample behind an echo pulse.
type TrailPoint struct {
	X, Y float64
	Size float64
}

// Projectile is an echo pulse. It flies along Angle and reflects off the
// arena walls until Bounces reaches the bounce limit.
type Projectile struct {
	Angle   float64
	Speed   float64
	Bounces int
	IsMain  bool
	Damage  float64
	Alpha   float64

	PulseSize   float64
	PulseGrowth bool

	// Trail is ordered oldest first and bounded; it has no gameplay effect.
	Trail []TrailPoint
}
