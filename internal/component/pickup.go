package component

// Pickup is a health crystal dropped by a defeated enemy.
type Pickup struct {
	HealAmount int
	PulsePhase float64 // visual only
}
