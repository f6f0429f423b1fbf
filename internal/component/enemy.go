package component

// Enemy is a seeking arena enemy. Health is fractional because side pulses
// deal half damage.
type Enemy struct {
	DefID       string
	Health      float64
	MaxHealth   float64
	Damage      int
	Speed       float64
	MinDistance float64
	DropChance  float64

	Stunned   bool
	StunTimer float64 // ms
}

// IsDead reports whether the resolver should remove the enemy.
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}
