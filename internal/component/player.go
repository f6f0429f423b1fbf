package component

// Player holds the per-tick control state of the player character.
// Position, velocity and size live in the shared component maps.
type Player struct {
	Health        int
	MoveDirection int // -1 left, 0 idle, 1 right

	InvincibleTimer float64 // ms left; >0 means damage is ignored
	FlashTime       float64 // accumulates while invincible, drives blinking
	DashCooldown    float64 // ms
	EchoCooldown    float64 // ms

	JumpWasPressed bool // previous tick, for edge detection
	IsJumping      bool
}

// IsInvincible reports whether incoming damage is currently ignored.
func (p *Player) IsInvincible() bool {
	return p.InvincibleTimer > 0
}

// StartInvincibility extends the invincibility window to at least duration.
func (p *Player) StartInvincibility(duration float64) {
	if duration > p.InvincibleTimer {
		p.InvincibleTimer = duration
	}
}
