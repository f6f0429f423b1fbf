// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600

	// Simulation step in milliseconds (60 ticks per second).
	TickMs = 1000.0 / 60.0
	// Frame deltas above this are clamped so a stalled window does not
	// replay seconds of simulation in one frame.
	MaxFrameDeltaMs = 250.0
)

// Player
const (
	PlayerWidth     = 32.0
	PlayerHeight    = 64.0
	PlayerMaxSpeed  = 8.0
	PlayerMaxHealth = 5
	PlayerStartX    = ScreenWidth / 2
	PlayerStartY    = ScreenHeight / 2
	BlinkIntervalMs = 100.0

	GroundAcceleration = 0.15
	AirAcceleration    = 0.1
	GroundDeceleration = 0.25
	AirDeceleration    = 0.05
	GroundFriction     = 0.85

	JumpForce       = -15.0
	JumpCutFactor   = 0.85
	Gravity         = 0.8
	WallSlideSpeed  = 2.0
	WallJumpForceX  = 12.0
	WallJumpForceY  = -12.0
	DashCooldownMs  = 1000.0
	DashSpeedFactor = 2.0

	InvincibilityMs      = 800.0
	StartInvincibilityMs = 3000.0
	DamageKnockback      = 10.0
	RecoilForce          = 3.0
)

// Echo pulse
const (
	EchoSpeed       = 10.0
	EchoMaxBounces  = 3
	EchoCooldownMs  = 800.0
	EchoRadius      = 16.0
	EchoSize        = EchoRadius * 2
	EchoSpreadCount = 5
	EchoSpreadStep  = 1.0 / 32.0 // multiplied by π
	EchoMainDamage  = 1.0
	EchoSideDamage  = 0.5
	EchoSideAlpha   = 0.6

	EchoTrailSegments = 5
	EchoTrailSteps    = 3
	EchoTrailLength   = EchoTrailSegments * EchoTrailSteps
	EchoPulseGrowth   = 0.5
)

// Enemy
const (
	DefaultEnemyID     = "BASIC"
	EnemyStunMs        = 500.0
	EnemyFlashMs       = 200.0
	EnemyDamping       = 0.98
	EnemyStunDamping   = 0.8
	EnemyApproachScale = 0.5
	EnemyWobbleFreq    = 0.001
	EnemyWobbleAmp     = 0.2
	EnemiesPerLevel    = 2
	SpawnAttempts      = 200
	ScorePerKill       = 100
)

// Pickup (health crystal)
const (
	CrystalSize        = 24.0
	CrystalHealAmount  = 1
	CrystalPulseRate   = 0.005
	MagnetRadius       = 150.0
	MagnetPullFactor   = 0.1
	CollisionBuffer    = 5.0
	HUDMargin          = 16
	HUDGemRadius       = 8.0
	HUDGemSpacing      = 6.0
	CooldownBarHeight  = 2.0
	CooldownBarOffsetY = 8.0
)

// Debug holds developer switches set from the command line.
type Debug struct {
	Invincible    bool
	UnlimitedEcho bool
	ShowHitboxes  bool
}

var (
	BackgroundColor = color.RGBA{31, 41, 55, 255}
	PlayerColor     = color.RGBA{147, 51, 234, 255}
	PlayerHurtColor = color.RGBA{255, 107, 107, 255}
	EchoColor       = color.RGBA{139, 92, 246, 255}
	EnemyColor      = color.RGBA{239, 68, 68, 255}
	CrystalColor    = color.RGBA{16, 185, 129, 255}
	EmptyGemColor   = color.RGBA{75, 85, 99, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 140}
	HitboxColor     = color.RGBA{255, 255, 0, 160}
)
