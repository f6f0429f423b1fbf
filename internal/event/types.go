package event

import "go-echo-arena/internal/types"

const (
	ShotFired         EventType = "ShotFired"         // ShotData
	ProjectileBounced EventType = "ProjectileBounced" // PointData
	EnemyHit          EventType = "EnemyHit"          // HitData
	EnemyKilled       EventType = "EnemyKilled"       // HitData
	PickupSpawned     EventType = "PickupSpawned"     // PointData
	PickupCollected   EventType = "PickupCollected"   // PointData
	PlayerDamaged     EventType = "PlayerDamaged"     // DamageData
	PlayerJumped      EventType = "PlayerJumped"      // PointData
	PlayerDashed      EventType = "PlayerDashed"      // PointData
	LevelCleared      EventType = "LevelCleared"      // int depth
	GameOver          EventType = "GameOver"          // int score
)

// PointData locates an effect in arena coordinates.
type PointData struct {
	ID   types.EntityID
	X, Y float64
}

// ShotData describes a fired spread.
type ShotData struct {
	X, Y  float64
	Angle float64
	Count int
}

// HitData describes a projectile hitting an enemy.
type HitData struct {
	ProjectileID types.EntityID
	EnemyID      types.EntityID
	X, Y         float64
	Damage       float64
}

// DamageData describes damage taken by the player.
type DamageData struct {
	EnemyID types.EntityID
	Amount  int
	Health  int
}
