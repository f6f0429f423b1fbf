// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Health        float64 `json:"health"`
	Damage        int     `json:"damage"`
	Speed         float64 `json:"speed"`
	Size          float64 `json:"size"`
	MinDistance   float64 `json:"min_distance"`   // orbit radius around the player
	SpawnDistance float64 `json:"spawn_distance"` // minimum distance from player and other spawns
	DropChance    float64 `json:"drop_chance"`    // probability of a health crystal on death
}

// Validate reports the first field that would break the simulation.
func (d EnemyDefinition) Validate() error {
	switch {
	case d.ID == "":
		return errMissingID
	case d.Health <= 0:
		return fieldError(d.ID, "health")
	case d.Size <= 0:
		return fieldError(d.ID, "size")
	case d.Speed < 0:
		return fieldError(d.ID, "speed")
	case d.DropChance < 0 || d.DropChance > 1:
		return fieldError(d.ID, "drop_chance")
	}
	return nil
}
