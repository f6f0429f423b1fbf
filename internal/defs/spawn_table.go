// internal/defs/spawn_table.go
package defs

// SpawnEntry is one row of the spawn table. EnemyID is drawn with relative
// Weight once the session depth reaches MinDepth.
type SpawnEntry struct {
	EnemyID  string `json:"enemy_id"`
	Weight   int    `json:"weight"`
	MinDepth int    `json:"min_depth"`
}
