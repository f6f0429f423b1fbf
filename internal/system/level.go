package system

import (
	"log"
	"math"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/defs"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/types"
	"go-echo-arena/internal/utils"
)

// LevelSystem populates the arena. Levels are a stub: a fixed number of
// enemies placed at random spots that keep their spawn distance from the
// player and from each other.
type LevelSystem struct {
	ecs     *entity.ECS
	rng     *utils.PRNGService
	library *defs.Library

	populated bool // last Generate spawned at least one enemy
}

func NewLevelSystem(ecs *entity.ECS, rng *utils.PRNGService, library *defs.Library) *LevelSystem {
	return &LevelSystem{ecs: ecs, rng: rng, library: library}
}

// Generate spawns the enemies for the given depth and returns their IDs.
func (s *LevelSystem) Generate(depth int) []types.EntityID {
	var taken [][2]float64
	ids := make([]types.EntityID, 0, config.EnemiesPerLevel)

	for i := 0; i < config.EnemiesPerLevel; i++ {
		defID := s.rng.ChooseWeighted(s.library.SpawnTable, depth)
		if defID == "" {
			defID = config.DefaultEnemyID
		}
		def, ok := s.library.Enemy(defID)
		if !ok {
			log.Printf("Error: Enemy definition not found for ID: %s", defID)
			continue
		}

		x, y := s.findSpawnPosition(def, taken)
		taken = append(taken, [2]float64{x + def.Size/2, y + def.Size/2})
		ids = append(ids, s.SpawnEnemy(def, x, y))
	}

	s.populated = len(ids) > 0
	if !s.populated {
		log.Printf("level: nothing to spawn at depth %d", depth)
	}
	return ids
}

// SpawnEnemy creates an enemy from its definition with the top-left corner
// at (x, y).
func (s *LevelSystem) SpawnEnemy(def defs.EnemyDefinition, x, y float64) types.EntityID {
	id := s.ecs.Spawn(x, y, def.Size, def.Size)
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:       def.ID,
		Health:      def.Health,
		MaxHealth:   def.Health,
		Damage:      def.Damage,
		Speed:       def.Speed,
		MinDistance: def.MinDistance,
		DropChance:  def.DropChance,
	}
	return id
}

// Cleared reports whether every enemy of the current level is dead. A
// level that spawned nothing is never cleared.
func (s *LevelSystem) Cleared() bool {
	return s.populated && len(s.ecs.Enemies) == 0
}

// findSpawnPosition samples random positions until one keeps the spawn
// distance from the player and every taken center. When the attempts run
// out, the sampled position farthest from its nearest neighbour wins.
func (s *LevelSystem) findSpawnPosition(def defs.EnemyDefinition, taken [][2]float64) (float64, float64) {
	var avoid [][2]float64
	if _, pos, _, size := s.ecs.Player(); pos != nil {
		px, py := component.Center(pos, size)
		avoid = append(avoid, [2]float64{px, py})
	}
	avoid = append(avoid, taken...)

	bestX, bestY, bestGap := 0.0, 0.0, -1.0
	for attempt := 0; attempt < config.SpawnAttempts; attempt++ {
		x := s.rng.Float64() * (config.ScreenWidth - def.Size)
		y := s.rng.Float64() * (config.ScreenHeight - def.Size)
		cx, cy := x+def.Size/2, y+def.Size/2

		gap := math.Inf(1)
		for _, p := range avoid {
			gap = math.Min(gap, utils.Distance(cx, cy, p[0], p[1]))
		}
		if gap >= def.SpawnDistance {
			return x, y
		}
		if gap > bestGap {
			bestX, bestY, bestGap = x, y, gap
		}
	}

	log.Printf("level: no spawn spot for %s after %d attempts, using best gap %.0f", def.ID, config.SpawnAttempts, bestGap)
	return bestX, bestY
}
