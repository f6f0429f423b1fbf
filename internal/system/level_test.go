package system

import (
	"testing"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/defs"
	"go-echo-arena/internal/utils"
)

func TestGenerateSpawnsBasicEnemiesAtDepthZero(t *testing.T) {
	w := newWorld(450, 300)
	ls := NewLevelSystem(w.ecs, w.rng, testLibrary(50))

	ids := ls.Generate(0)

	if len(ids) != config.EnemiesPerLevel || len(w.ecs.Enemies) != config.EnemiesPerLevel {
		t.Fatalf("enemies = %d, want %d", len(w.ecs.Enemies), config.EnemiesPerLevel)
	}
	for _, id := range ids {
		enemy := w.ecs.Enemies[id]
		if enemy.DefID != "BASIC" {
			t.Errorf("depth 0 spawned %s", enemy.DefID)
		}
		if enemy.Health != 2 || enemy.MaxHealth != 2 {
			t.Errorf("health = %v/%v, want 2/2", enemy.Health, enemy.MaxHealth)
		}
		pos, size := w.ecs.Positions[id], w.ecs.Sizes[id]
		if pos.X < 0 || pos.Y < 0 || pos.X+size.W > config.ScreenWidth || pos.Y+size.H > config.ScreenHeight {
			t.Errorf("enemy outside the arena at (%v, %v)", pos.X, pos.Y)
		}
	}
}

func TestGenerateKeepsSpawnDistance(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := newWorld(450, 300)
		ls := NewLevelSystem(w.ecs, utils.NewPRNGService(seed), testLibrary(120))
		ids := ls.Generate(0)

		_, ppos, _, psize := w.ecs.Player()
		px, py := component.Center(ppos, psize)
		var centers [][2]float64
		for _, id := range ids {
			cx, cy := component.Center(w.ecs.Positions[id], w.ecs.Sizes[id])
			if d := utils.Distance(cx, cy, px, py); d < 120 {
				t.Errorf("seed %d: enemy %v from the player", seed, d)
			}
			for _, c := range centers {
				if d := utils.Distance(cx, cy, c[0], c[1]); d < 120 {
					t.Errorf("seed %d: enemies %v apart", seed, d)
				}
			}
			centers = append(centers, [2]float64{cx, cy})
		}
	}
}

func TestGenerateFallsBackWhenArenaIsTooSmall(t *testing.T) {
	w := newWorld(450, 300)
	ls := NewLevelSystem(w.ecs, w.rng, testLibrary(5000))

	if ids := ls.Generate(0); len(ids) != config.EnemiesPerLevel {
		t.Fatalf("enemies = %d, want %d", len(ids), config.EnemiesPerLevel)
	}
}

func TestGenerateUnlocksEliteWithDepth(t *testing.T) {
	w := newWorld(450, 300)
	ls := NewLevelSystem(w.ecs, utils.NewPRNGService(7), testLibrary(50))

	elites := 0
	for i := 0; i < 50; i++ {
		for _, id := range ls.Generate(5) {
			if w.ecs.Enemies[id].DefID == "ELITE" {
				elites++
				if s := w.ecs.Sizes[id]; s.W != 48 {
					t.Fatalf("elite size = %v, want 48", s.W)
				}
			}
		}
	}
	if elites == 0 {
		t.Error("no ELITE enemy spawned at depth 5")
	}
}

func TestCleared(t *testing.T) {
	w := newWorld(450, 300)
	ls := NewLevelSystem(w.ecs, w.rng, testLibrary(50))
	if ls.Cleared() {
		t.Fatal("arena cleared before any level was generated")
	}
	ids := ls.Generate(0)
	if ls.Cleared() {
		t.Fatal("arena with enemies reported cleared")
	}
	for _, id := range ids {
		w.ecs.MarkForRemoval(id)
	}
	w.ecs.Compact()
	if !ls.Cleared() {
		t.Error("arena not cleared after removing every enemy")
	}
}

func TestEmptyLevelIsNeverCleared(t *testing.T) {
	w := newWorld(450, 300)
	lib := &defs.Library{
		Enemies: map[string]defs.EnemyDefinition{
			"GHOST": {ID: "GHOST", Health: 1, Size: 32, SpawnDistance: 50},
		},
		SpawnTable: []defs.SpawnEntry{{EnemyID: "GHOST", Weight: 1, MinDepth: 3}},
	}
	ls := NewLevelSystem(w.ecs, w.rng, lib)

	if ids := ls.Generate(0); len(ids) != 0 {
		t.Fatalf("spawned %d enemies, want 0", len(ids))
	}
	if ls.Cleared() {
		t.Error("level without enemies reported cleared")
	}
}
