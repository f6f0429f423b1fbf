package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()

	basic, ok := lib.Enemy("BASIC")
	if !ok {
		t.Fatalf("BASIC definition missing")
	}
	if basic.Health != 2 || basic.Damage != 1 || basic.Speed != 1.5 || basic.Size != 32 {
		t.Errorf("unexpected BASIC stats: %+v", basic)
	}
	if basic.MinDistance != 200 || basic.SpawnDistance != 300 {
		t.Errorf("unexpected BASIC distances: %+v", basic)
	}
	if basic.DropChance != 0.2 {
		t.Errorf("BASIC drop chance = %v, want 0.2 from the definitions file", basic.DropChance)
	}

	elite, ok := lib.Enemy("ELITE")
	if !ok {
		t.Fatalf("ELITE definition missing")
	}
	if elite.Health != 4 || elite.Damage != 2 || elite.Size != 48 {
		t.Errorf("unexpected ELITE stats: %+v", elite)
	}
	if len(lib.SpawnTable) != 2 {
		t.Fatalf("spawn table has %d entries, want 2", len(lib.SpawnTable))
	}
}

func TestParseLibraryRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad json":         `{"enemies": [`,
		"missing id":       `{"enemies": [{"health": 1, "size": 10}]}`,
		"zero health":      `{"enemies": [{"id": "A", "health": 0, "size": 10}]}`,
		"bad drop":         `{"enemies": [{"id": "A", "health": 1, "size": 10, "drop_chance": 2}]}`,
		"duplicate":        `{"enemies": [{"id": "A", "health": 1, "size": 10}, {"id": "A", "health": 1, "size": 10}]}`,
		"unknown spawn":    `{"enemies": [{"id": "A", "health": 1, "size": 10}], "spawn_table": [{"enemy_id": "B", "weight": 1}]}`,
		"negative weight":  `{"enemies": [{"id": "A", "health": 1, "size": 10}], "spawn_table": [{"enemy_id": "A", "weight": -1}]}`,
		"no opening enemy": `{"enemies": [{"id": "GHOST", "health": 1, "size": 10}], "spawn_table": [{"enemy_id": "GHOST", "weight": 1, "min_depth": 3}]}`,
		"empty table":      `{"enemies": [{"id": "GHOST", "health": 1, "size": 10}]}`,
	}
	for name, doc := range cases {
		if _, err := ParseLibrary(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestLoadLibraryFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enemies.json")
	doc := `{"enemies": [{"id": "TINY", "health": 1, "damage": 1, "speed": 3, "size": 16}],
	         "spawn_table": [{"enemy_id": "TINY", "weight": 1}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if def, ok := lib.Enemy("TINY"); !ok || def.Speed != 3 {
		t.Errorf("TINY = %+v, %v", def, ok)
	}

	if _, err := LoadLibrary(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestParseLibraryNoOpeningEnemyIsWrapped(t *testing.T) {
	doc := `{"enemies": [{"id": "GHOST", "health": 1, "size": 10}],
	         "spawn_table": [{"enemy_id": "GHOST", "weight": 1, "min_depth": 3}]}`
	_, err := ParseLibrary(strings.NewReader(doc))
	if !errors.Is(err, errNoOpeningEnemy) {
		t.Fatalf("err = %v, want errNoOpeningEnemy", err)
	}
}

func TestCanSpawnAt(t *testing.T) {
	lib := &Library{
		Enemies: map[string]EnemyDefinition{
			"GHOST": {ID: "GHOST", Health: 1, Size: 10},
		},
		SpawnTable: []SpawnEntry{{EnemyID: "GHOST", Weight: 1, MinDepth: 3}},
	}
	if lib.CanSpawnAt(0) || lib.CanSpawnAt(2) {
		t.Error("GHOST is locked below depth 3")
	}
	if !lib.CanSpawnAt(3) {
		t.Error("GHOST should spawn at depth 3")
	}

	lib.Enemies["BASIC"] = EnemyDefinition{ID: "BASIC", Health: 1, Size: 10}
	if !lib.CanSpawnAt(0) {
		t.Error("default enemy should cover depth 0")
	}
}
