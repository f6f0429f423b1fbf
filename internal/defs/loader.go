// internal/defs/loader.go
package defs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go-echo-arena/internal/config"
)

//go:embed data/enemies.json
var defaultEnemies []byte

var (
	errMissingID      = errors.New("enemy definition without id")
	errNoOpeningEnemy = errors.New("no enemy can spawn at depth 0")
)

func fieldError(id, field string) error {
	return fmt.Errorf("enemy %q: invalid %s", id, field)
}

// Library holds enemy definitions keyed by ID and the spawn table.
type Library struct {
	Enemies    map[string]EnemyDefinition
	SpawnTable []SpawnEntry
}

type libraryFile struct {
	Enemies    []EnemyDefinition `json:"enemies"`
	SpawnTable []SpawnEntry      `json:"spawn_table"`
}

// Enemy looks up a definition by ID.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.Enemies[id]
	return def, ok
}

// CanSpawnAt reports whether a level at depth gets any enemy: either a
// spawn table entry is unlocked or the default enemy is defined.
func (l *Library) CanSpawnAt(depth int) bool {
	for _, entry := range l.SpawnTable {
		if entry.MinDepth <= depth && entry.Weight > 0 {
			return true
		}
	}
	_, ok := l.Enemies[config.DefaultEnemyID]
	return ok
}

// DefaultLibrary returns the definitions compiled into the binary.
func DefaultLibrary() *Library {
	lib, err := ParseLibrary(bytes.NewReader(defaultEnemies))
	if err != nil {
		panic(fmt.Sprintf("embedded enemy definitions are invalid: %v", err))
	}
	return lib
}

// LoadLibrary reads an enemy definition file from disk.
func LoadLibrary(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open enemy definitions file: %w", err)
	}
	defer f.Close()

	lib, err := ParseLibrary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes and validates a definition document.
func ParseLibrary(r io.Reader) (*Library, error) {
	var file libraryFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := &Library{
		Enemies:    make(map[string]EnemyDefinition, len(file.Enemies)),
		SpawnTable: file.SpawnTable,
	}
	for _, def := range file.Enemies {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		lib.Enemies[def.ID] = def
	}
	for _, entry := range lib.SpawnTable {
		if _, ok := lib.Enemies[entry.EnemyID]; !ok {
			return nil, fmt.Errorf("spawn table references unknown enemy %q", entry.EnemyID)
		}
		if entry.Weight < 0 {
			return nil, fmt.Errorf("spawn table entry %q: negative weight", entry.EnemyID)
		}
	}
	if !lib.CanSpawnAt(0) {
		return nil, fmt.Errorf("spawn table: %w (add an entry with min_depth 0 or define %s)", errNoOpeningEnemy, config.DefaultEnemyID)
	}
	return lib, nil
}
