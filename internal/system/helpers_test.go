package system

import (
	"math"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/defs"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/event"
	"go-echo-arena/internal/types"
	"go-echo-arena/internal/utils"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	players    *PlayerSystem
	combat     *CombatSystem
	events     []event.Event
}

// newWorld builds an ECS with a player centered on (cx, cy) and records
// every dispatched event.
func newWorld(cx, cy float64) *world {
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
	}
	w.players = NewPlayerSystem(w.ecs, w.dispatcher, config.Debug{})
	w.combat = NewCombatSystem(w.ecs, w.dispatcher, w.rng, config.Debug{})
	w.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.events = append(w.events, e)
	}),
		event.ShotFired, event.ProjectileBounced, event.EnemyHit, event.EnemyKilled,
		event.PickupSpawned, event.PickupCollected, event.PlayerDamaged,
		event.PlayerJumped, event.PlayerDashed,
	)
	w.players.CreatePlayer(cx-config.PlayerWidth/2, cy-config.PlayerHeight/2)
	return w
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (w *world) player() *component.Player {
	p, _, _, _ := w.ecs.Player()
	return p
}

// addEnemy places a 32x32 enemy with the given health at (x, y).
func (w *world) addEnemy(x, y, health float64) types.EntityID {
	id := w.ecs.Spawn(x, y, 32, 32)
	w.ecs.Enemies[id] = &component.Enemy{
		DefID:       "BASIC",
		Health:      health,
		MaxHealth:   health,
		Damage:      1,
		Speed:       1.5,
		MinDistance: 200,
	}
	return id
}

// addProjectile places a pulse box with the given damage at (x, y).
func (w *world) addProjectile(x, y, angle, damage float64) types.EntityID {
	id := w.ecs.Spawn(x, y, config.EchoSize, config.EchoSize)
	w.ecs.Projectiles[id] = &component.Projectile{
		Angle:     angle,
		Speed:     config.EchoSpeed,
		IsMain:    damage == config.EchoMainDamage,
		Damage:    damage,
		Alpha:     1,
		PulseSize: config.EchoRadius,
	}
	return id
}

func testLibrary(spawnDistance float64) *defs.Library {
	return &defs.Library{
		Enemies: map[string]defs.EnemyDefinition{
			"BASIC": {ID: "BASIC", Health: 2, Damage: 1, Speed: 1.5, Size: 32, MinDistance: 200, SpawnDistance: spawnDistance, DropChance: 0.2},
			"ELITE": {ID: "ELITE", Health: 4, Damage: 2, Speed: 2, Size: 48, MinDistance: 250, SpawnDistance: spawnDistance, DropChance: 0.2},
		},
		SpawnTable: []defs.SpawnEntry{
			{EnemyID: "BASIC", Weight: 3},
			{EnemyID: "ELITE", Weight: 1, MinDepth: 2},
		},
	}
}
