// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/types"
)

// ECS owns every entity of one session. Entities never reference each other;
// systems receive the ECS and look up both sides of an interaction by ID.
type ECS struct {
	GameTime      float64 // ms of simulated time since the session started
	Mode          component.Mode
	NextID        types.EntityID
	PlayerID      types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Sizes         map[types.EntityID]*component.Size
	Players       map[types.EntityID]*component.Player
	Projectiles   map[types.EntityID]*component.Projectile
	Enemies       map[types.EntityID]*component.Enemy
	Pickups       map[types.EntityID]*component.Pickup
	DamageFlashes map[types.EntityID]*component.DamageFlash

	// Entities flagged during a tick; removed together by Compact.
	removed map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Sizes:         make(map[types.EntityID]*component.Size),
		Players:       make(map[types.EntityID]*component.Player),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Pickups:       make(map[types.EntityID]*component.Pickup),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		removed:       make(map[types.EntityID]struct{}),
	}
}

// Reset drops every entity and the simulated time. The session mode is kept;
// pointers to the ECS held by systems stay valid.
func (ecs *ECS) Reset() {
	mode := ecs.Mode
	*ecs = *NewECS()
	ecs.Mode = mode
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Spawn creates an entity with a body (position, velocity, size).
func (ecs *ECS) Spawn(x, y, w, h float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Sizes[id] = &component.Size{W: w, H: h}
	return id
}

// MarkForRemoval flags an entity; it stays readable until Compact.
func (ecs *ECS) MarkForRemoval(id types.EntityID) {
	ecs.removed[id] = struct{}{}
}

// IsRemoved reports whether the entity was flagged this tick.
func (ecs *ECS) IsRemoved(id types.EntityID) bool {
	_, ok := ecs.removed[id]
	return ok
}

// Compact deletes every flagged entity from all component maps.
func (ecs *ECS) Compact() int {
	n := len(ecs.removed)
	for id := range ecs.removed {
		ecs.remove(id)
	}
	clear(ecs.removed)
	return n
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Sizes, id)
	delete(ecs.Players, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.Pickups, id)
	delete(ecs.DamageFlashes, id)
}

// Player returns the player component together with its body.
func (ecs *ECS) Player() (*component.Player, *component.Position, *component.Velocity, *component.Size) {
	p, ok := ecs.Players[ecs.PlayerID]
	if !ok {
		return nil, nil, nil, nil
	}
	id := ecs.PlayerID
	return p, ecs.Positions[id], ecs.Velocities[id], ecs.Sizes[id]
}

// SortedIDs returns the keys of m in ascending order so that systems iterate
// entities deterministically.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
