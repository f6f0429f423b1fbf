package entity

import (
	"slices"
	"testing"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/types"
)

func TestSpawnAssignsIncreasingIDs(t *testing.T) {
	ecs := NewECS()
	a := ecs.Spawn(1, 2, 3, 4)
	b := ecs.Spawn(5, 6, 7, 8)

	if a == 0 || b <= a {
		t.Fatalf("ids = %d, %d", a, b)
	}
	if pos := ecs.Positions[a]; pos.X != 1 || pos.Y != 2 {
		t.Errorf("position = %+v", pos)
	}
	if size := ecs.Sizes[b]; size.W != 7 || size.H != 8 {
		t.Errorf("size = %+v", size)
	}
	if _, ok := ecs.Velocities[a]; !ok {
		t.Error("spawned entity has no velocity")
	}
}

func TestMarkForRemovalDefersUntilCompact(t *testing.T) {
	ecs := NewECS()
	id := ecs.Spawn(0, 0, 1, 1)
	ecs.Enemies[id] = &component.Enemy{Health: 1}
	keep := ecs.Spawn(0, 0, 1, 1)

	ecs.MarkForRemoval(id)
	ecs.MarkForRemoval(id)
	if !ecs.IsRemoved(id) || ecs.IsRemoved(keep) {
		t.Fatal("IsRemoved does not reflect marks")
	}
	if _, ok := ecs.Enemies[id]; !ok {
		t.Fatal("marked entity deleted before Compact")
	}

	if n := ecs.Compact(); n != 1 {
		t.Errorf("Compact removed %d, want 1", n)
	}
	if _, ok := ecs.Enemies[id]; ok {
		t.Error("enemy still present after Compact")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Error("position still present after Compact")
	}
	if ecs.IsRemoved(id) {
		t.Error("mark survived Compact")
	}
	if _, ok := ecs.Positions[keep]; !ok {
		t.Error("unmarked entity removed")
	}
}

func TestPlayerLookup(t *testing.T) {
	ecs := NewECS()
	if p, _, _, _ := ecs.Player(); p != nil {
		t.Fatal("player found in empty ECS")
	}
	id := ecs.Spawn(10, 20, 32, 64)
	ecs.Players[id] = &component.Player{Health: 5}
	ecs.PlayerID = id

	p, pos, vel, size := ecs.Player()
	if p == nil || pos.X != 10 || vel == nil || size.H != 64 {
		t.Errorf("Player() = %v %v %v %v", p, pos, vel, size)
	}
}

func TestResetDropsEntities(t *testing.T) {
	ecs := NewECS()
	ecs.Mode = component.ModePaused
	ecs.GameTime = 1000
	id := ecs.Spawn(0, 0, 1, 1)
	ecs.MarkForRemoval(id)

	ecs.Reset()
	if len(ecs.Positions) != 0 || ecs.GameTime != 0 || ecs.IsRemoved(id) {
		t.Error("Reset left state behind")
	}
	if ecs.Mode != component.ModePaused {
		t.Errorf("mode = %s, want PAUSED", ecs.Mode)
	}
	if next := ecs.NewEntity(); next != 1 {
		t.Errorf("first id after Reset = %d, want 1", next)
	}
}

func TestSortedIDs(t *testing.T) {
	m := map[types.EntityID]int{5: 0, 1: 0, 3: 0}
	if got := SortedIDs(m); !slices.Equal(got, []types.EntityID{1, 3, 5}) {
		t.Errorf("SortedIDs = %v", got)
	}
}
