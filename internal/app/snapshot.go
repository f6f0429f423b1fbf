package app

import (
	"slices"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/interfaces"
	"go-echo-arena/internal/types"
	"go-echo-arena/internal/utils"
)

// Snapshot copies the session state for renderers. Entities are listed in
// ID order.
func (g *Game) Snapshot() *interfaces.Snapshot {
	ecs := g.ECS
	snap := &interfaces.Snapshot{
		Mode:        g.Mode(),
		Score:       g.score,
		Depth:       g.depth,
		Tick:        g.loop.Ticks(),
		Alpha:       g.loop.Alpha(),
		RunID:       g.runID,
		Projectiles: make([]interfaces.ProjectileView, 0, len(ecs.Projectiles)),
		Enemies:     make([]interfaces.EnemyView, 0, len(ecs.Enemies)),
		Pickups:     make([]interfaces.PickupView, 0, len(ecs.Pickups)),
	}

	if player, pos, vel, size := ecs.Player(); player != nil {
		snap.Player = interfaces.PlayerView{
			Box:           boxOf(pos, size),
			VX:            vel.X,
			VY:            vel.Y,
			Health:        player.Health,
			MaxHealth:     config.PlayerMaxHealth,
			MoveDirection: player.MoveDirection,
			Invincible:    player.IsInvincible(),
			Blink:         player.IsInvincible() && int(player.FlashTime/config.BlinkIntervalMs)%2 == 1,
			DashReady:     readiness(player.DashCooldown, config.DashCooldownMs),
			EchoReady:     readiness(player.EchoCooldown, config.EchoCooldownMs),
		}
	}

	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		proj := ecs.Projectiles[id]
		snap.Projectiles = append(snap.Projectiles, interfaces.ProjectileView{
			Box:       g.box(id),
			Angle:     proj.Angle,
			IsMain:    proj.IsMain,
			Bounces:   proj.Bounces,
			Alpha:     proj.Alpha,
			PulseSize: proj.PulseSize,
			Trail:     slices.Clone(proj.Trail),
		})
	}

	for _, id := range entity.SortedIDs(ecs.Enemies) {
		enemy := ecs.Enemies[id]
		_, flashing := ecs.DamageFlashes[id]
		snap.Enemies = append(snap.Enemies, interfaces.EnemyView{
			Box:       g.box(id),
			Kind:      enemy.DefID,
			Health:    enemy.Health,
			MaxHealth: enemy.MaxHealth,
			Stunned:   enemy.Stunned,
			Flashing:  flashing,
		})
	}

	for _, id := range entity.SortedIDs(ecs.Pickups) {
		snap.Pickups = append(snap.Pickups, interfaces.PickupView{
			Box:        g.box(id),
			PulsePhase: ecs.Pickups[id].PulsePhase,
		})
	}
	return snap
}

func (g *Game) box(id types.EntityID) interfaces.Box {
	return boxOf(g.ECS.Positions[id], g.ECS.Sizes[id])
}

func boxOf(pos *component.Position, size *component.Size) interfaces.Box {
	if pos == nil || size == nil {
		return interfaces.Box{}
	}
	return interfaces.Box{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// readiness maps a countdown to 0..1, 1 meaning ready.
func readiness(remaining, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return utils.Clamp(1-remaining/total, 0, 1)
}
