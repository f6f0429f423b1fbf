package system

import (
	"math"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/event"
	"go-echo-arena/internal/types"
	"go-echo-arena/internal/utils"
)

// CombatOutcome summarizes what one resolver pass changed at session level.
type CombatOutcome struct {
	Kills      int
	PlayerDied bool
}

// CombatSystem resolves collisions after every entity has moved:
// projectiles against enemies, pickups against the player, then enemies
// against the player. Removals are flagged on the ECS and compacted by the
// caller once the pass is over.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	debug           config.Debug
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, debug config.Debug) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		debug:           debug,
	}
}

// Resolve runs one collision pass.
func (s *CombatSystem) Resolve() CombatOutcome {
	var out CombatOutcome
	out.Kills = s.resolveProjectiles()
	s.resolvePickups()
	out.PlayerDied = s.resolvePlayerContacts()
	return out
}

// resolveProjectiles applies each projectile to at most one enemy: the
// first overlapping enemy in ID order takes the hit and the projectile is
// consumed.
func (s *CombatSystem) resolveProjectiles() int {
	kills := 0
	enemyIDs := entity.SortedIDs(s.ecs.Enemies)

	for _, pid := range entity.SortedIDs(s.ecs.Projectiles) {
		if s.ecs.IsRemoved(pid) {
			continue
		}
		proj := s.ecs.Projectiles[pid]
		ppos, psize := s.ecs.Positions[pid], s.ecs.Sizes[pid]

		for _, eid := range enemyIDs {
			if s.ecs.IsRemoved(eid) {
				continue
			}
			epos, esize := s.ecs.Positions[eid], s.ecs.Sizes[eid]
			if !overlaps(ppos, psize, epos, esize) {
				continue
			}

			dead := ApplyEnemyDamage(s.ecs, eid, proj.Damage)
			s.ecs.MarkForRemoval(pid)

			hx, hy := component.Center(ppos, psize)
			hit := event.HitData{ProjectileID: pid, EnemyID: eid, X: hx, Y: hy, Damage: proj.Damage}
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: hit})

			if dead {
				kills++
				s.killEnemy(eid, hit)
			}
			break
		}
	}
	return kills
}

func (s *CombatSystem) killEnemy(id types.EntityID, hit event.HitData) {
	enemy := s.ecs.Enemies[id]
	pos, size := s.ecs.Positions[id], s.ecs.Sizes[id]
	s.ecs.MarkForRemoval(id)

	ex, ey := component.Center(pos, size)
	hit.X, hit.Y = ex, ey
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: hit})

	if s.rng.Chance(enemy.DropChance) {
		pickupID := s.SpawnPickup(ex, ey)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PickupSpawned,
			Data: event.PointData{ID: pickupID, X: ex, Y: ey},
		})
	}
}

// SpawnPickup drops a health crystal centered on (cx, cy).
func (s *CombatSystem) SpawnPickup(cx, cy float64) types.EntityID {
	half := config.CrystalSize / 2
	id := s.ecs.Spawn(cx-half, cy-half, config.CrystalSize, config.CrystalSize)
	s.ecs.Pickups[id] = &component.Pickup{HealAmount: config.CrystalHealAmount}
	return id
}

// resolvePickups pulls nearby crystals toward the player and collects every
// crystal that touches the player. Each crystal heals once.
func (s *CombatSystem) resolvePickups() {
	player, ppos, _, psize := s.ecs.Player()
	if player == nil {
		return
	}
	px, py := component.Center(ppos, psize)

	for _, id := range entity.SortedIDs(s.ecs.Pickups) {
		if s.ecs.IsRemoved(id) {
			continue
		}
		pickup := s.ecs.Pickups[id]
		pos, size := s.ecs.Positions[id], s.ecs.Sizes[id]

		cx, cy := component.Center(pos, size)
		dist := utils.Distance(cx, cy, px, py)
		if dist < config.MagnetRadius {
			pull := (config.MagnetRadius - dist) / config.MagnetRadius * config.MagnetPullFactor
			pos.X += (px - cx) * pull
			pos.Y += (py - cy) * pull
		}

		if overlaps(ppos, psize, pos, size) {
			HealPlayer(s.ecs, pickup.HealAmount)
			s.ecs.MarkForRemoval(id)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PickupCollected,
				Data: event.PointData{ID: id, X: px, Y: py},
			})
		}
	}
}

// resolvePlayerContacts lets every non-stunned enemy touching the player
// deal its damage. A landed hit knocks the player away from the enemy.
func (s *CombatSystem) resolvePlayerContacts() bool {
	player, ppos, pvel, psize := s.ecs.Player()
	if player == nil {
		return false
	}

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if s.ecs.IsRemoved(id) {
			continue
		}
		enemy := s.ecs.Enemies[id]
		if enemy.Stunned {
			continue
		}
		epos, esize := s.ecs.Positions[id], s.ecs.Sizes[id]
		if !overlaps(ppos, psize, epos, esize) {
			continue
		}

		if ApplyPlayerDamage(s.ecs, enemy.Damage, s.debug) {
			ex, ey := component.Center(epos, esize)
			px, py := component.Center(ppos, psize)
			angle := math.Atan2(py-ey, px-ex)
			pvel.X += math.Cos(angle) * config.DamageKnockback
			pvel.Y += math.Sin(angle) * config.DamageKnockback

			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PlayerDamaged,
				Data: event.DamageData{EnemyID: id, Amount: enemy.Damage, Health: player.Health},
			})
		}

		if player.Health <= 0 {
			return true
		}
	}
	return false
}
