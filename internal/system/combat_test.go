package system

import (
	"testing"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/event"
)

func TestTwoHitsKillEnemy(t *testing.T) {
	w := newWorld(100, 100)
	eid := w.addEnemy(600, 300, 2)

	w.addProjectile(600, 300, 0, config.EchoMainDamage)
	out := w.combat.Resolve()
	w.ecs.Compact()
	enemy := w.ecs.Enemies[eid]
	if out.Kills != 0 || enemy == nil || enemy.Health != 1 {
		t.Fatalf("after first hit: kills=%d enemy=%+v", out.Kills, enemy)
	}
	if !enemy.Stunned || enemy.StunTimer != config.EnemyStunMs {
		t.Errorf("hit enemy not stunned: %+v", enemy)
	}
	if _, ok := w.ecs.DamageFlashes[eid]; !ok {
		t.Error("hit enemy has no damage flash")
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Error("projectile not consumed by the hit")
	}

	w.addProjectile(600, 300, 0, config.EchoMainDamage)
	out = w.combat.Resolve()
	w.ecs.Compact()
	if out.Kills != 1 {
		t.Fatalf("kills = %d, want 1", out.Kills)
	}
	if _, ok := w.ecs.Enemies[eid]; ok {
		t.Error("dead enemy not removed")
	}
	if w.count(event.EnemyKilled) != 1 || w.count(event.EnemyHit) != 2 {
		t.Errorf("events: %d hits, %d kills", w.count(event.EnemyHit), w.count(event.EnemyKilled))
	}
}

func TestSidePulsesDealHalfDamage(t *testing.T) {
	w := newWorld(100, 100)
	eid := w.addEnemy(600, 300, 2)
	w.addProjectile(600, 300, 0, config.EchoSideDamage)

	w.combat.Resolve()
	if h := w.ecs.Enemies[eid].Health; h != 1.5 {
		t.Errorf("health = %v, want 1.5", h)
	}
}

func TestProjectileHitsAtMostOneEnemy(t *testing.T) {
	w := newWorld(100, 100)
	first := w.addEnemy(600, 300, 2)
	second := w.addEnemy(605, 305, 2)
	w.addProjectile(600, 300, 0, config.EchoMainDamage)

	w.combat.Resolve()

	if h := w.ecs.Enemies[first].Health; h != 1 {
		t.Errorf("first enemy health = %v, want 1", h)
	}
	if h := w.ecs.Enemies[second].Health; h != 2 {
		t.Errorf("second enemy health = %v, want 2", h)
	}
}

func TestDeadEnemyAbsorbsNoMoreProjectiles(t *testing.T) {
	w := newWorld(100, 100)
	w.addEnemy(600, 300, 1)
	p1 := w.addProjectile(600, 300, 0, config.EchoMainDamage)
	p2 := w.addProjectile(600, 300, 0, config.EchoMainDamage)

	out := w.combat.Resolve()
	w.ecs.Compact()

	if out.Kills != 1 {
		t.Errorf("kills = %d, want 1", out.Kills)
	}
	if _, ok := w.ecs.Projectiles[p1]; ok {
		t.Error("killing projectile survived")
	}
	if _, ok := w.ecs.Projectiles[p2]; !ok {
		t.Error("second projectile consumed by a dead enemy")
	}
}

func TestKilledEnemyDropsCrystal(t *testing.T) {
	w := newWorld(100, 100)
	eid := w.addEnemy(600, 300, 1)
	w.ecs.Enemies[eid].DropChance = 1
	w.addProjectile(600, 300, 0, config.EchoMainDamage)

	w.combat.Resolve()
	w.ecs.Compact()

	if len(w.ecs.Pickups) != 1 {
		t.Fatalf("pickups = %d, want 1", len(w.ecs.Pickups))
	}
	for id := range w.ecs.Pickups {
		pos, size := w.ecs.Positions[id], w.ecs.Sizes[id]
		cx, cy := component.Center(pos, size)
		if cx != 616 || cy != 316 {
			t.Errorf("crystal centered at (%v, %v), want (616, 316)", cx, cy)
		}
	}
	if w.count(event.PickupSpawned) != 1 {
		t.Error("PickupSpawned not dispatched")
	}
}

func TestNoDropWhenChanceIsZero(t *testing.T) {
	w := newWorld(100, 100)
	w.addEnemy(600, 300, 1)
	w.addProjectile(600, 300, 0, config.EchoMainDamage)

	w.combat.Resolve()
	if len(w.ecs.Pickups) != 0 {
		t.Errorf("pickups = %d, want 0", len(w.ecs.Pickups))
	}
}

func TestOverlappingCrystalsAllCollected(t *testing.T) {
	w := newWorld(450, 300)
	w.player().Health = 2
	w.combat.SpawnPickup(450, 300)
	w.combat.SpawnPickup(450, 310)

	w.combat.Resolve()
	w.ecs.Compact()

	if h := w.player().Health; h != 4 {
		t.Errorf("health = %d, want 4", h)
	}
	if len(w.ecs.Pickups) != 0 {
		t.Errorf("pickups left = %d", len(w.ecs.Pickups))
	}
	if w.count(event.PickupCollected) != 2 {
		t.Errorf("PickupCollected dispatched %d times", w.count(event.PickupCollected))
	}
}

func TestHealingCappedAtMaxHealth(t *testing.T) {
	w := newWorld(450, 300)
	w.player().Health = config.PlayerMaxHealth - 1
	for i := 0; i < 3; i++ {
		w.combat.SpawnPickup(450, 300)
	}

	w.combat.Resolve()
	if h := w.player().Health; h != config.PlayerMaxHealth {
		t.Errorf("health = %d, want %d", h, config.PlayerMaxHealth)
	}
}

func TestMagnetPullsNearbyCrystal(t *testing.T) {
	w := newWorld(450, 300)
	id := w.combat.SpawnPickup(550, 300)
	before := w.ecs.Positions[id].X

	w.combat.Resolve()

	after := w.ecs.Positions[id].X
	// Pull is (150-100)/150*0.1 of the 100 unit gap.
	if want := before - 100*(50.0/150)*0.1; !almostEqual(after, want) {
		t.Errorf("x = %v, want %v", after, want)
	}

	far := w.combat.SpawnPickup(850, 300)
	x := w.ecs.Positions[far].X
	w.combat.Resolve()
	if w.ecs.Positions[far].X != x {
		t.Error("crystal beyond the magnet radius moved")
	}
}

func TestEnemyContactDamagesAndKnocksBack(t *testing.T) {
	w := newWorld(450, 300)
	// Enemy center (420, 300): to the left of the player center.
	eid := w.addEnemy(404, 284, 2)

	out := w.combat.Resolve()

	p := w.player()
	if p.Health != config.PlayerMaxHealth-1 {
		t.Errorf("health = %d, want %d", p.Health, config.PlayerMaxHealth-1)
	}
	if !p.IsInvincible() || p.InvincibleTimer != config.InvincibilityMs {
		t.Errorf("invincibility not started: %v", p.InvincibleTimer)
	}
	_, _, vel, _ := w.ecs.Player()
	if !almostEqual(vel.X, config.DamageKnockback) || !almostEqual(vel.Y, 0) {
		t.Errorf("knockback = (%v, %v), want (%v, 0)", vel.X, vel.Y, config.DamageKnockback)
	}
	if out.PlayerDied {
		t.Error("PlayerDied with health left")
	}
	if w.count(event.PlayerDamaged) != 1 {
		t.Error("PlayerDamaged not dispatched")
	}
	if _, ok := w.ecs.Enemies[eid]; !ok {
		t.Error("contact removed the enemy")
	}
}

func TestInvincibilityBlocksAllDamage(t *testing.T) {
	w := newWorld(450, 300)
	w.player().StartInvincibility(config.StartInvincibilityMs)
	w.addEnemy(404, 284, 2)
	w.addEnemy(450, 300, 2)

	for i := 0; i < 10; i++ {
		w.combat.Resolve()
	}

	if h := w.player().Health; h != config.PlayerMaxHealth {
		t.Errorf("health = %d, want %d", h, config.PlayerMaxHealth)
	}
	_, _, vel, _ := w.ecs.Player()
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("knockback applied while invincible: (%v, %v)", vel.X, vel.Y)
	}
}

func TestDebugInvincible(t *testing.T) {
	w := newWorld(450, 300)
	w.combat.debug.Invincible = true
	w.addEnemy(404, 284, 2)

	w.combat.Resolve()
	if h := w.player().Health; h != config.PlayerMaxHealth {
		t.Errorf("health = %d, want %d", h, config.PlayerMaxHealth)
	}
}

func TestStunnedEnemyDealsNoContactDamage(t *testing.T) {
	w := newWorld(450, 300)
	eid := w.addEnemy(404, 284, 2)
	w.ecs.Enemies[eid].Stunned = true

	w.combat.Resolve()
	if h := w.player().Health; h != config.PlayerMaxHealth {
		t.Errorf("health = %d, want %d", h, config.PlayerMaxHealth)
	}
}

func TestLethalContactReportsDeath(t *testing.T) {
	w := newWorld(450, 300)
	w.player().Health = 1
	w.addEnemy(404, 284, 2)

	out := w.combat.Resolve()
	if !out.PlayerDied {
		t.Fatal("PlayerDied = false")
	}
	if h := w.player().Health; h != 0 {
		t.Errorf("health = %d, want 0", h)
	}
}

func TestPlayerHealthStaysInRange(t *testing.T) {
	w := newWorld(450, 300)
	ApplyPlayerDamage(w.ecs, 50, config.Debug{})
	if h := w.player().Health; h != 0 {
		t.Errorf("health = %d after overkill, want 0", h)
	}
	if h := HealPlayer(w.ecs, 50); h != config.PlayerMaxHealth {
		t.Errorf("health = %d after overheal, want %d", h, config.PlayerMaxHealth)
	}
}
