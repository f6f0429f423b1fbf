package system

import (
	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/types"
	"go-echo-arena/internal/utils"
)

// ApplyEnemyDamage subtracts amount from the enemy, stuns it and starts the
// hit flash. It reports whether the enemy is now dead; removal is left to
// the caller.
func ApplyEnemyDamage(ecs *entity.ECS, id types.EntityID, amount float64) bool {
	enemy, ok := ecs.Enemies[id]
	if !ok {
		return false
	}
	enemy.Health -= amount
	enemy.Stunned = true
	enemy.StunTimer = config.EnemyStunMs

	ecs.DamageFlashes[id] = &component.DamageFlash{
		Timer:    config.EnemyFlashMs,
		Duration: config.EnemyFlashMs,
	}
	return enemy.IsDead()
}

// ApplyPlayerDamage hurts the player unless invincible. Health never drops
// below zero. Landing a hit starts the post-hit invincibility window.
func ApplyPlayerDamage(ecs *entity.ECS, amount int, debug config.Debug) bool {
	player, _, _, _ := ecs.Player()
	if player == nil || amount <= 0 {
		return false
	}
	if player.IsInvincible() || debug.Invincible {
		return false
	}
	player.Health = utils.ClampInt(player.Health-amount, 0, config.PlayerMaxHealth)
	player.StartInvincibility(config.InvincibilityMs)
	return true
}

// HealPlayer restores health up to the maximum and returns the new value.
func HealPlayer(ecs *entity.ECS, amount int) int {
	player, _, _, _ := ecs.Player()
	if player == nil {
		return 0
	}
	player.Health = utils.ClampInt(player.Health+amount, 0, config.PlayerMaxHealth)
	return player.Health
}
