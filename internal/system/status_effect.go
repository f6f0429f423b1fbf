package system

import "go-echo-arena/internal/entity"

// StatusEffectSystem отсчитывает таймеры игрока: неуязвимость,
// перезарядку рывка и эха.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	player, _, _, _ := s.ecs.Player()
	if player == nil {
		return
	}

	if player.DashCooldown > 0 {
		player.DashCooldown -= deltaTime
	}
	if player.EchoCooldown > 0 {
		player.EchoCooldown -= deltaTime
	}

	if player.InvincibleTimer > 0 {
		player.InvincibleTimer -= deltaTime
		player.FlashTime += deltaTime
		if player.InvincibleTimer <= 0 {
			player.InvincibleTimer = 0
			player.FlashTime = 0
		}
	}
}
