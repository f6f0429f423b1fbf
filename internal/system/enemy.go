package system

import (
	"math"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/entity"
)

// EnemySystem runs the enemy state machine: stunned enemies drift to a stop,
// seeking enemies approach the player and orbit once close enough.
type EnemySystem struct {
	ecs *entity.ECS
}

func NewEnemySystem(ecs *entity.ECS) *EnemySystem {
	return &EnemySystem{ecs: ecs}
}

func (s *EnemySystem) Update(deltaTime float64) {
	_, playerPos, _, playerSize := s.ecs.Player()

	// Wobble follows simulation time so runs are reproducible.
	wobble := math.Sin(s.ecs.GameTime*config.EnemyWobbleFreq) * config.EnemyWobbleAmp

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos, vel, size := s.ecs.Positions[id], s.ecs.Velocities[id], s.ecs.Sizes[id]
		if pos == nil || vel == nil || size == nil {
			continue
		}

		if enemy.Stunned {
			enemy.StunTimer -= deltaTime
			if enemy.StunTimer <= 0 {
				enemy.Stunned = false
				enemy.StunTimer = 0
			}
			vel.X *= config.EnemyStunDamping
			vel.Y *= config.EnemyStunDamping
			continue
		}

		if playerPos != nil {
			s.seek(enemy, pos, vel, size, playerPos, playerSize, wobble)
		}

		vel.X *= config.EnemyDamping
		vel.Y *= config.EnemyDamping

		integrate(pos, vel)
		clampToArena(pos, size)
	}
}

func (s *EnemySystem) seek(enemy *component.Enemy, pos *component.Position, vel *component.Velocity, size *component.Size,
	playerPos *component.Position, playerSize *component.Size, wobble float64) {
	ex, ey := component.Center(pos, size)
	px, py := component.Center(playerPos, playerSize)
	dx, dy := px-ex, py-ey
	distance := math.Hypot(dx, dy)
	heading := math.Atan2(dy, dx)

	if distance > enemy.MinDistance {
		angle := heading + wobble
		vel.X = math.Cos(angle) * enemy.Speed * config.EnemyApproachScale
		vel.Y = math.Sin(angle) * enemy.Speed * config.EnemyApproachScale
	} else {
		// Кружим вокруг игрока.
		angle := heading + math.Pi/2 + wobble
		vel.X = math.Cos(angle) * enemy.Speed
		vel.Y = math.Sin(angle) * enemy.Speed
	}
}
