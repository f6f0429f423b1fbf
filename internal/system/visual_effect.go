// internal/system/visual_effect.go
package system

import (
	"math"

	"go-echo-arena/internal/config"
	"go-echo-arena/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами: вспышки урона,
// пульсация эхо-импульсов и кристаллов. На игровую логику не влияет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for _, proj := range s.ecs.Projectiles {
		if proj.PulseGrowth {
			proj.PulseSize += config.EchoPulseGrowth
			if proj.PulseSize >= config.EchoRadius*1.2 {
				proj.PulseGrowth = false
			}
		} else {
			proj.PulseSize -= config.EchoPulseGrowth
			if proj.PulseSize <= config.EchoRadius*0.8 {
				proj.PulseGrowth = true
			}
		}
	}

	for _, pickup := range s.ecs.Pickups {
		pickup.PulsePhase += deltaTime * config.CrystalPulseRate
		if pickup.PulsePhase > 2*math.Pi {
			pickup.PulsePhase -= 2 * math.Pi
		}
	}
}
