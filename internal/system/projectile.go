package system

import (
	"math"
	"slices"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/event"
	"go-echo-arena/internal/types"
	"go-echo-arena/internal/utils"
)

// ProjectileSystem moves echo pulses and reflects them off the arena walls.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update removes spent pulses first, then advances the rest. A pulse that
// reaches the bounce limit this tick is still live for collisions until the
// next tick.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		if proj.Bounces >= config.EchoMaxBounces {
			s.ecs.MarkForRemoval(id)
			continue
		}
		pos, size := s.ecs.Positions[id], s.ecs.Sizes[id]
		if pos == nil || size == nil {
			s.ecs.MarkForRemoval(id)
			continue
		}
		s.step(id, proj, pos, size)
	}
}

func (s *ProjectileSystem) step(id types.EntityID, proj *component.Projectile, pos *component.Position, size *component.Size) {
	prevX, prevY := component.Center(pos, size)

	pos.X += math.Cos(proj.Angle) * proj.Speed
	pos.Y += math.Sin(proj.Angle) * proj.Speed

	curX, curY := component.Center(pos, size)
	appendTrail(proj, prevX, prevY, curX, curY)

	bounced := false
	if pos.X <= 0 || pos.X >= config.ScreenWidth-size.W {
		proj.Angle = utils.NormalizeAngle(math.Pi - proj.Angle)
		pos.X = math.Max(0, math.Min(pos.X, config.ScreenWidth-size.W))
		bounced = true
	}
	if pos.Y <= 0 || pos.Y >= config.ScreenHeight-size.H {
		proj.Angle = utils.NormalizeAngle(-proj.Angle)
		pos.Y = math.Max(0, math.Min(pos.Y, config.ScreenHeight-size.H))
		bounced = true
	}

	if bounced {
		proj.Bounces++
		x, y := component.Center(pos, size)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileBounced,
			Data: event.PointData{ID: id, X: x, Y: y},
		})
	}
}

// appendTrail records interpolated samples between the previous and current
// centers and drops the oldest samples beyond the trail length.
func appendTrail(proj *component.Projectile, prevX, prevY, curX, curY float64) {
	for i := 1; i <= config.EchoTrailSteps; i++ {
		t := float64(i) / config.EchoTrailSteps
		proj.Trail = append(proj.Trail, component.TrailPoint{
			X:    utils.Lerp(prevX, curX, t),
			Y:    utils.Lerp(prevY, curY, t),
			Size: proj.PulseSize * (1 - t),
		})
	}
	if extra := len(proj.Trail) - config.EchoTrailLength; extra > 0 {
		proj.Trail = slices.Delete(proj.Trail, 0, extra)
	}
}
