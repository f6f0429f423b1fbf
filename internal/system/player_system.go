// internal/system/player_system.go
package system

import (
	"math"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/event"
	"go-echo-arena/internal/interfaces"
	"go-echo-arena/internal/types"
)

// echoSpread are the angle offsets of one shot, in units of π/32.
var echoSpread = [config.EchoSpreadCount]float64{-1, -0.5, 0, 0.5, 1}

// PlayerSystem отвечает за движение игрока и выстрелы эхо-импульсом.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	debug           config.Debug
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, debug config.Debug) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		debug:           debug,
	}
}

// CreatePlayer places a fresh player with full health at (x, y).
func (s *PlayerSystem) CreatePlayer(x, y float64) types.EntityID {
	id := s.ecs.Spawn(x, y, config.PlayerWidth, config.PlayerHeight)
	s.ecs.Players[id] = &component.Player{Health: config.PlayerMaxHealth}
	s.ecs.PlayerID = id
	return id
}

// Update applies one tick of intent-driven movement: horizontal steering,
// dash, jumps, wall slide, gravity, integration and arena clamping.
func (s *PlayerSystem) Update(deltaTime float64, intent interfaces.Intent) {
	player, pos, vel, size := s.ecs.Player()
	if player == nil {
		return
	}

	player.MoveDirection = intent.Direction()
	dir := float64(player.MoveDirection)
	onGround := isOnGround(pos, size)

	acceleration, deceleration := config.AirAcceleration, config.AirDeceleration
	if onGround {
		acceleration, deceleration = config.GroundAcceleration, config.GroundDeceleration
	}
	if player.MoveDirection != 0 {
		target := dir * config.PlayerMaxSpeed
		vel.X += (target - vel.X) * acceleration
	} else {
		vel.X *= 1 - deceleration
	}

	if intent.Dash && player.DashCooldown <= 0 && player.MoveDirection != 0 {
		vel.X = dir * config.PlayerMaxSpeed * config.DashSpeedFactor
		player.DashCooldown = config.DashCooldownMs
		s.dispatchAt(event.PlayerDashed, pos, size)
	}

	// Прыжок срабатывает только по фронту нажатия.
	if intent.Jump && !player.JumpWasPressed {
		atLeft, atRight := isAtLeftWall(pos), isAtRightWall(pos, size)
		switch {
		case onGround:
			vel.Y = config.JumpForce
			player.IsJumping = true
			s.dispatchAt(event.PlayerJumped, pos, size)
		case atLeft || atRight:
			vel.Y = config.WallJumpForceY
			if atLeft {
				vel.X = config.WallJumpForceX
			} else {
				vel.X = -config.WallJumpForceX
			}
			s.dispatchAt(event.PlayerJumped, pos, size)
		}
	}
	player.JumpWasPressed = intent.Jump

	if !onGround && (isAtLeftWall(pos) || isAtRightWall(pos, size)) && vel.Y > config.WallSlideSpeed {
		vel.Y = config.WallSlideSpeed
	}

	// Early release cuts the jump short.
	if !intent.Jump && vel.Y < 0 {
		vel.Y *= config.JumpCutFactor
	}

	vel.Y = math.Min(vel.Y+config.Gravity, config.PlayerMaxSpeed*2)

	integrate(pos, vel)

	if isOnGround(pos, size) {
		vel.X *= config.GroundFriction
		player.IsJumping = false
	}

	_, clampedY := clampToArena(pos, size)
	if clampedY {
		vel.Y = 0
	}
}

// Fire shoots a five-ray echo spread from the player center toward the
// target point. It is ignored while the echo is cooling down.
func (s *PlayerSystem) Fire(targetX, targetY float64) bool {
	player, pos, vel, size := s.ecs.Player()
	if player == nil || player.EchoCooldown > 0 {
		return false
	}

	cx, cy := component.Center(pos, size)
	angle := math.Atan2(targetY-cy, targetX-cx)
	for _, spread := range echoSpread {
		s.spawnProjectile(cx, cy, angle+spread*math.Pi*config.EchoSpreadStep, spread == 0)
	}

	if !s.debug.UnlimitedEcho {
		player.EchoCooldown = config.EchoCooldownMs
	}

	// Отдача в сторону, противоположную выстрелу.
	vel.X -= math.Cos(angle) * config.RecoilForce
	vel.Y -= math.Sin(angle) * config.RecoilForce

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotData{X: cx, Y: cy, Angle: angle, Count: len(echoSpread)},
	})
	return true
}

// spawnProjectile creates an echo pulse centered on (cx, cy).
func (s *PlayerSystem) spawnProjectile(cx, cy, angle float64, isMain bool) types.EntityID {
	half := config.EchoSize / 2
	id := s.ecs.Spawn(cx-half, cy-half, config.EchoSize, config.EchoSize)

	proj := &component.Projectile{
		Angle:       angle,
		Speed:       config.EchoSpeed,
		IsMain:      isMain,
		Damage:      config.EchoSideDamage,
		Alpha:       config.EchoSideAlpha,
		PulseSize:   config.EchoRadius,
		PulseGrowth: true,
		Trail:       make([]component.TrailPoint, 0, config.EchoTrailLength+config.EchoTrailSteps),
	}
	if isMain {
		proj.Damage = config.EchoMainDamage
		proj.Alpha = 1
	}
	s.ecs.Projectiles[id] = proj
	return id
}

func (s *PlayerSystem) dispatchAt(t event.EventType, pos *component.Position, size *component.Size) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.PointData{ID: s.ecs.PlayerID, X: pos.X + size.W/2, Y: pos.Y + size.H},
	})
}
