// internal/system/movement.go
package system

import (
	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/utils"
)

// integrate moves a body by one tick of velocity.
func integrate(pos *component.Position, vel *component.Velocity) {
	pos.X += vel.X
	pos.Y += vel.Y
}

// clampToArena keeps the box inside the arena and reports which axes were
// clamped.
func clampToArena(pos *component.Position, size *component.Size) (clampedX, clampedY bool) {
	maxX := config.ScreenWidth - size.W
	maxY := config.ScreenHeight - size.H

	x := utils.Clamp(pos.X, 0, maxX)
	y := utils.Clamp(pos.Y, 0, maxY)
	clampedX, clampedY = x != pos.X, y != pos.Y
	pos.X, pos.Y = x, y
	return clampedX, clampedY
}

func isOnGround(pos *component.Position, size *component.Size) bool {
	return pos.Y >= config.ScreenHeight-size.H
}

func isAtLeftWall(pos *component.Position) bool {
	return pos.X <= 0
}

func isAtRightWall(pos *component.Position, size *component.Size) bool {
	return pos.X >= config.ScreenWidth-size.W
}

func overlaps(aPos *component.Position, aSize *component.Size, bPos *component.Position, bSize *component.Size) bool {
	return utils.Overlaps(aPos.X, aPos.Y, aSize.W, aSize.H, bPos.X, bPos.Y, bSize.W, bSize.H, config.CollisionBuffer)
}
