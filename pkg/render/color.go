// pkg/render/color.go
package render

import (
	"image/color"

	"go-echo-arena/internal/config"
)

// Palette holds every color the arena renderer needs.
type Palette struct {
	Background color.RGBA
	Player     color.RGBA
	PlayerHurt color.RGBA
	Echo       color.RGBA
	Enemy      color.RGBA
	EnemyFlash color.RGBA
	Crystal    color.RGBA
	Hitbox     color.RGBA
}

// DefaultPalette returns the colors from config.
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Player:     config.PlayerColor,
		PlayerHurt: config.PlayerHurtColor,
		Echo:       config.EchoColor,
		Enemy:      config.EnemyColor,
		EnemyFlash: config.TextLightColor,
		Crystal:    config.CrystalColor,
		Hitbox:     config.HitboxColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales a color's opacity by a (0..1). Colors are premultiplied,
// so every channel is scaled.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
