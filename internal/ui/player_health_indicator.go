// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"go-echo-arena/internal/config"
)

// PlayerHealthIndicator отображает здоровье игрока рядом кристаллов.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует по одному кристаллу на единицу максимального здоровья.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	const r = float32(config.HUDGemRadius)
	step := r*2 + float32(config.HUDGemSpacing)

	for j := 0; j < maxHealth; j++ {
		cx := i.X + r + float32(j)*step
		cy := i.Y + r

		c := config.EmptyGemColor
		if j < health {
			c = config.CrystalColor
		}
		vector.DrawFilledCircle(screen, cx, cy, r, c, true)
		vector.StrokeCircle(screen, cx, cy, r, 1, colornames.White, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, basicfont.Face7x13, int(i.X+float32(maxHealth)*step)+4, int(i.Y+r)+5, config.TextLightColor)
}
