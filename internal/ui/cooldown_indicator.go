// internal/ui/cooldown_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	cooldownBarWidth = 118
	cooldownBarGap   = 6
	borderWidth      = 1
)

var (
	dashBarColor = color.RGBA{70, 100, 120, 220}
	borderColor  = color.White
)

// CooldownIndicator draws the dash and echo readiness bars. A full bar
// means the ability is ready.
type CooldownIndicator struct {
	X, Y   float32
	Height float32
	Echo   color.Color
}

// NewCooldownIndicator создает новый индикатор.
func NewCooldownIndicator(x, y, height float32, echo color.Color) *CooldownIndicator {
	return &CooldownIndicator{X: x, Y: y, Height: height, Echo: echo}
}

// Draw отрисовывает индикатор.
func (i *CooldownIndicator) Draw(screen *ebiten.Image, dashReady, echoReady float64) {
	i.drawBar(screen, i.Y, echoReady, i.Echo)
	i.drawBar(screen, i.Y+i.Height+cooldownBarGap, dashReady, dashBarColor)
}

func (i *CooldownIndicator) drawBar(screen *ebiten.Image, y float32, ratio float64, fill color.Color) {
	h := i.Height + borderWidth*2
	vector.StrokeRect(screen, i.X, y, cooldownBarWidth, h, borderWidth, borderColor, true)

	if ratio > 1 {
		ratio = 1
	}
	fillWidth := float32(float64(cooldownBarWidth-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, y+borderWidth, fillWidth, i.Height, fill, true)
	}
}
