// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// PauseButton is the round pause/play toggle in the HUD corner.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale) / 2

	if b.IsPaused {
		// Треугольник: игра на паузе
		vector.StrokeLine(screen, b.X-rectSize, b.Y-rectSize*1.2, b.X-rectSize, b.Y+rectSize*1.2, 2, b.PlayColor, true)
		vector.StrokeLine(screen, b.X-rectSize, b.Y+rectSize*1.2, b.X+rectSize, b.Y, 2, b.PlayColor, true)
		vector.StrokeLine(screen, b.X+rectSize, b.Y, b.X-rectSize, b.Y-rectSize*1.2, 2, b.PlayColor, true)
	} else {
		// Два прямоугольника: игра идёт
		width := rectSize * 0.6
		height := rectSize * 2.0
		spacing := rectSize * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	}
	vector.StrokeCircle(screen, b.X, b.Y, b.Size, 1, colornames.White, true)
}

// IsClicked reports whether the point lies inside the button circle.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
