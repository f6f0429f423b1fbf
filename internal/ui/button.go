// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.Color
	BgColor             color.Color
	HoverColor          color.Color
	Face                font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  colornames.Black,
		BgColor:    colornames.Lightgray,
		HoverColor: colornames.Gray,
		Face:       basicfont.Face7x13,
	}
}

// NewCenteredButton places a button horizontally centered on the screen.
func NewCenteredButton(screenWidth, y, width, height float32, label string) *Button {
	return NewButton((screenWidth-width)/2, y, width, height, label)
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// Draw отрисовывает кнопку; под курсором используется HoverColor.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, colornames.Dimgray, false)

	bounds := text.BoundString(b.Face, b.Text)
	textX := int(b.X) + (int(b.Width)-bounds.Dx())/2
	textY := int(b.Y) + (int(b.Height)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Face, textX, textY, b.TextColor)
}
