package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DepthIndicator отображает текущую глубину римскими цифрами.
type DepthIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	Face             font.Face
}

// NewDepthIndicator создает новый индикатор глубины, центрированный по x.
func NewDepthIndicator(x, y int, c color.Color) *DepthIndicator {
	return &DepthIndicator{
		X:                x,
		Y:                y,
		Color:            c,
		OutlineColor:     colornames.Black,
		OutlineThickness: 1,
		Face:             basicfont.Face7x13,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Нулевая глубина не показывается.
func (i *DepthIndicator) Draw(screen *ebiten.Image, depth int) {
	if depth <= 0 {
		return
	}

	label := "DEPTH " + toRoman(depth)
	textColor := i.Color
	if depth%10 == 0 {
		textColor = colornames.Red
	}

	bounds := text.BoundString(i.Face, label)
	textX := i.X - bounds.Dx()/2

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, i.Face, textX+x, i.Y+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.Face, textX, i.Y, textColor)
}
