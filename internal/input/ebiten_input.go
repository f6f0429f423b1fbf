// internal/input/ebiten_input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-echo-arena/internal/interfaces"
)

// EbitenInput samples keyboard and mouse once per frame.
//
//	A/D, arrows     move
//	Space, W, Up    jump
//	Shift           dash
//	left click      fire at the cursor
//	Esc, P          pause toggle
type EbitenInput struct {
	// uiHit, when set, claims clicks that land on HUD widgets. A claimed
	// click on the pause button toggles pause instead of firing.
	uiHit func(x, y int) bool
}

func NewEbitenInput(uiHit func(x, y int) bool) *EbitenInput {
	return &EbitenInput{uiHit: uiHit}
}

// Poll реализует интерфейс interfaces.InputSource.
func (in *EbitenInput) Poll() interfaces.Intent {
	x, y := ebiten.CursorPosition()
	intent := interfaces.Intent{
		Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Jump:  anyPressed(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp),
		Dash:  anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		AimX:  float64(x),
		AimY:  float64(y),
		PauseToggled: inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyP),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if in.uiHit != nil && in.uiHit(x, y) {
			intent.PauseToggled = true
		} else {
			intent.Fire = true
		}
	}
	return intent
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
