// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-echo-arena/internal/config"
	"go-echo-arena/internal/ui"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm       *StateMachine
	ctx      *Context
	startBtn *ui.Button
	quitBtn  *ui.Button
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:       sm,
		ctx:      ctx,
		startBtn: ui.NewCenteredButton(config.ScreenWidth, config.ScreenHeight/2, 200, 40, "START"),
		quitBtn:  ui.NewCenteredButton(config.ScreenWidth, config.ScreenHeight/2+60, 200, 40, "EXIT"),
	}
}

func (m *MenuState) Enter() {
	if m.ctx.Effects != nil {
		m.ctx.Effects.Clear()
	}
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.startBtn.Contains(x, y) {
			start = true
		} else if m.quitBtn.Contains(x, y) {
			m.sm.RequestQuit()
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.RequestQuit()
		return
	}

	if start && m.ctx.Session.Start() {
		m.sm.SetState(NewPlayState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, "ECHO ARENA", config.ScreenHeight/3)
	drawCentered(screen, "move A/D  jump SPACE  dash SHIFT  fire CLICK  pause ESC", config.ScreenHeight/3+24)

	x, y := ebiten.CursorPosition()
	m.startBtn.Draw(screen, x, y)
	m.quitBtn.Draw(screen, x, y)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

func drawCentered(screen *ebiten.Image, label string, y int) {
	bounds := text.BoundString(basicfont.Face7x13, label)
	text.Draw(screen, label, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
}
