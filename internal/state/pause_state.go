// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState State
	quitBtn       *ui.Button
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		ctx:           ctx,
		previousState: prevState,
		quitBtn:       ui.NewCenteredButton(config.ScreenWidth, config.ScreenHeight/2+40, 200, 40, "QUIT TO MENU"),
	}
}

func (s *PauseState) Enter() {
	s.ctx.HUD.PauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.ctx.Session.Quit()
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); s.quitBtn.Contains(x, y) {
			s.ctx.Session.Quit()
		}
	}

	// The session itself handles the resume toggle.
	s.ctx.Session.Frame()

	switch s.ctx.Session.Mode() {
	case component.ModePlaying:
		s.sm.SetState(s.previousState)
	case component.ModeStart:
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	drawCentered(screen, "PAUSED", config.ScreenHeight/2-20)

	x, y := ebiten.CursorPosition()
	s.quitBtn.Draw(screen, x, y)
}

func (s *PauseState) Exit() {}
