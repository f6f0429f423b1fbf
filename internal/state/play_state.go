// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-echo-arena/internal/component"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState runs the session. Input, ticks and the snapshot hand-off all
// happen inside Session.Frame; this state only follows mode changes.
type PlayState struct {
	sm  *StateMachine
	ctx *Context
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	return &PlayState{sm: sm, ctx: ctx}
}

func (s *PlayState) Enter() {
	s.ctx.HUD.PauseButton.SetPaused(false)
}

func (s *PlayState) Update(deltaTime float64) {
	s.ctx.Session.Frame()

	switch s.ctx.Session.Mode() {
	case component.ModePaused:
		s.sm.SetState(NewPauseState(s.sm, s.ctx, s))
	case component.ModeGameOver:
		s.sm.SetState(NewGameOverState(s.sm, s.ctx))
	case component.ModeStart:
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.ctx.Renderer.Draw(screen)
	s.ctx.HUD.Draw(screen, s.ctx.Renderer.Snapshot())
}

func (s *PlayState) Exit() {}
