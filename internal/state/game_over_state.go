package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-echo-arena/internal/config"
	"go-echo-arena/internal/ui"
)

// GameOverState shows the final depth and score.
type GameOverState struct {
	sm         *StateMachine
	ctx        *Context
	restartBtn *ui.Button
	menuBtn    *ui.Button
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{
		sm:         sm,
		ctx:        ctx,
		restartBtn: ui.NewCenteredButton(config.ScreenWidth, config.ScreenHeight/2+20, 200, 40, "TRY AGAIN"),
		menuBtn:    ui.NewCenteredButton(config.ScreenWidth, config.ScreenHeight/2+80, 200, 40, "MENU"),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	menu := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		restart = restart || s.restartBtn.Contains(x, y)
		menu = menu || s.menuBtn.Contains(x, y)
	}

	switch {
	case restart && s.ctx.Session.Restart():
		s.sm.SetState(NewPlayState(s.sm, s.ctx))
	case menu && s.ctx.Session.Quit():
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.ctx.Renderer.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	drawCentered(screen, "GAME OVER", config.ScreenHeight/2-60)
	drawCentered(screen, fmt.Sprintf("depth %d   score %d", s.ctx.Session.Depth(), s.ctx.Session.Score()), config.ScreenHeight/2-36)

	x, y := ebiten.CursorPosition()
	s.restartBtn.Draw(screen, x, y)
	s.menuBtn.Draw(screen, x, y)
}

func (s *GameOverState) Exit() {}
