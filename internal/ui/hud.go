package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-echo-arena/internal/config"
	"go-echo-arena/internal/interfaces"
)

// HUD groups the in-game widgets: health gems and cooldown bars in the top
// left, score and depth at the top, pause toggle in the top right.
type HUD struct {
	Health      *PlayerHealthIndicator
	Cooldowns   *CooldownIndicator
	Depth       *DepthIndicator
	PauseButton *PauseButton
	ShowRunID   bool
}

func NewHUD() *HUD {
	m := float32(config.HUDMargin)
	return &HUD{
		Health:      NewPlayerHealthIndicator(m, m),
		Cooldowns:   NewCooldownIndicator(m, m+config.HUDGemRadius*2+config.CooldownBarOffsetY, config.CooldownBarHeight, config.EchoColor),
		Depth:       NewDepthIndicator(config.ScreenWidth/2, config.HUDMargin+28, config.TextLightColor),
		PauseButton: NewPauseButton(config.ScreenWidth-m-12, m+12, 12, config.TextLightColor, config.CrystalColor),
	}
}

// HitTest reports whether a click at (x, y) belongs to the HUD rather than
// the arena.
func (h *HUD) HitTest(x, y int) bool {
	return h.PauseButton.IsClicked(x, y)
}

func (h *HUD) Draw(screen *ebiten.Image, snap *interfaces.Snapshot) {
	if snap == nil {
		return
	}
	p := snap.Player
	h.Health.Draw(screen, p.Health, p.MaxHealth)
	h.Cooldowns.Draw(screen, p.DashReady, p.EchoReady)

	score := fmt.Sprintf("SCORE %d", snap.Score)
	bounds := text.BoundString(basicfont.Face7x13, score)
	text.Draw(screen, score, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, config.HUDMargin+12, config.TextLightColor)
	h.Depth.Draw(screen, snap.Depth)

	h.PauseButton.Draw(screen)

	if h.ShowRunID && snap.RunID != "" {
		text.Draw(screen, "run "+snap.RunID, basicfont.Face7x13, config.HUDMargin, config.ScreenHeight-config.HUDMargin, config.EmptyGemColor)
	}
}
