// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/interfaces"
)

// Renderer draws snapshots into a terminal. The arena is scaled to fill the
// screen below a one-line status bar.
type Renderer struct {
	screen       tcell.Screen
	showHitboxes bool
}

func NewRenderer(screen tcell.Screen, showHitboxes bool) *Renderer {
	return &Renderer{screen: screen, showHitboxes: showHitboxes}
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

var (
	playerStyle  = styleOf(config.PlayerColor)
	hurtStyle    = styleOf(config.PlayerHurtColor)
	echoStyle    = styleOf(config.EchoColor)
	enemyStyle   = styleOf(config.EnemyColor)
	crystalStyle = styleOf(config.CrystalColor)
	hitboxStyle  = styleOf(config.HitboxColor)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle     = tcell.StyleDefault.Foreground(tcell.Color(240)) // dark gray in 256-color palette
)

// arena returns the terminal area used by the arena: everything below the
// status bar.
func (r *Renderer) arena() (cols, rows int) {
	w, h := r.screen.Size()
	return w, h - 1
}

// toCell maps an arena point to a terminal cell.
func (r *Renderer) toCell(x, y float64) (int, int) {
	cols, rows := r.arena()
	cx := int(x * float64(cols) / config.ScreenWidth)
	cy := int(y * float64(rows) / config.ScreenHeight)
	return clampInt(cx, 0, cols-1), clampInt(cy, 0, rows-1) + 1
}

// CellToArena maps a terminal cell to the arena point at its center.
func (r *Renderer) CellToArena(x, y int) (float64, float64) {
	cols, rows := r.arena()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	ax := (float64(x) + 0.5) * config.ScreenWidth / float64(cols)
	ay := (float64(y-1) + 0.5) * config.ScreenHeight / float64(rows)
	return ax, ay
}

// Render draws one snapshot and shows it.
func (r *Renderer) Render(snap *interfaces.Snapshot) {
	r.screen.Clear()
	if cols, rows := r.arena(); cols <= 0 || rows <= 0 {
		return
	}

	for _, p := range snap.Pickups {
		r.fillBox(p.Box, '◆', crystalStyle)
	}
	for _, p := range snap.Projectiles {
		r.drawPulse(p)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(e)
	}
	r.drawPlayer(snap.Player)

	if r.showHitboxes {
		r.outlineBox(snap.Player.Box)
		for _, e := range snap.Enemies {
			r.outlineBox(e.Box)
		}
	}

	r.drawStatus(snap)
	r.screen.Show()
}

func (r *Renderer) drawPulse(p interfaces.ProjectileView) {
	for _, t := range p.Trail {
		x, y := r.toCell(t.X, t.Y)
		r.screen.SetContent(x, y, '·', nil, dimStyle)
	}
	ch := '∘'
	if p.IsMain {
		ch = 'O'
	}
	cx, cy := p.Center()
	x, y := r.toCell(cx, cy)
	r.screen.SetContent(x, y, ch, nil, echoStyle)
}

func (r *Renderer) drawEnemy(e interfaces.EnemyView) {
	style := enemyStyle
	if e.Flashing {
		style = textStyle
	}
	ch := '█'
	if e.Stunned {
		ch = '▒'
	}
	r.fillBox(e.Box, ch, style)
}

func (r *Renderer) drawPlayer(p interfaces.PlayerView) {
	if p.MaxHealth == 0 || p.Blink {
		return
	}
	style := playerStyle
	if p.Invincible {
		style = hurtStyle
	}
	r.fillBox(p.Box, '█', style)
}

func (r *Renderer) fillBox(b interfaces.Box, ch rune, style tcell.Style) {
	x0, y0 := r.toCell(b.X, b.Y)
	x1, y1 := r.toCell(b.X+b.W-1, b.Y+b.H-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) outlineBox(b interfaces.Box) {
	x0, y0 := r.toCell(b.X, b.Y)
	x1, y1 := r.toCell(b.X+b.W-1, b.Y+b.H-1)
	for _, c := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		r.screen.SetContent(c[0], c[1], '+', nil, hitboxStyle)
	}
}

func (r *Renderer) drawStatus(snap *interfaces.Snapshot) {
	health := strings.Repeat("♥", max(snap.Player.Health, 0)) +
		strings.Repeat("·", max(snap.Player.MaxHealth-snap.Player.Health, 0))
	r.drawText(0, 0, health, hurtStyle)

	status := fmt.Sprintf("DEPTH %d  SCORE %d", snap.Depth, snap.Score)
	if snap.Player.EchoReady >= 1 {
		status += "  ECHO"
	}
	r.drawText(len([]rune(health))+2, 0, status, textStyle)

	var banner string
	switch snap.Mode {
	case component.ModeStart:
		banner = "ECHO ARENA  enter: start  q: quit"
	case component.ModePaused:
		banner = "PAUSED  p: resume  m: menu"
	case component.ModeGameOver:
		banner = fmt.Sprintf("GAME OVER  score %d  r: retry  m: menu", snap.Score)
	}
	if banner != "" {
		w, h := r.screen.Size()
		r.drawText((w-len([]rune(banner)))/2, h/2, banner, textStyle.Bold(true))
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
