// pkg/render/arena_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/interfaces"
)

// ArenaRenderer draws session snapshots with ebiten. Render only stores the
// snapshot; Draw paints the latest one onto the screen.
type ArenaRenderer struct {
	palette      Palette
	effects      *Effects
	showHitboxes bool
	snap         *interfaces.Snapshot

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewArenaRenderer(palette Palette, effects *Effects, showHitboxes bool) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &ArenaRenderer{
		palette:      palette,
		effects:      effects,
		showHitboxes: showHitboxes,
		fillImg:      fillImg,
	}
}

// Render реализует интерфейс interfaces.Renderer.
func (r *ArenaRenderer) Render(snap *interfaces.Snapshot) {
	r.snap = snap
	if r.effects != nil && snap.Mode == component.ModePlaying {
		r.effects.Advance(config.TickMs)
	}
}

// Snapshot returns the last snapshot handed to Render, or nil.
func (r *ArenaRenderer) Snapshot() *interfaces.Snapshot {
	return r.snap
}

// Draw paints the arena. Entities are drawn back to front: crystals,
// pulses, enemies, player, effects.
func (r *ArenaRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.palette.Background)
	if r.snap == nil {
		return
	}

	for _, p := range r.snap.Pickups {
		r.drawCrystal(screen, p)
	}
	for _, p := range r.snap.Projectiles {
		r.drawPulse(screen, p)
	}
	for _, e := range r.snap.Enemies {
		r.drawEnemy(screen, e)
	}
	r.drawPlayer(screen, r.snap.Player)

	if r.effects != nil {
		for _, ring := range r.effects.rings {
			fade := 1 - ring.Age/ring.Life
			vector.StrokeCircle(screen, float32(ring.X), float32(ring.Y), float32(ring.Radius), 2, WithAlpha(ring.Color, fade), true)
		}
	}

	if r.showHitboxes {
		r.drawHitboxes(screen)
	}
}

func (r *ArenaRenderer) drawCrystal(screen *ebiten.Image, p interfaces.PickupView) {
	cx, cy := p.Center()
	pulse := 1 + 0.15*math.Sin(p.PulsePhase)
	half := float32(p.W / 2 * pulse)

	// Ромб.
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy)-half)
	path.LineTo(float32(cx)+half, float32(cy))
	path.LineTo(float32(cx), float32(cy)+half)
	path.LineTo(float32(cx)-half, float32(cy))
	path.Close()
	r.fillPath(screen, &path, r.palette.Crystal)

	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(config.CrystalSize*pulse), 1, WithAlpha(r.palette.Crystal, 0.3), true)
}

func (r *ArenaRenderer) drawPulse(screen *ebiten.Image, p interfaces.ProjectileView) {
	for i, pt := range p.Trail {
		fade := float64(i+1) / float64(len(p.Trail)+1)
		if pt.Size <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), float32(pt.Size), WithAlpha(r.palette.Echo, p.Alpha*fade*0.4), true)
	}

	cx, cy := p.Center()
	c := r.palette.Echo
	if !p.IsMain {
		c = DarkenColor(c)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(p.PulseSize), WithAlpha(c, p.Alpha), true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(p.PulseSize), 1.5, WithAlpha(config.TextLightColor, p.Alpha*0.5), true)
}

func (r *ArenaRenderer) drawEnemy(screen *ebiten.Image, e interfaces.EnemyView) {
	c := r.palette.Enemy
	if e.Flashing {
		c = r.palette.EnemyFlash
	} else if e.Stunned {
		c = DarkenColor(c)
	}
	vector.DrawFilledRect(screen, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), c, false)

	if e.MaxHealth > 0 && e.Health < e.MaxHealth {
		frac := math.Max(0, e.Health/e.MaxHealth)
		vector.DrawFilledRect(screen, float32(e.X), float32(e.Y-6), float32(e.W), 3, config.EmptyGemColor, false)
		vector.DrawFilledRect(screen, float32(e.X), float32(e.Y-6), float32(e.W*frac), 3, r.palette.Enemy, false)
	}
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, p interfaces.PlayerView) {
	if p.W == 0 || p.Blink {
		return
	}
	c := r.palette.Player
	if p.Invincible {
		c = r.palette.PlayerHurt
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), c, false)

	// Глаз смотрит в сторону движения.
	eyeX := p.X + p.W/2 + float64(p.MoveDirection)*p.W/4
	vector.DrawFilledCircle(screen, float32(eyeX), float32(p.Y+p.H/4), 4, config.TextLightColor, true)
}

func (r *ArenaRenderer) drawHitboxes(screen *ebiten.Image) {
	pad := float32(config.CollisionBuffer)
	stroke := func(b interfaces.Box) {
		vector.StrokeRect(screen, float32(b.X)-pad, float32(b.Y)-pad, float32(b.W)+2*pad, float32(b.H)+2*pad, 1, r.palette.Hitbox, false)
	}
	stroke(r.snap.Player.Box)
	for _, p := range r.snap.Projectiles {
		stroke(p.Box)
	}
	for _, e := range r.snap.Enemies {
		stroke(e.Box)
	}
	for _, p := range r.snap.Pickups {
		stroke(p.Box)
	}
}

func (r *ArenaRenderer) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
