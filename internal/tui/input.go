// internal/tui/input.go
package tui

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"go-echo-arena/internal/clock"
	"go-echo-arena/internal/interfaces"
)

// Terminals report key presses and auto-repeat, never releases. A key
// counts as held while its last press is younger than keyTimeout.
const keyTimeout = 150 * time.Millisecond

type action int

const (
	actLeft action = iota
	actRight
	actJump
	actDash
)

// Input turns tcell events into intents.
type Input struct {
	clock   clock.TimeProvider
	toArena func(x, y int) (float64, float64)

	keys    map[action]time.Time
	buttons tcell.ButtonMask

	aimX, aimY   float64
	fire         bool
	pauseToggled bool
}

// NewInput creates an input source; toArena maps mouse cells to arena
// points.
func NewInput(tp clock.TimeProvider, toArena func(x, y int) (float64, float64)) *Input {
	return &Input{
		clock:   tp,
		toArena: toArena,
		keys:    make(map[action]time.Time),
	}
}

// HandleEvent records one terminal event. It reports whether the event was
// a gameplay input.
func (in *Input) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.aimX, in.aimY = in.toArena(x, y)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && in.buttons&tcell.Button1 == 0 {
			in.fire = true
		}
		in.buttons = ev.Buttons()
		return true
	}
	return false
}

func (in *Input) handleKey(ev *tcell.EventKey) bool {
	now := in.clock.Now()
	switch ev.Key() {
	case tcell.KeyLeft:
		in.keys[actLeft] = now
	case tcell.KeyRight:
		in.keys[actRight] = now
	case tcell.KeyUp:
		in.keys[actJump] = now
	case tcell.KeyEscape:
		in.pauseToggled = true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'a':
			in.keys[actLeft] = now
		case 'd':
			in.keys[actRight] = now
		case 'w', ' ':
			in.keys[actJump] = now
		case 'x':
			in.keys[actDash] = now
		case 'p':
			in.pauseToggled = true
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (in *Input) held(a action, now time.Time) bool {
	lastPress, ok := in.keys[a]
	return ok && now.Sub(lastPress) < keyTimeout
}

// Poll returns the current intent. Fire and the pause toggle are reported
// once.
func (in *Input) Poll() interfaces.Intent {
	now := in.clock.Now()
	intent := interfaces.Intent{
		Left:         in.held(actLeft, now),
		Right:        in.held(actRight, now),
		Jump:         in.held(actJump, now),
		Dash:         in.held(actDash, now),
		Fire:         in.fire,
		AimX:         in.aimX,
		AimY:         in.aimY,
		PauseToggled: in.pauseToggled,
	}
	in.fire, in.pauseToggled = false, false
	return intent
}
