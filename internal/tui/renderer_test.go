package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-echo-arena/internal/component"
	"go-echo-arena/internal/interfaces"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestRendererScalesArenaToScreen(t *testing.T) {
	// 90x60 arena cells: one cell is 10x10 arena pixels.
	screen := newTestScreen(t, 90, 61)
	r := NewRenderer(screen, false)

	snap := &interfaces.Snapshot{
		Mode:  component.ModePlaying,
		Depth: 2,
		Score: 300,
		Player: interfaces.PlayerView{
			Box:       interfaces.Box{X: 434, Y: 268, W: 32, H: 64},
			Health:    3,
			MaxHealth: 5,
		},
		Enemies: []interfaces.EnemyView{
			{Box: interfaces.Box{X: 100, Y: 100, W: 40, H: 40}},
		},
	}
	r.Render(snap)

	if ch, _, _, _ := screen.GetContent(44, 30); ch != '█' {
		t.Errorf("player cell = %q, want block", ch)
	}
	if ch, _, _, _ := screen.GetContent(12, 12); ch != '█' {
		t.Errorf("enemy cell = %q, want block", ch)
	}
	if ch, _, _, _ := screen.GetContent(60, 50); ch != ' ' {
		t.Errorf("empty cell = %q, want blank", ch)
	}

	status := rowText(screen, 0, 90)
	if !strings.HasPrefix(status, "♥♥♥··") {
		t.Errorf("status = %q, want three of five hearts", status)
	}
	if !strings.Contains(status, "DEPTH 2  SCORE 300") {
		t.Errorf("status = %q, want depth and score", status)
	}
}

func TestRendererShowsModeBanner(t *testing.T) {
	screen := newTestScreen(t, 90, 61)
	r := NewRenderer(screen, false)

	r.Render(&interfaces.Snapshot{Mode: component.ModePaused})
	if row := rowText(screen, 30, 90); !strings.Contains(row, "PAUSED") {
		t.Errorf("middle row = %q, want PAUSED banner", row)
	}

	r.Render(&interfaces.Snapshot{Mode: component.ModePlaying})
	if row := rowText(screen, 30, 90); strings.Contains(row, "PAUSED") {
		t.Errorf("banner should be gone while playing, got %q", row)
	}
}

func TestCellToArena(t *testing.T) {
	screen := newTestScreen(t, 90, 61)
	r := NewRenderer(screen, false)

	x, y := r.CellToArena(45, 31)
	if x != 455 || y != 305 {
		t.Errorf("CellToArena(45, 31) = (%v, %v), want (455, 305)", x, y)
	}

	cx, cy := r.toCell(x, y)
	if cx != 45 || cy != 31 {
		t.Errorf("round trip = (%d, %d), want (45, 31)", cx, cy)
	}
}
