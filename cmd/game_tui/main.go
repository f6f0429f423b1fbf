// cmd/game_tui/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-echo-arena/internal/app"
	"go-echo-arena/internal/clock"
	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/defs"
	"go-echo-arena/internal/tui"
)

const frameDuration = time.Second / 60

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	enemies := flag.String("enemies", "", "path to an enemy definitions JSON file")
	invincible := flag.Bool("invincible", false, "player takes no damage")
	unlimitedEcho := flag.Bool("unlimited-echo", false, "echo has no cooldown")
	hitboxes := flag.Bool("hitboxes", false, "mark collision box corners")
	verbose := flag.Bool("verbose", false, "log every gameplay event")
	logPath := flag.String("log", "", "write the log to this file (the terminal is busy)")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	library := defs.DefaultLibrary()
	if *enemies != "" {
		var err error
		if library, err = defs.LoadLibrary(*enemies); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("load enemies: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	timeProvider := clock.NewRealTimeProvider()
	renderer := tui.NewRenderer(screen, *hitboxes)
	input := tui.NewInput(timeProvider, renderer.CellToArena)

	game := app.NewGame(app.Options{
		Seed: *seed,
		Debug: config.Debug{
			Invincible:    *invincible,
			UnlimitedEcho: *unlimitedEcho,
			ShowHitboxes:  *hitboxes,
		},
		Library:  library,
		Clock:    timeProvider,
		Input:    input,
		Renderer: renderer,
		Verbose:  *verbose,
	})

	run(screen, game, input)
}

func run(screen tcell.Screen, game *app.Game, input *tui.Input) {
	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !handleSessionKey(screen, game, ev) {
				return
			}
			input.HandleEvent(ev)
		case <-ticker.C:
			game.Frame()
		}
	}
}

// handleSessionKey applies menu keys. It returns false when the program
// should exit.
func handleSessionKey(screen tcell.Screen, game *app.Game, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter {
			game.Start()
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			if game.Mode() == component.ModeStart {
				return false
			}
		case 'r':
			game.Restart()
		case 'm':
			game.Quit()
		}
	}
	return true
}
