// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-echo-arena/internal/app"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/defs"
	"go-echo-arena/internal/input"
	"go-echo-arena/internal/state"
	"go-echo-arena/internal/ui"
	"go-echo-arena/pkg/render"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if maxDelta := config.MaxFrameDeltaMs / 1000; deltaTime > maxDelta {
		deltaTime = maxDelta
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	enemies := flag.String("enemies", "", "path to an enemy definitions JSON file")
	invincible := flag.Bool("invincible", false, "player takes no damage")
	unlimitedEcho := flag.Bool("unlimited-echo", false, "echo has no cooldown")
	hitboxes := flag.Bool("hitboxes", false, "draw collision boxes")
	verbose := flag.Bool("verbose", false, "log every gameplay event")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	library := defs.DefaultLibrary()
	if *enemies != "" {
		var err error
		if library, err = defs.LoadLibrary(*enemies); err != nil {
			log.Fatalf("load enemies: %v", err)
		}
	}

	debug := config.Debug{
		Invincible:    *invincible,
		UnlimitedEcho: *unlimitedEcho,
		ShowHitboxes:  *hitboxes,
	}

	effects := render.NewEffects()
	renderer := render.NewArenaRenderer(render.DefaultPalette(), effects, debug.ShowHitboxes)
	hud := ui.NewHUD()
	hud.ShowRunID = *verbose

	game := app.NewGame(app.Options{
		Seed:     *seed,
		Debug:    debug,
		Library:  library,
		Input:    input.NewEbitenInput(hud.HitTest),
		Renderer: renderer,
		Verbose:  *verbose,
	})
	effects.SubscribeTo(game.EventDispatcher)

	ctx := &state.Context{
		Session:  game,
		Renderer: renderer,
		Effects:  effects,
		HUD:      hud,
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame && game.Start() {
		sm.SetState(state.NewPlayState(sm, ctx))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx)) // Устанавливаем состояние меню
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Echo Arena")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
