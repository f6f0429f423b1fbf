// internal/app/game.go
package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"go-echo-arena/internal/clock"
	"go-echo-arena/internal/component"
	"go-echo-arena/internal/config"
	"go-echo-arena/internal/defs"
	"go-echo-arena/internal/entity"
	"go-echo-arena/internal/event"
	"go-echo-arena/internal/interfaces"
	"go-echo-arena/internal/system"
	"go-echo-arena/internal/utils"
)

// Options configures a session. Zero values select the defaults: a
// time-based seed, the embedded enemy definitions, the real clock, no input
// and no renderer.
type Options struct {
	Seed     int64
	Debug    config.Debug
	Library  *defs.Library
	Clock    clock.TimeProvider
	Input    interfaces.InputSource
	Renderer interfaces.Renderer
	Verbose  bool // log every gameplay event
}

// Game is one play session. It owns every entity and drives the systems
// from a fixed-step loop. Game is not safe for concurrent use: input
// sampling, ticks and rendering all happen inside Frame.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	StateSystem        *system.StateSystem
	PlayerSystem       *system.PlayerSystem
	ProjectileSystem   *system.ProjectileSystem
	EnemySystem        *system.EnemySystem
	CombatSystem       *system.CombatSystem
	StatusEffectSystem *system.StatusEffectSystem
	VisualEffectSystem *system.VisualEffectSystem
	LevelSystem        *system.LevelSystem

	loop     *clock.FixedStep
	input    interfaces.InputSource
	renderer interfaces.Renderer
	debug    config.Debug

	intent interfaces.Intent // intent sampled for the current frame
	// Presses seen in frames that ran no tick; held until a tick uses them.
	pendingJump, pendingDash bool
	score                    int
	depth                    int
	runID                    string
}

// NewGame creates a session in START mode with an empty arena.
func NewGame(opts Options) *Game {
	library := opts.Library
	if library == nil {
		library = defs.DefaultLibrary()
	}
	timeProvider := opts.Clock
	if timeProvider == nil {
		timeProvider = &clock.RealTimeProvider{}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		StateSystem:        system.NewStateSystem(ecs),
		PlayerSystem:       system.NewPlayerSystem(ecs, eventDispatcher, opts.Debug),
		ProjectileSystem:   system.NewProjectileSystem(ecs, eventDispatcher),
		EnemySystem:        system.NewEnemySystem(ecs),
		CombatSystem:       system.NewCombatSystem(ecs, eventDispatcher, rng, opts.Debug),
		StatusEffectSystem: system.NewStatusEffectSystem(ecs),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		LevelSystem:        system.NewLevelSystem(ecs, rng, library),
		input:              opts.Input,
		renderer:           opts.Renderer,
		debug:              opts.Debug,
	}
	g.loop = clock.NewFixedStep(timeProvider, time.Second/60, time.Duration(config.MaxFrameDeltaMs)*time.Millisecond, g.Tick)

	if opts.Verbose {
		eventDispatcher.SubscribeAll(&EventLogger{game: g}, allEventTypes...)
	}
	log.Printf("session: seed %d, tick %v, %d enemy kinds", rng.Seed(), g.loop.Step(), len(library.Enemies))
	return g
}

// Mode returns the current lifecycle mode.
func (g *Game) Mode() component.Mode { return g.StateSystem.Current() }

func (g *Game) Score() int    { return g.score }
func (g *Game) Depth() int    { return g.depth }
func (g *Game) RunID() string { return g.runID }

// Ticks returns the number of simulation ticks run so far.
func (g *Game) Ticks() uint64 { return g.loop.Ticks() }

// --- Session control surface ---

// Start begins a new run from the start screen or after a game over.
func (g *Game) Start() bool {
	if mode := g.Mode(); mode != component.ModeStart && mode != component.ModeGameOver {
		return false
	}
	g.begin()
	return true
}

// Restart throws the current run away and starts a new one. Not available
// from the start screen; use Start there.
func (g *Game) Restart() bool {
	if g.Mode() == component.ModeStart {
		return false
	}
	g.loop.Stop()
	g.begin()
	return true
}

func (g *Game) begin() {
	g.StateSystem.Switch(component.ModePlaying)
	g.Reset()
	g.runID = uuid.NewString()

	if player, _, _, _ := g.ECS.Player(); player != nil {
		player.StartInvincibility(config.StartInvincibilityMs)
	}
	g.loop.Start()
	log.Printf("session %s: started", g.runID)
}

// Pause freezes the simulation. No-op unless PLAYING.
func (g *Game) Pause() bool {
	if g.Mode() != component.ModePlaying || !g.StateSystem.Switch(component.ModePaused) {
		return false
	}
	g.loop.Stop()
	return true
}

// Resume continues a paused run. The paused interval is not credited to the
// simulation. No-op unless PAUSED.
func (g *Game) Resume() bool {
	if g.Mode() != component.ModePaused || !g.StateSystem.Switch(component.ModePlaying) {
		return false
	}
	g.loop.Resume()
	return true
}

// Quit abandons the run and returns to the start screen.
func (g *Game) Quit() bool {
	if g.Mode() == component.ModeStart {
		return false
	}
	g.loop.Stop()
	g.StateSystem.Switch(component.ModeStart)
	log.Printf("session %s: quit at depth %d, score %d", g.runID, g.depth, g.score)
	return true
}

// Reset rebuilds the arena for depth 0 with a fresh player and zero score.
// The mode is left unchanged.
func (g *Game) Reset() {
	g.ECS.Reset()
	g.score, g.depth = 0, 0
	g.intent = interfaces.Intent{}
	g.pendingJump, g.pendingDash = false, false
	g.PlayerSystem.CreatePlayer(config.PlayerStartX, config.PlayerStartY)
	g.LevelSystem.Generate(g.depth)
}

// Fire shoots the echo at an arena point. Ignored outside PLAYING and while
// the echo is cooling down.
func (g *Game) Fire(targetX, targetY float64) bool {
	if g.Mode() != component.ModePlaying {
		return false
	}
	return g.PlayerSystem.Fire(targetX, targetY)
}

// --- Loop ---

// Frame runs one display frame: sample input, run the due ticks, render.
// It returns the number of ticks run.
func (g *Game) Frame() int {
	var intent interfaces.Intent
	if g.input != nil {
		intent = g.input.Poll()
	}

	if intent.PauseToggled {
		switch g.Mode() {
		case component.ModePlaying:
			g.Pause()
		case component.ModePaused:
			g.Resume()
		}
	}

	ticks := 0
	if g.Mode() == component.ModePlaying {
		g.intent = intent
		g.pendingJump = g.pendingJump || intent.Jump
		g.pendingDash = g.pendingDash || intent.Dash
		if intent.Fire {
			g.Fire(intent.AimX, intent.AimY)
		}
		ticks = g.loop.Frame()
	}

	if g.renderer != nil {
		g.renderer.Render(g.Snapshot())
	}
	return ticks
}

// Tick advances the simulation by dt milliseconds. Systems run in a fixed
// order; collisions are resolved after everything has moved and removals
// are compacted once at the end.
func (g *Game) Tick(dt float64) {
	if g.Mode() != component.ModePlaying {
		return
	}

	g.StatusEffectSystem.Update(dt)
	intent := g.intent
	intent.Jump = intent.Jump || g.pendingJump
	intent.Dash = intent.Dash || g.pendingDash
	g.pendingJump, g.pendingDash = false, false
	g.PlayerSystem.Update(dt, intent)
	g.ProjectileSystem.Update(dt)
	g.EnemySystem.Update(dt)
	g.VisualEffectSystem.Update(dt)

	outcome := g.CombatSystem.Resolve()
	g.score += outcome.Kills * config.ScorePerKill
	g.ECS.Compact()
	g.ECS.GameTime += dt

	if outcome.PlayerDied {
		g.gameOver()
		return
	}
	if g.LevelSystem.Cleared() {
		g.depth++
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCleared, Data: g.depth})
		g.LevelSystem.Generate(g.depth)
	}
}

func (g *Game) gameOver() {
	g.loop.Stop()
	g.StateSystem.Switch(component.ModeGameOver)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.score})
	log.Printf("session %s: game over at depth %d, score %d", g.runID, g.depth, g.score)
}
