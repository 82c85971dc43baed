// Package app runs the frame loop: queued input, simulation step, sound, render
package app

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flappy/asset"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/input"
	"github.com/lixenwraith/flappy/render"
)

// Sounds plays the game's sound effects
type Sounds interface {
	PlayFlap()
	PlayPoint()
	PlayHit()
	PlayDie()
}

// VolumeControl is implemented by sound players with a master volume
type VolumeControl interface {
	Volume() float64
	SetVolume(volume float64)
}

type silent struct{}

func (silent) PlayFlap()  {}
func (silent) PlayPoint() {}
func (silent) PlayHit()   {}
func (silent) PlayDie()   {}

// Options wires an App
type Options struct {
	Screen tcell.Screen
	Game   *engine.Game
	Bird   *asset.BirdSheet

	// Sounds defaults to silence
	Sounds Sounds

	// Keys defaults to input.DefaultKeyTable
	Keys *input.KeyTable

	// FPS defaults to constants.TargetFPS
	FPS int
}

// App owns the screen, the game and the frame loop
type App struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer *render.TerminalRenderer
	sounds   Sounds
	input    *input.InputHandler
	pointer  *input.PointerSource

	fps int
	dt  float64

	events chan tcell.Event
	closed chan struct{}
	pipes  []engine.PipeView
	quit   bool
}

// New creates an App; the screen must already be initialized
func New(opts Options) *App {
	fps := opts.FPS
	if fps <= 0 {
		fps = constants.TargetFPS
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = silent{}
	}

	_, rows := opts.Screen.Size()
	bird := opts.Game.Bird()
	pointer := input.NewPointerSource(bird.X, bird.H, rows)

	return &App{
		screen:   opts.Screen,
		game:     opts.Game,
		renderer: render.NewTerminalRenderer(opts.Screen, opts.Bird),
		sounds:   sounds,
		input:    input.NewInputHandler(opts.Keys, pointer),
		pointer:  pointer,
		fps:      fps,
		// Physics constants are per frame at TargetFPS, keep wall-clock speed at other rates
		dt:     float64(constants.TargetFPS) / float64(fps),
		events: make(chan tcell.Event, constants.EventQueueSize),
		closed: make(chan struct{}),
		pipes:  make([]engine.PipeView, 0, 8),
	}
}

// Run drives the loop until quit, context cancellation or screen closure
// Returns ctx.Err() on cancellation, nil otherwise
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			HandleCrash(r)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	Go(func() { a.pollEvents(done) })

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	a.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.closed:
			log.Printf("screen closed")
			return nil
		case <-ticker.C:
			if !a.Tick() {
				return nil
			}
		}
	}
}

// pollEvents is the only reader of the screen, it never touches game state
// PollEvent returns nil once the screen is finalized
func (a *App) pollEvents(done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(a.closed)
			return
		}
		select {
		case a.events <- ev:
		case <-done:
			return
		}
	}
}

// Tick drains queued input, steps the simulation once, plays sounds and
// renders. Returns false once a quit was requested
func (a *App) Tick() bool {
drain:
	for {
		select {
		case ev := <-a.events:
			a.HandleIntent(a.input.HandleEvent(ev))
			if a.quit {
				return false
			}
		default:
			break drain
		}
	}

	for _, ev := range a.game.Step(a.dt) {
		a.handleGameEvent(ev)
	}
	a.render()
	return !a.quit
}

// HandleIntent applies one parsed input to the game
func (a *App) HandleIntent(in input.Intent) {
	switch in.Type {
	case input.IntentQuit:
		a.quit = true
	case input.IntentFlap:
		a.game.Flap()
	case input.IntentConfirm:
		if a.game.Phase() == engine.PhaseGameOver {
			a.game.Restart()
		} else {
			a.game.Flap()
		}
	case input.IntentRestart:
		a.game.Restart()
	case input.IntentPause:
		a.game.TogglePause()
	case input.IntentTogglePointer:
		if a.game.PositionSource() == nil {
			a.pointer.Reset()
			a.game.SetPositionSource(a.pointer)
		} else {
			a.game.SetPositionSource(nil)
		}
		log.Printf("pointer steering: %t", a.game.PositionSource() != nil)
	case input.IntentVolumeUp:
		a.nudgeVolume(constants.VolumeStep)
	case input.IntentVolumeDown:
		a.nudgeVolume(-constants.VolumeStep)
	case input.IntentResize:
		a.screen.Sync()
	}
}

// nudgeVolume shifts the master volume when the sound player has one
func (a *App) nudgeVolume(delta float64) {
	vc, ok := a.sounds.(VolumeControl)
	if !ok {
		return
	}
	vc.SetVolume(vc.Volume() + delta)
	log.Printf("volume: %.1f", vc.Volume())
}

// Quitting reports whether a quit was requested
func (a *App) Quitting() bool {
	return a.quit
}

func (a *App) handleGameEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventFlap:
		a.sounds.PlayFlap()
	case engine.EventScore:
		a.sounds.PlayPoint()
	case engine.EventHit:
		a.sounds.PlayHit()
	case engine.EventDie:
		a.sounds.PlayDie()
		bird := a.game.Bird()
		if p := a.game.Pipes().Nearest(bird.X); p != nil {
			log.Printf("run over: score %d best %d, bird y %.0f, next gap [%.0f, %.0f]",
				ev.Score, a.game.Best(), bird.Y, p.GapTop(), p.GapBottom())
		} else {
			log.Printf("run over: score %d best %d, bird y %.0f", ev.Score, a.game.Best(), bird.Y)
		}
	case engine.EventStart, engine.EventRestart, engine.EventPause, engine.EventResume:
		log.Printf("%s", ev.Type)
	}
}

func (a *App) render() {
	snap := a.game.Snapshot(a.pipes)
	a.pipes = snap.Pipes
	a.renderer.RenderFrame(snap)
}
