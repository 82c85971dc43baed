// @focus: #core { game, phase }
package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/core"
)

// Options wires the collaborators of a Game
type Options struct {
	Config *config.Config

	// BirdMask is the opacity mask of the bird sprite, nil for rect collision
	BirdMask *core.Mask

	// Time defaults to the monotonic clock
	Time TimeProvider

	// Rand defaults to a source seeded from Config.Seed, or the clock when zero
	Rand *rand.Rand
}

// Game is the simulation: one bird, the pipe field, the ground and the
// phase machine. It is not safe for concurrent use; the frame loop owns it
type Game struct {
	cfg  *config.Config
	time TimeProvider

	phase      GamePhase
	phaseStart time.Time
	paused     bool
	frame      int64

	bird     *Bird
	birdMask *core.Mask
	birdW    float64
	birdH    float64

	pipes  *PipeField
	ground *GroundStrip
	bounds Bounds

	score int
	best  int

	source PositionSource

	events []Event
}

// Event is a tick event with the score at the time it was raised
type Event struct {
	Type  EventType
	Score int
}

// NewGame creates a game in WaitingToStart
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	tp := opts.Time
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	mask := opts.BirdMask
	birdW := float64(constants.BirdSpriteSize * cfg.Bird.SpriteScale)
	birdH := birdW
	if mask != nil {
		birdW, birdH = float64(mask.Width()), float64(mask.Height())
	}
	if cfg.Collision == config.CollisionRect {
		mask = nil
	}

	g := &Game{
		cfg:      cfg,
		time:     tp,
		birdMask: mask,
		birdW:    birdW,
		birdH:    birdH,
		bounds:   Bounds{Ceiling: 0, Ground: constants.GroundY},
		ground:   NewGroundStrip(constants.GroundY, constants.GroundTileWidth, cfg.Pipes.ScrollSpeed),
		events:   make([]Event, 0, 8),
	}

	g.pipes = NewPipeField(PipeSettings{
		Width:     cfg.Pipes.Width,
		GapHeight: cfg.Pipes.GapHeight,
		Margin:    cfg.Pipes.Margin,
		Spacing:   cfg.Pipes.Spacing,
		Speed:     cfg.Pipes.ScrollSpeed,
		SpawnX:    constants.WorldWidth,
		Ground:    constants.GroundY,
	}, rng)

	g.reset()
	g.phase = PhaseWaiting
	g.phaseStart = tp.Now()
	return g
}

// reset puts a fresh bird at the spawn point and clears the field
func (g *Game) reset() {
	startY := (constants.WorldHeight - g.birdH) / 2
	g.bird = NewBird(g.cfg.Bird.X, startY, g.birdW, g.birdH, g.cfg.Bird.Gravity, g.cfg.Bird.FlapImpulse)
	g.pipes.Reset()
	g.score = 0
	g.frame = 0
	g.paused = false
}

// transition changes phase if the move is legal
func (g *Game) transition(to GamePhase) bool {
	if !CanTransition(g.phase, to) {
		return false
	}
	g.phase = to
	g.phaseStart = g.time.Now()
	return true
}

func (g *Game) emit(t EventType) {
	g.events = append(g.events, Event{Type: t, Score: g.score})
}

// Flap handles a flap input. In WaitingToStart it also starts the run
// Ignored in GameOver and while paused
func (g *Game) Flap() {
	switch g.phase {
	case PhaseWaiting:
		if g.transition(PhasePlaying) {
			g.emit(EventStart)
			g.bird.Flap()
			g.emit(EventFlap)
		}
	case PhasePlaying:
		if g.paused || g.steering() {
			return
		}
		g.bird.Flap()
		g.emit(EventFlap)
	}
}

// Restart returns to WaitingToStart from GameOver once RestartDelay has
// elapsed since the crash. Returns whether the restart happened
func (g *Game) Restart() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	if g.time.Now().Sub(g.phaseStart) < constants.RestartDelay {
		return false
	}
	if !g.transition(PhaseWaiting) {
		return false
	}
	g.reset()
	g.emit(EventRestart)
	return true
}

// TogglePause pauses or resumes a run in progress
func (g *Game) TogglePause() {
	if g.phase != PhasePlaying {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.emit(EventPause)
	} else {
		g.emit(EventResume)
	}
}

// SetPositionSource installs or, with nil, removes direct bird placement
func (g *Game) SetPositionSource(src PositionSource) {
	g.source = src
}

// PositionSource returns the installed source, nil if none
func (g *Game) PositionSource() PositionSource {
	return g.source
}

func (g *Game) steering() bool {
	return g.source != nil
}

// Step advances one tick of dt frames and returns the events raised since
// the previous Step, including those from input calls in between
func (g *Game) Step(dt float64) []Event {
	if !g.paused {
		switch g.phase {
		case PhaseWaiting:
			g.frame++
			g.bird.Hover(g.frame)
			g.ground.Update(dt)

		case PhasePlaying:
			g.frame++
			g.stepPlaying(dt)

		case PhaseGameOver:
			g.stepFalling(dt)
		}
	}

	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// stepPlaying runs update, collision and scoring in that order
func (g *Game) stepPlaying(dt float64) {
	placed := false
	if g.source != nil {
		if x, y, ok := g.source.Position(); ok {
			g.bird.Place(x, y)
			placed = true
		}
	}
	if !placed {
		g.bird.Update(dt)
	}

	g.pipes.Update(dt)
	g.ground.Update(dt)

	if g.crashed() {
		g.transition(PhaseGameOver)
		g.best = max(g.best, g.score)
		g.emit(EventHit)
		g.emit(EventDie)
		return
	}

	for n := g.pipes.Score(g.bird.X); n > 0; n-- {
		g.score++
		g.emit(EventScore)
	}
	g.best = max(g.best, g.score)
}

// crashed tests the bounds and every pair whose span reaches the bird.
// Pairs are ordered by X, so the scan stops at the first one to the right
func (g *Game) crashed() bool {
	shape := g.BirdShape()
	if Collide(shape, nil, g.bounds) {
		return true
	}
	for _, p := range g.pipes.Pairs() {
		if p.X >= shape.Box.Right() {
			break
		}
		if Collide(shape, p, g.bounds) {
			return true
		}
	}
	return false
}

// stepFalling drops the bird onto the ground after a crash
func (g *Game) stepFalling(dt float64) {
	floor := g.bounds.Ground - g.bird.H
	if g.bird.Y >= floor {
		g.bird.Y = floor
		return
	}
	if g.bird.VY < 0 {
		g.bird.VY = 0
	}
	g.bird.Update(dt)
	if g.bird.Y > floor {
		g.bird.Y = floor
	}
}

// BirdShape returns the bird collision geometry
func (g *Game) BirdShape() BirdShape {
	return BirdShape{Box: g.bird.Bounds(), Mask: g.birdMask}
}

// Phase returns the current phase
func (g *Game) Phase() GamePhase { return g.phase }

// Paused reports whether a run is paused
func (g *Game) Paused() bool { return g.paused }

// Score returns the current run's score
func (g *Game) Score() int { return g.score }

// Best returns the highest score since launch
func (g *Game) Best() int { return g.best }

// Frame returns the number of simulated frames in this run
func (g *Game) Frame() int64 { return g.frame }

// Bird returns the live bird
func (g *Game) Bird() *Bird { return g.bird }

// Pipes returns the pipe field
func (g *Game) Pipes() *PipeField { return g.pipes }

// Ground returns the ground strip
func (g *Game) Ground() *GroundStrip { return g.ground }

// Bounds returns the vertical playfield limits
func (g *Game) Bounds() Bounds { return g.bounds }
