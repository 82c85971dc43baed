package engine

import (
	"math/rand"

	"github.com/lixenwraith/flappy/core"
)

// PipePair is a top and bottom obstacle with a gap between them
type PipePair struct {
	X         float64 // left edge
	GapCenter float64
	GapHeight float64
	Width     float64
	Speed     float64
	Scored    bool

	ground float64
}

// Update scrolls the pair left
func (p *PipePair) Update(dt float64) {
	p.X -= p.Speed * dt
}

// Right returns the trailing edge
func (p *PipePair) Right() float64 {
	return p.X + p.Width
}

// GapTop returns the y where the top pipe ends
func (p *PipePair) GapTop() float64 {
	return p.GapCenter - p.GapHeight/2
}

// GapBottom returns the y where the bottom pipe starts
func (p *PipePair) GapBottom() float64 {
	return p.GapCenter + p.GapHeight/2
}

// TopRect spans from the ceiling to the gap
func (p *PipePair) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.Width, p.GapTop())
}

// BottomRect spans from the gap to the ground line
func (p *PipePair) BottomRect() core.Rect {
	return core.NewRect(p.X, p.GapBottom(), p.Width, p.ground-p.GapBottom())
}

// Passed reports whether the trailing edge is behind birdX
func (p *PipePair) Passed(birdX float64) bool {
	return p.Right() < birdX
}

// Offscreen reports whether the pair has fully left the world
func (p *PipePair) Offscreen() bool {
	return p.Right() <= 0
}

// PipeSettings is the geometry shared by every pair in a field
type PipeSettings struct {
	Width     float64
	GapHeight float64
	Margin    float64
	Spacing   float64
	Speed     float64
	SpawnX    float64 // x of a freshly spawned pair
	Ground    float64 // y of the ground line
}

// PipeField owns the active pairs in left-to-right order
type PipeField struct {
	settings PipeSettings
	pairs    []*PipePair
	rng      *rand.Rand
}

// NewPipeField creates an empty field
func NewPipeField(settings PipeSettings, rng *rand.Rand) *PipeField {
	return &PipeField{
		settings: settings,
		pairs:    make([]*PipePair, 0, 8),
		rng:      rng,
	}
}

// SafeBand returns the allowed range of gap centers
func (f *PipeField) SafeBand() (lo, hi float64) {
	s := f.settings
	lo = s.Margin + s.GapHeight/2
	hi = s.Ground - s.Margin - s.GapHeight/2
	return lo, hi
}

// Spawn appends a pair at x with a gap center drawn uniformly from the safe band
func (f *PipeField) Spawn(x float64) *PipePair {
	lo, hi := f.SafeBand()
	s := f.settings
	p := &PipePair{
		X:         x,
		GapCenter: lo + f.rng.Float64()*(hi-lo),
		GapHeight: s.GapHeight,
		Width:     s.Width,
		Speed:     s.Speed,
		ground:    s.Ground,
	}
	f.pairs = append(f.pairs, p)
	return p
}

// Update scrolls all pairs, culls the ones that left and spawns at the
// fixed spacing. New pairs are placed relative to the previous one so the
// spacing stays exact regardless of dt
func (f *PipeField) Update(dt float64) {
	for _, p := range f.pairs {
		p.Update(dt)
	}

	culled := 0
	for culled < len(f.pairs) && f.pairs[culled].Offscreen() {
		culled++
	}
	if culled > 0 {
		f.pairs = append(f.pairs[:0], f.pairs[culled:]...)
	}

	f.fill()
}

// fill spawns pairs until the newest one is within spacing of the spawn edge
func (f *PipeField) fill() {
	s := f.settings
	if len(f.pairs) == 0 {
		f.Spawn(s.SpawnX)
		return
	}
	for {
		last := f.pairs[len(f.pairs)-1]
		if last.X+s.Spacing > s.SpawnX {
			return
		}
		f.Spawn(last.X + s.Spacing)
	}
}

// Nearest returns the first pair the bird has not yet passed, nil if none
func (f *PipeField) Nearest(birdX float64) *PipePair {
	for _, p := range f.pairs {
		if !p.Passed(birdX) {
			return p
		}
	}
	return nil
}

// Score marks newly passed pairs and returns how many were counted
// Each pair is counted at most once over its lifetime
func (f *PipeField) Score(birdX float64) int {
	n := 0
	for _, p := range f.pairs {
		if !p.Scored && p.Passed(birdX) {
			p.Scored = true
			n++
		}
	}
	return n
}

// Pairs returns the active pairs, left to right; callers must not mutate
func (f *PipeField) Pairs() []*PipePair {
	return f.pairs
}

// Reset removes all pairs
func (f *PipeField) Reset() {
	f.pairs = f.pairs[:0]
}
