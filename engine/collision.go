package engine

import "github.com/lixenwraith/flappy/core"

// Bounds are the vertical limits of the playfield
type Bounds struct {
	Ceiling float64
	Ground  float64
}

// BirdShape is the collision geometry of the bird
// A nil Mask falls back to plain rectangle overlap
type BirdShape struct {
	Box  core.Rect
	Mask *core.Mask
}

// Collide reports whether the bird hits the ceiling, the ground or either
// pipe of the given pair. pipe may be nil
func Collide(bird BirdShape, pipe *PipePair, b Bounds) bool {
	if bird.Box.Y <= b.Ceiling || bird.Box.Bottom() >= b.Ground {
		return true
	}
	if pipe == nil {
		return false
	}

	for _, r := range [2]core.Rect{pipe.TopRect(), pipe.BottomRect()} {
		if !bird.Box.Intersects(r) {
			continue
		}
		// Broad phase hit, pipes are fully opaque so only the bird mask matters
		if bird.Mask == nil || bird.Mask.OverlapsRect(bird.Box.X, bird.Box.Y, r) {
			return true
		}
	}
	return false
}
