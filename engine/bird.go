package engine

import (
	"math"

	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/core"
)

// Bird is the player entity, Y is the top edge of its sprite box
type Bird struct {
	X, Y     float64
	VY       float64
	Rotation float64 // degrees, positive tilts nose down
	W, H     float64
	Frame    int // wing animation counter

	gravity     float64
	flapImpulse float64
	homeY       float64
}

// NewBird creates a bird at (x, y) with the given physics
func NewBird(x, y, w, h, gravity, flapImpulse float64) *Bird {
	return &Bird{
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		gravity:     gravity,
		flapImpulse: flapImpulse,
		homeY:       y,
	}
}

// Update integrates one step: velocity first, then position
func (b *Bird) Update(dt float64) {
	b.VY += b.gravity * dt
	b.Y += b.VY * dt
	b.Rotation = tiltFor(b.VY)
	b.Frame++
}

// Flap sets the vertical velocity to the upward impulse
func (b *Bird) Flap() {
	b.VY = b.flapImpulse
	b.Rotation = tiltFor(b.VY)
}

// Place moves the bird directly, bypassing integration
func (b *Bird) Place(x, y float64) {
	b.X, b.Y = x, y
	b.VY = 0
	b.Rotation = 0
	b.Frame++
}

// Hover bobs around the spawn height while waiting for the first flap
func (b *Bird) Hover(frame int64) {
	phase := float64(frame) * 2 * math.Pi / float64(constants.TargetFPS)
	b.Y = b.homeY + constants.IdleBobAmplitude*math.Sin(phase)
	b.VY = 0
	b.Rotation = 0
	b.Frame++
}

// Bounds returns the sprite box
func (b *Bird) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

func tiltFor(vy float64) float64 {
	return min(max(vy*constants.TiltPerVelocity, constants.MaxTiltUp), constants.MaxTiltDown)
}
