package engine

import "math"

// GroundStrip is the scrolling floor, Offset is the stripe phase
type GroundStrip struct {
	Y         float64
	Offset    float64
	TileWidth float64
	Speed     float64
}

// NewGroundStrip creates a ground line at y
func NewGroundStrip(y, tileWidth, speed float64) *GroundStrip {
	return &GroundStrip{Y: y, TileWidth: tileWidth, Speed: speed}
}

// Update advances the stripe phase, wrapping at the tile width
func (g *GroundStrip) Update(dt float64) {
	if g.TileWidth <= 0 {
		return
	}
	g.Offset = math.Mod(g.Offset+g.Speed*dt, g.TileWidth)
}
