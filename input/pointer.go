package input

import "github.com/lixenwraith/flappy/constants"

// PointerSource steers the bird vertically from the last mouse position
// It implements engine.PositionSource; x stays at the bird's column
type PointerSource struct {
	x     float64
	birdH float64

	rows int
	row  int
	seen bool
}

// NewPointerSource creates a source for a bird at x with height birdH
func NewPointerSource(x, birdH float64, rows int) *PointerSource {
	return &PointerSource{x: x, birdH: birdH, rows: rows}
}

// SetRows updates the terminal height used to scale rows to world units
func (p *PointerSource) SetRows(rows int) {
	p.rows = rows
}

// Move records the mouse cell
func (p *PointerSource) Move(row int) {
	p.row = row
	p.seen = true
}

// Reset forgets the last position until the mouse moves again
func (p *PointerSource) Reset() {
	p.seen = false
}

// Position centers the bird on the pointer row
// ok is false until the mouse has been seen
func (p *PointerSource) Position() (x, y float64, ok bool) {
	if !p.seen || p.rows <= 0 {
		return 0, 0, false
	}
	center := (float64(p.row) + 0.5) / float64(p.rows) * constants.WorldHeight
	return p.x, center - p.birdH/2, true
}
