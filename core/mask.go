package core

import (
	"math"
	"math/bits"
)

// Mask is a per-pixel opacity bitmap, row-major, one bit per pixel
// Used for narrow-phase collision so transparent sprite padding never hits
type Mask struct {
	width  int
	height int
	stride int // words per row
	words  []uint64
}

// NewMask creates a fully transparent mask
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 63) / 64
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// Width returns the mask width in pixels
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels
func (m *Mask) Height() int { return m.height }

// Set marks a pixel opaque or transparent, out of range is ignored
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	idx := y*m.stride + x/64
	bit := uint64(1) << uint(x%64)
	if opaque {
		m.words[idx] |= bit
	} else {
		m.words[idx] &^= bit
	}
}

// At reports whether a pixel is opaque, out of range is transparent
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.words[y*m.stride+x/64]&(uint64(1)<<uint(x%64)) != 0
}

// Count returns the number of opaque pixels
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// OverlapsRect tests the mask, placed with its top-left at (ox, oy) in world
// space, against a fully opaque rectangle
// A mask pixel covers [x, x+1) x [y, y+1) relative to its origin
func (m *Mask) OverlapsRect(ox, oy float64, r Rect) bool {
	placed := Rect{X: ox, Y: oy, W: float64(m.width), H: float64(m.height)}
	hit := placed.Intersection(r)
	if hit.Empty() {
		return false
	}

	x0 := int(math.Floor(hit.X - ox))
	y0 := int(math.Floor(hit.Y - oy))
	x1 := int(math.Ceil(hit.Right() - ox))
	y1 := int(math.Ceil(hit.Bottom() - oy))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) {
				return true
			}
		}
	}
	return false
}
