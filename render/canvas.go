// @focus: #render { canvas }
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flappy/asset"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/core"
)

// HalfBlock is drawn in every cell, fg is the upper pixel and bg the lower
const HalfBlock = '▀'

// Canvas is a pixel grid two pixels tall per terminal row
// Drawing calls take world coordinates and scale them to the grid
type Canvas struct {
	width  int // pixels, equals columns
	height int // pixels, twice the rows
	pix    []tcell.Color

	scaleX float64
	scaleY float64
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates for a new terminal size, contents are lost
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	c.width = cols
	c.height = rows * 2
	if cap(c.pix) >= c.width*c.height {
		c.pix = c.pix[:c.width*c.height]
	} else {
		c.pix = make([]tcell.Color, c.width*c.height)
	}
	c.scaleX = float64(c.width) / constants.WorldWidth
	c.scaleY = float64(c.height) / constants.WorldHeight
}

// Size returns the pixel dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills every pixel
func (c *Canvas) Clear(color tcell.Color) {
	for i := range c.pix {
		c.pix[i] = color
	}
}

// Set writes one pixel, out of range is ignored
func (c *Canvas) Set(x, y int, color tcell.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = color
}

// At returns one pixel, tcell.ColorDefault out of range
func (c *Canvas) At(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return tcell.ColorDefault
	}
	return c.pix[y*c.width+x]
}

// pixelSpan maps a world rect to clipped pixel bounds [x0, x1) x [y0, y1)
func (c *Canvas) pixelSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = max(int(math.Round(r.X*c.scaleX)), 0)
	y0 = max(int(math.Round(r.Y*c.scaleY)), 0)
	x1 = min(int(math.Round(r.Right()*c.scaleX)), c.width)
	y1 = min(int(math.Round(r.Bottom()*c.scaleY)), c.height)
	return x0, y0, x1, y1
}

// FillRect paints a world rectangle
func (c *Canvas) FillRect(r core.Rect, color tcell.Color) {
	x0, y0, x1, y1 := c.pixelSpan(r)
	for y := y0; y < y1; y++ {
		row := c.pix[y*c.width : (y+1)*c.width]
		for x := x0; x < x1; x++ {
			row[x] = color
		}
	}
}

// DrawSprite paints the opaque pixels of s stretched over the world rect r,
// rotated by deg degrees around its center. Sampling is nearest neighbour
func (c *Canvas) DrawSprite(s *asset.Sprite, r core.Rect, deg float64) {
	if s == nil || s.Width == 0 || s.Height == 0 || r.Empty() {
		return
	}

	// Rotated sprites can reach up to the half diagonal from the center
	bounds := r
	if deg != 0 {
		half := math.Hypot(r.W, r.H) / 2
		cx, cy := r.Center()
		bounds = core.NewRect(cx-half, cy-half, 2*half, 2*half)
	}

	sin, cos := math.Sincos(-deg * math.Pi / 180)
	cx, cy := r.Center()
	x0, y0, x1, y1 := c.pixelSpan(bounds)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			// Pixel center back to world, then into unrotated sprite space
			wx := (float64(px)+0.5)/c.scaleX - cx
			wy := (float64(py)+0.5)/c.scaleY - cy
			ux := wx*cos - wy*sin + r.W/2
			uy := wx*sin + wy*cos + r.H/2

			sx := int(math.Floor(ux / r.W * float64(s.Width)))
			sy := int(math.Floor(uy / r.H * float64(s.Height)))
			if col, ok := s.At(sx, sy); ok {
				c.pix[py*c.width+px] = SpriteColor(col)
			}
		}
	}
}

// Darken dims every pixel by factor
func (c *Canvas) Darken(factor float64) {
	for i, col := range c.pix {
		c.pix[i] = Dim(col, factor)
	}
}

// Flush writes the canvas to the screen, one half block per cell
func (c *Canvas) Flush(screen tcell.Screen) {
	rows := c.height / 2
	for row := 0; row < rows; row++ {
		upper := c.pix[2*row*c.width : (2*row+1)*c.width]
		lower := c.pix[(2*row+1)*c.width : (2*row+2)*c.width]
		for x := 0; x < c.width; x++ {
			style := tcell.StyleDefault.Foreground(upper[x]).Background(lower[x])
			screen.SetContent(x, row, HalfBlock, nil, style)
		}
	}
}
