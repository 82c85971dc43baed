// Package asset holds the embedded sprite sheets and their parser
package asset

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"

	"github.com/lixenwraith/flappy/core"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

// ErrMalformedSprite is returned for sprite data that cannot be parsed
var ErrMalformedSprite = errors.New("malformed sprite")

// RGB is a sprite pixel color
type RGB struct {
	R, G, B uint8
}

// palette maps sprite sheet characters to colors, '.' is transparent
var palette = map[rune]RGB{
	'K': {0, 0, 0},
	'Y': {250, 200, 40},
	'W': {255, 255, 255},
	'O': {240, 100, 30},
	'R': {220, 40, 40},
}

const transparent = '.'

// Sprite is a decoded image with an opacity mask for collision
type Sprite struct {
	Name   string
	Width  int
	Height int
	pixels []RGB
	mask   *core.Mask
}

// At returns the pixel color and whether it is opaque
func (s *Sprite) At(x, y int) (RGB, bool) {
	if !s.mask.At(x, y) {
		return RGB{}, false
	}
	return s.pixels[y*s.Width+x], true
}

// Mask returns the opacity mask
func (s *Sprite) Mask() *core.Mask {
	return s.mask
}

// ParseSprite decodes a text sprite sheet, each source pixel becomes a
// scale x scale block. Lines starting with '#' are comments
func ParseSprite(name string, data []byte, scale int) (*Sprite, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: %s: scale %d", ErrMalformedSprite, name, scale)
	}

	var rows [][]rune
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		rows = append(rows, []rune(string(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSprite, name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: no pixel rows", ErrMalformedSprite, name)
	}

	srcW := len(rows[0])
	for i, row := range rows {
		if len(row) != srcW {
			return nil, fmt.Errorf("%w: %s: row %d has width %d, want %d", ErrMalformedSprite, name, i, len(row), srcW)
		}
	}

	w, h := srcW*scale, len(rows)*scale
	s := &Sprite{
		Name:   name,
		Width:  w,
		Height: h,
		pixels: make([]RGB, w*h),
		mask:   core.NewMask(w, h),
	}

	for sy, row := range rows {
		for sx, ch := range row {
			if ch == transparent {
				continue
			}
			c, ok := palette[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %s: unknown palette key %q at %d,%d", ErrMalformedSprite, name, ch, sx, sy)
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					x, y := sx*scale+dx, sy*scale+dy
					s.pixels[y*w+x] = c
					s.mask.Set(x, y, true)
				}
			}
		}
	}
	return s, nil
}

// BirdSheet holds the bird animation frames
type BirdSheet struct {
	WingUp   *Sprite
	WingDown *Sprite
}

// Frame returns the animation frame for a frame counter and period
func (b *BirdSheet) Frame(counter, period int) *Sprite {
	if period <= 0 || (counter%period) < period/2 {
		return b.WingUp
	}
	return b.WingDown
}

// Mask returns the union of both frame masks, so collision does not
// depend on which wing frame is showing
func (b *BirdSheet) Mask() *core.Mask {
	up, down := b.WingUp.Mask(), b.WingDown.Mask()
	m := core.NewMask(up.Width(), up.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			m.Set(x, y, up.At(x, y) || down.At(x, y))
		}
	}
	return m
}

// LoadBird parses the embedded bird frames at the given scale
func LoadBird(scale int) (*BirdSheet, error) {
	up, err := loadEmbedded("bird_wing_up", scale)
	if err != nil {
		return nil, err
	}
	down, err := loadEmbedded("bird_wing_down", scale)
	if err != nil {
		return nil, err
	}
	if up.Width != down.Width || up.Height != down.Height {
		return nil, fmt.Errorf("%w: bird frames differ in size", ErrMalformedSprite)
	}
	return &BirdSheet{WingUp: up, WingDown: down}, nil
}

func loadEmbedded(name string, scale int) (*Sprite, error) {
	data, err := spriteFS.ReadFile("sprites/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", name, err)
	}
	return ParseSprite(name, data, scale)
}
