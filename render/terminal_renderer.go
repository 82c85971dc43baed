package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flappy/asset"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/core"
	"github.com/lixenwraith/flappy/engine"
)

const (
	pipeOutline   = 2.0  // world units on each side of a pipe
	pipeLipReach  = 4.0  // lip overhang past the pipe body
	grassHeight   = 6.0  // grass strip on top of the ground
	stripeHeight  = 10.0 // ground stripe band below the grass
	cloudBandY    = constants.GroundY - 36
	cloudBumpStep = 64.0
	pausedDim     = 0.6
)

// TerminalRenderer draws game snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas
	bird   *asset.BirdSheet
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, bird *asset.BirdSheet) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		canvas: NewCanvas(w, h),
		bird:   bird,
		width:  w,
		height: h,
	}
}

// Size returns the terminal size used by the last frame
func (r *TerminalRenderer) Size() (int, int) {
	return r.width, r.height
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.width, r.height = w, h
		r.canvas.Resize(w, h)
	}

	r.canvas.Clear(RgbSky)
	r.drawClouds(snap.GroundOffset)
	for _, p := range snap.Pipes {
		r.drawPipe(p.Top, true)
		r.drawPipe(p.Bottom, false)
	}
	r.drawGround(snap.GroundY, snap.GroundOffset)
	r.drawBird(snap)

	if snap.Paused {
		r.canvas.Darken(pausedDim)
	}
	r.canvas.Flush(r.screen)

	r.drawOverlay(snap)
	r.screen.Show()
}

// drawClouds draws a bumpy cloud line resting above the ground
func (r *TerminalRenderer) drawClouds(offset float64) {
	r.canvas.FillRect(core.NewRect(0, cloudBandY, constants.WorldWidth, constants.GroundY-cloudBandY), RgbCloud)

	// Parallax at half the ground speed
	shift := math.Mod(offset/2, cloudBumpStep)
	for x := -shift; x < constants.WorldWidth; x += cloudBumpStep {
		r.canvas.FillRect(core.NewRect(x+8, cloudBandY-14, 40, 14), RgbCloud)
		r.canvas.FillRect(core.NewRect(x+20, cloudBandY-24, 20, 10), RgbCloud)
	}
}

// drawPipe draws one pipe body with its lip at the gap side
func (r *TerminalRenderer) drawPipe(body core.Rect, lipAtBottom bool) {
	if body.Empty() {
		return
	}

	r.canvas.FillRect(core.NewRect(body.X-pipeOutline, body.Y, body.W+2*pipeOutline, body.H), RgbPipeOutline)
	r.canvas.FillRect(body, RgbPipeBody)
	r.canvas.FillRect(core.NewRect(body.X+body.W*0.1, body.Y, body.W*0.15, body.H), RgbPipeLight)
	r.canvas.FillRect(core.NewRect(body.Right()-body.W*0.2, body.Y, body.W*0.2, body.H), RgbPipeShade)

	lipH := math.Min(constants.PipeLipHeight, body.H)
	lipY := body.Y
	if lipAtBottom {
		lipY = body.Bottom() - lipH
	}
	lip := core.NewRect(body.X-pipeLipReach, lipY, body.W+2*pipeLipReach, lipH)
	r.canvas.FillRect(core.NewRect(lip.X-pipeOutline, lip.Y-pipeOutline, lip.W+2*pipeOutline, lip.H+2*pipeOutline), RgbPipeOutline)
	r.canvas.FillRect(lip, RgbPipeLip)
}

// drawGround draws the sand, the grass edge and the scrolling stripes
func (r *TerminalRenderer) drawGround(groundY, offset float64) {
	r.canvas.FillRect(core.NewRect(0, groundY, constants.WorldWidth, constants.WorldHeight-groundY), RgbGround)
	r.canvas.FillRect(core.NewRect(0, groundY, constants.WorldWidth, grassHeight), RgbGrass)

	tile := float64(constants.GroundTileWidth)
	for x := -offset; x < constants.WorldWidth; x += tile {
		r.canvas.FillRect(core.NewRect(x, groundY+grassHeight, tile/2, stripeHeight), RgbGroundStripe)
	}
}

// drawBird draws the current wing frame, tilted by velocity
func (r *TerminalRenderer) drawBird(snap engine.Snapshot) {
	if r.bird == nil {
		r.canvas.FillRect(snap.Bird, RgbPointerMode)
		return
	}
	sprite := r.bird.Frame(snap.BirdFrame, constants.WingPeriodFrames)
	r.canvas.DrawSprite(sprite, snap.Bird, snap.BirdRotation)
}

// drawOverlay draws score and banners as text over the canvas
func (r *TerminalRenderer) drawOverlay(snap engine.Snapshot) {
	scoreStyle := tcell.StyleDefault.Foreground(RgbScore).Background(RgbBannerBg).Bold(true)
	bannerStyle := tcell.StyleDefault.Foreground(RgbBannerText).Background(RgbBannerBg)
	alertStyle := tcell.StyleDefault.Foreground(RgbGameOver).Background(RgbBannerBg).Bold(true)
	hintStyle := tcell.StyleDefault.Foreground(RgbHintText).Background(RgbGround)

	mid := r.height / 2

	switch snap.Phase {
	case engine.PhaseWaiting:
		r.drawCentered(mid-3, " "+constants.TextTitle+" ", alertStyle)
		r.drawCentered(mid-1, " "+constants.TextStart+" ", bannerStyle)
		if snap.Best > 0 {
			r.drawCentered(mid+1, fmt.Sprintf(" best %d ", snap.Best), bannerStyle)
		}

	case engine.PhasePlaying:
		r.drawCentered(constants.ScoreRow, fmt.Sprintf(" %d ", snap.Score), scoreStyle)
		if snap.Paused {
			r.drawCentered(mid, " "+constants.TextPaused+" ", alertStyle)
		}

	case engine.PhaseGameOver:
		r.drawCentered(constants.ScoreRow, fmt.Sprintf(" %d ", snap.Score), scoreStyle)
		r.drawCentered(mid-2, " "+constants.TextGameOver+" ", alertStyle)
		r.drawCentered(mid, fmt.Sprintf(" score %d  best %d ", snap.Score, snap.Best), bannerStyle)
		r.drawCentered(mid+2, " "+constants.TextRestart+" ", bannerStyle)
	}

	if snap.Steering {
		r.drawText(0, 0, " pointer ", tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(RgbPointerMode))
	}
	r.drawCentered(r.height-1, constants.TextQuitHint, hintStyle)
}

// drawCentered draws text centered on row y
func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.width - len([]rune(text))) / 2
	r.drawText(x, y, text, style)
}

// drawText draws text clipped to the screen
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for i, ch := range []rune(text) {
		if cx := x + i; cx >= 0 && cx < r.width {
			r.screen.SetContent(cx, y, ch, nil, style)
		}
	}
}
