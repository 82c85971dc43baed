package engine

import "github.com/lixenwraith/flappy/core"

// PipeView is the drawable geometry of one pipe pair
type PipeView struct {
	Top    core.Rect
	Bottom core.Rect
}

// Snapshot is a read-only copy of what the renderer needs for one frame
type Snapshot struct {
	Phase    GamePhase
	Paused   bool
	Steering bool
	Frame    int64
	Score    int
	Best     int

	Bird         core.Rect
	BirdRotation float64
	BirdFrame    int

	Pipes []PipeView

	GroundY      float64
	GroundOffset float64
}

// Snapshot copies the current state; pipes reuses buf's backing array
func (g *Game) Snapshot(buf []PipeView) Snapshot {
	pipes := buf[:0]
	for _, p := range g.pipes.Pairs() {
		pipes = append(pipes, PipeView{Top: p.TopRect(), Bottom: p.BottomRect()})
	}

	return Snapshot{
		Phase:        g.phase,
		Paused:       g.paused,
		Steering:     g.source != nil,
		Frame:        g.frame,
		Score:        g.score,
		Best:         g.best,
		Bird:         g.bird.Bounds(),
		BirdRotation: g.bird.Rotation,
		BirdFrame:    g.bird.Frame,
		Pipes:        pipes,
		GroundY:      g.ground.Y,
		GroundOffset: g.ground.Offset,
	}
}
