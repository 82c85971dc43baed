package constants

import "time"

// Game Loop Timing Constants
const (
	// TargetFPS is the default simulation and render rate
	TargetFPS = 60

	// FrameUpdateInterval is the frame interval at TargetFPS (~60 FPS)
	FrameUpdateInterval = time.Second / TargetFPS

	// RestartDelay is how long restart input is ignored after a crash
	RestartDelay = 600 * time.Millisecond

	// EventQueueSize is the buffered capacity of the input event channel
	EventQueueSize = 256
)
