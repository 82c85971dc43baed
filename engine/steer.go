package engine

// PositionSource places the bird directly each frame while active, bypassing
// gravity. Implemented by external trackers (pointer, pose camera)
type PositionSource interface {
	// Position returns the desired top-left of the bird in world units
	// ok is false when no fresh sample is available
	Position() (x, y float64, ok bool)
}
