package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundFlap  SoundType = iota // Wing beat
	SoundPoint                  // Pipe pair passed
	SoundHit                    // Collision
	SoundDie                    // Falling after a collision
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundFlap:  "Flap",
	SoundPoint: "Point",
	SoundHit:   "Hit",
	SoundDie:   "Die",
}

// String returns the name of the sound
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "Unknown"
	}
	return soundNames[s]
}
