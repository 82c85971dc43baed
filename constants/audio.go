package constants

import "time"

// Speaker
const (
	AudioSampleRate    = 44100
	AudioBufferLatency = 50 * time.Millisecond
)

// VolumeStep is the master volume change per volume key press
const VolumeStep = 0.1

// Flap Sound Timing
const (
	FlapSoundDuration = 90 * time.Millisecond
	FlapSoundAttack   = 5 * time.Millisecond
	FlapSoundRelease  = 50 * time.Millisecond
	FlapSoundFromHz   = 420.0
	FlapSoundToHz     = 840.0
)

// Point Sound Timing
const (
	PointSoundNote1Duration = 70 * time.Millisecond
	PointSoundNote2Duration = 220 * time.Millisecond
	PointSoundAttack        = 5 * time.Millisecond
	PointSoundNote1Release  = 30 * time.Millisecond
	PointSoundNote2Release  = 160 * time.Millisecond
	PointSoundNote1Hz       = 987.77
	PointSoundNote2Hz       = 1318.51
)

// Hit Sound Timing
const (
	HitSoundDuration = 140 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 100 * time.Millisecond
	HitSoundHz       = 110.0
)

// Die Sound Timing
const (
	DieSoundDelay    = 120 * time.Millisecond
	DieSoundDuration = 450 * time.Millisecond
	DieSoundAttack   = 10 * time.Millisecond
	DieSoundRelease  = 250 * time.Millisecond
	DieSoundFromHz   = 660.0
	DieSoundToHz     = 110.0
)
