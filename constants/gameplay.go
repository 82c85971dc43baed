// @focus: #constants { gameplay }
package constants

// World dimensions in logical units
// Terminal renderer scales these to the available cells
const (
	// WorldWidth is the logical width (background tile 284 wide, tiled twice)
	WorldWidth = 284 * 2

	// WorldHeight is the logical height
	WorldHeight = 512

	// GroundHeight is the height of the ground strip at the bottom
	GroundHeight = 48

	// GroundY is the top of the ground strip; touching it ends the run
	GroundY = WorldHeight - GroundHeight

	// GroundTileWidth is the period of the ground stripe pattern
	GroundTileWidth = 24
)

// Bird
const (
	// BirdSpriteSize is the source sprite size in pixels before scaling
	BirdSpriteSize = 16

	// BirdWidth and BirdHeight are the sprite dimensions at the default scale
	BirdWidth  = BirdSpriteSize * 2
	BirdHeight = BirdSpriteSize * 2

	// BirdX is the fixed horizontal position of the bird
	BirdX = 50

	// Gravity is the downward acceleration in units per frame squared
	Gravity = 0.45

	// FlapImpulse is the vertical velocity set by a flap, units per frame
	FlapImpulse = -7.0

	// MaxTiltUp and MaxTiltDown clamp the visual rotation in degrees
	MaxTiltUp   = -25.0
	MaxTiltDown = 90.0

	// TiltPerVelocity maps vertical velocity to degrees of rotation
	TiltPerVelocity = 6.0

	// WingPeriodFrames is the wing animation period (250ms at 60fps per half)
	WingPeriodFrames = 30

	// IdleBobAmplitude is the waiting-to-start hover amplitude in units
	IdleBobAmplitude = 6.0
)

// Pipes
const (
	// PipeWidth is the width of a pipe pair
	PipeWidth = 80

	// PipeLipHeight is the height of the wider end piece drawn at the gap
	PipeLipHeight = 16

	// GapHeight is the vertical opening, three bird heights
	GapHeight = 3 * BirdHeight

	// PipeMargin keeps gap edges this far from ceiling and ground
	PipeMargin = 32

	// ScrollSpeed is how far pipes and ground move left each frame
	ScrollSpeed = 3.0

	// PipeSpacing is the horizontal distance between consecutive pairs
	// 3000ms add interval at 60fps and 3 units per frame
	PipeSpacing = 180 * ScrollSpeed
)
