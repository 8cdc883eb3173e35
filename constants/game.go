package constants

import "time"

// Session timers
const (
	// IntroDelay is how long the intro screen shows before level 1 loads
	IntroDelay = 2 * time.Second

	// SpoutDelay is the wait between level load and the first grain
	SpoutDelay = 5 * time.Second

	// AdvanceDelay is the pause on "Level Complete!" before the next level
	AdvanceDelay = 2 * time.Second

	// RestartDelay is the short reload delay after a restart request
	RestartDelay = 100 * time.Millisecond

	// FailRestartDelay is the reload delay after the level time limit runs out
	FailRestartDelay = 2 * time.Second
)

// World defaults, in world units with y up
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0

	Gravity           = -200.0
	PhysicsIterations = 30 // Contact solver passes per step

	GrainRadius      = 2.0
	GrainFriction    = 0.5
	GrainRestitution = 0.3

	WallFriction    = 0.5
	WallRestitution = 0.5

	// Bucket walls are drawn as thin statics
	BucketWallRadius = 1.0

	// DrawnLineRadius is the half-thickness of player-drawn segments
	DrawnLineRadius = 1.5
	DrawnLineColor  = "blue"

	// BoundaryColor is used for the four enclosing walls
	BoundaryColor     = "red"
	FloorLineWidth    = 5.0
	BoundaryLineWidth = 2.0

	// CullMargin is how far outside the world a grain may travel before removal
	CullMargin = 50.0
)

// Input sampling
const (
	// LineSampleEvery appends a drawn-line vertex every Nth tick while the button is held
	LineSampleEvery = 10
)
