package constants

import "time"

// Game Loop & Engine Timing
const (
	// DefaultFPS is the frame rate of the fixed-cadence loop
	DefaultFPS = 60

	// DefaultMaxTimeStep clamps the physics step under frame hitches
	DefaultMaxTimeStep = time.Second / 30
)

// Event queue capacity; oldest events are overwritten when full
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// System Execution Priorities (lower runs first)
const (
	PriorityPhysics = 10
	PriorityCollect = 20
	PrioritySpawn   = 30
	PriorityCull    = 40
)
