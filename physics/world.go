// Package physics provides the rigid-body collaborator: dynamic circles
// falling under gravity against static segments.
package physics

import "github.com/lixenwraith/sugar-pop/vmath"

// BodyID is a handle to a body owned by a World; zero is never issued
type BodyID uint32

// Material holds contact coefficients; pairs combine by multiplication as in Chipmunk
type Material struct {
	Friction    float64
	Restitution float64
}

// World is the simulation surface the game core drives
type World interface {
	// AddCircle adds a dynamic circle at pos
	AddCircle(pos vmath.Vec2, radius float64, mat Material) BodyID
	// AddSegment adds a static capsule from a to b with the given half-thickness
	AddSegment(a, b vmath.Vec2, radius float64, mat Material) BodyID
	// Remove deletes a body, returning false for unknown handles
	Remove(id BodyID) bool
	// Position returns the body position (segment: midpoint)
	Position(id BodyID) (vmath.Vec2, bool)
	// Velocity returns the body velocity (segments are always at rest)
	Velocity(id BodyID) (vmath.Vec2, bool)
	// Step advances the simulation by dt seconds
	Step(dt float64)
	// Clear removes every body
	Clear()
	// Len returns the number of live bodies
	Len() int
}
