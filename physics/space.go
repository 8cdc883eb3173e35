package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/sugar-pop/vmath"
)

// grainMass is shared by every dynamic circle; only ratios matter to the solver
const grainMass = 1.0

type handle struct {
	body  *cp.Body // nil for segments, which hang off the space's static body
	shape *cp.Shape
	a, b  vmath.Vec2
}

// Space implements World on a Chipmunk2D space.
// Not safe for concurrent use; the game loop owns it.
type Space struct {
	gravity    vmath.Vec2
	iterations int

	space   *cp.Space
	nextID  BodyID
	handles map[BodyID]*handle
}

// NewSpace creates an empty space; iterations sets the contact solver passes per step
func NewSpace(gravity vmath.Vec2, iterations int) *Space {
	if iterations < 1 {
		iterations = 1
	}
	s := &Space{
		gravity:    gravity,
		iterations: iterations,
		nextID:     1,
		handles:    make(map[BodyID]*handle),
	}
	s.space = s.newCPSpace()
	return s
}

func (s *Space) newCPSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = uint(s.iterations)
	space.SetGravity(toCP(s.gravity))
	return space
}

func toCP(v vmath.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) vmath.Vec2 {
	return vmath.V(v.X, v.Y)
}

func (s *Space) allocID() BodyID {
	id := s.nextID
	s.nextID++
	return id
}

// AddCircle adds a dynamic circle
func (s *Space) AddCircle(pos vmath.Vec2, radius float64, mat Material) BodyID {
	body := s.space.AddBody(cp.NewBody(grainMass, cp.MomentForCircle(grainMass, 0, radius, cp.Vector{})))
	body.SetPosition(toCP(pos))

	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Restitution)

	id := s.allocID()
	s.handles[id] = &handle{body: body, shape: shape, a: pos, b: pos}
	return id
}

// AddSegment adds a static segment
func (s *Space) AddSegment(a, b vmath.Vec2, radius float64, mat Material) BodyID {
	shape := s.space.AddShape(cp.NewSegment(s.space.StaticBody, toCP(a), toCP(b), radius))
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Restitution)

	id := s.allocID()
	s.handles[id] = &handle{shape: shape, a: a, b: b}
	return id
}

// Remove deletes a body
func (s *Space) Remove(id BodyID) bool {
	h, ok := s.handles[id]
	if !ok {
		return false
	}
	delete(s.handles, id)
	s.space.RemoveShape(h.shape)
	if h.body != nil {
		s.space.RemoveBody(h.body)
	}
	return true
}

// Position returns the circle center or segment midpoint
func (s *Space) Position(id BodyID) (vmath.Vec2, bool) {
	h, ok := s.handles[id]
	if !ok {
		return vmath.Vec2{}, false
	}
	if h.body == nil {
		return h.a.Add(h.b).Scale(0.5), true
	}
	return fromCP(h.body.Position()), true
}

// Velocity returns the body velocity
func (s *Space) Velocity(id BodyID) (vmath.Vec2, bool) {
	h, ok := s.handles[id]
	if !ok {
		return vmath.Vec2{}, false
	}
	if h.body == nil {
		return vmath.Vec2{}, true
	}
	return fromCP(h.body.Velocity()), true
}

// Clear drops every body by swapping in a fresh space; handles are not reused
func (s *Space) Clear() {
	s.space = s.newCPSpace()
	clear(s.handles)
}

// Len returns the number of live bodies
func (s *Space) Len() int {
	return len(s.handles)
}

// Step advances the simulation by dt seconds
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
}
