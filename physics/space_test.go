package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/sugar-pop/vmath"
)

var testMat = Material{Friction: 0.5, Restitution: 0.2}

func TestCircleFallsUnderGravity(t *testing.T) {
	s := NewSpace(vmath.V(0, -100), 4)
	id := s.AddCircle(vmath.V(50, 100), 2, testMat)

	for i := 0; i < 30; i++ {
		s.Step(1.0 / 60)
	}

	pos, ok := s.Position(id)
	if !ok {
		t.Fatal("Circle disappeared")
	}
	if pos.Y >= 100 {
		t.Errorf("Expected circle to fall, still at y=%.2f", pos.Y)
	}
	if pos.X != 50 {
		t.Errorf("Expected no horizontal drift, got x=%.2f", pos.X)
	}

	vel, _ := s.Velocity(id)
	if vel.Y >= 0 {
		t.Errorf("Expected downward velocity, got %.2f", vel.Y)
	}
}

func TestCircleRestsOnFloor(t *testing.T) {
	s := NewSpace(vmath.V(0, -200), 10)
	s.AddSegment(vmath.V(0, 0), vmath.V(200, 0), 1, testMat)
	id := s.AddCircle(vmath.V(100, 20), 2, testMat)

	for i := 0; i < 300; i++ {
		s.Step(1.0 / 60)
	}

	pos, _ := s.Position(id)
	// Resting height is floor half-thickness plus circle radius, within tolerance
	if pos.Y < 2.0 || pos.Y > 4.0 {
		t.Errorf("Expected circle to rest on floor near y=3, got y=%.3f", pos.Y)
	}
}

func TestCircleSlidesOffSlope(t *testing.T) {
	s := NewSpace(vmath.V(0, -200), 10)
	s.AddSegment(vmath.V(0, 100), vmath.V(100, 50), 1, Material{Friction: 0.2, Restitution: 0})
	id := s.AddCircle(vmath.V(20, 100), 2, Material{Friction: 0.2, Restitution: 0})

	for i := 0; i < 240; i++ {
		s.Step(1.0 / 60)
	}

	pos, _ := s.Position(id)
	if pos.X <= 20 {
		t.Errorf("Expected circle to slide down-slope to the right, got x=%.2f", pos.X)
	}
}

func TestCirclesDoNotOverlap(t *testing.T) {
	s := NewSpace(vmath.V(0, -200), 10)
	s.AddSegment(vmath.V(0, 0), vmath.V(200, 0), 1, testMat)
	a := s.AddCircle(vmath.V(100, 10), 2, testMat)
	b := s.AddCircle(vmath.V(100, 12), 2, testMat)

	for i := 0; i < 300; i++ {
		s.Step(1.0 / 60)
	}

	pa, _ := s.Position(a)
	pb, _ := s.Position(b)
	if d := math.Hypot(pa.X-pb.X, pa.Y-pb.Y); d < 3.5 {
		t.Errorf("Expected circles separated by ~4, got %.3f", d)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := NewSpace(vmath.V(0, -10), 1)
	c := s.AddCircle(vmath.V(1, 1), 1, testMat)
	seg := s.AddSegment(vmath.V(0, 0), vmath.V(10, 0), 1, testMat)

	if s.Len() != 2 {
		t.Fatalf("Expected 2 bodies, got %d", s.Len())
	}

	if !s.Remove(c) {
		t.Error("Remove should succeed for live body")
	}
	if s.Remove(c) {
		t.Error("Second remove should report unknown body")
	}
	if _, ok := s.Position(c); ok {
		t.Error("Removed body should have no position")
	}

	mid, ok := s.Position(seg)
	if !ok || mid != vmath.V(5, 0) {
		t.Errorf("Expected segment midpoint (5,0), got %v", mid)
	}

	s.AddCircle(vmath.V(2, 2), 1, testMat)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty space after Clear, got %d", s.Len())
	}

	// Handles keep increasing after Clear
	if id := s.AddCircle(vmath.V(0, 0), 1, testMat); id <= seg {
		t.Errorf("Expected fresh handle above %d, got %d", seg, id)
	}
}

func TestStepWithoutCirclesIsNoop(t *testing.T) {
	s := NewSpace(vmath.V(0, -10), 3)
	seg := s.AddSegment(vmath.V(0, 0), vmath.V(10, 10), 1, testMat)
	s.Step(1)
	if v, _ := s.Velocity(seg); v != (vmath.Vec2{}) {
		t.Errorf("Segment should never move, got velocity %v", v)
	}
}

func TestRestitutionCombinesMaterials(t *testing.T) {
	peak := func(floor, ball Material) float64 {
		s := NewSpace(vmath.V(0, -200), 10)
		s.AddSegment(vmath.V(0, 0), vmath.V(200, 0), 1, floor)
		id := s.AddCircle(vmath.V(100, 40), 2, ball)

		best := 0.0
		for i := 0; i < 180; i++ {
			s.Step(1.0 / 60)
			if v, _ := s.Velocity(id); v.Y > best {
				best = v.Y
			}
		}
		return best
	}

	elastic := peak(Material{Restitution: 1}, Material{Restitution: 0.9})
	if elastic < 50 {
		t.Errorf("Expected an elastic pair to rebound, peak upward speed %.2f", elastic)
	}

	// Either side at zero cancels the bounce
	dead := peak(Material{Restitution: 0}, Material{Restitution: 0.9})
	if dead > 5 {
		t.Errorf("Expected no rebound with zero restitution, peak upward speed %.2f", dead)
	}
	t.Logf("✓ Rebound %.1f elastic vs %.1f dead", elastic, dead)
}

func TestRemoveDuringLevelKeepsOthersSimulated(t *testing.T) {
	s := NewSpace(vmath.V(0, -100), 10)
	a := s.AddCircle(vmath.V(10, 50), 2, testMat)
	b := s.AddCircle(vmath.V(30, 50), 2, testMat)
	s.Step(1.0 / 60)

	s.Remove(a)
	before, _ := s.Position(b)
	s.Step(1.0 / 60)
	after, ok := s.Position(b)
	if !ok || after.Y >= before.Y {
		t.Errorf("Remaining circle should keep falling: %.3f -> %.3f", before.Y, after.Y)
	}
}
