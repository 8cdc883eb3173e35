package component

import (
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// DrawnLineComponent is a player-drawn polyline
// Each consecutive vertex pair is backed by one static segment
type DrawnLineComponent struct {
	Vertices []vmath.Vec2
	Segments []physics.BodyID
	Final    bool // Mouse released, no more vertices
}

// Last returns the most recent vertex
func (l *DrawnLineComponent) Last() vmath.Vec2 {
	return l.Vertices[len(l.Vertices)-1]
}
