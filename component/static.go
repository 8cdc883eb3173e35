package component

import (
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// StaticComponent is an immovable segment from level data or the boundary
type StaticComponent struct {
	Body        physics.BodyID
	A, B        vmath.Vec2
	Color       string // tcell color name
	LineWidth   float64
	Friction    float64
	Restitution float64
}
