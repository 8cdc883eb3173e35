package component

import "github.com/lixenwraith/sugar-pop/physics"

// GrainComponent is a falling sugar grain owned by the registry
type GrainComponent struct {
	Body      physics.BodyID
	Radius    float64
	Collected bool // Credited to a bucket, awaiting removal
}
