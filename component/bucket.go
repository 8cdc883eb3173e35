package component

import (
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// BucketComponent is an open-top collector that explodes once filled
type BucketComponent struct {
	Bounds      vmath.Rect
	NeededSugar int
	Count       int  // Grains credited since level load
	Exploded    bool // Sticky for the level instance

	// Left, bottom, right; cleared when the bucket explodes
	Walls []physics.BodyID
}

// Full reports whether the bucket has reached its threshold
func (b *BucketComponent) Full() bool {
	return b.Count >= b.NeededSugar
}

// Remaining returns how many grains are still needed, never negative
func (b *BucketComponent) Remaining() int {
	if b.Count >= b.NeededSugar {
		return 0
	}
	return b.NeededSugar - b.Count
}
