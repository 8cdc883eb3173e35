package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/component"
	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/engine"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// CullSystem removes grains that escaped the play area
// It runs last in the tick so collection sees every grain first
type CullSystem struct {
	bounds vmath.Rect
	dead   []core.Entity
}

// NewCullSystem culls grains farther than constants.CullMargin outside a width x height world
func NewCullSystem(width, height float64) *CullSystem {
	m := constants.CullMargin
	return &CullSystem{bounds: vmath.RectXYWH(-m, -m, width+2*m, height+2*m)}
}

func (s *CullSystem) Name() string { return "cull" }

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

// Update removes escaped grains; they still count as spawned
func (s *CullSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	reg := ctx.Registry
	world := reg.World()
	s.dead = s.dead[:0]

	reg.Grains.Each(func(e core.Entity, g *component.GrainComponent) bool {
		if pos, ok := world.Position(g.Body); ok && !s.bounds.Contains(pos) {
			s.dead = append(s.dead, e)
		}
		return true
	})

	if n := reg.RemoveGrains(s.dead); n > 0 {
		ctx.Logger.Debug("culled grains", zap.Int("count", n))
	}
}
