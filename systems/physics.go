package systems

import (
	"time"

	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/engine"
)

// PhysicsSystem advances the rigid-body world by the frame time
type PhysicsSystem struct {
	maxStep time.Duration
}

// NewPhysicsSystem creates a physics step clamped to maxStep
func NewPhysicsSystem(maxStep time.Duration) *PhysicsSystem {
	if maxStep <= 0 {
		maxStep = constants.DefaultMaxTimeStep
	}
	return &PhysicsSystem{maxStep: maxStep}
}

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

// Update steps the world, large frame hitches are clamped to keep the solver stable
func (s *PhysicsSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > s.maxStep {
		dt = s.maxStep
	}
	ctx.Registry.World().Step(dt.Seconds())
}
