package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/engine"
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// SpawnSystem emits one grain per tick from the spout until the level's grain budget is spent
type SpawnSystem struct {
	radius   float64
	material physics.Material
}

// NewSpawnSystem creates a spawner producing grains of the given radius and material
func NewSpawnSystem(radius float64, material physics.Material) *SpawnSystem {
	return &SpawnSystem{radius: radius, material: material}
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Activate opens the spout, called when the spout timer fires
func (s *SpawnSystem) Activate(ctx *engine.GameContext) {
	if ctx.Level == nil {
		return
	}
	ctx.State.SpoutActive = true
	ctx.Logger.Debug("spout open",
		zap.Int("level", ctx.State.LevelIndex),
		zap.Int("grains", ctx.Level.NumberSugarGrains))
}

// Update spawns at most one grain and closes the spout for good at the cap
func (s *SpawnSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	st := ctx.State
	if !st.SpoutActive || ctx.Level == nil {
		return
	}
	total := ctx.Level.NumberSugarGrains
	if st.SpawnedGrains < total {
		ctx.Registry.AddGrain(vmath.V(ctx.Level.SpoutX, ctx.Level.SpoutY), s.radius, s.material)
		st.SpawnedGrains++
	}
	if st.SpawnedGrains >= total {
		st.SpoutActive = false
		ctx.Logger.Debug("spout exhausted", zap.Int("spawned", st.SpawnedGrains))
	}
}
