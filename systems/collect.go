package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/component"
	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/engine"
)

// CollectSystem credits grains that settle inside buckets and explodes full buckets
type CollectSystem struct {
	collected []core.Entity
}

func NewCollectSystem() *CollectSystem {
	return &CollectSystem{}
}

func (s *CollectSystem) Name() string { return "collect" }

func (s *CollectSystem) Priority() int {
	return constants.PriorityCollect
}

// Update runs one crediting pass, then one explosion pass
func (s *CollectSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	reg := ctx.Registry
	world := reg.World()
	s.collected = s.collected[:0]

	reg.Grains.Each(func(ge core.Entity, g *component.GrainComponent) bool {
		if g.Collected {
			return true
		}
		pos, ok := world.Position(g.Body)
		if !ok {
			return true
		}
		// First live bucket in level order wins; a bucket stops crediting once it reaches its threshold
		reg.Buckets.Each(func(_ core.Entity, b *component.BucketComponent) bool {
			if b.Exploded || b.Remaining() == 0 || !b.Bounds.Contains(pos) {
				return true
			}
			g.Collected = true
			b.Count++
			s.collected = append(s.collected, ge)
			return false
		})
		return true
	})

	for i, n := 0, reg.RemoveGrains(s.collected); i < n; i++ {
		ctx.Effects.PushSound(core.SoundGrainAdded, ctx.Frame())
	}

	reg.Buckets.Each(func(be core.Entity, b *component.BucketComponent) bool {
		if b.Exploded || !b.Full() {
			return true
		}
		b.Exploded = true
		if err := reg.RemoveBucketWalls(be); err != nil {
			ctx.Logger.Warn("bucket walls", zap.Stringer("bucket", be), zap.Error(err))
		}
		ctx.Effects.PushSound(core.SoundBucketExplode, ctx.Frame())
		ctx.Logger.Debug("bucket exploded",
			zap.Stringer("bucket", be),
			zap.Int("count", b.Count),
			zap.Int("needed", b.NeededSugar))
		return true
	})
}

// AllExploded reports session completion: every bucket exploded, vacuously true for none
func AllExploded(reg *engine.Registry) bool {
	done := true
	reg.Buckets.Each(func(_ core.Entity, b *component.BucketComponent) bool {
		done = b.Exploded
		return done
	})
	return done
}
