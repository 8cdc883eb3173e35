package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/engine"
)

// SoundPlayer plays a sound cue without blocking
type SoundPlayer interface {
	Play(core.SoundType)
}

// MessageSink shows transient text until now+d on the loop clock
type MessageSink interface {
	Show(text string, now, d time.Duration)
}

// DispatchEffects drains the context's effect queue into the collaborators
// Either collaborator may be nil
func DispatchEffects(ctx *engine.GameContext, sound SoundPlayer, messages MessageSink) {
	now := ctx.Clock.Real()
	for _, ev := range ctx.Effects.Consume() {
		switch p := ev.Payload.(type) {
		case engine.SoundPayload:
			if sound != nil {
				sound.Play(p.Sound)
			}
		case engine.MessagePayload:
			if messages != nil {
				messages.Show(p.Text, now, p.Duration)
			}
		default:
			ctx.Logger.Warn("unknown effect", zap.Stringer("type", ev.Type))
		}
	}
}
