package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/level"
)

// System is a per-tick update step over the game context
type System interface {
	Update(ctx *GameContext, dt time.Duration)
	Priority() int // Lower values run first
	Name() string
}

// GameContext bundles everything one session mutates
// Owned by the game loop goroutine, no field is safe for concurrent access
type GameContext struct {
	Registry *Registry
	State    *SessionState
	Clock    *PausableClock
	Effects  *EffectQueue
	Logger   *zap.Logger

	// Level currently loaded, nil before the first load and after GameWon
	Level *level.Level

	// FreezeTimersOnPause makes session timers follow game time instead of loop time
	FreezeTimersOnPause bool

	systems []System
}

// NewGameContext creates a context in the Intro phase
func NewGameContext(registry *Registry, logger *zap.Logger) *GameContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameContext{
		Registry: registry,
		State:    NewSessionState(),
		Clock:    NewPausableClock(),
		Effects:  NewEffectQueue(),
		Logger:   logger,
	}
}

// AddSystem registers a system keeping priority order; equal priorities keep insertion order
func (ctx *GameContext) AddSystem(system System) {
	ctx.systems = append(ctx.systems, system)
	for i := len(ctx.systems) - 1; i > 0 && ctx.systems[i-1].Priority() > ctx.systems[i].Priority(); i-- {
		ctx.systems[i-1], ctx.systems[i] = ctx.systems[i], ctx.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
func (ctx *GameContext) Systems() []System {
	result := make([]System, len(ctx.systems))
	copy(result, ctx.systems)
	return result
}

// RunSystems runs every system once in priority order
func (ctx *GameContext) RunSystems(dt time.Duration) {
	for _, s := range ctx.systems {
		s.Update(ctx, dt)
	}
}

// TimerNow returns the time line session timers are measured on
func (ctx *GameContext) TimerNow() time.Duration {
	if ctx.FreezeTimersOnPause {
		return ctx.Clock.Game()
	}
	return ctx.Clock.Real()
}

// SetPaused updates the session flag and the clock together
func (ctx *GameContext) SetPaused(paused bool) {
	ctx.State.Paused = paused
	if paused {
		ctx.Clock.Pause()
	} else {
		ctx.Clock.Resume()
	}
}

// Frame returns the tick number side effects are tagged with
func (ctx *GameContext) Frame() uint64 {
	return ctx.State.Tick
}
