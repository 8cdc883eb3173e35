// Package game drives a Sugar Pop session: level loading, phase transitions,
// completion and restart, on top of the engine systems.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/component"
	"github.com/lixenwraith/sugar-pop/config"
	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/engine"
	"github.com/lixenwraith/sugar-pop/level"
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/systems"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// Loader returns the level with the given 1-based number
type Loader func(number int) (*level.Level, error)

// FileLoader loads levels from files named by pattern, 'X' replaced by the number
func FileLoader(pattern string) Loader {
	return func(number int) (*level.Level, error) {
		return level.Load(level.FileName(pattern, number))
	}
}

// Option configures a Controller
type Option func(*Controller)

// WithLoader replaces the file loader, used for in-memory level sets
func WithLoader(l Loader) Option {
	return func(c *Controller) { c.loader = l }
}

// Controller is the session state machine
// All methods must be called from the game loop goroutine
type Controller struct {
	ctx     *engine.GameContext
	game    config.GameConfig
	world   config.WorldConfig
	loader  Loader
	session string

	spawn *systems.SpawnSystem

	// Set when the level index was stepped back for a reload that has not fired yet
	reloadPending bool
}

// NewController builds a session in the Intro phase with the intro timer armed
func NewController(cfg *config.Config, world physics.World, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	session := uuid.NewString()
	logger = logger.With(zap.String("session", session))

	ctx := engine.NewGameContext(engine.NewRegistry(world), logger)
	ctx.FreezeTimersOnPause = cfg.Game.FreezeTimersOnPause
	// Intro fires index+1
	ctx.State.LevelIndex = cfg.Game.StartLevel - 1

	c := &Controller{
		ctx:     ctx,
		game:    cfg.Game,
		world:   cfg.World,
		loader:  FileLoader(cfg.Game.LevelPattern),
		session: session,
		spawn: systems.NewSpawnSystem(cfg.World.GrainRadius, physics.Material{
			Friction:    cfg.World.GrainFriction,
			Restitution: cfg.World.GrainRestitution,
		}),
	}
	for _, opt := range opts {
		opt(c)
	}

	ctx.AddSystem(systems.NewPhysicsSystem(cfg.Game.MaxTimeStep))
	ctx.AddSystem(systems.NewCollectSystem())
	ctx.AddSystem(c.spawn)
	ctx.AddSystem(systems.NewCullSystem(cfg.World.Width, cfg.World.Height))

	ctx.State.Timers.Arm(engine.TimerLoadLevel, ctx.TimerNow(), cfg.Game.IntroDelay)
	logger.Info("session created", zap.Int("start_level", cfg.Game.StartLevel))
	return c
}

// Context exposes the session for rendering and tests
func (c *Controller) Context() *engine.GameContext {
	return c.ctx
}

// SessionID returns the id every log line of this session carries
func (c *Controller) SessionID() string {
	return c.session
}

// Tick advances the session by one frame of elapsed loop time
func (c *Controller) Tick(elapsed time.Duration) {
	ctx := c.ctx
	ctx.Clock.Advance(elapsed)
	c.fireTimers()

	st := ctx.State
	if st.Phase != engine.PhasePlaying || st.Paused {
		return
	}

	ctx.RunSystems(elapsed)
	st.PlayTime += elapsed
	st.Tick++
	c.evaluate()
}

func (c *Controller) fireTimers() {
	for {
		id, ok := c.ctx.State.Timers.Next(c.ctx.TimerNow())
		if !ok {
			return
		}
		switch id {
		case engine.TimerLoadLevel:
			c.advance()
		case engine.TimerSpout:
			if c.ctx.State.Phase == engine.PhasePlaying {
				c.spawn.Activate(c.ctx)
			}
		}
	}
}

// evaluate checks completion, then the time limit
func (c *Controller) evaluate() {
	ctx := c.ctx
	st := ctx.State
	if c.reloadPending {
		return
	}
	now := ctx.TimerNow()

	if systems.AllExploded(ctx.Registry) {
		st.LevelComplete = true
		st.TransitionPhase(engine.PhaseLevelComplete, now)
		ctx.Effects.PushMessage(constants.MessageLevelComplete, constants.LevelCompleteMessageDuration, ctx.Frame())
		ctx.Effects.PushSound(core.SoundLevelComplete, ctx.Frame())
		st.Timers.Arm(engine.TimerLoadLevel, now, c.game.AdvanceDelay)
		ctx.Logger.Info("level complete",
			zap.Int("level", st.LevelIndex),
			zap.Duration("play_time", st.PlayTime),
			zap.Int("live_grains", ctx.Registry.Grains.CountEntities()))
		return
	}

	limit := ctx.Level.TimeToCompleteLevel
	if limit > 0 && st.PlayTime >= time.Duration(limit)*time.Second {
		st.TransitionPhase(engine.PhaseLevelFailed, now)
		ctx.Effects.PushMessage(constants.MessageTimeUp, constants.TimeUpMessageDuration, ctx.Frame())
		c.stepBack()
		st.Timers.Arm(engine.TimerLoadLevel, now, c.game.FailRestartDelay)
		ctx.Logger.Info("level failed", zap.Int("level", st.LevelIndex+1), zap.Int("limit_s", limit))
	}
}

// Restart reloads the current level after the restart delay
// Ignored before the first level has loaded
func (c *Controller) Restart() {
	st := c.ctx.State
	if st.Phase == engine.PhaseIntro {
		return
	}
	c.stepBack()
	st.Timers.Arm(engine.TimerLoadLevel, c.ctx.TimerNow(), c.game.RestartDelay)
	c.ctx.Logger.Debug("restart requested", zap.Int("level", st.LevelIndex+1))
}

// stepBack decrements the index once per pending reload, so the next advance lands on the same level
func (c *Controller) stepBack() {
	if c.reloadPending {
		return
	}
	c.ctx.State.LevelIndex--
	c.reloadPending = true
}

// TogglePause flips the pause flag
func (c *Controller) TogglePause() {
	ctx := c.ctx
	paused := !ctx.State.Paused
	ctx.SetPaused(paused)
	if paused {
		ctx.Effects.PushMessage(constants.MessagePaused, constants.PausedMessageDuration, ctx.Frame())
	}
	ctx.Logger.Debug("pause toggled", zap.Bool("paused", paused))
}

// advance moves to the next level index and loads it
func (c *Controller) advance() {
	st := c.ctx.State
	now := c.ctx.TimerNow()
	if st.Phase != engine.PhaseIntro {
		if !st.TransitionPhase(engine.PhaseAdvancing, now) {
			c.ctx.Logger.Warn("advance rejected", zap.Stringer("phase", st.Phase))
			return
		}
	}
	st.TransitionPhase(engine.PhaseLoadingLevel, now)
	st.LevelIndex++
	c.reloadPending = false
	c.load()
}

// load drops the previous generation and builds level LevelIndex
func (c *Controller) load() {
	ctx := c.ctx
	st := ctx.State
	now := ctx.TimerNow()

	ctx.Registry.Reset()
	st.ResetLevel()

	lvl, err := c.loader(st.LevelIndex)
	if err != nil {
		ctx.Level = nil
		switch {
		case errors.Is(err, level.ErrLevelNotFound):
			ctx.Logger.Info("no more levels", zap.Int("level", st.LevelIndex), zap.Error(err))
		case level.IsExhausted(err):
			ctx.Logger.Warn("unreadable level ends the session", zap.Int("level", st.LevelIndex), zap.Error(err))
		default:
			ctx.Logger.Error("level load failed", zap.Int("level", st.LevelIndex), zap.Error(err))
		}
		st.TransitionPhase(engine.PhaseGameWon, now)
		ctx.Effects.PushMessage(constants.MessageYouWin, constants.YouWinMessageDuration, ctx.Frame())
		ctx.Effects.PushSound(core.SoundLevelComplete, ctx.Frame())
		return
	}

	ctx.Level = lvl
	c.build(lvl)

	st.Timers.Arm(engine.TimerSpout, now, c.game.SpoutDelay)
	ctx.Effects.PushMessage(fmt.Sprintf(constants.MessageLevelStartFormat, st.LevelIndex),
		constants.LevelStartMessageDuration, ctx.Frame())
	st.TransitionPhase(engine.PhasePlaying, now)
	ctx.Logger.Info("level loaded",
		zap.Int("level", st.LevelIndex),
		zap.Int("grains", lvl.NumberSugarGrains),
		zap.Int("statics", len(lvl.Statics)),
		zap.Int("buckets", len(lvl.Buckets)),
		zap.Uint32("generation", ctx.Registry.Generation()))
}

// build creates boundary walls, statics and buckets for lvl
func (c *Controller) build(lvl *level.Level) {
	reg := c.ctx.Registry
	w, h := c.world.Width, c.world.Height
	wall := func(x1, y1, x2, y2, width float64) {
		reg.AddStatic(component.StaticComponent{
			A:           vmath.V(x1, y1),
			B:           vmath.V(x2, y2),
			Color:       constants.BoundaryColor,
			LineWidth:   width,
			Friction:    c.world.WallFriction,
			Restitution: c.world.WallRestitution,
		})
	}
	wall(0, 0, w, 0, constants.FloorLineWidth)
	wall(0, 0, 0, h, constants.BoundaryLineWidth)
	wall(w, 0, w, h, constants.BoundaryLineWidth)
	wall(0, h, w, h, constants.BoundaryLineWidth)

	for _, s := range lvl.Statics {
		reg.AddStatic(component.StaticComponent{
			A:           vmath.V(s.X1, s.Y1),
			B:           vmath.V(s.X2, s.Y2),
			Color:       s.Color,
			LineWidth:   s.LineWidth,
			Friction:    s.Friction,
			Restitution: s.Restitution,
		})
	}

	mat := physics.Material{Friction: c.world.WallFriction, Restitution: c.world.WallRestitution}
	for _, b := range lvl.Buckets {
		reg.AddBucket(vmath.RectXYWH(b.X, b.Y, b.Width, b.Height), b.NeededSugar, constants.BucketWallRadius, mat)
	}
}

// GrainsLeft returns how many grains the spout has yet to emit
func (c *Controller) GrainsLeft() int {
	if c.ctx.Level == nil {
		return 0
	}
	return c.ctx.Level.NumberSugarGrains - c.ctx.State.SpawnedGrains
}

// TimeLeft returns the remaining time limit; ok is false when the level has none
func (c *Controller) TimeLeft() (time.Duration, bool) {
	lvl := c.ctx.Level
	if lvl == nil || lvl.TimeToCompleteLevel <= 0 {
		return 0, false
	}
	left := time.Duration(lvl.TimeToCompleteLevel)*time.Second - c.ctx.State.PlayTime
	if left < 0 {
		left = 0
	}
	return left, true
}
