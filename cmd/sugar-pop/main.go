package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/audio"
	"github.com/lixenwraith/sugar-pop/config"
	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/engine"
	"github.com/lixenwraith/sugar-pop/game"
	"github.com/lixenwraith/sugar-pop/input"
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/render"
	"github.com/lixenwraith/sugar-pop/vmath"
)

var (
	configFlag = flag.String("config", "config/sugar-pop.toml", "Path to the TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs and show FPS")
	levelFlag  = flag.Int("level", 0, "First level to play (overrides config)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Logging.Debug = true
		cfg.Logging.Level = "debug"
	}
	if *levelFlag > 0 {
		cfg.Game.StartLevel = *levelFlag
	}

	logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio.Volume, logger)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer sound.Cleanup()

	space := physics.NewSpace(vmath.V(0, cfg.World.Gravity), cfg.World.Iterations)
	ctrl := game.NewController(cfg, space, logger)

	a := &app{
		cfg:      cfg,
		screen:   screen,
		ctrl:     ctrl,
		input:    game.NewInputController(ctrl),
		renderer: render.NewTerminalRenderer(screen, cfg.World.Width, cfg.World.Height),
		sound:    sound,
		logger:   logger,
	}
	a.machine = input.NewMachine(a.renderer.Viewport())
	a.run()
	logger.Info("session ended", zap.String("session", ctrl.SessionID()))
}

// app owns the loop goroutine's collaborators
type app struct {
	cfg      *config.Config
	screen   tcell.Screen
	ctrl     *game.Controller
	input    *game.InputController
	machine  *input.Machine
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	logger   *zap.Logger

	fps float64
}

func (a *app) run() {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.Game.FPS))
	defer ticker.Stop()
	frames := engine.NewFrameTimer(engine.NewMonotonicTimeProvider())

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.frame(frames.Lap())
		}
	}
}

// handle applies one terminal event; returns false on quit
func (a *app) handle(ev tcell.Event) bool {
	in := a.machine.Process(ev)
	if in == nil {
		return true
	}
	if in.Type == input.IntentResize {
		a.screen.Sync()
		a.renderer.Resize(in.Width, in.Height)
		a.machine.SetViewport(a.renderer.Viewport())
		return true
	}
	return a.input.Handle(in)
}

func (a *app) frame(elapsed time.Duration) {
	a.input.Update()
	a.ctrl.Tick(elapsed)

	ctx := a.ctrl.Context()
	game.DispatchEffects(ctx, a.sound, a.renderer.Messages)

	if elapsed > 0 {
		// Exponential smoothing keeps the readout stable
		a.fps = 0.9*a.fps + 0.1*(float64(time.Second)/float64(elapsed))
	}
	left, limited := a.ctrl.TimeLeft()
	a.renderer.RenderFrame(ctx, render.HUD{
		Level:      ctx.State.LevelIndex,
		GrainsLeft: a.ctrl.GrainsLeft(),
		TimeLeft:   left,
		HasLimit:   limited,
		Paused:     ctx.State.Paused,
		Drawing:    a.input.Drawing(),
		ShowFPS:    a.cfg.Logging.Debug,
		FPS:        a.fps,
	})
}
