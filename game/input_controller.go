package game

import (
	"errors"

	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/engine"
	"github.com/lixenwraith/sugar-pop/input"
	"github.com/lixenwraith/sugar-pop/physics"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// InputController applies parsed intents to the session and samples drawn lines
type InputController struct {
	ctrl        *Controller
	sampleEvery uint64
	lineRadius  float64
	lineMat     physics.Material

	line     core.Entity // Line being drawn, NoEntity when the button is up
	held     bool
	sampling bool // Cleared once the pointer reaches the border
	cursor   vmath.Vec2
	frames   uint64
}

// NewInputController binds input handling to ctrl
func NewInputController(ctrl *Controller) *InputController {
	every := ctrl.game.LineSampleEvery
	if every <= 0 {
		every = constants.LineSampleEvery
	}
	return &InputController{
		ctrl:        ctrl,
		sampleEvery: uint64(every),
		lineRadius:  constants.DrawnLineRadius,
		lineMat: physics.Material{
			Friction:    ctrl.world.WallFriction,
			Restitution: ctrl.world.WallRestitution,
		},
	}
}

// Handle applies one intent; returns false when the player asked to quit
func (ic *InputController) Handle(in *input.Intent) bool {
	if in == nil {
		return true
	}
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentRestart:
		ic.release()
		ic.ctrl.Restart()
	case input.IntentPause:
		ic.ctrl.TogglePause()
	case input.IntentMouseDown:
		ic.press(in)
	case input.IntentMouseMove:
		if ic.held {
			ic.cursor = in.Pos
			if in.AtEdge {
				ic.sampling = false
			}
		}
	case input.IntentMouseUp:
		ic.release()
	}
	return true
}

func (ic *InputController) press(in *input.Intent) {
	ctx := ic.ctrl.ctx
	if ctx.Level == nil {
		return
	}
	ic.release()
	ic.line = ctx.Registry.BeginLine(in.Pos)
	ic.held = true
	ic.sampling = !in.AtEdge
	ic.cursor = in.Pos
}

func (ic *InputController) release() {
	if !ic.held {
		return
	}
	ctx := ic.ctrl.ctx
	if err := ctx.Registry.FinalizeLine(ic.line); err != nil && !errors.Is(err, engine.ErrStaleEntity) {
		ctx.Logger.Warn("finalize line", zap.Error(err))
	}
	ic.held = false
	ic.sampling = false
	ic.line = core.NoEntity
}

// Update runs once per frame and appends a vertex every sampleEvery frames while the button is held
func (ic *InputController) Update() {
	ic.frames++
	if !ic.held || !ic.sampling || ic.frames%ic.sampleEvery != 0 {
		return
	}
	reg := ic.ctrl.ctx.Registry
	l, ok := reg.Line(ic.line)
	if !ok {
		// Level reloaded under the pointer
		ic.held = false
		ic.line = core.NoEntity
		return
	}
	if l.Last() == ic.cursor {
		return
	}
	if err := reg.ExtendLine(ic.line, ic.cursor, ic.lineRadius, ic.lineMat); err != nil {
		ic.ctrl.ctx.Logger.Warn("extend line", zap.Error(err))
	}
}

// Drawing reports whether a line is being drawn
func (ic *InputController) Drawing() bool {
	return ic.held
}
