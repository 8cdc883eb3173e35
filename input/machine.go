package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// Machine parses tcell events into Intents
// Tracks left-button state so press, drag and release map to distinct intents
type Machine struct {
	viewport core.Viewport
	leftDown bool
}

// NewMachine creates a parser mapping cells through vp
func NewMachine(vp core.Viewport) *Machine {
	return &Machine{viewport: vp}
}

// SetViewport updates the cell to world mapping after a resize
func (m *Machine) SetViewport(vp core.Viewport) {
	m.viewport = vp
}

// Process parses a terminal event and returns an Intent
// Returns nil for events the game ignores
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return &Intent{Type: IntentPause}
		case 'r', 'R':
			return &Intent{Type: IntentRestart}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	cx, cy := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	var typ IntentType
	switch {
	case down && !m.leftDown:
		// Presses outside the play area are ignored
		if !m.viewport.Contains(cx, cy) {
			return nil
		}
		typ = IntentMouseDown
	case !down && m.leftDown:
		typ = IntentMouseUp
	default:
		typ = IntentMouseMove
	}
	m.leftDown = down

	return &Intent{
		Type:   typ,
		Pos:    vmath.V(m.viewport.ToWorld(cx, cy)),
		AtEdge: !m.viewport.Contains(cx, cy) || m.viewport.AtEdge(cx, cy),
	}
}
