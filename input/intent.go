package input

import "github.com/lixenwraith/sugar-pop/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit    // Escape, Ctrl+C, closed terminal
	IntentRestart // r / R
	IntentPause   // Space toggles
	IntentResize  // Terminal resize event

	IntentMouseDown // Left button pressed
	IntentMouseMove // Pointer moved, button state unchanged
	IntentMouseUp   // Left button released
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentRestart:
		return "Restart"
	case IntentPause:
		return "Pause"
	case IntentResize:
		return "Resize"
	case IntentMouseDown:
		return "MouseDown"
	case IntentMouseMove:
		return "MouseMove"
	case IntentMouseUp:
		return "MouseUp"
	default:
		return "None"
	}
}

// Intent is a parsed input action
type Intent struct {
	Type IntentType

	// Mouse intents only
	Pos    vmath.Vec2 // World position of the pointer cell center
	AtEdge bool       // Pointer is on the play-area border

	// Resize only
	Width, Height int
}
