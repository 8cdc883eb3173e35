package engine

import "time"

// PausableClock tracks two time lines advanced by the loop each tick:
// real time always moves, game time stops while paused
// Owned by the game loop, not safe for concurrent use
type PausableClock struct {
	real time.Duration
	game time.Duration

	paused      bool
	totalPaused time.Duration
}

// NewPausableClock creates a clock with both time lines at zero
func NewPausableClock() *PausableClock {
	return &PausableClock{}
}

// Advance moves the clock forward by dt
func (pc *PausableClock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	pc.real += dt
	if pc.paused {
		pc.totalPaused += dt
		return
	}
	pc.game += dt
}

// Real returns loop time since start, unaffected by pause
func (pc *PausableClock) Real() time.Duration {
	return pc.real
}

// Game returns loop time minus paused time
func (pc *PausableClock) Game() time.Duration {
	return pc.game
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.paused = true
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative paused loop time
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	return pc.totalPaused
}
