package engine

import "time"

// GamePhase represents the current phase of the session state machine
type GamePhase int

const (
	PhaseIntro GamePhase = iota
	PhaseLoadingLevel
	PhasePlaying
	PhaseLevelComplete
	PhaseLevelFailed
	PhaseAdvancing
	PhaseGameWon
)

// String returns the name of the game phase for debugging
func (p GamePhase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseLoadingLevel:
		return "LoadingLevel"
	case PhasePlaying:
		return "Playing"
	case PhaseLevelComplete:
		return "LevelComplete"
	case PhaseLevelFailed:
		return "LevelFailed"
	case PhaseAdvancing:
		return "Advancing"
	case PhaseGameWon:
		return "GameWon"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseIntro:         {PhaseLoadingLevel},
	PhaseLoadingLevel:  {PhasePlaying, PhaseGameWon},
	PhasePlaying:       {PhaseLevelComplete, PhaseAdvancing, PhaseLevelFailed},
	PhaseLevelComplete: {PhaseAdvancing},
	PhaseLevelFailed:   {PhaseAdvancing},
	PhaseAdvancing:     {PhaseLoadingLevel},
	PhaseGameWon:       {PhaseAdvancing},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SessionState is the mutable per-session record owned by the game loop
type SessionState struct {
	LevelIndex    int // 0 before the first load
	Paused        bool
	SpoutActive   bool
	SpawnedGrains int
	LevelComplete bool

	Phase          GamePhase
	PhaseStartTime time.Duration // Loop time the phase was entered

	// Unpaused time spent in Playing for the current level
	PlayTime time.Duration
	// Unpaused ticks since level load, drives line sampling cadence
	Tick uint64

	Timers Timers
}

// NewSessionState returns the state before any level is loaded
func NewSessionState() *SessionState {
	return &SessionState{Phase: PhaseIntro}
}

// TransitionPhase moves to the target phase if the table allows it
func (s *SessionState) TransitionPhase(to GamePhase, now time.Duration) bool {
	if !CanTransition(s.Phase, to) {
		return false
	}
	s.Phase = to
	s.PhaseStartTime = now
	return true
}

// ResetLevel clears per-level counters before a load
func (s *SessionState) ResetLevel() {
	s.SpoutActive = false
	s.SpawnedGrains = 0
	s.LevelComplete = false
	s.PlayTime = 0
	s.Tick = 0
	s.Timers.Disarm(TimerSpout)
}
