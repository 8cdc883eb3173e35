package engine

import (
	"testing"
)

// TestCanTransition tests the phase transition validation logic
func TestCanTransition(t *testing.T) {
	valid := map[GamePhase][]GamePhase{
		PhaseIntro:         {PhaseLoadingLevel},
		PhaseLoadingLevel:  {PhasePlaying, PhaseGameWon},
		PhasePlaying:       {PhaseLevelComplete, PhaseAdvancing, PhaseLevelFailed},
		PhaseLevelComplete: {PhaseAdvancing},
		PhaseLevelFailed:   {PhaseAdvancing},
		PhaseAdvancing:     {PhaseLoadingLevel},
		PhaseGameWon:       {PhaseAdvancing},
	}

	for from, tos := range valid {
		for _, to := range tos {
			if !CanTransition(from, to) {
				t.Errorf("Expected transition %s -> %s to be valid, but it was rejected", from, to)
			} else {
				t.Logf("✓ Valid transition: %s -> %s", from, to)
			}
		}
	}

	invalid := []struct {
		from, to GamePhase
		desc     string
	}{
		{PhaseIntro, PhasePlaying, "Intro -> Playing (must load first)"},
		{PhasePlaying, PhaseLoadingLevel, "Playing -> LoadingLevel (must go through Advancing)"},
		{PhaseLevelComplete, PhasePlaying, "LevelComplete -> Playing (can't go backwards)"},
		{PhaseGameWon, PhasePlaying, "GameWon -> Playing (must reload)"},
		{PhaseAdvancing, PhaseGameWon, "Advancing -> GameWon (only a failed load wins)"},
		{PhasePlaying, PhaseIntro, "Playing -> Intro (intro shown once)"},
	}
	for _, tc := range invalid {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be invalid (%s)", tc.from, tc.to, tc.desc)
		} else {
			t.Logf("✓ Correctly rejected invalid transition: %s", tc.desc)
		}
	}
}

// TestTransitionPhase walks a full level cycle
func TestTransitionPhase(t *testing.T) {
	s := NewSessionState()
	if s.Phase != PhaseIntro {
		t.Fatalf("Expected initial phase Intro, got %s", s.Phase)
	}

	steps := []GamePhase{
		PhaseLoadingLevel, PhasePlaying, PhaseLevelComplete,
		PhaseAdvancing, PhaseLoadingLevel, PhaseGameWon,
	}
	for i, to := range steps {
		if !s.TransitionPhase(to, 0) {
			t.Fatalf("step %d: transition to %s rejected from %s", i, to, s.Phase)
		}
	}
	t.Logf("✓ Intro -> ... -> GameWon")

	if s.TransitionPhase(PhasePlaying, 0) {
		t.Error("GameWon -> Playing accepted")
	}
	if s.Phase != PhaseGameWon {
		t.Errorf("rejected transition changed phase to %s", s.Phase)
	}
}

func TestTransitionRecordsStartTime(t *testing.T) {
	s := NewSessionState()
	s.TransitionPhase(PhaseLoadingLevel, 1500)
	if s.PhaseStartTime != 1500 {
		t.Errorf("PhaseStartTime = %v", s.PhaseStartTime)
	}
}

func TestResetLevel(t *testing.T) {
	s := NewSessionState()
	s.SpoutActive = true
	s.SpawnedGrains = 12
	s.LevelComplete = true
	s.PlayTime = 99
	s.Tick = 7
	s.Timers.Arm(TimerSpout, 0, 10)
	s.Timers.Arm(TimerLoadLevel, 0, 10)

	s.ResetLevel()
	if s.SpoutActive || s.SpawnedGrains != 0 || s.LevelComplete || s.PlayTime != 0 || s.Tick != 0 {
		t.Errorf("counters not reset: %+v", s)
	}
	if s.Timers.Armed(TimerSpout) {
		t.Error("spout timer survived reset")
	}
	if !s.Timers.Armed(TimerLoadLevel) {
		t.Error("load timer must survive level reset")
	}
}
