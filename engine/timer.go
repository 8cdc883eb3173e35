package engine

import "time"

// TimerID names one of the session's software timers
type TimerID int

const (
	// TimerLoadLevel fires the next level load (intro, advance, restart)
	TimerLoadLevel TimerID = iota
	// TimerSpout starts grain spawning after a level loads
	TimerSpout

	timerCount
)

func (id TimerID) String() string {
	switch id {
	case TimerLoadLevel:
		return "load-level"
	case TimerSpout:
		return "spout"
	default:
		return "unknown"
	}
}

// Timer is a one-shot deadline on the session clock
type Timer struct {
	Deadline time.Duration
	Armed    bool
}

// Timers is the fixed set of session timers, checked once per tick
type Timers struct {
	slots [timerCount]Timer
}

// Arm (re)schedules id to fire delay after now
func (t *Timers) Arm(id TimerID, now, delay time.Duration) {
	t.slots[id] = Timer{Deadline: now + delay, Armed: true}
}

// Disarm cancels id, no-op if not armed
func (t *Timers) Disarm(id TimerID) {
	t.slots[id].Armed = false
}

// Armed reports whether id is pending
func (t *Timers) Armed(id TimerID) bool {
	return t.slots[id].Armed
}

// Remaining returns time until id fires, zero when expired or disarmed
func (t *Timers) Remaining(id TimerID, now time.Duration) time.Duration {
	s := t.slots[id]
	if !s.Armed || s.Deadline <= now {
		return 0
	}
	return s.Deadline - now
}

// Next disarms and returns the earliest expired timer
// Callers loop until ok is false; handlers that re-arm or cancel other timers
// are observed by the following call
func (t *Timers) Next(now time.Duration) (TimerID, bool) {
	best := TimerID(-1)
	for i := range t.slots {
		s := t.slots[i]
		if !s.Armed || s.Deadline > now {
			continue
		}
		if best < 0 || s.Deadline < t.slots[best].Deadline {
			best = TimerID(i)
		}
	}
	if best < 0 {
		return 0, false
	}
	t.slots[best].Armed = false
	return best, true
}

// Reset disarms every timer
func (t *Timers) Reset() {
	t.slots = [timerCount]Timer{}
}
