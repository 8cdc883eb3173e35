// Package engine holds the session state, entity registry and loop plumbing
// shared by the systems and the game controller.
//
// Side effects (sounds, transient messages) are not performed where they are
// decided. Systems push them onto the EffectQueue and the loop drains the
// queue once per frame after the simulation step, so the core never calls
// the audio or render collaborators directly.
package engine

import (
	"time"

	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/core"
)

// EventType represents the type of side-effect event
type EventType int

const (
	// EventSound requests a sound cue; Payload is SoundPayload
	EventSound EventType = iota
	// EventMessage shows transient text; Payload is MessagePayload
	EventMessage
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventSound:
		return "Sound"
	case EventMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

type SoundPayload struct {
	Sound core.SoundType
}

type MessagePayload struct {
	Text     string
	Duration time.Duration
}

// GameEvent is a single side-effect request tagged with the tick it was raised on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   uint64
}

// EffectQueue is a ring buffer of pending side effects
// When full the oldest event is overwritten
// Single producer and consumer, both on the game loop
type EffectQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   uint64
	tail   uint64
}

func NewEffectQueue() *EffectQueue {
	return &EffectQueue{}
}

// Push appends an event, dropping the oldest when full
func (q *EffectQueue) Push(ev GameEvent) {
	q.events[q.tail&constants.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > constants.EventQueueSize {
		q.head = q.tail - constants.EventQueueSize
	}
}

// PushSound is shorthand for an EventSound
func (q *EffectQueue) PushSound(s core.SoundType, frame uint64) {
	q.Push(GameEvent{Type: EventSound, Payload: SoundPayload{Sound: s}, Frame: frame})
}

// PushMessage is shorthand for an EventMessage
func (q *EffectQueue) PushMessage(text string, d time.Duration, frame uint64) {
	q.Push(GameEvent{Type: EventMessage, Payload: MessagePayload{Text: text, Duration: d}, Frame: frame})
}

// Consume returns pending events in push order and empties the queue
func (q *EffectQueue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		out = append(out, q.events[i&constants.EventBufferMask])
	}
	q.head = q.tail
	return out
}

// Len returns the number of pending events
func (q *EffectQueue) Len() int {
	return int(q.tail - q.head)
}
