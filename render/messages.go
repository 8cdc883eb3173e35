package render

import "time"

// MessageBoard holds the transient message; a newer message replaces the current one
type MessageBoard struct {
	text    string
	expires time.Duration
}

func NewMessageBoard() *MessageBoard {
	return &MessageBoard{}
}

// Show displays text until now+d
func (m *MessageBoard) Show(text string, now, d time.Duration) {
	m.text = text
	m.expires = now + d
}

// Current returns the visible message at now
func (m *MessageBoard) Current(now time.Duration) (string, bool) {
	if m.text == "" || now >= m.expires {
		return "", false
	}
	return m.text, true
}
