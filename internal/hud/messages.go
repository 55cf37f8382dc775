package hud

import "time"

// MessageTTL is how long a status message stays on screen.
const MessageTTL = 5 * time.Second

type message struct {
	text string
	at   time.Time
}

// Messages keeps the last few status messages in a ring buffer so the HUD
// can show recent events (recording halted, texture reload failed, ...).
type Messages struct {
	buffer    []message
	nextIndex int
	count     int
}

func NewMessages(size int) *Messages {
	if size < 1 {
		size = 1
	}
	return &Messages{buffer: make([]message, size)}
}

// Add records text at time now, overwriting the oldest entry when full.
func (m *Messages) Add(text string, now time.Time) {
	m.buffer[m.nextIndex] = message{text: text, at: now}
	m.nextIndex++
	if m.nextIndex >= len(m.buffer) {
		m.nextIndex = 0
	}
	if m.count < len(m.buffer) {
		m.count++
	}
}

// Recent returns the messages younger than MessageTTL at now, oldest first.
func (m *Messages) Recent(now time.Time) []string {
	out := make([]string, 0, m.count)
	// Walk backwards from nextIndex - 1
	idx := m.nextIndex - 1
	for i := 0; i < m.count; i++ {
		if idx < 0 {
			idx = len(m.buffer) - 1
		}
		msg := m.buffer[idx]
		if now.Sub(msg.at) >= MessageTTL {
			break
		}
		out = append(out, msg.text)
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
