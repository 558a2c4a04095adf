package chat

import "github.com/google/uuid"

// Session accumulates one conversation. History is append-only: turns are
// added at the end and never rewritten, so a stream already reading an
// older snapshot is unaffected.
type Session struct {
	ID      uuid.UUID
	history []Message
}

// NewSession starts an empty conversation with a fresh identity.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// Append adds one turn to the conversation.
func (s *Session) Append(role Role, text string) {
	s.history = append(s.history, Message{Role: role, Parts: []string{text}})
}

// History returns a copy of the conversation so far. Mutating the returned
// slice does not affect the session.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of turns in the conversation.
func (s *Session) Len() int {
	return len(s.history)
}
