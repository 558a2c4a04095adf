// Package chat streams assistant replies for a permit-information
// conversation. It sends the full ordered history on every request and
// exposes the model's reply as an incremental sequence of text deltas.
package chat

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/jonathan/permit-navigator/internal/llm"
)

// Role identifies who produced a message.
type Role string

const (
	// RoleUser marks a human turn
	RoleUser Role = "user"
	// RoleModel marks an assistant turn
	RoleModel Role = "model"
)

// Message is one conversation turn: a role and its ordered text segments.
type Message struct {
	Role  Role     `json:"role"`
	Parts []string `json:"parts"`
}

// ErrRequestInFlight is returned when a stream is requested while a
// previous one is still open.
var ErrRequestInFlight = errors.New("a chat request is already in flight")

// ErrHistoryMustEndWithUser is returned when the supplied history is empty
// or does not end with a user turn.
var ErrHistoryMustEndWithUser = errors.New("chat history must end with a user turn")

// Streamer produces reply streams. A single-slot in-flight guard rejects a
// second call while a stream is open; the guard releases when the delta
// channel closes.
type Streamer struct {
	vertex   *llm.VertexClient
	inFlight atomic.Bool
	dropped  atomic.Int64
}

// NewStreamer creates a Streamer over the REST streaming endpoint.
func NewStreamer(vertex *llm.VertexClient) *Streamer {
	return &Streamer{vertex: vertex}
}

// Stream sends the history and returns a channel of text deltas for the
// model's reply, emitted in stream order. The channel closes when the
// upstream stream ends. Transport failures surface here, before any delta
// is produced; the caller's history slice is never mutated.
func (s *Streamer) Stream(ctx context.Context, history []Message) (<-chan string, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}

	if len(history) == 0 || history[len(history)-1].Role != RoleUser {
		s.inFlight.Store(false)
		return nil, ErrHistoryMustEndWithUser
	}

	reader, err := s.vertex.StreamGenerate(ctx, toContents(history))
	if err != nil {
		s.inFlight.Store(false)
		return nil, err
	}

	deltas := make(chan string)
	go func() {
		defer func() {
			s.dropped.Add(int64(reader.Dropped()))
			_ = reader.Close()
			// Release the guard before closing the channel so a caller
			// woken by the close can start the next stream immediately.
			s.inFlight.Store(false)
			close(deltas)
		}()

		for {
			delta, err := reader.Next()
			if err != nil {
				// io.EOF is the clean close; a read error ends the
				// stream the same way, since no mid-stream error path
				// exists in the contract.
				return
			}
			select {
			case deltas <- delta:
			case <-ctx.Done():
				return
			}
		}
	}()

	return deltas, nil
}

// Dropped reports the total number of malformed stream frames skipped
// across all completed streams. Diagnostic only; skipped frames never
// surface as errors.
func (s *Streamer) Dropped() int64 {
	return s.dropped.Load()
}

// toContents converts history to the wire shape. Roles other than model are
// sent as user, matching the two-role contract.
func toContents(history []Message) []llm.Content {
	contents := make([]llm.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == RoleModel {
			role = "model"
		}
		parts := make([]llm.Part, 0, len(msg.Parts))
		for _, text := range msg.Parts {
			parts = append(parts, llm.TextPart(text))
		}
		contents = append(contents, llm.Content{Role: role, Parts: parts})
	}
	return contents
}

// Collect drains a delta channel and returns the concatenated reply.
// Useful for callers that do not render increments.
func Collect(deltas <-chan string) string {
	var reply []byte
	for delta := range deltas {
		reply = append(reply, delta...)
	}
	return string(reply)
}
