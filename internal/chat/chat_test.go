package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/permit-navigator/internal/llm"
)

func sseFrame(text string) string {
	return `data: {"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}` + "\n"
}

func newTestStreamer(t *testing.T, handler http.HandlerFunc) *Streamer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	vertex, err := llm.NewVertexClient(llm.DefaultConfig(), "test-key")
	require.NoError(t, err)
	vertex.SetBaseURL(server.URL)
	return NewStreamer(vertex)
}

func userTurn(text string) Message {
	return Message{Role: RoleUser, Parts: []string{text}}
}

func TestStream_ConcatenationMatchesValidFrames(t *testing.T) {
	streamer := newTestStreamer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(
			sseFrame("A permit ") +
				"data: {broken json\n" +
				sseFrame("is required ") +
				"data: {\"candidates\":[{\"content\n" +
				sseFrame("for fences.")))
	})

	deltas, err := streamer.Stream(context.Background(), []Message{userTurn("Do I need a permit?")})
	require.NoError(t, err)

	assert.Equal(t, "A permit is required for fences.", Collect(deltas))
	assert.Equal(t, int64(2), streamer.Dropped())
}

func TestStream_SendsHistoryInOrder(t *testing.T) {
	var gotBody map[string]any
	streamer := newTestStreamer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(sseFrame("ok")))
	})

	history := []Message{
		userTurn("first question"),
		{Role: RoleModel, Parts: []string{"first answer"}},
		userTurn("second question"),
	}
	deltas, err := streamer.Stream(context.Background(), history)
	require.NoError(t, err)
	Collect(deltas)

	contents := gotBody["contents"].([]any)
	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].(map[string]any)["role"])
	assert.Equal(t, "model", contents[1].(map[string]any)["role"])
	assert.Equal(t, "user", contents[2].(map[string]any)["role"])
	assert.InDelta(t, 0.5, gotBody["generationConfig"].(map[string]any)["temperature"], 1e-6)

	// The caller's history is untouched.
	assert.Equal(t, []string{"first question"}, history[0].Parts)
}

func TestStream_TransportErrorBeforeAnyDelta(t *testing.T) {
	streamer := newTestStreamer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	deltas, err := streamer.Stream(context.Background(), []Message{userTurn("hi")})
	assert.Nil(t, deltas)

	var transportErr *llm.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadGateway, transportErr.Status)

	// The guard released; the next call is accepted.
	_, err = streamer.Stream(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrHistoryMustEndWithUser))
}

func TestStream_HistoryMustEndWithUserTurn(t *testing.T) {
	streamer := NewStreamer(nil)

	_, err := streamer.Stream(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrHistoryMustEndWithUser))

	_, err = streamer.Stream(context.Background(), []Message{
		userTurn("q"),
		{Role: RoleModel, Parts: []string{"a"}},
	})
	assert.True(t, errors.Is(err, ErrHistoryMustEndWithUser))
}

func TestStream_SecondCallRejectedWhileOpen(t *testing.T) {
	release := make(chan struct{})
	streamer := newTestStreamer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(sseFrame("start")))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-release
		_, _ = w.Write([]byte(sseFrame(" end")))
	})

	deltas, err := streamer.Stream(context.Background(), []Message{userTurn("hi")})
	require.NoError(t, err)

	first := <-deltas
	assert.Equal(t, "start", first)

	_, err = streamer.Stream(context.Background(), []Message{userTurn("again")})
	assert.True(t, errors.Is(err, ErrRequestInFlight))

	close(release)
	assert.Equal(t, " end", Collect(deltas))

	// Stream closed, guard released.
	streamer2Deltas, err := streamer.Stream(context.Background(), []Message{userTurn("third")})
	require.NoError(t, err)
	Collect(streamer2Deltas)
}

func TestSession_AppendAndCopy(t *testing.T) {
	session := NewSession()
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", session.ID.String())
	assert.Equal(t, 0, session.Len())

	session.Append(RoleUser, "hello")
	session.Append(RoleModel, "hi there")

	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, []string{"hi there"}, history[1].Parts)

	history[0] = Message{Role: RoleModel, Parts: []string{"overwritten"}}
	assert.Equal(t, RoleUser, session.History()[0].Role)
}
