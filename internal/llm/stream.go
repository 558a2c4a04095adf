// Package llm - stream.go decodes the SSE framing of streamGenerateContent
// responses into text increments.
package llm

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// dataPrefix marks an SSE frame carrying a JSON payload.
const dataPrefix = "data: "

// StreamReader reads text deltas from a text/event-stream response body.
//
// Frames that fail to parse as JSON (partial frames split across network
// reads) are dropped rather than buffered: the consumer concatenates deltas,
// and re-emitting a corrupt fragment would be worse than losing it. Dropped()
// reports how many frames were skipped.
type StreamReader struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	dropped int
}

// NewStreamReader wraps a streaming response body. The reader owns the body
// and closes it from Close.
func NewStreamReader(body io.ReadCloser) *StreamReader {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &StreamReader{body: body, scanner: scanner}
}

// Next returns the next non-empty text delta in stream order. It returns
// io.EOF when the upstream closes the stream.
func (r *StreamReader) Next() (string, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		var frame generateResponse
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, dataPrefix)), &frame); err != nil {
			r.dropped++
			continue
		}

		if text, ok := frame.firstText(); ok && text != "" {
			return text, nil
		}
	}

	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Dropped returns the number of malformed frames skipped so far.
func (r *StreamReader) Dropped() int {
	return r.dropped
}

// Close releases the underlying response body.
func (r *StreamReader) Close() error {
	return r.body.Close()
}
