package llm

import "fmt"

// TransportError represents a failed HTTP exchange with the inference
// endpoint: a network failure or a non-2xx status. The response body is
// carried verbatim so the caller can surface it.
type TransportError struct {
	Status int
	Body   string
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request to Vertex AI failed: %v", e.Cause)
	}
	return fmt.Sprintf("Vertex AI returned status %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ResponseError represents a response that arrived but does not have the
// expected shape, e.g. a missing function call or text field. It is never
// retried; the payload the model actually produced is lost by definition.
type ResponseError struct {
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("invalid response structure: %s", e.Message)
}
