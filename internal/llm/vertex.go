// Package llm - vertex.go implements the raw REST path against the Vertex AI
// inference endpoints. Used for content that has already been fetched and
// decoded (data-store parts) and for image analysis; locally attached files
// go through the managed SDK client instead.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultHTTPTimeout bounds non-streaming REST calls. Streaming requests use
// a client without a timeout so a long reply is not cut off mid-stream.
const DefaultHTTPTimeout = 120 * time.Second

// VertexClient issues raw JSON requests to the Vertex AI REST API.
type VertexClient struct {
	config     *Config
	apiKey     string
	baseURL    string
	httpClient *http.Client
	streamHTTP *http.Client
}

// NewVertexClient creates a REST client for the configured project.
// The API key is required; its absence fails here rather than on first use.
func NewVertexClient(config *Config, apiKey string) (*VertexClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &VertexClient{
		config:     config,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
		streamHTTP: &http.Client{},
	}, nil
}

// Config returns the addressing configuration the client was built with.
func (c *VertexClient) Config() *Config {
	return c.config
}

// SetBaseURL redirects requests to an alternate host instead of the
// regional aiplatform endpoint. Used by tests and local proxies.
func (c *VertexClient) SetBaseURL(base string) {
	c.baseURL = base
}

// url resolves the request URL for a model, honoring the base override.
func (c *VertexClient) url(model string, stream bool) string {
	if c.baseURL == "" {
		return c.config.Endpoint(model, stream, c.apiKey)
	}
	action := ":generateContent"
	if stream {
		action = ":streamGenerateContent"
	}
	u := fmt.Sprintf("%s/v1/models/%s%s?key=%s", c.baseURL, model, action, c.apiKey)
	if stream {
		u += "&alt=sse"
	}
	return u
}

// ExtractFunctionCall sends contents with a forced function call and returns
// the arguments of the single expected invocation as canonical JSON text.
// A response without a function call, or one with empty arguments, is a
// *ResponseError.
func (c *VertexClient) ExtractFunctionCall(ctx context.Context, contents []Content, tool Tool, functionName string) (string, error) {
	body := generateRequest{
		Contents: contents,
		Tools:    []Tool{tool},
		ToolConfig: &ToolConfig{
			FunctionCallingConfig: &FunctionCallingConfig{
				Mode:                 "ANY",
				AllowedFunctionNames: []string{functionName},
			},
		},
		GenerationConfig: &GenerationConfig{Temperature: DefaultTemperature},
	}

	resp, err := c.post(ctx, c.config.GetModel(RoleExtract), body)
	if err != nil {
		return "", err
	}

	call := resp.firstFunctionCall()
	if call == nil || len(call.Args) == 0 {
		return "", &ResponseError{Message: "expected a function call"}
	}

	args, err := json.Marshal(call.Args)
	if err != nil {
		return "", fmt.Errorf("failed to encode function call args: %w", err)
	}
	return string(args), nil
}

// AnalyzeImage sends an inline image part followed by a text prompt to the
// image model and returns the text of the first candidate part. A response
// without a text string there is a *ResponseError.
func (c *VertexClient) AnalyzeImage(ctx context.Context, prompt string, imagePart Part) (string, error) {
	body := generateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{imagePart, TextPart(prompt)}},
		},
		GenerationConfig: &GenerationConfig{Temperature: DefaultTemperature},
	}

	resp, err := c.post(ctx, c.config.GetModel(RoleImage), body)
	if err != nil {
		return "", err
	}

	text, ok := resp.firstText()
	if !ok {
		return "", &ResponseError{Message: "expected text for image analysis"}
	}
	return text, nil
}

// StreamGenerate opens a streaming request for the chat model and returns a
// reader over the SSE response body. Transport failures (non-2xx, network
// error) are reported here, before any increment is produced.
func (c *VertexClient) StreamGenerate(ctx context.Context, contents []Content) (*StreamReader, error) {
	body := generateRequest{
		Contents:         contents,
		GenerationConfig: &GenerationConfig{Temperature: DefaultTemperature},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.url(c.config.GetModel(RoleChat), true)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.streamHTTP.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, &TransportError{Status: resp.StatusCode, Body: string(errBody)}
	}

	return NewStreamReader(resp.Body), nil
}

// post issues one non-streaming request and decodes the response envelope.
func (c *VertexClient) post(ctx context.Context, model string, body generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.url(model, false)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var decoded generateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, &ResponseError{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return &decoded, nil
}
