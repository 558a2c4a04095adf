// Package llm provides the Gemini transport layer: a managed-SDK client for
// inline file attachments, a raw Vertex AI REST client for pre-fetched
// content, and an SSE reader for streaming chat.
package llm

import "fmt"

// ModelRole selects which configured model a request uses.
type ModelRole string

const (
	// RoleExtract is the model used for structured information extraction
	RoleExtract ModelRole = "extract"
	// RoleChat is the model used for streaming chat
	RoleChat ModelRole = "chat"
	// RoleImage is the model used for image analysis
	RoleImage ModelRole = "image"
)

// DefaultTemperature is applied to every request; extraction and chat both
// run at 0.5 to keep answers grounded without being fully deterministic.
const DefaultTemperature float32 = 0.5

// Config holds the project addressing and model selection for Vertex AI.
type Config struct {
	ProjectID string
	Location  string
	Models    map[ModelRole]string
}

// DefaultConfig returns the default Vertex AI configuration.
func DefaultConfig() *Config {
	return &Config{
		ProjectID: "vertex-ai-poc-406419",
		Location:  "us-central1",
		Models: map[ModelRole]string{
			RoleExtract: "gemini-3-pro-preview",
			RoleChat:    "gemini-3-pro-preview",
			RoleImage:   "gemini-3-pro-image-preview",
		},
	}
}

// GetModel returns the model name for a role, falling back to the extract
// model when the role has no explicit entry.
func (c *Config) GetModel(role ModelRole) string {
	if model, ok := c.Models[role]; ok {
		return model
	}
	if model, ok := c.Models[RoleExtract]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a role.
func (c *Config) WithModel(role ModelRole, model string) *Config {
	newConfig := &Config{
		ProjectID: c.ProjectID,
		Location:  c.Location,
		Models:    make(map[ModelRole]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[role] = model
	return newConfig
}

// Endpoint builds the versioned Vertex AI inference URL for a model.
// Streaming requests use the streamGenerateContent action with SSE framing.
func (c *Config) Endpoint(model string, stream bool, apiKey string) string {
	action := ":generateContent"
	if stream {
		action = ":streamGenerateContent"
	}
	url := fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s%s?key=%s",
		c.Location, c.ProjectID, c.Location, model, action, apiKey,
	)
	if stream {
		url += "&alt=sse"
	}
	return url
}
