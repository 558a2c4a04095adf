package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps the managed Gemini SDK for requests that attach local
// file bytes directly. Pre-fetched content goes through VertexClient.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a managed-SDK client. The API key is required.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// ExtractFunctionCall sends the prompt and attached parts with a forced
// function call and returns the arguments of the single expected invocation
// as canonical JSON text.
func (c *GeminiClient) ExtractFunctionCall(ctx context.Context, prompt string, parts []genai.Part, decl *genai.FunctionDeclaration) (string, error) {
	modelName := c.config.GetModel(RoleExtract)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for extraction")
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(DefaultTemperature)
	model.Tools = []*genai.Tool{{FunctionDeclarations: []*genai.FunctionDeclaration{decl}}}
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode:                 genai.FunctionCallingAny,
			AllowedFunctionNames: []string{decl.Name},
		},
	}

	allParts := append([]genai.Part{genai.Text(prompt)}, parts...)
	resp, err := model.GenerateContent(ctx, allParts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return FunctionCallJSON(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// FunctionCallJSON validates that an SDK response contains exactly one
// function invocation with non-empty arguments and returns the arguments
// serialized as JSON. Anything else is a *ResponseError; a missing call is
// never silently defaulted.
func FunctionCallJSON(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &ResponseError{Message: "expected a function call"}
	}

	calls := resp.Candidates[0].FunctionCalls()
	if len(calls) == 0 || len(calls[0].Args) == 0 {
		return "", &ResponseError{Message: "expected a function call"}
	}

	args, err := json.Marshal(calls[0].Args)
	if err != nil {
		return "", fmt.Errorf("failed to encode function call args: %w", err)
	}
	return string(args), nil
}
