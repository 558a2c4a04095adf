package extraction

import (
	"context"
	"sync/atomic"

	"github.com/google/generative-ai-go/genai"

	"github.com/jonathan/permit-navigator/internal/llm"
)

// Extractor issues structured-extraction requests. It holds no state across
// calls beyond a single-slot in-flight guard: a second call while one is
// outstanding is rejected with ErrRequestInFlight rather than queued.
type Extractor struct {
	sdk      *llm.GeminiClient
	vertex   *llm.VertexClient
	inFlight atomic.Bool
}

// NewExtractor creates an extractor over the two transports. Either client
// may be nil when the corresponding entry point is unused.
func NewExtractor(sdk *llm.GeminiClient, vertex *llm.VertexClient) *Extractor {
	return &Extractor{sdk: sdk, vertex: vertex}
}

// ExtractFromFiles sends locally attached file parts through the managed
// SDK and returns the function-call arguments as canonical JSON text.
func (e *Extractor) ExtractFromFiles(ctx context.Context, fileParts []genai.Part, specs []CustomSectionSpec) (string, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return "", ErrRequestInFlight
	}
	defer e.inFlight.Store(false)

	if len(fileParts) == 0 {
		return "", &InputError{Message: "at least one content part is required"}
	}

	prompt := BuildPrompt(specs)
	decl := GenAIDeclaration(DynamicSchema(specs))

	return e.sdk.ExtractFunctionCall(ctx, prompt, fileParts, decl)
}

// ExtractFromParts sends pre-fetched content parts (data-store text or
// base64 PDF) through the raw REST path and returns the function-call
// arguments as canonical JSON text.
func (e *Extractor) ExtractFromParts(ctx context.Context, parts []llm.Part, specs []CustomSectionSpec) (string, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return "", ErrRequestInFlight
	}
	defer e.inFlight.Store(false)

	if len(parts) == 0 {
		return "", &InputError{Message: "at least one content part is required"}
	}

	prompt := BuildPrompt(specs)
	tool := VertexTool(DynamicSchema(specs))

	contents := []llm.Content{{
		Role:  "user",
		Parts: append([]llm.Part{llm.TextPart(prompt)}, parts...),
	}}

	return e.vertex.ExtractFunctionCall(ctx, contents, tool, FunctionName)
}
