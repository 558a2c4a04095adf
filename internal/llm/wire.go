// Package llm - wire.go defines the JSON shapes exchanged with the Vertex AI
// REST API. The managed SDK path carries its own types; these exist only for
// the raw HTTP path.
package llm

// Part is one unit of model input: inline text or inline base64 binary
// tagged with a media type. Exactly one of the fields is set.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded binary content.
type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// TextPart builds an inline text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// DataPart builds an inline binary part from already-encoded base64 data.
func DataPart(mimeType, base64Data string) Part {
	return Part{InlineData: &InlineData{MIMEType: mimeType, Data: base64Data}}
}

// Content is one conversation turn.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// SchemaNode is the string-typed schema representation the REST API expects
// ("string"/"array"/"object" tags rather than the SDK's enum).
type SchemaNode struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*SchemaNode `json:"properties,omitempty"`
	Items       *SchemaNode            `json:"items,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// FunctionDeclaration describes one callable function offered to the model.
type FunctionDeclaration struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Parameters  *SchemaNode `json:"parameters"`
}

// Tool wraps the function declarations for the tools request field.
type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

// ToolConfig forces or forbids function calling.
type ToolConfig struct {
	FunctionCallingConfig *FunctionCallingConfig `json:"functionCallingConfig,omitempty"`
}

// FunctionCallingConfig restricts which functions the model may call.
// Mode "ANY" with a single allowed name forbids free-text replies.
type FunctionCallingConfig struct {
	Mode                 string   `json:"mode"`
	AllowedFunctionNames []string `json:"allowedFunctionNames,omitempty"`
}

// GenerationConfig carries sampling parameters.
type GenerationConfig struct {
	Temperature float32 `json:"temperature"`
}

// generateRequest is the body of a :generateContent or
// :streamGenerateContent POST.
type generateRequest struct {
	Contents         []Content         `json:"contents"`
	Tools            []Tool            `json:"tools,omitempty"`
	ToolConfig       *ToolConfig       `json:"toolConfig,omitempty"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// FunctionCall is the structured-output invocation returned by the model.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// candidatePart uses a pointer for Text so a missing field can be told apart
// from an empty string when validating response shape.
type candidatePart struct {
	Text         *string       `json:"text,omitempty"`
	FunctionCall *FunctionCall `json:"functionCall,omitempty"`
}

type candidateContent struct {
	Parts []candidatePart `json:"parts"`
}

type candidate struct {
	Content *candidateContent `json:"content"`
}

// generateResponse is the body of a non-streaming response and of each SSE
// data frame on the streaming path.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// firstText returns candidates[0].content.parts[0].text and whether the
// field was present as a string at all.
func (r *generateResponse) firstText() (string, bool) {
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil || len(r.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	text := r.Candidates[0].Content.Parts[0].Text
	if text == nil {
		return "", false
	}
	return *text, true
}

// firstFunctionCall returns candidates[0].content.parts[0].functionCall.
func (r *generateResponse) firstFunctionCall() *FunctionCall {
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil || len(r.Candidates[0].Content.Parts) == 0 {
		return nil
	}
	return r.Candidates[0].Content.Parts[0].FunctionCall
}
