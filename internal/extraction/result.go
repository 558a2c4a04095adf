package extraction

import (
	"encoding/json"

	"github.com/jonathan/permit-navigator/internal/llm"
)

// ParseResult decodes extraction output into an ExtractedContent. The text
// may be fenced in a markdown code block; fences are stripped before
// parsing. Malformed JSON after stripping is a hard failure; no partially
// filled result is returned.
func ParseResult(text string) (*ExtractedContent, error) {
	cleaned := llm.CleanJSONBlock(text)

	var content ExtractedContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, &ParseError{
			Message: "failed to parse extraction output as JSON",
			Cause:   err,
		}
	}
	return &content, nil
}
