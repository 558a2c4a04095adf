// Package extraction - prompt.go assembles the extraction system prompt.
package extraction

import (
	"fmt"
	"strings"

	"github.com/jonathan/permit-navigator/internal/prompts"
)

// BuildPrompt returns the fixed instruction template with per-custom-field
// instructions appended for every valid spec.
func BuildPrompt(specs []CustomSectionSpec) string {
	template := prompts.MustGet("extraction.json", "extract-permit-info")
	return template + customSectionInstructions(specs)
}

// customSectionInstructions lists each valid title/description pair under
// the custom-sections header. Specs filtered by ValidSpecs never appear in
// the prompt; duplicate titles are passed through as given.
func customSectionInstructions(specs []CustomSectionSpec) string {
	valid := ValidSpecs(specs)
	if len(valid) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n")
	sb.WriteString(prompts.MustGet("extraction.json", "custom-sections-header"))
	for _, s := range valid {
		sb.WriteString(fmt.Sprintf("- Title: %q, Description: %q\n", s.Title, s.Description))
	}
	return sb.String()
}
