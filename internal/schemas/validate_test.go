package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResult = `{
	"shortSummary": "A fence permit is required for fences over 6 feet.",
	"whoCanApply": ["Property owners", "Licensed contractors"],
	"associatedPermitsAndFees": [
		{"name": "Fence Permit", "link": "https://city.example/fees", "fee": "$150"}
	],
	"processTimeline": [
		{"step": "Application review", "duration": "2 weeks"}
	],
	"processSteps": ["Submit a site plan", "Pay the fee"],
	"departmentContact": "Planning Department, (555) 010-2000",
	"relatedResources": [
		{"title": "Fence Guide", "link": "https://city.example/guide", "description": "Handout"}
	],
	"whoIsInvolved": [
		{"department": "Planning", "link": "https://city.example/planning"}
	]
}`

func TestValidateExtractedContent_Valid(t *testing.T) {
	err := ValidateExtractedContent(validResult)
	assert.NoError(t, err)
}

func TestValidateExtractedContent_WithCustomSections(t *testing.T) {
	result := validResult[:len(validResult)-2] + `,
	"customSections": [
		{"title": "Setback Rules", "content": "Five feet from the property line."}
	]
}`

	err := ValidateExtractedContent(result)
	assert.NoError(t, err)
}

func TestValidateExtractedContent_MissingRequiredField(t *testing.T) {
	err := ValidateExtractedContent(`{"shortSummary": "only a summary"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "whoCanApply")
}

func TestValidateExtractedContent_WrongType(t *testing.T) {
	result := `{
		"shortSummary": "summary",
		"whoCanApply": "should be an array",
		"associatedPermitsAndFees": [],
		"processTimeline": [],
		"processSteps": [],
		"departmentContact": "Planning",
		"relatedResources": [],
		"whoIsInvolved": []
	}`

	err := ValidateExtractedContent(result)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "whoCanApply")
}

func TestValidateJSON_FileBased(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "result.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(validResult), 0644))
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(extractedContentSchema), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	err := ValidateJSON("/nonexistent/schema.json", "/nonexistent/result.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, validResult)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
