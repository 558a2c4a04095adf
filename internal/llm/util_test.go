package llm

import "testing"

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "code block with language tag",
			input:    "```javascript\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "unfenced JSON unchanged",
			input:    `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{\"a\":1}\n```\n ",
			expected: `{"a":1}`,
		},
		{
			name:     "plain text unchanged",
			input:    "not json at all",
			expected: "not json at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
