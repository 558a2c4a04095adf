package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestFunctionCallJSON_Success(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{
					genai.FunctionCall{
						Name: "information_extractor",
						Args: map[string]any{"shortSummary": "x", "whoCanApply": []any{}},
					},
				},
			},
		}},
	}

	result, err := FunctionCallJSON(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))
	assert.Equal(t, "x", decoded["shortSummary"])
	assert.Equal(t, []any{}, decoded["whoCanApply"])
}

func TestFunctionCallJSON_NoFunctionCall(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("free text instead")},
			},
		}},
	}

	_, err := FunctionCallJSON(resp)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
}

func TestFunctionCallJSON_EmptyArgs(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.FunctionCall{Name: "information_extractor", Args: map[string]any{}}},
			},
		}},
	}

	_, err := FunctionCallJSON(resp)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
}

func TestFunctionCallJSON_NilResponse(t *testing.T) {
	_, err := FunctionCallJSON(nil)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)

	_, err = FunctionCallJSON(&genai.GenerateContentResponse{})
	require.ErrorAs(t, err, &respErr)
}
