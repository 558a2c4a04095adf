package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/permit-navigator/internal/llm"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_key": "test-key",
		"data_store_endpoint": "https://proxy.example/resolve",
		"extract_model": "gemini-custom",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://proxy.example/resolve", cfg.DataStoreEndpoint)
	assert.Equal(t, "gemini-custom", cfg.ExtractModel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvLocation, "europe-west4")
	t.Setenv(EnvChatModel, "gemini-chat-override")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "europe-west4", cfg.Location)
	assert.Equal(t, "gemini-chat-override", cfg.ChatModel)
	assert.Empty(t, cfg.ProjectID)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestValidate_BadEndpoint(t *testing.T) {
	cfg := &Config{
		APIKey:            "test-key",
		DataStoreEndpoint: "not a url",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data_store_endpoint")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		APIKey:            "test-key",
		DataStoreEndpoint: "https://proxy.example/resolve",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIKey:    "file-key",
		ProjectID: "file-project",
		ChatModel: "file-chat-model",
	}

	partial := Config{
		APIKey:   "env-key",
		Location: "us-west1",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Values already set win
	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, "us-west1", merged.Location)

	// Defaults fill in empty fields
	assert.Equal(t, "file-project", merged.ProjectID)
	assert.Equal(t, "file-chat-model", merged.ChatModel)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		APIKey: "test-key",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "test-key", merged.APIKey)
}

func TestLLM_AppliesOverrides(t *testing.T) {
	cfg := &Config{
		APIKey:     "test-key",
		ProjectID:  "my-project",
		ChatModel:  "gemini-chat-override",
		ImageModel: "gemini-image-override",
	}

	llmCfg := cfg.LLM()
	assert.Equal(t, "my-project", llmCfg.ProjectID)
	assert.Equal(t, "us-central1", llmCfg.Location)
	assert.Equal(t, "gemini-chat-override", llmCfg.GetModel(llm.RoleChat))
	assert.Equal(t, "gemini-image-override", llmCfg.GetModel(llm.RoleImage))
	assert.Equal(t, "gemini-3-pro-preview", llmCfg.GetModel(llm.RoleExtract))
}

func TestLLM_Defaults(t *testing.T) {
	cfg := &Config{APIKey: "test-key"}

	llmCfg := cfg.LLM()
	assert.Equal(t, llm.DefaultConfig().ProjectID, llmCfg.ProjectID)
	assert.Equal(t, "gemini-3-pro-preview", llmCfg.GetModel(llm.RoleChat))
}
