// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/permit-navigator/internal/llm"
)

// Environment variable names read by FromEnv. A .env file loaded in main
// populates these before the CLI runs.
const (
	EnvAPIKey            = "GEMINI_API_KEY"
	EnvProjectID         = "GCP_PROJECT_ID"
	EnvLocation          = "GCP_LOCATION"
	EnvDataStoreEndpoint = "DATA_STORE_ENDPOINT"
	EnvExtractModel      = "EXTRACT_MODEL"
	EnvChatModel         = "CHAT_MODEL"
	EnvImageModel        = "IMAGE_MODEL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields except the API key are optional; missing values use defaults or
// come from CLI flags.
type Config struct {
	// Credentials and endpoints
	APIKey            string `json:"api_key,omitempty" validate:"required"`
	ProjectID         string `json:"project_id,omitempty"`
	Location          string `json:"location,omitempty"`
	DataStoreEndpoint string `json:"data_store_endpoint,omitempty" validate:"omitempty,url"`

	// Model overrides
	ExtractModel string `json:"extract_model,omitempty"`
	ChatModel    string `json:"chat_model,omitempty"`
	ImageModel   string `json:"image_model,omitempty"`

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for script-rendered portals
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables.
func FromEnv() *Config {
	return &Config{
		APIKey:            os.Getenv(EnvAPIKey),
		ProjectID:         os.Getenv(EnvProjectID),
		Location:          os.Getenv(EnvLocation),
		DataStoreEndpoint: os.Getenv(EnvDataStoreEndpoint),
		ExtractModel:      os.Getenv(EnvExtractModel),
		ChatModel:         os.Getenv(EnvChatModel),
		ImageModel:        os.Getenv(EnvImageModel),
	}
}

// Validate checks that the configuration has valid values. The API key is
// the only required field; everything else has a default.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range errs {
				switch fieldErr.Field() {
				case "APIKey":
					return fmt.Errorf("config error: API key is required (set %s or 'api_key' in the config file)", EnvAPIKey)
				case "DataStoreEndpoint":
					return fmt.Errorf("config error: 'data_store_endpoint' must be a URL")
				}
			}
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled
// from defaults. This is used to layer a config file under environment
// values, and both under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ProjectID == "" {
		result.ProjectID = defaults.ProjectID
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.DataStoreEndpoint == "" {
		result.DataStoreEndpoint = defaults.DataStoreEndpoint
	}
	if result.ExtractModel == "" {
		result.ExtractModel = defaults.ExtractModel
	}
	if result.ChatModel == "" {
		result.ChatModel = defaults.ChatModel
	}
	if result.ImageModel == "" {
		result.ImageModel = defaults.ImageModel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLM converts the configuration into model client settings, applying
// project, location, and per-role model overrides over the defaults.
func (c *Config) LLM() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.ProjectID != "" {
		cfg.ProjectID = c.ProjectID
	}
	if c.Location != "" {
		cfg.Location = c.Location
	}
	if c.ExtractModel != "" {
		cfg = cfg.WithModel(llm.RoleExtract, c.ExtractModel)
	}
	if c.ChatModel != "" {
		cfg = cfg.WithModel(llm.RoleChat, c.ChatModel)
	}
	if c.ImageModel != "" {
		cfg = cfg.WithModel(llm.RoleImage, c.ImageModel)
	}
	return cfg
}
