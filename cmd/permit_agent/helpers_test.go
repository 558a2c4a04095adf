package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/permit-navigator/internal/config"
	"github.com/jonathan/permit-navigator/internal/datastore"
	"github.com/jonathan/permit-navigator/internal/extraction"
	"github.com/jonathan/permit-navigator/internal/fetch"
)

func TestParseSectionSpecs(t *testing.T) {
	specs, err := parseSectionSpecs([]string{
		"Setback Rules=Distance required from the property line",
		"Height Limits = Maximum fence height ",
	})
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, extraction.CustomSectionSpec{
		Title:       "Setback Rules",
		Description: "Distance required from the property line",
	}, specs[0])
	assert.Equal(t, "Height Limits", specs[1].Title)
	assert.Equal(t, "Maximum fence height", specs[1].Description)
}

func TestParseSectionSpecs_MissingSeparator(t *testing.T) {
	_, err := parseSectionSpecs([]string{"just a title"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title=Description")
}

func TestParseSectionSpecs_Empty(t *testing.T) {
	specs, err := parseSectionSpecs(nil)
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestMimeTypeForFile(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"handout.pdf", "application/pdf"},
		{"site-plan.PNG", "image/png"},
		{"photo.jpeg", "image/jpeg"},
		{"notes.txt", "text/plain"},
		{"no-extension", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, mimeTypeForFile(tt.path))
		})
	}
}

func TestReadFileParts(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("permit notes"), 0644))
	pdfPath := filepath.Join(dir, "handout.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.7"), 0644))

	parts, err := readFileParts([]string{textPath, pdfPath})
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, genai.Text("permit notes"), parts[0])
	blob, ok := parts[1].(genai.Blob)
	require.True(t, ok)
	assert.Equal(t, "application/pdf", blob.MIMEType)
	assert.Equal(t, []byte("%PDF-1.7"), blob.Data)
}

func TestReadFileParts_MissingFile(t *testing.T) {
	_, err := readFileParts([]string{"/nonexistent/file.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestBuildResolver_ProxyWhenEndpointConfigured(t *testing.T) {
	resolver, err := buildResolver(&config.Config{
		DataStoreEndpoint: "https://proxy.example/resolve",
	})
	require.NoError(t, err)

	_, ok := resolver.(*datastore.Client)
	assert.True(t, ok)
}

func TestBuildResolver_DirectWhenNoEndpoint(t *testing.T) {
	resolver, err := buildResolver(&config.Config{})
	require.NoError(t, err)

	_, ok := resolver.(*fetch.DirectResolver)
	assert.True(t, ok)
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "env-key")

	cfg, err := loadConfig("", "flag-key", true, false)
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.True(t, cfg.UseBrowser)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_MissingAPIKeyFails(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	_, err := loadConfig("", "", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}
