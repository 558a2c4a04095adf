package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/jonathan/permit-navigator/internal/config"
	"github.com/jonathan/permit-navigator/internal/datastore"
	"github.com/jonathan/permit-navigator/internal/extraction"
	"github.com/jonathan/permit-navigator/internal/fetch"
)

// loadConfig layers configuration: CLI flag values win over environment
// variables, which win over the optional JSON config file.
func loadConfig(configPath, apiKeyFlag string, useBrowser, verbose bool) (*config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if useBrowser {
		cfg.UseBrowser = true
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildResolver picks the URL resolution path: the data-store proxy when an
// endpoint is configured, a direct fetch otherwise.
func buildResolver(cfg *config.Config) (datastore.Resolver, error) {
	if cfg.DataStoreEndpoint != "" {
		return datastore.NewClient(cfg.DataStoreEndpoint)
	}
	return fetch.NewDirectResolver(cfg.UseBrowser, cfg.Verbose), nil
}

// parseSectionSpecs parses --section flag values of the form
// "Title=Description" into custom section specs.
func parseSectionSpecs(raw []string) ([]extraction.CustomSectionSpec, error) {
	specs := make([]extraction.CustomSectionSpec, 0, len(raw))
	for _, entry := range raw {
		title, description, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("invalid --section value %q (expected Title=Description)", entry)
		}
		specs = append(specs, extraction.CustomSectionSpec{
			Title:       strings.TrimSpace(title),
			Description: strings.TrimSpace(description),
		})
	}
	return specs, nil
}

// mimeTypeForFile maps a local file extension to the attachment media type.
func mimeTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "text/plain"
	}
}

// readFileParts loads local files as SDK content parts: PDFs and images as
// inline blobs, everything else as text.
func readFileParts(paths []string) ([]genai.Part, error) {
	parts := make([]genai.Part, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		mimeType := mimeTypeForFile(path)
		if mimeType == "text/plain" {
			parts = append(parts, genai.Text(string(data)))
			continue
		}
		parts = append(parts, genai.Blob{MIMEType: mimeType, Data: data})
	}
	return parts, nil
}
