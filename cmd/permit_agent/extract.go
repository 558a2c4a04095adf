package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/permit-navigator/internal/config"
	"github.com/jonathan/permit-navigator/internal/datastore"
	"github.com/jonathan/permit-navigator/internal/extraction"
	"github.com/jonathan/permit-navigator/internal/llm"
	"github.com/jonathan/permit-navigator/internal/observability"
	"github.com/jonathan/permit-navigator/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured permit information from documents or URLs",
	Long:  "Extract structured permit information from local files (PDF or text) or from public URLs, producing a fixed-shape JSON record plus any requested custom sections.",
	RunE:  runExtract,
}

var (
	extractFiles      []string
	extractURLs       []string
	extractSections   []string
	extractOutputFile string
	extractConfigPath string
	extractAPIKey     string
	extractUseBrowser bool
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringSliceVarP(&extractFiles, "file", "f", nil, "Local file to extract from (repeatable)")
	extractCmd.Flags().StringSliceVarP(&extractURLs, "url", "u", nil, "Public URL to extract from (repeatable)")
	extractCmd.Flags().StringSliceVarP(&extractSections, "section", "s", nil, "Custom section as Title=Description (repeatable)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to JSON config file")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Render script-heavy pages in a headless browser")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if len(extractFiles) > 0 && len(extractURLs) > 0 {
		return fmt.Errorf("cannot use --file with --url")
	}
	if len(extractFiles) == 0 && len(extractURLs) == 0 {
		return fmt.Errorf("must provide at least one --file or --url")
	}

	specs, err := parseSectionSpecs(extractSections)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(extractConfigPath, extractAPIKey, extractUseBrowser, extractVerbose)
	if err != nil {
		return err
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stdout)

	var argsJSON string
	if len(extractFiles) > 0 {
		argsJSON, err = extractFromLocalFiles(ctx, cfg.LLM(), cfg.APIKey, specs)
	} else {
		argsJSON, err = extractFromURLs(ctx, cfg, specs, printer)
	}
	if err != nil {
		return err
	}

	content, err := extraction.ParseResult(argsJSON)
	if err != nil {
		return fmt.Errorf("failed to parse extraction result: %w", err)
	}

	if err := schemas.ValidateExtractedContent(argsJSON); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("extraction result does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate result against schema: %v\n", err)
	}

	jsonBytes, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if extractOutputFile != "" {
		if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	if cfg.Verbose {
		printer.PrintExtractedContent(content)
		printer.PrintTimeline(content.ProcessTimeline)
		printer.PrintCustomSections(content.CustomSections)
	}

	return nil
}

// extractFromLocalFiles attaches local file bytes through the managed SDK.
func extractFromLocalFiles(ctx context.Context, llmCfg *llm.Config, apiKey string, specs []extraction.CustomSectionSpec) (string, error) {
	parts, err := readFileParts(extractFiles)
	if err != nil {
		return "", err
	}

	sdk, err := llm.NewGeminiClient(ctx, llmCfg, apiKey)
	if err != nil {
		return "", err
	}
	defer func() { _ = sdk.Close() }()

	extractor := extraction.NewExtractor(sdk, nil)
	return extractor.ExtractFromFiles(ctx, parts, specs)
}

// extractFromURLs resolves URLs to content parts, then sends them through
// the raw REST path.
func extractFromURLs(ctx context.Context, cfg *config.Config, specs []extraction.CustomSectionSpec, printer *observability.Printer) (string, error) {
	resolver, err := buildResolver(cfg)
	if err != nil {
		return "", err
	}

	responses, err := datastore.ResolveAll(ctx, resolver, extractURLs)
	if err != nil {
		return "", err
	}
	if cfg.Verbose {
		printer.PrintResolvedSources(responses)
	}

	vertex, err := llm.NewVertexClient(cfg.LLM(), cfg.APIKey)
	if err != nil {
		return "", err
	}

	extractor := extraction.NewExtractor(nil, vertex)
	return extractor.ExtractFromParts(ctx, datastore.Parts(responses), specs)
}
