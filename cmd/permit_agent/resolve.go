package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/permit-navigator/internal/config"
	"github.com/jonathan/permit-navigator/internal/datastore"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve URLs to model-ready content",
	Long:  "Resolve public URLs to the content the extractor would see, without calling the model. Prints one JSON record per URL.",
	RunE:  runResolve,
}

var (
	resolveURLs       []string
	resolveConfigPath string
	resolveUseBrowser bool
	resolveVerbose    bool
)

func init() {
	resolveCmd.Flags().StringSliceVarP(&resolveURLs, "url", "u", nil, "URL to resolve (repeatable, required)")
	resolveCmd.Flags().StringVar(&resolveConfigPath, "config", "", "Path to JSON config file")
	resolveCmd.Flags().BoolVar(&resolveUseBrowser, "use-browser", false, "Render script-heavy pages in a headless browser")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "Print detailed progress information")
	_ = resolveCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	// Resolution needs no model credential, so the config is assembled
	// without the API key requirement.
	cfg := config.FromEnv()
	if resolveConfigPath != "" {
		fileCfg, err := config.LoadConfig(resolveConfigPath)
		if err != nil {
			return err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	if resolveUseBrowser {
		cfg.UseBrowser = true
	}
	if resolveVerbose {
		cfg.Verbose = true
	}

	resolver, err := buildResolver(cfg)
	if err != nil {
		return err
	}

	responses, err := datastore.ResolveAll(context.Background(), resolver, resolveURLs)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	for _, r := range responses {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
	}
	return nil
}
