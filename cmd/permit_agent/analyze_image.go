package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/permit-navigator/internal/llm"
)

var analyzeImageCmd = &cobra.Command{
	Use:   "analyze-image",
	Short: "Describe a site plan, drawing, or photo",
	Long:  "Send a local image to the image model with a question and print the model's description. Useful for site plans and permit drawings.",
	RunE:  runAnalyzeImage,
}

var (
	analyzeImageFile   string
	analyzeImagePrompt string
	analyzeConfigPath  string
	analyzeAPIKey      string
)

func init() {
	analyzeImageCmd.Flags().StringVarP(&analyzeImageFile, "image", "i", "", "Path to the image file (required)")
	analyzeImageCmd.Flags().StringVarP(&analyzeImagePrompt, "prompt", "p", "Describe this image in the context of a municipal permit application.", "Question to ask about the image")
	analyzeImageCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeImageCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = analyzeImageCmd.MarkFlagRequired("image")

	rootCmd.AddCommand(analyzeImageCmd)
}

func runAnalyzeImage(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(analyzeConfigPath, analyzeAPIKey, false, false)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(analyzeImageFile)
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	mimeType := mimeTypeForFile(analyzeImageFile)
	if mimeType == "text/plain" {
		return fmt.Errorf("unsupported image type for %s", analyzeImageFile)
	}

	vertex, err := llm.NewVertexClient(cfg.LLM(), cfg.APIKey)
	if err != nil {
		return err
	}

	imagePart := llm.DataPart(mimeType, base64.StdEncoding.EncodeToString(data))
	description, err := vertex.AnalyzeImage(context.Background(), analyzeImagePrompt, imagePart)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, description)
	return nil
}
