package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/permit-navigator/internal/chat"
	"github.com/jonathan/permit-navigator/internal/llm"
	"github.com/jonathan/permit-navigator/internal/observability"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask follow-up questions over a streaming chat",
	Long:  "Start an interactive conversation about permits. Replies stream to the terminal as the model produces them; type 'exit' or press Ctrl-D to quit.",
	RunE:  runChat,
}

var (
	chatConfigPath string
	chatAPIKey     string
	chatVerbose    bool
)

func init() {
	chatCmd.Flags().StringVar(&chatConfigPath, "config", "", "Path to JSON config file")
	chatCmd.Flags().StringVar(&chatAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print stream diagnostics")

	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(chatConfigPath, chatAPIKey, false, chatVerbose)
	if err != nil {
		return err
	}

	vertex, err := llm.NewVertexClient(cfg.LLM(), cfg.APIKey)
	if err != nil {
		return err
	}

	streamer := chat.NewStreamer(vertex)
	session := chat.NewSession()
	printer := observability.NewPrinter(os.Stdout)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	_, _ = fmt.Fprintf(os.Stdout, "Session %s. Ask a question about permits ('exit' to quit).\n", session.ID)

	for {
		_, _ = fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		session.Append(chat.RoleUser, question)

		deltas, err := streamer.Stream(ctx, session.History())
		if err != nil {
			return err
		}

		var reply strings.Builder
		for delta := range deltas {
			reply.WriteString(delta)
			_, _ = fmt.Fprint(os.Stdout, delta)
		}
		_, _ = fmt.Fprintln(os.Stdout)

		session.Append(chat.RoleModel, reply.String())

		if cfg.Verbose {
			printer.PrintDroppedFrames(streamer.Dropped())
		}
	}

	return scanner.Err()
}
