// Package main provides the entry point for the permit navigator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "permit_agent",
	Short: "Municipal permit information assistant",
	Long:  "Permit Navigator extracts structured permit information from municipal documents and web pages, and answers follow-up questions over a streaming chat.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
