// Package main provides the entry point for the StoryCrafter backlog
// generation service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storycrafter",
	Short: "StoryCrafter backlog generation service",
	Long:  "StoryCrafter converts a 3-agent consensus discussion into a structured project backlog (epics, stories, acceptance criteria) via a REST API or one-shot CLI generation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
