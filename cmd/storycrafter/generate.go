package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vishkar/storycrafter/internal/backlog"
	"github.com/vishkar/storycrafter/internal/llm"
	"github.com/vishkar/storycrafter/internal/types"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate <transcript.json>",
	Short: "Generate a backlog from a consensus transcript file",
	Long: `Run the full generation pipeline once against a transcript file and
print the assembled backlog as JSON. The file uses the same shape as the
/generate-backlog request body: {"consensus_messages": [...],
"project_metadata": {...}, "use_full_context": true}.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the backlog to a file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	var req types.GenerateBacklogRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse transcript: %w", err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid transcript: %w", err)
	}

	clients, err := llm.NewPool(llm.ConfigFromEnv())
	if err != nil {
		return fmt.Errorf("failed to initialize model backends: %w", err)
	}

	service := backlog.New(clients)

	result, err := service.Generate(cmd.Context(), req.ConsensusMessages, req.ProjectMetadata, req.FullContext())
	if err != nil {
		return fmt.Errorf("backlog generation failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backlog: %w", err)
	}
	out = append(out, '\n')

	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, out, 0o644); err != nil {
			return fmt.Errorf("failed to write backlog: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Backlog written to %s\n", generateOutput)
		return nil
	}

	_, err = os.Stdout.Write(out)
	return err
}
