package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishkar/storycrafter/internal/backlog"
	"github.com/vishkar/storycrafter/internal/llm"
	"github.com/vishkar/storycrafter/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the backlog generation and regeneration endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	clients, err := llm.NewPool(llm.ConfigFromEnv())
	if err != nil {
		return fmt.Errorf("failed to initialize model backends: %w", err)
	}

	service := backlog.New(clients)
	srv := server.New(server.Config{Port: servePort}, service)

	return srv.Start()
}
