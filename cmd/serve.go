package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/organizer-cli/internal/events"
	"github.com/mj1618/organizer-cli/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing organizer tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the organizer
operations as tools and pushes active-window and focus-state changes to every
connected client as notifications.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  organizer serve
  organizer serve --transport streamable-http --port 8080
  organizer serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Window list cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	// The server is the event sink but needs the service to exist first.
	var sink events.Broadcast
	svc, err := newService(&sink)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	srv := server.New(svc, cfg)
	sink.Add(srv)

	return srv.Serve(cmd.Context(), cfg)
}
