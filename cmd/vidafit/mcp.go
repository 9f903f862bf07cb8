// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your daily logs
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "vidafit": {
        "command": "vidafit",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_today           Today's log with consumed/target macros
  toggle_meal         Flip a meal's completed flag
  add_custom_meal     Add a one-off meal to a day's log
  log_workout         Mark a day's workout done or not done
  get_week            Current week's day-by-day completion
  get_adherence       Accumulated plan adherence percentage
  get_shopping_list   Grouped market list from the current plan
  get_profile         The user profile and weight history
  record_weight       Record a weight check-in

AVAILABLE RESOURCES:

  vidafit://today           Today's log and macro progress
  vidafit://profile         The user profile
  vidafit://plan/nutrition  The active nutrition plan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
