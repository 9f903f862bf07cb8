// ABOUTME: Root Cobra command for vidafit CLI.
// ABOUTME: Handles config, store and tracker lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/config"
	"github.com/KarenBrasil/vida-fit/internal/storage"
	"github.com/KarenBrasil/vida-fit/internal/tracker"
)

var (
	cfg   *config.Config
	store storage.Store
	trk   *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "vidafit",
	Short: "Personal nutrition and fitness tracker",
	Long: `VidaFit is a CLI for tracking your nutrition plan, workouts and
day-by-day adherence, with AI-generated plans.

QUICK START:

  $ vidafit profile init "Karen"        # Onboard with your name
  $ vidafit profile set --age 29 --height 165 --weight 80 --target-weight 68
  $ vidafit plan nutrition --regenerate # Generate your meal plan (needs GEMINI_API_KEY)
  $ vidafit today                       # Dashboard: calories, macros, gym week
  $ vidafit meal toggle a1b2c3d4        # Check off a meal
  $ vidafit workout done                # Log today's workout

DAILY LOG:

  Each day's log materializes from the active plan the first time you touch
  it, then lives independently: regenerating the plan never rewrites past
  days. Dates are keyed YYYY-MM-DD in your local timezone.

AI FEATURES (set GEMINI_API_KEY or put it in a .env file):

  $ vidafit plan nutrition --regenerate  # New meal plan from your profile
  $ vidafit plan workout --regenerate    # New weekly split
  $ vidafit analyze photo.jpg            # Macro estimate from a meal photo
  $ vidafit chat                         # Talk to the AI nutritionist

MCP INTEGRATION:

  Run 'vidafit mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "vidafit": { "command": "vidafit", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  The whole state (profile, plans, daily logs) is persisted as one bundle in
  Charm KV at ~/.local/share/charm/kv/vidafit after every change. Set
  "backend": "file" in the config to use a plain JSON file instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		trk, err = tracker.New(store)
		if err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// requireProfile gates data commands behind onboarding.
func requireProfile() error {
	p := trk.Profile()
	if !p.Usable() {
		return fmt.Errorf("no profile yet: run 'vidafit profile init <name>' first")
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
