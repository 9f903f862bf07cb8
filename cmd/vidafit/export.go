// ABOUTME: CLI command to export all vidafit data.
// ABOUTME: Wraps the state bundle in the versioned envelope as JSON or YAML.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [json|yaml]",
	Short: "Export all data",
	Long: `Export the profile, plans, daily logs and market items in a
versioned envelope.

Examples:
  vidafit export json -o backup.json
  vidafit export yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "json"
		if len(args) == 1 {
			format = args[0]
		}

		var (
			data []byte
			err  error
		)
		switch format {
		case "json":
			data, err = storage.ExportJSON(trk.Bundle())
		case "yaml", "yml":
			data, err = storage.ExportYAML(trk.Bundle())
		default:
			return fmt.Errorf("unknown format %q (json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
