// ABOUTME: CLI command for recording weight check-ins.
// ABOUTME: Appends to the append-only weight history and updates the profile.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var weightTarget float64

var weightCmd = &cobra.Command{
	Use:     "weight <kg>",
	Aliases: []string{"w"},
	Short:   "Record your current weight",
	Long: `Record a weight check-in. The entry is appended to your weight
history under today's date; history is never rewritten.

Examples:
  vidafit weight 79.4
  vidafit weight 79.4 --target 68`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		if err := trk.RecordWeight(kg, weightTarget); err != nil {
			return fmt.Errorf("failed to record weight: %w", err)
		}
		p := trk.Profile()
		color.Green("✓ Weight recorded: %.1f kg", kg)
		if p.TargetWeight > 0 {
			delta := p.Weight - p.TargetWeight
			fmt.Printf("  %.1f kg to target (%.1f kg)\n", delta, p.TargetWeight)
		}
		return nil
	},
}

func init() {
	weightCmd.Flags().Float64Var(&weightTarget, "target", 0, "update target weight in kg")
	rootCmd.AddCommand(weightCmd)
}
