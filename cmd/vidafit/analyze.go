// ABOUTME: CLI command for AI photo analysis of a meal.
// ABOUTME: Sends the image to Gemini and prints the identified foods with macros.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <photo>",
	Short: "Estimate macros from a meal photo",
	Long: `Analyze a photo of a plate and estimate the foods and macros on it.
The result is informational only — nothing is written to the daily log.

Requires GEMINI_API_KEY (or API_KEY) in the environment or a .env file.

Examples:
  vidafit analyze almoco.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read photo: %w", err)
		}
		mime, err := photoMIME(args[0])
		if err != nil {
			return err
		}
		adv, err := advisor()
		if err != nil {
			return err
		}

		fmt.Println("Analyzing photo...")
		analysis, err := adv.AnalyzeMealPhoto(cmd.Context(), data, mime)
		if err != nil {
			return fmt.Errorf("photo analysis failed: %w", err)
		}

		faint := color.New(color.Faint)
		color.New(color.Bold).Println("Identified foods:")
		for _, f := range analysis.IdentifiedFoods {
			fmt.Printf("  %s  %s\n", f.Name, faint.Sprintf("%.0f kcal", f.Calories))
		}
		fmt.Println()
		m := analysis.EstimatedMacros
		color.New(color.Bold).Printf("Total: %.0f kcal · P %.0fg · C %.0fg · G %.0fg\n",
			m.Calories, m.Protein, m.Carbs, m.Fats)
		if analysis.Feedback != "" {
			faint.Println(analysis.Feedback)
		}
		return nil
	},
}

func photoMIME(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".webp":
		return "image/webp", nil
	case ".heic":
		return "image/heic", nil
	default:
		return "", fmt.Errorf("unsupported image type %q (jpg, png, webp, heic)", filepath.Ext(path))
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
