// ABOUTME: CLI commands for viewing and regenerating the AI plans.
// ABOUTME: Regeneration failure leaves the previous plan untouched.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/ai"
	"github.com/KarenBrasil/vida-fit/internal/config"
)

var planRegenerate bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "View or regenerate the nutrition and workout plans",
}

// advisor builds the Gemini client from config and environment.
func advisor() (ai.Advisor, error) {
	key, err := config.GeminiAPIKey()
	if err != nil {
		return nil, err
	}
	return ai.NewGemini(key, cfg.Model), nil
}

var planNutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Show or regenerate the nutrition plan",
	Long: `Show the active nutrition plan. With --regenerate, ask the AI for a
new plan built from your profile; the current plan is replaced in full only
when generation succeeds.

Regenerating never rewrites stored daily logs: past days keep the meals
they were logged with. Only an untouched "today" picks up the new plan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}

		if planRegenerate {
			adv, err := advisor()
			if err != nil {
				return err
			}
			fmt.Println("Recalculando dieta...")
			plan, err := adv.GenerateNutritionPlan(cmd.Context(), trk.Profile())
			if err != nil {
				return fmt.Errorf("nutrition plan generation failed (previous plan kept): %w", err)
			}
			if err := trk.SetNutritionPlan(plan); err != nil {
				return fmt.Errorf("failed to store plan: %w", err)
			}
			color.Green("✓ Nutrition plan updated")
		}

		plan := trk.NutritionPlan()
		if plan == nil {
			fmt.Println("No nutrition plan yet — run 'vidafit plan nutrition --regenerate'.")
			return nil
		}
		faint := color.New(color.Faint)
		fmt.Printf("Alvo diário: %s kcal  P%.0f C%.0f G%.0f\n",
			color.New(color.Bold).Sprintf("%.0f", plan.DailyTarget.Calories),
			plan.DailyTarget.Protein, plan.DailyTarget.Carbs, plan.DailyTarget.Fats)
		for _, m := range plan.Meals {
			fmt.Printf("  %s %s  %s  %.0f kcal\n",
				faint.Sprint(m.Time), faint.Sprint(string(m.Type)), m.Name, m.Macros.Calories)
			for _, item := range m.FoodItems {
				fmt.Printf("     %s %s\n", item.Amount, item.Name)
			}
		}
		return nil
	},
}

var planWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Show or regenerate the workout plan",
	Long: `Show the weekly split overview. With --regenerate, ask the AI for a
new split built from your profile; the current plan is replaced in full
only when generation succeeds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}

		if planRegenerate {
			adv, err := advisor()
			if err != nil {
				return err
			}
			fmt.Println("Sincronizando fibras...")
			plan, err := adv.GenerateWorkoutPlan(cmd.Context(), trk.Profile())
			if err != nil {
				return fmt.Errorf("workout plan generation failed (previous plan kept): %w", err)
			}
			if err := trk.SetWorkoutPlan(plan); err != nil {
				return fmt.Errorf("failed to store plan: %w", err)
			}
			color.Green("✓ Workout plan updated")
		}

		return workoutShowCmd.RunE(cmd, nil)
	},
}

func init() {
	planCmd.PersistentFlags().BoolVar(&planRegenerate, "regenerate", false, "generate a new plan from your profile")

	planCmd.AddCommand(planNutritionCmd)
	planCmd.AddCommand(planWorkoutCmd)
	rootCmd.AddCommand(planCmd)
}
