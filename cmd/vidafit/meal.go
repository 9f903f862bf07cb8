// ABOUTME: CLI commands for the daily meal log.
// ABOUTME: toggle flips completion; add appends a custom meal; list shows a day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

var (
	mealDate     string
	mealType     string
	mealTime     string
	mealDesc     string
	mealCalories float64
	mealProtein  float64
	mealCarbs    float64
	mealFats     float64
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Manage the daily meal log",
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's meals",
	Long: `List the meals of a day with their completion state and ids.

The id prefix shown is what 'meal toggle' takes. An untouched day shows the
active plan's meals; they are only stored once you toggle or add something.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		view := trk.Day(resolveDate(mealDate))
		if len(view.Meals) == 0 {
			fmt.Println("No meals for this day.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, m := range view.Meals {
			check := " "
			if m.Completed {
				check = color.GreenString("✓")
			}
			fmt.Printf("[%s] %s %s  %s  %.0f kcal  P%.0f C%.0f G%.0f\n",
				check, faint.Sprint(shortID(m.ID)), m.Time, m.Name,
				m.Macros.Calories, m.Macros.Protein, m.Macros.Carbs, m.Macros.Fats)
		}
		return nil
	},
}

var mealToggleCmd = &cobra.Command{
	Use:   "toggle <meal-id>",
	Short: "Toggle a meal's completion",
	Long: `Flip the completed flag of a meal in the day's log. The first toggle
of a day is what persists its planned meals.

Example:
  vidafit meal toggle a1b2c3d4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		date := resolveDate(mealDate)
		view := trk.Day(date)
		id, err := expandMealID(view.Meals, args[0])
		if err != nil {
			return err
		}
		if err := trk.ToggleMeal(date, id); err != nil {
			return fmt.Errorf("failed to toggle meal: %w", err)
		}
		updated := trk.Day(date)
		i := updated.FindMeal(id)
		if i >= 0 && updated.Meals[i].Completed {
			color.Green("✓ %s completed", updated.Meals[i].Name)
		} else if i >= 0 {
			color.Yellow("○ %s unchecked", updated.Meals[i].Name)
		}
		return nil
	},
}

var mealAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom meal to a day",
	Long: `Add a user-entered meal. Zero macros are fine; an empty name is not.

Examples:
  vidafit meal add "Whey com banana" --calories 220 --protein 28
  vidafit meal add "Ceia livre" --type Ceia --time 22:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		if args[0] == "" {
			return fmt.Errorf("meal name must not be empty")
		}
		mt := models.MealSnack
		if mealType != "" {
			if !models.IsValidMealType(mealType) {
				return fmt.Errorf("unknown meal type: %s\nValid types: Café da Manhã, Lanche, Almoço, Jantar, Ceia", mealType)
			}
			mt = models.MealType(mealType)
		}
		meal := models.NewCustomMeal(args[0], mt, mealTime, models.Macros{
			Calories: mealCalories,
			Protein:  mealProtein,
			Carbs:    mealCarbs,
			Fats:     mealFats,
		})
		if mealDesc != "" {
			meal.WithDescription(mealDesc)
		}

		date := resolveDate(mealDate)
		if err := trk.AddCustomMeal(date, meal); err != nil {
			return fmt.Errorf("failed to add meal: %w", err)
		}
		color.Green("✓ Added %s", meal.Name)
		fmt.Printf("  %s %.0f kcal on %s\n",
			color.New(color.Faint).Sprint(shortID(meal.ID)), meal.Macros.Calories, date)
		return nil
	},
}

func init() {
	mealCmd.PersistentFlags().StringVar(&mealDate, "date", "", "date key (YYYY-MM-DD), defaults to today")
	mealAddCmd.Flags().StringVar(&mealType, "type", "", "meal type")
	mealAddCmd.Flags().StringVar(&mealTime, "time", "12:00", "time of day (HH:MM)")
	mealAddCmd.Flags().StringVar(&mealDesc, "description", "", "optional description")
	mealAddCmd.Flags().Float64Var(&mealCalories, "calories", 0, "calories")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "protein grams")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "carb grams")
	mealAddCmd.Flags().Float64Var(&mealFats, "fats", 0, "fat grams")

	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealToggleCmd)
	mealCmd.AddCommand(mealAddCmd)
	rootCmd.AddCommand(mealCmd)
}
