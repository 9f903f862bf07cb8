// ABOUTME: CLI commands for the workout split and workout logging.
// ABOUTME: show prints the weekly schedule; done/undone set the day's flag.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/dateutil"
)

var workoutDate string

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"wo"},
	Short:   "View the workout split and log sessions",
}

var workoutShowCmd = &cobra.Command{
	Use:   "show [letter]",
	Short: "Show the weekly split, or one split's exercises",
	Long: `Show the weekly schedule. Pass a split letter to see its exercises.

Examples:
  vidafit workout show      # Week overview
  vidafit workout show A    # Exercises of split A`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		plan := trk.WorkoutPlan()
		if plan == nil {
			fmt.Println("No workout plan yet — run 'vidafit plan workout --regenerate'.")
			return nil
		}
		faint := color.New(color.Faint)

		if len(args) == 1 {
			letter := args[0]
			for _, s := range plan.Splits {
				if s.Letter != letter {
					continue
				}
				fmt.Printf("%s %s — %s\n", color.New(color.Bold).Sprintf("Treino %s", s.Letter), s.Name, s.Region)
				for _, ex := range s.Exercises {
					fmt.Printf("  %s  %d x %s  %ds rest  %s\n",
						ex.Name, ex.Sets, ex.Reps, ex.Rest, faint.Sprint(ex.Target))
					for i, step := range ex.Steps {
						fmt.Printf("     %d. %s\n", i+1, step)
					}
				}
				return nil
			}
			return fmt.Errorf("no split with letter %q", letter)
		}

		// Monday-first overview, matching how the splits are scheduled.
		order := []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}
		for _, day := range order {
			split := plan.SplitFor(day)
			if split == nil {
				fmt.Printf("  %s  %s\n", faint.Sprintf("%-8s", day), faint.Sprint("descanso"))
				continue
			}
			fmt.Printf("  %-8s  %s  %s (%d exercícios)\n",
				day, color.GreenString(split.Letter), split.Region, len(split.Exercises))
		}
		return nil
	},
}

var workoutDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Mark the day's workout as completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		date := resolveDate(workoutDate)
		if err := trk.SetWorkoutCompleted(date, true); err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}
		color.Green("✓ Workout logged for %s", date)
		return nil
	},
}

var workoutUndoneCmd = &cobra.Command{
	Use:   "undone",
	Short: "Clear the day's workout flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		date := resolveDate(workoutDate)
		if err := trk.SetWorkoutCompleted(date, false); err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}
		color.Yellow("○ Workout cleared for %s", date)
		return nil
	},
}

var workoutTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's scheduled split",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		plan := trk.WorkoutPlan()
		if plan == nil {
			fmt.Println("No workout plan yet — run 'vidafit plan workout --regenerate'.")
			return nil
		}
		day := dateutil.WeekdayName(trk.Now())
		split := plan.SplitFor(day)
		if split == nil {
			fmt.Printf("%s é dia de descanso.\n", day)
			return nil
		}
		fmt.Printf("%s: Treino %s — %s (%d exercícios)\n", day, split.Letter, split.Region, len(split.Exercises))
		return nil
	},
}

func init() {
	workoutCmd.PersistentFlags().StringVar(&workoutDate, "date", "", "date key (YYYY-MM-DD), defaults to today")

	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDoneCmd)
	workoutCmd.AddCommand(workoutUndoneCmd)
	workoutCmd.AddCommand(workoutTodayCmd)
	rootCmd.AddCommand(workoutCmd)
}
