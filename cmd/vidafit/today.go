// ABOUTME: Dashboard command: calorie balance, macro progress, gym week.
// ABOUTME: Everything shown is derived on read from the log and plan.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/metrics"
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's dashboard",
	Long: `Show today's calorie balance, macro progress against the plan's
daily target, the meal checklist and this week's gym attendance.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		p := trk.Profile()
		view := trk.Today()
		consumed := metrics.Consumed(view.Meals)
		target := metrics.Target(trk.NutritionPlan())
		progress := metrics.Progress(consumed, target)
		remaining := metrics.Remaining(consumed, target)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		fmt.Printf("%s  %s\n", bold.Sprint(view.Date), faint.Sprintf("olá, %s", p.Name))
		if !p.Calibrated() {
			color.Yellow("  calibration pending — run 'vidafit profile set'")
		}
		fmt.Println()

		if target.Calories > 0 {
			fmt.Printf("  %s %.0f kcal remaining  (%d%% of %.0f kcal)\n",
				bold.Sprint("⚡"), remaining, progress, target.Calories)
		} else {
			fmt.Printf("  %s no nutrition plan — run 'vidafit plan nutrition --regenerate'\n", faint.Sprint("⚡"))
		}
		printMacroBar("protein", consumed.Protein, target.Protein)
		printMacroBar("carbs  ", consumed.Carbs, target.Carbs)
		printMacroBar("fats   ", consumed.Fats, target.Fats)

		fmt.Println()
		if len(view.Meals) == 0 {
			faint.Println("  No meals for today yet.")
		}
		for _, m := range view.Meals {
			check := " "
			if m.Completed {
				check = color.GreenString("✓")
			}
			custom := ""
			if m.IsCustom {
				custom = faint.Sprint(" (custom)")
			}
			fmt.Printf("  [%s] %s %s  %s%s  %.0f kcal\n",
				check, faint.Sprint(shortID(m.ID)), m.Time, m.Name, custom, m.Macros.Calories)
		}

		fmt.Println()
		count, days := metrics.WeekWorkouts(trk.Logs(), trk.Now())
		var strip strings.Builder
		for _, d := range days {
			if d.Completed {
				strip.WriteString(color.GreenString("●"))
			} else {
				strip.WriteString(faint.Sprint("○"))
			}
			strip.WriteString(faint.Sprint(d.Label) + " ")
		}
		fmt.Printf("  gym %d/%d  %s\n", count, p.WorkoutDays, strip.String())
		if view.WorkoutCompleted {
			color.Green("  workout done today")
		}
		return nil
	},
}

func printMacroBar(label string, current, target float64) {
	faint := color.New(color.Faint)
	const width = 20
	filled := 0
	if target > 0 {
		ratio := current / target
		if ratio > 1 {
			ratio = 1
		}
		filled = int(ratio * width)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Printf("  %s %s %.0fg%s\n", faint.Sprint(label), bar, current, faint.Sprintf(" / %.0fg", target))
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
