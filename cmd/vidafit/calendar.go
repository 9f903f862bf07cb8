// ABOUTME: Calendar command: week classification and accumulated adherence.
// ABOUTME: Complete/partial/none per day, plus the all-time adherence figure.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/metrics"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show the week's history and overall adherence",
	Long: `Show the current week (Sunday through Saturday) with each day
classified by meal completion, today's activity, and the accumulated
adherence percentage across every logged day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		logs := trk.Logs()
		now := trk.Now()
		faint := color.New(color.Faint)

		for _, day := range metrics.WeekOverview(logs, now) {
			marker := faint.Sprint("·")
			switch day.Status {
			case metrics.StatusComplete:
				marker = color.GreenString("●")
			case metrics.StatusPartial:
				marker = color.YellowString("◐")
			}
			label := fmt.Sprintf("%s %2d", day.Label, day.Day)
			if day.IsToday {
				label = color.New(color.Bold).Sprint(label)
			}
			fmt.Printf("  %s %s", label, marker)
		}
		fmt.Println()
		fmt.Println()

		view := trk.Today()
		if len(view.Meals) == 0 {
			faint.Println("  Nenhum registro para hoje ainda.")
		} else {
			for _, m := range view.Meals {
				check := faint.Sprint("○")
				if m.Completed {
					check = color.GreenString("✓")
				}
				fmt.Printf("  %s %s %s\n", check, faint.Sprint(m.Time), m.Name)
			}
		}

		fmt.Println()
		adherence := metrics.Adherence(logs)
		fmt.Printf("  Consistência acumulada: %s\n", color.New(color.Bold).Sprintf("%d%%", adherence))
		switch {
		case adherence >= 80:
			fmt.Println("  Fantástico! Ritmo de atleta. 🏆")
		case adherence >= 50:
			fmt.Println("  Bom progresso. Regularidade é o segredo.")
		default:
			fmt.Println("  Amanhã é uma nova oportunidade de bater suas metas!")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
