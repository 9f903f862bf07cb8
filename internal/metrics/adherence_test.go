// ABOUTME: Tests for the accumulated adherence percentage.
// ABOUTME: Covers the whole-history denominator and the zero-planned case.
package metrics

import (
	"testing"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

func logWith(completed, total int) *models.DailyLog {
	log := &models.DailyLog{}
	for i := 0; i < total; i++ {
		log.Meals = append(log.Meals, models.Meal{Completed: i < completed})
	}
	return log
}

func TestAdherence(t *testing.T) {
	tests := []struct {
		name string
		logs map[string]*models.DailyLog
		want int
	}{
		{"no logs", map[string]*models.DailyLog{}, 0},
		{"nil map", nil, 0},
		{
			"logs with zero meals",
			map[string]*models.DailyLog{"2025-03-09": {}},
			0,
		},
		{
			"all completed",
			map[string]*models.DailyLog{
				"2025-03-09": logWith(4, 4),
				"2025-03-10": logWith(3, 3),
			},
			100,
		},
		{
			"half completed rounds",
			map[string]*models.DailyLog{
				"2025-03-09": logWith(2, 4),
			},
			50,
		},
		{
			"spans all history not one week",
			map[string]*models.DailyLog{
				"2025-01-01": logWith(4, 4),
				"2025-03-09": logWith(0, 4),
			},
			50,
		},
		{
			"rounds to nearest",
			map[string]*models.DailyLog{
				"2025-03-09": logWith(1, 3), // 33.33 -> 33
			},
			33,
		},
		{
			"rounds up",
			map[string]*models.DailyLog{
				"2025-03-09": logWith(2, 3), // 66.67 -> 67
			},
			67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adherence(tt.logs); got != tt.want {
				t.Errorf("Adherence() = %d, want %d", got, tt.want)
			}
		})
	}
}
