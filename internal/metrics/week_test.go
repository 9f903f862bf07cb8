// ABOUTME: Tests for weekly rollups: workout strip, day classification, calendar.
// ABOUTME: Pins Sunday windows and the never-vacuously-complete rule.
package metrics

import (
	"testing"
	"time"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

// wednesday is 2025-03-12; its week runs 2025-03-09 (Sunday) through
// 2025-03-15 (Saturday).
var wednesday = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func TestWeekWorkouts(t *testing.T) {
	logs := map[string]*models.DailyLog{
		"2025-03-09": {Date: "2025-03-09", WorkoutCompleted: true},
		"2025-03-11": {Date: "2025-03-11", WorkoutCompleted: true},
		"2025-03-12": {Date: "2025-03-12", WorkoutCompleted: false},
		"2025-03-02": {Date: "2025-03-02", WorkoutCompleted: true}, // previous week
	}

	count, days := WeekWorkouts(logs, wednesday)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if len(days) != 7 {
		t.Fatalf("len(days) = %d, want 7", len(days))
	}
	if days[0].Key != "2025-03-09" || !days[0].Completed {
		t.Errorf("days[0] = %+v, want completed Sunday 2025-03-09", days[0])
	}
	if days[0].Label != "D" || days[1].Label != "S" {
		t.Errorf("labels = %s,%s, want D,S", days[0].Label, days[1].Label)
	}
	if days[3].Completed {
		t.Error("Wednesday marked completed although WorkoutCompleted=false")
	}
	if days[6].Key != "2025-03-15" {
		t.Errorf("days[6].Key = %s, want 2025-03-15", days[6].Key)
	}
}

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name string
		log  *models.DailyLog
		want DayStatus
	}{
		{"nil log", nil, StatusNone},
		{"empty meals never complete", &models.DailyLog{}, StatusNone},
		{"none completed", logWith(0, 3), StatusNone},
		{"some completed", logWith(1, 3), StatusPartial},
		{"all completed", logWith(3, 3), StatusComplete},
		{"single meal completed", logWith(1, 1), StatusComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDay(tt.log); got != tt.want {
				t.Errorf("ClassifyDay() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekOverview(t *testing.T) {
	logs := map[string]*models.DailyLog{
		"2025-03-09": logWith(3, 3),
		"2025-03-10": logWith(1, 3),
	}

	days := WeekOverview(logs, wednesday)
	if len(days) != 7 {
		t.Fatalf("len(days) = %d, want 7", len(days))
	}
	if days[0].Status != StatusComplete {
		t.Errorf("Sunday status = %d, want complete", days[0].Status)
	}
	if days[1].Status != StatusPartial {
		t.Errorf("Monday status = %d, want partial", days[1].Status)
	}
	if days[2].Status != StatusNone {
		t.Errorf("Tuesday status = %d, want none", days[2].Status)
	}
	if !days[3].IsToday {
		t.Error("Wednesday not flagged as today")
	}
	for i, d := range days {
		if i != 3 && d.IsToday {
			t.Errorf("days[%d] wrongly flagged as today", i)
		}
	}
	if days[0].Day != 9 || days[6].Day != 15 {
		t.Errorf("day numbers = %d..%d, want 9..15", days[0].Day, days[6].Day)
	}
}
