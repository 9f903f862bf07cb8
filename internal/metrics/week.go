// ABOUTME: Weekly rollups: workout adherence and calendar day classification.
// ABOUTME: Windows start on the most recent Sunday in local time.
package metrics

import (
	"time"

	"github.com/KarenBrasil/vida-fit/internal/dateutil"
	"github.com/KarenBrasil/vida-fit/internal/models"
)

// DayStatus classifies a day's meal completion for calendar rendering.
type DayStatus int

const (
	StatusNone DayStatus = iota
	StatusPartial
	StatusComplete
)

// WorkoutDay is one cell of the weekly workout adherence strip.
type WorkoutDay struct {
	Key       string
	Label     string
	Completed bool
}

// WeekWorkouts counts workout-completed days in the 7-day window starting
// on the most recent Sunday, with a per-day breakdown labeled by weekday
// initials.
func WeekWorkouts(logs map[string]*models.DailyLog, now time.Time) (int, []WorkoutDay) {
	keys := dateutil.WeekKeys(now)
	days := make([]WorkoutDay, 0, 7)
	count := 0
	for i, key := range keys {
		completed := false
		if log, ok := logs[key]; ok && log.WorkoutCompleted {
			completed = true
			count++
		}
		days = append(days, WorkoutDay{
			Key:       key,
			Label:     dateutil.WeekdayInitials[i],
			Completed: completed,
		})
	}
	return count, days
}

// ClassifyDay reports whether a day's meals are fully, partially, or not at
// all completed. A day with zero meals is never complete, even vacuously.
func ClassifyDay(log *models.DailyLog) DayStatus {
	if log == nil || len(log.Meals) == 0 {
		return StatusNone
	}
	completed := 0
	for _, m := range log.Meals {
		if m.Completed {
			completed++
		}
	}
	switch completed {
	case 0:
		return StatusNone
	case len(log.Meals):
		return StatusComplete
	default:
		return StatusPartial
	}
}

// CalendarDay is one cell of the week calendar view.
type CalendarDay struct {
	Key     string
	Label   string
	Day     int
	IsToday bool
	Status  DayStatus
}

// WeekOverview builds the calendar week containing now, classifying each
// day from the stored logs.
func WeekOverview(logs map[string]*models.DailyLog, now time.Time) []CalendarDay {
	start := dateutil.WeekStart(now)
	todayKey := dateutil.Key(now)
	days := make([]CalendarDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := dateutil.Key(d)
		days = append(days, CalendarDay{
			Key:     key,
			Label:   dateutil.WeekdayInitials[i],
			Day:     d.Day(),
			IsToday: key == todayKey,
			Status:  ClassifyDay(logs[key]),
		})
	}
	return days
}
