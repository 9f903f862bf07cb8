// ABOUTME: Daily log operations: lazy materialization and merge-on-mutate.
// ABOUTME: Only today's transient view is seeded from the live plan.
package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

// Day returns the log view for a date key without ever mutating the store.
// A stored log is returned as a clone. An absent date yields a transient
// default: today's view is seeded from the active plan's meals with
// completion reset; any other date starts empty, because historical days
// are frozen snapshots that never pick up a regenerated plan.
func (t *Tracker) Day(dateKey string) *models.DailyLog {
	if log, ok := t.bundle.DailyLogs[dateKey]; ok {
		return log.Clone()
	}
	if dateKey == t.TodayKey() {
		return models.NewDailyLog(dateKey, t.bundle.NutritionPlan.CloneMeals())
	}
	return models.NewDailyLog(dateKey, nil)
}

// Today returns the view for the current local day.
func (t *Tracker) Today() *models.DailyLog {
	return t.Day(t.TodayKey())
}

// ToggleMeal flips the completion flag of the meal with the given id in
// the day's view and stores the resulting log. The first toggle of a day
// is what materializes its planned meals. An unknown meal id is a silent
// no-op: nothing is stored.
func (t *Tracker) ToggleMeal(dateKey, mealID string) error {
	view := t.Day(dateKey)
	i := view.FindMeal(mealID)
	if i < 0 {
		return nil
	}
	view.Meals[i].Completed = !view.Meals[i].Completed
	t.bundle.DailyLogs[dateKey] = view
	return t.persist()
}

// AddCustomMeal appends a user-entered meal to the day's view and stores
// the log. Zero macros are accepted. The stored meal is always custom,
// uncompleted, and carries an id, regardless of what the caller set.
func (t *Tracker) AddCustomMeal(dateKey string, meal *models.Meal) error {
	if meal == nil || meal.Name == "" {
		return fmt.Errorf("meal name must not be empty")
	}
	entry := *meal
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.IsCustom = true
	entry.Completed = false
	view := t.Day(dateKey)
	view.Meals = append(view.Meals, entry)
	t.bundle.DailyLogs[dateKey] = view
	return t.persist()
}

// SetWorkoutCompleted sets the day's workout flag, materializing the log
// if absent.
func (t *Tracker) SetWorkoutCompleted(dateKey string, done bool) error {
	view := t.Day(dateKey)
	view.WorkoutCompleted = done
	t.bundle.DailyLogs[dateKey] = view
	return t.persist()
}
