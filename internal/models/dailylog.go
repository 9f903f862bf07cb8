// ABOUTME: DailyLog model keyed by canonical YYYY-MM-DD date strings.
// ABOUTME: Logs materialize lazily and are merged, never replaced, once stored.
package models

// DailyLog is the per-day record of meals and workout completion. Date is
// the canonical local-calendar date key, stored redundantly so a log is
// self-describing.
type DailyLog struct {
	Date             string `json:"date"`
	Meals            []Meal `json:"meals"`
	WorkoutCompleted bool   `json:"workoutCompleted"`
}

// NewDailyLog creates a log for the given date key seeded with the given
// meals (typically clones of the active plan's meals).
func NewDailyLog(dateKey string, meals []Meal) *DailyLog {
	if meals == nil {
		meals = []Meal{}
	}
	return &DailyLog{Date: dateKey, Meals: meals}
}

// Clone returns a deep copy of the log. Views handed out to readers are
// clones so derived computations can never mutate stored state.
func (l *DailyLog) Clone() *DailyLog {
	c := &DailyLog{
		Date:             l.Date,
		Meals:            make([]Meal, 0, len(l.Meals)),
		WorkoutCompleted: l.WorkoutCompleted,
	}
	for _, m := range l.Meals {
		c.Meals = append(c.Meals, m.Clone())
	}
	return c
}

// FindMeal returns the index of the meal with the given id, or -1.
func (l *DailyLog) FindMeal(mealID string) int {
	for i := range l.Meals {
		if l.Meals[i].ID == mealID {
			return i
		}
	}
	return -1
}
