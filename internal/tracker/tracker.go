// ABOUTME: Tracker owns the in-memory state bundle and its single writer.
// ABOUTME: Every mutation commits a full snapshot, then persists the bundle.
package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/KarenBrasil/vida-fit/internal/dateutil"
	"github.com/KarenBrasil/vida-fit/internal/models"
	"github.com/KarenBrasil/vida-fit/internal/storage"
)

// Tracker is the single state owner. All mutations run one at a time on
// the caller's goroutine; derived views are pure functions over clones, so
// no locking is needed.
type Tracker struct {
	bundle *storage.Bundle
	store  storage.Store
	now    func() time.Time
}

// New loads the persisted bundle from the store. A missing or corrupt
// payload falls back to defaults inside Load and never fails startup.
func New(store storage.Store) (*Tracker, error) {
	bundle, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load bundle: %w", err)
	}
	return &Tracker{bundle: bundle, store: store, now: time.Now}, nil
}

// WithClock overrides the time source. Used by tests to pin "today".
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Profile returns a copy of the current profile.
func (t *Tracker) Profile() models.Profile {
	return t.bundle.Profile
}

// NutritionPlan returns the cached nutrition plan, nil when none exists.
func (t *Tracker) NutritionPlan() *models.NutritionPlan {
	return t.bundle.NutritionPlan
}

// WorkoutPlan returns the cached workout plan, nil when none exists.
func (t *Tracker) WorkoutPlan() *models.WorkoutPlan {
	return t.bundle.WorkoutPlan
}

// Logs returns the stored daily log mapping. Callers treat it as read-only
// input to the aggregation functions.
func (t *Tracker) Logs() map[string]*models.DailyLog {
	return t.bundle.DailyLogs
}

// ShoppingItems returns the user-added market items.
func (t *Tracker) ShoppingItems() []models.FoodItem {
	return t.bundle.ShoppingItems
}

// Bundle exposes the full state bundle for export. Callers must not
// mutate it.
func (t *Tracker) Bundle() *storage.Bundle {
	return t.bundle
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// TodayKey returns the canonical key for the current local day.
func (t *Tracker) TodayKey() string {
	return dateutil.Key(t.now())
}

// persist writes the whole bundle. Persistence is fire-and-forget relative
// to the mutation: the in-memory state stays authoritative either way, but
// the error is surfaced so the CLI can warn.
func (t *Tracker) persist() error {
	if err := t.store.Save(t.bundle); err != nil {
		return fmt.Errorf("persist bundle: %w", err)
	}
	return nil
}

// SetName records the onboarding name. The profile becomes usable but not
// yet calibrated.
func (t *Tracker) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	t.bundle.Profile.Name = name
	return t.persist()
}

// SaveProfile replaces the profile wholesale and marks setup complete.
func (t *Tracker) SaveProfile(p models.Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	p.SetupComplete = true
	if p.WeightHistory == nil {
		p.WeightHistory = t.bundle.Profile.WeightHistory
	}
	t.bundle.Profile = p
	return t.persist()
}

// RecordWeight updates current and target weight and appends to the
// append-only weight history.
func (t *Tracker) RecordWeight(weight, target float64) error {
	if weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	p := &t.bundle.Profile
	p.Weight = weight
	if target > 0 {
		p.TargetWeight = target
	}
	p.WeightHistory = append(p.WeightHistory, models.WeightEntry{
		Date:   t.TodayKey(),
		Weight: weight,
		Target: p.TargetWeight,
	})
	return t.persist()
}

// SetNutritionPlan replaces the nutrition plan in full. Stored daily logs
// are frozen snapshots and are never rewritten by regeneration.
func (t *Tracker) SetNutritionPlan(plan *models.NutritionPlan) error {
	if plan == nil {
		return fmt.Errorf("nutrition plan must not be nil")
	}
	t.bundle.NutritionPlan = plan
	return t.persist()
}

// SetWorkoutPlan replaces the workout plan in full.
func (t *Tracker) SetWorkoutPlan(plan *models.WorkoutPlan) error {
	if plan == nil {
		return fmt.Errorf("workout plan must not be nil")
	}
	t.bundle.WorkoutPlan = plan
	return t.persist()
}

// AddShoppingItem appends a custom market item to the persisted list.
func (t *Tracker) AddShoppingItem(item models.FoodItem) error {
	if item.Name == "" {
		return fmt.Errorf("item name must not be empty")
	}
	if item.Category == "" {
		item.Category = "Outros"
	}
	t.bundle.ShoppingItems = append(t.bundle.ShoppingItems, item)
	return t.persist()
}

// RemoveShoppingItem drops custom market items matching name
// (case-insensitive). Unknown names are a silent no-op.
func (t *Tracker) RemoveShoppingItem(name string) error {
	kept := t.bundle.ShoppingItems[:0]
	removed := false
	for _, item := range t.bundle.ShoppingItems {
		if strings.EqualFold(item.Name, name) {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil
	}
	t.bundle.ShoppingItems = kept
	return t.persist()
}
