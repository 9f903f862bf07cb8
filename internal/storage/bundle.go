// ABOUTME: Bundle is the single atomically-persisted application state.
// ABOUTME: Profile, plans, daily logs and market items live and die together.
package storage

import (
	"github.com/KarenBrasil/vida-fit/internal/models"
)

// Bundle is the whole persisted state. There is no partial persistence:
// every mutation writes the complete bundle under one key.
//
// ShoppingItems is user-added market items; absent in older payloads and
// tolerated as a default-empty field.
type Bundle struct {
	Profile       models.Profile              `json:"profile"`
	NutritionPlan *models.NutritionPlan       `json:"nutritionPlan"`
	WorkoutPlan   *models.WorkoutPlan         `json:"workoutPlan"`
	DailyLogs     map[string]*models.DailyLog `json:"dailyLogs"`
	ShoppingItems []models.FoodItem           `json:"shoppingItems,omitempty"`
}

// NewBundle returns the documented startup fallback: default profile, no
// plans, empty collections.
func NewBundle() *Bundle {
	return &Bundle{
		Profile:       models.DefaultProfile(),
		DailyLogs:     map[string]*models.DailyLog{},
		ShoppingItems: []models.FoodItem{},
	}
}

// normalize repairs nil collections after decoding a partial payload so
// callers never see nil maps or slices.
func (b *Bundle) normalize() {
	if b.DailyLogs == nil {
		b.DailyLogs = map[string]*models.DailyLog{}
	}
	if b.ShoppingItems == nil {
		b.ShoppingItems = []models.FoodItem{}
	}
	if b.Profile.WeightHistory == nil {
		b.Profile.WeightHistory = []models.WeightEntry{}
	}
}
