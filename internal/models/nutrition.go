// ABOUTME: Nutrition domain models: Macros, FoodItem, Meal, NutritionPlan.
// ABOUTME: Meals carry completion state; plans are replaced wholesale.
package models

import (
	"github.com/google/uuid"
)

// MealType is the meal category within a day.
type MealType string

const (
	MealBreakfast MealType = "Café da Manhã"
	MealSnack     MealType = "Lanche"
	MealLunch     MealType = "Almoço"
	MealDinner    MealType = "Jantar"
	MealSupper    MealType = "Ceia"
)

// AllMealTypes returns all valid meal types.
var AllMealTypes = []MealType{
	MealBreakfast, MealSnack, MealLunch, MealDinner, MealSupper,
}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Macros is a calorie and macronutrient breakdown. All values non-negative.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Add accumulates other into m and returns the sum.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fats:     m.Fats + other.Fats,
	}
}

// FoodItem is one ingredient of a meal. Amount is free text; the shopping
// list groups items by Category.
type FoodItem struct {
	Name     string  `json:"name"`
	Amount   string  `json:"amount"`
	Category string  `json:"category"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// Meal is a single meal of a day. Plan meals are copied into daily logs on
// first mutation of the day; IsCustom marks user-entered meals.
type Meal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Type        MealType   `json:"type"`
	Time        string     `json:"time"`
	FoodItems   []FoodItem `json:"foodItems"`
	Macros      Macros     `json:"macros"`
	Completed   bool       `json:"completed"`
	IsCustom    bool       `json:"isCustom,omitempty"`
}

// NewCustomMeal creates a user-entered meal with a fresh unique id.
func NewCustomMeal(name string, mealType MealType, timeOfDay string, macros Macros) *Meal {
	return &Meal{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      mealType,
		Time:      timeOfDay,
		FoodItems: []FoodItem{},
		Macros:    macros,
		Completed: false,
		IsCustom:  true,
	}
}

// WithDescription sets the optional description.
func (m *Meal) WithDescription(desc string) *Meal {
	m.Description = desc
	return m
}

// Clone returns a deep copy of the meal.
func (m Meal) Clone() Meal {
	c := m
	c.FoodItems = make([]FoodItem, len(m.FoodItems))
	copy(c.FoodItems, m.FoodItems)
	return c
}

// NutritionPlan is a generated daily target plus meal templates. It is
// replaced in full on regeneration and never diffed or partially merged.
type NutritionPlan struct {
	DailyTarget Macros `json:"dailyTarget"`
	Meals       []Meal `json:"meals"`
}

// CloneMeals returns deep copies of the plan's meals with completion reset.
// Used to seed a day's log from the active plan.
func (p *NutritionPlan) CloneMeals() []Meal {
	if p == nil {
		return []Meal{}
	}
	meals := make([]Meal, 0, len(p.Meals))
	for _, m := range p.Meals {
		c := m.Clone()
		c.Completed = false
		meals = append(meals, c)
	}
	return meals
}
