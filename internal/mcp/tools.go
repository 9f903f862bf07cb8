// ABOUTME: MCP tool implementations for the daily log and derived metrics.
// ABOUTME: Mutations run through the tracker; rollups reuse the pure engine.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KarenBrasil/vida-fit/internal/metrics"
	"github.com/KarenBrasil/vida-fit/internal/models"
)

func (s *Server) registerTools() {
	// get_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today",
		Description: "Get today's meal log and consumed-vs-target macros",
	}, s.handleGetToday)

	// toggle_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_meal",
		Description: "Toggle completion of a meal in a day's log",
	}, s.handleToggleMeal)

	// add_custom_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_custom_meal",
		Description: "Add a user-entered meal to a day's log",
	}, s.handleAddCustomMeal)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Mark a day's workout as completed or not",
	}, s.handleLogWorkout)

	// get_week
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_week",
		Description: "Get the current week's workout adherence and day classification",
	}, s.handleGetWeek)

	// get_adherence
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_adherence",
		Description: "Get the historical meal adherence percentage",
	}, s.handleGetAdherence)

	// get_shopping_list
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_shopping_list",
		Description: "Get the grouped market list derived from the current plan",
	}, s.handleGetShoppingList)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user profile and weight history",
	}, s.handleGetProfile)

	// record_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_weight",
		Description: "Record current weight (and optionally target weight)",
	}, s.handleRecordWeight)
}

// Tool input/output types

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date key (YYYY-MM-DD), defaults to today"`
}

type toggleMealInput struct {
	Date   string `json:"date,omitempty" jsonschema:"Date key (YYYY-MM-DD), defaults to today"`
	MealID string `json:"meal_id" jsonschema:"Meal id within the day's log"`
}

type addCustomMealInput struct {
	Date     string  `json:"date,omitempty" jsonschema:"Date key (YYYY-MM-DD), defaults to today"`
	Name     string  `json:"name" jsonschema:"Meal name"`
	Type     string  `json:"type,omitempty" jsonschema:"Meal type (Café da Manhã, Lanche, Almoço, Jantar, Ceia)"`
	Time     string  `json:"time,omitempty" jsonschema:"Time of day (HH:MM)"`
	Calories float64 `json:"calories,omitempty" jsonschema:"Calories"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"Protein grams"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"Carb grams"`
	Fats     float64 `json:"fats,omitempty" jsonschema:"Fat grams"`
}

type logWorkoutInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date key (YYYY-MM-DD), defaults to today"`
	Done *bool  `json:"done,omitempty" jsonschema:"Completed or not, defaults to true"`
}

type recordWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"Current weight in kg"`
	Target float64 `json:"target,omitempty" jsonschema:"Target weight in kg"`
}

type weeksInput struct {
	Weeks int `json:"weeks,omitempty" jsonschema:"Duration multiplier (1, 2 or 4), defaults to 1"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type todayOutput struct {
	Date      string        `json:"date"`
	Meals     []models.Meal `json:"meals"`
	Consumed  models.Macros `json:"consumed"`
	Target    models.Macros `json:"target"`
	Progress  int           `json:"progress"`
	Remaining float64       `json:"remaining"`
	Workout   bool          `json:"workout_completed"`
}

// Tool handlers

func (s *Server) resolveDate(date string) string {
	if date == "" {
		return s.tracker.TodayKey()
	}
	return date
}

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, todayOutput, error) {
	view := s.tracker.Day(s.resolveDate(input.Date))
	consumed := metrics.Consumed(view.Meals)
	target := metrics.Target(s.tracker.NutritionPlan())
	return nil, todayOutput{
		Date:      view.Date,
		Meals:     view.Meals,
		Consumed:  consumed,
		Target:    target,
		Progress:  metrics.Progress(consumed, target),
		Remaining: metrics.Remaining(consumed, target),
		Workout:   view.WorkoutCompleted,
	}, nil
}

func (s *Server) handleToggleMeal(ctx context.Context, req *mcp.CallToolRequest, input toggleMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := s.resolveDate(input.Date)
	if err := s.tracker.ToggleMeal(date, input.MealID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to toggle meal: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Toggled meal %s on %s", input.MealID, date),
	}, nil
}

func (s *Server) handleAddCustomMeal(ctx context.Context, req *mcp.CallToolRequest, input addCustomMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("meal name is required")
	}
	mealType := models.MealSnack
	if input.Type != "" {
		if !models.IsValidMealType(input.Type) {
			return nil, simpleOutput{}, fmt.Errorf("unknown meal type: %s", input.Type)
		}
		mealType = models.MealType(input.Type)
	}
	timeOfDay := input.Time
	if timeOfDay == "" {
		timeOfDay = "12:00"
	}

	date := s.resolveDate(input.Date)
	meal := models.NewCustomMeal(input.Name, mealType, timeOfDay, models.Macros{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
	})
	if err := s.tracker.AddCustomMeal(date, meal); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add meal: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s to %s (ID: %s)", meal.Name, date, meal.ID[:8]),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	done := true
	if input.Done != nil {
		done = *input.Done
	}
	date := s.resolveDate(input.Date)
	if err := s.tracker.SetWorkoutCompleted(date, done); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Workout on %s marked %v", date, done),
	}, nil
}

func (s *Server) handleGetWeek(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	now := s.tracker.Now()
	count, days := metrics.WeekWorkouts(s.tracker.Logs(), now)
	overview := metrics.WeekOverview(s.tracker.Logs(), now)
	return nil, map[string]any{
		"workouts_completed": count,
		"workout_days":       days,
		"calendar":           overview,
	}, nil
}

func (s *Server) handleGetAdherence(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, map[string]any{
		"adherence_percent": metrics.Adherence(s.tracker.Logs()),
	}, nil
}

func (s *Server) handleGetShoppingList(ctx context.Context, req *mcp.CallToolRequest, input weeksInput) (*mcp.CallToolResult, any, error) {
	weeks := input.Weeks
	if weeks <= 0 {
		weeks = 1
	}
	groups := metrics.ShoppingList(s.tracker.NutritionPlan(), s.tracker.ShoppingItems())
	return nil, map[string]any{
		"weeks":  weeks,
		"groups": groups,
	}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, models.Profile, error) {
	return nil, s.tracker.Profile(), nil
}

func (s *Server) handleRecordWeight(ctx context.Context, req *mcp.CallToolRequest, input recordWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.tracker.RecordWeight(input.Weight, input.Target); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record weight: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded weight %.1f kg", input.Weight),
	}, nil
}
