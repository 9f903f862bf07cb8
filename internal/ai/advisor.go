// ABOUTME: Advisor capability interface for the external generative model.
// ABOUTME: Core logic depends on this boundary, never on a live service.
package ai

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

// Advisor is the outbound AI collaborator boundary: plan generation, photo
// analysis and chat. Responses are opaque validated payloads; a malformed
// response is a generation failure, never a partial commit.
type Advisor interface {
	GenerateNutritionPlan(ctx context.Context, profile models.Profile) (*models.NutritionPlan, error)
	GenerateWorkoutPlan(ctx context.Context, profile models.Profile) (*models.WorkoutPlan, error)
	AnalyzeMealPhoto(ctx context.Context, imageData []byte, mimeType string) (*models.PhotoAnalysis, error)
	Chat(ctx context.Context, history []models.ChatMessage, message string, profile models.Profile) (string, error)
}

// validateNutritionPlan checks the structural shape of a generated plan
// and normalizes it: fresh ids where missing, completion reset.
func validateNutritionPlan(plan *models.NutritionPlan) error {
	if plan == nil {
		return fmt.Errorf("empty plan")
	}
	if len(plan.Meals) == 0 {
		return fmt.Errorf("plan has no meals")
	}
	if plan.DailyTarget.Calories <= 0 {
		return fmt.Errorf("plan has no daily calorie target")
	}
	for i := range plan.Meals {
		if plan.Meals[i].Name == "" {
			return fmt.Errorf("meal %d has no name", i)
		}
		if plan.Meals[i].ID == "" {
			plan.Meals[i].ID = uuid.New().String()
		}
		plan.Meals[i].Completed = false
		plan.Meals[i].IsCustom = false
		if plan.Meals[i].FoodItems == nil {
			plan.Meals[i].FoodItems = []models.FoodItem{}
		}
	}
	return nil
}

// validateWorkoutPlan checks the structural shape of a generated split.
func validateWorkoutPlan(plan *models.WorkoutPlan) error {
	if plan == nil {
		return fmt.Errorf("empty plan")
	}
	if len(plan.Splits) == 0 {
		return fmt.Errorf("plan has no splits")
	}
	if len(plan.WeeklySchedule) == 0 {
		return fmt.Errorf("plan has no weekly schedule")
	}
	for i := range plan.Splits {
		if plan.Splits[i].Letter == "" {
			return fmt.Errorf("split %d has no letter", i)
		}
	}
	return nil
}
