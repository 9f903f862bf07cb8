// ABOUTME: Pure macro aggregation: consumed totals, progress, remaining.
// ABOUTME: Referentially transparent over meal lists and plan targets.
package metrics

import (
	"math"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

// Consumed sums macros over the completed meals of a day.
func Consumed(meals []models.Meal) models.Macros {
	var total models.Macros
	for _, m := range meals {
		if m.Completed {
			total = total.Add(m.Macros)
		}
	}
	return total
}

// Target returns the active plan's daily target, or zero macros when no
// plan exists.
func Target(plan *models.NutritionPlan) models.Macros {
	if plan == nil {
		return models.Macros{}
	}
	return plan.DailyTarget
}

// Progress is the consumed-vs-target calorie percentage, rounded and
// clamped to [0, 100]. Zero when the target is zero: never divides by zero.
func Progress(consumed, target models.Macros) int {
	if target.Calories <= 0 {
		return 0
	}
	pct := int(math.Round(consumed.Calories / target.Calories * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining is the calorie balance left for the day, floored at zero.
func Remaining(consumed, target models.Macros) float64 {
	if r := target.Calories - consumed.Calories; r > 0 {
		return r
	}
	return 0
}
