// ABOUTME: Historical adherence percentage across all stored daily logs.
// ABOUTME: Revises retroactively as logs are mutated by explicit user action.
package metrics

import (
	"math"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

// Adherence is the percentage of completed meals over all planned meals in
// every stored log, not just the visible week. Zero when nothing has ever
// been planned.
func Adherence(logs map[string]*models.DailyLog) int {
	planned := 0
	completed := 0
	for _, log := range logs {
		planned += len(log.Meals)
		for _, m := range log.Meals {
			if m.Completed {
				completed++
			}
		}
	}
	if planned == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(planned) * 100))
}
