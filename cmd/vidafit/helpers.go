// ABOUTME: Shared CLI helpers: date parsing, meal id prefix expansion.
// ABOUTME: Read paths and write paths resolve dates through the same key fn.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/KarenBrasil/vida-fit/internal/dateutil"
	"github.com/KarenBrasil/vida-fit/internal/models"
)

// shortID returns the 8-character display prefix of a meal id.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// resolveDate canonicalizes a --date flag value, defaulting to today.
// Values are re-derived through the date key function so flag input and
// internal keys can never diverge.
func resolveDate(flag string) string {
	if flag == "" {
		return trk.TodayKey()
	}
	if t, err := time.ParseInLocation("2006-01-02", flag, time.Local); err == nil {
		return dateutil.Key(t)
	}
	return flag
}

// expandMealID resolves an id prefix against the day's meals.
// Returns an error if no match or multiple matches are found.
func expandMealID(meals []models.Meal, idOrPrefix string) (string, error) {
	var matches []string
	for _, m := range meals {
		if strings.HasPrefix(m.ID, idOrPrefix) {
			matches = append(matches, m.ID)
			if len(matches) > 1 {
				break
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple meals", idOrPrefix)
	}
	return matches[0], nil
}
