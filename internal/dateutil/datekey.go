// ABOUTME: Canonical date-key derivation for daily log indexing.
// ABOUTME: Always the local calendar day; UTC keys would shift days near midnight.
package dateutil

import "time"

// keyLayout is the canonical YYYY-MM-DD date key format.
const keyLayout = "2006-01-02"

// WeekdayInitials are the Portuguese weekday initials, Sunday first.
var WeekdayInitials = []string{"D", "S", "T", "Q", "Q", "S", "S"}

// WeekdayNames are the Portuguese weekday names used by generated workout
// schedules, Sunday first.
var WeekdayNames = []string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// Key canonicalizes a point in time to its calendar date in the time's own
// location. Every read and write path for a logical day must go through
// this function so they resolve to an identical key.
func Key(t time.Time) string {
	return t.Format(keyLayout)
}

// Today returns the date key for the current local day.
func Today() string {
	return Key(time.Now())
}

// WeekStart returns midnight of the most recent Sunday (inclusive) in t's
// location.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekKeys returns the seven date keys for the week containing t, Sunday
// through Saturday.
func WeekKeys(t time.Time) []string {
	start := WeekStart(t)
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = Key(start.AddDate(0, 0, i))
	}
	return keys
}

// WeekdayName returns the Portuguese day name for t's weekday.
func WeekdayName(t time.Time) string {
	return WeekdayNames[int(t.Weekday())]
}
