// ABOUTME: Tests for Profile model, defaults and enum validators.
// ABOUTME: Validates onboarding gates and the documented fallback values.
package models

import (
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	if p.Usable() {
		t.Error("default profile should not be usable")
	}
	if p.Calibrated() {
		t.Error("default profile should not be calibrated")
	}
	if p.Gender != GenderFemale {
		t.Errorf("Gender = %s, want female", p.Gender)
	}
	if p.ActivityLevel != ActivityModerate {
		t.Errorf("ActivityLevel = %s, want moderate", p.ActivityLevel)
	}
	if p.Goal != GoalLoseWeight {
		t.Errorf("Goal = %s, want lose_weight", p.Goal)
	}
	if p.MealsPerDay != 4 || p.WorkoutDays != 4 || p.WorkoutTime != 45 {
		t.Errorf("schedule defaults = %d meals, %d days, %d min; want 4/4/45",
			p.MealsPerDay, p.WorkoutDays, p.WorkoutTime)
	}
	if p.WeightHistory == nil {
		t.Error("WeightHistory is nil, want empty slice")
	}
}

func TestUsableAndCalibrated(t *testing.T) {
	p := DefaultProfile()
	p.Name = "Karen"
	if !p.Usable() {
		t.Error("named profile not usable")
	}
	if p.Calibrated() {
		t.Error("profile calibrated without setup")
	}

	p.SetupComplete = true
	if !p.Calibrated() {
		t.Error("profile not calibrated after setup")
	}
}

func TestIsValidGender(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"male", true},
		{"female", true},
		{"other", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidGender(tt.in); got != tt.want {
			t.Errorf("IsValidGender(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidActivityLevel(t *testing.T) {
	for _, a := range AllActivityLevels {
		if !IsValidActivityLevel(string(a)) {
			t.Errorf("IsValidActivityLevel(%s) = false", a)
		}
	}
	if IsValidActivityLevel("couch") {
		t.Error("IsValidActivityLevel(couch) = true")
	}
}

func TestIsValidGoal(t *testing.T) {
	for _, g := range AllGoals {
		if !IsValidGoal(string(g)) {
			t.Errorf("IsValidGoal(%s) = false", g)
		}
	}
	if IsValidGoal("bulk") {
		t.Error("IsValidGoal(bulk) = true")
	}
}
