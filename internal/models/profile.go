// ABOUTME: Profile model with biometrics, preferences and weight history.
// ABOUTME: Defines Gender, ActivityLevel, Goal and related enums.
package models

// Gender is the biological sex used for BMR calculation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel describes weekly activity for the TDEE factor.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityIntense   ActivityLevel = "intense"
)

// Goal is the nutrition objective driving macro distribution.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalGainWeight Goal = "gain_weight"
	GoalMaintain   Goal = "maintain"
	GoalEatHealthy Goal = "eat_healthy"
	GoalDefinition Goal = "definition"
)

// WorkoutLocation is where the user trains.
type WorkoutLocation string

const (
	LocationHome WorkoutLocation = "home"
	LocationGym  WorkoutLocation = "gym"
)

// SplitPreference selects the workout split scheme.
type SplitPreference string

const (
	SplitUpperLower SplitPreference = "superior_inferior"
	SplitABCD       SplitPreference = "abcd"
)

// AllGenders returns all valid genders.
var AllGenders = []Gender{GenderMale, GenderFemale}

// AllActivityLevels returns all valid activity levels.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityIntense,
}

// AllGoals returns all valid goals.
var AllGoals = []Goal{
	GoalLoseWeight, GoalGainWeight, GoalMaintain, GoalEatHealthy, GoalDefinition,
}

// IsValidGender checks if a string is a valid gender.
func IsValidGender(s string) bool {
	for _, g := range AllGenders {
		if string(g) == s {
			return true
		}
	}
	return false
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, a := range AllActivityLevels {
		if string(a) == s {
			return true
		}
	}
	return false
}

// IsValidGoal checks if a string is a valid goal.
func IsValidGoal(s string) bool {
	for _, g := range AllGoals {
		if string(g) == s {
			return true
		}
	}
	return false
}

// WeightEntry is one point in the weight history, ordered by date.
type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Target float64 `json:"target"`
}

// Profile is the user's biometric and preference record.
type Profile struct {
	Name                   string          `json:"name"`
	Age                    int             `json:"age"`
	Height                 float64         `json:"height"`
	Weight                 float64         `json:"weight"`
	TargetWeight           float64         `json:"targetWeight"`
	WeightHistory          []WeightEntry   `json:"weightHistory"`
	Gender                 Gender          `json:"gender"`
	ActivityLevel          ActivityLevel   `json:"activityLevel"`
	Goal                   Goal            `json:"goal"`
	Intolerances           []string        `json:"intolerances"`
	Dislikes               []string        `json:"dislikes"`
	PreferredFoods         []string        `json:"preferredFoods"`
	ExerciseLimitations    []string        `json:"exerciseLimitations"`
	ExercisePreferences    []string        `json:"exercisePreferences"`
	MealsPerDay            int             `json:"mealsPerDay"`
	WorkoutDays            int             `json:"workoutDays"`
	WorkoutTime            int             `json:"workoutTime"`
	WorkoutLocation        WorkoutLocation `json:"workoutLocation"`
	WorkoutSplitPreference SplitPreference `json:"workoutSplitPreference"`
	SetupComplete          bool            `json:"isSetupComplete"`
}

// DefaultProfile returns the fallback profile used when no saved state
// exists or the persisted blob is unreadable.
func DefaultProfile() Profile {
	return Profile{
		Gender:                 GenderFemale,
		ActivityLevel:          ActivityModerate,
		Goal:                   GoalLoseWeight,
		Intolerances:           []string{},
		Dislikes:               []string{},
		PreferredFoods:         []string{},
		ExerciseLimitations:    []string{},
		ExercisePreferences:    []string{},
		WeightHistory:          []WeightEntry{},
		MealsPerDay:            4,
		WorkoutDays:            4,
		WorkoutTime:            45,
		WorkoutLocation:        LocationGym,
		WorkoutSplitPreference: SplitUpperLower,
	}
}

// Usable reports whether onboarding has happened (a name was entered).
func (p *Profile) Usable() bool {
	return p.Name != ""
}

// Calibrated reports whether the full biometric setup was completed.
func (p *Profile) Calibrated() bool {
	return p.SetupComplete
}
