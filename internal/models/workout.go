// ABOUTME: Workout domain models: Exercise, WorkoutSplit, WorkoutPlan.
// ABOUTME: The weekly schedule maps day names to split letters; gaps are rest days.
package models

// ExerciseMedia holds demonstration media references for an exercise.
type ExerciseMedia struct {
	FrontGif string `json:"front_gif"`
	SideGif  string `json:"side_gif,omitempty"`
}

// Exercise is one movement inside a workout split.
type Exercise struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Sets       int           `json:"sets"`
	Reps       string        `json:"reps"`
	Rest       int           `json:"rest"`
	Target     string        `json:"target"`
	Difficulty string        `json:"difficulty"`
	Media      ExerciseMedia `json:"media"`
	Steps      []string      `json:"steps"`
}

// WorkoutSplit is a lettered training session (e.g. "A" - upper body).
type WorkoutSplit struct {
	ID        string     `json:"id"`
	Letter    string     `json:"letter"`
	Name      string     `json:"name"`
	Region    string     `json:"region"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutPlan maps weekday names to split letters plus the split details.
// Replaced in full on regeneration.
type WorkoutPlan struct {
	WeeklySchedule map[string]string `json:"weeklySchedule"`
	Splits         []WorkoutSplit    `json:"splits"`
}

// SplitFor returns the split scheduled for the given weekday name, or nil
// when the day is a rest day.
func (p *WorkoutPlan) SplitFor(day string) *WorkoutSplit {
	if p == nil {
		return nil
	}
	letter, ok := p.WeeklySchedule[day]
	if !ok || letter == "" {
		return nil
	}
	for i := range p.Splits {
		if p.Splits[i].Letter == letter {
			return &p.Splits[i]
		}
	}
	return nil
}
