// ABOUTME: Typed payload contracts for the AI collaborator boundary.
// ABOUTME: PhotoAnalysis and ChatMessage shapes mirror the generation API.
package models

// IdentifiedFood is one food recognized in a meal photo.
type IdentifiedFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

// PhotoAnalysis is the validated result of a meal photo analysis.
type PhotoAnalysis struct {
	IdentifiedFoods []IdentifiedFood `json:"identifiedFoods"`
	EstimatedMacros Macros           `json:"estimatedMacros"`
	Feedback        string           `json:"feedback"`
	Timestamp       int64            `json:"timestamp"`
}

// ChatMessage is one turn of the nutritionist chat history.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
