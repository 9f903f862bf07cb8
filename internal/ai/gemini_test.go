// ABOUTME: Tests for the Gemini client against a stub HTTP server.
// ABOUTME: Covers plan parsing, fence stripping, validation failures, chat.
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

// stubGemini serves a canned candidate text from a generateContent-shaped
// endpoint and captures the request body.
func stubGemini(t *testing.T, text string, captured *geminiRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			t.Error("request missing key query parameter")
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func validPlanJSON() string {
	plan := models.NutritionPlan{
		DailyTarget: models.Macros{Calories: 1800, Protein: 140, Carbs: 160, Fats: 55},
		Meals: []models.Meal{
			{Name: "Café da Manhã", Type: models.MealBreakfast, Time: "08:00",
				Macros: models.Macros{Calories: 400}},
			{Name: "Almoço", Type: models.MealLunch, Time: "12:30",
				Macros: models.Macros{Calories: 700}},
		},
	}
	data, _ := json.Marshal(plan)
	return string(data)
}

func TestGenerateNutritionPlan(t *testing.T) {
	srv := stubGemini(t, validPlanJSON(), nil)
	defer srv.Close()

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	plan, err := g.GenerateNutritionPlan(context.Background(), models.DefaultProfile())
	if err != nil {
		t.Fatalf("GenerateNutritionPlan() error: %v", err)
	}

	if plan.DailyTarget.Calories != 1800 {
		t.Errorf("DailyTarget.Calories = %v, want 1800", plan.DailyTarget.Calories)
	}
	if len(plan.Meals) != 2 {
		t.Fatalf("plan has %d meals, want 2", len(plan.Meals))
	}
	for _, m := range plan.Meals {
		if m.ID == "" {
			t.Error("validation did not assign a meal id")
		}
		if m.Completed || m.IsCustom {
			t.Errorf("meal %s not normalized: completed=%v custom=%v", m.Name, m.Completed, m.IsCustom)
		}
		if m.FoodItems == nil {
			t.Error("validation left FoodItems nil")
		}
	}
}

func TestGenerateNutritionPlanStripsFences(t *testing.T) {
	srv := stubGemini(t, "```json\n"+validPlanJSON()+"\n```", nil)
	defer srv.Close()

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	if _, err := g.GenerateNutritionPlan(context.Background(), models.DefaultProfile()); err != nil {
		t.Fatalf("fenced JSON not accepted: %v", err)
	}
}

func TestGenerateNutritionPlanRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "desculpe, não consegui"},
		{"empty meals", `{"dailyTarget":{"calories":1800},"meals":[]}`},
		{"no target", `{"dailyTarget":{"calories":0},"meals":[{"name":"Café"}]}`},
		{"unnamed meal", `{"dailyTarget":{"calories":1800},"meals":[{"name":""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := stubGemini(t, tt.text, nil)
			defer srv.Close()

			g := NewGemini("test-key", "").WithBaseURL(srv.URL)
			if _, err := g.GenerateNutritionPlan(context.Background(), models.DefaultProfile()); err == nil {
				t.Error("malformed payload did not error")
			}
		})
	}
}

func TestGenerateWorkoutPlan(t *testing.T) {
	plan := models.WorkoutPlan{
		WeeklySchedule: map[string]string{"Segunda": "A", "Quarta": "B"},
		Splits: []models.WorkoutSplit{
			{Letter: "A", Name: "Superior"},
			{Letter: "B", Name: "Inferior"},
		},
	}
	data, _ := json.Marshal(plan)

	srv := stubGemini(t, string(data), nil)
	defer srv.Close()

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	got, err := g.GenerateWorkoutPlan(context.Background(), models.DefaultProfile())
	if err != nil {
		t.Fatalf("GenerateWorkoutPlan() error: %v", err)
	}
	if len(got.Splits) != 2 {
		t.Errorf("plan has %d splits, want 2", len(got.Splits))
	}
}

func TestGenerateWorkoutPlanRejectsEmptySchedule(t *testing.T) {
	srv := stubGemini(t, `{"weeklySchedule":{},"splits":[{"letter":"A"}]}`, nil)
	defer srv.Close()

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	if _, err := g.GenerateWorkoutPlan(context.Background(), models.DefaultProfile()); err == nil {
		t.Error("empty schedule did not error")
	}
}

func TestAnalyzeMealPhoto(t *testing.T) {
	analysis := `{"identifiedFoods":[{"name":"Frango grelhado","calories":220}],
		"estimatedMacros":{"calories":450,"protein":40,"carbs":30,"fats":15},
		"feedback":"Boa refeição."}`

	var req geminiRequest
	srv := stubGemini(t, analysis, &req)
	defer srv.Close()

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	got, err := g.AnalyzeMealPhoto(context.Background(), []byte("fake-image"), "image/png")
	if err != nil {
		t.Fatalf("AnalyzeMealPhoto() error: %v", err)
	}

	if len(got.IdentifiedFoods) != 1 || got.IdentifiedFoods[0].Name != "Frango grelhado" {
		t.Errorf("IdentifiedFoods = %+v", got.IdentifiedFoods)
	}
	if got.Timestamp == 0 {
		t.Error("Timestamp not set")
	}

	// The image travels inline with a mime type; the schema pins the shape.
	parts := req.Contents[0].Parts
	if parts[0].InlineData == nil || parts[0].InlineData.MimeType != "image/png" {
		t.Errorf("first part = %+v, want inline image/png", parts[0])
	}
	if req.GenerationConfig == nil || req.GenerationConfig.ResponseSchema == nil {
		t.Error("photo request missing response schema")
	}
}

func TestAnalyzeMealPhotoEmptyResult(t *testing.T) {
	srv := stubGemini(t, `{"identifiedFoods":[],"feedback":""}`, nil)
	defer srv.Close()

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	if _, err := g.AnalyzeMealPhoto(context.Background(), []byte("x"), ""); err == nil {
		t.Error("empty analysis did not error")
	}
}

func TestChatSendsHistoryAndSystemInstruction(t *testing.T) {
	var req geminiRequest
	srv := stubGemini(t, "Pode trocar sim, mantendo a proteína.", &req)
	defer srv.Close()

	profile := models.DefaultProfile()
	profile.Name = "Karen"

	history := []models.ChatMessage{
		{Role: "user", Text: "oi"},
		{Role: "model", Text: "olá!"},
	}

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	reply, err := g.Chat(context.Background(), history, "posso trocar frango por peixe?", profile)
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if reply != "Pode trocar sim, mantendo a proteína." {
		t.Errorf("reply = %q", reply)
	}

	if len(req.Contents) != 3 {
		t.Fatalf("sent %d contents, want history + new message = 3", len(req.Contents))
	}
	if req.Contents[2].Role != "user" {
		t.Errorf("last content role = %s, want user", req.Contents[2].Role)
	}
	if req.SystemInstruction == nil {
		t.Fatal("no system instruction sent")
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGemini("test-key", "").WithBaseURL(srv.URL)
	if _, err := g.GenerateNutritionPlan(context.Background(), models.DefaultProfile()); err == nil {
		t.Error("non-200 status did not error")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
