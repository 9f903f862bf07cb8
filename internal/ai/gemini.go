// ABOUTME: Gemini REST client implementing the Advisor interface.
// ABOUTME: Plain HTTP against generateContent with key auth and JSON payloads.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is the generation model used unless overridden in config.
	DefaultModel = "gemini-2.0-flash"
)

// Gemini calls the Google generative language API.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGemini creates a client for the given API key and model. An empty
// model selects DefaultModel.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 90 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (g *Gemini) WithBaseURL(url string) *Gemini {
	g.baseURL = strings.TrimRight(url, "/")
	return g
}

// Request/response envelope for the generateContent endpoint.

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate posts a request and returns the first candidate's text.
func (g *Gemini) generate(ctx context.Context, reqBody geminiRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes a markdown code fence wrapper that models sometimes
// emit around JSON payloads.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// GenerateNutritionPlan asks for a full nutrition plan for the profile.
func (g *Gemini) GenerateNutritionPlan(ctx context.Context, profile models.Profile) (*models.NutritionPlan, error) {
	text, err := g.generate(ctx, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: nutritionPrompt(profile)}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return nil, err
	}

	var plan models.NutritionPlan
	if err := json.Unmarshal([]byte(stripFences(text)), &plan); err != nil {
		return nil, fmt.Errorf("parse nutrition plan: %w", err)
	}
	if err := validateNutritionPlan(&plan); err != nil {
		return nil, fmt.Errorf("invalid nutrition plan: %w", err)
	}
	return &plan, nil
}

// GenerateWorkoutPlan asks for a weekly split for the profile.
func (g *Gemini) GenerateWorkoutPlan(ctx context.Context, profile models.Profile) (*models.WorkoutPlan, error) {
	text, err := g.generate(ctx, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: workoutPrompt(profile)}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return nil, err
	}

	var plan models.WorkoutPlan
	if err := json.Unmarshal([]byte(stripFences(text)), &plan); err != nil {
		return nil, fmt.Errorf("parse workout plan: %w", err)
	}
	if err := validateWorkoutPlan(&plan); err != nil {
		return nil, fmt.Errorf("invalid workout plan: %w", err)
	}
	return &plan, nil
}

// AnalyzeMealPhoto sends an image for nutritional analysis. The response
// schema pins the PhotoAnalysis shape.
func (g *Gemini) AnalyzeMealPhoto(ctx context.Context, imageData []byte, mimeType string) (*models.PhotoAnalysis, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	text, err := g.generate(ctx, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{
			{InlineData: &inlineData{
				MimeType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(imageData),
			}},
			{Text: photoPrompt},
		}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   photoAnalysisSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	var analysis models.PhotoAnalysis
	if err := json.Unmarshal([]byte(stripFences(text)), &analysis); err != nil {
		return nil, fmt.Errorf("parse photo analysis: %w", err)
	}
	if len(analysis.IdentifiedFoods) == 0 && analysis.Feedback == "" {
		return nil, fmt.Errorf("photo analysis returned nothing")
	}
	analysis.Timestamp = time.Now().UnixMilli()
	return &analysis, nil
}

// Chat sends the conversation history plus the new message, with the
// profile embedded in the system instruction.
func (g *Gemini) Chat(ctx context.Context, history []models.ChatMessage, message string, profile models.Profile) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, h := range history {
		contents = append(contents, geminiContent{
			Role:  h.Role,
			Parts: []geminiPart{{Text: h.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	text, err := g.generate(ctx, geminiRequest{
		Contents:          contents,
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: chatSystemPrompt(profile)}}},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
