// ABOUTME: MCP resource implementations for vidafit state.
// ABOUTME: Provides vidafit://today, vidafit://profile and vidafit://plan/nutrition.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KarenBrasil/vida-fit/internal/metrics"
)

func (s *Server) registerResources() {
	// vidafit://today - Today's log with derived macros
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vidafit://today",
		Name:        "Today's Log",
		Description: "Today's meals, workout flag and consumed-vs-target macros",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// vidafit://profile - Biometric profile
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vidafit://profile",
		Name:        "User Profile",
		Description: "Biometrics, preferences and weight history",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	// vidafit://plan/nutrition - Active nutrition plan
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vidafit://plan/nutrition",
		Name:        "Nutrition Plan",
		Description: "The active generated nutrition plan",
		MIMEType:    "application/json",
	}, s.handleNutritionPlanResource)
}

// Resource handlers

func (s *Server) jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	view := s.tracker.Today()
	consumed := metrics.Consumed(view.Meals)
	target := metrics.Target(s.tracker.NutritionPlan())
	return s.jsonResource("vidafit://today", map[string]any{
		"log":       view,
		"consumed":  consumed,
		"target":    target,
		"progress":  metrics.Progress(consumed, target),
		"remaining": metrics.Remaining(consumed, target),
	})
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return s.jsonResource("vidafit://profile", s.tracker.Profile())
}

func (s *Server) handleNutritionPlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plan := s.tracker.NutritionPlan()
	if plan == nil {
		return s.jsonResource("vidafit://plan/nutrition", map[string]any{
			"message": "No nutrition plan generated yet.",
		})
	}
	return s.jsonResource("vidafit://plan/nutrition", plan)
}
