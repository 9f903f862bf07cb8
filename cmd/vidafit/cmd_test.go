// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Tests shortID, resolveDate, expandMealID, weeks and mime validation.
package main

import (
	"testing"
	"time"

	"github.com/KarenBrasil/vida-fit/internal/models"
	"github.com/KarenBrasil/vida-fit/internal/storage"
	"github.com/KarenBrasil/vida-fit/internal/tracker"
)

// setupGlobals points the command globals at an in-memory tracker pinned
// to 2025-03-12.
func setupGlobals(t *testing.T) {
	t.Helper()
	var err error
	trk, err = tracker.New(storage.NewMemory())
	if err != nil {
		t.Fatalf("tracker.New failed: %v", err)
	}
	trk.WithClock(func() time.Time {
		return time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	})
}

func TestShortID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a1b2c3d4-e5f6-7890-abcd-ef1234567890", "a1b2c3d4"},
		{"short", "short"},
		{"exactly8", "exactly8"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortID(tt.in); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveDate(t *testing.T) {
	setupGlobals(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty defaults to today", "", "2025-03-12"},
		{"valid date passes through", "2025-03-01", "2025-03-01"},
		{"padded form canonicalized", "2025-03-09", "2025-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveDate(tt.in); got != tt.want {
				t.Errorf("resolveDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandMealID(t *testing.T) {
	meals := []models.Meal{
		{ID: "a1b2c3d4-1111", Name: "Café"},
		{ID: "a1b2ffff-2222", Name: "Almoço"},
		{ID: "ffffffff-3333", Name: "Jantar"},
	}

	tests := []struct {
		name    string
		prefix  string
		want    string
		wantErr bool
	}{
		{"unique prefix", "ffff", "ffffffff-3333", false},
		{"full id", "a1b2c3d4-1111", "a1b2c3d4-1111", false},
		{"longer unique prefix", "a1b2c3", "a1b2c3d4-1111", false},
		{"ambiguous prefix", "a1b2", "", true},
		{"no match", "zzzz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandMealID(meals, tt.prefix)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expandMealID(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestValidWeeks(t *testing.T) {
	for _, w := range []int{1, 2, 4} {
		if err := validWeeks(w); err != nil {
			t.Errorf("validWeeks(%d) errored: %v", w, err)
		}
	}
	for _, w := range []int{0, 3, 5, -1} {
		if err := validWeeks(w); err == nil {
			t.Errorf("validWeeks(%d) did not error", w)
		}
	}
}

func TestPhotoMIME(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"almoco.jpg", "image/jpeg", false},
		{"almoco.JPEG", "image/jpeg", false},
		{"prato.png", "image/png", false},
		{"prato.webp", "image/webp", false},
		{"foto.heic", "image/heic", false},
		{"doc.pdf", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := photoMIME(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("photoMIME(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
