// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/site-forge/siteforge/internal/document"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			t.Errorf("path = %q, want /api/v1/health", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health = %v, want nil", err)
	}
}

func TestHealth_EngineDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if err := client.Health(context.Background()); err == nil {
		t.Error("Health = nil on a 503, want error")
	}
}

func TestSubmit(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/generation/advanced" {
			t.Errorf("path = %q, want /api/v1/generation/advanced", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(Generation{
			GenerationID: "gen-123",
			Status:       StatusQueued,
		})
	}))
	defer srv.Close()

	doc := document.New()
	doc.Set(document.SlotWebsitePurpose, document.WebsitePurpose{
		Primary: "attract customers",
		Goals:   []string{"bookings"},
	})

	client := New(srv.URL, time.Second)
	gen, err := client.Submit(context.Background(), doc)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gen.GenerationID != "gen-123" || gen.Status != StatusQueued {
		t.Errorf("Generation = %+v, want gen-123 queued", gen)
	}

	if gotBody["generation_type"] != "website_content" {
		t.Errorf("generation_type = %v, want website_content", gotBody["generation_type"])
	}
	if gotBody["project_id"] == "" {
		t.Error("project_id empty, want a generated ID")
	}
	bc, ok := gotBody["business_context"].(map[string]any)
	if !ok || bc["wizard_data"] == nil {
		t.Errorf("business_context = %v, want wizard_data inside", gotBody["business_context"])
	}
	cr, ok := gotBody["content_requirements"].(map[string]any)
	if !ok || cr["goals"] == nil {
		t.Errorf("content_requirements = %v, want goals inside", gotBody["content_requirements"])
	}
}

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/generation/gen-123" {
			t.Errorf("path = %q, want /api/v1/generation/gen-123", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Generation{
			GenerationID: "gen-123",
			Status:       StatusCompleted,
			Progress:     100,
		})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	gen, err := client.Status(context.Background(), "gen-123")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !gen.Done() {
		t.Errorf("Done() = false for status %q, want true", gen.Status)
	}
}

func TestGeneration_Done(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{StatusQueued, false},
		{"processing", false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}
	for _, tc := range cases {
		g := Generation{Status: tc.status}
		if got := g.Done(); got != tc.want {
			t.Errorf("Done() with status %q = %v, want %v", tc.status, got, tc.want)
		}
	}
}
