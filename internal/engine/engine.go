// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package engine is the HTTP client for the external generation engine. The
// engine is a black box: this package hands it the finished configuration
// document and tracks the resulting generation job, nothing more.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/site-forge/siteforge/internal/document"
)

// Generation workflow statuses reported by the engine.
const (
	StatusQueued    = "queued"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Client talks to the generation engine's REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the engine at baseURL. A zero timeout defaults
// to 30 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Health reports whether the engine answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("connecting to engine: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine returned %d", resp.StatusCode)
	}
	return nil
}

// submission is the request body for a generation job. Field names follow
// the engine's API.
type submission struct {
	ProjectID           string         `json:"project_id"`
	GenerationType      string         `json:"generation_type"`
	BusinessContext     map[string]any `json:"business_context"`
	ContentRequirements map[string]any `json:"content_requirements"`
}

// Generation describes a generation job as reported by the engine.
type Generation struct {
	GenerationID string  `json:"generation_id"`
	ProjectID    string  `json:"project_id"`
	Status       string  `json:"status"`
	Progress     float64 `json:"progress"`
	CurrentStep  string  `json:"current_step"`
	Error        string  `json:"error,omitempty"`
}

// Done reports whether the generation reached a terminal status.
func (g *Generation) Done() bool {
	return g.Status == StatusCompleted || g.Status == StatusFailed
}

// Submit sends the finished configuration document to the engine and
// returns the queued generation job. The document is passed as-is; the
// engine owns all interpretation.
func (c *Client) Submit(ctx context.Context, doc *document.Document) (*Generation, error) {
	body, err := json.Marshal(buildSubmission(doc))
	if err != nil {
		return nil, fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/generation/advanced", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submitting to engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("engine returned %d: %s", resp.StatusCode, string(data))
	}

	var gen Generation
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return nil, fmt.Errorf("parsing engine response: %w", err)
	}
	return &gen, nil
}

// Status fetches the current state of a generation job.
func (c *Client) Status(ctx context.Context, generationID string) (*Generation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/generation/"+generationID, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("engine returned %d: %s", resp.StatusCode, string(data))
	}

	var gen Generation
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return nil, fmt.Errorf("parsing engine response: %w", err)
	}
	return &gen, nil
}

// buildSubmission maps the document into the engine's request shape. The
// whole document travels in business_context; content_requirements carries
// the slices the engine's planners read directly.
func buildSubmission(doc *document.Document) submission {
	sub := submission{
		ProjectID:           uuid.NewString(),
		GenerationType:      "website_content",
		BusinessContext:     map[string]any{"wizard_data": doc},
		ContentRequirements: map[string]any{},
	}
	if doc.WebsitePurpose != nil {
		sub.ContentRequirements["goals"] = doc.WebsitePurpose.Goals
	}
	if doc.WebsiteStructure != nil {
		sub.ContentRequirements["structure"] = doc.WebsiteStructure
	}
	if doc.AdditionalRequirements != nil {
		sub.ContentRequirements["additional"] = doc.AdditionalRequirements
	}
	return sub
}
