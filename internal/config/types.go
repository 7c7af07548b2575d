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

package config

import "github.com/site-forge/siteforge/internal/validate"

// Snapshot storage backends.
const (
	StorageFile   = "file"
	StorageBadger = "badger"
)

// Config is the top-level siteforge configuration (config.yaml).
type Config struct {
	Version  int            `yaml:"version"`
	Engine   EngineConfig   `yaml:"engine"`
	Database DatabaseConfig `yaml:"database,omitempty"`
	Storage  StorageConfig  `yaml:"storage"`
	Wizard   WizardConfig   `yaml:"wizard"`
}

// EngineConfig points at the external generation engine.
type EngineConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// DatabaseConfig holds the backend database connection string, used only by
// the health check.
type DatabaseConfig struct {
	URL string `yaml:"url,omitempty"`
}

// StorageConfig selects where wizard progress snapshots live.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "badger"
}

// WizardConfig carries wizard behavior knobs, including the validation
// thresholds kept as policy rather than hardcoded rules.
type WizardConfig struct {
	AutosaveDebounceMS   int `yaml:"autosave_debounce_ms,omitempty"`
	MinDescriptionLength int `yaml:"min_description_length,omitempty"`
	MinSections          int `yaml:"min_sections,omitempty"`
	MinPages             int `yaml:"min_pages,omitempty"`
}

// Policy converts the configured thresholds to a validation policy, filling
// zero values from the defaults.
func (w WizardConfig) Policy() validate.Policy {
	pol := validate.DefaultPolicy()
	if w.MinDescriptionLength > 0 {
		pol.MinDescriptionLength = w.MinDescriptionLength
	}
	if w.MinSections > 0 {
		pol.MinSections = w.MinSections
	}
	if w.MinPages > 0 {
		pol.MinPages = w.MinPages
	}
	return pol
}
