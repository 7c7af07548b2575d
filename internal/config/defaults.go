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

import "os"

// DefaultConfig returns a minimal default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Engine: EngineConfig{
			BaseURL:        "http://localhost:8001",
			TimeoutSeconds: 30,
		},
		Storage: StorageConfig{
			Backend: StorageFile,
		},
		Wizard: WizardConfig{
			AutosaveDebounceMS: 100,
		},
	}
}

// EnsureDirs creates the siteforge directory structure if it doesn't exist.
func EnsureDirs() {
	for _, d := range []string{Home, Cache, Data} {
		os.MkdirAll(d, 0755)
	}
}

// ConfigExists returns true if config.yaml exists.
func ConfigExists() bool {
	_, err := os.Stat(ConfigFile())
	return err == nil
}

// WriteDefaults writes the default config if none exists.
func WriteDefaults() error {
	if ConfigExists() {
		return nil
	}
	return SaveConfig(DefaultConfig())
}
