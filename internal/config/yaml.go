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

// Package config loads and saves the siteforge YAML configuration and owns
// the application's on-disk paths.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads and parses config.yaml, then applies the environment
// overlay.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigFile())
}

// LoadConfigFrom reads config from a specific path.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadOrDefault returns the saved config, or defaults when none exists or
// the file is unreadable.
func LoadOrDefault() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = DefaultConfig()
		applyEnv(cfg)
	}
	return cfg
}

// SaveConfig writes config to config.yaml.
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(cfg, ConfigFile())
}

// SaveConfigTo writes config to a specific path.
func SaveConfigTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnv overlays connection settings from the environment, reading a
// .env file from the working directory first when present. Environment
// values win over the config file so deployments can override without
// editing it.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()
	if v := os.Getenv("SITEFORGE_ENGINE_URL"); v != "" {
		cfg.Engine.BaseURL = v
	}
	if v := os.Getenv("SITEFORGE_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
}
