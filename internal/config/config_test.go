// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package config

import (
	"path/filepath"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := DefaultConfig()
	want.Engine.BaseURL = "http://engine.internal:9000"
	want.Storage.Backend = StorageBadger
	want.Wizard.MinDescriptionLength = 80

	if err := SaveConfigTo(want, path); err != nil {
		t.Fatalf("SaveConfigTo: %v", err)
	}

	got, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if got.Engine.BaseURL != want.Engine.BaseURL {
		t.Errorf("Engine.BaseURL = %q, want %q", got.Engine.BaseURL, want.Engine.BaseURL)
	}
	if got.Storage.Backend != StorageBadger {
		t.Errorf("Storage.Backend = %q, want %q", got.Storage.Backend, StorageBadger)
	}
	if got.Wizard.MinDescriptionLength != 80 {
		t.Errorf("MinDescriptionLength = %d, want 80", got.Wizard.MinDescriptionLength)
	}
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	if _, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfigFrom on missing file = nil error, want failure")
	}
}

func TestApplyEnv_OverridesConfig(t *testing.T) {
	t.Setenv("SITEFORGE_ENGINE_URL", "http://override:8001")
	t.Setenv("SITEFORGE_DATABASE_URL", "postgres://override/db")

	cfg := DefaultConfig()
	applyEnv(cfg)

	if cfg.Engine.BaseURL != "http://override:8001" {
		t.Errorf("Engine.BaseURL = %q, want the env override", cfg.Engine.BaseURL)
	}
	if cfg.Database.URL != "postgres://override/db" {
		t.Errorf("Database.URL = %q, want the env override", cfg.Database.URL)
	}
}

func TestWizardPolicy_ZerosFallBackToDefaults(t *testing.T) {
	var w WizardConfig
	pol := w.Policy()
	if pol.MinDescriptionLength != 50 || pol.MinSections != 3 || pol.MinPages != 3 {
		t.Errorf("Policy() from zero config = %+v, want defaults", pol)
	}

	w.MinSections = 5
	pol = w.Policy()
	if pol.MinSections != 5 {
		t.Errorf("MinSections = %d, want 5", pol.MinSections)
	}
	if pol.MinDescriptionLength != 50 {
		t.Errorf("MinDescriptionLength = %d, want default 50 alongside the override", pol.MinDescriptionLength)
	}
}

func TestDefaultConfig_UsableAsIs(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Engine.BaseURL == "" {
		t.Error("default Engine.BaseURL empty")
	}
	if cfg.Storage.Backend != StorageFile {
		t.Errorf("default Storage.Backend = %q, want %q", cfg.Storage.Backend, StorageFile)
	}
}
