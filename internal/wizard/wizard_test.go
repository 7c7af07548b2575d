// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package wizard

import (
	"testing"

	"github.com/site-forge/siteforge/internal/document"
)

func TestToggleString(t *testing.T) {
	list := toggleString(nil, "hero")
	if len(list) != 1 || list[0] != "hero" {
		t.Errorf("toggleString(nil, hero) = %v, want [hero]", list)
	}

	list = toggleString(list, "about")
	list = toggleString(list, "hero")
	if len(list) != 1 || list[0] != "about" {
		t.Errorf("after adding about and removing hero, list = %v, want [about]", list)
	}
}

func TestToggleService(t *testing.T) {
	a := document.Service{ID: "a", Name: "A"}
	b := document.Service{ID: "b", Name: "B"}

	list := toggleService(nil, a)
	list = toggleService(list, b)
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}

	list = toggleService(list, a)
	if len(list) != 1 || list[0].ID != "b" {
		t.Errorf("after re-toggling a, list = %v, want [b]", list)
	}
}

func TestContainsService(t *testing.T) {
	list := []document.Service{{ID: "a"}}
	if !containsService(list, "a") {
		t.Error("containsService(a) = false, want true")
	}
	if containsService(list, "b") {
		t.Error("containsService(b) = true, want false")
	}
}
