// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package catalog

import "testing"

func TestWebsiteTypes_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, wt := range WebsiteTypes {
		if wt.ID == "" || wt.Name == "" {
			t.Errorf("website type %+v missing ID or name", wt)
		}
		if seen[wt.ID] {
			t.Errorf("duplicate website type ID %q", wt.ID)
		}
		seen[wt.ID] = true
	}
}

func TestGetWebsiteType(t *testing.T) {
	if wt := GetWebsiteType(TypeBusiness); wt == nil || wt.ID != TypeBusiness {
		t.Errorf("GetWebsiteType(%q) = %+v, want the business type", TypeBusiness, wt)
	}
	if wt := GetWebsiteType("nope"); wt != nil {
		t.Errorf("GetWebsiteType(nope) = %+v, want nil", wt)
	}
}

func TestCategoriesFor_OnlyWhereRequired(t *testing.T) {
	for _, wt := range WebsiteTypes {
		cats := CategoriesFor(wt.ID)
		if RequiresCategory(wt.ID) && len(cats) == 0 {
			t.Errorf("type %q requires a category but offers none", wt.ID)
		}
		if !RequiresCategory(wt.ID) && len(cats) != 0 {
			t.Errorf("type %q offers categories but does not require one", wt.ID)
		}
	}
}

func TestIsCategoryLegal(t *testing.T) {
	for _, wt := range WebsiteTypes {
		for _, cat := range CategoriesFor(wt.ID) {
			if !IsCategoryLegal(wt.ID, cat.ID) {
				t.Errorf("IsCategoryLegal(%q, %q) = false for a listed category", wt.ID, cat.ID)
			}
		}
	}
	if IsCategoryLegal(TypeEcommerce, "restaurant") {
		t.Error("IsCategoryLegal(ecommerce, restaurant) = true, want false")
	}
}

func TestServicesFor_EveryCategoryHasSuggestions(t *testing.T) {
	for _, wt := range WebsiteTypes {
		for _, cat := range CategoriesFor(wt.ID) {
			services := ServicesFor(cat.ID)
			if len(services) == 0 {
				t.Errorf("category %q has no suggested services", cat.ID)
				continue
			}
			seen := map[string]bool{}
			for _, svc := range services {
				if svc.ID == "" || svc.Name == "" {
					t.Errorf("service %+v in %q missing ID or name", svc, cat.ID)
				}
				if svc.Custom {
					t.Errorf("catalog service %q in %q marked custom", svc.ID, cat.ID)
				}
				if seen[svc.ID] {
					t.Errorf("duplicate service ID %q in %q", svc.ID, cat.ID)
				}
				seen[svc.ID] = true
			}
		}
	}
}

func TestColorSchemes_Complete(t *testing.T) {
	for _, cs := range ColorSchemes {
		if cs.Name == "" || cs.Scheme.Primary == "" || cs.Scheme.Secondary == "" || cs.Scheme.Accent == "" {
			t.Errorf("color scheme %+v incomplete", cs)
		}
	}
}
