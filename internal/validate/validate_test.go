// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package validate

import (
	"strings"
	"testing"

	"github.com/site-forge/siteforge/internal/document"
)

func TestStep_OutOfRangePanics(t *testing.T) {
	for _, step := range []int{0, 11, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Step(%d) did not panic", step)
				}
			}()
			Step(step, document.New(), DefaultPolicy())
		}()
	}
}

func TestStep_EmptyDocument(t *testing.T) {
	doc := document.New()
	pol := DefaultPolicy()

	// Step 2 passes on an empty document (no type chosen yet), step 10 is
	// always valid; every other step must fail.
	for step := 1; step <= Steps; step++ {
		res := Step(step, doc, pol)
		wantValid := step == 2 || step == 10
		if res.IsValid != wantValid {
			t.Errorf("Step(%d) on empty document IsValid = %v, want %v", step, res.IsValid, wantValid)
		}
	}
}

func TestStep1_RequiresWebsiteType(t *testing.T) {
	doc := document.New()
	if res := Step(1, doc, DefaultPolicy()); res.IsValid {
		t.Error("step 1 valid with no website type")
	}

	doc.Set(document.SlotWebsiteType, document.WebsiteType{ID: "portfolio", Name: "Portfolio"})
	if res := Step(1, doc, DefaultPolicy()); !res.IsValid {
		t.Errorf("step 1 invalid with a website type: %v", res.Errors)
	}
}

func TestStep2_CategoryOnlyWhenTypeRequiresIt(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotWebsiteType, document.WebsiteType{ID: "portfolio", Name: "Portfolio"})
	if res := Step(2, doc, DefaultPolicy()); !res.IsValid {
		t.Errorf("step 2 invalid for a type without categories: %v", res.Errors)
	}

	doc.Set(document.SlotWebsiteType, document.WebsiteType{ID: "business", Name: "Business"})
	if res := Step(2, doc, DefaultPolicy()); res.IsValid {
		t.Error("step 2 valid for a business site with no category")
	}

	doc.Set(document.SlotBusinessCategory, document.BusinessCategory{ID: "restaurant", Name: "Restaurant"})
	if res := Step(2, doc, DefaultPolicy()); !res.IsValid {
		t.Errorf("step 2 invalid with a legal category: %v", res.Errors)
	}
}

func TestStep2_RejectsCrossTypeCategory(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotWebsiteType, document.WebsiteType{ID: "ecommerce", Name: "E-commerce"})
	// restaurant belongs to business sites, not stores
	doc.Set(document.SlotBusinessCategory, document.BusinessCategory{ID: "restaurant", Name: "Restaurant"})

	res := Step(2, doc, DefaultPolicy())
	if res.IsValid {
		t.Fatal("step 2 valid with a category from another website type")
	}
	if !strings.Contains(res.Errors[0], "not available") {
		t.Errorf("error = %q, want mention of availability", res.Errors[0])
	}
}

func TestStep3_CollectsAllErrors(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotBusinessInfo, document.BusinessInfo{Name: "  ", Description: ""})

	res := Step(3, doc, DefaultPolicy())
	if len(res.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2 (name and description): %v", len(res.Errors), res.Errors)
	}
}

func TestStep3_SubjectLabelFollowsType(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotWebsiteType, document.WebsiteType{ID: "ecommerce", Name: "E-commerce"})

	res := Step(3, doc, DefaultPolicy())
	if !strings.HasPrefix(res.Errors[0], "Store") {
		t.Errorf("error = %q, want Store-prefixed label for ecommerce", res.Errors[0])
	}
}

func TestStep5_MinimumLengthCountsRunes(t *testing.T) {
	pol := Policy{MinDescriptionLength: 10, MinSections: 3, MinPages: 3}
	doc := document.New()

	// 10 multi-byte runes: must pass a 10-rune minimum.
	doc.Set(document.SlotBusinessDescription, document.BusinessDescription{Description: "ääääääääää"})
	if res := Step(5, doc, pol); !res.IsValid {
		t.Errorf("step 5 invalid for 10 runes with minimum 10: %v", res.Errors)
	}

	doc.Set(document.SlotBusinessDescription, document.BusinessDescription{Description: "ääääääääa"})
	res := Step(5, doc, pol)
	if res.IsValid {
		t.Fatal("step 5 valid for 9 runes with minimum 10")
	}
	if !strings.Contains(res.Errors[0], "currently 9") {
		t.Errorf("error = %q, want current count 9", res.Errors[0])
	}
}

func TestStep6_AnyServiceCounts(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotServicesSelection, document.ServicesSelection{
		CustomServices: []document.Service{{ID: "x", Name: "Consulting", Custom: true}},
	})
	if res := Step(6, doc, DefaultPolicy()); !res.IsValid {
		t.Errorf("step 6 invalid with one custom service: %v", res.Errors)
	}
}

func TestStep7_OnlineOnlyBypassesAddress(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotLocationInfo, document.LocationInfo{IsOnlineOnly: true})
	if res := Step(7, doc, DefaultPolicy()); !res.IsValid {
		t.Errorf("step 7 invalid for an online-only business: %v", res.Errors)
	}

	doc.Set(document.SlotLocationInfo, document.LocationInfo{City: "Utrecht"})
	res := Step(7, doc, DefaultPolicy())
	if res.IsValid {
		t.Fatal("step 7 valid with city but no state")
	}
	if len(res.Errors) != 1 {
		t.Errorf("len(Errors) = %d, want 1: %v", len(res.Errors), res.Errors)
	}
}

func TestStep8_ThresholdFollowsStructureType(t *testing.T) {
	pol := DefaultPolicy()
	doc := document.New()

	doc.Set(document.SlotWebsiteStructure, document.WebsiteStructure{
		Type:             document.StructureSinglePage,
		SelectedSections: []string{"hero", "about"},
		SelectedPages:    []string{"home", "about", "services", "contact"},
	})
	if res := Step(8, doc, pol); res.IsValid {
		t.Error("step 8 valid with 2 sections on a single-page site (pages must not count)")
	}

	doc.Set(document.SlotWebsiteStructure, document.WebsiteStructure{
		Type:          document.StructureMultiPage,
		SelectedPages: []string{"home", "about", "contact"},
	})
	if res := Step(8, doc, pol); !res.IsValid {
		t.Errorf("step 8 invalid with 3 pages on a multi-page site: %v", res.Errors)
	}
}

func TestStep9_RequiresPrimaryColor(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotThemeConfig, document.ThemeConfig{FontFamily: "Inter", Style: "modern"})
	if res := Step(9, doc, DefaultPolicy()); res.IsValid {
		t.Error("step 9 valid without a primary color")
	}

	doc.Set(document.SlotThemeConfig, document.ThemeConfig{
		ColorScheme: document.ColorScheme{Primary: "#1e6091"},
	})
	if res := Step(9, doc, DefaultPolicy()); !res.IsValid {
		t.Errorf("step 9 invalid with a primary color: %v", res.Errors)
	}
}

func TestStep_NeverMutatesDocument(t *testing.T) {
	doc := document.New()
	doc.Set(document.SlotWebsiteType, document.WebsiteType{ID: "business", Name: "Business"})
	before := doc.Clone()

	for step := 1; step <= Steps; step++ {
		Step(step, doc, DefaultPolicy())
	}

	if doc.WebsiteType == nil || *doc.WebsiteType != *before.WebsiteType {
		t.Error("validation mutated the document")
	}
	if doc.BusinessInfo != nil {
		t.Error("validation filled a slot")
	}
}
