// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package document

import (
	"encoding/json"
	"testing"
)

func TestSetGet_RoundTrip(t *testing.T) {
	doc := New()
	doc.Set(SlotWebsiteType, WebsiteType{ID: "business", Name: "Business"})

	got, ok := doc.Get(SlotWebsiteType)
	if !ok {
		t.Fatal("Get(SlotWebsiteType) ok = false, want true")
	}
	wt := got.(WebsiteType)
	if wt.ID != "business" {
		t.Errorf("ID = %q, want %q", wt.ID, "business")
	}
}

func TestGet_UnsetSlot(t *testing.T) {
	doc := New()
	if _, ok := doc.Get(SlotThemeConfig); ok {
		t.Error("Get on unset slot ok = true, want false")
	}
	if doc.IsSet(SlotThemeConfig) {
		t.Error("IsSet on unset slot = true, want false")
	}
}

func TestSet_WrongTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set with wrong value type did not panic")
		}
	}()
	doc := New()
	doc.Set(SlotWebsiteType, BusinessInfo{Name: "nope"})
}

func TestSet_UnknownSlotPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set with unknown slot did not panic")
		}
	}()
	doc := New()
	doc.Set(Slot("bogus"), WebsiteType{})
}

func TestSet_RecomputesTotalServices(t *testing.T) {
	doc := New()
	doc.Set(SlotServicesSelection, ServicesSelection{
		SelectedServices: []Service{{ID: "a"}, {ID: "b"}},
		CustomServices:   []Service{{ID: "c", Custom: true}},
		TotalServices:    99, // lies from the caller are ignored
	})

	if got := doc.ServicesSelection.TotalServices; got != 3 {
		t.Errorf("TotalServices = %d, want 3", got)
	}
}

func TestSet_OverwritesWholesale(t *testing.T) {
	doc := New()
	doc.Set(SlotBusinessInfo, BusinessInfo{Name: "First", Tagline: "kept?"})
	doc.Set(SlotBusinessInfo, BusinessInfo{Name: "Second"})

	if doc.BusinessInfo.Tagline != "" {
		t.Errorf("Tagline = %q, want empty after overwrite", doc.BusinessInfo.Tagline)
	}
	if doc.BusinessInfo.Name != "Second" {
		t.Errorf("Name = %q, want %q", doc.BusinessInfo.Name, "Second")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	doc := New()
	doc.Set(SlotWebsitePurpose, WebsitePurpose{Primary: "showcase", Goals: []string{"a", "b"}})

	got, _ := doc.Get(SlotWebsitePurpose)
	purpose := got.(WebsitePurpose)
	purpose.Goals[0] = "mutated"

	if doc.WebsitePurpose.Goals[0] != "a" {
		t.Errorf("document goal = %q after mutating the copy, want %q", doc.WebsitePurpose.Goals[0], "a")
	}
}

func TestSet_CopiesInputSlices(t *testing.T) {
	doc := New()
	goals := []string{"a", "b"}
	doc.Set(SlotWebsitePurpose, WebsitePurpose{Primary: "showcase", Goals: goals})
	goals[0] = "mutated"

	if doc.WebsitePurpose.Goals[0] != "a" {
		t.Errorf("document goal = %q after mutating the input slice, want %q", doc.WebsitePurpose.Goals[0], "a")
	}
}

func TestClone_Independent(t *testing.T) {
	doc := New()
	doc.Set(SlotBusinessInfo, BusinessInfo{Name: "Acme"})
	doc.Set(SlotWebsiteStructure, WebsiteStructure{
		Type:             StructureSinglePage,
		SelectedSections: []string{"hero", "about"},
	})

	clone := doc.Clone()
	clone.Set(SlotBusinessInfo, BusinessInfo{Name: "Changed"})
	clone.WebsiteStructure.SelectedSections[0] = "mutated"

	if doc.BusinessInfo.Name != "Acme" {
		t.Errorf("original Name = %q after mutating clone, want %q", doc.BusinessInfo.Name, "Acme")
	}
	if doc.WebsiteStructure.SelectedSections[0] != "hero" {
		t.Errorf("original section = %q after mutating clone, want %q", doc.WebsiteStructure.SelectedSections[0], "hero")
	}
}

func TestReset_ClearsAllSlots(t *testing.T) {
	doc := New()
	doc.Set(SlotWebsiteType, WebsiteType{ID: "business"})
	doc.Set(SlotBusinessInfo, BusinessInfo{Name: "Acme"})

	doc.Reset()

	for _, slot := range Slots {
		if doc.IsSet(slot) {
			t.Errorf("IsSet(%s) = true after Reset, want false", slot)
		}
	}
}

func TestNormalize_RecomputesDerivedCount(t *testing.T) {
	// A snapshot edited by hand may carry a stale count.
	raw := []byte(`{"servicesSelection":{"selectedServices":[{"id":"a","name":"A"}],"customServices":[],"totalServices":7}}`)
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	doc.Normalize()
	if got := doc.ServicesSelection.TotalServices; got != 1 {
		t.Errorf("TotalServices = %d after Normalize, want 1", got)
	}
}

func TestSlots_CoversEverySlotOnce(t *testing.T) {
	seen := map[Slot]bool{}
	for _, slot := range Slots {
		if seen[slot] {
			t.Errorf("slot %s listed twice", slot)
		}
		seen[slot] = true
	}
	if len(Slots) != 10 {
		t.Errorf("len(Slots) = %d, want 10", len(Slots))
	}
}
