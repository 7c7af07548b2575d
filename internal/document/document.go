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

// Package document defines the configuration document: the single aggregate
// holding every answer collected by the website wizard. Slots are set
// wholesale (no partial merges) and unknown slots are programmer errors.
package document

import "fmt"

// Slot names one field of the configuration document. The set is closed;
// each slot corresponds to exactly one wizard step.
type Slot string

// The ten document slots, in wizard step order.
const (
	SlotWebsiteType            Slot = "websiteType"
	SlotBusinessCategory       Slot = "businessCategory"
	SlotBusinessInfo           Slot = "businessInfo"
	SlotWebsitePurpose         Slot = "websitePurpose"
	SlotBusinessDescription    Slot = "businessDescription"
	SlotServicesSelection      Slot = "servicesSelection"
	SlotLocationInfo           Slot = "locationInfo"
	SlotWebsiteStructure       Slot = "websiteStructure"
	SlotThemeConfig            Slot = "themeConfig"
	SlotAdditionalRequirements Slot = "additionalRequirements"
)

// Slots lists every slot in wizard step order (index 0 = step 1).
var Slots = []Slot{
	SlotWebsiteType,
	SlotBusinessCategory,
	SlotBusinessInfo,
	SlotWebsitePurpose,
	SlotBusinessDescription,
	SlotServicesSelection,
	SlotLocationInfo,
	SlotWebsiteStructure,
	SlotThemeConfig,
	SlotAdditionalRequirements,
}

// Document is the wizard's configuration aggregate. A nil slot pointer means
// the slot has never been set; a non-nil pointer is always a fully-formed
// value. Only the flow controller mutates a Document.
type Document struct {
	WebsiteType            *WebsiteType            `json:"websiteType,omitempty" yaml:"websiteType,omitempty"`
	BusinessCategory       *BusinessCategory       `json:"businessCategory,omitempty" yaml:"businessCategory,omitempty"`
	BusinessInfo           *BusinessInfo           `json:"businessInfo,omitempty" yaml:"businessInfo,omitempty"`
	WebsitePurpose         *WebsitePurpose         `json:"websitePurpose,omitempty" yaml:"websitePurpose,omitempty"`
	BusinessDescription    *BusinessDescription    `json:"businessDescription,omitempty" yaml:"businessDescription,omitempty"`
	ServicesSelection      *ServicesSelection      `json:"servicesSelection,omitempty" yaml:"servicesSelection,omitempty"`
	LocationInfo           *LocationInfo           `json:"locationInfo,omitempty" yaml:"locationInfo,omitempty"`
	WebsiteStructure       *WebsiteStructure       `json:"websiteStructure,omitempty" yaml:"websiteStructure,omitempty"`
	ThemeConfig            *ThemeConfig            `json:"themeConfig,omitempty" yaml:"themeConfig,omitempty"`
	AdditionalRequirements *AdditionalRequirements `json:"additionalRequirements,omitempty" yaml:"additionalRequirements,omitempty"`
}

// New returns an empty document with every slot unset.
func New() *Document {
	return &Document{}
}

// Set overwrites a slot wholesale with the given value. The value must be
// the slot's struct type passed by value (e.g. Set(SlotBusinessInfo,
// BusinessInfo{...})). An unknown slot or a mismatched value type is a
// caller bug and panics. Derived fields (ServicesSelection.TotalServices)
// are recomputed here and never trusted from the caller.
func (d *Document) Set(slot Slot, value any) {
	switch slot {
	case SlotWebsiteType:
		v := mustBe[WebsiteType](slot, value)
		d.WebsiteType = &v
	case SlotBusinessCategory:
		v := mustBe[BusinessCategory](slot, value)
		d.BusinessCategory = &v
	case SlotBusinessInfo:
		v := mustBe[BusinessInfo](slot, value)
		d.BusinessInfo = &v
	case SlotWebsitePurpose:
		v := mustBe[WebsitePurpose](slot, value)
		v.Goals = cloneStrings(v.Goals)
		d.WebsitePurpose = &v
	case SlotBusinessDescription:
		v := mustBe[BusinessDescription](slot, value)
		v.UniqueSellingPoints = cloneStrings(v.UniqueSellingPoints)
		d.BusinessDescription = &v
	case SlotServicesSelection:
		v := mustBe[ServicesSelection](slot, value)
		v.SelectedServices = cloneServices(v.SelectedServices)
		v.CustomServices = cloneServices(v.CustomServices)
		v.TotalServices = len(v.SelectedServices) + len(v.CustomServices)
		d.ServicesSelection = &v
	case SlotLocationInfo:
		v := mustBe[LocationInfo](slot, value)
		v.ServiceAreas = cloneStrings(v.ServiceAreas)
		d.LocationInfo = &v
	case SlotWebsiteStructure:
		v := mustBe[WebsiteStructure](slot, value)
		v.SelectedSections = cloneStrings(v.SelectedSections)
		v.SelectedPages = cloneStrings(v.SelectedPages)
		d.WebsiteStructure = &v
	case SlotThemeConfig:
		v := mustBe[ThemeConfig](slot, value)
		d.ThemeConfig = &v
	case SlotAdditionalRequirements:
		v := mustBe[AdditionalRequirements](slot, value)
		v.Features = cloneStrings(v.Features)
		v.Integrations = cloneStrings(v.Integrations)
		d.AdditionalRequirements = &v
	default:
		panic(fmt.Sprintf("document: unknown slot %q", slot))
	}
}

// Get returns a copy of the slot's value and whether it is set. The copy is
// deep: mutating the returned value never touches the document. An unknown
// slot panics.
func (d *Document) Get(slot Slot) (any, bool) {
	switch slot {
	case SlotWebsiteType:
		if d.WebsiteType == nil {
			return nil, false
		}
		return *d.WebsiteType, true
	case SlotBusinessCategory:
		if d.BusinessCategory == nil {
			return nil, false
		}
		return *d.BusinessCategory, true
	case SlotBusinessInfo:
		if d.BusinessInfo == nil {
			return nil, false
		}
		return *d.BusinessInfo, true
	case SlotWebsitePurpose:
		if d.WebsitePurpose == nil {
			return nil, false
		}
		v := *d.WebsitePurpose
		v.Goals = cloneStrings(v.Goals)
		return v, true
	case SlotBusinessDescription:
		if d.BusinessDescription == nil {
			return nil, false
		}
		v := *d.BusinessDescription
		v.UniqueSellingPoints = cloneStrings(v.UniqueSellingPoints)
		return v, true
	case SlotServicesSelection:
		if d.ServicesSelection == nil {
			return nil, false
		}
		v := *d.ServicesSelection
		v.SelectedServices = cloneServices(v.SelectedServices)
		v.CustomServices = cloneServices(v.CustomServices)
		return v, true
	case SlotLocationInfo:
		if d.LocationInfo == nil {
			return nil, false
		}
		v := *d.LocationInfo
		v.ServiceAreas = cloneStrings(v.ServiceAreas)
		return v, true
	case SlotWebsiteStructure:
		if d.WebsiteStructure == nil {
			return nil, false
		}
		v := *d.WebsiteStructure
		v.SelectedSections = cloneStrings(v.SelectedSections)
		v.SelectedPages = cloneStrings(v.SelectedPages)
		return v, true
	case SlotThemeConfig:
		if d.ThemeConfig == nil {
			return nil, false
		}
		return *d.ThemeConfig, true
	case SlotAdditionalRequirements:
		if d.AdditionalRequirements == nil {
			return nil, false
		}
		v := *d.AdditionalRequirements
		v.Features = cloneStrings(v.Features)
		v.Integrations = cloneStrings(v.Integrations)
		return v, true
	default:
		panic(fmt.Sprintf("document: unknown slot %q", slot))
	}
}

// IsSet reports whether the slot holds a value.
func (d *Document) IsSet(slot Slot) bool {
	_, ok := d.Get(slot)
	return ok
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := New()
	for _, slot := range Slots {
		if v, ok := d.Get(slot); ok {
			out.Set(slot, v)
		}
	}
	return out
}

// Reset clears every slot back to unset.
func (d *Document) Reset() {
	*d = Document{}
}

// Normalize re-derives computed fields after deserialization. Persisted
// snapshots carry TotalServices for readability, but the list lengths are
// the source of truth.
func (d *Document) Normalize() {
	if d.ServicesSelection != nil {
		d.ServicesSelection.TotalServices =
			len(d.ServicesSelection.SelectedServices) + len(d.ServicesSelection.CustomServices)
	}
}

func mustBe[T any](slot Slot, value any) T {
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("document: slot %q requires %T, got %T", slot, v, value))
	}
	return v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneServices(in []Service) []Service {
	if in == nil {
		return nil
	}
	out := make([]Service, len(in))
	copy(out, in)
	return out
}
