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

package document

// WebsiteType is the kind of site being built (step 1), chosen from the
// catalog (e.g. business, ecommerce, portfolio).
type WebsiteType struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// BusinessCategory is the industry category (step 2). Which categories are
// legal depends on the chosen website type; that cross-slot rule lives in
// the validators, not here.
type BusinessCategory struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// BusinessInfo holds the basic identity of the business (step 3).
type BusinessInfo struct {
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Tagline       string `json:"tagline" yaml:"tagline"`
	FoundedYear   string `json:"foundedYear" yaml:"foundedYear"`
	EmployeeCount string `json:"employeeCount" yaml:"employeeCount"`
}

// WebsitePurpose captures why the site exists (step 4): one primary purpose
// plus a set of concrete goals.
type WebsitePurpose struct {
	Primary string   `json:"primary" yaml:"primary"`
	Goals   []string `json:"goals" yaml:"goals"`
}

// BusinessDescription is the long-form pitch (step 5) used to seed content
// generation.
type BusinessDescription struct {
	Description         string   `json:"description" yaml:"description"`
	TargetAudience      string   `json:"targetAudience" yaml:"targetAudience"`
	UniqueSellingPoints []string `json:"uniqueSellingPoints" yaml:"uniqueSellingPoints"`
}

// Service is a single offered service, either picked from the catalog or
// authored by the user.
type Service struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Custom      bool   `json:"custom" yaml:"custom"`
}

// ServicesSelection holds the two ordered service lists (step 6).
// TotalServices is derived from the list lengths on every mutation.
type ServicesSelection struct {
	SelectedServices []Service `json:"selectedServices" yaml:"selectedServices"`
	CustomServices   []Service `json:"customServices" yaml:"customServices"`
	TotalServices    int       `json:"totalServices" yaml:"totalServices"`
}

// LocationInfo describes where the business operates (step 7). When
// IsOnlineOnly is true the physical address fields may stay empty.
type LocationInfo struct {
	IsOnlineOnly bool     `json:"isOnlineOnly" yaml:"isOnlineOnly"`
	Address      string   `json:"address" yaml:"address"`
	City         string   `json:"city" yaml:"city"`
	State        string   `json:"state" yaml:"state"`
	Country      string   `json:"country" yaml:"country"`
	Phone        string   `json:"phone" yaml:"phone"`
	Email        string   `json:"email" yaml:"email"`
	ServiceAreas []string `json:"serviceAreas" yaml:"serviceAreas"`
}

// Structure type values for WebsiteStructure.Type.
const (
	StructureSinglePage = "single-page"
	StructureMultiPage  = "multi-page"
)

// WebsiteStructure is the chosen site layout (step 8): single-page with
// sections or multi-page with pages.
type WebsiteStructure struct {
	Type             string   `json:"type" yaml:"type"`
	SelectedSections []string `json:"selectedSections" yaml:"selectedSections"`
	SelectedPages    []string `json:"selectedPages" yaml:"selectedPages"`
}

// ColorScheme is a named trio of theme colors.
type ColorScheme struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
}

// ThemeConfig holds visual preferences (step 9).
type ThemeConfig struct {
	ColorScheme ColorScheme `json:"colorScheme" yaml:"colorScheme"`
	FontFamily  string      `json:"fontFamily" yaml:"fontFamily"`
	Style       string      `json:"style" yaml:"style"`
}

// AdditionalRequirements is the free-form wish list (step 10's review screen
// edits it inline; it is never required for completion).
type AdditionalRequirements struct {
	Features     []string `json:"features" yaml:"features"`
	Integrations []string `json:"integrations" yaml:"integrations"`
	Notes        string   `json:"notes" yaml:"notes"`
}
