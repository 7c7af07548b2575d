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

// Package validate implements the per-step validation rules of the wizard.
// Validators are pure and total: they never mutate the document and never
// panic on absent slots; missing data fails validation instead. All failing
// checks are collected, not just the first.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/site-forge/siteforge/internal/catalog"
	"github.com/site-forge/siteforge/internal/document"
)

// Steps is the fixed number of wizard steps.
const Steps = 10

// Policy carries the tunable validation thresholds. The numeric rules are
// policy, not structural invariants, so they come from configuration rather
// than being hardcoded at the call sites.
type Policy struct {
	MinDescriptionLength int // step 5: minimum business description length
	MinSections          int // step 8: minimum sections on a single-page site
	MinPages             int // step 8: minimum pages on a multi-page site
}

// DefaultPolicy returns the thresholds observed in the original wizard.
func DefaultPolicy() Policy {
	return Policy{
		MinDescriptionLength: 50,
		MinSections:          3,
		MinPages:             3,
	}
}

// Result is the outcome of validating one step.
type Result struct {
	IsValid bool
	Errors  []string
}

// Step validates the given step (1..Steps) against the document. A step
// number outside the fixed range is a caller bug and panics.
func Step(step int, doc *document.Document, pol Policy) Result {
	var errs []string
	switch step {
	case 1:
		errs = checkWebsiteType(doc)
	case 2:
		errs = checkBusinessCategory(doc)
	case 3:
		errs = checkBusinessInfo(doc)
	case 4:
		errs = checkWebsitePurpose(doc)
	case 5:
		errs = checkBusinessDescription(doc, pol)
	case 6:
		errs = checkServices(doc)
	case 7:
		errs = checkLocation(doc)
	case 8:
		errs = checkStructure(doc, pol)
	case 9:
		errs = checkTheme(doc)
	case 10:
		// Review step: always valid.
	default:
		panic(fmt.Sprintf("validate: step %d out of range 1..%d", step, Steps))
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func checkWebsiteType(doc *document.Document) []string {
	if doc.WebsiteType == nil || doc.WebsiteType.ID == "" {
		return []string{"Select a website type to continue"}
	}
	return nil
}

func checkBusinessCategory(doc *document.Document) []string {
	// Without a website type there is nothing to require yet.
	if doc.WebsiteType == nil || !catalog.RequiresCategory(doc.WebsiteType.ID) {
		return nil
	}
	typeName := doc.WebsiteType.Name
	if typeName == "" {
		typeName = doc.WebsiteType.ID
	}
	if doc.BusinessCategory == nil || doc.BusinessCategory.ID == "" {
		return []string{fmt.Sprintf("Select a business category for your %s website", strings.ToLower(typeName))}
	}
	if !catalog.IsCategoryLegal(doc.WebsiteType.ID, doc.BusinessCategory.ID) {
		return []string{fmt.Sprintf("Category %q is not available for %s websites",
			doc.BusinessCategory.Name, strings.ToLower(typeName))}
	}
	return nil
}

// subjectLabel names the thing being described in user-facing messages.
// The label varies with the website type; the rules do not.
func subjectLabel(doc *document.Document) string {
	if doc.WebsiteType == nil {
		return "Business"
	}
	switch doc.WebsiteType.ID {
	case catalog.TypeEcommerce:
		return "Store"
	case catalog.TypePortfolio:
		return "Portfolio"
	case catalog.TypeNonprofit:
		return "Organization"
	case catalog.TypeBlog:
		return "Blog"
	default:
		return "Business"
	}
}

func checkBusinessInfo(doc *document.Document) []string {
	label := subjectLabel(doc)
	var errs []string
	if doc.BusinessInfo == nil || strings.TrimSpace(doc.BusinessInfo.Name) == "" {
		errs = append(errs, label+" name is required")
	}
	if doc.BusinessInfo == nil || strings.TrimSpace(doc.BusinessInfo.Description) == "" {
		errs = append(errs, label+" description is required")
	}
	return errs
}

func checkWebsitePurpose(doc *document.Document) []string {
	var errs []string
	if doc.WebsitePurpose == nil || strings.TrimSpace(doc.WebsitePurpose.Primary) == "" {
		errs = append(errs, "Choose a primary purpose for your website")
	}
	if doc.WebsitePurpose == nil || len(doc.WebsitePurpose.Goals) == 0 {
		errs = append(errs, "Select at least one goal")
	}
	return errs
}

func checkBusinessDescription(doc *document.Document, pol Policy) []string {
	if doc.BusinessDescription == nil || strings.TrimSpace(doc.BusinessDescription.Description) == "" {
		return []string{"Describe your business before continuing"}
	}
	if n := utf8.RuneCountInString(doc.BusinessDescription.Description); n < pol.MinDescriptionLength {
		return []string{fmt.Sprintf("Description must be at least %d characters (currently %d)",
			pol.MinDescriptionLength, n)}
	}
	return nil
}

func checkServices(doc *document.Document) []string {
	total := 0
	if doc.ServicesSelection != nil {
		total = len(doc.ServicesSelection.SelectedServices) + len(doc.ServicesSelection.CustomServices)
	}
	if total < 1 {
		return []string{"Select or add at least one service"}
	}
	return nil
}

func checkLocation(doc *document.Document) []string {
	if doc.LocationInfo != nil && doc.LocationInfo.IsOnlineOnly {
		return nil
	}
	var errs []string
	if doc.LocationInfo == nil || strings.TrimSpace(doc.LocationInfo.City) == "" {
		errs = append(errs, "City is required for a physical location")
	}
	if doc.LocationInfo == nil || strings.TrimSpace(doc.LocationInfo.State) == "" {
		errs = append(errs, "State or region is required for a physical location")
	}
	return errs
}

func checkStructure(doc *document.Document, pol Policy) []string {
	if doc.WebsiteStructure == nil || doc.WebsiteStructure.Type == "" {
		return []string{"Choose a website structure"}
	}
	switch doc.WebsiteStructure.Type {
	case document.StructureSinglePage:
		if len(doc.WebsiteStructure.SelectedSections) < pol.MinSections {
			return []string{fmt.Sprintf("Select at least %d sections for a single-page site", pol.MinSections)}
		}
	case document.StructureMultiPage:
		if len(doc.WebsiteStructure.SelectedPages) < pol.MinPages {
			return []string{fmt.Sprintf("Select at least %d pages for a multi-page site", pol.MinPages)}
		}
	default:
		return []string{fmt.Sprintf("Unknown website structure %q", doc.WebsiteStructure.Type)}
	}
	return nil
}

func checkTheme(doc *document.Document) []string {
	if doc.ThemeConfig == nil || strings.TrimSpace(doc.ThemeConfig.ColorScheme.Primary) == "" {
		return []string{"Pick a primary color for your theme"}
	}
	return nil
}
