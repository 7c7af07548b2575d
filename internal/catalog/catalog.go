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

// Package catalog holds the static choice tables the wizard offers: website
// types, business categories per type, suggested services per category,
// page/section layouts, and theme presets. Validators consult it for
// cross-slot rules (which categories a website type allows).
package catalog

import "github.com/site-forge/siteforge/internal/document"

// Website type IDs referenced across the wizard.
const (
	TypeBusiness  = "business"
	TypeEcommerce = "ecommerce"
	TypePortfolio = "portfolio"
	TypeBlog      = "blog"
	TypeNonprofit = "nonprofit"
	TypeLanding   = "landing"
)

// WebsiteTypes defines the selectable website types (step 1).
var WebsiteTypes = []document.WebsiteType{
	{ID: TypeBusiness, Name: "Business", Description: "Present a company and its services"},
	{ID: TypeEcommerce, Name: "E-Commerce", Description: "Sell products or services online"},
	{ID: TypePortfolio, Name: "Portfolio", Description: "Showcase creative or professional work"},
	{ID: TypeBlog, Name: "Blog", Description: "Publish articles and updates"},
	{ID: TypeNonprofit, Name: "Nonprofit", Description: "Promote a cause and collect donations"},
	{ID: TypeLanding, Name: "Landing Page", Description: "Single campaign or product page"},
}

// categoriesByType maps a website type ID to its selectable business
// categories. Types absent from this map take no category (the wizard skips
// step 2 for them).
var categoriesByType = map[string][]document.BusinessCategory{
	TypeBusiness: {
		{ID: "healthcare", Name: "Healthcare", Description: "Clinics, dentists, therapists"},
		{ID: "restaurant", Name: "Restaurant & Food", Description: "Restaurants, cafés, catering"},
		{ID: "professional", Name: "Professional Services", Description: "Legal, accounting, consulting"},
		{ID: "construction", Name: "Construction & Trades", Description: "Builders, plumbers, electricians"},
		{ID: "fitness", Name: "Fitness & Wellness", Description: "Gyms, yoga studios, personal training"},
		{ID: "beauty", Name: "Beauty & Grooming", Description: "Salons, barbers, pet grooming"},
		{ID: "automotive", Name: "Automotive", Description: "Repair shops, dealerships, detailing"},
		{ID: "education", Name: "Education", Description: "Schools, tutoring, courses"},
		{ID: "realestate", Name: "Real Estate", Description: "Agencies, property management"},
		{ID: "technology", Name: "Technology", Description: "Software, IT services, agencies"},
	},
	TypeEcommerce: {
		{ID: "fashion", Name: "Fashion & Apparel", Description: "Clothing, shoes, accessories"},
		{ID: "electronics", Name: "Electronics", Description: "Gadgets, components, accessories"},
		{ID: "homegoods", Name: "Home & Garden", Description: "Furniture, decor, tools"},
		{ID: "foodbeverage", Name: "Food & Beverage", Description: "Specialty foods, drinks, subscriptions"},
		{ID: "handmade", Name: "Handmade & Crafts", Description: "Artisan goods, custom orders"},
		{ID: "health", Name: "Health & Beauty", Description: "Cosmetics, supplements, care products"},
	},
}

// servicesByCategory maps a business category ID to suggested services
// (step 6). Categories without suggestions still allow custom services.
var servicesByCategory = map[string][]document.Service{
	"healthcare": {
		{ID: "consultation", Name: "Consultations", Description: "General appointments and assessments"},
		{ID: "preventive", Name: "Preventive Care", Description: "Checkups and screenings"},
		{ID: "treatment", Name: "Treatment Programs", Description: "Ongoing treatment plans"},
		{ID: "telehealth", Name: "Telehealth", Description: "Remote video appointments"},
	},
	"restaurant": {
		{ID: "dinein", Name: "Dine-In", Description: "Table service at the venue"},
		{ID: "takeout", Name: "Takeout", Description: "Order ahead and pick up"},
		{ID: "delivery", Name: "Delivery", Description: "Local delivery service"},
		{ID: "catering", Name: "Catering", Description: "Events and private functions"},
	},
	"professional": {
		{ID: "consulting", Name: "Consulting", Description: "Advisory engagements"},
		{ID: "audits", Name: "Audits & Reviews", Description: "Formal assessments"},
		{ID: "retainer", Name: "Retainer Services", Description: "Ongoing support contracts"},
	},
	"construction": {
		{ID: "renovation", Name: "Renovations", Description: "Remodeling and upgrades"},
		{ID: "newbuild", Name: "New Builds", Description: "Ground-up construction"},
		{ID: "repairs", Name: "Repairs", Description: "Callout and emergency repairs"},
	},
	"fitness": {
		{ID: "classes", Name: "Group Classes", Description: "Scheduled group sessions"},
		{ID: "personal", Name: "Personal Training", Description: "One-on-one coaching"},
		{ID: "memberships", Name: "Memberships", Description: "Recurring access plans"},
	},
	"beauty": {
		{ID: "styling", Name: "Styling & Cuts", Description: "Hair styling and cutting"},
		{ID: "grooming", Name: "Grooming", Description: "Professional grooming services"},
		{ID: "spa", Name: "Spa Treatments", Description: "Relaxation and skincare"},
	},
	"automotive": {
		{ID: "maintenance", Name: "Maintenance", Description: "Scheduled servicing"},
		{ID: "diagnostics", Name: "Diagnostics", Description: "Fault finding and inspection"},
		{ID: "bodywork", Name: "Bodywork", Description: "Repairs and detailing"},
	},
	"education": {
		{ID: "tutoring", Name: "Tutoring", Description: "One-on-one lessons"},
		{ID: "courses", Name: "Courses", Description: "Structured programs"},
		{ID: "workshops", Name: "Workshops", Description: "Short intensive sessions"},
	},
	"realestate": {
		{ID: "sales", Name: "Property Sales", Description: "Buying and selling"},
		{ID: "rentals", Name: "Rentals", Description: "Letting and tenancy"},
		{ID: "management", Name: "Property Management", Description: "Ongoing management"},
	},
	"technology": {
		{ID: "development", Name: "Software Development", Description: "Custom software builds"},
		{ID: "support", Name: "IT Support", Description: "Helpdesk and maintenance"},
		{ID: "hosting", Name: "Hosting & Cloud", Description: "Infrastructure services"},
	},
}

// PurposeOptions defines the primary-purpose choices for step 4.
var PurposeOptions = []string{
	"Attract new customers",
	"Provide information",
	"Sell online",
	"Build credibility",
	"Generate leads",
	"Share updates and news",
}

// GoalOptions defines the selectable goals for step 4.
var GoalOptions = []string{
	"Appear in local search results",
	"Let visitors contact us easily",
	"Showcase our work",
	"Collect bookings or appointments",
	"Grow a mailing list",
	"Explain our services clearly",
	"Build trust with testimonials",
}

// Sections defines the selectable single-page sections (step 8).
var Sections = []string{
	"hero",
	"about",
	"services",
	"testimonials",
	"gallery",
	"team",
	"pricing",
	"faq",
	"contact",
}

// Pages defines the selectable multi-page pages (step 8).
var Pages = []string{
	"home",
	"about",
	"services",
	"gallery",
	"testimonials",
	"pricing",
	"blog",
	"contact",
}

// ColorSchemes defines the preset theme color schemes (step 9).
var ColorSchemes = []struct {
	Name   string
	Scheme document.ColorScheme
}{
	{Name: "Ocean", Scheme: document.ColorScheme{Primary: "#1e6091", Secondary: "#89c2d9", Accent: "#ffb703"}},
	{Name: "Forest", Scheme: document.ColorScheme{Primary: "#2d6a4f", Secondary: "#95d5b2", Accent: "#e9c46a"}},
	{Name: "Slate", Scheme: document.ColorScheme{Primary: "#343a40", Secondary: "#adb5bd", Accent: "#e63946"}},
	{Name: "Plum", Scheme: document.ColorScheme{Primary: "#5a189a", Secondary: "#c77dff", Accent: "#f4a261"}},
	{Name: "Sunrise", Scheme: document.ColorScheme{Primary: "#bc4749", Secondary: "#f2e8cf", Accent: "#386641"}},
}

// FontFamilies defines the selectable font pairings (step 9).
var FontFamilies = []string{
	"Inter",
	"Merriweather",
	"Poppins",
	"Lora",
	"Source Sans Pro",
}

// Styles defines the overall visual styles (step 9).
var Styles = []string{
	"modern",
	"classic",
	"minimal",
	"bold",
}

// GetWebsiteType returns the website type with the given ID, or nil.
func GetWebsiteType(id string) *document.WebsiteType {
	for i := range WebsiteTypes {
		if WebsiteTypes[i].ID == id {
			return &WebsiteTypes[i]
		}
	}
	return nil
}

// RequiresCategory reports whether the website type requires a business
// category (step 2).
func RequiresCategory(typeID string) bool {
	_, ok := categoriesByType[typeID]
	return ok
}

// CategoriesFor returns the business categories selectable for a website
// type. Nil means the type takes no category.
func CategoriesFor(typeID string) []document.BusinessCategory {
	return categoriesByType[typeID]
}

// IsCategoryLegal reports whether the category ID is selectable under the
// given website type.
func IsCategoryLegal(typeID, categoryID string) bool {
	for _, c := range categoriesByType[typeID] {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// ServicesFor returns suggested services for a business category. The
// returned services carry Custom=false.
func ServicesFor(categoryID string) []document.Service {
	return servicesByCategory[categoryID]
}
