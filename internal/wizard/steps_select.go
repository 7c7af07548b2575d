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

package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/site-forge/siteforge/internal/catalog"
	"github.com/site-forge/siteforge/internal/document"
)

// --- Step 1: website type ---

func (m Model) updateWebsiteType(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(catalog.WebsiteTypes)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.ctrl.UpdateSlot(document.SlotWebsiteType, catalog.WebsiteTypes[m.cursor])
		if key.String() == "enter" {
			m.ctrl.Advance()
		}
	}
	return m, nil
}

func (m Model) viewWebsiteType() string {
	doc := m.ctrl.Document()
	selectedID := ""
	if doc.WebsiteType != nil {
		selectedID = doc.WebsiteType.ID
	}

	var b strings.Builder
	b.WriteString(m.stepTitle("What kind of website?"))
	b.WriteString("\n\n")
	for i, wt := range catalog.WebsiteTypes {
		b.WriteString(cursorMark(i == m.cursor))
		b.WriteString(radio(wt.ID == selectedID))
		b.WriteString(" " + wt.Name + "\n")
		b.WriteString(dimStyle.Render("      " + wt.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("↑/↓ move · Enter select and continue · Tab sidebar"))
	return b.String()
}

// --- Step 2: business category ---

func (m Model) updateCategory(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	doc := m.ctrl.Document()
	typeID := ""
	if doc.WebsiteType != nil {
		typeID = doc.WebsiteType.ID
	}
	if !catalog.RequiresCategory(typeID) {
		switch key.String() {
		case "enter":
			m.ctrl.Advance()
		case "esc":
			m.ctrl.Retreat()
		}
		return m, nil
	}

	cats := catalog.CategoriesFor(typeID)
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(cats)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.ctrl.UpdateSlot(document.SlotBusinessCategory, cats[m.cursor])
		if key.String() == "enter" {
			m.ctrl.Advance()
		}
	case "esc":
		m.ctrl.Retreat()
	}
	return m, nil
}

func (m Model) viewCategory() string {
	doc := m.ctrl.Document()
	typeID := ""
	if doc.WebsiteType != nil {
		typeID = doc.WebsiteType.ID
	}

	var b strings.Builder
	b.WriteString(m.stepTitle("Pick a category"))
	b.WriteString("\n\n")

	if !catalog.RequiresCategory(typeID) {
		b.WriteString("No category needed for this website type.\n\n")
		b.WriteString(helpStyle.Render("Enter continue · Esc back"))
		return b.String()
	}

	selectedID := ""
	if doc.BusinessCategory != nil {
		selectedID = doc.BusinessCategory.ID
	}
	for i, cat := range catalog.CategoriesFor(typeID) {
		b.WriteString(cursorMark(i == m.cursor))
		b.WriteString(radio(cat.ID == selectedID))
		b.WriteString(" " + cat.Name + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("↑/↓ move · Enter select and continue · Esc back"))
	return b.String()
}

// --- Step 4: purpose and goals ---

// The purpose step is one list: the primary purposes first (pick one), then
// the goals (pick any). Space selects or toggles, Enter moves on.

func (m Model) purposeRows() int {
	return len(catalog.PurposeOptions) + len(catalog.GoalOptions)
}

func (m Model) updatePurpose(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.purposeRows()-1 {
			m.cursor++
		}
	case " ":
		m = m.togglePurpose(m.cursor)
	case "enter":
		m.ctrl.Advance()
	case "esc":
		m.ctrl.Retreat()
	}
	return m, nil
}

func (m Model) togglePurpose(row int) Model {
	doc := m.ctrl.Document()
	purpose := document.WebsitePurpose{}
	if doc.WebsitePurpose != nil {
		purpose = *doc.WebsitePurpose
	}

	if row < len(catalog.PurposeOptions) {
		purpose.Primary = catalog.PurposeOptions[row]
	} else {
		goal := catalog.GoalOptions[row-len(catalog.PurposeOptions)]
		purpose.Goals = toggleString(purpose.Goals, goal)
	}
	m.ctrl.UpdateSlot(document.SlotWebsitePurpose, purpose)
	return m
}

func (m Model) viewPurpose() string {
	doc := m.ctrl.Document()
	purpose := document.WebsitePurpose{}
	if doc.WebsitePurpose != nil {
		purpose = *doc.WebsitePurpose
	}

	var b strings.Builder
	b.WriteString(m.stepTitle("Why this website?"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Primary purpose"))
	b.WriteString("\n")
	for i, opt := range catalog.PurposeOptions {
		b.WriteString(cursorMark(i == m.cursor))
		b.WriteString(radio(opt == purpose.Primary))
		b.WriteString(" " + opt + "\n")
	}
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Goals (pick any)"))
	b.WriteString("\n")
	for i, opt := range catalog.GoalOptions {
		row := len(catalog.PurposeOptions) + i
		b.WriteString(cursorMark(row == m.cursor))
		b.WriteString(checkbox(containsString(purpose.Goals, opt)))
		b.WriteString(" " + opt + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("Space select · Enter continue · Esc back"))
	return b.String()
}

// --- Step 8: structure ---

// Row layout: 0 = single-page, 1 = multi-page, then the section or page
// checkboxes for the chosen type.

func (m Model) structureItems() []string {
	doc := m.ctrl.Document()
	if doc.WebsiteStructure != nil && doc.WebsiteStructure.Type == document.StructureMultiPage {
		return catalog.Pages
	}
	return catalog.Sections
}

func (m Model) updateStructure(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	rows := 2 + len(m.structureItems())
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < rows-1 {
			m.cursor++
		}
	case " ":
		m = m.toggleStructure(m.cursor)
	case "enter":
		m.ctrl.Advance()
	case "esc":
		m.ctrl.Retreat()
	}
	return m, nil
}

func (m Model) toggleStructure(row int) Model {
	doc := m.ctrl.Document()
	structure := document.WebsiteStructure{Type: document.StructureSinglePage}
	if doc.WebsiteStructure != nil {
		structure = *doc.WebsiteStructure
	}

	switch row {
	case 0:
		structure.Type = document.StructureSinglePage
	case 1:
		structure.Type = document.StructureMultiPage
	default:
		item := m.structureItems()[row-2]
		if structure.Type == document.StructureMultiPage {
			structure.SelectedPages = toggleString(structure.SelectedPages, item)
		} else {
			structure.SelectedSections = toggleString(structure.SelectedSections, item)
		}
	}
	m.ctrl.UpdateSlot(document.SlotWebsiteStructure, structure)
	return m
}

func (m Model) viewStructure() string {
	doc := m.ctrl.Document()
	structure := document.WebsiteStructure{Type: document.StructureSinglePage}
	if doc.WebsiteStructure != nil {
		structure = *doc.WebsiteStructure
	}

	var b strings.Builder
	b.WriteString(m.stepTitle("Site structure"))
	b.WriteString("\n\n")
	b.WriteString(cursorMark(m.cursor == 0))
	b.WriteString(radio(structure.Type == document.StructureSinglePage))
	b.WriteString(" Single page — everything on one scrolling page\n")
	b.WriteString(cursorMark(m.cursor == 1))
	b.WriteString(radio(structure.Type == document.StructureMultiPage))
	b.WriteString(" Multi page — separate pages with navigation\n\n")

	selected := structure.SelectedSections
	label := "Sections"
	if structure.Type == document.StructureMultiPage {
		selected = structure.SelectedPages
		label = "Pages"
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s (%d selected)", label, len(selected))))
	b.WriteString("\n")
	for i, item := range m.structureItems() {
		b.WriteString(cursorMark(m.cursor == i+2))
		b.WriteString(checkbox(containsString(selected, item)))
		b.WriteString(" " + item + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("Space toggle · Enter continue · Esc back"))
	return b.String()
}

// --- Step 9: theme ---

// Row layout: color schemes, then fonts, then styles, one flat cursor.

func (m Model) themeRows() int {
	return len(catalog.ColorSchemes) + len(catalog.FontFamilies) + len(catalog.Styles)
}

func (m Model) updateTheme(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.themeRows()-1 {
			m.cursor++
		}
	case " ":
		m = m.toggleTheme(m.cursor)
	case "enter":
		m.ctrl.Advance()
	case "esc":
		m.ctrl.Retreat()
	}
	return m, nil
}

func (m Model) toggleTheme(row int) Model {
	doc := m.ctrl.Document()
	theme := document.ThemeConfig{}
	if doc.ThemeConfig != nil {
		theme = *doc.ThemeConfig
	}

	switch {
	case row < len(catalog.ColorSchemes):
		theme.ColorScheme = catalog.ColorSchemes[row].Scheme
	case row < len(catalog.ColorSchemes)+len(catalog.FontFamilies):
		theme.FontFamily = catalog.FontFamilies[row-len(catalog.ColorSchemes)]
	default:
		theme.Style = catalog.Styles[row-len(catalog.ColorSchemes)-len(catalog.FontFamilies)]
	}
	m.ctrl.UpdateSlot(document.SlotThemeConfig, theme)
	return m
}

func (m Model) viewTheme() string {
	doc := m.ctrl.Document()
	theme := document.ThemeConfig{}
	if doc.ThemeConfig != nil {
		theme = *doc.ThemeConfig
	}

	var b strings.Builder
	b.WriteString(m.stepTitle("Look and feel"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Color scheme"))
	b.WriteString("\n")
	for i, cs := range catalog.ColorSchemes {
		b.WriteString(cursorMark(i == m.cursor))
		b.WriteString(radio(cs.Scheme == theme.ColorScheme))
		b.WriteString(fmt.Sprintf(" %-8s %s\n", cs.Name,
			dimStyle.Render(cs.Scheme.Primary+" "+cs.Scheme.Secondary+" "+cs.Scheme.Accent)))
	}
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("Font"))
	b.WriteString("\n")
	base := len(catalog.ColorSchemes)
	for i, f := range catalog.FontFamilies {
		b.WriteString(cursorMark(base+i == m.cursor))
		b.WriteString(radio(f == theme.FontFamily))
		b.WriteString(" " + f + "\n")
	}
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("Style"))
	b.WriteString("\n")
	base += len(catalog.FontFamilies)
	for i, s := range catalog.Styles {
		b.WriteString(cursorMark(base+i == m.cursor))
		b.WriteString(radio(s == theme.Style))
		b.WriteString(" " + s + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("Space select · Enter continue · Esc back"))
	return b.String()
}

// --- helpers ---

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func toggleString(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, s)
}
