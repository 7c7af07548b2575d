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
	"github.com/google/uuid"
	"github.com/site-forge/siteforge/internal/catalog"
	"github.com/site-forge/siteforge/internal/document"
)

// --- Step 6: services ---

// Rows are the catalog services for the chosen category followed by the
// user's custom services. "a" opens a one-line input for a new custom
// service, "d" removes the custom service under the cursor.

func (m Model) catalogServices() []document.Service {
	doc := m.ctrl.Document()
	if doc.BusinessCategory == nil {
		return nil
	}
	return catalog.ServicesFor(doc.BusinessCategory.ID)
}

func (m Model) servicesSelection() document.ServicesSelection {
	doc := m.ctrl.Document()
	if doc.ServicesSelection == nil {
		return document.ServicesSelection{}
	}
	return *doc.ServicesSelection
}

func (m Model) updateServices(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.svcInputMode {
		return m.updateServiceInput(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	fromCatalog := m.catalogServices()
	sel := m.servicesSelection()
	rows := len(fromCatalog) + len(sel.CustomServices)

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
		if m.cursor < len(fromCatalog) {
			sel.SelectedServices = toggleService(sel.SelectedServices, fromCatalog[m.cursor])
			m.ctrl.UpdateSlot(document.SlotServicesSelection, sel)
		}
	case "a":
		m.svcInputMode = true
		m.svcInput.SetValue("")
		m.svcInput.Focus()
	case "d":
		if i := m.cursor - len(fromCatalog); i >= 0 && i < len(sel.CustomServices) {
			sel.CustomServices = append(sel.CustomServices[:i], sel.CustomServices[i+1:]...)
			m.ctrl.UpdateSlot(document.SlotServicesSelection, sel)
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case "enter":
		m.ctrl.Advance()
	case "esc":
		m.ctrl.Retreat()
	}
	return m, nil
}

func (m Model) updateServiceInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.svcInputMode = false
			m.svcInput.Blur()
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.svcInput.Value())
			m.svcInputMode = false
			m.svcInput.Blur()
			if name == "" {
				return m, nil
			}
			sel := m.servicesSelection()
			sel.CustomServices = append(sel.CustomServices, document.Service{
				ID:     uuid.NewString(),
				Name:   name,
				Custom: true,
			})
			m.ctrl.UpdateSlot(document.SlotServicesSelection, sel)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.svcInput, cmd = m.svcInput.Update(msg)
	return m, cmd
}

func (m Model) viewServices() string {
	fromCatalog := m.catalogServices()
	sel := m.servicesSelection()

	var b strings.Builder
	b.WriteString(m.stepTitle("What do you offer?"))
	b.WriteString("\n\n")

	if len(fromCatalog) == 0 && len(sel.CustomServices) == 0 && !m.svcInputMode {
		b.WriteString(dimStyle.Render("No suggested services for this category — add your own."))
		b.WriteString("\n\n")
	}

	for i, svc := range fromCatalog {
		b.WriteString(cursorMark(i == m.cursor && !m.svcInputMode))
		b.WriteString(checkbox(containsService(sel.SelectedServices, svc.ID)))
		b.WriteString(" " + svc.Name + "\n")
	}

	if len(sel.CustomServices) > 0 {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Your own"))
		b.WriteString("\n")
		for i, svc := range sel.CustomServices {
			row := len(fromCatalog) + i
			b.WriteString(cursorMark(row == m.cursor && !m.svcInputMode))
			b.WriteString(selectedStyle.Render("[x]"))
			b.WriteString(" " + svc.Name + "\n")
		}
	}

	if m.svcInputMode {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("New service"))
		b.WriteString("\n")
		b.WriteString(m.svcInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Enter add · Esc cancel"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d selected", sel.TotalServices)))
	b.WriteString("\n\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("Space toggle · a add your own · d delete · Enter continue · Esc back"))
	return b.String()
}

func containsService(list []document.Service, id string) bool {
	for _, s := range list {
		if s.ID == id {
			return true
		}
	}
	return false
}

func toggleService(list []document.Service, svc document.Service) []document.Service {
	for i, s := range list {
		if s.ID == svc.ID {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, svc)
}
