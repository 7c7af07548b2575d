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
	"github.com/site-forge/siteforge/internal/document"
	"github.com/site-forge/siteforge/internal/validate"
)

// --- Step 10: review ---

func (m Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter":
		// Latches the final step and ends the wizard.
		if m.ctrl.Advance() {
			m.confirmed = true
			return m, tea.Quit
		}
	case "esc":
		m.ctrl.Retreat()
	case "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewReview() string {
	doc := m.ctrl.Document()

	var b strings.Builder
	b.WriteString(m.stepTitle("Review"))
	b.WriteString("\n\n")

	line := func(label, value string) {
		if value == "" {
			value = dimStyle.Render("—")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", subtitleStyle.Render(label+":"), value))
	}

	if doc.WebsiteType != nil {
		line("Type", doc.WebsiteType.Name)
	}
	if doc.BusinessCategory != nil {
		line("Category", doc.BusinessCategory.Name)
	}
	if doc.BusinessInfo != nil {
		line("Business", doc.BusinessInfo.Name)
	}
	if doc.WebsitePurpose != nil {
		line("Purpose", doc.WebsitePurpose.Primary)
		line("Goals", strings.Join(doc.WebsitePurpose.Goals, ", "))
	}
	if doc.ServicesSelection != nil {
		line("Services", fmt.Sprintf("%d selected", doc.ServicesSelection.TotalServices))
	}
	if doc.LocationInfo != nil {
		if doc.LocationInfo.IsOnlineOnly {
			line("Location", "online only")
		} else {
			line("Location", strings.TrimSuffix(doc.LocationInfo.City+", "+doc.LocationInfo.Country, ", "))
		}
	}
	if doc.WebsiteStructure != nil {
		detail := fmt.Sprintf("%d sections", len(doc.WebsiteStructure.SelectedSections))
		if doc.WebsiteStructure.Type == document.StructureMultiPage {
			detail = fmt.Sprintf("%d pages", len(doc.WebsiteStructure.SelectedPages))
		}
		line("Structure", doc.WebsiteStructure.Type+", "+detail)
	}
	if doc.ThemeConfig != nil {
		line("Theme", doc.ThemeConfig.FontFamily+" / "+doc.ThemeConfig.Style)
	}

	b.WriteString("\n")
	incomplete := m.incompleteSteps()
	if len(incomplete) == 0 {
		b.WriteString(successStyle.Render("All steps complete — ready to generate."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Enter finish · Esc back · q quit"))
	} else {
		b.WriteString(errorStyle.Render("Still to do: " + strings.Join(incomplete, ", ")))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Use Tab and the sidebar to revisit a step."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Enter finish anyway · Esc back · q quit"))
	}
	return b.String()
}

func (m Model) incompleteSteps() []string {
	var out []string
	for step := 1; step < validate.Steps; step++ {
		if !m.ctrl.StepState(step).IsCompleted {
			out = append(out, stepLabels[step-1])
		}
	}
	return out
}
