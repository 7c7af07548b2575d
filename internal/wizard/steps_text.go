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
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/site-forge/siteforge/internal/document"
)

// --- Step 3: business info ---

var infoLabels = []string{"Name", "Description", "Tagline", "Founded", "Team size"}

func (m Model) updateBusinessInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.ctrl.Retreat()
			return m, nil
		case "tab", "down":
			m = m.focusInfo(m.infoFocus + 1)
			return m, nil
		case "shift+tab", "up":
			m = m.focusInfo(m.infoFocus - 1)
			return m, nil
		case "enter":
			if m.infoFocus == len(m.infoInputs)-1 {
				m.ctrl.Advance()
			} else {
				m = m.focusInfo(m.infoFocus + 1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.infoInputs[m.infoFocus], cmd = m.infoInputs[m.infoFocus].Update(msg)
	m.pushBusinessInfo()
	return m, cmd
}

func (m Model) focusInfo(i int) Model {
	if i < 0 || i >= len(m.infoInputs) {
		return m
	}
	m.infoInputs[m.infoFocus].Blur()
	m.infoFocus = i
	m.infoInputs[i].Focus()
	return m
}

func (m Model) pushBusinessInfo() {
	m.ctrl.UpdateSlot(document.SlotBusinessInfo, document.BusinessInfo{
		Name:          m.infoInputs[0].Value(),
		Description:   m.infoInputs[1].Value(),
		Tagline:       m.infoInputs[2].Value(),
		FoundedYear:   m.infoInputs[3].Value(),
		EmployeeCount: m.infoInputs[4].Value(),
	})
}

func (m Model) viewBusinessInfo() string {
	var b strings.Builder
	b.WriteString(m.stepTitle("About the business"))
	b.WriteString("\n\n")
	for i, ti := range m.infoInputs {
		b.WriteString(subtitleStyle.Render(infoLabels[i]))
		b.WriteString("\n")
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("Tab next field · Enter continue · Esc back"))
	return b.String()
}

// --- Step 5: business description ---

func (m Model) updateDescription(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.ctrl.Retreat()
			return m, nil
		case "tab", "shift+tab":
			if m.descFocus == 0 {
				m.descFocus = 1
				m.descArea.Blur()
				m.audienceInput.Focus()
			} else {
				m.descFocus = 0
				m.audienceInput.Blur()
				m.descArea.Focus()
			}
			return m, nil
		case "enter":
			// Enter inside the textarea is a newline; on the audience
			// field it moves on.
			if m.descFocus == 1 {
				m.ctrl.Advance()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.descFocus == 0 {
		m.descArea, cmd = m.descArea.Update(msg)
	} else {
		m.audienceInput, cmd = m.audienceInput.Update(msg)
	}
	m.pushDescription()
	return m, cmd
}

func (m Model) pushDescription() {
	doc := m.ctrl.Document()
	desc := document.BusinessDescription{}
	if doc.BusinessDescription != nil {
		desc = *doc.BusinessDescription
	}
	desc.Description = m.descArea.Value()
	desc.TargetAudience = m.audienceInput.Value()
	m.ctrl.UpdateSlot(document.SlotBusinessDescription, desc)
}

func (m Model) viewDescription() string {
	minLen := m.ctrl.Policy().MinDescriptionLength
	count := utf8.RuneCountInString(m.descArea.Value())

	counter := fmt.Sprintf("%d/%d characters", count, minLen)
	if count >= minLen {
		counter = successStyle.Render(counter + " ✓")
	} else {
		counter = dimStyle.Render(counter)
	}

	var b strings.Builder
	b.WriteString(m.stepTitle("Describe the business"))
	b.WriteString("\n\n")
	b.WriteString(m.descArea.View())
	b.WriteString("\n")
	b.WriteString(counter)
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Target audience"))
	b.WriteString("\n")
	b.WriteString(m.audienceInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.stepErrors())
	b.WriteString(helpStyle.Render("Tab switch field · Enter (on audience) continue · Esc back"))
	return b.String()
}

// --- Step 7: location ---

var locLabels = []string{"City", "State", "Country", "Address", "Phone", "Email"}

func (m Model) updateLocation(msg tea.Msg) (tea.Model, tea.Cmd) {
	onlineOnly := m.locationOnlineOnly()

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.ctrl.Retreat()
			return m, nil
		case "tab", "down":
			if !onlineOnly {
				m = m.focusLoc(m.locFocus + 1)
			}
			return m, nil
		case "shift+tab", "up":
			m = m.focusLoc(m.locFocus - 1)
			return m, nil
		case " ":
			if m.locFocus == -1 {
				m.pushLocation(!onlineOnly)
				return m, nil
			}
		case "enter":
			if m.locFocus == -1 || m.locFocus == len(m.locInputs)-1 || onlineOnly {
				m.ctrl.Advance()
			} else {
				m = m.focusLoc(m.locFocus + 1)
			}
			return m, nil
		}
	}

	if m.locFocus >= 0 {
		var cmd tea.Cmd
		m.locInputs[m.locFocus], cmd = m.locInputs[m.locFocus].Update(msg)
		m.pushLocation(onlineOnly)
		return m, cmd
	}
	return m, nil
}

func (m Model) locationOnlineOnly() bool {
	doc := m.ctrl.Document()
	return doc.LocationInfo != nil && doc.LocationInfo.IsOnlineOnly
}

func (m Model) focusLoc(i int) Model {
	if i < -1 || i >= len(m.locInputs) {
		return m
	}
	if m.locFocus >= 0 {
		m.locInputs[m.locFocus].Blur()
	}
	m.locFocus = i
	if i >= 0 {
		m.locInputs[i].Focus()
	}
	return m
}

func (m Model) pushLocation(onlineOnly bool) {
	doc := m.ctrl.Document()
	loc := document.LocationInfo{}
	if doc.LocationInfo != nil {
		loc = *doc.LocationInfo
	}
	loc.IsOnlineOnly = onlineOnly
	loc.City = m.locInputs[0].Value()
	loc.State = m.locInputs[1].Value()
	loc.Country = m.locInputs[2].Value()
	loc.Address = m.locInputs[3].Value()
	loc.Phone = m.locInputs[4].Value()
	loc.Email = m.locInputs[5].Value()
	m.ctrl.UpdateSlot(document.SlotLocationInfo, loc)
}

func (m Model) viewLocation() string {
	onlineOnly := m.locationOnlineOnly()

	var b strings.Builder
	b.WriteString(m.stepTitle("Where do you operate?"))
	b.WriteString("\n\n")
	b.WriteString(cursorMark(m.locFocus == -1))
	b.WriteString(checkbox(onlineOnly))
	b.WriteString(" Online only — no physical location\n\n")

	if !onlineOnly {
		for i, ti := range m.locInputs {
			b.WriteString(subtitleStyle.Render(locLabels[i]))
			b.WriteString("\n")
			b.WriteString(ti.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.stepErrors())
	if onlineOnly {
		b.WriteString(helpStyle.Render("Space toggle · Enter continue · Esc back"))
	} else {
		b.WriteString(helpStyle.Render("Tab next field · Space (on toggle) online only · Enter continue · Esc back"))
	}
	return b.String()
}
