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

// Package wizard implements the interactive TUI for the website builder.
// Views read exclusively through the flow controller's queries and push
// every edit back through it; validity and navigation decisions live in the
// controller, never here.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/site-forge/siteforge/internal/flow"
	"github.com/site-forge/siteforge/internal/validate"
)

// stepLabels names the wizard steps for the sidebar and titles.
var stepLabels = [validate.Steps]string{
	"Website Type",
	"Category",
	"Business Info",
	"Purpose",
	"Description",
	"Services",
	"Location",
	"Structure",
	"Theme",
	"Review",
}

const sidebarWidth = 22

// Model is the root bubbletea model for the wizard.
type Model struct {
	ctrl *flow.Controller

	width  int
	height int

	welcome   bool // welcome screen before the step views
	cancelled bool
	confirmed bool

	cursor         int
	sidebarFocused bool
	sidebarCursor  int

	// lastStep detects step entry so widget state can be rebuilt from the
	// document exactly once per visit.
	lastStep int

	// Business info step (3)
	infoInputs []textinput.Model
	infoFocus  int

	// Description step (5)
	descArea      textarea.Model
	audienceInput textinput.Model
	descFocus     int // 0 = description, 1 = audience

	// Services step (6)
	svcInputMode bool
	svcInput     textinput.Model

	// Location step (7)
	locInputs []textinput.Model
	locFocus  int // -1 = online-only toggle row
}

// NewModel creates the wizard model bound to a controller.
func NewModel(ctrl *flow.Controller) Model {
	m := Model{
		ctrl:     ctrl,
		welcome:  true,
		lastStep: 0, // forces a sync on first step entry
	}
	m.infoInputs = newInputs([]inputSpec{
		{placeholder: "Acme Physiotherapy", label: "Name"},
		{placeholder: "What the business does, in a sentence", label: "Description"},
		{placeholder: "Optional tagline", label: "Tagline"},
		{placeholder: "e.g. 2012", label: "Founded"},
		{placeholder: "e.g. 1-10", label: "Team size"},
	})
	m.locInputs = newInputs([]inputSpec{
		{placeholder: "City", label: "City"},
		{placeholder: "State or region", label: "State"},
		{placeholder: "Country", label: "Country"},
		{placeholder: "Street address", label: "Address"},
		{placeholder: "Phone", label: "Phone"},
		{placeholder: "Email", label: "Email"},
	})

	m.descArea = textarea.New()
	m.descArea.Placeholder = "Tell us about the business: what you offer, who you serve, what makes you different..."
	m.descArea.CharLimit = 2000
	m.descArea.SetWidth(60)
	m.descArea.SetHeight(6)

	m.audienceInput = textinput.New()
	m.audienceInput.Placeholder = "Who is this website for?"
	m.audienceInput.CharLimit = 200
	m.audienceInput.Width = 56

	m.svcInput = textinput.New()
	m.svcInput.Placeholder = "Service name"
	m.svcInput.CharLimit = 80
	m.svcInput.Width = 40

	return m
}

type inputSpec struct {
	placeholder string
	label       string
}

func newInputs(specs []inputSpec) []textinput.Model {
	out := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.CharLimit = 200
		ti.Width = 48
		out[i] = ti
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

		if m.welcome {
			return m.updateWelcome(msg)
		}

		// Tab toggles sidebar focus outside of text-entry modes.
		if msg.String() == "tab" && !m.inTextEntry() {
			m.sidebarFocused = !m.sidebarFocused
			if m.sidebarFocused {
				m.sidebarCursor = m.ctrl.CurrentStep() - 1
			}
			return m, nil
		}
		if m.sidebarFocused {
			return m.updateSidebar(msg)
		}
	}

	m = m.syncStep()

	switch m.ctrl.CurrentStep() {
	case 1:
		return m.updateWebsiteType(msg)
	case 2:
		return m.updateCategory(msg)
	case 3:
		return m.updateBusinessInfo(msg)
	case 4:
		return m.updatePurpose(msg)
	case 5:
		return m.updateDescription(msg)
	case 6:
		return m.updateServices(msg)
	case 7:
		return m.updateLocation(msg)
	case 8:
		return m.updateStructure(msg)
	case 9:
		return m.updateTheme(msg)
	case 10:
		return m.updateReview(msg)
	}
	return m, nil
}

// inTextEntry reports whether keystrokes currently belong to a text widget,
// in which case navigation chrome keys stay inert.
func (m Model) inTextEntry() bool {
	switch m.ctrl.CurrentStep() {
	case 3, 5, 7:
		return true
	case 6:
		return m.svcInputMode
	}
	return false
}

// syncStep rebuilds widget state from the document when a new step is
// entered (typing in a revisited step must show the stored values).
func (m Model) syncStep() Model {
	step := m.ctrl.CurrentStep()
	if step == m.lastStep {
		return m
	}
	m.lastStep = step
	m.cursor = 0
	m.svcInputMode = false

	doc := m.ctrl.Document()
	switch step {
	case 3:
		info := doc.BusinessInfo
		values := []string{"", "", "", "", ""}
		if info != nil {
			values = []string{info.Name, info.Description, info.Tagline, info.FoundedYear, info.EmployeeCount}
		}
		for i := range m.infoInputs {
			m.infoInputs[i].SetValue(values[i])
			m.infoInputs[i].Blur()
		}
		m.infoFocus = 0
		m.infoInputs[0].Focus()
	case 5:
		m.descArea.SetValue("")
		m.audienceInput.SetValue("")
		if doc.BusinessDescription != nil {
			m.descArea.SetValue(doc.BusinessDescription.Description)
			m.audienceInput.SetValue(doc.BusinessDescription.TargetAudience)
		}
		m.descFocus = 0
		m.descArea.Focus()
		m.audienceInput.Blur()
	case 6:
		m.svcInput.SetValue("")
		m.svcInput.Blur()
	case 7:
		loc := doc.LocationInfo
		values := []string{"", "", "", "", "", ""}
		if loc != nil {
			values = []string{loc.City, loc.State, loc.Country, loc.Address, loc.Phone, loc.Email}
		}
		for i := range m.locInputs {
			m.locInputs[i].SetValue(values[i])
			m.locInputs[i].Blur()
		}
		m.locFocus = -1
	}
	return m
}

func (m Model) View() string {
	if m.welcome {
		return m.viewWelcome()
	}

	m = m.syncStep()
	var content string
	switch m.ctrl.CurrentStep() {
	case 1:
		content = m.viewWebsiteType()
	case 2:
		content = m.viewCategory()
	case 3:
		content = m.viewBusinessInfo()
	case 4:
		content = m.viewPurpose()
	case 5:
		content = m.viewDescription()
	case 6:
		content = m.viewServices()
	case 7:
		content = m.viewLocation()
	case 8:
		content = m.viewStructure()
	case 9:
		content = m.viewTheme()
	case 10:
		content = m.viewReview()
	}

	sidebar := m.renderSidebar()
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " "+content)
}

// Cancelled returns true if the user aborted the wizard.
func (m Model) Cancelled() bool { return m.cancelled }

// Confirmed returns true if the user finished the review step.
func (m Model) Confirmed() bool { return m.confirmed }

// --- Welcome screen ---

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.welcome = false
	}
	return m, nil
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to SiteForge"))
	b.WriteString("\n\n")
	b.WriteString("This wizard collects everything needed to generate your website:\n")
	b.WriteString("what it's for, your services, location, structure, and theme.\n\n")
	if pct := m.ctrl.ProgressPercent(); pct > 0 {
		b.WriteString(fmt.Sprintf("Resuming where you left off: step %d of %d (%d%% complete).\n\n",
			m.ctrl.CurrentStep(), validate.Steps, pct))
	}
	b.WriteString(helpStyle.Render("Press Enter to start, q to quit"))
	return b.String()
}

// --- Sidebar ---

func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case "down", "j":
		if m.sidebarCursor < validate.Steps-1 {
			m.sidebarCursor++
		}
	case "enter":
		// The gate decides; a denied step simply does nothing.
		if m.ctrl.GoTo(m.sidebarCursor + 1) {
			m.sidebarFocused = false
		}
	case "esc":
		m.sidebarFocused = false
	}
	return m, nil
}

func (m Model) renderSidebar() string {
	current := m.ctrl.CurrentStep()
	var b strings.Builder
	b.WriteString(titleStyle.Render("SiteForge"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d%% complete", m.ctrl.ProgressPercent())))
	b.WriteString("\n\n")

	for i := 0; i < validate.Steps; i++ {
		step := i + 1
		state := m.ctrl.StepState(step)

		mark := " "
		if state.IsCompleted {
			mark = successStyle.Render("✓")
		}

		label := fmt.Sprintf("%2d %s %s", step, mark, stepLabels[i])
		switch {
		case m.sidebarFocused && i == m.sidebarCursor:
			label = cursorStyle.Render("> " + label)
		case step == current:
			label = selectedStyle.Render("  " + label)
		case !m.ctrl.CanEnter(step):
			label = dimStyle.Render("  " + label)
		default:
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n")
	}

	if m.sidebarFocused {
		b.WriteString(helpStyle.Render("\nEnter to jump\nTab to return"))
	} else {
		b.WriteString(helpStyle.Render("\nTab for sidebar"))
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(b.String())
}

// --- Shared chrome ---

func (m Model) stepTitle(text string) string {
	return titleStyle.Render(fmt.Sprintf("Step %d/%d — %s", m.ctrl.CurrentStep(), validate.Steps, text))
}

// stepErrors renders the current step's validation errors from the ledger.
func (m Model) stepErrors() string {
	state := m.ctrl.StepState(m.ctrl.CurrentStep())
	if state.IsValid || len(state.Errors) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range state.Errors {
		b.WriteString(errorStyle.Render("• " + e))
		b.WriteString("\n")
	}
	return b.String()
}

func checkbox(checked bool) string {
	if checked {
		return selectedStyle.Render("[x]")
	}
	return "[ ]"
}

func radio(selected bool) string {
	if selected {
		return selectedStyle.Render("(•)")
	}
	return "( )"
}

func cursorMark(active bool) string {
	if active {
		return cursorStyle.Render("> ")
	}
	return "  "
}
