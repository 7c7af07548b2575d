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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/site-forge/siteforge/internal/flow"
)

// Run drives the full-screen wizard until the user finishes or bails out.
// It returns true when the review step was confirmed. Pending edits are
// flushed to the store before returning, whatever the exit path.
func Run(ctrl *flow.Controller) (bool, error) {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
	final, err := p.Run()

	if ferr := ctrl.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("saving wizard state: %w", ferr)
	}
	if err != nil {
		return false, err
	}

	model, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected final model %T", final)
	}
	return model.Confirmed(), nil
}
