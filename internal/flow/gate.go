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

package flow

import "github.com/site-forge/siteforge/internal/ledger"

// CanEnter reports whether navigation to target is permitted from current.
// The gate is advisory: a denied target simply is not navigated to, no
// error is raised.
//
// Rules, in order:
//   - step 1 is always enterable
//   - the current step and anything before it are always enterable
//   - a step that was itself completed is enterable from anywhere
//   - the immediate next step is enterable iff the current step is completed
func CanEnter(target, current int, led *ledger.Ledger) bool {
	if target < 1 || target > ledger.Steps {
		return false
	}
	if target == 1 || target <= current {
		return true
	}
	if led.Step(target).IsCompleted {
		return true
	}
	if target == current+1 {
		return led.Step(current).IsCompleted
	}
	return false
}
