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

package cmd

import (
	"fmt"

	"github.com/site-forge/siteforge/internal/config"
	"github.com/site-forge/siteforge/internal/ui"
	"github.com/site-forge/siteforge/internal/validate"
	"github.com/spf13/cobra"
)

var stepNames = [validate.Steps]string{
	"Website type",
	"Category",
	"Business info",
	"Purpose",
	"Description",
	"Services",
	"Location",
	"Structure",
	"Theme",
	"Review",
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show wizard progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()
		ctrl, closer, err := openController(cfg)
		if err != nil {
			return err
		}
		defer closer()

		ui.Logo()
		fmt.Println()
		fmt.Printf("Progress: %d%% complete, currently on step %d of %d\n\n",
			ctrl.ProgressPercent(), ctrl.CurrentStep(), validate.Steps)

		for step := 1; step <= validate.Steps; step++ {
			state := ctrl.StepState(step)
			mark := " "
			switch {
			case state.IsCompleted:
				mark = "✓"
			case step == ctrl.CurrentStep():
				mark = "→"
			}

			detail := ""
			if state.IsCompleted && state.CompletedAt != nil {
				detail = state.CompletedAt.Local().Format("2006-01-02 15:04")
			} else if !state.IsValid && len(state.Errors) > 0 && step <= ctrl.CurrentStep() {
				detail = state.Errors[0]
			}
			fmt.Printf("  %s %2d. %-15s %s\n", mark, step, stepNames[step-1], detail)
		}

		if ctrl.GenerationComplete() {
			fmt.Println("\nWebsite generation: complete")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
