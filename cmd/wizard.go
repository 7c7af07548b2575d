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
	"os"

	"github.com/site-forge/siteforge/internal/config"
	"github.com/site-forge/siteforge/internal/ui"
	"github.com/site-forge/siteforge/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the website builder wizard",
	Long:  "Interactive wizard that walks through the ten steps of building a website brief. Progress is saved automatically; run again to resume.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard()
	},
}

func runWizard() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the wizard needs an interactive terminal; see 'siteforge status' for current progress")
	}

	cfg := config.LoadOrDefault()
	ctrl, closer, err := openController(cfg)
	if err != nil {
		return err
	}
	defer closer()

	confirmed, err := wizard.Run(ctrl)
	if err != nil {
		return err
	}

	if !confirmed {
		ui.Infof("Progress saved (%d%% complete). Run 'siteforge wizard' to continue.", ctrl.ProgressPercent())
		return nil
	}

	ui.Success("Website brief complete!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Review the brief:      siteforge export")
	fmt.Println("  2. Generate the website:  siteforge generate --wait")
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}
