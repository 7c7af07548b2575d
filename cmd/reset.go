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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/site-forge/siteforge/internal/config"
	"github.com/site-forge/siteforge/internal/ui"
	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the website brief and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadOrDefault()
			ctrl, closer, err := openController(cfg)
			if err != nil {
				return err
			}
			defer closer()

			if ctrl.ProgressPercent() == 0 && ctrl.CurrentStep() == 1 {
				ui.Info("Nothing to reset.")
				return nil
			}

			if !force {
				fmt.Printf("This discards all wizard progress (%d%% complete). Continue? [y/N] ", ctrl.ProgressPercent())
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					ui.Info("Reset cancelled.")
					return nil
				}
			}

			ctrl.Reset()
			ui.Success("Wizard reset. Run 'siteforge wizard' to start over.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}

func init() {
	rootCmd.AddCommand(newResetCmd())
}
