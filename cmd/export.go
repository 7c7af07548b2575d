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
	"encoding/json"
	"fmt"
	"os"

	"github.com/site-forge/siteforge/internal/config"
	"github.com/site-forge/siteforge/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the website brief as YAML or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadOrDefault()
			ctrl, closer, err := openController(cfg)
			if err != nil {
				return err
			}
			defer closer()

			doc := ctrl.Document()

			var data []byte
			switch format {
			case "yaml":
				data, err = yaml.Marshal(doc)
			case "json":
				data, err = json.MarshalIndent(doc, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown format %q (supported: yaml, json)", format)
			}
			if err != nil {
				return fmt.Errorf("encoding brief: %w", err)
			}

			if output == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			ui.Successf("Brief written to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func init() {
	rootCmd.AddCommand(newExportCmd())
}
