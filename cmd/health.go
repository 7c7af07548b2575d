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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/site-forge/siteforge/internal/config"
	"github.com/site-forge/siteforge/internal/engine"
	"github.com/site-forge/siteforge/internal/health"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check connectivity to the engine and database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client := engine.New(cfg.Engine.BaseURL, time.Duration(cfg.Engine.TimeoutSeconds)*time.Second)
		checks := []health.Check{
			health.CheckEngine(ctx, client),
		}
		if cfg.Database.URL != "" {
			checks = append(checks, health.CheckDatabase(ctx, cfg.Database.URL))
		}

		failed := false
		for _, c := range checks {
			mark := "ok"
			if !c.OK {
				mark = "FAIL"
				failed = true
			}
			fmt.Printf("  %-10s %-5s %s (%s)\n", c.Name, mark, c.Detail, c.Elapsed.Round(time.Millisecond))
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
