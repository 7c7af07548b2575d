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
	"time"

	"github.com/site-forge/siteforge/internal/config"
	"github.com/site-forge/siteforge/internal/flow"
	"github.com/site-forge/siteforge/internal/snapshot"
	"github.com/site-forge/siteforge/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "1.4.0"

// skipConfigCommands are commands that run without a configuration file.
var skipConfigCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

var rootCmd = &cobra.Command{
	Use:   "siteforge",
	Short: "Guided Website Builder",
	Long:  "SiteForge – Build a complete website brief through a ten-step guided wizard",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v

		// Write a default config on first run
		if !config.ConfigExists() && !skipConfigCommands[cmd.Name()] {
			if err := config.WriteDefaults(); err != nil {
				return fmt.Errorf("writing default configuration: %w", err)
			}
			ui.Infof("Wrote default configuration to %s", config.ConfigFile())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("siteforge version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("siteforge version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	config.EnsureDirs()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore builds the snapshot store the config selects.
func openStore(cfg *config.Config) (snapshot.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBadger:
		return snapshot.OpenBadger(snapshot.BadgerOptions{Dir: config.SnapshotDBDir()})
	case config.StorageFile, "":
		return snapshot.NewFileStore(config.SnapshotFile()), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// openController restores the wizard state from the configured store. The
// returned closer flushes pending saves and releases the store.
func openController(cfg *config.Config) (*flow.Controller, func(), error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []flow.Option{flow.WithPolicy(cfg.Wizard.Policy())}
	if cfg.Wizard.AutosaveDebounceMS > 0 {
		opts = append(opts, flow.WithDebounce(time.Duration(cfg.Wizard.AutosaveDebounceMS)*time.Millisecond))
	}

	ctrl, err := flow.New(store, opts...)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	closer := func() {
		if err := ctrl.Flush(); err != nil {
			ui.Warnf("Failed to save wizard state: %v", err)
		}
		if err := store.Close(); err != nil {
			ui.Warnf("Failed to close snapshot store: %v", err)
		}
	}
	return ctrl, closer, nil
}
