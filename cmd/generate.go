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
	"strings"
	"time"

	"github.com/site-forge/siteforge/internal/config"
	"github.com/site-forge/siteforge/internal/engine"
	"github.com/site-forge/siteforge/internal/ui"
	"github.com/site-forge/siteforge/internal/validate"
	"github.com/spf13/cobra"
)

const pollInterval = 2 * time.Second

func newGenerateCmd() *cobra.Command {
	var wait bool
	var waitTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Send the finished brief to the generation engine",
		Long: `Send the completed website brief to the generation engine.

All wizard steps must be completed first; run 'siteforge status' to see
what is missing. With --wait, polls the engine until the job finishes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(wait, waitTimeout)
		},
	}

	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait for the generation to finish")
	cmd.Flags().DurationVar(&waitTimeout, "timeout", 10*time.Minute, "Give up waiting after this long")
	return cmd
}

func runGenerate(wait bool, waitTimeout time.Duration) error {
	cfg := config.LoadOrDefault()
	ctrl, closer, err := openController(cfg)
	if err != nil {
		return err
	}
	defer closer()

	var missing []string
	for step := 1; step < validate.Steps; step++ {
		if !ctrl.StepState(step).IsCompleted {
			missing = append(missing, stepNames[step-1])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("brief is not finished yet, still to do: %s", strings.Join(missing, ", "))
	}

	client := engine.New(cfg.Engine.BaseURL, time.Duration(cfg.Engine.TimeoutSeconds)*time.Second)
	ctx := context.Background()

	gen, err := client.Submit(ctx, ctrl.Document())
	if err != nil {
		return fmt.Errorf("submitting to engine: %w", err)
	}
	ui.Successf("Generation queued: %s", gen.GenerationID)

	if !wait {
		return nil
	}

	spinner := ui.NewSpinner("Generating website...")
	spinner.Start()
	final, err := pollGeneration(ctx, client, gen.GenerationID, waitTimeout)
	spinner.Stop()
	if err != nil {
		return err
	}

	if final.Status == engine.StatusFailed {
		return fmt.Errorf("generation failed: %s", final.Error)
	}

	ctrl.SetGenerationComplete(true)
	ui.Success("Website generated!")
	return nil
}

func pollGeneration(ctx context.Context, client *engine.Client, id string, timeout time.Duration) (*engine.Generation, error) {
	deadline := time.Now().Add(timeout)
	for {
		gen, err := client.Status(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("polling generation: %w", err)
		}
		if gen.Done() {
			return gen, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("generation still %s after %s; check later with the engine", gen.Status, timeout)
		}
		time.Sleep(pollInterval)
	}
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}
