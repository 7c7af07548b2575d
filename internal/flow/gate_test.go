// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package flow

import (
	"testing"
	"time"

	"github.com/site-forge/siteforge/internal/ledger"
)

func TestCanEnter_StepOneAlways(t *testing.T) {
	led := ledger.New()
	for current := 1; current <= 10; current++ {
		if !CanEnter(1, current, led) {
			t.Errorf("CanEnter(1, %d) = false, want true", current)
		}
	}
}

func TestCanEnter_BackwardAlways(t *testing.T) {
	led := ledger.New() // nothing completed
	for target := 1; target <= 6; target++ {
		if !CanEnter(target, 6, led) {
			t.Errorf("CanEnter(%d, 6) = false, want true (backward or same)", target)
		}
	}
}

func TestCanEnter_CompletedTargetFromAnywhere(t *testing.T) {
	led := ledger.New()
	led.MarkCompleted(7, time.Now())

	if !CanEnter(7, 2, led) {
		t.Error("CanEnter(7, 2) = false, want true for a completed target")
	}
}

func TestCanEnter_NextOnlyWhenCurrentCompleted(t *testing.T) {
	led := ledger.New()
	if CanEnter(4, 3, led) {
		t.Error("CanEnter(4, 3) = true with step 3 incomplete, want false")
	}

	led.MarkCompleted(3, time.Now())
	if !CanEnter(4, 3, led) {
		t.Error("CanEnter(4, 3) = false with step 3 completed, want true")
	}
}

func TestCanEnter_NoSkippingAhead(t *testing.T) {
	led := ledger.New()
	led.MarkCompleted(3, time.Now())

	// Step 3 completed unlocks 4, never 5.
	if CanEnter(5, 3, led) {
		t.Error("CanEnter(5, 3) = true, want false (two steps ahead)")
	}
}

func TestCanEnter_OutOfRange(t *testing.T) {
	led := ledger.New()
	if CanEnter(0, 1, led) {
		t.Error("CanEnter(0, 1) = true, want false")
	}
	if CanEnter(11, 10, led) {
		t.Error("CanEnter(11, 10) = true, want false")
	}
}
