// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package ledger

import (
	"testing"
	"time"
)

func TestStep_OutOfRangePanics(t *testing.T) {
	l := New()
	defer func() {
		if recover() == nil {
			t.Error("Step(0) did not panic")
		}
	}()
	l.Step(0)
}

func TestRecordValidation_DoesNotTouchCompletion(t *testing.T) {
	l := New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.RecordValidation(4, true, nil)
	l.MarkCompleted(4, now)
	l.RecordValidation(4, false, []string{"broken again"})

	state := l.Step(4)
	if !state.IsCompleted {
		t.Error("IsCompleted = false after a failing validation, want true (completion latches)")
	}
	if state.IsValid {
		t.Error("IsValid = true, want false after failing validation")
	}
	if len(state.Errors) != 1 || state.Errors[0] != "broken again" {
		t.Errorf("Errors = %v, want [broken again]", state.Errors)
	}
}

func TestMarkCompleted_FirstTimestampWins(t *testing.T) {
	l := New()
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	l.MarkCompleted(7, first)
	l.MarkCompleted(7, second)

	state := l.Step(7)
	if state.CompletedAt == nil || !state.CompletedAt.Equal(first) {
		t.Errorf("CompletedAt = %v, want %v (idempotent)", state.CompletedAt, first)
	}
	if l.CompletedCount() != 1 {
		t.Errorf("CompletedCount = %d, want 1", l.CompletedCount())
	}
}

func TestCompletedCount(t *testing.T) {
	l := New()
	now := time.Now()
	if l.CompletedCount() != 0 {
		t.Errorf("CompletedCount on fresh ledger = %d, want 0", l.CompletedCount())
	}

	l.MarkCompleted(1, now)
	l.MarkCompleted(3, now)
	l.MarkCompleted(10, now)
	if l.CompletedCount() != 3 {
		t.Errorf("CompletedCount = %d, want 3", l.CompletedCount())
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	l := New()
	l.RecordValidation(2, false, []string{"oops"})
	l.MarkCompleted(1, time.Now())

	l.Reset()

	if l.CompletedCount() != 0 {
		t.Errorf("CompletedCount after Reset = %d, want 0", l.CompletedCount())
	}
	if state := l.Step(2); state.Errors != nil || state.IsValid {
		t.Errorf("Step(2) after Reset = %+v, want zero state", state)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	l := New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.RecordValidation(1, true, nil)
	l.MarkCompleted(1, now)
	l.RecordValidation(5, false, []string{"too short"})

	restored := New()
	restored.Restore(l.Snapshot())

	if restored.CompletedCount() != 1 {
		t.Errorf("restored CompletedCount = %d, want 1", restored.CompletedCount())
	}
	state := restored.Step(5)
	if state.IsValid || len(state.Errors) != 1 {
		t.Errorf("restored Step(5) = %+v, want the recorded failure", state)
	}
	if at := restored.Step(1).CompletedAt; at == nil || !at.Equal(now) {
		t.Errorf("restored CompletedAt = %v, want %v", at, now)
	}
}

func TestRestore_IgnoresOutOfRangeSteps(t *testing.T) {
	l := New()
	l.Restore(map[int]StepState{
		0:  {IsCompleted: true},
		11: {IsCompleted: true},
		2:  {IsCompleted: true},
	})
	if l.CompletedCount() != 1 {
		t.Errorf("CompletedCount = %d, want 1 (steps 0 and 11 dropped)", l.CompletedCount())
	}
}

func TestStep_ReturnsCopy(t *testing.T) {
	l := New()
	l.RecordValidation(3, false, []string{"original"})

	state := l.Step(3)
	state.Errors[0] = "mutated"

	if got := l.Step(3).Errors[0]; got != "original" {
		t.Errorf("ledger error = %q after mutating the returned copy, want %q", got, "original")
	}
}
