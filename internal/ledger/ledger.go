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

// Package ledger tracks per-step validity and completion for the wizard.
// Validity follows the validators and may flip both ways; completion is a
// one-way latch cleared only by a full reset.
package ledger

import (
	"fmt"
	"time"
)

// Steps is the fixed number of tracked steps (1..Steps).
const Steps = 10

// StepState is the recorded state of one step.
type StepState struct {
	IsValid     bool       `json:"isValid"`
	IsCompleted bool       `json:"isCompleted"`
	Errors      []string   `json:"errors,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Ledger maps step numbers 1..Steps to their recorded state.
type Ledger struct {
	steps [Steps]StepState
}

// New returns a ledger with every step invalid and not completed.
func New() *Ledger {
	return &Ledger{}
}

func mustIndex(step int) int {
	if step < 1 || step > Steps {
		panic(fmt.Sprintf("ledger: step %d out of range 1..%d", step, Steps))
	}
	return step - 1
}

// Step returns a copy of the recorded state for a step.
func (l *Ledger) Step(step int) StepState {
	s := l.steps[mustIndex(step)]
	if s.Errors != nil {
		errs := make([]string, len(s.Errors))
		copy(errs, s.Errors)
		s.Errors = errs
	}
	return s
}

// RecordValidation overwrites the step's validity and error list. It never
// touches the completion latch or its timestamp.
func (l *Ledger) RecordValidation(step int, isValid bool, errs []string) {
	i := mustIndex(step)
	l.steps[i].IsValid = isValid
	if errs == nil {
		l.steps[i].Errors = nil
		return
	}
	l.steps[i].Errors = make([]string, len(errs))
	copy(l.steps[i].Errors, errs)
}

// MarkCompleted latches the step as completed and stamps CompletedAt with
// the given time. Idempotent: repeat calls keep the first timestamp.
func (l *Ledger) MarkCompleted(step int, now time.Time) {
	i := mustIndex(step)
	if l.steps[i].IsCompleted {
		return
	}
	l.steps[i].IsCompleted = true
	t := now
	l.steps[i].CompletedAt = &t
}

// CompletedCount returns how many steps are completed.
func (l *Ledger) CompletedCount() int {
	n := 0
	for i := range l.steps {
		if l.steps[i].IsCompleted {
			n++
		}
	}
	return n
}

// Reset returns every step to its initial state.
func (l *Ledger) Reset() {
	l.steps = [Steps]StepState{}
}

// Snapshot returns the per-step states keyed by step number, for
// persistence.
func (l *Ledger) Snapshot() map[int]StepState {
	out := make(map[int]StepState, Steps)
	for step := 1; step <= Steps; step++ {
		out[step] = l.Step(step)
	}
	return out
}

// Restore replaces the ledger contents from a persisted snapshot. Steps
// missing from the map stay at their zero state; steps outside 1..Steps are
// ignored (tolerates snapshots from older layouts).
func (l *Ledger) Restore(states map[int]StepState) {
	l.Reset()
	for step, s := range states {
		if step < 1 || step > Steps {
			continue
		}
		i := step - 1
		l.steps[i] = s
		if s.Errors != nil {
			l.steps[i].Errors = make([]string, len(s.Errors))
			copy(l.steps[i].Errors, s.Errors)
		}
		if s.CompletedAt != nil {
			t := *s.CompletedAt
			l.steps[i].CompletedAt = &t
		}
	}
}
