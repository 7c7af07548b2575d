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

// Package flow orchestrates the wizard: it owns the configuration document
// and completion ledger, runs validators on every mutation, gates
// navigation, and schedules debounced persistence. The Controller is an
// explicitly constructed instance with an injected store, not a
// package-level singleton.
package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/site-forge/siteforge/internal/document"
	"github.com/site-forge/siteforge/internal/ledger"
	"github.com/site-forge/siteforge/internal/snapshot"
	"github.com/site-forge/siteforge/internal/validate"
)

// DefaultDebounce is the autosave coalescing window.
const DefaultDebounce = 100 * time.Millisecond

// Option configures a Controller.
type Option func(*Controller)

// WithPolicy overrides the validation policy.
func WithPolicy(p validate.Policy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithDebounce overrides the autosave debounce delay.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

// WithClock overrides the time source (for tests).
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller coordinates the document, ledger, gate, and persistence. All
// methods are called from the single UI goroutine; the only concurrency is
// the debounced save, which the internal saver synchronizes.
type Controller struct {
	doc      *document.Document
	led      *ledger.Ledger
	current  int
	genDone  bool
	policy   validate.Policy
	debounce time.Duration
	now      func() time.Time
	saver    *saver
}

// New constructs a Controller bound to the given store, restoring any
// previously saved snapshot. A missing snapshot starts a fresh wizard; a
// present-but-unreadable snapshot is an error so callers can surface it
// instead of silently discarding the user's progress.
func New(store snapshot.Store, opts ...Option) (*Controller, error) {
	c := &Controller{
		doc:      document.New(),
		led:      ledger.New(),
		current:  1,
		policy:   validate.DefaultPolicy(),
		debounce: DefaultDebounce,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.saver = newSaver(store, c.debounce)

	snap, err := store.Load()
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return c, nil
		}
		return nil, fmt.Errorf("restoring wizard state: %w", err)
	}
	c.restore(snap)
	return c, nil
}

// restore rebuilds in-memory state from a snapshot. Validity is derived
// data and is recomputed from the restored document; completion latches
// were written atomically with the document and are trusted as persisted.
func (c *Controller) restore(snap *snapshot.Snapshot) {
	if snap.Document != nil {
		snap.Document.Normalize()
		c.doc = snap.Document
	}
	c.led.Restore(snap.Ledger)
	c.current = snap.CurrentStep
	if c.current < 1 {
		c.current = 1
	}
	if c.current > validate.Steps {
		c.current = validate.Steps
	}
	c.genDone = snap.GenerationComplete
	for step := 1; step <= validate.Steps; step++ {
		res := validate.Step(step, c.doc, c.policy)
		c.led.RecordValidation(step, res.IsValid, res.Errors)
	}
}

// CurrentStep returns the wizard's current step (1..10).
func (c *Controller) CurrentStep() int { return c.current }

// GenerationComplete reports whether the generation submission flow has
// marked this configuration as generated.
func (c *Controller) GenerationComplete() bool { return c.genDone }

// SetGenerationComplete records the outcome of the external generation
// submission. It is not a step transition.
func (c *Controller) SetGenerationComplete(done bool) {
	c.genDone = done
	c.scheduleSave()
}

// Policy returns the active validation policy.
func (c *Controller) Policy() validate.Policy { return c.policy }

// Document returns a deep copy of the configuration document. Callers can
// never mutate controller state through it.
func (c *Controller) Document() *document.Document {
	return c.doc.Clone()
}

// Slot returns a copy of one slot's value and whether it is set.
func (c *Controller) Slot(slot document.Slot) (any, bool) {
	return c.doc.Get(slot)
}

// StepState returns the ledger's recorded state for a step.
func (c *Controller) StepState(step int) ledger.StepState {
	return c.led.Step(step)
}

// UpdateSlot writes a slot wholesale, revalidates the current step, records
// the result, and schedules a debounced save.
func (c *Controller) UpdateSlot(slot document.Slot, value any) {
	c.doc.Set(slot, value)
	c.revalidate(c.current)
	c.scheduleSave()
}

// Advance validates the current step; when valid it latches the step as
// completed and moves forward (clamped at the last step). Returns whether
// the wizard advanced. On failure the step's errors stay visible in the
// ledger and no state changes.
func (c *Controller) Advance() bool {
	res := c.revalidate(c.current)
	if !res.IsValid {
		c.scheduleSave()
		return false
	}
	c.led.MarkCompleted(c.current, c.now().UTC())
	if c.current < validate.Steps {
		c.current++
		c.revalidate(c.current)
	}
	c.scheduleSave()
	return true
}

// Retreat moves one step back unconditionally (clamped at step 1).
func (c *Controller) Retreat() {
	if c.current == 1 {
		return
	}
	c.current--
	c.revalidate(c.current)
	c.scheduleSave()
}

// GoTo navigates to the target step if the gate permits it. Returns whether
// navigation happened.
func (c *Controller) GoTo(step int) bool {
	if !CanEnter(step, c.current, c.led) {
		return false
	}
	if step == c.current {
		return true
	}
	c.current = step
	c.revalidate(c.current)
	c.scheduleSave()
	return true
}

// CanEnter reports whether the gate permits navigating to the target step
// from the current position.
func (c *Controller) CanEnter(step int) bool {
	return CanEnter(step, c.current, c.led)
}

// Reset starts the wizard over: empty document, fresh ledger, step 1, and
// generation flag cleared.
func (c *Controller) Reset() {
	c.doc.Reset()
	c.led.Reset()
	c.current = 1
	c.genDone = false
	c.scheduleSave()
}

// ProgressPercent returns the completed-step percentage (0..100).
func (c *Controller) ProgressPercent() int {
	return 100 * c.led.CompletedCount() / validate.Steps
}

// Flush writes any pending snapshot immediately. Call before exit so the
// debounce window cannot drop the last edits.
func (c *Controller) Flush() error {
	return c.saver.flush()
}

func (c *Controller) revalidate(step int) validate.Result {
	res := validate.Step(step, c.doc, c.policy)
	c.led.RecordValidation(step, res.IsValid, res.Errors)
	return res
}

func (c *Controller) scheduleSave() {
	c.saver.schedule(&snapshot.Snapshot{
		Version:            snapshot.Version,
		Document:           c.doc.Clone(),
		Ledger:             c.led.Snapshot(),
		CurrentStep:        c.current,
		GenerationComplete: c.genDone,
		SavedAt:            c.now().UTC(),
	})
}
