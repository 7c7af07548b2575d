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

// Package snapshot persists the wizard's state as one atomic unit: the
// configuration document, the completion ledger, the current step, and the
// generation-complete flag. A restored snapshot is always an internally
// consistent pair of document and ledger.
package snapshot

import (
	"errors"
	"time"

	"github.com/site-forge/siteforge/internal/document"
	"github.com/site-forge/siteforge/internal/ledger"
)

// ErrNotFound is returned by Load when no snapshot has been saved yet.
var ErrNotFound = errors.New("no snapshot found")

// Version is the current snapshot schema version.
const Version = 1

// Snapshot is the serialized wizard state.
type Snapshot struct {
	Version            int                      `json:"version"`
	Document           *document.Document       `json:"document"`
	Ledger             map[int]ledger.StepState `json:"ledger"`
	CurrentStep        int                      `json:"currentStep"`
	GenerationComplete bool                     `json:"generationComplete"`
	SavedAt            time.Time                `json:"savedAt"`
}

// Store persists snapshots. Implementations treat the snapshot as a single
// blob: partial writes must never be observable by Load.
type Store interface {
	// Load returns the most recently saved snapshot, or ErrNotFound when
	// nothing has been saved.
	Load() (*Snapshot, error)

	// Save replaces the stored snapshot.
	Save(*Snapshot) error

	// Close releases any underlying resources.
	Close() error
}
