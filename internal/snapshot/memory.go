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

package snapshot

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps the snapshot in memory. It serializes through JSON like
// the durable stores so tests exercise the same round-trip semantics.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the last saved snapshot.
func (s *MemoryStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNotFound
	}
	var snap Snapshot
	if err := json.Unmarshal(s.data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save encodes and stores the snapshot.
func (s *MemoryStore) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.saves++
	s.mu.Unlock()
	return nil
}

// SaveCount returns how many times Save ran, for debounce assertions.
func (s *MemoryStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
