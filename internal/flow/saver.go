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

package flow

import (
	"sync"
	"time"

	"github.com/site-forge/siteforge/internal/snapshot"
)

// saver coalesces rapid successive snapshots into one debounced write. Each
// schedule replaces the pending snapshot and restarts the timer; flush
// cancels the timer and writes synchronously. A failed background write is
// dropped silently; the next mutation schedules a fresh snapshot, so
// persistence retries naturally.
type saver struct {
	store snapshot.Store
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *snapshot.Snapshot
}

func newSaver(store snapshot.Store, delay time.Duration) *saver {
	return &saver{store: store, delay: delay}
}

// schedule queues snap for writing after the debounce delay, replacing any
// previously pending snapshot.
func (s *saver) schedule(snap *snapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = snap
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.fire)
		return
	}
	s.timer.Reset(s.delay)
}

// fire runs on the timer goroutine; it takes the pending snapshot and
// writes it outside the lock.
func (s *saver) fire() {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if snap != nil {
		_ = s.store.Save(snap)
	}
}

// flush cancels any pending timer and writes the pending snapshot now.
// Returns nil when nothing is pending.
func (s *saver) flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	snap := s.pending
	s.pending = nil
	s.mu.Unlock()

	if snap == nil {
		return nil
	}
	return s.store.Save(snap)
}
