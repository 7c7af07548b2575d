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
	"errors"
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// snapshotKey is the fixed key the wizard snapshot is stored under.
var snapshotKey = []byte("wizard/snapshot")

// BadgerOptions configures a BadgerStore.
type BadgerOptions struct {
	Dir      string // on-disk directory (ignored when InMemory is true)
	InMemory bool   // use in-memory storage (for tests)
}

// BadgerStore persists the snapshot in a BadgerDB database. Badger's
// transactional writes give the same all-or-nothing guarantee as the file
// store's rename.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger creates or opens a Badger-backed store. If the WAL is corrupted
// (e.g. the process was killed mid-write), it recovers by opening once in
// write mode to let Badger truncate, then retrying.
func OpenBadger(opts BadgerOptions) (*BadgerStore, error) {
	bopts := badgerOptions(opts)

	db, err := badger.Open(bopts)
	if err != nil && !opts.InMemory && needsTruncation(err) {
		rdb, rerr := badger.Open(badgerOptions(BadgerOptions{Dir: opts.Dir}))
		if rerr != nil {
			return nil, err // return original error if recovery fails
		}
		if cerr := rdb.Close(); cerr != nil {
			return nil, cerr
		}
		db, err = badger.Open(bopts)
	}
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func badgerOptions(opts BadgerOptions) badger.Options {
	bopts := badger.DefaultOptions(opts.Dir)
	bopts.Logger = nil // suppress badger logs
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
		bopts.Logger = nil
	}
	return bopts
}

// needsTruncation checks if a Badger open error indicates WAL truncation is
// needed.
func needsTruncation(err error) bool {
	return strings.Contains(err.Error(), "Log truncate required") ||
		strings.Contains(err.Error(), "MANIFEST has unsupported version")
}

// Load reads the snapshot blob from the fixed key.
func (s *BadgerStore) Load() (*Snapshot, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// Save stores the snapshot blob under the fixed key.
func (s *BadgerStore) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, data)
	})
}

// Close runs value log GC and closes the database.
func (s *BadgerStore) Close() error {
	// The 0.5 discard ratio rewrites a vlog file when at least half of its
	// space is reclaimable.
	for s.db.RunValueLogGC(0.5) == nil {
	}
	return s.db.Close()
}
