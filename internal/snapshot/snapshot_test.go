// SiteForge - Guided Website Builder
// Copyright (C) 2026 Site Forge B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/site-forge/siteforge/internal/document"
	"github.com/site-forge/siteforge/internal/ledger"
)

func sampleSnapshot() *Snapshot {
	doc := document.New()
	doc.Set(document.SlotWebsiteType, document.WebsiteType{ID: "business", Name: "Business"})
	completed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Snapshot{
		Version:  Version,
		Document: doc,
		Ledger: map[int]ledger.StepState{
			1: {IsValid: true, IsCompleted: true, CompletedAt: &completed},
		},
		CurrentStep:        2,
		GenerationComplete: false,
		SavedAt:            completed.Add(time.Minute),
	}
}

func checkRoundTrip(t *testing.T, store Store) {
	t.Helper()

	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store = %v, want ErrNotFound", err)
	}

	want := sampleSnapshot()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CurrentStep != want.CurrentStep {
		t.Errorf("CurrentStep = %d, want %d", got.CurrentStep, want.CurrentStep)
	}
	if got.Document == nil || got.Document.WebsiteType == nil || got.Document.WebsiteType.ID != "business" {
		t.Errorf("Document.WebsiteType = %+v, want business", got.Document.WebsiteType)
	}
	state := got.Ledger[1]
	if !state.IsCompleted || state.CompletedAt == nil || !state.CompletedAt.Equal(*want.Ledger[1].CompletedAt) {
		t.Errorf("Ledger[1] = %+v, want completed at %v", state, want.Ledger[1].CompletedAt)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.json")
	checkRoundTrip(t, NewFileStore(path))
}

func TestFileStore_OverwriteKeepsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wizard.json")
	store := NewFileStore(path)

	snap := sampleSnapshot()
	for i := 0; i < 3; i++ {
		snap.CurrentStep = i + 1
		if err := store.Save(snap); err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
	}

	// The atomic write must not leave temp files behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(entries) = %d, want 1 (no temp files)", len(entries))
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CurrentStep != 3 {
		t.Errorf("CurrentStep = %d, want 3 (last write wins)", got.CurrentStep)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Load on corrupt file = nil error, want failure")
	} else if errors.Is(err, ErrNotFound) {
		t.Error("Load on corrupt file = ErrNotFound, want a distinct error")
	}
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	store, err := OpenBadger(BadgerOptions{InMemory: true})
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	defer store.Close()

	checkRoundTrip(t, store)
}

func TestBadgerStore_PersistsAcrossReopens(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenBadger(BadgerOptions{Dir: dir})
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	if err := store.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenBadger(BadgerOptions{Dir: dir})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if got.CurrentStep != 2 {
		t.Errorf("CurrentStep = %d, want 2", got.CurrentStep)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	checkRoundTrip(t, NewMemoryStore())
}
