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

package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// XDG-compliant paths for siteforge configuration, cache, and data.
var (
	// Home is the configuration directory (~/.config/siteforge).
	Home string
	// Cache is the cache directory (~/.cache/siteforge).
	Cache string
	// Data is the data directory (~/.local/share/siteforge).
	Data string
)

func init() {
	Home = filepath.Join(xdgConfig(), "siteforge")
	Cache = filepath.Join(xdgCache(), "siteforge")
	Data = filepath.Join(xdgData(), "siteforge")
}

func xdgConfig() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("APPDATA"); v != "" {
			return v
		}
	}
	return filepath.Join(homeDir(), ".config")
}

func xdgCache() string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("LOCALAPPDATA"); v != "" {
			return filepath.Join(v, "cache")
		}
	}
	return filepath.Join(homeDir(), ".cache")
}

func xdgData() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("LOCALAPPDATA"); v != "" {
			return v
		}
	}
	return filepath.Join(homeDir(), ".local", "share")
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return h
}

// ConfigFile returns the path to config.yaml.
func ConfigFile() string {
	return filepath.Join(Home, "config.yaml")
}

// SnapshotFile returns the path of the file-backed wizard snapshot.
func SnapshotFile() string {
	return filepath.Join(Data, "wizard.json")
}

// SnapshotDBDir returns the directory of the badger-backed snapshot store.
func SnapshotDBDir() string {
	return filepath.Join(Data, "snapshot.db")
}
