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

// Package health probes the wizard's external collaborators: the backend
// Postgres database and the generation engine.
package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

// Check is the outcome of probing one collaborator.
type Check struct {
	Name    string
	OK      bool
	Detail  string
	Elapsed time.Duration
}

// EngineProber is the slice of the engine client the checker needs.
type EngineProber interface {
	Health(ctx context.Context) error
}

// CheckDatabase opens a Postgres connection and pings it.
func CheckDatabase(ctx context.Context, url string) Check {
	start := time.Now()
	check := Check{Name: "database"}
	if url == "" {
		check.Detail = "no database URL configured"
		return check
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		check.Detail = fmt.Sprintf("open: %v", err)
		check.Elapsed = time.Since(start)
		return check
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		check.Detail = fmt.Sprintf("ping: %v", err)
		check.Elapsed = time.Since(start)
		return check
	}

	check.OK = true
	check.Detail = "reachable"
	check.Elapsed = time.Since(start)
	return check
}

// CheckEngine probes the generation engine's health endpoint.
func CheckEngine(ctx context.Context, prober EngineProber) Check {
	start := time.Now()
	check := Check{Name: "engine"}
	if err := prober.Health(ctx); err != nil {
		check.Detail = err.Error()
		check.Elapsed = time.Since(start)
		return check
	}
	check.OK = true
	check.Detail = "reachable"
	check.Elapsed = time.Since(start)
	return check
}
