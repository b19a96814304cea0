// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

// Package models defines the data transfer objects shared by the report
// core, the storage layer, and the transport surfaces.
package models

// ConfigEntry is a single row of the build-configuration report: a fixed
// key such as "BINDIR" or "CFLAGS" paired with its resolved setting.
//
// Entries are immutable once computed. Ordering within a report is fixed
// and significant for display, but consumers must identify entries by
// Name, never by position.
type ConfigEntry struct {
	Name    string `json:"name"`
	Setting string `json:"setting"`
}
