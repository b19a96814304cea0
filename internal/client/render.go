// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

// Package client renders configuration reports for terminal output.
package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pgtools/pg-config-view/models"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	settingStyle = lipgloss.NewStyle()
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// WritePlain prints entries one per line as "NAME = VALUE". A single
// requested entry prints its bare value only, matching the usual
// command-line query convention.
func WritePlain(w io.Writer, entries []models.ConfigEntry, bareValue bool) error {
	for _, entry := range entries {
		var err error
		if bareValue {
			_, err = fmt.Fprintln(w, entry.Setting)
		} else {
			_, err = fmt.Fprintf(w, "%s = %s\n", entry.Name, entry.Setting)
		}
		if err != nil {
			return fmt.Errorf("writing entry %q: %w", entry.Name, err)
		}
	}

	return nil
}

// WriteStyled prints entries as an aligned, bordered table. Meant for
// interactive terminals; piped output should use [WritePlain] instead.
func WriteStyled(w io.Writer, entries []models.ConfigEntry) error {
	nameWidth := 0
	for _, entry := range entries {
		if len(entry.Name) > nameWidth {
			nameWidth = len(entry.Name)
		}
	}

	rows := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, entry.Name))
		rows = append(rows, name+"  "+settingStyle.Render(entry.Setting))
	}

	if _, err := fmt.Fprintln(w, boxStyle.Render(strings.Join(rows, "\n"))); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}
