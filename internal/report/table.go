// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

// Package report renders sweep results for humans: aligned text tables
// with optional color.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ColorFunc maps a cell value to a colored string. If nil, no color is
// applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Color  ColorFunc
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are silently
// ignored; missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold)
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = bold.Sprintf("%-*s", widths[i], col.Header)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for _, row := range t.rows {
		for i, col := range t.columns {
			val := row[i]
			display := val
			if col.Color != nil {
				display = col.Color(val)
			}
			// Padding is based on raw value length, not ANSI-colored length.
			parts[i] = display + strings.Repeat(" ", widths[i]-len(val))
		}
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	return nil
}
