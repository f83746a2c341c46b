// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package report

import "github.com/fatih/color"

// Shared color printers for sweep output.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
)

// ColorAction colors per-branch sweep actions.
func ColorAction(val string) string {
	switch val {
	case "deleted", "failed":
		return colorRed.Sprint(val)
	case "would-delete":
		return colorYellow.Sprint(val)
	case "protected":
		return colorCyan.Sprint(val)
	case "kept":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}
