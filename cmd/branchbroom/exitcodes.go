// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the branchbroom CLI.
const (
	ExitOK             = 0 // All repositories swept cleanly.
	ExitInvalidArgs    = 1 // Invalid arguments or unreadable input.
	ExitPartialFailure = 2 // Some repositories failed to sweep.
	ExitTotalFailure   = 3 // Every repository failed to sweep.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message
// is set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "branchbroom: some repositories failed"
		case ExitTotalFailure:
			msg = "branchbroom: all repositories failed"
		default:
			msg = "branchbroom: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
