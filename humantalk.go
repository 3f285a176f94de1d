// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package humantalk prints severity-tagged, colorized messages to the console
// and produces crash reports for fatal errors.
//
// A Config maps each Severity to a Color from the 256-color palette and
// optionally carries a BugReport telling users where to report crashes:
//
//	cfg := humantalk.Default()
//	cfg.Info("starting up")
//	cfg.SetColor(humantalk.Warning, humantalk.Color256(214))
//	cfg.Warning("disk almost full")
//
// Fatal writes the report to the console and to crash_report.log and returns a
// *FatalError describing the outcome. FatalExit additionally terminates the
// process with the matching exit code.
package humantalk

var (
	// Version is set during the build process.
	Version = "0.1.1"
	// Commit is set during the build process.
	Commit = "unknown"
)
