// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color renders text with ANSI SGR escape sequences.
// Colors are selected from the 256-color palette (ESC[38;5;<n>m).
// Whether output is colored by default is decided once at startup from the
// NO_COLOR and FORCE_COLOR environment variables, falling back to terminal
// detection on stdout using the golang.org/x/term package.
package color
