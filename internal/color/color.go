// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

// Code represents an ANSI SGR parameter.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Reset clears all attributes.
const Reset Code = 0

const (
	// foreground selects an extended foreground color, followed by paletteMode.
	foreground Code = 38
	// paletteMode selects the 256-color palette, followed by the index.
	paletteMode Code = 5
)

var enabled bool

func init() {
	enabled = isColorCapable()
}

// Foreground256 returns the SGR parameters that select palette entry index
// as the foreground color.
func Foreground256(index uint8) []Code {
	return []Code{foreground, paletteMode, Code(index)}
}

// Wrap applies the codes to str and appends the reset sequence,
// regardless of whether color output is enabled.
func Wrap(str string, colorCodes ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range colorCodes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Colorize returns a string with ANSI color codes applied.
// It appends the reset code at the end of the string to reset the color.
func Colorize(str string, colorCodes ...Code) string {
	// If color output is not enabled, return the string as is
	if !enabled {
		return str
	}

	return Wrap(str, colorCodes...)
}

// Colorize256 renders str in palette entry index when color output is enabled.
func Colorize256(str string, index uint8) string {
	return Colorize(str, Foreground256(index)...)
}

// Enabled is a function that indicates whether color output is enabled.
// It is initialized in package init().
//
// It is set to true if either the NO_COLOR environment variable is not set,
// and the FORCE_COLOR environment variable is set, or if the output is a terminal.
// Terminal detection is done using the golang.org/x/term package.
//
// It is set to false if the NO_COLOR environment variable is set, or if the
// output is not a terminal.
func Enabled() bool {
	return enabled
}

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
