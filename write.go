// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"fmt"
	"io"
)

// Format returns the uncolored line for a message, e.g. "[info] hello".
func Format(sev Severity, message string) string {
	return "[" + sev.String() + "] " + message
}

// Write prints message to the configured writer, tagged with sev and colored
// with the severity's color. Debug messages are dropped when debug output is
// disabled. Write errors are ignored.
func (c *Config) Write(sev Severity, message string) {
	if sev == Debug && !c.includeDebug {
		return
	}

	_, _ = io.WriteString(c.writer, c.paint(Format(sev, message), c.Color(sev))+"\n")
}

// Debug is shorthand for c.Write(Debug, message).
func (c *Config) Debug(message string) {
	c.Write(Debug, message)
}

// Info is shorthand for c.Write(Info, message).
func (c *Config) Info(message string) {
	c.Write(Info, message)
}

// Warning is shorthand for c.Write(Warning, message).
func (c *Config) Warning(message string) {
	c.Write(Warning, message)
}

// Error is shorthand for c.Write(Error, message).
func (c *Config) Error(message string) {
	c.Write(Error, message)
}

// Debugf formats according to a format specifier and writes a Debug message.
func (c *Config) Debugf(format string, args ...any) {
	if !c.includeDebug {
		return
	}

	c.Write(Debug, fmt.Sprintf(format, args...))
}

// Infof formats according to a format specifier and writes an Info message.
func (c *Config) Infof(format string, args ...any) {
	c.Write(Info, fmt.Sprintf(format, args...))
}

// Warningf formats according to a format specifier and writes a Warning message.
func (c *Config) Warningf(format string, args ...any) {
	c.Write(Warning, fmt.Sprintf(format, args...))
}

// Errorf formats according to a format specifier and writes an Error message.
func (c *Config) Errorf(format string, args ...any) {
	c.Write(Error, fmt.Sprintf(format, args...))
}
