// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"io"
	"os"

	"github.com/matt-FFFFFF/humantalk/internal/color"
	"github.com/spf13/afero"
)

// CrashReportFile is the default crash report path, relative to the working directory.
const CrashReportFile = "crash_report.log"

// FallbackColor is used for severities that have no color configured.
const FallbackColor = White

// BugReport tells users where to report a crash.
type BugReport struct {
	// Message is displayed when the program crashes.
	Message string
	// URL is where users are pointed.
	URL string
}

// NewBugReport creates a BugReport.
func NewBugReport(message, url string) BugReport {
	return BugReport{Message: message, URL: url}
}

// DefaultBugReport is used by Fatal when the Config carries no BugReport.
var DefaultBugReport = BugReport{
	Message: "Oh no! The program has crashed",
	URL:     "the appropriate place",
}

// Config holds the severity colors, the bug report descriptor and the output settings.
// A Config is not safe for concurrent mutation.
type Config struct {
	colors    [severityCount]Color
	mapped    [severityCount]bool
	bugReport *BugReport

	writer       io.Writer
	fs           afero.Fs
	crashPath    string
	includeDebug bool
	colour       *bool
	strictInfo   bool
}

// Default returns a Config with Error red, Warning yellow, Info green and Debug blue,
// and no bug report.
func Default(opts ...Option) *Config {
	c := newConfig(opts)
	c.SetColor(Error, Red)
	c.SetColor(Warning, Yellow)
	c.SetColor(Info, Green)
	c.SetColor(Debug, Blue)

	return c
}

// Custom returns a Config with the given colors and bug report.
// Severities missing from colors are printed in FallbackColor.
func Custom(colors map[Severity]Color, bug BugReport, opts ...Option) *Config {
	c := newConfig(opts)
	for sev, col := range colors {
		c.SetColor(sev, col)
	}

	c.SetBugReport(bug)

	return c
}

func newConfig(opts []Option) *Config {
	c := &Config{
		writer:       os.Stdout,
		fs:           afero.NewOsFs(),
		crashPath:    CrashReportFile,
		includeDebug: defaultIncludeDebug,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Color returns the color configured for sev, or FallbackColor.
func (c *Config) Color(sev Severity) Color {
	if !sev.valid() || !c.mapped[sev] {
		return FallbackColor
	}

	return c.colors[sev]
}

// SetColor sets the color for sev. Other severities are unaffected.
// Invalid severities are ignored.
func (c *Config) SetColor(sev Severity, col Color) {
	if !sev.valid() {
		return
	}

	c.colors[sev] = col
	c.mapped[sev] = true
}

// UnsetColor removes the color for sev so that FallbackColor applies.
func (c *Config) UnsetColor(sev Severity) {
	if !sev.valid() {
		return
	}

	c.colors[sev] = 0
	c.mapped[sev] = false
}

// Colors returns a copy of the explicitly configured colors.
func (c *Config) Colors() map[Severity]Color {
	out := make(map[Severity]Color, severityCount)

	for _, sev := range Severities() {
		if c.mapped[sev] {
			out[sev] = c.colors[sev]
		}
	}

	return out
}

// BugReport returns the configured bug report, if any.
func (c *Config) BugReport() (BugReport, bool) {
	if c.bugReport == nil {
		return BugReport{}, false
	}

	return *c.bugReport, true
}

// SetBugReport sets the bug report shown by Fatal.
func (c *Config) SetBugReport(bug BugReport) {
	c.bugReport = &bug
}

// DebugEnabled reports whether Debug messages are printed.
func (c *Config) DebugEnabled() bool {
	return c.includeDebug
}

// SetDebug enables or disables Debug messages.
func (c *Config) SetDebug(include bool) {
	c.includeDebug = include
}

// SetStrictMachineInfo sets whether Fatal requires toolchain information.
func (c *Config) SetStrictMachineInfo(strict bool) {
	c.strictInfo = strict
}

// CrashReportPath returns the path Fatal writes to.
func (c *Config) CrashReportPath() string {
	return c.crashPath
}

func (c *Config) colourEnabled() bool {
	if c.colour != nil {
		return *c.colour
	}

	return color.Enabled()
}

func (c *Config) paint(str string, col Color) string {
	if !c.colourEnabled() {
		return str
	}

	return color.Wrap(str, color.Foreground256(col.Index())...)
}
