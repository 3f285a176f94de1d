// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"io"

	"github.com/spf13/afero"
)

// Option implements a functional options pattern for Config.
type Option func(c *Config)

// WithWriter sets the destination for console output. The default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *Config) {
		c.writer = w
	}
}

// WithDebug sets whether Debug messages are printed.
// The default is true, or false when built with the release tag.
func WithDebug(include bool) Option {
	return func(c *Config) {
		c.includeDebug = include
	}
}

// WithColour forces color output on or off instead of detecting the terminal.
func WithColour(on bool) Option {
	return func(c *Config) {
		c.colour = &on
	}
}

// WithFs sets the filesystem the crash report is written to.
func WithFs(fs afero.Fs) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithCrashReportPath overrides the crash report location.
func WithCrashReportPath(path string) Option {
	return func(c *Config) {
		c.crashPath = path
	}
}

// WithStrictMachineInfo makes Fatal fail with FatalInfoUnavailable when the
// toolchain version cannot be determined, instead of reporting "unknown".
func WithStrictMachineInfo() Option {
	return func(c *Config) {
		c.strictInfo = true
	}
}
