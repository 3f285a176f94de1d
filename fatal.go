// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Exit codes used by Exit.
const (
	// ExitReported means the fatal error was reported and the crash report written.
	ExitReported = 3
	// ExitReportFailed means the crash report could not be written.
	ExitReportFailed = 255
	// ExitInfoUnavailable means platform information could not be determined in strict mode.
	ExitInfoUnavailable = 254
)

const (
	fatalHeader    = "[FATAL]"
	platformHeader = "[PLATFORM INFO]"
	sixFourFour    = 0o644
)

var (
	// ErrFatal is matched by every *FatalError.
	ErrFatal = errors.New("fatal error")
	// ErrCreateCrashReport is returned when the crash report file cannot be created.
	ErrCreateCrashReport = errors.New("failed to create crash report")
	// ErrWriteCrashReport is returned when the crash report file cannot be written.
	ErrWriteCrashReport = errors.New("failed to write crash report")
)

// osExit terminates the process. Replaced in tests.
var osExit = os.Exit

// FatalKind classifies the outcome of Fatal.
type FatalKind int

const (
	// FatalReported means the report was displayed and written to disk.
	FatalReported FatalKind = iota
	// FatalReportFailed means the report was displayed but could not be written to disk.
	FatalReportFailed
	// FatalInfoUnavailable means platform information was required but unavailable.
	FatalInfoUnavailable
)

func (k FatalKind) String() string {
	switch k {
	case FatalReported:
		return "reported"
	case FatalReportFailed:
		return "report failed"
	case FatalInfoUnavailable:
		return "platform info unavailable"
	default:
		return fmt.Sprintf("FatalKind(%d)", int(k))
	}
}

// FatalError describes a fatal error and how reporting it went.
type FatalError struct {
	Kind    FatalKind
	Message string
	// Report is the plaintext report, as written to the crash report file.
	Report string
	// Path is the crash report location.
	Path string
	// LogWritten is true when Report was written to Path.
	LogWritten bool
	// Err is the cause of a reporting failure.
	Err error
}

func (e *FatalError) Error() string {
	switch e.Kind {
	case FatalReported:
		return fmt.Sprintf("fatal: %s (report written to %s)", e.Message, e.Path)
	default:
		return fmt.Sprintf("fatal: %s (%s: %v)", e.Message, e.Kind, e.Err)
	}
}

// Unwrap returns ErrFatal and the reporting failure, if any.
func (e *FatalError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFatal}
	}

	return []error{ErrFatal, e.Err}
}

// ExitCode returns the process exit code for the outcome.
// It satisfies the ExitCoder interface of github.com/urfave/cli/v3.
func (e *FatalError) ExitCode() int {
	switch e.Kind {
	case FatalReported:
		return ExitReported
	case FatalInfoUnavailable:
		return ExitInfoUnavailable
	default:
		return ExitReportFailed
	}
}

// ReportBody composes the text shown to the user for a fatal error.
func ReportBody(message string, bug BugReport) string {
	return ReportBodyFor(message, bug, CrashReportFile)
}

// ReportBodyFor is ReportBody naming a different crash report file.
func ReportBodyFor(message string, bug BugReport, file string) string {
	return fmt.Sprintf(
		"%s %s\n%s. Please submit a report to %s, along with a copy of this error message, "+
			"which can also be found in %s as plaintext.",
		fatalHeader, message, bug.Message, bug.URL, file,
	)
}

// Fatal displays a fatal error report, writes it to the crash report file and
// returns a *FatalError describing the outcome. It never returns nil.
// The report is always displayed before any failure to write it is.
func (c *Config) Fatal(message string) *FatalError {
	bug, ok := c.BugReport()
	if !ok {
		bug = DefaultBugReport
	}

	body := ReportBodyFor(message, bug, filepath.Base(c.crashPath))
	fe := &FatalError{
		Message: message,
		Path:    c.crashPath,
		Report:  body,
	}

	c.println(c.paint(body, Red) + "\n")

	tc, err := Toolchain()
	if err != nil {
		if c.strictInfo {
			c.println(fmt.Sprintf("Failed to determine platform information (%s) - just copy the information displayed above.", err))
			fe.Kind = FatalInfoUnavailable
			fe.Err = err

			return fe
		}

		tc.GoVersion = unknown
	}

	platform := platformHeader + "\n" + machineInfo(tc)
	c.println(c.paint(platform, Cyan))

	fe.Report = body + "\n" + platform

	if err := c.writeCrashReport(fe.Report + "\n"); err != nil {
		if errors.Is(err, ErrCreateCrashReport) {
			c.println("Failed to create debug file - just copy the information displayed above.")
		} else {
			c.println("Failed to write to debug file - just copy the information displayed above.")
		}

		fe.Kind = FatalReportFailed
		fe.Err = err

		return fe
	}

	fe.Kind = FatalReported
	fe.LogWritten = true

	return fe
}

// FatalExit calls Fatal and terminates the process with the resulting exit code.
func (c *Config) FatalExit(message string) {
	Exit(c.Fatal(message))
}

// Exit terminates the process. A *FatalError exits with its ExitCode,
// any other error with 1 and nil with 0.
func Exit(err error) {
	if err == nil {
		osExit(0)
		return
	}

	var fe *FatalError
	if errors.As(err, &fe) {
		osExit(fe.ExitCode())
		return
	}

	osExit(1)
}

func (c *Config) println(s string) {
	_, _ = io.WriteString(c.writer, s+"\n")
}

// writeCrashReport replaces the crash report through a temporary file in the
// same directory, so an existing report is never left half written.
func (c *Config) writeCrashReport(content string) error {
	dir := filepath.Dir(c.crashPath)

	f, err := afero.TempFile(c.fs, dir, filepath.Base(c.crashPath)+".*.tmp")
	if err != nil {
		return errors.Join(ErrCreateCrashReport, err)
	}

	tmp := f.Name()

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		_ = c.fs.Remove(tmp)

		return errors.Join(ErrWriteCrashReport, err)
	}

	if err := f.Close(); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Join(ErrWriteCrashReport, err)
	}

	_ = c.fs.Chmod(tmp, sixFourFour)

	if err := c.fs.Rename(tmp, c.crashPath); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Join(ErrWriteCrashReport, err)
	}

	return nil
}
