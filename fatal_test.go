// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"bytes"
	"errors"
	"os"
	"runtime/debug"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("no space left on device")

// shortWriteFs hands out files whose writes always fail.
type shortWriteFs struct {
	afero.Fs
}

func (s shortWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := s.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	return shortWriteFile{File: f}, nil
}

type shortWriteFile struct {
	afero.File
}

func (shortWriteFile) Write([]byte) (int, error) {
	return 0, errDiskFull
}

func (shortWriteFile) WriteString(string) (int, error) {
	return 0, errDiskFull
}

func newFatalConfig(buf *bytes.Buffer, fs afero.Fs, opts ...Option) *Config {
	opts = append([]Option{WithWriter(buf), WithColour(false), WithFs(fs)}, opts...)

	return Custom(Default().Colors(), NewBugReport("contact us", "http://example.test"), opts...)
}

func TestReportBody(t *testing.T) {
	got := ReportBody("boom", NewBugReport("contact us", "http://example.test"))

	assert.Equal(t,
		"[FATAL] boom\ncontact us. Please submit a report to http://example.test, along with a copy of this "+
			"error message, which can also be found in crash_report.log as plaintext.",
		got)
}

func TestFatal_Reported(t *testing.T) {
	var buf bytes.Buffer

	fs := afero.NewMemMapFs()
	cfg := newFatalConfig(&buf, fs)

	fe := cfg.Fatal("boom")
	require.NotNil(t, fe)

	screen := buf.String()
	for _, want := range []string{"[FATAL] boom", "contact us", "http://example.test", "[PLATFORM INFO]", MachineInfo()} {
		assert.Contains(t, screen, want)
	}

	content, err := afero.ReadFile(fs, CrashReportFile)
	require.NoError(t, err)

	for _, want := range []string{"[FATAL] boom", "contact us", "http://example.test", "[PLATFORM INFO]\n" + MachineInfo()} {
		assert.Contains(t, string(content), want)
	}

	assert.Equal(t, fe.Report+"\n", string(content))
	assert.Equal(t, FatalReported, fe.Kind)
	assert.True(t, fe.LogWritten)
	assert.Equal(t, ExitReported, fe.ExitCode())
	assert.Equal(t, 3, fe.ExitCode())
	assert.ErrorIs(t, fe, ErrFatal)
	assert.NotContains(t, screen, "Failed to")

	tmp, err := afero.Glob(fs, CrashReportFile+".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, tmp)
}

func TestFatal_DefaultBugReport(t *testing.T) {
	var buf bytes.Buffer

	cfg := Default(WithWriter(&buf), WithColour(false), WithFs(afero.NewMemMapFs()))
	fe := cfg.Fatal("boom")

	assert.Contains(t, buf.String(), "Oh no! The program has crashed. Please submit a report to the appropriate place")
	assert.Equal(t, FatalReported, fe.Kind)
}

func TestFatal_ColouredScreenOutput(t *testing.T) {
	var buf bytes.Buffer

	cfg := Default(WithWriter(&buf), WithColour(true), WithFs(afero.NewMemMapFs()))
	fe := cfg.Fatal("boom")

	assert.Contains(t, buf.String(), "\033[38;5;1m[FATAL] boom")
	assert.Contains(t, buf.String(), "\033[38;5;6m[PLATFORM INFO]")
	assert.NotContains(t, fe.Report, "\033[")
}

func TestFatal_CreateFails(t *testing.T) {
	var buf bytes.Buffer

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	cfg := newFatalConfig(&buf, fs)

	fe := cfg.Fatal("boom")

	assert.Contains(t, buf.String(), "[FATAL] boom")
	assert.Contains(t, buf.String(), "Failed to create debug file - just copy the information displayed above.")
	assert.Equal(t, FatalReportFailed, fe.Kind)
	assert.False(t, fe.LogWritten)
	assert.ErrorIs(t, fe, ErrCreateCrashReport)
	assert.ErrorIs(t, fe, ErrFatal)
	assert.NotEqual(t, ExitReported, fe.ExitCode())
	assert.Equal(t, ExitReportFailed, fe.ExitCode())

	exists, err := afero.Exists(fs, CrashReportFile)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFatal_WriteFailsKeepsPriorReport(t *testing.T) {
	var buf bytes.Buffer

	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, CrashReportFile, []byte("previous report\n"), 0o644))

	cfg := newFatalConfig(&buf, shortWriteFs{Fs: mem})
	fe := cfg.Fatal("boom")

	assert.Contains(t, buf.String(), "[FATAL] boom")
	assert.Contains(t, buf.String(), "Failed to write to debug file - just copy the information displayed above.")
	assert.Equal(t, FatalReportFailed, fe.Kind)
	assert.ErrorIs(t, fe, ErrWriteCrashReport)
	assert.ErrorIs(t, fe, errDiskFull)
	assert.Equal(t, ExitReportFailed, fe.ExitCode())

	content, err := afero.ReadFile(mem, CrashReportFile)
	require.NoError(t, err)
	assert.Equal(t, "previous report\n", string(content))

	tmp, err := afero.Glob(mem, CrashReportFile+".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, tmp)
}

func TestFatal_OverwritesPriorReport(t *testing.T) {
	var buf bytes.Buffer

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, CrashReportFile, []byte("previous report\n"), 0o644))

	fe := newFatalConfig(&buf, fs).Fatal("second")
	require.Equal(t, FatalReported, fe.Kind)

	content, err := afero.ReadFile(fs, CrashReportFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "previous report")
	assert.Contains(t, string(content), "[FATAL] second")
}

func TestFatal_CustomPath(t *testing.T) {
	var buf bytes.Buffer

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/var/log/app", 0o755))

	fe := newFatalConfig(&buf, fs, WithCrashReportPath("/var/log/app/crash.txt")).Fatal("boom")
	require.Equal(t, FatalReported, fe.Kind)
	assert.Equal(t, "/var/log/app/crash.txt", fe.Path)
	assert.Contains(t, fe.Report, "can also be found in crash.txt as plaintext.")

	exists, err := afero.Exists(fs, "/var/log/app/crash.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFatal_StrictMachineInfo(t *testing.T) {
	stubs := gostub.Stub(&readBuildInfo, func() (*debug.BuildInfo, bool) {
		return nil, false
	})
	defer stubs.Reset()

	stubs.Stub(&goVersion, func() string { return "" })

	t.Run("strict", func(t *testing.T) {
		var buf bytes.Buffer

		fs := afero.NewMemMapFs()
		fe := newFatalConfig(&buf, fs, WithStrictMachineInfo()).Fatal("boom")

		assert.Contains(t, buf.String(), "[FATAL] boom")
		assert.Equal(t, FatalInfoUnavailable, fe.Kind)
		assert.ErrorIs(t, fe, ErrToolchainUnknown)
		assert.Equal(t, ExitInfoUnavailable, fe.ExitCode())

		exists, err := afero.Exists(fs, CrashReportFile)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("degraded", func(t *testing.T) {
		var buf bytes.Buffer

		fe := newFatalConfig(&buf, afero.NewMemMapFs()).Fatal("boom")

		assert.Equal(t, FatalReported, fe.Kind)
		assert.Contains(t, fe.Report, "Go version unknown")
	})
}

func TestExitCodesDistinct(t *testing.T) {
	codes := map[int]struct{}{
		ExitReported:        {},
		ExitReportFailed:    {},
		ExitInfoUnavailable: {},
	}
	assert.Len(t, codes, 3)
}

func TestExit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "reported", err: &FatalError{Kind: FatalReported}, want: 3},
		{name: "report failed", err: &FatalError{Kind: FatalReportFailed, Err: ErrCreateCrashReport}, want: 255},
		{name: "info unavailable", err: &FatalError{Kind: FatalInfoUnavailable, Err: ErrToolchainUnknown}, want: 254},
		{name: "wrapped fatal", err: errors.Join(errors.New("ctx"), &FatalError{Kind: FatalReported}), want: 3},
		{name: "other error", err: errors.New("nope"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := -1
			stubs := gostub.Stub(&osExit, func(code int) { got = code })
			defer stubs.Reset()

			Exit(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFatalExit(t *testing.T) {
	var buf bytes.Buffer

	got := -1
	stubs := gostub.Stub(&osExit, func(code int) { got = code })
	defer stubs.Reset()

	newFatalConfig(&buf, afero.NewMemMapFs()).FatalExit("boom")
	assert.Equal(t, 3, got)

	newFatalConfig(&buf, afero.NewReadOnlyFs(afero.NewMemMapFs())).FatalExit("boom")
	assert.Equal(t, 255, got)
}

func TestFatalError_Error(t *testing.T) {
	ok := &FatalError{Kind: FatalReported, Message: "boom", Path: "crash_report.log"}
	assert.Equal(t, "fatal: boom (report written to crash_report.log)", ok.Error())

	failed := &FatalError{Kind: FatalReportFailed, Message: "boom", Err: ErrCreateCrashReport}
	assert.Equal(t, "fatal: boom (report failed: failed to create crash report)", failed.Error())
}
