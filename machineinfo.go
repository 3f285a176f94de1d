// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// ErrToolchainUnknown is returned when the Go version of the build cannot be determined.
var ErrToolchainUnknown = errors.New("unable to determine toolchain version")

const unknown = "unknown"

// Indirections for tests.
var (
	readBuildInfo = debug.ReadBuildInfo
	goVersion     = runtime.Version
	goos          = runtime.GOOS
	goarch        = runtime.GOARCH
	compiler      = runtime.Compiler
)

// ToolchainInfo describes the toolchain that built the running binary.
type ToolchainInfo struct {
	// GoVersion is the Go release, e.g. "go1.24.4".
	GoVersion string
	// Backend is the compiler and its target feature level, e.g. "gc (GOAMD64=v1)".
	Backend string
}

// Toolchain inspects the build information of the running binary.
func Toolchain() (ToolchainInfo, error) {
	info := ToolchainInfo{Backend: compiler}
	if info.Backend == "" {
		info.Backend = unknown
	}

	bi, ok := readBuildInfo()
	if ok && bi != nil {
		info.GoVersion = bi.GoVersion

		for _, s := range bi.Settings {
			if isArchLevel(s.Key) && s.Value != "" && info.Backend != unknown {
				info.Backend = fmt.Sprintf("%s (%s=%s)", info.Backend, s.Key, s.Value)
				break
			}
		}
	}

	if info.GoVersion == "" {
		info.GoVersion = goVersion()
	}

	if info.GoVersion == "" {
		return info, ErrToolchainUnknown
	}

	return info, nil
}

// isArchLevel matches build settings such as GOAMD64 or GOARM64.
func isArchLevel(key string) bool {
	return key == "GO"+strings.ToUpper(goarch)
}

// OSFamily groups the operating system: "windows", "wasm", "plan9" or "unix".
func OSFamily() string {
	switch goos {
	case "windows":
		return "windows"
	case "js", "wasip1":
		return "wasm"
	case "plan9":
		return "plan9"
	default:
		return "unix"
	}
}

// MachineInfo returns a single line describing the platform, the toolchain
// and the humantalk version. Toolchain details that cannot be determined are
// reported as "unknown".
func MachineInfo() string {
	tc, err := Toolchain()
	if err != nil {
		tc.GoVersion = unknown
	}

	return machineInfo(tc)
}

func machineInfo(tc ToolchainInfo) string {
	return fmt.Sprintf(
		"%s-%s-%s - Go version %s, compiled by %s. information generated by humantalk %s",
		OSFamily(), goos, goarch, tc.GoVersion, tc.Backend, Version,
	)
}
