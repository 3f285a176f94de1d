// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSeverity is returned when a severity name cannot be parsed.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity denotes how important a message is.
type Severity int

// Severity levels, from most to least important.
const (
	Error Severity = iota
	Warning
	Info
	Debug

	severityCount = iota
)

var severityLabels = [severityCount]string{
	Error:   "error",
	Warning: "warning",
	Info:    "info",
	Debug:   "debug",
}

// String returns the lowercase label used in the output, e.g. "warning".
func (s Severity) String() string {
	if !s.valid() {
		return fmt.Sprintf("severity(%d)", int(s))
	}

	return severityLabels[s]
}

func (s Severity) valid() bool {
	return s >= 0 && s < severityCount
}

// Severities returns all severities in order.
func Severities() []Severity {
	return []Severity{Error, Warning, Info, Debug}
}

// ParseSeverity converts a label into a Severity. Matching is case-insensitive
// and "warn" is accepted as an alias for "warning".
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warn" {
		return Warning, nil
	}

	for i, label := range severityLabels {
		if label == name {
			return Severity(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}
