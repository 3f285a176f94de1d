// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package and renders records as humantalk lines, so the
// command's own diagnostics look like the messages it prints for users.
package ctxlog
