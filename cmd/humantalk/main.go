// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the humantalk command-line interface (CLI).
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/humantalk"
	"github.com/matt-FFFFFF/humantalk/internal/ctxlog"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	err := newRootCmd(os.Stdout, os.Stderr).Run(ctx, os.Args)
	cancelled := ctx.Err()

	cancel()

	var fe *humantalk.FatalError
	if errors.As(err, &fe) {
		humantalk.Exit(fe)
	}

	if cancelled != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", cancelled)
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
