// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/humantalk"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/cmdstate"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/colors"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/fatal"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/machineinfo"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/write"
	"github.com/urfave/cli/v3"
)

// newRootCmd builds the command tree. Output goes to w, errors to errW.
func newRootCmd(w, errW io.Writer) *cli.Command {
	commands := []*cli.Command{
		write.NewWriteCmd(),
		fatal.NewFatalCmd(),
		machineinfo.NewMachineInfoCmd(),
		colors.NewColorsCmd(),
	}
	commands = append(commands, write.NewSeverityCmds()...)

	return &cli.Command{
		Name:      "humantalk",
		Usage:     "humantalk info \"hello world\"",
		Commands:  commands,
		Flags:     cmdstate.Flags(),
		Writer:    w,
		ErrWriter: errW,
		Version:   fmt.Sprintf("%s (commit: %s)", humantalk.Version, humantalk.Commit),
		Description: `humantalk prints severity-tagged, colorized messages to the console.
On fatal errors it displays a report with platform information, writes it to crash_report.log
and exits with status 3.`,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		// Exit codes are decided in main.
		ExitErrHandler:        func(context.Context, *cli.Command, error) {},
		EnableShellCompletion: true,
	}
}
