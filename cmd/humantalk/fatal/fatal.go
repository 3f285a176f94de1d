// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fatal contains the command that reports a fatal error.
package fatal

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-FFFFFF/humantalk"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/cmdstate"
	"github.com/matt-FFFFFF/humantalk/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	bugMessageFlag = "bug-message"
	bugURLFlag     = "bug-url"
	strictFlag     = "strict"
)

// ErrNoMessage is returned when no message is given.
var ErrNoMessage = errors.New("no message given")

// NewFatalCmd returns the command that displays a crash report, writes
// crash_report.log and exits with status 3.
func NewFatalCmd() *cli.Command {
	return &cli.Command{
		Name:  "fatal",
		Usage: "Report a fatal error and write crash_report.log",
		Description: `Display a fatal error report with platform information and write it to the crash report file.
The process exits with status 3 when the report was written, 255 when the file could not be written
and 254 when --strict is given and platform information is unavailable.`,
		ArgsUsage: "<message>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     bugMessageFlag,
				Usage:    "Message shown to users, overrides the configuration file",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     bugURLFlag,
				Usage:    "Where users should report the crash, overrides the configuration file",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:        strictFlag,
				Usage:       "Fail if the toolchain version cannot be determined",
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return ErrNoMessage
	}

	cfg, err := cmdstate.Config(ctx, cmd)
	if err != nil {
		return err
	}

	cfg.SetStrictMachineInfo(cmd.Bool(strictFlag))

	if cmd.IsSet(bugMessageFlag) || cmd.IsSet(bugURLFlag) {
		bug, ok := cfg.BugReport()
		if !ok {
			bug = humantalk.DefaultBugReport
		}

		if cmd.IsSet(bugMessageFlag) {
			bug.Message = cmd.String(bugMessageFlag)
		}

		if cmd.IsSet(bugURLFlag) {
			bug.URL = cmd.String(bugURLFlag)
		}

		cfg.SetBugReport(bug)
	}

	fe := cfg.Fatal(strings.Join(cmd.Args().Slice(), " "))
	ctxlog.Debug(ctx, "fatal error reported", "outcome", fe.Kind.String(), "path", fe.Path)

	return fe
}
