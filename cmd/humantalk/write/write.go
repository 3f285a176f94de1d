// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package write contains the commands that print a single message.
package write

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-FFFFFF/humantalk"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/cmdstate"
	"github.com/matt-FFFFFF/humantalk/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const severityFlag = "severity"

// ErrNoMessage is returned when no message is given.
var ErrNoMessage = errors.New("no message given")

// NewWriteCmd returns the command that prints a message with a chosen severity.
func NewWriteCmd() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "Print a message tagged with a severity",
		ArgsUsage: "<message>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     severityFlag,
				Aliases:  []string{"s"},
				Usage:    "One of error, warning, info or debug",
				Value:    humantalk.Info.String(),
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sev, err := humantalk.ParseSeverity(cmd.String(severityFlag))
			if err != nil {
				return err
			}

			return writeAction(ctx, cmd, sev)
		},
	}
}

// NewSeverityCmds returns one shorthand command per severity, e.g. "humantalk warning <message>".
func NewSeverityCmds() []*cli.Command {
	cmds := make([]*cli.Command, 0, len(humantalk.Severities()))

	for _, sev := range humantalk.Severities() {
		cmds = append(cmds, &cli.Command{
			Name:      sev.String(),
			Usage:     "Print a message tagged [" + sev.String() + "]",
			ArgsUsage: "<message>...",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return writeAction(ctx, cmd, sev)
			},
		})
	}

	return cmds
}

func writeAction(ctx context.Context, cmd *cli.Command, sev humantalk.Severity) error {
	if cmd.Args().Len() == 0 {
		return ErrNoMessage
	}

	cfg, err := cmdstate.Config(ctx, cmd)
	if err != nil {
		return err
	}

	ctxlog.Debug(ctx, "writing message", "severity", sev.String())
	cfg.Write(sev, strings.Join(cmd.Args().Slice(), " "))

	return nil
}
