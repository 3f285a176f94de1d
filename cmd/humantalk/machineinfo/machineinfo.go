// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package machineinfo contains the command that prints platform information.
package machineinfo

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/humantalk"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/cmdstate"
	"github.com/urfave/cli/v3"
)

// NewMachineInfoCmd returns the command that prints the line included in crash reports.
func NewMachineInfoCmd() *cli.Command {
	return &cli.Command{
		Name:  "machine-info",
		Usage: "Print the platform information included in crash reports",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmdstate.Writer(cmd), humantalk.MachineInfo())
			return err
		},
	}
}
