// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the global flags shared by every subcommand and
// builds the humantalk.Config they describe.
package cmdstate

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/humantalk"
	"github.com/matt-FFFFFF/humantalk/internal/config"
	"github.com/matt-FFFFFF/humantalk/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// Global flag names.
const (
	ConfigFlag   = "config"
	DebugFlag    = "debug"
	NoColourFlag = "no-colour"
)

// ErrLoadConfig is returned when the configuration given by --config cannot be used.
var ErrLoadConfig = errors.New("failed to load configuration")

// Flags returns the global flags. They are inherited by all subcommands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ConfigFlag,
			Aliases: []string{"c"},
			Usage: "Path or URL of a YAML or HCL configuration file. " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources.",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.BoolFlag{
			Name:        DebugFlag,
			Usage:       "Print debug messages. Overrides the configuration file.",
			DefaultText: "true, false with the release build tag",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        NoColourFlag,
			Aliases:     []string{"no-color"},
			Usage:       "Disable colored output",
			DefaultText: "false",
			OnlyOnce:    true,
		},
	}
}

// Writer returns the output writer of the root command.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// Config builds the humantalk.Config described by the global flags.
func Config(ctx context.Context, cmd *cli.Command) (*humantalk.Config, error) {
	opts := []humantalk.Option{humantalk.WithWriter(Writer(cmd))}
	if cmd.Bool(NoColourFlag) {
		opts = append(opts, humantalk.WithColour(false))
	}

	var file *config.File

	if src := cmd.String(ConfigFlag); src != "" {
		ctxlog.Debug(ctx, "loading configuration", "source", src)

		f, err := config.Resolve(ctx, src)
		if err != nil {
			return nil, errors.Join(ErrLoadConfig, err)
		}

		file = f
	}

	cfg, err := config.Build(file, opts...)
	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	if cmd.IsSet(DebugFlag) {
		cfg.SetDebug(cmd.Bool(DebugFlag))
	}

	return cfg, nil
}
