// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package colors contains the command that previews the severity colors.
package colors

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/humantalk"
	"github.com/matt-FFFFFF/humantalk/cmd/humantalk/cmdstate"
	"github.com/urfave/cli/v3"
)

const (
	labelWidth  = 10
	swatchWidth = 6
)

// NewColorsCmd returns the command that shows the color of every severity.
func NewColorsCmd() *cli.Command {
	return &cli.Command{
		Name:   "colors",
		Usage:  "Show the color used for each severity",
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := cmdstate.Config(ctx, cmd)
	if err != nil {
		return err
	}

	w := cmdstate.Writer(cmd)
	renderer := lipgloss.NewRenderer(w)
	label := renderer.NewStyle().Width(labelWidth)
	rows := make([]string, 0, len(humantalk.Severities()))

	for _, sev := range humantalk.Severities() {
		col := cfg.Color(sev)
		swatch := renderer.NewStyle().
			Width(swatchWidth).
			Background(lipgloss.Color(strconv.Itoa(int(col.Index()))))

		if cmd.Bool(cmdstate.NoColourFlag) {
			swatch = swatch.UnsetBackground()
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(sev.String()),
			swatch.Render(""),
			" "+col.String(),
		))
	}

	_, err = fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))

	return err
}
