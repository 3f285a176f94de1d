// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package humantalk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color name or code cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is either one of the eight named colors or an explicit
// 256-color palette code. The zero value is Color256(0).
type Color uint16

// named marks the eight named colors; the low byte holds the palette index.
const named Color = 1 << 8

// Named colors. Their palette indices are 0 through 7 in this order.
const (
	Black Color = named + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Color256 returns the color for an explicit palette code.
func Color256(code uint8) Color {
	return Color(code)
}

// Index returns the 256-color palette index of c.
func (c Color) Index() uint8 {
	return uint8(c & 0xff)
}

// IsNamed reports whether c is one of the eight named colors.
func (c Color) IsNamed() bool {
	return c&named != 0
}

// String returns the color name, or the decimal palette code for numeric colors.
func (c Color) String() string {
	if c.IsNamed() {
		return colorNames[c.Index()]
	}

	return strconv.Itoa(int(c.Index()))
}

// ParseColor accepts a color name ("red") or a decimal palette code ("214").
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for i, n := range colorNames {
		if n == name {
			return named + Color(i), nil
		}
	}

	code, err := strconv.ParseUint(name, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color256(uint8(code)), nil
}
