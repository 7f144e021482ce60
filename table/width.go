// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measure returns the visual length of a single line of cell text.
// Input never contains '\n'.
type Measure func(s string) int

// RuneWidth counts Unicode code points. It is the default measure.
func RuneWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// GraphemeWidth counts user-perceived characters, so combining sequences and
// emoji with modifiers count once.
func GraphemeWidth(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// CellWidth counts terminal cells; East Asian wide characters count twice.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Width mode names accepted by MeasureFor.
const (
	WidthRunes     = "runes"
	WidthGraphemes = "graphemes"
	WidthCells     = "cells"
)

// MeasureFor resolves a width mode name. The empty name selects RuneWidth.
func MeasureFor(mode string) (Measure, error) {
	switch mode {
	case "", WidthRunes:
		return RuneWidth, nil
	case WidthGraphemes:
		return GraphemeWidth, nil
	case WidthCells:
		return CellWidth, nil
	}
	return nil, fmt.Errorf("unknown width mode %q (want %s, %s or %s)", mode, WidthRunes, WidthGraphemes, WidthCells)
}
