// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package locate finds the full extent of a rendered table around a point in
// a text buffer. It only talks to the buffer through the Host interface.
package locate

import "strings"

// Tag is a set of structural classifications attached to one character.
type Tag uint16

const (
	// Table marks any character that belongs to a rendered table.
	Table Tag = 1 << iota
	// Simple marks characters of a box-drawing ("simple") table.
	Simple
	// Border marks glyphs and padding, anything that is not cell content.
	Border
	// Header marks the top border line.
	Header
	// Footer marks the bottom border line.
	Footer
	// RowSeparator marks join lines between rows, header join included.
	RowSeparator
	// RowData marks vertical bars and padding on data lines.
	RowData
	// PreSpace marks the pad space right after a vertical bar.
	PreSpace
	// PostSpace marks pad spaces right before a vertical bar.
	PostSpace
)

var tagNames = []struct {
	tag  Tag
	name string
}{
	{Table, "table"},
	{Simple, "simple"},
	{Border, "border"},
	{Header, "header"},
	{Footer, "footer"},
	{RowSeparator, "row.separator"},
	{RowData, "row.data"},
	{PreSpace, "pre.space"},
	{PostSpace, "post.space"},
}

// Has reports whether every tag in want is set.
func (t Tag) Has(want Tag) bool {
	return t&want == want
}

func (t Tag) String() string {
	var names []string
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			names = append(names, tn.name)
		}
	}
	return strings.Join(names, " ")
}

// Span is a half-open range of buffer positions.
type Span struct {
	Begin int
	End   int
}

// Len returns the number of positions covered.
func (s Span) Len() int { return s.End - s.Begin }

// Host is the text-query capability the locator needs. Positions are
// offsets counted in runes.
type Host interface {
	// Classify returns the tags at a position; positions outside the buffer
	// carry no tags.
	Classify(pos int) Tag
	// LineAt returns the span of the line holding pos, without its newline.
	LineAt(pos int) Span
	// RowCol converts a position to 0-based row and column.
	RowCol(pos int) (row, col int)
	// PointAt converts row and column back to a position. Columns past the
	// end of the line clamp to the line end.
	PointAt(row, col int) int
}
