// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

// GlyphSet holds the box-drawing characters used for one part of a rendered
// table. Values are immutable; callers copy them rather than mutate shared
// state.
type GlyphSet struct {
	Horizontal  rune // ─ or ═
	TopJoin     rune // ┬ above a column boundary
	TopLeft     rune
	TopRight    rune
	Vertical    rune // field separator on data lines
	JoinLeft    rune // left edge of a separator line
	JoinCenter  rune
	JoinRight   rune
	BottomJoin  rune // footer only
	BottomLeft  rune
	BottomRight rune
}

// HeaderGlyphs draws the header block: top border, header data, header join.
var HeaderGlyphs = GlyphSet{
	Horizontal: '═',
	TopJoin:    '╤',
	TopLeft:    '╒',
	TopRight:   '╕',
	Vertical:   '║',
	JoinLeft:   '╞',
	JoinCenter: '╪',
	JoinRight:  '╡',
}

// BodyGlyphs draws everything below the header, including the footer.
var BodyGlyphs = GlyphSet{
	Horizontal:  '─',
	TopJoin:     '┬',
	TopLeft:     '╭',
	TopRight:    '╮',
	Vertical:    '│',
	JoinLeft:    '├',
	JoinCenter:  '┼',
	JoinRight:   '┤',
	BottomJoin:  '┴',
	BottomLeft:  '╰',
	BottomRight: '╯',
}

// cellPadding is the number of pad characters around every field: one space
// on each side, as in " value ".
const cellPadding = 2

// lineKind classifies a rendered line by its edge glyphs.
type lineKind int

const (
	lineUnknown lineKind = iota
	lineHeaderTop
	lineHeaderData
	lineHeaderJoin
	lineTop
	lineSeparator
	lineData
	lineFooter
)

// classifyEdges maps the first and last rune of a trimmed line to its kind.
func classifyEdges(first, last rune) lineKind {
	switch {
	case first == HeaderGlyphs.TopLeft && last == HeaderGlyphs.TopRight:
		return lineHeaderTop
	case first == HeaderGlyphs.Vertical && last == HeaderGlyphs.Vertical:
		return lineHeaderData
	case first == HeaderGlyphs.JoinLeft && last == HeaderGlyphs.JoinRight:
		return lineHeaderJoin
	case first == BodyGlyphs.TopLeft && last == BodyGlyphs.TopRight:
		return lineTop
	case first == BodyGlyphs.JoinLeft && last == BodyGlyphs.JoinRight:
		return lineSeparator
	case first == BodyGlyphs.Vertical && last == BodyGlyphs.Vertical:
		return lineData
	case first == BodyGlyphs.BottomLeft && last == BodyGlyphs.BottomRight:
		return lineFooter
	}
	return lineUnknown
}

// IsVertical reports whether r separates fields on a data line.
func IsVertical(r rune) bool {
	return r == BodyGlyphs.Vertical || r == HeaderGlyphs.Vertical
}
