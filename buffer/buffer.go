// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package buffer is an in-memory text document addressed by rune offsets,
// with a set of selections and lexer tags for table structure. It implements
// locate.Host.
package buffer

import (
	"sort"

	"github.com/framegrace/orgtable/lexer"
	"github.com/framegrace/orgtable/locate"
)

// Pos points into the document by (row, col) in runes. Row and Col are
// 0-based.
type Pos struct {
	Row int
	Col int
}

// Region is a selection between two rune offsets. Anchor may come after
// Cursor.
type Region struct {
	Anchor int
	Cursor int
}

// Point returns an empty region at pos.
func Point(pos int) Region { return Region{Anchor: pos, Cursor: pos} }

// Begin returns the smaller end of the region.
func (r Region) Begin() int { return min(r.Anchor, r.Cursor) }

// End returns the larger end of the region.
func (r Region) End() int { return max(r.Anchor, r.Cursor) }

// Empty reports whether the region selects nothing.
func (r Region) Empty() bool { return r.Anchor == r.Cursor }

// Span converts the region to a half-open span.
func (r Region) Span() locate.Span { return locate.Span{Begin: r.Begin(), End: r.End()} }

// Buffer holds the document text. The zero value is not usable; use New.
type Buffer struct {
	text       []rune
	lineStarts []int
	version    uint64

	tags    []locate.Tag
	tagsVer uint64
	tagged  bool

	sels []Region
}

// New returns a buffer holding text with a single cursor at offset 0.
func New(text string) *Buffer {
	b := &Buffer{sels: []Region{Point(0)}}
	b.setText([]rune(text))
	return b
}

func (b *Buffer) setText(text []rune) {
	b.text = text
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, r := range text {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
	b.version++
}

// Text returns the whole document.
func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Version changes every time the text does.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of lines; an empty buffer has one.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// Substr returns the text covered by s, clamped to the document.
func (b *Buffer) Substr(s locate.Span) string {
	begin, end := b.clamp(s.Begin), b.clamp(s.End)
	if end <= begin {
		return ""
	}
	return string(b.text[begin:end])
}

// Line returns the text of a row without its newline.
func (b *Buffer) Line(row int) string {
	return b.Substr(b.LineAt(b.PointAt(row, 0)))
}

// Replace swaps the text in s for text. Selections after the edit shift with
// it; selection ends inside the replaced span move to the end of the new
// text.
func (b *Buffer) Replace(s locate.Span, text string) {
	begin, end := b.clamp(s.Begin), b.clamp(s.End)
	if end < begin {
		begin, end = end, begin
	}
	ins := []rune(text)

	next := make([]rune, 0, len(b.text)-(end-begin)+len(ins))
	next = append(next, b.text[:begin]...)
	next = append(next, ins...)
	next = append(next, b.text[end:]...)
	b.setText(next)

	delta := len(ins) - (end - begin)
	shift := func(p int) int {
		switch {
		case p >= end:
			return p + delta
		case p > begin:
			return begin + len(ins)
		}
		return p
	}
	for i, r := range b.sels {
		b.sels[i] = Region{Anchor: shift(r.Anchor), Cursor: shift(r.Cursor)}
	}
}

// Selections returns a copy of the current selections.
func (b *Buffer) Selections() []Region {
	return append([]Region(nil), b.sels...)
}

// SetSelections replaces the selections, clamping them to the document.
// Calling it with no regions leaves a single cursor at offset 0.
func (b *Buffer) SetSelections(regions ...Region) {
	b.sels = b.sels[:0]
	for _, r := range regions {
		b.sels = append(b.sels, Region{Anchor: b.clamp(r.Anchor), Cursor: b.clamp(r.Cursor)})
	}
	if len(b.sels) == 0 {
		b.sels = append(b.sels, Point(0))
	}
}

// Classify returns the lexer tags at pos. Tags are recomputed lazily after
// the text changes.
func (b *Buffer) Classify(pos int) locate.Tag {
	if pos < 0 || pos >= len(b.text) {
		return 0
	}
	if !b.tagged || b.tagsVer != b.version {
		tags, err := lexer.Tags(string(b.text))
		if err != nil {
			tags = make([]locate.Tag, len(b.text))
		}
		b.tags, b.tagsVer, b.tagged = tags, b.version, true
	}
	return b.tags[pos]
}

// LineAt returns the span of the line holding pos, without its newline.
func (b *Buffer) LineAt(pos int) locate.Span {
	row, _ := b.RowCol(pos)
	return b.lineSpan(row)
}

// RowCol converts a rune offset to row and column. Offsets out of range
// clamp to the document.
func (b *Buffer) RowCol(pos int) (row, col int) {
	pos = b.clamp(pos)
	row = sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > pos }) - 1
	return row, pos - b.lineStarts[row]
}

// PointAt converts row and column to a rune offset, clamping both.
func (b *Buffer) PointAt(row, col int) int {
	row = max(0, min(row, len(b.lineStarts)-1))
	line := b.lineSpan(row)
	col = max(0, min(col, line.Len()))
	return line.Begin + col
}

// PosOf converts an offset to a Pos.
func (b *Buffer) PosOf(pos int) Pos {
	row, col := b.RowCol(pos)
	return Pos{Row: row, Col: col}
}

// OffsetOf converts a Pos to an offset, clamping it to the document.
func (b *Buffer) OffsetOf(p Pos) int { return b.PointAt(p.Row, p.Col) }

func (b *Buffer) lineSpan(row int) locate.Span {
	begin := b.lineStarts[row]
	end := len(b.text)
	if row+1 < len(b.lineStarts) {
		end = b.lineStarts[row+1] - 1
	}
	return locate.Span{Begin: begin, End: end}
}

func (b *Buffer) clamp(pos int) int {
	return max(0, min(pos, len(b.text)))
}
