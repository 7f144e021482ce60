// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package locate

import "errors"

// ErrNotFound is returned when a position is not inside table content.
var ErrNotFound = errors.New("no table content at position")

// Result describes a located table.
type Result struct {
	// Region spans from the top-left corner glyph to just past the
	// bottom-right corner glyph.
	Region Span
	// Content is the cell-content position the search settled on.
	Content int
}

// Locate finds the table around pos. It first moves pos onto cell content
// with ContentPoint, then expands to the table borders with Boundaries.
func Locate(h Host, pos int) (Result, error) {
	content, err := ContentPoint(h, pos)
	if err != nil {
		return Result{}, err
	}
	region, err := Boundaries(h, content)
	if err != nil {
		return Result{}, err
	}
	return Result{Region: region, Content: content}, nil
}

// ContentPoint moves pos off border lines and padding onto a character of
// cell content. It fails with ErrNotFound when pos ends up on a border or
// outside any table, as happens for rows whose cells are all empty.
func ContentPoint(h Host, pos int) (int, error) {
	cur := pos

	if h.Classify(cur).Has(Header) {
		row, col := h.RowCol(cur)
		cur = h.PointAt(row+1, col)
	}
	if h.Classify(cur).Has(RowSeparator) {
		row, col := h.RowCol(cur)
		if next := h.PointAt(row+1, col); !h.Classify(next).Has(RowSeparator) {
			cur = next
		}
		if row > 0 {
			if prev := h.PointAt(row-1, col); !h.Classify(prev).Has(RowSeparator) {
				cur = prev
			}
		}
	}
	if h.Classify(cur).Has(Footer) {
		if row, col := h.RowCol(cur); row > 0 {
			cur = h.PointAt(row-1, col)
		}
	}

	cur = walk(h, cur, PreSpace, 1)
	cur = walk(h, cur, PostSpace, -1)
	cur = walk(h, cur, RowData, -1)
	cur = walk(h, cur, RowData, 1)

	tag := h.Classify(cur)
	if tag.Has(Border) || !tag.Has(Table) {
		return 0, ErrNotFound
	}
	return cur, nil
}

// walk steps along the line while the position carries tag. It never steps
// off the table, so it stops at the outer bars.
func walk(h Host, cur int, tag Tag, step int) int {
	for h.Classify(cur).Has(tag) {
		row, col := h.RowCol(cur)
		col += step
		if col < 0 {
			break
		}
		next := h.PointAt(row, col)
		if next == cur || !h.Classify(next).Has(Table) {
			break
		}
		cur = next
	}
	return cur
}

// Boundaries expands a content position line by line: upwards until the top
// border, then downwards until the footer. Leaving the table on the way
// fails with ErrNotFound.
func Boundaries(h Host, pos int) (Span, error) {
	if !h.Classify(pos).Has(Table | Simple) {
		return Span{}, ErrNotFound
	}
	startRow, _ := h.RowCol(pos)

	top := startRow
	for {
		tag, _, _ := lineTable(h, top)
		if !tag.Has(Simple) {
			return Span{}, ErrNotFound
		}
		if tag.Has(Header) {
			break
		}
		if top == 0 {
			return Span{}, ErrNotFound
		}
		top--
	}

	bottom := startRow
	for {
		tag, _, _ := lineTable(h, bottom)
		if !tag.Has(Simple) {
			return Span{}, ErrNotFound
		}
		if tag.Has(Footer) {
			break
		}
		if !hasRow(h, bottom+1) {
			return Span{}, ErrNotFound
		}
		bottom++
	}

	_, begin, _ := lineTable(h, top)
	_, _, end := lineTable(h, bottom)
	return Span{Begin: begin, End: end}, nil
}

// lineTable returns the tag of the last table character on a row together
// with the span of its table characters. Rows without table characters
// report a zero tag.
func lineTable(h Host, row int) (Tag, int, int) {
	line := h.LineAt(h.PointAt(row, 0))
	first, last := -1, -1
	for p := line.Begin; p < line.End; p++ {
		if h.Classify(p).Has(Table) {
			if first < 0 {
				first = p
			}
			last = p
		}
	}
	if last < 0 {
		return 0, line.Begin, line.Begin
	}
	return h.Classify(last), first, last + 1
}

func hasRow(h Host, row int) bool {
	got, _ := h.RowCol(h.PointAt(row, 0))
	return got == row
}
