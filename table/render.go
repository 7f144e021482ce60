// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import "strings"

// Render draws g as rendered table text. Lines are joined with '\n' and the
// result carries no trailing newline.
//
// With a header the output is the ╒═╕ top border, the header lines and a ╞═╡
// join; without one it starts with a ╭─╮ top border. Body rows follow, split
// by ├─┤ joins, and a ╰─╯ footer closes the table.
func Render(g *Grid) string {
	layout := g.ComputeLayout()
	widths := layout.Widths

	var lines []string
	if g.HasHeader() {
		h := HeaderGlyphs
		lines = append(lines, makeHBorder(widths, h.TopLeft, h.TopJoin, h.TopRight, h.Horizontal))
		lines = append(lines, makeDataLines(g.header, widths, h.Vertical, g.measure)...)
		lines = append(lines, makeHBorder(widths, h.JoinLeft, h.JoinCenter, h.JoinRight, h.Horizontal))
	} else {
		b := BodyGlyphs
		lines = append(lines, makeHBorder(widths, b.TopLeft, b.TopJoin, b.TopRight, b.Horizontal))
	}

	b := BodyGlyphs
	for ri, row := range g.rows {
		if ri > 0 {
			lines = append(lines, makeHBorder(widths, b.JoinLeft, b.JoinCenter, b.JoinRight, b.Horizontal))
		}
		lines = append(lines, makeDataLines(row, widths, b.Vertical, g.measure)...)
	}
	lines = append(lines, makeHBorder(widths, b.BottomLeft, b.BottomJoin, b.BottomRight, b.Horizontal))
	return strings.Join(lines, "\n")
}

// makeHBorder builds a horizontal border line such as ╭───┬───╮. Each column
// segment is exactly its layout width.
func makeHBorder(widths []int, left, junction, right, fill rune) string {
	var sb strings.Builder
	sb.WriteRune(left)
	for ci, w := range widths {
		if ci > 0 {
			sb.WriteRune(junction)
		}
		for range w {
			sb.WriteRune(fill)
		}
	}
	sb.WriteRune(right)
	return sb.String()
}

// makeDataLines builds the visual lines of one logical row. A cell holding
// "a\nb" spreads over two lines; cells with fewer lines, and columns the row
// does not reach, are filled with blanks.
func makeDataLines(row []string, widths []int, vertical rune, measure Measure) []string {
	var subRows [][]string
	for ci, cell := range row {
		for li, part := range strings.Split(cell, "\n") {
			for len(subRows) <= li {
				subRows = append(subRows, nil)
			}
			for len(subRows[li]) <= ci {
				subRows[li] = append(subRows[li], "")
			}
			subRows[li][ci] = part
		}
	}
	if len(subRows) == 0 {
		subRows = [][]string{nil}
	}

	lines := make([]string, 0, len(subRows))
	for _, fields := range subRows {
		lines = append(lines, makeDataRow(fields, widths, vertical, measure))
	}
	return lines
}

// makeDataRow builds a single data line like │ Alice │ New York │. Every
// field occupies exactly its column width.
func makeDataRow(fields []string, widths []int, vertical rune, measure Measure) string {
	var sb strings.Builder
	sb.WriteRune(vertical)
	for ci, w := range widths {
		if ci > 0 {
			sb.WriteRune(vertical)
		}
		value := ""
		if ci < len(fields) {
			value = fields[ci]
		}
		sb.WriteByte(' ')
		sb.WriteString(value)
		for range w - cellPadding - measure(value) {
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
	}
	sb.WriteRune(vertical)
	return sb.String()
}
