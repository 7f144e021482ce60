// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package table models org-mode box-drawing tables. A Grid holds rows of
// string cells and an optional header; Render turns it into rendered table
// text and ParseGrid/ParseRows turn that text back into cells.
//
// Every function in this package is a pure function of its inputs. A Grid is
// meant to be built, rendered and dropped within one operation.
package table

import "strings"

// Grid is an in-memory rectangular table. Rows may have different lengths;
// missing trailing cells render as blanks.
type Grid struct {
	header  []string
	rows    [][]string
	measure Measure
}

// Layout is the derived shape of a Grid at the time it was computed.
type Layout struct {
	// Widths holds the rendered width of every column, padding included.
	Widths  []int
	NumRows int
	NumCols int
}

// Option configures a Grid.
type Option func(*Grid)

// WithMeasure selects how cell text width is counted.
func WithMeasure(m Measure) Option {
	return func(g *Grid) {
		if m != nil {
			g.measure = m
		}
	}
}

// NewGrid returns an empty grid measuring widths in code points unless an
// option says otherwise.
func NewGrid(opts ...Option) *Grid {
	g := &Grid{measure: RuneWidth}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetHeader sets the header row. A nil or empty row removes the header.
func (g *Grid) SetHeader(row []string) {
	if len(row) == 0 {
		g.header = nil
		return
	}
	g.header = append([]string(nil), row...)
}

// AppendRows adds body rows in order. Rows are copied.
func (g *Grid) AppendRows(rows ...[]string) {
	for _, row := range rows {
		g.rows = append(g.rows, append([]string(nil), row...))
	}
}

// Header returns the header row, or nil.
func (g *Grid) Header() []string {
	return g.header
}

// HasHeader reports whether the grid renders a header block.
func (g *Grid) HasHeader() bool {
	return len(g.header) > 0
}

// Rows returns the body rows.
func (g *Grid) Rows() [][]string {
	return g.rows
}

// Records returns the header (if any) followed by the body rows.
func (g *Grid) Records() [][]string {
	if !g.HasHeader() {
		return g.rows
	}
	out := make([][]string, 0, len(g.rows)+1)
	out = append(out, g.header)
	return append(out, g.rows...)
}

// ComputeLayout measures the grid. Widths are recomputed on every call since
// they depend only on the current content. For each column the width is the
// longest newline-separated segment of any cell plus padding, so multi-line
// cells never widen a column beyond their longest line.
func (g *Grid) ComputeLayout() Layout {
	var widths []int
	measureRow := func(row []string) {
		for ci, cell := range row {
			for len(widths) <= ci {
				widths = append(widths, cellPadding)
			}
			for _, part := range strings.Split(cell, "\n") {
				if w := g.measure(part) + cellPadding; w > widths[ci] {
					widths[ci] = w
				}
			}
		}
	}
	measureRow(g.header)
	for _, row := range g.rows {
		measureRow(row)
	}
	return Layout{Widths: widths, NumRows: len(g.rows), NumCols: len(widths)}
}
