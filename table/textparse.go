// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"fmt"
	"strings"
)

// NestedTableNotice is sent to the notify callback when a data line looks
// like it holds another rendered table and is kept as one field.
const NestedTableNotice = "Nested table detected, columns of that line were not split."

// SyntaxError reports a line whose edge characters do not match any line of
// the table grammar. Text is the offending line as found.
type SyntaxError struct {
	Line int // 1-based line number within the parsed text
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: every table line has to start and end with a border character, line %d found:\n%s", e.Line, e.Text)
}

// ParseOption configures ParseGrid and ParseRows.
type ParseOption func(*parseConfig)

type parseConfig struct {
	notify func(msg string)
	opts   []Option
}

// WithNotify receives user-facing notices raised while parsing.
func WithNotify(fn func(msg string)) ParseOption {
	return func(c *parseConfig) { c.notify = fn }
}

// WithGridOptions passes options to the Grid built by ParseGrid.
func WithGridOptions(opts ...Option) ParseOption {
	return func(c *parseConfig) { c.opts = append(c.opts, opts...) }
}

// ParseRows parses rendered table text into records. When the table has a
// header it is the first record.
func ParseRows(text string, opts ...ParseOption) ([][]string, error) {
	g, err := ParseGrid(text, opts...)
	if err != nil {
		return nil, err
	}
	return g.Records(), nil
}

// ParseGrid parses rendered table text, the inverse of Render. Lines may be
// indented. Border lines are skipped, separators close the current row and
// data lines feed it: the first line of a row sets its fields, later lines
// append "\n"+field to every field that is non-empty on that line.
//
// Any line that is not part of the grammar aborts the parse with a
// *SyntaxError and no partial result.
func ParseGrid(text string, opts ...ParseOption) (*Grid, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	notify := cfg.notify
	if notify == nil {
		notify = func(string) {}
	}

	var (
		header     []string
		headerOpen bool
		rows       [][]string
		row        []string
		rowOpen    bool
	)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		runes := []rune(line)
		var interior []rune
		if len(runes) > 1 {
			interior = runes[1 : len(runes)-1]
		}

		switch classifyEdges(runes[0], runes[len(runes)-1]) {
		case lineHeaderTop, lineTop, lineFooter:
			continue
		case lineHeaderJoin:
			headerOpen = false
		case lineSeparator:
			rows = append(rows, row)
			row, rowOpen = nil, false
		case lineHeaderData:
			header = accumulate(header, headerOpen, splitFields(interior, HeaderGlyphs.Vertical, notify))
			headerOpen = true
		case lineData:
			row = accumulate(row, rowOpen, splitFields(interior, BodyGlyphs.Vertical, notify))
			rowOpen = true
		default:
			return nil, &SyntaxError{Line: i + 1, Text: line}
		}
	}
	if rowOpen {
		rows = append(rows, row)
	}

	g := NewGrid(cfg.opts...)
	g.SetHeader(header)
	g.AppendRows(rows...)
	return g, nil
}

// splitFields splits the interior of a data line into trimmed fields. When
// the first character after the pad space is itself a vertical bar the line
// carries a nested table and is kept whole.
func splitFields(interior []rune, sep rune, notify func(string)) []string {
	if len(interior) > 1 && IsVertical(interior[1]) {
		notify(NestedTableNotice)
		return []string{strings.TrimSpace(string(interior))}
	}
	parts := strings.Split(string(interior), string(sep))
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// accumulate merges the fields of one data line into the row being built.
func accumulate(row []string, open bool, fields []string) []string {
	if !open {
		return fields
	}
	for pos, field := range fields {
		if field == "" {
			continue
		}
		for len(row) <= pos {
			row = append(row, "")
		}
		row[pos] += "\n" + field
	}
	return row
}
