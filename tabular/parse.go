// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package tabular turns loosely structured text into a table.Grid. Input may
// be a path to a file, a JSON array or object, or delimited text; JSON is
// flattened into tab separated records so every input shape goes through the
// same delimiter detection.
package tabular

import (
	"fmt"
	"os"
	"strings"

	"github.com/framegrace/orgtable/table"
)

// DefaultDelimiters are tried in order until one yields two or more columns.
var DefaultDelimiters = []rune{'\t', ':', ';'}

// DefaultQuotes open quoted spans at the start of a field.
var DefaultQuotes = []rune{'"', '\''}

// Parser converts raw text into a Grid. The zero value uses the defaults.
type Parser struct {
	Delimiters []rune
	Quotes     []rune
	// Header promotes the first record to the grid header.
	Header bool
	// ReadFile loads single-line input that names a file. It defaults to
	// reading regular files from the local file system.
	ReadFile    func(name string) ([]byte, error)
	GridOptions []table.Option
}

// Parse builds a grid with a zero-value Parser.
func Parse(raw string) (*table.Grid, error) {
	var p Parser
	return p.Parse(raw)
}

// Parse reads raw as a file name, JSON document or delimited text.
//
// Delimiters are tried in order and the first that splits some record into
// two or more fields wins. When none does, the result of the last attempt is
// kept as a single-column grid rather than reported as an error. Fields split
// on a tab keep their surrounding whitespace; other delimiters trim it.
func (p *Parser) Parse(raw string) (*table.Grid, error) {
	content := p.resolveSource(raw)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if looksLikeJSON(content) {
		records, err := decodeJSON(content)
		if err != nil {
			return nil, err
		}
		content = joinRecords(records)
	}

	records, _ := p.Split(content)
	return p.build(records), nil
}

// Split runs delimiter detection over content and returns the records along
// with the delimiter that produced them.
func (p *Parser) Split(content string) ([][]string, rune) {
	delims := p.Delimiters
	if len(delims) == 0 {
		delims = DefaultDelimiters
	}
	quotes := p.Quotes
	if quotes == nil {
		quotes = DefaultQuotes
	}

	var (
		records [][]string
		used    rune
	)
	for _, d := range delims {
		records, used = splitRecords(content, d, quotes), d
		if maxColumns(records) >= 2 {
			break
		}
	}
	if used != '\t' {
		for _, rec := range records {
			for i, f := range rec {
				rec[i] = strings.TrimSpace(f)
			}
		}
	}
	return records, used
}

// FromGrid rebuilds g as this parser would have produced it, carrying the
// header across. It is used to normalise a parsed table before rendering.
func (p *Parser) FromGrid(g *table.Grid) *table.Grid {
	out := table.NewGrid(p.GridOptions...)
	out.SetHeader(g.Header())
	out.AppendRows(g.Rows()...)
	return out
}

func (p *Parser) build(records [][]string) *table.Grid {
	g := table.NewGrid(p.GridOptions...)
	if p.Header && len(records) > 0 {
		g.SetHeader(records[0])
		records = records[1:]
	}
	g.AppendRows(records...)
	return g
}

// resolveSource returns the file content when raw is a single line naming a
// readable file, and raw otherwise.
func (p *Parser) resolveSource(raw string) string {
	if strings.Contains(raw, "\n") {
		return raw
	}
	name := strings.TrimSpace(raw)
	if name == "" {
		return raw
	}
	read := p.ReadFile
	if read == nil {
		read = readRegularFile
	}
	data, err := read(name)
	if err != nil {
		return raw
	}
	return string(data)
}

func readRegularFile(name string) ([]byte, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", name)
	}
	return os.ReadFile(name)
}

func joinRecords(records [][]string) string {
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = strings.Join(rec, "\t")
	}
	return strings.Join(lines, "\n")
}
