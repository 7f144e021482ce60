// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/framegrace/orgtable/buffer"
	"github.com/framegrace/orgtable/clipboard"
	"github.com/framegrace/orgtable/table"
)

// ErrEmptySource is returned when the text to paste is blank.
var ErrEmptySource = errors.New("nothing to paste, source text is empty")

// PasteTable reads the clipboard and pastes it as a table.
func (e *Env) PasteTable(b *buffer.Buffer) error {
	if e.Clipboard == nil {
		return fmt.Errorf("paste: %w", clipboard.ErrEmpty)
	}
	source, err := e.Clipboard.ReadText()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("paste: %w", clipboard.ErrEmpty)
	}
	return e.PasteText(b, source)
}

// PasteText parses source, renders it and replaces every selection with the
// rendered table.
//
// The source is dedented before parsing and its original indentation is
// reapplied per selection. An empty selection at column c indents every
// line by c, leaving the first line where the cursor already is. A
// non-empty selection gets the source indentation on its first line and
// that indentation plus c spaces on the others. A trailing newline in the
// source is kept.
func (e *Env) PasteText(b *buffer.Buffer, source string) error {
	log := e.logger("paste")
	if strings.TrimSpace(source) == "" {
		return ErrEmptySource
	}

	indent := leadingIndent(source)
	hasEOL := strings.HasSuffix(source, "\n")

	g, err := e.parser().Parse(dedent.Dedent(source))
	if err != nil {
		e.status(err.Error())
		return err
	}
	rendered := table.Render(g)
	log.WithField("rows", len(g.Rows())).Debug("rendered source table")

	// Replace from the end so earlier selections keep their offsets.
	sels := b.Selections()
	sort.Slice(sels, func(i, j int) bool { return sels[i].Begin() < sels[j].Begin() })
	for i := len(sels) - 1; i >= 0; i-- {
		sel := sels[i]
		_, col := b.RowCol(sel.Begin())

		var data string
		switch {
		case sel.Empty():
			data = indentLines(rendered, spaces(col), spaces(col))
			if col > 0 {
				data = strings.TrimLeft(data, " \t")
			}
		case indent != "":
			data = indentLines(rendered, indent, indent+spaces(col))
		default:
			data = indentLines(rendered, "", spaces(col))
		}
		if hasEOL {
			data += "\n"
		}
		b.Replace(sel.Span(), data)
	}
	return nil
}
