// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"errors"
	"fmt"

	"github.com/framegrace/orgtable/buffer"
	"github.com/framegrace/orgtable/format"
	"github.com/framegrace/orgtable/locate"
	"github.com/framegrace/orgtable/table"
)

// CopyTable encodes the table under the first selection with the named
// format and writes it to the clipboard. It returns the number of rows
// copied, the header included.
func (e *Env) CopyTable(b *buffer.Buffer, formatName string) (int, error) {
	if e.Clipboard == nil {
		return 0, errors.New("copy: no clipboard configured")
	}
	f, err := format.Get(formatName)
	if err != nil {
		e.status(err.Error())
		return 0, err
	}

	records, err := e.tableRecords(b, b.Selections()[0].Begin())
	if err != nil {
		return 0, err
	}

	out, err := f.Encode(records)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", f.Name, err)
	}
	if err := e.Clipboard.WriteText(out); err != nil {
		return 0, fmt.Errorf("copy: %w", err)
	}

	e.status(fmt.Sprintf("Copied table with %d rows as %s data into the clipboard.", len(records), f.Description))
	return len(records), nil
}

// tableRecords locates and parses the table around pos.
func (e *Env) tableRecords(b *buffer.Buffer, pos int) ([][]string, error) {
	res, err := locate.Locate(b, pos)
	if err != nil {
		if errors.Is(err, locate.ErrNotFound) {
			e.status(MsgNoContent)
		}
		return nil, err
	}
	g, err := table.ParseGrid(b.Substr(res.Region),
		table.WithNotify(e.status),
		table.WithGridOptions(e.parser().GridOptions...))
	if err != nil {
		e.status(err.Error())
		return nil, err
	}
	return g.Records(), nil
}
