// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/framegrace/orgtable/buffer"
	"github.com/framegrace/orgtable/locate"
	"github.com/framegrace/orgtable/table"
)

// UpdateOptions tunes UpdateTables.
type UpdateOptions struct {
	// DryRun computes changes without touching the buffer.
	DryRun bool
}

// Change is one table whose rendering differs from the buffer text.
type Change struct {
	// Region is where the table sat before any replacement.
	Region locate.Span
	Before string
	After  string
}

// UpdateResult summarises an update run.
type UpdateResult struct {
	// Found counts distinct tables located from the selections.
	Found int
	// Changes lists the tables that were, or in a dry run would be, replaced,
	// in document order.
	Changes []Change
	// Skipped collects per-selection failures. It is nil when nothing was
	// skipped.
	Skipped error
}

// Updated returns the number of changed tables.
func (r UpdateResult) Updated() int { return len(r.Changes) }

// UpdateTables re-parses and re-renders the table under every selection and
// replaces it when the rendering changed. Selections that are not inside a
// table, or whose table does not parse, are skipped without aborting the
// others. Selections are restored by row and column afterwards.
func (e *Env) UpdateTables(b *buffer.Buffer, opts UpdateOptions) UpdateResult {
	log := e.logger("update")

	sels := b.Selections()
	saved := make([][2]buffer.Pos, len(sels))
	for i, sel := range sels {
		saved[i] = [2]buffer.Pos{b.PosOf(sel.Anchor), b.PosOf(sel.Cursor)}
	}

	var (
		skipped *multierror.Error
		regions []locate.Span
		seen    = make(map[int]bool)
	)
	for i, sel := range sels {
		res, err := locate.Locate(b, sel.Begin())
		if err != nil {
			log.WithField("selection", i).Warnf("table without content found, not updated: %v", err)
			skipped = multierror.Append(skipped, fmt.Errorf("selection %d: %w", i, err))
			continue
		}
		if seen[res.Region.Begin] {
			continue
		}
		seen[res.Region.Begin] = true
		regions = append(regions, res.Region)
	}

	// Replace from the end so earlier regions keep their offsets.
	sort.Slice(regions, func(i, j int) bool { return regions[i].Begin > regions[j].Begin })

	var changes []Change
	for _, region := range regions {
		before := b.Substr(region)
		g, err := table.ParseGrid(before,
			table.WithNotify(e.status),
			table.WithGridOptions(e.parser().GridOptions...))
		if err != nil {
			row, _ := b.RowCol(region.Begin)
			log.WithField("row", row).Warnf("table not updated: %v", err)
			skipped = multierror.Append(skipped, fmt.Errorf("table at line %d: %w", row+1, err))
			continue
		}

		_, col := b.RowCol(region.Begin)
		after := indentLines(table.Render(e.parser().FromGrid(g)), "", spaces(col))
		if after == before {
			continue
		}
		if !opts.DryRun {
			b.Replace(region, after)
		}
		changes = append(changes, Change{Region: region, Before: before, After: after})
	}

	restored := make([]buffer.Region, len(saved))
	for i, s := range saved {
		restored[i] = buffer.Region{Anchor: b.OffsetOf(s[0]), Cursor: b.OffsetOf(s[1])}
	}
	b.SetSelections(restored...)

	for i, j := 0, len(changes)-1; i < j; i, j = i+1, j-1 {
		changes[i], changes[j] = changes[j], changes[i]
	}

	switch {
	case len(changes) > 0:
		e.status(fmt.Sprintf("Updated %d tables.", len(changes)))
	case len(regions) > 0:
		e.status(MsgNothingUpdate)
	default:
		e.status(MsgNoTable)
	}

	return UpdateResult{
		Found:   len(regions),
		Changes: changes,
		Skipped: skipped.ErrorOrNil(),
	}
}

// AllTables returns a cursor on the top border of every table in b, for
// updating a whole document.
func AllTables(b *buffer.Buffer) []buffer.Region {
	var out []buffer.Region
	for row := range b.LineCount() {
		line := b.LineAt(b.PointAt(row, 0))
		for p := line.Begin; p < line.End; p++ {
			tag := b.Classify(p)
			if !tag.Has(locate.Table) {
				continue
			}
			if tag.Has(locate.Header) {
				out = append(out, buffer.Point(p))
			}
			break
		}
	}
	return out
}
