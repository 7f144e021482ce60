// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framegrace/orgtable/buffer"
)

// parsePosition reads a 1-based "ROW:COL" or "ROW" into a buffer position.
func parsePosition(s string) (buffer.Pos, error) {
	rowStr, colStr, hasCol := strings.Cut(strings.TrimSpace(s), ":")
	row, err := strconv.Atoi(rowStr)
	if err != nil || row < 1 {
		return buffer.Pos{}, fmt.Errorf("invalid position %q: want ROW:COL counting from 1", s)
	}
	col := 1
	if hasCol {
		col, err = strconv.Atoi(colStr)
		if err != nil || col < 1 {
			return buffer.Pos{}, fmt.Errorf("invalid position %q: want ROW:COL counting from 1", s)
		}
	}
	return buffer.Pos{Row: row - 1, Col: col - 1}, nil
}

// formatPosition is the inverse of parsePosition.
func formatPosition(p buffer.Pos) string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

// selectionsAt turns --at values into cursors on b.
func selectionsAt(b *buffer.Buffer, at []string) ([]buffer.Region, error) {
	regions := make([]buffer.Region, 0, len(at))
	for _, s := range at {
		p, err := parsePosition(s)
		if err != nil {
			return nil, err
		}
		regions = append(regions, buffer.Point(b.OffsetOf(p)))
	}
	return regions, nil
}
