// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayout(t *testing.T) {
	g := NewGrid()
	g.AppendRows([]string{"a", "bb"}, []string{"ccc"}, []string{"", "", "x"})
	l := g.ComputeLayout()
	assert.Equal(t, []int{5, 4, 3}, l.Widths)
	assert.Equal(t, 3, l.NumRows)
	assert.Equal(t, 3, l.NumCols)
}

func TestComputeLayout_MultiLineUsesLongestSegment(t *testing.T) {
	g := NewGrid()
	g.AppendRows([]string{"ab\nabcdef\nx"})
	assert.Equal(t, []int{8}, g.ComputeLayout().Widths)
}

func TestComputeLayout_CountsCodePointsNotBytes(t *testing.T) {
	g := NewGrid()
	g.AppendRows([]string{"äöü"})
	assert.Equal(t, []int{5}, g.ComputeLayout().Widths)
}

func TestComputeLayout_IncludesHeader(t *testing.T) {
	g := NewGrid()
	g.SetHeader([]string{"Header", "H"})
	g.AppendRows([]string{"a"})
	assert.Equal(t, []int{8, 3}, g.ComputeLayout().Widths)
	assert.Equal(t, 1, g.ComputeLayout().NumRows)
}

func TestComputeLayout_RecomputedAfterAppend(t *testing.T) {
	g := NewGrid()
	g.AppendRows([]string{"a"})
	require.Equal(t, []int{3}, g.ComputeLayout().Widths)
	g.AppendRows([]string{"abcd"})
	assert.Equal(t, []int{6}, g.ComputeLayout().Widths)
}

func TestGrid_RowsAreCopied(t *testing.T) {
	row := []string{"a", "b"}
	g := NewGrid()
	g.AppendRows(row)
	row[0] = "changed"
	assert.Equal(t, "a", g.Rows()[0][0])
}

func TestGrid_Records(t *testing.T) {
	g := NewGrid()
	g.AppendRows([]string{"1"})
	assert.Equal(t, [][]string{{"1"}}, g.Records())

	g.SetHeader([]string{"h"})
	assert.Equal(t, [][]string{{"h"}, {"1"}}, g.Records())

	g.SetHeader(nil)
	assert.False(t, g.HasHeader())
}

func TestMeasureFor(t *testing.T) {
	for _, mode := range []string{"", WidthRunes, WidthGraphemes, WidthCells} {
		m, err := MeasureFor(mode)
		require.NoError(t, err, mode)
		assert.Equal(t, 2, m("ab"), mode)
	}
	_, err := MeasureFor("bytes")
	assert.Error(t, err)
}
