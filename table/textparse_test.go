// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "single row",
			text: "╭───┬───╮\n│ a │ b │\n╰───┴───╯",
			want: [][]string{{"a", "b"}},
		},
		{
			name: "separators split rows",
			text: "╭───┬───╮\n│ a │ b │\n├───┼───┤\n│ c │ d │\n╰───┴───╯",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "continuation lines join with newline",
			text: "╭────┬───╮\n│ a  │ c │\n│ bb │   │\n╰────┴───╯",
			want: [][]string{{"a\nbb", "c"}},
		},
		{
			name: "empty first line of a cell",
			text: "│   │ x │\n│ y │   │",
			want: [][]string{{"\ny", "x"}},
		},
		{
			name: "unflushed trailing row",
			text: "│ a │ b │",
			want: [][]string{{"a", "b"}},
		},
		{
			name: "indented",
			text: "    ╭───╮\n    │ a │\n    ╰───╯\n",
			want: [][]string{{"a"}},
		},
		{
			name: "header first",
			text: "╒═══╤═══╕\n║ h ║ i ║\n╞═══╪═══╡\n│ a │ b │\n╰───┴───╯",
			want: [][]string{{"h", "i"}, {"a", "b"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRows(tc.text)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseGrid_Header(t *testing.T) {
	text := "╒═════╤═══╕\n║ one ║ b ║\n║ two ║   ║\n╞═════╪═══╡\n│ x   │ y │\n╰─────┴───╯"
	g, err := ParseGrid(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"one\ntwo", "b"}, g.Header())
	assert.Equal(t, [][]string{{"x", "y"}}, g.Rows())
}

func TestParseGrid_SyntaxError(t *testing.T) {
	_, err := ParseGrid("╭─────╮\n| bad |\n╰─────╯")
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Line)
	assert.Equal(t, "| bad |", se.Text)
	assert.Contains(t, err.Error(), "| bad |")
}

func TestParseGrid_NestedTableKeptWhole(t *testing.T) {
	text := strings.Join([]string{
		"╭───────────────╮",
		"│ │ a │ b │     │",
		"╰───────────────╯",
	}, "\n")
	var notices []string
	rows, err := ParseRows(text, WithNotify(func(msg string) { notices = append(notices, msg) }))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"│ a │ b │"}}, rows)
	assert.Equal(t, []string{NestedTableNotice}, notices)
}

func TestParseGrid_EmptyFirstCellIsNotNested(t *testing.T) {
	rows, err := ParseRows("│    │ b │", WithNotify(func(string) { t.Fatal("unexpected notice") }))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"", "b"}}, rows)
}

func TestRoundTrip(t *testing.T) {
	grids := map[string]*Grid{
		"plain":     gridOf(nil, []string{"a", "b", "c"}, []string{"d", "e", "f"}, []string{"g", "h", "i"}),
		"header":    gridOf([]string{"name", "qty"}, []string{"apple", "3"}, []string{"pear", "10"}),
		"multiline": gridOf(nil, []string{"line 1\nline 2", "x"}, []string{"y", "z\nzz\nzzz"}),
		"unicode":   gridOf(nil, []string{"日本", "ümlaut"}, []string{"→", "✓"}),
	}
	for name, g := range grids {
		t.Run(name, func(t *testing.T) {
			rendered := Render(g)
			parsed, err := ParseGrid(rendered)
			require.NoError(t, err)
			if diff := cmp.Diff(g.Records(), parsed.Records()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, rendered, Render(parsed), "render must be idempotent")
		})
	}
}

func TestParseGrid_GridOptions(t *testing.T) {
	text := "╭────┬───╮\n│ 漢 │ x │\n╰────┴───╯"

	g, err := ParseGrid(text, WithGridOptions(WithMeasure(CellWidth)))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, g.ComputeLayout().Widths)

	g, err = ParseGrid(text)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, g.ComputeLayout().Widths)
}
