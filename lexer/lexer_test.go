// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package lexer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/orgtable/locate"
)

// tagAt returns the tags of the first occurrence of needle in text.
func tagAt(t *testing.T, tags []locate.Tag, text, needle string) locate.Tag {
	t.Helper()
	i := strings.Index(text, needle)
	require.GreaterOrEqual(t, i, 0, "needle %q", needle)
	return tags[len([]rune(text[:i]))]
}

func TestTags_Table(t *testing.T) {
	text := "intro\n" +
		"  ╒═══╤═══╕\n" +
		"  ║ h ║ k ║\n" +
		"  ╞═══╪═══╡\n" +
		"  │ a │ b │\n" +
		"  ├───┼───┤\n" +
		"  │ c │   │\n" +
		"  ╰───┴───╯\n" +
		"outro"
	tags, err := Tags(text)
	require.NoError(t, err)
	require.Len(t, tags, len([]rune(text)))

	assert.Equal(t, locate.Tag(0), tagAt(t, tags, text, "intro"))
	assert.Equal(t, locate.Tag(0), tagAt(t, tags, text, "  ╒"), "indentation")
	assert.True(t, tagAt(t, tags, text, "╒").Has(locate.Header|locate.Border|locate.Simple))
	assert.True(t, tagAt(t, tags, text, "╕").Has(locate.Header))
	assert.True(t, tagAt(t, tags, text, "║ h").Has(locate.RowData|locate.Border))
	assert.Equal(t, locate.Table|locate.Simple, tagAt(t, tags, text, "h"))
	assert.True(t, tagAt(t, tags, text, "╞").Has(locate.RowSeparator))
	assert.True(t, tagAt(t, tags, text, "├").Has(locate.RowSeparator))
	assert.True(t, tagAt(t, tags, text, "╰").Has(locate.Footer))
	assert.True(t, tagAt(t, tags, text, "╯").Has(locate.Footer))
	assert.Equal(t, locate.Tag(0), tagAt(t, tags, text, "outro"))

	pre := tagAt(t, tags, text, " a")
	assert.True(t, pre.Has(locate.PreSpace|locate.RowData))
	post := tagAt(t, tags, text, " │ b")
	assert.True(t, post.Has(locate.PostSpace|locate.RowData))
}

func TestTags_ProseWithGlyphs(t *testing.T) {
	text := "a │ b\n╭── not a border\n"
	tags, err := Tags(text)
	require.NoError(t, err)
	assert.Equal(t, locate.Tag(0), tagAt(t, tags, text, "│"))
	assert.Equal(t, locate.Tag(0), tagAt(t, tags, text, "╭"))
}

func TestTags_EmptyCellHasNoContent(t *testing.T) {
	text := "│   │"
	tags, err := Tags(text)
	require.NoError(t, err)
	for i, tag := range tags {
		assert.True(t, tag.Has(locate.Border), "rune %d: %s", i, tag)
	}
}

func TestRegistered(t *testing.T) {
	assert.Equal(t, OrgTable, lexers.Get("orgtable"))
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	err := Highlight(&buf, "╭───╮\n│ a │\n╰───╯\n", "", "noop")
	require.NoError(t, err)
	assert.Equal(t, "╭───╮\n│ a │\n╰───╯\n", buf.String())

	buf.Reset()
	require.NoError(t, Highlight(&buf, "│ a │\n", "monokai", ""))
	assert.Contains(t, buf.String(), "\x1b[")
}
