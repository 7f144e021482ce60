// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lexer tokenizes org-mode text with rendered tables and maps the
// tokens to the structural tags the table locator works with.
package lexer

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/framegrace/orgtable/locate"
)

// Name is the lexer name registered with chroma.
const Name = "OrgTable"

// Token types emitted for table structure.
const (
	HeaderBorder = chroma.KeywordDeclaration
	FooterBorder = chroma.KeywordReserved
	Separator    = chroma.KeywordPseudo
	Bar          = chroma.Punctuation
	PreSpace     = chroma.TextWhitespace
	PostSpace    = chroma.TextSymbol
	Content      = chroma.String
)

// OrgTable is the registered lexer. Any line not shaped like part of a
// rendered table lexes as plain Text.
var OrgTable = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      Name,
		Aliases:   []string{"orgtable", "org-table"},
		Filenames: []string{"*.org"},
		MimeTypes: []string{"text/org"},
		EnsureNL:  true,
	},
	orgTableRules,
))

func orgTableRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `[ \t]+`, Type: chroma.Text},
			{Pattern: `[╒╭][═─┬╤]*[╕╮](?=[ \t]*$)`, Type: HeaderBorder},
			{Pattern: `╰[─┴]*╯(?=[ \t]*$)`, Type: FooterBorder},
			{Pattern: `[├╞][─═┼╪]*[┤╡](?=[ \t]*$)`, Type: Separator},
			{Pattern: `[│║]`, Type: Bar, Mutator: chroma.Push("cell")},
			{Pattern: `\n`, Type: chroma.Text},
			{Pattern: `[^\n]+`, Type: chroma.Text},
		},
		"cell": {
			{Pattern: `( ?)([^│║\n]*?)( *)([│║])`, Type: chroma.ByGroups(PreSpace, Content, PostSpace, Bar)},
			{Pattern: `([ \t]*)(\n)`, Type: chroma.ByGroups(chroma.Text, chroma.Text), Mutator: chroma.Pop(1)},
			{Pattern: `[^\n]+`, Type: chroma.Error},
		},
	}
}

// TagOf maps a token type to its structural tags. Types the table lexer
// does not emit for table structure carry no tags.
func TagOf(tt chroma.TokenType) locate.Tag {
	const base = locate.Table | locate.Simple
	const border = base | locate.Border
	switch tt {
	case HeaderBorder:
		return border | locate.Header
	case FooterBorder:
		return border | locate.Footer
	case Separator:
		return border | locate.RowSeparator
	case Bar:
		return border | locate.RowData
	case PreSpace:
		return border | locate.RowData | locate.PreSpace
	case PostSpace:
		return border | locate.RowData | locate.PostSpace
	case Content:
		return base
	}
	return 0
}

// Tags lexes text and returns one tag set per rune.
func Tags(text string) ([]locate.Tag, error) {
	it, err := OrgTable.Tokenise(nil, text)
	if err != nil {
		return nil, err
	}
	n := len([]rune(text))
	tags := make([]locate.Tag, 0, n+1)
	for tok := it(); tok != chroma.EOF; tok = it() {
		tag := TagOf(tok.Type)
		for range []rune(tok.Value) {
			tags = append(tags, tag)
		}
	}
	// EnsureNL may have appended a newline.
	if len(tags) > n {
		tags = tags[:n]
	}
	for len(tags) < n {
		tags = append(tags, 0)
	}
	return tags, nil
}
