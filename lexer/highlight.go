// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package lexer

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	defaultStyleName     = "catppuccin-mocha"
	defaultFormatterName = "terminal256"
)

// chromaStyle resolves a style name to a Chroma style, falling back to the default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

func chromaFormatter(name string) (chroma.Formatter, error) {
	if name == "" {
		name = defaultFormatterName
	}
	f, ok := formatters.Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter %q", name)
	}
	return f, nil
}

// Highlight writes text to w with table structure colored by the named style
// and formatter. Empty names select the defaults.
func Highlight(w io.Writer, text, style, formatter string) error {
	f, err := chromaFormatter(formatter)
	if err != nil {
		return err
	}
	it, err := chroma.Coalesce(OrgTable).Tokenise(nil, text)
	if err != nil {
		return err
	}
	return f.Format(w, chromaStyle(style), it)
}
