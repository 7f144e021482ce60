// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Resolved view of the sections orgtable reads.

package config

import "unicode/utf8"

// Clipboard backends.
const (
	BackendSystem  = "system"
	BackendHistory = "history"
	BackendMemory  = "memory"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	WidthMode string

	Delimiters  []rune
	PasteHeader bool

	CopyFormat string

	ClipboardBackend string
	HistoryPath      string
	HistoryLimit     int

	HighlightStyle     string
	HighlightFormatter string

	RequireOrg bool
}

// Settings resolves the typed settings, falling back to built-in defaults
// for missing or mistyped keys.
func (c Config) Settings() Settings {
	s := Settings{
		WidthMode:          c.GetString("table", "width_mode", "runes"),
		PasteHeader:        c.GetBool("paste", "header", false),
		CopyFormat:         c.GetString("copy", "format", "tab"),
		ClipboardBackend:   c.GetString("clipboard", "backend", BackendSystem),
		HistoryPath:        c.GetString("clipboard", "history_path", ""),
		HistoryLimit:       c.GetInt("clipboard", "history_limit", 100),
		HighlightStyle:     c.GetString("highlight", "style", ""),
		HighlightFormatter: c.GetString("highlight", "formatter", ""),
		RequireOrg:         c.GetBool("update", "require_org", true),
	}
	for _, d := range c.GetStringList("paste", "delimiters", nil) {
		if r, size := utf8.DecodeRuneInString(d); size > 0 && r != utf8.RuneError {
			s.Delimiters = append(s.Delimiters, r)
		}
	}
	return s
}
