// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package orgfile decides whether a document is an Org file, the only kind
// the table commands edit unless forced.
package orgfile

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Language is the linguist name of Org documents.
const Language = "Org"

// Detect returns the linguist language of a document. Name may be empty for
// piped input, in which case only the content is considered.
func Detect(name string, content []byte) string {
	if name != "" {
		if lang, safe := enry.GetLanguageByExtension(filepath.Base(name)); safe {
			return lang
		}
	}
	return enry.GetLanguage(filepath.Base(name), content)
}

// IsOrg reports whether the document is an Org file.
func IsOrg(name string, content []byte) bool {
	return Detect(name, content) == Language
}
