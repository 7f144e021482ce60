// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabular

import "strings"

// splitRecords splits content into records and fields on delim. A quote
// character at the start of a field, after optional blanks, opens a quoted
// span; delimiters and newlines inside the span are kept, a doubled quote is
// a literal quote and the span closes at a quote followed by optional spaces
// and a delimiter, newline or the end of input. A quote that never closes is
// re-read as a literal character.
func splitRecords(content string, delim rune, quotes []rune) [][]string {
	runes := []rune(content)
	literal := map[int]bool{}
	for {
		records, openAt := scanRecords(runes, delim, quotes, literal)
		if openAt < 0 {
			return records
		}
		literal[openAt] = true
	}
}

// scanRecords does one pass. It returns the index of an unterminated opening
// quote, or -1 when every span closed.
func scanRecords(runes []rune, delim rune, quotes []rune, literal map[int]bool) ([][]string, int) {
	var (
		records    [][]string
		fields     []string
		field      strings.Builder
		quote      rune
		openAt     = -1
		fieldStart = true
		quoted     bool // current record had a quoted field
		started    bool // current record has any content
	)

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
		fieldStart = true
	}
	endRecord := func() {
		endField()
		if started && (quoted || !blankFields(fields)) {
			records = append(records, fields)
		}
		fields = nil
		quoted, started = false, false
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if quote != 0 {
			if r == quote {
				if i+1 < len(runes) && runes[i+1] == quote {
					field.WriteRune(r)
					i++
					continue
				}
				if end, ok := closesSpan(runes, i+1, delim); ok {
					quote, openAt = 0, -1
					i = end - 1
					continue
				}
			}
			field.WriteRune(r)
			continue
		}

		started = true
		switch {
		case fieldStart && isQuote(r, quotes) && !literal[i]:
			quote, openAt = r, i
			quoted = true
			fieldStart = false
			field.Reset()
		case r == delim:
			endField()
		case r == '\n':
			endRecord()
		case fieldStart && (r == ' ' || r == '\t'):
			// Blanks before an opening quote do not start the field.
			field.WriteRune(r)
		default:
			field.WriteRune(r)
			fieldStart = false
		}
	}
	if quote != 0 {
		return nil, openAt
	}
	if started {
		endRecord()
	}
	return records, -1
}

// closesSpan reports whether a quote just before pos ends a quoted span. It
// returns the index where scanning resumes, just past any pad spaces.
func closesSpan(runes []rune, pos int, delim rune) (int, bool) {
	for pos < len(runes) && runes[pos] == ' ' && delim != ' ' {
		pos++
	}
	if pos == len(runes) || runes[pos] == delim || runes[pos] == '\n' {
		return pos, true
	}
	return 0, false
}

func isQuote(r rune, quotes []rune) bool {
	for _, q := range quotes {
		if r == q {
			return true
		}
	}
	return false
}

func blankFields(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func maxColumns(records [][]string) int {
	n := 0
	for _, rec := range records {
		if len(rec) > n {
			n = len(rec)
		}
	}
	return n
}
