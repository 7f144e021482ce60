// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
)

func init() {
	Register(Format{Name: "tab", Description: "tab separated", Encode: encodeTab})
	Register(Format{Name: "json", Description: "JSON encoded", Encode: encodeJSON})
	Register(Format{Name: "csv", Description: "CSV encoded", Encode: encodeCSV})
}

// encodeTab joins fields with tabs and rows with newlines. Fields holding a
// newline or tab are wrapped in double quotes so they survive a paste.
func encodeTab(records [][]string) (string, error) {
	lines := make([]string, len(records))
	for i, rec := range records {
		fields := make([]string, len(rec))
		for j, f := range rec {
			if strings.ContainsAny(f, "\n\t") {
				f = `"` + f + `"`
			}
			fields[j] = f
		}
		lines[i] = strings.Join(fields, "\t")
	}
	return strings.Join(lines, "\n"), nil
}

// encodeJSON writes an array of arrays of strings.
func encodeJSON(records [][]string) (string, error) {
	if records == nil {
		records = [][]string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// encodeCSV writes RFC 4180 records with CRLF line endings.
func encodeCSV(records [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.WriteAll(records); err != nil {
		return "", err
	}
	return buf.String(), nil
}
