// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(Format{Name: "markdown", Description: "Markdown formatted", Encode: encodeMarkdown})
	Register(Format{Name: "yaml", Description: "YAML encoded", Encode: encodeYAML})
}

// encodeMarkdown writes a pipe table. The first record becomes the header
// row, which markdown requires. Line breaks inside cells become <br>.
func encodeMarkdown(records [][]string) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	cols := 0
	for _, rec := range records {
		cols = max(cols, len(rec))
	}
	cells := func(rec []string) []string {
		out := make([]string, cols)
		for i, f := range rec {
			out[i] = strings.ReplaceAll(f, "\n", "<br>")
		}
		return out
	}

	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeader(cells(records[0]))
	for _, rec := range records[1:] {
		table.Append(cells(rec))
	}
	table.Render()
	return sb.String(), nil
}

// encodeYAML writes a sequence of string sequences.
func encodeYAML(records [][]string) (string, error) {
	if records == nil {
		records = [][]string{}
	}
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
