// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/format"
	"github.com/framegrace/orgtable/table"
)

// NewParseCmd returns the parse command.
func NewParseCmd() *cobra.Command {
	var formatName string
	parseCmd := &cobra.Command{
		Use:     "parse",
		Short:   "Read a rendered table from stdin and print its rows",
		Example: `  sed -n 4,12p notes.org | orgtable parse --format csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resolveSettings()
			name := formatName
			if name == "" {
				name = s.CopyFormat
			}
			measure, err := table.MeasureFor(s.WidthMode)
			if err != nil {
				return err
			}
			f, err := format.Get(name)
			if err != nil {
				return err
			}

			text, err := readInput(cmd, "-")
			if err != nil {
				return err
			}
			errOut := cmd.ErrOrStderr()
			g, err := table.ParseGrid(strings.TrimRight(text, "\n"),
				table.WithNotify(func(msg string) { fmt.Fprintln(errOut, msg) }),
				table.WithGridOptions(table.WithMeasure(measure)))
			if err != nil {
				return err
			}
			out, err := f.Encode(g.Records())
			if err != nil {
				return fmt.Errorf("encode %s: %w", f.Name, err)
			}
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	parseCmd.Flags().StringVarP(&formatName, "format", "f", "", "output format (default from config copy.format)")
	return parseCmd
}
