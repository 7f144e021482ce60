// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/table"
)

// NewRenderCmd returns the render command.
func NewRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render delimited or JSON text from stdin as a table",
		Example: `  printf 'name:qty\npear:3\n' | orgtable render
  echo '[{"name":"pear","qty":3}]' | orgtable render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer ss.Close()

			source, err := readInput(cmd, "-")
			if err != nil {
				return err
			}
			g, err := ss.env.Parser.Parse(source)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table.Render(g))
			return nil
		},
	}
}
