// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/lexer"
)

// NewHighlightCmd returns the highlight command.
func NewHighlightCmd() *cobra.Command {
	var style, formatter string
	highlightCmd := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Print FILE with table structure colored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resolveSettings()
			if style == "" {
				style = s.HighlightStyle
			}
			if formatter == "" {
				formatter = s.HighlightFormatter
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			return lexer.Highlight(cmd.OutOrStdout(), text, style, formatter)
		},
	}
	highlightCmd.Flags().StringVar(&style, "style", "", "chroma style name (default from config highlight.style)")
	highlightCmd.Flags().StringVar(&formatter, "formatter", "", "chroma formatter name (default from config highlight.formatter)")
	return highlightCmd
}
