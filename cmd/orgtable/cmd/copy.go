// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/buffer"
	"github.com/framegrace/orgtable/clipboard"
	"github.com/framegrace/orgtable/format"
)

type copyOpts struct {
	format   string
	at       string
	toStdout bool
}

// NewCopyCmd returns the copy command.
func NewCopyCmd() *cobra.Command {
	var opts copyOpts
	copyCmd := &cobra.Command{
		Use:   "copy FILE",
		Short: "Copy the table at a position to the clipboard",
		Long: fmt.Sprintf(`Locate the table at --at in FILE, parse it and write its rows to the
clipboard encoded as one of: %v.`, format.Names()),
		Example: `  orgtable copy --format csv --at 5:3 notes.org
  orgtable copy --format json --at 5:3 --stdout notes.org | jq .`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer ss.Close()

			p, err := parsePosition(opts.at)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			b := buffer.New(text)
			b.SetSelections(buffer.Point(b.OffsetOf(p)))

			var mem *clipboard.Memory
			if opts.toStdout {
				mem = clipboard.NewMemory("")
				ss.env.Clipboard = mem
				ss.env.Status = nil
			}

			name := opts.format
			if name == "" {
				name = ss.settings.CopyFormat
			}
			if _, err := ss.env.CopyTable(b, name); err != nil {
				return err
			}
			if mem != nil {
				out, err := mem.ReadText()
				if err != nil {
					return err
				}
				if !strings.HasSuffix(out, "\n") {
					out += "\n"
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	copyCmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (default from config copy.format)")
	copyCmd.Flags().StringVar(&opts.at, "at", "", "a position inside the table, ROW:COL (1-based)")
	copyCmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "print the encoded table instead of using the clipboard")
	_ = copyCmd.MarkFlagRequired("at")
	return copyCmd
}
