// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/buffer"
)

type pasteOpts struct {
	from     string
	at       string
	toStdout bool
}

var longPasteCmdDescription = `Parse delimited or JSON text and insert it into FILE as a rendered table.

The source is read from --from (a path, or - for stdin), from stdin when it
is piped, and otherwise from the clipboard. Without --at the table is
appended at the end of FILE. A FILE that does not exist yet starts empty.`

// NewPasteCmd returns the paste command.
func NewPasteCmd() *cobra.Command {
	var opts pasteOpts
	pasteCmd := &cobra.Command{
		Use:   "paste FILE",
		Short: "Insert text as a table",
		Long:  longPasteCmdDescription,
		Example: `  orgtable paste --from people.csv --at 3:1 notes.org
  kubectl get pods | orgtable paste --stdout notes.org`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer ss.Close()

			path := args[0]
			text, err := readInput(cmd, path)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			b := buffer.New(text)
			if opts.at != "" {
				p, err := parsePosition(opts.at)
				if err != nil {
					return err
				}
				b.SetSelections(buffer.Point(b.OffsetOf(p)))
			} else {
				b.SetSelections(buffer.Point(b.Len()))
			}

			from := opts.from
			if from == "" && stdinPiped(cmd) {
				from = "-"
			}
			if from == "" {
				if err := ss.env.PasteTable(b); err != nil {
					return err
				}
				return writeOutput(cmd, path, b.Text(), opts.toStdout)
			}

			source, err := readInput(cmd, from)
			if err != nil {
				return err
			}
			if err := ss.env.PasteText(b, source); err != nil {
				return fmt.Errorf("paste from %s: %w", sourceName(from), err)
			}
			return writeOutput(cmd, path, b.Text(), opts.toStdout)
		},
	}

	pasteCmd.Flags().StringVar(&opts.from, "from", "", "read the source from this file, - for stdin")
	pasteCmd.Flags().StringVar(&opts.at, "at", "", "insert at ROW:COL (1-based)")
	pasteCmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "print the result instead of writing FILE")
	return pasteCmd
}

func sourceName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
