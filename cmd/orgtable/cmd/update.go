// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/buffer"
	"github.com/framegrace/orgtable/command"
	"github.com/framegrace/orgtable/internal/orgfile"
)

type updateOpts struct {
	at    []string
	all   bool
	diff  bool
	force bool
}

var longUpdateCmdDescription = `Re-parse and re-render tables in FILE so that edited cells line up again.

Each --at names a position inside a table; --all updates every table in the
file. Positions outside any table, and tables that no longer parse, are
reported and skipped. With --diff the changes are printed and FILE is left
untouched.`

// NewUpdateCmd returns the update command.
func NewUpdateCmd() *cobra.Command {
	var opts updateOpts
	updateCmd := &cobra.Command{
		Use:   "update FILE",
		Short: "Re-render tables after their cells were edited",
		Long:  longUpdateCmdDescription,
		Example: `  orgtable update --at 12:4 notes.org
  orgtable update --all --diff notes.org`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.all && len(opts.at) == 0 {
				return errors.New("nothing selected: pass --at ROW:COL or --all")
			}
			ss, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer ss.Close()

			path := args[0]
			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			if ss.settings.RequireOrg && !opts.force && !orgfile.IsOrg(path, []byte(text)) {
				return fmt.Errorf("%s does not look like an org file (detected %q), use --force to update it anyway",
					path, orgfile.Detect(path, []byte(text)))
			}

			b := buffer.New(text)
			var sels []buffer.Region
			if opts.all {
				sels = command.AllTables(b)
			}
			at, err := selectionsAt(b, opts.at)
			if err != nil {
				return err
			}
			sels = append(sels, at...)
			if len(sels) == 0 {
				ss.env.Status(command.MsgNoTable)
				return nil
			}
			b.SetSelections(sels...)

			res := ss.env.UpdateTables(b, command.UpdateOptions{DryRun: opts.diff})
			if merr, ok := res.Skipped.(*multierror.Error); ok {
				logrus.Debugf("skipped %d selections", merr.Len())
			}

			if opts.diff {
				out := cmd.OutOrStdout()
				for _, c := range res.Changes {
					fmt.Fprintf(out, "@@ %s @@\n", formatPosition(b.PosOf(c.Region.Begin)))
					fmt.Fprint(out, command.LineDiff(c.Before, c.After))
				}
				return nil
			}
			if res.Updated() == 0 {
				return nil
			}
			return writeOutput(cmd, path, b.Text(), false)
		},
	}

	updateCmd.Flags().StringArrayVar(&opts.at, "at", nil, "a position inside a table, ROW:COL (1-based); repeatable")
	updateCmd.Flags().BoolVarP(&opts.all, "all", "a", false, "update every table in FILE")
	updateCmd.Flags().BoolVar(&opts.diff, "diff", false, "print the changes instead of writing FILE")
	updateCmd.Flags().BoolVar(&opts.force, "force", false, "update files that are not detected as org")
	return updateCmd
}
