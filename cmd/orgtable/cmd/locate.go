// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/buffer"
	"github.com/framegrace/orgtable/command"
	"github.com/framegrace/orgtable/locate"
)

// NewLocateCmd returns the locate command.
func NewLocateCmd() *cobra.Command {
	var at string
	locateCmd := &cobra.Command{
		Use:   "locate FILE",
		Short: "Print the extent of the table at a position",
		Long: `Print the region of the table around --at as START-END, both ROW:COL and
1-based. END is the position just past the bottom right corner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePosition(at)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			b := buffer.New(text)
			res, err := locate.Locate(b, b.OffsetOf(p))
			if errors.Is(err, locate.ErrNotFound) {
				return errors.New(command.MsgNoTable)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s\n",
				formatPosition(b.PosOf(res.Region.Begin)),
				formatPosition(b.PosOf(res.Region.End)))
			logrus.Debugf("content point %s", formatPosition(b.PosOf(res.Content)))
			return nil
		},
	}
	locateCmd.Flags().StringVar(&at, "at", "", "a position inside the table, ROW:COL (1-based)")
	_ = locateCmd.MarkFlagRequired("at")
	return locateCmd
}
