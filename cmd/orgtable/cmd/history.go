// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const historyPreviewLen = 60

// NewHistoryCmd returns the history command.
func NewHistoryCmd() *cobra.Command {
	var limit int
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List what was copied with the history clipboard backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHistory(resolveSettings())
			if err != nil {
				return err
			}
			defer h.Close()

			entries, err := h.Entries(limit)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"id", "copied", "lines", "content"})
			table.SetAutoWrapText(false)
			for _, e := range entries {
				table.Append([]string{
					strconv.FormatInt(e.ID, 10),
					e.Time.Format(time.DateTime),
					strconv.Itoa(strings.Count(e.Content, "\n") + 1),
					preview(e.Content),
				})
			}
			table.Render()
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries to list, 0 for all")
	return historyCmd
}

// preview is the first line of content, shortened to historyPreviewLen runes.
func preview(content string) string {
	line, _, more := strings.Cut(content, "\n")
	runes := []rune(line)
	if len(runes) > historyPreviewLen {
		return string(runes[:historyPreviewLen-1]) + "…"
	}
	if more {
		return line + " …"
	}
	return line
}
