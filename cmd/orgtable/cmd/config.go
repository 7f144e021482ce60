// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrace/orgtable/config"
)

// NewConfigCmd returns the config command and its subcommands.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the orgtable configuration file",
	}
	configCmd.AddCommand(newConfigPathCmd(), newConfigShowCmd(), newConfigSetCmd())
	return configCmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [SECTION]",
		Short: "Print the configuration, or one section of it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value interface{} = config.Get()
			if len(args) == 1 {
				section := config.Get().Section(args[0])
				if section == nil {
					return fmt.Errorf("unknown config section %q", args[0])
				}
				value = section
			}
			data, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set SECTION.KEY VALUE",
		Short: "Change one setting and save the configuration file",
		Long: `Change one setting and save the configuration file. VALUE is read as
JSON when it parses (true, 100, ["\t", ";"]) and as a plain string otherwise.`,
		Example: `  orgtable config set copy.format csv
  orgtable config set clipboard.history_limit 20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionName, key, ok := strings.Cut(args[0], ".")
			if !ok || sectionName == "" || key == "" {
				return fmt.Errorf("invalid setting %q: want SECTION.KEY", args[0])
			}

			values := config.Clone(config.Get())
			if values == nil {
				values = make(config.Config)
			}
			section := values.Section(sectionName)
			if section == nil {
				section = make(config.Section)
				values[sectionName] = section
			}
			section[key] = configValue(args[1])

			config.Set(values)
			if err := config.Save(); err != nil {
				return err
			}
			return config.Reload()
		},
	}
}

// configValue decodes raw as JSON, falling back to the raw string.
func configValue(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
