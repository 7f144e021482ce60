// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/orgtable/cmd/root.go
// Summary: Root command, persistent flags and logger/config setup.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/framegrace/orgtable/config"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// Viper keys for the flags that override config settings.
const (
	keyClipboard = "clipboard"
	keyWidthMode = "width-mode"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	logFormat   string
}

var rootOpt rootOpts

var longRootCmdDescription = `orgtable pastes delimited or JSON text as box-drawn tables into
org documents, copies tables back out in several formats, and re-renders
tables after their cells were edited by hand.
`

var rootCmd = &cobra.Command{
	Use:           "orgtable",
	Short:         "Paste, copy and reformat box-drawn tables in org files.",
	Long:          longRootCmdDescription,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("orgtable: %v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(
		NewPasteCmd(),
		NewCopyCmd(),
		NewUpdateCmd(),
		NewRenderCmd(),
		NewParseCmd(),
		NewLocateCmd(),
		NewHighlightCmd(),
		NewHistoryCmd(),
		NewConfigCmd(),
	)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpt.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/orgtable/orgtable.json)")
	flags.BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug logging")
	flags.StringVar(&rootOpt.logFormat, "log-format", logFormatText, fmt.Sprintf("log output format, one of %s or %s", logFormatText, logFormatJSON))
	flags.String(keyClipboard, "", fmt.Sprintf("clipboard backend: %s, %s or %s", config.BackendSystem, config.BackendHistory, config.BackendMemory))
	flags.String(keyWidthMode, "", "cell width measure: runes, graphemes or cells")

	_ = viper.BindPFlag(keyClipboard, flags.Lookup(keyClipboard))
	_ = viper.BindPFlag(keyWidthMode, flags.Lookup(keyWidthMode))
	rootCmd.DisableAutoGenTag = true
}

// initConfig points the config store at --config, layers ORGTABLE_*
// environment variables through viper and sets up logging.
func initConfig() {
	if rootOpt.cfgFile != "" {
		config.SetPath(rootOpt.cfgFile)
	}

	viper.SetEnvPrefix("ORGTABLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	logrus.SetOutput(os.Stderr)
	switch rootOpt.logFormat {
	case logFormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	if rootOpt.debugModeOn {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := config.Err(); err != nil {
		logrus.Warnf("failed to load config, using defaults: %v", err)
	}
}
