// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/framegrace/orgtable/clipboard"
	"github.com/framegrace/orgtable/command"
	"github.com/framegrace/orgtable/config"
	"github.com/framegrace/orgtable/table"
	"github.com/framegrace/orgtable/tabular"
)

// session is what one verb runs with: resolved settings, the command
// environment and whatever needs closing afterwards.
type session struct {
	settings config.Settings
	env      *command.Env
	closers  []io.Closer
}

// resolveSettings reads the config store and applies flag and environment
// overrides on top.
func resolveSettings() config.Settings {
	s := config.Get().Settings()
	if viper.IsSet(keyClipboard) {
		s.ClipboardBackend = viper.GetString(keyClipboard)
	}
	if viper.IsSet(keyWidthMode) {
		s.WidthMode = viper.GetString(keyWidthMode)
	}
	return s
}

func newSession(cmd *cobra.Command) (*session, error) {
	s := resolveSettings()
	measure, err := table.MeasureFor(s.WidthMode)
	if err != nil {
		return nil, err
	}

	ss := &session{settings: s}
	cb, err := ss.openClipboard()
	if err != nil {
		return nil, err
	}

	errOut := cmd.ErrOrStderr()
	ss.env = &command.Env{
		Clipboard: cb,
		Parser: &tabular.Parser{
			Delimiters:  s.Delimiters,
			Header:      s.PasteHeader,
			GridOptions: []table.Option{table.WithMeasure(measure)},
		},
		Status: func(msg string) { fmt.Fprintln(errOut, msg) },
		Log:    logrus.StandardLogger(),
	}
	return ss, nil
}

func (ss *session) openClipboard() (clipboard.Clipboard, error) {
	switch ss.settings.ClipboardBackend {
	case "", config.BackendSystem:
		return clipboard.System{}, nil
	case config.BackendMemory:
		return clipboard.NewMemory(""), nil
	case config.BackendHistory:
		h, err := openHistory(ss.settings)
		if err != nil {
			return nil, err
		}
		ss.closers = append(ss.closers, h)
		return h, nil
	}
	return nil, fmt.Errorf("unknown clipboard backend %q", ss.settings.ClipboardBackend)
}

func openHistory(s config.Settings) (*clipboard.History, error) {
	path := s.HistoryPath
	if path == "" {
		p, err := config.DefaultHistoryPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	logrus.Debugf("opening clipboard history %s", path)
	return clipboard.OpenHistory(path, s.HistoryLimit, nil)
}

func (ss *session) Close() error {
	var result *multierror.Error
	for _, c := range ss.closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// stdinPiped reports whether the command's input is something other than
// an interactive terminal.
func stdinPiped(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return true
	}
	return !term.IsTerminal(int(f.Fd()))
}

// readInput reads path, or the command's input when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes text back to path keeping its permissions, or prints
// it when toStdout is set.
func writeOutput(cmd *cobra.Command, path, text string, toStdout bool) error {
	if toStdout {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
