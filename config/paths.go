// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for orgtable configuration and data.

package config

import (
	"os"
	"path/filepath"
)

const historyName = "history.db"

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "orgtable"), nil
}

// configPath must be called with mu held.
func configPath() (string, error) {
	if override != "" {
		return override, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

// DefaultHistoryPath is where the clipboard history lives when the config
// does not name a path.
func DefaultHistoryPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, historyName), nil
}
