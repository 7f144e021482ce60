// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import "github.com/sirupsen/logrus"

// loadLocked reads the config file, seeding it from the embedded defaults
// when it is missing or empty. Missing keys are filled with defaults.
func loadLocked() error {
	path, err := configPath()
	if err != nil {
		logrus.Warnf("Config: Failed to resolve config path: %v", err)
		system = make(Config)
		applyDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		logrus.Warnf("Config: Failed to read config %s: %v", path, readErr)
		cfg = make(Config)
	}

	if !exists || (readErr == nil && len(cfg) == 0) {
		if def := defaultConfig(); def != nil {
			cfg = def
		} else {
			cfg = make(Config)
		}
		applyDefaults(cfg)
		if err := writeConfig(path, cfg); err != nil {
			logrus.Warnf("Config: Failed to write default config: %v", err)
			if readErr == nil {
				readErr = err
			}
		}
	} else {
		applyDefaults(cfg)
	}

	system = cfg
	if readErr == nil && exists {
		logrus.Debugf("Config: Loaded config from %s", path)
	}
	return readErr
}
