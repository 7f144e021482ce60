// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the configuration file.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("table", Section{
		"width_mode": "runes",
	})
	cfg.RegisterDefaults("paste", Section{
		"delimiters": []interface{}{"\t", ":", ";"},
		"header":     false,
	})
	cfg.RegisterDefaults("copy", Section{
		"format": "tab",
	})
	cfg.RegisterDefaults("clipboard", Section{
		"backend":       "system",
		"history_path":  "",
		"history_limit": 100,
	})
	cfg.RegisterDefaults("highlight", Section{
		"style":     "catppuccin-mocha",
		"formatter": "terminal256",
	})
	cfg.RegisterDefaults("update", Section{
		"require_org": true,
	})
}
