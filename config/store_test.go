// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func resetStore() {
	override = ""
	once = sync.Once{}
	system = nil
	loadErr = nil
}

func TestDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := Get()
	if got := cfg.GetString("copy", "format", ""); got != "tab" {
		t.Fatalf("expected copy.format tab, got %q", got)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if disk.Section("clipboard") == nil {
		t.Fatalf("expected clipboard section to be present")
	}
}

func TestSaveWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	Set(Config{
		"table": map[string]interface{}{"width_mode": "cells"},
	})
	if err := Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	cfg := Get()
	if got := cfg.GetString("table", "width_mode", ""); got != "cells" {
		t.Fatalf("expected width_mode cells, got %q", got)
	}
	if got := cfg.GetString("copy", "format", ""); got != "tab" {
		t.Fatalf("expected missing keys to be defaulted, got %q", got)
	}
}

func TestSetPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	path := filepath.Join(t.TempDir(), "custom.json")
	if err := writeConfig(path, Config{
		"update": map[string]interface{}{"require_org": false},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetPath(path)
	t.Cleanup(func() { SetPath("") })

	if err := Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if Get().Settings().RequireOrg {
		t.Fatalf("expected require_org false from %s", path)
	}
}

func TestBrokenFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	SetPath(path)
	t.Cleanup(func() { SetPath("") })

	if Err() == nil {
		t.Fatalf("expected a load error")
	}
	if got := Get().Settings().ClipboardBackend; got != BackendSystem {
		t.Fatalf("expected default backend, got %q", got)
	}
}

func TestSettings(t *testing.T) {
	cfg := Config{
		"paste": map[string]interface{}{
			"delimiters": []interface{}{"|", ",", "", 3},
			"header":     "true",
		},
		"clipboard": map[string]interface{}{
			"history_limit": float64(7),
		},
	}
	s := cfg.Settings()
	if string(s.Delimiters) != "|," {
		t.Fatalf("delimiters = %q", string(s.Delimiters))
	}
	if !s.PasteHeader {
		t.Fatalf("expected header from string value")
	}
	if s.HistoryLimit != 7 {
		t.Fatalf("history limit = %d", s.HistoryLimit)
	}
	if s.WidthMode != "runes" || s.CopyFormat != "tab" || !s.RequireOrg {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestCloneCopiesSections(t *testing.T) {
	orig := Config{"copy": map[string]interface{}{"format": "csv"}, "top": "x"}
	clone := Clone(orig)
	clone.Section("copy")["format"] = "json"
	if got := orig.GetString("copy", "format", ""); got != "csv" {
		t.Fatalf("clone shares section with original: %q", got)
	}
	if clone["top"] != "x" {
		t.Fatalf("top-level value not copied")
	}
}
