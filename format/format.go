// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package format provides a registry of encoders that serialize table
// records for the clipboard. Encoders self-register at init time and are
// looked up by the name given on the command line or in the config.
package format

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknown is returned for a format name nothing registered.
var ErrUnknown = errors.New("unknown format")

// Encoder serializes records. Records hold the header first when the table
// has one.
type Encoder func(records [][]string) (string, error)

// Format is one registered encoder.
type Format struct {
	Name string
	// Description completes "Copied table with N rows as <Description> data".
	Description string
	Encode      Encoder
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Format)
)

// Register adds a format to the global registry.
// Panics on duplicate registration.
func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[f.Name]; exists {
		panic("format: duplicate registration for " + f.Name)
	}
	registry[f.Name] = f
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Get is Lookup with an error naming the valid choices.
func Get(name string) (Format, error) {
	if f, ok := Lookup(name); ok {
		return f, nil
	}
	return Format{}, fmt.Errorf("%w %q, choices are: %v", ErrUnknown, name, Names())
}

// Names lists the registered formats in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
