// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package clipboard abstracts the text clipboard that paste reads from and
// copy writes to. Backends are the system clipboard, an in-memory one for
// tests and pipes, and a SQLite history that records every write.
package clipboard

import (
	"errors"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// ErrEmpty is returned when a backend holds no text.
var ErrEmpty = errors.New("clipboard is empty")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the desktop clipboard.
type System struct{}

// ReadText implements Clipboard.
func (System) ReadText() (string, error) {
	if sysclip.Unsupported {
		return "", errors.New("no system clipboard available")
	}
	text, err := sysclip.ReadAll()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// WriteText implements Clipboard.
func (System) WriteText(text string) error {
	if sysclip.Unsupported {
		return errors.New("no system clipboard available")
	}
	return sysclip.WriteAll(text)
}

// Memory keeps the clipboard in process memory. The zero value is empty and
// ready to use.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory returns a Memory holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text, set: true}
}

// ReadText implements Clipboard.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrEmpty
	}
	return m.text, nil
}

// WriteText implements Clipboard.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text, m.set = text, true
	return nil
}
