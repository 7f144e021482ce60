// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package command implements the table verbs a host dispatches on user
// action: paste a table from external text, copy a table to the clipboard
// in some format, and update tables in place. Each verb runs to completion
// over a buffer and reports its outcome through a status callback.
package command

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/framegrace/orgtable/clipboard"
	"github.com/framegrace/orgtable/tabular"
)

// Status messages shown to the user.
const (
	MsgNoContent     = "Table has no content!"
	MsgNothingUpdate = "Nothing to update."
	MsgNoTable       = "No table found."
)

// Env carries the collaborators the verbs need.
type Env struct {
	Clipboard clipboard.Clipboard
	// Parser turns source text into grids and normalises parsed tables.
	// Nil uses a zero-value tabular.Parser.
	Parser *tabular.Parser
	// Status receives one user-facing message per verb.
	Status func(msg string)
	Log    logrus.FieldLogger
}

func (e *Env) status(msg string) {
	if e.Status != nil {
		e.Status(msg)
	}
}

func (e *Env) parser() *tabular.Parser {
	if e.Parser != nil {
		return e.Parser
	}
	return &tabular.Parser{}
}

func (e *Env) logger(component string) logrus.FieldLogger {
	log := e.Log
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return log.WithField("component", component)
}

// indentLines prefixes the first line of content with first and every
// following line with rest.
func indentLines(content, first, rest string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = first + line
		} else {
			lines[i] = rest + line
		}
	}
	return strings.Join(lines, "\n")
}

// leadingIndent returns the run of spaces and tabs content starts with.
func leadingIndent(content string) string {
	return content[:len(content)-len(strings.TrimLeft(content, " \t"))]
}

func spaces(n int) string { return strings.Repeat(" ", n) }
