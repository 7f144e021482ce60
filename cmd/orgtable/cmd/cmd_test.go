// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/orgtable/buffer"
	"github.com/framegrace/orgtable/command"
	"github.com/framegrace/orgtable/config"
)

const fruit = "╭──────┬─────╮\n" +
	"│ name │ qty │\n" +
	"├──────┼─────┤\n" +
	"│ pear │ 3   │\n" +
	"╰──────┴─────╯"

const narrow = "╭─┬─╮\n" +
	"│ name │ qty │\n" +
	"├─┼─┤\n" +
	"│ pear │ 3 │\n" +
	"╰─┴─╯"

func setup(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ORGTABLE_CLIPBOARD", "memory")
}

func execute(t *testing.T, c *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	// Matches rootCmd, which the commands are attached to in production.
	c.SilenceUsage = true
	c.SilenceErrors = true
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    buffer.Pos
		wantErr bool
	}{
		{in: "1:1", want: buffer.Pos{}},
		{in: "12:4", want: buffer.Pos{Row: 11, Col: 3}},
		{in: " 3 ", want: buffer.Pos{Row: 2}},
		{in: "0:1", wantErr: true},
		{in: "2:0", wantErr: true},
		{in: "a:b", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parsePosition(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			if !strings.Contains(tc.in, " ") {
				assert.Equal(t, tc.in, formatPosition(got)[:len(tc.in)])
			}
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "one", preview("one"))
	assert.Equal(t, "one …", preview("one\ntwo"))
	long := strings.Repeat("x", historyPreviewLen+5)
	assert.Equal(t, historyPreviewLen, len([]rune(preview(long))))
}

func TestRenderCmd(t *testing.T) {
	setup(t)
	out, err := execute(t, NewRenderCmd(), "name:qty\npear:3\n")
	require.NoError(t, err)
	assert.Equal(t, fruit+"\n", out)
}

func TestPasteCmd(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "notes.org")

	_, err := execute(t, NewPasteCmd(), "name:qty\npear:3\n", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fruit+"\n", string(data))

	out, err := execute(t, NewPasteCmd(), "", "--from", "-", "--at", "1:1", "--stdout", path)
	assert.ErrorIs(t, err, command.ErrEmptySource)
	assert.ErrorContains(t, err, "paste from stdin")
	assert.Empty(t, out)

	empty := writeFile(t, "empty.txt", "\n")
	_, err = execute(t, NewPasteCmd(), "", "--from", empty, "--stdout", path)
	assert.ErrorContains(t, err, "paste from "+empty)
}

func TestCopyCmdStdout(t *testing.T) {
	setup(t)
	path := writeFile(t, "notes.org", "Intro\n"+fruit+"\n")

	out, err := execute(t, NewCopyCmd(), "", "--format", "csv", "--at", "3:3", "--stdout", path)
	require.NoError(t, err)
	assert.Equal(t, "name,qty\r\npear,3\r\n", out)

	_, err = execute(t, NewCopyCmd(), "", "--format", "xml", "--at", "3:3", "--stdout", path)
	assert.ErrorContains(t, err, "choices are")
}

func TestUpdateCmd(t *testing.T) {
	setup(t)
	path := writeFile(t, "notes.org", "* Notes\n"+narrow+"\n")

	out, err := execute(t, NewUpdateCmd(), "", "--all", "--diff", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "@@ 2:1 @@\n"), out)
	assert.Contains(t, out, "+│ pear │ 3   │\n")
	assert.Contains(t, out, "-│ pear │ 3 │\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* Notes\n"+narrow+"\n", string(data), "--diff must not write")

	_, err = execute(t, NewUpdateCmd(), "", "--at", "3:3", path)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* Notes\n"+fruit+"\n", string(data))
}

func TestUpdateCmdRefusesOtherFiles(t *testing.T) {
	setup(t)
	path := writeFile(t, "main.go", "package main\n\n// "+strings.ReplaceAll(narrow, "\n", "\n// ")+"\n")

	_, err := execute(t, NewUpdateCmd(), "", "--all", path)
	assert.ErrorContains(t, err, "--force")

	_, err = execute(t, NewUpdateCmd(), "", path)
	assert.ErrorContains(t, err, "--at")
}

func TestLocateCmd(t *testing.T) {
	setup(t)
	path := writeFile(t, "notes.org", "Intro\n"+fruit+"\nOutro\n")

	out, err := execute(t, NewLocateCmd(), "", "--at", "3:3", path)
	require.NoError(t, err)
	assert.Equal(t, "2:1-6:15\n", out)

	_, err = execute(t, NewLocateCmd(), "", "--at", "1:2", path)
	assert.ErrorContains(t, err, "No table found.")
}

func TestHighlightCmd(t *testing.T) {
	setup(t)
	path := writeFile(t, "notes.org", "Intro\n"+fruit+"\n")

	out, err := execute(t, NewHighlightCmd(), "", "--formatter", "noop", path)
	require.NoError(t, err)
	assert.Equal(t, "Intro\n"+fruit+"\n", out)
}

func TestParseCmd(t *testing.T) {
	setup(t)
	out, err := execute(t, NewParseCmd(), fruit+"\n", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, `[["name","qty"],["pear","3"]]`+"\n", out)
}

func TestConfigCmd(t *testing.T) {
	setup(t)
	home := os.Getenv("XDG_CONFIG_HOME")
	config.SetPath("")
	t.Cleanup(func() { config.SetPath("") })

	out, err := execute(t, NewConfigCmd(), "", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "orgtable", "orgtable.json")+"\n", out)

	_, err = execute(t, NewConfigCmd(), "", "set", "copy.format", "csv")
	require.NoError(t, err)
	_, err = execute(t, NewConfigCmd(), "", "set", "clipboard.history_limit", "20")
	require.NoError(t, err)
	s := resolveSettings()
	assert.Equal(t, "csv", s.CopyFormat)
	assert.Equal(t, 20, s.HistoryLimit)

	data, err := os.ReadFile(filepath.Join(home, "orgtable", "orgtable.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format": "csv"`)

	out, err = execute(t, NewConfigCmd(), "", "show", "copy")
	require.NoError(t, err)
	assert.JSONEq(t, `{"format":"csv"}`, out)

	_, err = execute(t, NewConfigCmd(), "", "set", "nodot", "x")
	assert.ErrorContains(t, err, "SECTION.KEY")
	_, err = execute(t, NewConfigCmd(), "", "show", "nosuch")
	assert.ErrorContains(t, err, "unknown config section")
}

type closeFunc func() error

func (f closeFunc) Close() error { return f() }

func TestSessionClose(t *testing.T) {
	ok := closeFunc(func() error { return nil })
	fail := closeFunc(func() error { return errors.New("busy") })

	ss := &session{closers: []io.Closer{ok, fail, ok, fail}}
	err := ss.Close()
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "got %v", err)
	assert.Equal(t, 2, merr.Len())

	ss = &session{closers: []io.Closer{ok}}
	assert.NoError(t, ss.Close())
}
