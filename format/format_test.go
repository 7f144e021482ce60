// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = [][]string{
	{"name", "note"},
	{"pear", "ripe\nsoon"},
	{"fig", "a\tb"},
	{"plum", `say "hi", ok`},
}

func encode(t *testing.T, name string, records [][]string) string {
	t.Helper()
	f, err := Get(name)
	require.NoError(t, err)
	out, err := f.Encode(records)
	require.NoError(t, err)
	return out
}

func TestTab(t *testing.T) {
	want := "name\tnote\n" +
		"pear\t\"ripe\nsoon\"\n" +
		"fig\t\"a\tb\"\n" +
		"plum\tsay \"hi\", ok"
	assert.Equal(t, want, encode(t, "tab", sample))
}

func TestJSON(t *testing.T) {
	out := encode(t, "json", [][]string{{"a", "<b>"}, {"c"}})
	assert.Equal(t, `[["a","<b>"],["c"]]`, out)
	assert.Equal(t, `[]`, encode(t, "json", nil))

	var back [][]string
	require.NoError(t, json.Unmarshal([]byte(encode(t, "json", sample)), &back))
	assert.Equal(t, sample, back)
}

func TestCSV(t *testing.T) {
	out := encode(t, "csv", sample)
	assert.Equal(t, "name,note\r\n"+
		"pear,\"ripe\r\nsoon\"\r\n"+
		"fig,a\tb\r\n"+
		"plum,\"say \"\"hi\"\", ok\"\r\n", out)
}

func TestMarkdown(t *testing.T) {
	out := encode(t, "markdown", [][]string{{"name", "qty"}, {"pear", "3"}, {"fig"}})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "pear")
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "|") && strings.HasSuffix(l, "|"), "line %q", l)
	}

	out = encode(t, "markdown", sample)
	assert.Contains(t, out, "ripe<br>soon")
	assert.Equal(t, "", encode(t, "markdown", nil))
}

func TestYAML(t *testing.T) {
	var back [][]string
	require.NoError(t, yaml.Unmarshal([]byte(encode(t, "yaml", sample)), &back))
	assert.Equal(t, sample, back)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "markdown", "tab", "yaml"}, Names())

	f, ok := Lookup("tab")
	require.True(t, ok)
	assert.Equal(t, "tab separated", f.Description)

	_, err := Get("xml")
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), `"xml"`)

	assert.Panics(t, func() { Register(Format{Name: "tab"}) })
}
