// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/yamlevents/pkg/cmd"
	"carvel.dev/yamlevents/pkg/cmd/ui"
	"carvel.dev/yamlevents/pkg/version"
	"carvel.dev/yamlevents/pkg/yamlevents"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsPrintsNotation(t *testing.T) {
	path := writeFile(t, "doc.yml", "--- &a\nkey: [x, 'y']\nref: *a\n")

	opts := cmd.NewEventsOptions()
	opts.Files = []string{path}
	opts.Color = "never"

	stdout, _ := runEvents(t, opts)

	assertEqual(t, `+STR
+DOC ---
+MAP &a
=VAL :key
+SEQ []
=VAL :x
=VAL 'y
-SEQ
=VAL :ref
=ALI *a
-MAP
-DOC
-STR
`, stdout)
}

func TestEventsWithPositions(t *testing.T) {
	path := writeFile(t, "doc.yml", "a: b\n")

	opts := cmd.NewEventsOptions()
	opts.Files = []string{path}
	opts.Color = "never"
	opts.Positions = true

	stdout, _ := runEvents(t, opts)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "1:1-1:1 +STR", lines[0])
	assert.Equal(t, "1:1-1:2 =VAL :a", lines[3])
	assert.Equal(t, "1:4-1:5 =VAL :b", lines[4])
}

func TestEventsColorAlways(t *testing.T) {
	path := writeFile(t, "doc.yml", "x\n")

	opts := cmd.NewEventsOptions()
	opts.Files = []string{path}
	opts.Color = "always"

	stdout, _ := runEvents(t, opts)

	assert.Contains(t, stdout, "\x1b[")
	assert.Contains(t, stdout, "=VAL :x")
}

func TestEventsColorAutoIsPlainWhenNotTerminal(t *testing.T) {
	path := writeFile(t, "doc.yml", "x\n")

	opts := cmd.NewEventsOptions()
	opts.Files = []string{path}

	stdout, _ := runEvents(t, opts)

	assert.NotContains(t, stdout, "\x1b[")
}

func TestEventsMultipleFilesHaveHeaders(t *testing.T) {
	first := writeFile(t, "first.yml", "a\n")
	second := writeFile(t, "second.yml", "b\n")

	opts := cmd.NewEventsOptions()
	opts.Files = []string{first, second}
	opts.Color = "never"

	stdout, _ := runEvents(t, opts)

	assert.Contains(t, stdout, "# file '"+first+"'\n+STR\n")
	assert.Contains(t, stdout, "# file '"+second+"'\n+STR\n")
	assert.Equal(t, 2, strings.Count(stdout, "-STR"))
}

func TestEventsErrors(t *testing.T) {
	path := writeFile(t, "bad.yml", "a: [b\n")

	opts := cmd.NewEventsOptions()
	opts.Files = []string{path}
	opts.Color = "never"

	var stdout bytes.Buffer
	err := opts.RunWithUI(ui.NewCustomWriterTTY(false, &stdout, &bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parsing file '"+path+"': parser error")

	var parseErr *yamlevents.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Contains(t, stdout.String(), "+SEQ []\n=VAL :b\n")

	opts.Color = "sometimes"
	err = opts.RunWithUI(ui.NewCustomWriterTTY(false, &stdout, &bytes.Buffer{}))
	assert.EqualError(t, err, "Expected --color to be one of auto, always, never, but was 'sometimes'")

	opts.Color = "alwys"
	err = opts.RunWithUI(ui.NewCustomWriterTTY(false, &stdout, &bytes.Buffer{}))
	assert.EqualError(t, err, "Expected --color to be one of auto, always, never, but was 'alwys' (did you mean 'always'?)")
}

func TestEventsDebugOutput(t *testing.T) {
	path := writeFile(t, "doc.yml", "x\n")

	opts := cmd.NewEventsOptions()
	opts.Files = []string{path}
	opts.Color = "never"

	var stdout, stderr bytes.Buffer
	require.NoError(t, opts.RunWithUI(ui.NewCustomWriterTTY(true, &stdout, &stderr)))

	assert.Contains(t, stderr.String(), "events: file '"+path+"': 5 events\n")
	assert.Contains(t, stderr.String(), "total: ")
}

func TestRoundtripDefaults(t *testing.T) {
	path := writeFile(t, "doc.yml", "key:   value\nlist:\n  - \"é\"\n  - {a: 1}\n")

	opts := cmd.NewRoundtripOptions()
	opts.Files = []string{path}

	stdout := runRoundtrip(t, opts, nil)

	assertEqual(t, "key: value\nlist:\n- \"é\"\n- {a: 1}\n", stdout)
}

func TestRoundtripFlags(t *testing.T) {
	path := writeFile(t, "doc.yml", "a:\n  - b\n")

	opts := cmd.NewRoundtripOptions()
	command := cmd.NewRoundtripCmd(opts)
	require.NoError(t, command.Flags().Parse([]string{"-f", path, "--indent", "4", "--line-break", "crlf"}))

	stdout := runRoundtrip(t, opts, command.Flags().Changed)

	assert.Equal(t, "a:\r\n- b\r\n", stdout)
}

func TestRoundtripEmitterConfig(t *testing.T) {
	path := writeFile(t, "doc.yml", "a: \"é\"\n")
	config := writeFile(t, "emitter.toml", "unicode = false\ncanonical = true\n")

	opts := cmd.NewRoundtripOptions()
	command := cmd.NewRoundtripCmd(opts)
	require.NoError(t, command.Flags().Parse([]string{"-f", path, "--emitter-config", config}))

	stdout := runRoundtrip(t, opts, command.Flags().Changed)

	assert.True(t, strings.HasPrefix(stdout, "---\n{\n"), stdout)
	assert.Contains(t, stdout, `"\xE9"`)

	// Flags take precedence over the file.
	opts = cmd.NewRoundtripOptions()
	command = cmd.NewRoundtripCmd(opts)
	require.NoError(t, command.Flags().Parse([]string{"-f", path, "--emitter-config", config, "--canonical=false"}))

	stdout = runRoundtrip(t, opts, command.Flags().Changed)

	assert.Equal(t, "a: \"\\xE9\"\n", stdout)
}

func TestRoundtripEmitterConfigErrors(t *testing.T) {
	path := writeFile(t, "doc.yml", "a\n")

	for _, tc := range []struct {
		config string
		errStr string
	}{
		{"indent = \"four\"\n", "Loading emitter config"},
		{"colour = true\n", "unknown key 'colour'"},
		{"indnet = 4\n", "unknown key 'indnet' (did you mean 'indent'?)"},
		{"line_break = \"lr\"\n", `unknown line break "lr" (expected lf, cr or crlf)`},
	} {
		opts := cmd.NewRoundtripOptions()
		opts.Files = []string{path}
		opts.EmitterConfig = writeFile(t, "emitter.toml", tc.config)

		err := opts.RunWithUI(nil, ui.NewCustomWriterTTY(false, &bytes.Buffer{}, &bytes.Buffer{}))
		require.Error(t, err, tc.config)
		assert.Contains(t, err.Error(), tc.errStr)
	}
}

func TestRoundtripYAMLVersion(t *testing.T) {
	path := writeFile(t, "doc.yml", "a: 1\n--- b\n")

	opts := cmd.NewRoundtripOptions()
	opts.Files = []string{path}
	opts.YAMLVersion = "1.2"

	stdout := runRoundtrip(t, opts, nil)

	assertEqual(t, "%YAML 1.2\n---\na: 1\n...\n%YAML 1.2\n--- b\n", stdout)

	opts.YAMLVersion = "two"
	err := opts.RunWithUI(nil, ui.NewCustomWriterTTY(false, &bytes.Buffer{}, &bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parsing YAML version "two"`)
}

func TestRoundtripDiff(t *testing.T) {
	path := writeFile(t, "doc.yml", "a:   1\nb: 2\n")

	opts := cmd.NewRoundtripOptions()
	opts.Files = []string{path}
	opts.Diff = true

	stdout := runRoundtrip(t, opts, nil)

	assert.Contains(t, stdout, "a:   1")
	assert.Contains(t, stdout, "a: 1")
	assert.Contains(t, stdout, "b: 2")
}

func TestRoundtripParseError(t *testing.T) {
	path := writeFile(t, "doc.yml", "a: 'open\n")

	opts := cmd.NewRoundtripOptions()
	opts.Files = []string{path}

	err := opts.RunWithUI(nil, ui.NewCustomWriterTTY(false, &bytes.Buffer{}, &bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parsing file '"+path+"': scanner error")
}

func TestVersion(t *testing.T) {
	var stdout bytes.Buffer
	err := cmd.NewVersionOptions().RunWithUI(ui.NewCustomWriterTTY(false, &stdout, nil))
	require.NoError(t, err)

	assert.Equal(t, "yamlevents version "+version.Version+"\nYAML versions: 1.1, 1.2\n", stdout.String())
}

func TestRootCommand(t *testing.T) {
	root := cmd.NewDefaultYamlEventsCmd()

	var names []string
	for _, subcmd := range root.Commands() {
		names = append(names, subcmd.Name())
	}
	assert.ElementsMatch(t, []string{"events", "roundtrip", "version"}, names)
	assert.True(t, root.SilenceErrors)
	assert.True(t, root.SilenceUsage)

	root.SetArgs([]string{})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Use one of available subcommands: ")

	root.SetArgs([]string{"events", "extra"})
	err = root.Execute()
	assert.EqualError(t, err, "command 'yamlevents events' does not accept extra arguments 'extra'")
}

func runEvents(t *testing.T, opts *cmd.EventsOptions) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	require.NoError(t, opts.RunWithUI(ui.NewCustomWriterTTY(false, &stdout, &stderr)))
	return stdout.String(), stderr.String()
}

func runRoundtrip(t *testing.T, opts *cmd.RoundtripOptions, flagChanged func(string) bool) string {
	t.Helper()
	var stdout bytes.Buffer
	require.NoError(t, opts.RunWithUI(flagChanged, ui.NewCustomWriterTTY(false, &stdout, &bytes.Buffer{})))
	return stdout.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func assertEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
