// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carvel.dev/yamlevents/pkg/yamlevents"
)

func TestParserTwoDocuments(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("--- a\n--- b\n"), yamlevents.ParserOpts{})
	defer parser.Close()

	var kinds []yamlevents.Kind
	var values []string
	for {
		ev, err := parser.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		kinds = append(kinds, ev.Kind())
		if scalar, ok := ev.(*yamlevents.Scalar); ok {
			values = append(values, scalar.Value())
		}
	}

	assert.Equal(t, []yamlevents.Kind{
		yamlevents.StreamStartKind,
		yamlevents.DocumentStartKind,
		yamlevents.ScalarKind,
		yamlevents.DocumentEndKind,
		yamlevents.DocumentStartKind,
		yamlevents.ScalarKind,
		yamlevents.DocumentEndKind,
		yamlevents.StreamEndKind,
	}, kinds)
	assert.Equal(t, []string{"a", "b"}, values)
}

func TestParserNotation(t *testing.T) {
	input := `%YAML 1.2
---
map: &m
  plain: 1
  'single': "double"
  flow: [a, {b: c}]
  tagged: !!str 2
  ref: *m
  lit: |
    x
  fold: >
    y
...
`
	expected := `+STR
+DOC ---
+MAP
=VAL :map
+MAP &m
=VAL :plain
=VAL :1
=VAL 'single
=VAL "double
=VAL :flow
+SEQ []
=VAL :a
+MAP {}
=VAL :b
=VAL :c
-MAP
-SEQ
=VAL :tagged
=VAL <tag:yaml.org,2002:str> :2
=VAL :ref
=ALI *m
=VAL :lit
=VAL |x\n
=VAL :fold
=VAL >y\n
-MAP
-MAP
-DOC ...
-STR`

	assertEqualLines(t, expected, parseNotation(t, input))
}

func TestParserVersionDirective(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("%YAML 1.1\n--- x\n"), yamlevents.ParserOpts{})
	defer parser.Close()

	_, err := yamlevents.Consume[*yamlevents.StreamStart](parser)
	require.NoError(t, err)

	doc, err := yamlevents.Consume[*yamlevents.DocumentStart](parser)
	require.NoError(t, err)

	version, found := doc.Version()
	require.True(t, found)
	assert.Equal(t, yamlevents.Version11, version)
	assert.False(t, doc.IsImplicit())
}

func TestParserImplicitDocument(t *testing.T) {
	for _, input := range []string{"key: value\n", "\xff\xfea\x00:\x00 \x00b\x00"} {
		events, err := yamlevents.ReadAll(strings.NewReader(input))
		require.NoError(t, err)

		doc, ok := events[1].(*yamlevents.DocumentStart)
		require.True(t, ok, "%q: %T", input, events[1])
		assert.True(t, doc.IsImplicit(), input)
		assert.True(t, events[len(events)-2].(*yamlevents.DocumentEnd).IsImplicit(), input)
	}

	events, err := yamlevents.ReadAll(strings.NewReader("key: value\n"))
	require.NoError(t, err)
	assert.Equal(t, "key: value\n", emitString(t, events, yamlevents.EmitterOpts{}))
}

func TestParserExhaustionIsIdempotent(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("a"), yamlevents.ParserOpts{})
	defer parser.Close()

	for {
		ev, err := parser.Next()
		require.NoError(t, err)
		if ev.Kind() == yamlevents.StreamEndKind {
			break
		}
	}

	for i := 0; i < 3; i++ {
		ev, err := parser.Next()
		assert.Nil(t, ev)
		assert.Equal(t, io.EOF, err)
	}
	assert.Equal(t, yamlevents.StreamEndKind, parser.Current().Kind())
}

func TestParserEmptyInput(t *testing.T) {
	events, err := yamlevents.ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "+STR\n-STR", notations(events))
}

func TestParserDoubleClose(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("a: b"), yamlevents.ParserOpts{})

	_, err := parser.Next()
	require.NoError(t, err)

	assert.NoError(t, parser.Close())
	assert.NoError(t, parser.Close())

	_, err = parser.Next()
	assert.Equal(t, yamlevents.ErrClosed, err)
}

func TestParserMalformedInput(t *testing.T) {
	cases := []struct {
		desc  string
		input string
		kind  yamlevents.ErrorKind
	}{
		{"unclosed flow sequence", "[a, b", yamlevents.ParserError},
		{"unterminated quoted scalar", "key: \"value", yamlevents.ScannerError},
		{"tab indentation", "a:\n\t- b\n", yamlevents.ScannerError},
		{"invalid utf-8", "a: \xc3\x28\n", yamlevents.ReaderError},
		{"unsupported version", "%YAML 2.0\n--- a\n", yamlevents.ParserError},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := yamlevents.ReadAll(strings.NewReader(tc.input))
			require.Error(t, err)

			var parseErr *yamlevents.ParseError
			require.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
			assert.NotEqual(t, yamlevents.NoError, parseErr.Kind)
			assert.Equal(t, tc.kind, parseErr.Kind)
			assert.True(t, strings.HasPrefix(err.Error(), tc.kind.String()+": "), err.Error())
		})
	}
}

func TestParserErrorIsSticky(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("key: \"value"), yamlevents.ParserOpts{})
	defer parser.Close()

	var firstErr error
	for firstErr == nil {
		_, firstErr = parser.Next()
	}

	_, err := parser.Next()
	assert.Same(t, firstErr, err)
}

func TestParserErrorMessage(t *testing.T) {
	_, err := yamlevents.ReadAll(strings.NewReader("a: 1\nb: \"open"))
	require.Error(t, err)
	assert.Equal(t, "scanner error: line 2: while scanning a quoted scalar: found unexpected end of stream", err.Error())
}

func TestParserPositions(t *testing.T) {
	events, err := yamlevents.ReadAll(strings.NewReader("a:\n  - bc\n"))
	require.NoError(t, err)

	scalar := events[5].(*yamlevents.Scalar)
	require.Equal(t, "bc", scalar.Value())
	assert.Equal(t, uint(7), scalar.Start().Index())
	assert.Equal(t, uint(1), scalar.Start().Line())
	assert.Equal(t, uint(4), scalar.Start().Column())
	assert.Equal(t, uint(6), scalar.End().Column())
	assert.Equal(t, "line 2, column 5", scalar.Start().AsString())
}

func TestParserForcedEncoding(t *testing.T) {
	input := "a\x00:\x00 \x00b\x00"
	parser := yamlevents.NewParser(strings.NewReader(input), yamlevents.ParserOpts{Encoding: yamlevents.UTF16LEEncoding})
	defer parser.Close()

	start, err := yamlevents.Consume[*yamlevents.StreamStart](parser)
	require.NoError(t, err)
	assert.Equal(t, yamlevents.UTF16LEEncoding, start.Encoding())

	_, err = parser.SkipNode()
	require.NoError(t, err)
}

func TestParserDetectsUTF16(t *testing.T) {
	events, err := yamlevents.ReadAll(strings.NewReader("\xfe\xff\x00x"))
	require.NoError(t, err)

	assert.Equal(t, yamlevents.UTF16BEEncoding, events[0].(*yamlevents.StreamStart).Encoding())
	assert.Equal(t, "x", events[2].(*yamlevents.Scalar).Value())
}

func TestConsumeUnexpectedEvent(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("- a"), yamlevents.ParserOpts{})
	defer parser.Close()

	_, err := yamlevents.Consume[*yamlevents.StreamStart](parser)
	require.NoError(t, err)
	_, err = yamlevents.Consume[*yamlevents.DocumentStart](parser)
	require.NoError(t, err)

	_, err = yamlevents.Consume[*yamlevents.MappingStart](parser)
	require.Error(t, err)

	var unexpected *yamlevents.UnexpectedEventError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, yamlevents.MappingStartKind, unexpected.Expected)
	assert.Equal(t, yamlevents.SequenceStartKind, unexpected.Actual.Kind())
	assert.Equal(t, "expected MappingStart event, but got SequenceStart (line 1, column 1)", err.Error())
}

func TestConsumeAfterEnd(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader(""), yamlevents.ParserOpts{})
	defer parser.Close()

	_, err := parser.SkipNode()
	require.NoError(t, err)

	_, err = yamlevents.Consume[*yamlevents.Scalar](parser)
	assert.EqualError(t, err, "expected Scalar event, but stream has ended")
}

func TestSkipNode(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("skip: {a: [1, 2], b: c}\nkeep: x\n"), yamlevents.ParserOpts{})
	defer parser.Close()

	for _, step := range []func() error{
		func() error { _, err := yamlevents.Consume[*yamlevents.StreamStart](parser); return err },
		func() error { _, err := yamlevents.Consume[*yamlevents.DocumentStart](parser); return err },
		func() error { _, err := yamlevents.Consume[*yamlevents.MappingStart](parser); return err },
	} {
		require.NoError(t, step())
	}

	key, err := parser.SkipNode()
	require.NoError(t, err)
	assert.Equal(t, "skip", key.(*yamlevents.Scalar).Value())

	value, err := parser.SkipNode()
	require.NoError(t, err)
	assert.Equal(t, yamlevents.MappingStartKind, value.Kind())
	assert.Equal(t, yamlevents.MappingEndKind, parser.Current().Kind())

	next, err := yamlevents.Consume[*yamlevents.Scalar](parser)
	require.NoError(t, err)
	assert.Equal(t, "keep", next.Value())
}

func TestSkipNodeTruncated(t *testing.T) {
	parser := yamlevents.NewParser(strings.NewReader("[a, [b"), yamlevents.ParserOpts{})
	defer parser.Close()

	_, err := yamlevents.Consume[*yamlevents.StreamStart](parser)
	require.NoError(t, err)
	_, err = yamlevents.Consume[*yamlevents.DocumentStart](parser)
	require.NoError(t, err)

	_, err = parser.SkipNode()
	var parseErr *yamlevents.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParserReaderFailure(t *testing.T) {
	_, err := yamlevents.ReadAll(failingReader{})

	var parseErr *yamlevents.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, yamlevents.ReaderError, parseErr.Kind)
	assert.Contains(t, parseErr.Problem, "disk on fire")
}
