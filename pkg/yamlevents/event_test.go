// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carvel.dev/yamlevents/pkg/filepos"
	"carvel.dev/yamlevents/pkg/yamlevents"
)

func TestScalarLengthDefaultsToValue(t *testing.T) {
	scalar := yamlevents.NewScalar(yamlevents.ScalarProto{Value: "hello"})

	assert.Equal(t, 5, scalar.Length())
	assert.Equal(t, "hello", scalar.Value())
}

func TestScalarLengthCountsBytes(t *testing.T) {
	scalar := yamlevents.NewScalar(yamlevents.ScalarProto{Value: "héllo"})
	assert.Equal(t, 6, scalar.Length())

	tooLong := yamlevents.NewScalar(yamlevents.ScalarProto{Value: "hi", Length: 10})
	assert.Equal(t, 2, tooLong.Length())
}

func TestScalarShortLengthKeepsValue(t *testing.T) {
	scalar := yamlevents.NewScalar(yamlevents.ScalarProto{Value: "hello", Length: 3})
	assert.Equal(t, 3, scalar.Length())
	assert.Equal(t, "hello", scalar.Value())

	out := emitString(t, []yamlevents.Event{
		yamlevents.NewStreamStart(yamlevents.UTF8Encoding),
		yamlevents.NewDocumentStart(yamlevents.DocumentStartProto{Implicit: true}),
		scalar,
		yamlevents.NewDocumentEnd(true),
		yamlevents.NewStreamEnd(),
	}, yamlevents.EmitterOpts{})
	assert.Equal(t, "hello\n", out)
}

func TestScalarImplicitDefaults(t *testing.T) {
	t.Run("untagged scalar without flags becomes implicit", func(t *testing.T) {
		scalar := yamlevents.NewScalar(yamlevents.ScalarProto{Value: "x"})
		assert.True(t, scalar.IsPlainImplicit())
		assert.True(t, scalar.IsQuotedImplicit())
	})

	t.Run("explicit flags are kept", func(t *testing.T) {
		scalar := yamlevents.NewScalar(yamlevents.ScalarProto{Value: "x", QuotedImplicit: true})
		assert.False(t, scalar.IsPlainImplicit())
		assert.True(t, scalar.IsQuotedImplicit())
	})

	t.Run("tagged scalar keeps flags unset", func(t *testing.T) {
		scalar := yamlevents.NewScalar(yamlevents.ScalarProto{Value: "x", Tag: "!t"})
		assert.False(t, scalar.IsPlainImplicit())
		assert.False(t, scalar.IsQuotedImplicit())
	})
}

func TestConstructedEventsHaveZeroPositions(t *testing.T) {
	events := []yamlevents.Event{
		yamlevents.NewStreamStart(yamlevents.UTF8Encoding),
		yamlevents.NewDocumentStart(yamlevents.DocumentStartProto{}),
		yamlevents.NewScalar(yamlevents.ScalarProto{Value: "x"}),
		yamlevents.NewAlias("a"),
		yamlevents.NewSequenceStart(yamlevents.SequenceStartProto{}),
		yamlevents.NewSequenceEnd(),
		yamlevents.NewMappingStart(yamlevents.MappingStartProto{}),
		yamlevents.NewMappingEnd(),
		yamlevents.NewDocumentEnd(true),
		yamlevents.NewStreamEnd(),
	}

	for _, ev := range events {
		assert.Equal(t, filepos.Position{}, ev.Start(), ev.String())
		assert.Equal(t, filepos.Position{}, ev.End(), ev.String())
		assert.True(t, strings.HasPrefix(ev.String(), ev.Kind().String()+"{"), ev.String())
	}
}

func TestEventStrings(t *testing.T) {
	version := yamlevents.Version12

	cases := []struct {
		ev       yamlevents.Event
		expected string
	}{
		{yamlevents.NewStreamStart(yamlevents.UTF8Encoding), "StreamStart{encoding: UTF-8}"},
		{yamlevents.NewStreamEnd(), "StreamEnd{}"},
		{yamlevents.NewDocumentStart(yamlevents.DocumentStartProto{Version: &version}), "DocumentStart{version: 1.2, implicit: false}"},
		{yamlevents.NewDocumentStart(yamlevents.DocumentStartProto{Implicit: true}), "DocumentStart{version: none, implicit: true}"},
		{yamlevents.NewDocumentEnd(false), "DocumentEnd{implicit: false}"},
		{yamlevents.NewAlias("ref"), `Alias{anchor: "ref"}`},
		{
			yamlevents.NewScalar(yamlevents.ScalarProto{Anchor: "a", Value: "x\ny", Style: yamlevents.LiteralStyle}),
			`Scalar{anchor: "a", tag: "", value: "x\ny", length: 3, plainImplicit: true, quotedImplicit: true, style: literal}`,
		},
		{
			yamlevents.NewSequenceStart(yamlevents.SequenceStartProto{Tag: "!list", Style: yamlevents.FlowStyle}),
			`SequenceStart{anchor: "", tag: "!list", implicit: false, style: flow}`,
		},
		{
			yamlevents.NewMappingStart(yamlevents.MappingStartProto{Implicit: true}),
			`MappingStart{anchor: "", tag: "", implicit: true, style: any}`,
		},
		{yamlevents.NewSequenceEnd(), "SequenceEnd{}"},
		{yamlevents.NewMappingEnd(), "MappingEnd{}"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.ev.String())
		assert.Equal(t, tc.expected, tc.ev.String())
	}
}

func TestPropertiesOf(t *testing.T) {
	scalar := yamlevents.NewScalar(yamlevents.ScalarProto{Anchor: "a", Tag: "!t", Value: "x"})
	props, ok := yamlevents.PropertiesOf(scalar)
	require.True(t, ok)
	assert.Equal(t, "a", props.Anchor())
	assert.Equal(t, "!t", props.Tag())

	seq := yamlevents.NewSequenceStart(yamlevents.SequenceStartProto{Anchor: "s"})
	props, ok = yamlevents.PropertiesOf(seq)
	require.True(t, ok)
	assert.Equal(t, "s", props.Anchor())
	assert.Equal(t, "", props.Tag())

	mapping := yamlevents.NewMappingStart(yamlevents.MappingStartProto{Tag: "!m"})
	props, ok = yamlevents.PropertiesOf(mapping)
	require.True(t, ok)
	assert.Equal(t, "!m", props.Tag())

	for _, ev := range []yamlevents.Event{
		yamlevents.NewAlias("a"),
		yamlevents.NewStreamStart(yamlevents.AnyEncoding),
		yamlevents.NewDocumentEnd(true),
		yamlevents.NewMappingEnd(),
	} {
		_, ok := yamlevents.PropertiesOf(ev)
		assert.False(t, ok, ev.String())
	}
}

func TestParsedAndConstructedEventsMatch(t *testing.T) {
	events, err := yamlevents.ReadAll(strings.NewReader("&a !t 'x'\n"))
	require.NoError(t, err)
	require.Len(t, events, 5)

	parsed, ok := events[2].(*yamlevents.Scalar)
	require.True(t, ok)

	constructed := yamlevents.NewScalar(yamlevents.ScalarProto{
		Anchor: "a",
		Tag:    "!t",
		Value:  "x",
		Style:  yamlevents.SingleQuotedStyle,
	})

	assert.Equal(t, constructed.String(), parsed.String())
	assert.Equal(t, constructed.Length(), parsed.Length())
}

func TestReleaseIsIdempotent(t *testing.T) {
	events, err := yamlevents.ReadAll(strings.NewReader("key: value\n"))
	require.NoError(t, err)

	for _, ev := range events {
		ev.Release()
		ev.Release()
	}

	scalar := events[4].(*yamlevents.Scalar)
	assert.Equal(t, "value", scalar.Value())
	assert.Equal(t, uint(5), scalar.Start().Column())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Scalar", yamlevents.ScalarKind.String())
	assert.Equal(t, "MappingEnd", yamlevents.MappingEndKind.String())
	assert.Equal(t, "Kind(42)", yamlevents.Kind(42).String())
}

func TestParseLineBreak(t *testing.T) {
	lb, err := yamlevents.ParseLineBreak("crlf")
	require.NoError(t, err)
	assert.Equal(t, yamlevents.CRLF, lb)

	_, err = yamlevents.ParseLineBreak("nl")
	assert.EqualError(t, err, `unknown line break "nl" (expected lf, cr or crlf)`)
}
