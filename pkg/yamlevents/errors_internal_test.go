// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

func TestErrorKindFromIsTotal(t *testing.T) {
	cases := map[libyaml.ErrorType]ErrorKind{
		libyaml.NoError:       NoError,
		libyaml.MemoryError:   MemoryError,
		libyaml.ReaderError:   ReaderError,
		libyaml.ScannerError:  ScannerError,
		libyaml.ParserError:   ParserError,
		libyaml.ComposerError: ComposerError,
		libyaml.WriterError:   WriterError,
		libyaml.EmitterError:  EmitterError,
		libyaml.ErrorType(99): UnknownError,
		libyaml.ErrorType(-1): UnknownError,
	}

	for engineType, expected := range cases {
		assert.Equal(t, expected, errorKindFrom(engineType), engineType.String())
	}
}

func TestErrorKindDescriptions(t *testing.T) {
	assert.Equal(t, "cannot read or decode the input stream", ReaderError.Description())
	assert.Equal(t, "cannot write to the output stream", WriterError.Description())
	assert.Equal(t, "unknown error", UnknownError.Description())
	assert.Equal(t, "unknown error", ErrorKind(42).Description())
	assert.Equal(t, "scanner error", ScannerError.String())

	for kind := NoError; kind <= UnknownError; kind++ {
		assert.NotEmpty(t, kind.Description())
	}
}

func TestNewEventRejectsEmptyRecord(t *testing.T) {
	var raw libyaml.Event

	ev, err := newEvent(&raw)
	assert.Nil(t, ev)
	assert.Equal(t, ErrInvalidArgument, err)
}

func TestNewEventDispatch(t *testing.T) {
	var raw libyaml.Event
	require.True(t, libyaml.ScalarEventInitialize(&raw, []byte("a"), nil, []byte("v"), true, false, libyaml.FoldedScalarStyle))

	ev, err := newEvent(&raw)
	require.NoError(t, err)

	scalar, ok := ev.(*Scalar)
	require.True(t, ok)
	assert.Equal(t, "a", scalar.Anchor())
	assert.Equal(t, "v", scalar.Value())
	assert.Equal(t, FoldedStyle, scalar.Style())
	assert.True(t, scalar.IsPlainImplicit())
	assert.False(t, scalar.IsQuotedImplicit())

	scalar.Release()
	assert.Nil(t, scalar.raw)
	assert.Equal(t, libyaml.NoEvent, raw.Type())
}

func TestEncodeEventRoundTripsThroughFactory(t *testing.T) {
	version := Version12
	events := []Event{
		NewStreamStart(UTF16BEEncoding),
		NewDocumentStart(DocumentStartProto{Version: &version, Implicit: false}),
		NewMappingStart(MappingStartProto{Anchor: "m", Tag: "!m", Style: FlowStyle}),
		NewScalar(ScalarProto{Tag: "!s", Value: "v", Style: SingleQuotedStyle, QuotedImplicit: true}),
		NewSequenceStart(SequenceStartProto{Implicit: true, Style: BlockStyle}),
		NewAlias("m"),
		NewSequenceEnd(),
		NewMappingEnd(),
		NewDocumentEnd(false),
		NewStreamEnd(),
	}

	for _, ev := range events {
		var raw libyaml.Event
		require.NoError(t, encodeEvent(ev, &raw), ev.String())

		decoded, err := newEvent(&raw)
		require.NoError(t, err)

		expected := ev.String()
		if ev.Kind() == StreamStartKind {
			expected = "StreamStart{encoding: UTF-8}"
		}
		assert.Equal(t, expected, decoded.String())
	}
}

func TestEncodeNilEvent(t *testing.T) {
	var raw libyaml.Event
	assert.Equal(t, ErrInvalidArgument, encodeEvent(nil, &raw))
}

func TestEncodeVersionOutOfRange(t *testing.T) {
	version, err := NewVersion(300, 1)
	require.NoError(t, err)

	var raw libyaml.Event
	err = encodeEvent(NewDocumentStart(DocumentStartProto{Version: &version}), &raw)
	assert.True(t, errors.Is(err, ErrEventConstruction))
}

func TestParseErrorMessages(t *testing.T) {
	readerErr := &ParseError{Kind: ReaderError, Problem: "invalid leading UTF-8 octet", ProblemOffset: 3, ProblemValue: 0xff}
	assert.Equal(t, "reader error: offset 3: invalid leading UTF-8 octet (#FF)", readerErr.Error())

	noValue := &ParseError{Kind: ReaderError, Problem: "input error: boom", ProblemValue: -1}
	assert.Equal(t, "reader error: offset 0: input error: boom", noValue.Error())

	withoutProblem := &ParseError{Kind: MemoryError}
	assert.Equal(t, "memory error: cannot allocate or reallocate a block of memory", withoutProblem.Error())

	emitErr := &EmitError{Kind: EmitterError}
	assert.Equal(t, "emitter error: cannot emit a YAML stream", emitErr.Error())
}
