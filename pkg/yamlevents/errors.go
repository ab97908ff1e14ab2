// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"errors"
	"fmt"
	"strings"

	"carvel.dev/yamlevents/pkg/filepos"
	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

var (
	// ErrInvalidArgument is returned for an engine record that holds no event.
	ErrInvalidArgument = errors.New("yamlevents: record holds no event")
	// ErrNotSupported is returned for an engine event type without a variant.
	ErrNotSupported = errors.New("yamlevents: event type not supported")
	// ErrEventConstruction is wrapped by every *EventConstructionError.
	ErrEventConstruction = errors.New("yamlevents: event rejected by the engine")
	// ErrClosed is returned by Parser.Next and Emitter.Emit after Close.
	ErrClosed = errors.New("yamlevents: parser or emitter is closed")
)

// ErrorKind is the stage of the engine that failed.
type ErrorKind int

const (
	NoError ErrorKind = iota
	MemoryError
	ReaderError
	ScannerError
	ParserError
	ComposerError
	WriterError
	EmitterError
	UnknownError
)

var errorKindNames = []string{
	NoError:       "no error",
	MemoryError:   "memory error",
	ReaderError:   "reader error",
	ScannerError:  "scanner error",
	ParserError:   "parser error",
	ComposerError: "composer error",
	WriterError:   "writer error",
	EmitterError:  "emitter error",
	UnknownError:  "unknown error",
}

var errorKindDescriptions = []string{
	NoError:       "no error is produced",
	MemoryError:   "cannot allocate or reallocate a block of memory",
	ReaderError:   "cannot read or decode the input stream",
	ScannerError:  "cannot scan the input stream",
	ParserError:   "cannot parse the input stream",
	ComposerError: "cannot compose a YAML document",
	WriterError:   "cannot write to the output stream",
	EmitterError:  "cannot emit a YAML stream",
	UnknownError:  "unknown error",
}

func (k ErrorKind) valid() bool { return k >= NoError && k <= UnknownError }

func (k ErrorKind) String() string {
	if !k.valid() {
		return errorKindNames[UnknownError]
	}
	return errorKindNames[k]
}

// Description is a fixed human readable explanation of the kind.
func (k ErrorKind) Description() string {
	if !k.valid() {
		return errorKindDescriptions[UnknownError]
	}
	return errorKindDescriptions[k]
}

func errorKindFrom(t libyaml.ErrorType) ErrorKind {
	switch t {
	case libyaml.NoError:
		return NoError
	case libyaml.MemoryError:
		return MemoryError
	case libyaml.ReaderError:
		return ReaderError
	case libyaml.ScannerError:
		return ScannerError
	case libyaml.ParserError:
		return ParserError
	case libyaml.ComposerError:
		return ComposerError
	case libyaml.WriterError:
		return WriterError
	case libyaml.EmitterError:
		return EmitterError
	default:
		return UnknownError
	}
}

// ParseError is a failure reported by the engine while reading input.
type ParseError struct {
	Kind    ErrorKind
	Problem string
	// ProblemMark is where the problem was found. For reader errors only
	// ProblemOffset is meaningful.
	ProblemMark   filepos.Position
	ProblemOffset int
	// ProblemValue is the offending byte or code point of a reader error,
	// -1 when there is none.
	ProblemValue int

	Context     string
	ContextMark filepos.Position
}

func newParseError(parser *libyaml.Parser) *ParseError {
	return &ParseError{
		Kind:          errorKindFrom(libyaml.ParserErrorType(parser)),
		Problem:       libyaml.ParserProblem(parser),
		ProblemMark:   newPosition(libyaml.ParserProblemMark(parser)),
		ProblemOffset: libyaml.ParserProblemOffset(parser),
		ProblemValue:  libyaml.ParserProblemValue(parser),
		Context:       libyaml.ParserContext(parser),
		ContextMark:   newPosition(libyaml.ParserContextMark(parser)),
	}
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")

	switch e.Kind {
	case ReaderError:
		if e.ProblemValue >= 0 {
			fmt.Fprintf(&sb, "offset %d: %s (#%X)", e.ProblemOffset, e.problem(), e.ProblemValue)
		} else {
			fmt.Fprintf(&sb, "offset %d: %s", e.ProblemOffset, e.problem())
		}
	default:
		if e.ProblemMark.IsKnown() {
			fmt.Fprintf(&sb, "line %d: ", e.ProblemMark.Line()+1)
		}
		if e.Context != "" {
			sb.WriteString(e.Context)
			sb.WriteString(": ")
		}
		sb.WriteString(e.problem())
	}
	return sb.String()
}

func (e *ParseError) problem() string {
	if e.Problem == "" {
		return e.Kind.Description()
	}
	return e.Problem
}

// EmitError is a failure reported by the engine while writing output.
type EmitError struct {
	Kind    ErrorKind
	Problem string
}

func newEmitError(emitter *libyaml.Emitter) *EmitError {
	return &EmitError{
		Kind:    errorKindFrom(libyaml.EmitterErrorType(emitter)),
		Problem: libyaml.EmitterProblem(emitter),
	}
}

func (e *EmitError) Error() string {
	problem := e.Problem
	if problem == "" {
		problem = e.Kind.Description()
	}
	return e.Kind.String() + ": " + problem
}

// EventConstructionError means the engine refused to build a record for
// an event, e.g. an Alias without anchor or a value that is not UTF-8.
type EventConstructionError struct {
	Event Event
}

func (e *EventConstructionError) Error() string {
	return fmt.Sprintf("yamlevents: engine rejected %s event: %s", e.Event.Kind(), e.Event)
}

func (e *EventConstructionError) Unwrap() error { return ErrEventConstruction }

// UnexpectedEventError is returned by Consume when the next event is not
// of the requested variant.
type UnexpectedEventError struct {
	Expected Kind
	Actual   Event
}

func (e *UnexpectedEventError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("expected %s event, but stream has ended", e.Expected)
	}
	return fmt.Sprintf("expected %s event, but got %s (%s)",
		e.Expected, e.Actual.Kind(), e.Actual.Start().AsString())
}
