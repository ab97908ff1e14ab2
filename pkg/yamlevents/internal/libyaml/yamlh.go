// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"fmt"
	"io"
)

// VersionDirective holds the numbers of a %YAML directive.
type VersionDirective struct {
	major int8
	minor int8
}

// TagDirective holds a %TAG handle and its prefix.
type TagDirective struct {
	handle []byte
	prefix []byte
}

// Encoding is the character encoding of a stream.
type Encoding int

const (
	// AnyEncoding lets the parser detect the encoding from the BOM.
	AnyEncoding Encoding = iota

	UTF8Encoding
	UTF16LEEncoding
	UTF16BEEncoding
)

var encodingStrings = []string{
	AnyEncoding:     "any",
	UTF8Encoding:    "utf-8",
	UTF16LEEncoding: "utf-16le",
	UTF16BEEncoding: "utf-16be",
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingStrings) {
		return fmt.Sprintf("unknown encoding %d", int(e))
	}
	return encodingStrings[e]
}

// LineBreak selects the line break written by the emitter.
type LineBreak int

const (
	// AnyBreak lets the emitter choose (LN).
	AnyBreak LineBreak = iota

	CRBreak
	LNBreak
	CRLNBreak
)

// ErrorType classifies the failure recorded on a parser or emitter.
type ErrorType int

const (
	NoError ErrorType = iota

	MemoryError
	ReaderError
	ScannerError
	ParserError
	ComposerError
	WriterError
	EmitterError
)

var errorTypeStrings = []string{
	NoError:       "no error",
	MemoryError:   "memory error",
	ReaderError:   "reader error",
	ScannerError:  "scanner error",
	ParserError:   "parser error",
	ComposerError: "composer error",
	WriterError:   "writer error",
	EmitterError:  "emitter error",
}

func (e ErrorType) String() string {
	if e < 0 || int(e) >= len(errorTypeStrings) {
		return fmt.Sprintf("unknown error %d", int(e))
	}
	return errorTypeStrings[e]
}

// Mark is a zero-based position in the input stream.
type Mark struct {
	index  int
	line   int
	column int
}

func (m Mark) Index() int  { return m.index }
func (m Mark) Line() int   { return m.line }
func (m Mark) Column() int { return m.column }

// Style is the raw style byte stored on an event.
type Style int8

type ScalarStyle Style

const (
	// AnyScalarStyle lets the emitter choose the style.
	AnyScalarStyle ScalarStyle = iota

	PlainScalarStyle
	SingleQuotedScalarStyle
	DoubleQuotedScalarStyle
	LiteralScalarStyle
	FoldedScalarStyle
)

type SequenceStyle Style

const (
	AnySequenceStyle SequenceStyle = iota

	BlockSequenceStyle
	FlowSequenceStyle
)

type MappingStyle Style

const (
	AnyMappingStyle MappingStyle = iota

	BlockMappingStyle
	FlowMappingStyle
)

// TokenType identifies a scanner token.
type TokenType int

const (
	NoToken TokenType = iota

	StreamStartToken
	StreamEndToken

	VersionDirectiveToken
	TagDirectiveToken
	DocumentStartToken
	DocumentEndToken

	BlockSequenceStartToken
	BlockMappingStartToken
	BlockEndToken

	FlowSequenceStartToken
	FlowSequenceEndToken
	FlowMappingStartToken
	FlowMappingEndToken

	BlockEntryToken
	FlowEntryToken
	KeyToken
	ValueToken

	AliasToken
	AnchorToken
	TagToken
	ScalarToken
)

var tokenStrings = []string{
	NoToken:                 "none",
	StreamStartToken:        "stream start",
	StreamEndToken:          "stream end",
	VersionDirectiveToken:   "version directive",
	TagDirectiveToken:       "tag directive",
	DocumentStartToken:      "document start",
	DocumentEndToken:        "document end",
	BlockSequenceStartToken: "block sequence start",
	BlockMappingStartToken:  "block mapping start",
	BlockEndToken:           "block end",
	FlowSequenceStartToken:  "flow sequence start",
	FlowSequenceEndToken:    "flow sequence end",
	FlowMappingStartToken:   "flow mapping start",
	FlowMappingEndToken:     "flow mapping end",
	BlockEntryToken:         "block entry",
	FlowEntryToken:          "flow entry",
	KeyToken:                "key",
	ValueToken:              "value",
	AliasToken:              "alias",
	AnchorToken:             "anchor",
	TagToken:                "tag",
	ScalarToken:             "scalar",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenStrings) {
		return fmt.Sprintf("unknown token %d", int(tt))
	}
	return tokenStrings[tt]
}

// Token is a single scanner token.
type Token struct {
	typ TokenType

	startMark, endMark Mark

	// StreamStartToken only.
	encoding Encoding

	// Alias, anchor and scalar value, or tag (directive) handle.
	value []byte

	// TagToken suffix.
	suffix []byte

	// TagDirectiveToken prefix.
	prefix []byte

	// ScalarToken only.
	style ScalarStyle

	// VersionDirectiveToken only.
	major, minor int8
}

func (t *Token) String() string {
	return fmt.Sprintf("Token(typ=%s, value=%s)", t.typ, string(t.value))
}

// EventType identifies the variant held by an Event record.
type EventType int8

const (
	NoEvent EventType = iota

	StreamStartEvent
	StreamEndEvent
	DocumentStartEvent
	DocumentEndEvent
	AliasEvent
	ScalarEvent
	SequenceStartEvent
	SequenceEndEvent
	MappingStartEvent
	MappingEndEvent
)

var eventStrings = []string{
	NoEvent:            "none",
	StreamStartEvent:   "stream start",
	StreamEndEvent:     "stream end",
	DocumentStartEvent: "document start",
	DocumentEndEvent:   "document end",
	AliasEvent:         "alias",
	ScalarEvent:        "scalar",
	SequenceStartEvent: "sequence start",
	SequenceEndEvent:   "sequence end",
	MappingStartEvent:  "mapping start",
	MappingEndEvent:    "mapping end",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventStrings) {
		return fmt.Sprintf("unknown event %d", e)
	}
	return eventStrings[e]
}

// Event is the record filled in by ParserParse and consumed by EmitterEmit.
// Which fields are meaningful depends on typ.
type Event struct {
	typ EventType

	startMark, endMark Mark

	// StreamStartEvent only.
	encoding Encoding

	// DocumentStartEvent only.
	versionDirective *VersionDirective
	tagDirectives    []TagDirective

	// Scalar, sequence start, mapping start and alias.
	anchor []byte

	// Scalar, sequence start and mapping start.
	tag []byte

	// ScalarEvent only.
	value []byte

	// Document start/end indicator implicit, or tag optional for plain style.
	implicit bool

	// ScalarEvent only: tag optional for non-plain styles.
	quotedImplicit bool

	style Style
}

func (e *Event) scalarStyle() ScalarStyle     { return ScalarStyle(e.style) }
func (e *Event) sequenceStyle() SequenceStyle { return SequenceStyle(e.style) }
func (e *Event) mappingStyle() MappingStyle   { return MappingStyle(e.style) }

// ReadHandler fills buffer from the parser's source. It returns io.EOF
// together with n == 0 once the source is exhausted.
type ReadHandler func(parser *Parser, buffer []byte) (n int, err error)

type simpleKeyState struct {
	possible    bool
	required    bool
	tokenNumber int
	mark        Mark
}

type parserState int

const (
	parseStreamStartState parserState = iota

	parseImplicitDocumentStartState
	parseDocumentStartState
	parseDocumentContentState
	parseDocumentEndState
	parseBlockNodeState
	parseBlockNodeOrIndentlessSequenceState
	parseFlowNodeState
	parseBlockSequenceFirstEntryState
	parseBlockSequenceEntryState
	parseIndentlessSequenceEntryState
	parseBlockMappingFirstKeyState
	parseBlockMappingKeyState
	parseBlockMappingValueState
	parseFlowSequenceFirstEntryState
	parseFlowSequenceEntryState
	parseFlowSequenceEntryMappingKeyState
	parseFlowSequenceEntryMappingValueState
	parseFlowSequenceEntryMappingEndState
	parseFlowMappingFirstKeyState
	parseFlowMappingKeyState
	parseFlowMappingValueState
	parseFlowMappingEmptyValueState
	parseEndState
)

// Parser turns a byte stream into events. All members are internal;
// use the Parser* functions in apic.go.
type Parser struct {
	error ErrorType

	problem string

	// The byte about which the problem occurred.
	problemOffset int
	problemValue  int
	problemMark   Mark

	context     string
	contextMark Mark

	// Reader

	readHandler ReadHandler

	inputReader io.Reader
	input       []byte
	inputPos    int

	eof bool

	buffer    []byte
	bufferPos int

	unread int

	rawBuffer    []byte
	rawBufferPos int

	encoding Encoding

	offset int
	mark   Mark

	// Scanner

	streamStartProduced bool
	streamEndProduced   bool

	flowLevel int

	tokens         []Token
	tokensHead     int
	tokensParsed   int
	tokenAvailable bool

	indent  int
	indents []int

	simpleKeyAllowed bool
	simpleKeys       []simpleKeyState

	// Parser

	state         parserState
	states        []parserState
	marks         []Mark
	tagDirectives []TagDirective
}

// WriteHandler flushes buffer to the emitter's output.
type WriteHandler func(emitter *Emitter, buffer []byte) error

type emitterState int

const (
	emitStreamStartState emitterState = iota

	emitFirstDocumentStartState
	emitDocumentStartState
	emitDocumentContentState
	emitDocumentEndState
	emitFlowSequenceFirstItemState
	emitFlowSequenceItemState
	emitFlowMappingFirstKeyState
	emitFlowMappingKeyState
	emitFlowMappingSimpleValueState
	emitFlowMappingValueState
	emitBlockSequenceFirstItemState
	emitBlockSequenceItemState
	emitBlockMappingFirstKeyState
	emitBlockMappingKeyState
	emitBlockMappingSimpleValueState
	emitBlockMappingValueState
	emitEndState
)

// Emitter turns events into bytes. All members are internal;
// use the Emitter* functions in apic.go.
type Emitter struct {
	error   ErrorType
	problem string

	// Writer

	writeHandler WriteHandler

	outputBuffer *[]byte
	outputWriter io.Writer

	buffer    []byte
	bufferPos int

	encoding Encoding

	// Emitter

	canonical  bool
	bestIndent int
	bestWidth  int
	unicode    bool
	lineBreak  LineBreak

	state  emitterState
	states []emitterState

	events     []Event
	eventsHead int

	indents []int

	tagDirectives []TagDirective

	indent int

	flowLevel int

	rootContext      bool
	sequenceContext  bool
	mappingContext   bool
	simpleKeyContext bool

	line       int
	column     int
	whitespace bool
	indention  bool // last character was one of ' ', '-', '?', ':'
	openEnded  int  // 1: "..." needed before directives, 2: also before stream end

	anchorData struct {
		anchor []byte
		alias  bool
	}

	tagData struct {
		handle []byte
		suffix []byte
	}

	scalarData struct {
		value               []byte
		multiline           bool
		flowPlainAllowed    bool
		blockPlainAllowed   bool
		singleQuotedAllowed bool
		blockAllowed        bool
		style               ScalarStyle
	}
}
