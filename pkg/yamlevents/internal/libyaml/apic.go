// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"io"
	"unicode/utf8"
)

func insertToken(parser *Parser, pos int, token *Token) {
	// Compact the queue when it is full and its head has moved.
	if parser.tokensHead > 0 && len(parser.tokens) == cap(parser.tokens) {
		if parser.tokensHead != len(parser.tokens) {
			copy(parser.tokens, parser.tokens[parser.tokensHead:])
		}
		parser.tokens = parser.tokens[:len(parser.tokens)-parser.tokensHead]
		parser.tokensHead = 0
	}
	parser.tokens = append(parser.tokens, *token)
	if pos < 0 {
		return
	}
	copy(parser.tokens[parser.tokensHead+pos+1:], parser.tokens[parser.tokensHead+pos:])
	parser.tokens[parser.tokensHead+pos] = *token
}

// ParserInitialize resets parser to a fresh state. It always succeeds.
func ParserInitialize(parser *Parser) bool {
	*parser = Parser{
		rawBuffer: make([]byte, 0, inputRawBufferSize),
		buffer:    make([]byte, 0, inputBufferSize),
	}
	return true
}

// ParserDelete releases everything held by parser.
func ParserDelete(parser *Parser) {
	*parser = Parser{}
}

func stringReadHandler(parser *Parser, buffer []byte) (n int, err error) {
	if parser.inputPos == len(parser.input) {
		return 0, io.EOF
	}
	n = copy(buffer, parser.input[parser.inputPos:])
	parser.inputPos += n
	return n, nil
}

func readerReadHandler(parser *Parser, buffer []byte) (n int, err error) {
	return parser.inputReader.Read(buffer)
}

// ParserSetInputString makes parser read from input.
func ParserSetInputString(parser *Parser, input []byte) {
	if parser.readHandler != nil {
		panic("must set the input source only once")
	}
	parser.readHandler = stringReadHandler
	parser.input = input
	parser.inputPos = 0
}

// ParserSetInputReader makes parser read from r.
func ParserSetInputReader(parser *Parser, r io.Reader) {
	if parser.readHandler != nil {
		panic("must set the input source only once")
	}
	parser.readHandler = readerReadHandler
	parser.inputReader = r
}

// ParserSetEncoding fixes the input encoding instead of detecting it.
func ParserSetEncoding(parser *Parser, encoding Encoding) {
	if parser.encoding != AnyEncoding {
		panic("must set the encoding only once")
	}
	parser.encoding = encoding
}

// ParserErrorType returns the failure class recorded by the last ParserParse.
func ParserErrorType(parser *Parser) ErrorType { return parser.error }

func ParserProblem(parser *Parser) string    { return parser.problem }
func ParserProblemMark(parser *Parser) Mark  { return parser.problemMark }
func ParserProblemOffset(parser *Parser) int { return parser.problemOffset }
func ParserProblemValue(parser *Parser) int  { return parser.problemValue }
func ParserContext(parser *Parser) string    { return parser.context }
func ParserContextMark(parser *Parser) Mark  { return parser.contextMark }
func ParserCurrentMark(parser *Parser) Mark  { return parser.mark }
func ParserEncoding(parser *Parser) Encoding { return parser.encoding }

// EmitterInitialize resets emitter to a fresh state. It always succeeds.
func EmitterInitialize(emitter *Emitter) bool {
	*emitter = Emitter{
		buffer: make([]byte, outputBufferSize),
		states: make([]emitterState, 0, initialStackSize),
		events: make([]Event, 0, initialQueueSize),
	}
	return true
}

// EmitterDelete releases everything held by emitter.
func EmitterDelete(emitter *Emitter) {
	*emitter = Emitter{}
}

func stringWriteHandler(emitter *Emitter, buffer []byte) error {
	*emitter.outputBuffer = append(*emitter.outputBuffer, buffer...)
	return nil
}

func writerWriteHandler(emitter *Emitter, buffer []byte) error {
	_, err := emitter.outputWriter.Write(buffer)
	return err
}

// EmitterSetOutputString makes emitter append to *out.
func EmitterSetOutputString(emitter *Emitter, out *[]byte) {
	if emitter.writeHandler != nil {
		panic("must set the output target only once")
	}
	emitter.writeHandler = stringWriteHandler
	emitter.outputBuffer = out
	*emitter.outputBuffer = (*emitter.outputBuffer)[:0]
}

// EmitterSetOutputWriter makes emitter write to w.
func EmitterSetOutputWriter(emitter *Emitter, w io.Writer) {
	if emitter.writeHandler != nil {
		panic("must set the output target only once")
	}
	emitter.writeHandler = writerWriteHandler
	emitter.outputWriter = w
}

func EmitterSetEncoding(emitter *Emitter, encoding Encoding) {
	if emitter.encoding != AnyEncoding {
		panic("must set the output encoding only once")
	}
	emitter.encoding = encoding
}

func EmitterSetCanonical(emitter *Emitter, canonical bool) {
	emitter.canonical = canonical
}

// EmitterSetIndent falls back to 2 outside of 2..9.
func EmitterSetIndent(emitter *Emitter, indent int) {
	if indent < 2 || indent > 9 {
		indent = 2
	}
	emitter.bestIndent = indent
}

// EmitterSetWidth takes a negative width as unlimited and zero as the
// default of 80 columns.
func EmitterSetWidth(emitter *Emitter, width int) {
	if width < 0 {
		width = -1
	}
	emitter.bestWidth = width
}

func EmitterSetUnicode(emitter *Emitter, unicode bool) {
	emitter.unicode = unicode
}

func EmitterSetBreak(emitter *Emitter, lineBreak LineBreak) {
	emitter.lineBreak = lineBreak
}

func EmitterErrorType(emitter *Emitter) ErrorType { return emitter.error }
func EmitterProblem(emitter *Emitter) string      { return emitter.problem }

// Event initializers. Each one fills event and reports whether the
// arguments were acceptable.

func validUTF8(values ...[]byte) bool {
	for _, v := range values {
		if !utf8.Valid(v) {
			return false
		}
	}
	return true
}

// validAnchor accepts an absent anchor or one the emitter can write.
func validAnchor(anchor []byte) bool {
	if !utf8.Valid(anchor) {
		return false
	}
	for i := 0; i < len(anchor); i += width(anchor[i]) {
		if !isAlpha(anchor, i) {
			return false
		}
	}
	return true
}

func StreamStartEventInitialize(event *Event, encoding Encoding) bool {
	*event = Event{
		typ:      StreamStartEvent,
		encoding: encoding,
	}
	return true
}

func StreamEndEventInitialize(event *Event) bool {
	*event = Event{
		typ: StreamEndEvent,
	}
	return true
}

// DocumentStartEventInitialize accepts a nil versionDirective.
func DocumentStartEventInitialize(event *Event, versionDirective *VersionDirective,
	tagDirectives []TagDirective, implicit bool) bool {

	for _, td := range tagDirectives {
		if len(td.handle) == 0 || len(td.prefix) == 0 || !validUTF8(td.handle, td.prefix) {
			return false
		}
	}
	*event = Event{
		typ:              DocumentStartEvent,
		versionDirective: versionDirective,
		tagDirectives:    tagDirectives,
		implicit:         implicit,
	}
	return true
}

func DocumentEndEventInitialize(event *Event, implicit bool) bool {
	*event = Event{
		typ:      DocumentEndEvent,
		implicit: implicit,
	}
	return true
}

// AliasEventInitialize rejects an empty or malformed anchor.
func AliasEventInitialize(event *Event, anchor []byte) bool {
	if len(anchor) == 0 || !validAnchor(anchor) {
		return false
	}
	*event = Event{
		typ:    AliasEvent,
		anchor: anchor,
	}
	return true
}

func ScalarEventInitialize(event *Event, anchor, tag, value []byte,
	plainImplicit, quotedImplicit bool, style ScalarStyle) bool {

	if !validAnchor(anchor) || !validUTF8(tag, value) {
		return false
	}
	*event = Event{
		typ:            ScalarEvent,
		anchor:         anchor,
		tag:            tag,
		value:          value,
		implicit:       plainImplicit,
		quotedImplicit: quotedImplicit,
		style:          Style(style),
	}
	return true
}

func SequenceStartEventInitialize(event *Event, anchor, tag []byte, implicit bool, style SequenceStyle) bool {
	if !validAnchor(anchor) || !validUTF8(tag) {
		return false
	}
	*event = Event{
		typ:      SequenceStartEvent,
		anchor:   anchor,
		tag:      tag,
		implicit: implicit,
		style:    Style(style),
	}
	return true
}

func SequenceEndEventInitialize(event *Event) bool {
	*event = Event{
		typ: SequenceEndEvent,
	}
	return true
}

func MappingStartEventInitialize(event *Event, anchor, tag []byte, implicit bool, style MappingStyle) bool {
	if !validAnchor(anchor) || !validUTF8(tag) {
		return false
	}
	*event = Event{
		typ:      MappingStartEvent,
		anchor:   anchor,
		tag:      tag,
		implicit: implicit,
		style:    Style(style),
	}
	return true
}

func MappingEndEventInitialize(event *Event) bool {
	*event = Event{
		typ: MappingEndEvent,
	}
	return true
}

// EventDelete clears event. Byte slices handed out by the accessors
// stay valid since the record only drops its references.
func EventDelete(event *Event) {
	*event = Event{}
}

// NewVersionDirective builds the directive carried by a document start.
func NewVersionDirective(major, minor int8) *VersionDirective {
	return &VersionDirective{major: major, minor: minor}
}

func (v *VersionDirective) Major() int8 { return v.major }
func (v *VersionDirective) Minor() int8 { return v.minor }

// NewTagDirective builds a %TAG directive.
func NewTagDirective(handle, prefix []byte) TagDirective {
	return TagDirective{handle: handle, prefix: prefix}
}

func (t TagDirective) Handle() []byte { return t.handle }
func (t TagDirective) Prefix() []byte { return t.prefix }

// Event accessors.

func (e *Event) Type() EventType                     { return e.typ }
func (e *Event) StartMark() Mark                     { return e.startMark }
func (e *Event) EndMark() Mark                       { return e.endMark }
func (e *Event) Encoding() Encoding                  { return e.encoding }
func (e *Event) VersionDirective() *VersionDirective { return e.versionDirective }
func (e *Event) TagDirectives() []TagDirective       { return e.tagDirectives }
func (e *Event) Anchor() []byte                      { return e.anchor }
func (e *Event) Tag() []byte                         { return e.tag }
func (e *Event) Value() []byte                       { return e.value }
func (e *Event) Implicit() bool                      { return e.implicit }
func (e *Event) QuotedImplicit() bool                { return e.quotedImplicit }
func (e *Event) ScalarStyle() ScalarStyle            { return e.scalarStyle() }
func (e *Event) SequenceStyle() SequenceStyle        { return e.sequenceStyle() }
func (e *Event) MappingStyle() MappingStyle          { return e.mappingStyle() }
