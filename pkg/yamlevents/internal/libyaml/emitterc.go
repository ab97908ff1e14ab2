// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
	"fmt"
)

// Flush the buffer if needed.
func flush(emitter *Emitter) bool {
	if emitter.bufferPos+5 >= len(emitter.buffer) {
		return EmitterFlush(emitter)
	}
	return true
}

// Put a character to the output buffer.
func put(emitter *Emitter, value byte) bool {
	if emitter.bufferPos+5 >= len(emitter.buffer) && !EmitterFlush(emitter) {
		return false
	}
	emitter.buffer[emitter.bufferPos] = value
	emitter.bufferPos++
	emitter.column++
	return true
}

// Put a line break to the output buffer.
func putBreak(emitter *Emitter) bool {
	if emitter.bufferPos+5 >= len(emitter.buffer) && !EmitterFlush(emitter) {
		return false
	}
	switch emitter.lineBreak {
	case CRBreak:
		emitter.buffer[emitter.bufferPos] = '\r'
		emitter.bufferPos++
	case LNBreak:
		emitter.buffer[emitter.bufferPos] = '\n'
		emitter.bufferPos++
	case CRLNBreak:
		emitter.buffer[emitter.bufferPos+0] = '\r'
		emitter.buffer[emitter.bufferPos+1] = '\n'
		emitter.bufferPos += 2
	default:
		panic("unknown line break setting")
	}
	emitter.column = 0
	emitter.line++
	return true
}

// Copy a character from a string into buffer.
func write(emitter *Emitter, s []byte, i *int) bool {
	if emitter.bufferPos+5 >= len(emitter.buffer) && !EmitterFlush(emitter) {
		return false
	}
	p := emitter.bufferPos
	w := width(s[*i])
	switch w {
	case 4:
		emitter.buffer[p+3] = s[*i+3]
		fallthrough
	case 3:
		emitter.buffer[p+2] = s[*i+2]
		fallthrough
	case 2:
		emitter.buffer[p+1] = s[*i+1]
		fallthrough
	case 1:
		emitter.buffer[p+0] = s[*i+0]
	default:
		panic("unknown character width")
	}
	emitter.column++
	emitter.bufferPos += w
	*i += w
	return true
}

// Write a whole string into buffer.
func writeAll(emitter *Emitter, s []byte) bool {
	for i := 0; i < len(s); {
		if !write(emitter, s, &i) {
			return false
		}
	}
	return true
}

// Copy a line break character from a string into buffer.
func writeBreak(emitter *Emitter, s []byte, i *int) bool {
	if s[*i] == '\n' {
		if !putBreak(emitter) {
			return false
		}
		*i++
	} else {
		if !write(emitter, s, i) {
			return false
		}
		emitter.column = 0
		emitter.line++
	}
	return true
}

// Set an emitter error and return false.
func emitterSetEmitterError(emitter *Emitter, problem string) bool {
	emitter.error = EmitterError
	emitter.problem = problem
	return false
}

// Emit an event.
func EmitterEmit(emitter *Emitter, event *Event) bool {
	emitter.events = append(emitter.events, *event)
	for !emitterNeedMoreEvents(emitter) {
		event := &emitter.events[emitter.eventsHead]
		if !emitterAnalyzeEvent(emitter, event) {
			return false
		}
		if !emitterStateMachine(emitter, event) {
			return false
		}
		EventDelete(event)
		emitter.eventsHead++
	}
	return true
}

// Check if we need to accumulate more events before emitting.
//
// We accumulate extra
//  - 1 event for DOCUMENT-START
//  - 2 events for SEQUENCE-START
//  - 3 events for MAPPING-START
//
func emitterNeedMoreEvents(emitter *Emitter) bool {
	if emitter.eventsHead == len(emitter.events) {
		return true
	}
	var accumulate int
	switch emitter.events[emitter.eventsHead].typ {
	case DocumentStartEvent:
		accumulate = 1
		break
	case SequenceStartEvent:
		accumulate = 2
		break
	case MappingStartEvent:
		accumulate = 3
		break
	default:
		return false
	}
	if len(emitter.events)-emitter.eventsHead > accumulate {
		return false
	}
	var level int
	for i := emitter.eventsHead; i < len(emitter.events); i++ {
		switch emitter.events[i].typ {
		case StreamStartEvent, DocumentStartEvent, SequenceStartEvent, MappingStartEvent:
			level++
		case StreamEndEvent, DocumentEndEvent, SequenceEndEvent, MappingEndEvent:
			level--
		}
		if level == 0 {
			return false
		}
	}
	return true
}

// Append a directive to the directives stack.
func emitterAppendTagDirective(emitter *Emitter, value *TagDirective, allowDuplicates bool) bool {
	for i := 0; i < len(emitter.tagDirectives); i++ {
		if bytes.Equal(value.handle, emitter.tagDirectives[i].handle) {
			if allowDuplicates {
				return true
			}
			return emitterSetEmitterError(emitter, "duplicate %TAG directive")
		}
	}

	tagCopy := TagDirective{
		handle: make([]byte, len(value.handle)),
		prefix: make([]byte, len(value.prefix)),
	}
	copy(tagCopy.handle, value.handle)
	copy(tagCopy.prefix, value.prefix)
	emitter.tagDirectives = append(emitter.tagDirectives, tagCopy)
	return true
}

// Increase the indentation level.
func emitterIncreaseIndent(emitter *Emitter, flow, indentless bool) bool {
	emitter.indents = append(emitter.indents, emitter.indent)
	if emitter.indent < 0 {
		if flow {
			emitter.indent = emitter.bestIndent
		} else {
			emitter.indent = 0
		}
	} else if !indentless {
		emitter.indent += emitter.bestIndent
	}
	return true
}

// State dispatcher.
func emitterStateMachine(emitter *Emitter, event *Event) bool {
	switch emitter.state {
	default:
	case emitStreamStartState:
		return emitterEmitStreamStart(emitter, event)

	case emitFirstDocumentStartState:
		return emitterEmitDocumentStart(emitter, event, true)

	case emitDocumentStartState:
		return emitterEmitDocumentStart(emitter, event, false)

	case emitDocumentContentState:
		return emitterEmitDocumentContent(emitter, event)

	case emitDocumentEndState:
		return emitterEmitDocumentEnd(emitter, event)

	case emitFlowSequenceFirstItemState:
		return emitterEmitFlowSequenceItem(emitter, event, true)

	case emitFlowSequenceItemState:
		return emitterEmitFlowSequenceItem(emitter, event, false)

	case emitFlowMappingFirstKeyState:
		return emitterEmitFlowMappingKey(emitter, event, true)

	case emitFlowMappingKeyState:
		return emitterEmitFlowMappingKey(emitter, event, false)

	case emitFlowMappingSimpleValueState:
		return emitterEmitFlowMappingValue(emitter, event, true)

	case emitFlowMappingValueState:
		return emitterEmitFlowMappingValue(emitter, event, false)

	case emitBlockSequenceFirstItemState:
		return emitterEmitBlockSequenceItem(emitter, event, true)

	case emitBlockSequenceItemState:
		return emitterEmitBlockSequenceItem(emitter, event, false)

	case emitBlockMappingFirstKeyState:
		return emitterEmitBlockMappingKey(emitter, event, true)

	case emitBlockMappingKeyState:
		return emitterEmitBlockMappingKey(emitter, event, false)

	case emitBlockMappingSimpleValueState:
		return emitterEmitBlockMappingValue(emitter, event, true)

	case emitBlockMappingValueState:
		return emitterEmitBlockMappingValue(emitter, event, false)

	case emitEndState:
		return emitterSetEmitterError(emitter, "expected nothing after STREAM-END")
	}
	panic("invalid emitter state")
}

// Expect STREAM-START.
func emitterEmitStreamStart(emitter *Emitter, event *Event) bool {
	if event.typ != StreamStartEvent {
		return emitterSetEmitterError(emitter, "expected STREAM-START")
	}
	if emitter.encoding == AnyEncoding {
		emitter.encoding = event.encoding
		if emitter.encoding == AnyEncoding {
			emitter.encoding = UTF8Encoding
		}
	}
	if emitter.bestIndent < 2 || emitter.bestIndent > 9 {
		emitter.bestIndent = 2
	}
	if emitter.bestWidth >= 0 && emitter.bestWidth <= emitter.bestIndent*2 {
		emitter.bestWidth = 80
	}
	if emitter.bestWidth < 0 {
		emitter.bestWidth = 1<<31 - 1
	}
	if emitter.lineBreak == AnyBreak {
		emitter.lineBreak = LNBreak
	}

	emitter.indent = -1
	emitter.line = 0
	emitter.column = 0
	emitter.whitespace = true
	emitter.indention = true

	if emitter.encoding != UTF8Encoding {
		if !emitterWriteBom(emitter) {
			return false
		}
	}
	emitter.state = emitFirstDocumentStartState
	return true
}

// Expect DOCUMENT-START or STREAM-END.
func emitterEmitDocumentStart(emitter *Emitter, event *Event, first bool) bool {
	if event.typ == DocumentStartEvent {
		if event.versionDirective != nil {
			if !emitterAnalyzeVersionDirective(emitter, event.versionDirective) {
				return false
			}
		}

		for i := 0; i < len(event.tagDirectives); i++ {
			tagDirective := &event.tagDirectives[i]
			if !emitterAnalyzeTagDirective(emitter, tagDirective) {
				return false
			}
			if !emitterAppendTagDirective(emitter, tagDirective, false) {
				return false
			}
		}

		for i := 0; i < len(defaultTagDirectives); i++ {
			tagDirective := &defaultTagDirectives[i]
			if !emitterAppendTagDirective(emitter, tagDirective, true) {
				return false
			}
		}

		implicit := event.implicit
		if !first || emitter.canonical {
			implicit = false
		}

		if emitter.openEnded != 0 && (event.versionDirective != nil || len(event.tagDirectives) > 0) {
			if !emitterWriteIndicator(emitter, []byte("..."), true, false, false) {
				return false
			}
			if !emitterWriteIndent(emitter) {
				return false
			}
		}

		if event.versionDirective != nil {
			implicit = false
			if !emitterWriteIndicator(emitter, []byte("%YAML"), true, false, false) {
				return false
			}
			version := []byte{'0' + byte(event.versionDirective.major), '.', '0' + byte(event.versionDirective.minor)}
			if !emitterWriteIndicator(emitter, version, true, false, false) {
				return false
			}
			if !emitterWriteIndent(emitter) {
				return false
			}
		}

		if len(event.tagDirectives) > 0 {
			implicit = false
			for i := 0; i < len(event.tagDirectives); i++ {
				tagDirective := &event.tagDirectives[i]
				if !emitterWriteIndicator(emitter, []byte("%TAG"), true, false, false) {
					return false
				}
				if !emitterWriteTagHandle(emitter, tagDirective.handle) {
					return false
				}
				if !emitterWriteTagContent(emitter, tagDirective.prefix, true) {
					return false
				}
				if !emitterWriteIndent(emitter) {
					return false
				}
			}
		}

		if emitterCheckEmptyDocument(emitter) {
			implicit = false
		}
		if !implicit {
			if !emitterWriteIndent(emitter) {
				return false
			}
			if !emitterWriteIndicator(emitter, []byte("---"), true, false, false) {
				return false
			}
			if emitter.canonical {
				if !emitterWriteIndent(emitter) {
					return false
				}
			}
		}

		emitter.state = emitDocumentContentState
		return true
	}

	if event.typ == StreamEndEvent {
		if emitter.openEnded == 2 {
			if !emitterWriteIndicator(emitter, []byte("..."), true, false, false) {
				return false
			}
			if !emitterWriteIndent(emitter) {
				return false
			}
		}
		if !EmitterFlush(emitter) {
			return false
		}
		emitter.state = emitEndState
		return true
	}

	return emitterSetEmitterError(emitter, "expected DOCUMENT-START or STREAM-END")
}

// Expect the root node.
func emitterEmitDocumentContent(emitter *Emitter, event *Event) bool {
	emitter.states = append(emitter.states, emitDocumentEndState)
	return emitterEmitNode(emitter, event, true, false, false, false)
}

// Expect DOCUMENT-END.
func emitterEmitDocumentEnd(emitter *Emitter, event *Event) bool {
	if event.typ != DocumentEndEvent {
		return emitterSetEmitterError(emitter, "expected DOCUMENT-END")
	}
	if !emitterWriteIndent(emitter) {
		return false
	}
	if !event.implicit {
		if !emitterWriteIndicator(emitter, []byte("..."), true, false, false) {
			return false
		}
		if !emitterWriteIndent(emitter) {
			return false
		}
	} else if emitter.openEnded == 0 {
		emitter.openEnded = 1
	}
	if !EmitterFlush(emitter) {
		return false
	}
	emitter.state = emitDocumentStartState
	emitter.tagDirectives = emitter.tagDirectives[:0]
	return true
}

// Expect a flow item node.
func emitterEmitFlowSequenceItem(emitter *Emitter, event *Event, first bool) bool {
	if first {
		if !emitterWriteIndicator(emitter, []byte{'['}, true, true, false) {
			return false
		}
		if !emitterIncreaseIndent(emitter, true, false) {
			return false
		}
		emitter.flowLevel++
	}

	if event.typ == SequenceEndEvent {
		emitter.flowLevel--
		emitter.indent = emitter.indents[len(emitter.indents)-1]
		emitter.indents = emitter.indents[:len(emitter.indents)-1]
		if emitter.canonical && !first {
			if !emitterWriteIndicator(emitter, []byte{','}, false, false, false) {
				return false
			}
			if !emitterWriteIndent(emitter) {
				return false
			}
		}
		if !emitterWriteIndicator(emitter, []byte{']'}, false, false, false) {
			return false
		}
		emitter.state = emitter.states[len(emitter.states)-1]
		emitter.states = emitter.states[:len(emitter.states)-1]

		return true
	}

	if !first {
		if !emitterWriteIndicator(emitter, []byte{','}, false, false, false) {
			return false
		}
	}

	if emitter.canonical || emitter.column > emitter.bestWidth {
		if !emitterWriteIndent(emitter) {
			return false
		}
	}
	emitter.states = append(emitter.states, emitFlowSequenceItemState)
	return emitterEmitNode(emitter, event, false, true, false, false)
}

// Expect a flow key node.
func emitterEmitFlowMappingKey(emitter *Emitter, event *Event, first bool) bool {
	if first {
		if !emitterWriteIndicator(emitter, []byte{'{'}, true, true, false) {
			return false
		}
		if !emitterIncreaseIndent(emitter, true, false) {
			return false
		}
		emitter.flowLevel++
	}

	if event.typ == MappingEndEvent {
		emitter.flowLevel--
		emitter.indent = emitter.indents[len(emitter.indents)-1]
		emitter.indents = emitter.indents[:len(emitter.indents)-1]
		if emitter.canonical && !first {
			if !emitterWriteIndicator(emitter, []byte{','}, false, false, false) {
				return false
			}
			if !emitterWriteIndent(emitter) {
				return false
			}
		}
		if !emitterWriteIndicator(emitter, []byte{'}'}, false, false, false) {
			return false
		}
		emitter.state = emitter.states[len(emitter.states)-1]
		emitter.states = emitter.states[:len(emitter.states)-1]
		return true
	}

	if !first {
		if !emitterWriteIndicator(emitter, []byte{','}, false, false, false) {
			return false
		}
	}
	if emitter.canonical || emitter.column > emitter.bestWidth {
		if !emitterWriteIndent(emitter) {
			return false
		}
	}

	if !emitter.canonical && emitterCheckSimpleKey(emitter) {
		emitter.states = append(emitter.states, emitFlowMappingSimpleValueState)
		return emitterEmitNode(emitter, event, false, false, true, true)
	}
	if !emitterWriteIndicator(emitter, []byte{'?'}, true, false, false) {
		return false
	}
	emitter.states = append(emitter.states, emitFlowMappingValueState)
	return emitterEmitNode(emitter, event, false, false, true, false)
}

// Expect a flow value node.
func emitterEmitFlowMappingValue(emitter *Emitter, event *Event, simple bool) bool {
	if simple {
		if !emitterWriteIndicator(emitter, []byte{':'}, false, false, false) {
			return false
		}
	} else {
		if emitter.canonical || emitter.column > emitter.bestWidth {
			if !emitterWriteIndent(emitter) {
				return false
			}
		}
		if !emitterWriteIndicator(emitter, []byte{':'}, true, false, false) {
			return false
		}
	}
	emitter.states = append(emitter.states, emitFlowMappingKeyState)
	return emitterEmitNode(emitter, event, false, false, true, false)
}

// Expect a block item node.
func emitterEmitBlockSequenceItem(emitter *Emitter, event *Event, first bool) bool {
	if first {
		if !emitterIncreaseIndent(emitter, false, emitter.mappingContext && !emitter.indention) {
			return false
		}
	}
	if event.typ == SequenceEndEvent {
		emitter.indent = emitter.indents[len(emitter.indents)-1]
		emitter.indents = emitter.indents[:len(emitter.indents)-1]
		emitter.state = emitter.states[len(emitter.states)-1]
		emitter.states = emitter.states[:len(emitter.states)-1]
		return true
	}
	if !emitterWriteIndent(emitter) {
		return false
	}
	if !emitterWriteIndicator(emitter, []byte{'-'}, true, false, true) {
		return false
	}
	emitter.states = append(emitter.states, emitBlockSequenceItemState)
	return emitterEmitNode(emitter, event, false, true, false, false)
}

// Expect a block key node.
func emitterEmitBlockMappingKey(emitter *Emitter, event *Event, first bool) bool {
	if first {
		if !emitterIncreaseIndent(emitter, false, false) {
			return false
		}
	}
	if event.typ == MappingEndEvent {
		emitter.indent = emitter.indents[len(emitter.indents)-1]
		emitter.indents = emitter.indents[:len(emitter.indents)-1]
		emitter.state = emitter.states[len(emitter.states)-1]
		emitter.states = emitter.states[:len(emitter.states)-1]
		return true
	}
	if !emitterWriteIndent(emitter) {
		return false
	}
	if emitterCheckSimpleKey(emitter) {
		emitter.states = append(emitter.states, emitBlockMappingSimpleValueState)
		return emitterEmitNode(emitter, event, false, false, true, true)
	}
	if !emitterWriteIndicator(emitter, []byte{'?'}, true, false, true) {
		return false
	}
	emitter.states = append(emitter.states, emitBlockMappingValueState)
	return emitterEmitNode(emitter, event, false, false, true, false)
}

// Expect a block value node.
func emitterEmitBlockMappingValue(emitter *Emitter, event *Event, simple bool) bool {
	if simple {
		if !emitterWriteIndicator(emitter, []byte{':'}, false, false, false) {
			return false
		}
	} else {
		if !emitterWriteIndent(emitter) {
			return false
		}
		if !emitterWriteIndicator(emitter, []byte{':'}, true, false, true) {
			return false
		}
	}
	emitter.states = append(emitter.states, emitBlockMappingKeyState)
	return emitterEmitNode(emitter, event, false, false, true, false)
}

// Expect a node.
func emitterEmitNode(emitter *Emitter, event *Event,
	root bool, sequence bool, mapping bool, simpleKey bool) bool {
	emitter.rootContext = root
	emitter.sequenceContext = sequence
	emitter.mappingContext = mapping
	emitter.simpleKeyContext = simpleKey

	switch event.typ {
	case AliasEvent:
		return emitterEmitAlias(emitter, event)
	case ScalarEvent:
		return emitterEmitScalar(emitter, event)
	case SequenceStartEvent:
		return emitterEmitSequenceStart(emitter, event)
	case MappingStartEvent:
		return emitterEmitMappingStart(emitter, event)
	default:
		return emitterSetEmitterError(emitter,
			fmt.Sprintf("expected SCALAR, SEQUENCE-START, MAPPING-START, or ALIAS, but got %v", event.typ))
	}
}

// Expect ALIAS.
func emitterEmitAlias(emitter *Emitter, event *Event) bool {
	if !emitterProcessAnchor(emitter) {
		return false
	}
	emitter.state = emitter.states[len(emitter.states)-1]
	emitter.states = emitter.states[:len(emitter.states)-1]
	return true
}

// Expect SCALAR.
func emitterEmitScalar(emitter *Emitter, event *Event) bool {
	if !emitterSelectScalarStyle(emitter, event) {
		return false
	}
	if !emitterProcessAnchor(emitter) {
		return false
	}
	if !emitterProcessTag(emitter) {
		return false
	}
	if !emitterIncreaseIndent(emitter, true, false) {
		return false
	}
	if !emitterProcessScalar(emitter) {
		return false
	}
	emitter.indent = emitter.indents[len(emitter.indents)-1]
	emitter.indents = emitter.indents[:len(emitter.indents)-1]
	emitter.state = emitter.states[len(emitter.states)-1]
	emitter.states = emitter.states[:len(emitter.states)-1]
	return true
}

// Expect SEQUENCE-START.
func emitterEmitSequenceStart(emitter *Emitter, event *Event) bool {
	if !emitterProcessAnchor(emitter) {
		return false
	}
	if !emitterProcessTag(emitter) {
		return false
	}
	if emitter.flowLevel > 0 || emitter.canonical || event.sequenceStyle() == FlowSequenceStyle ||
		emitterCheckEmptySequence(emitter) {
		emitter.state = emitFlowSequenceFirstItemState
	} else {
		emitter.state = emitBlockSequenceFirstItemState
	}
	return true
}

// Expect MAPPING-START.
func emitterEmitMappingStart(emitter *Emitter, event *Event) bool {
	if !emitterProcessAnchor(emitter) {
		return false
	}
	if !emitterProcessTag(emitter) {
		return false
	}
	if emitter.flowLevel > 0 || emitter.canonical || event.mappingStyle() == FlowMappingStyle ||
		emitterCheckEmptyMapping(emitter) {
		emitter.state = emitFlowMappingFirstKeyState
	} else {
		emitter.state = emitBlockMappingFirstKeyState
	}
	return true
}

// Check if the document content is an empty scalar.
func emitterCheckEmptyDocument(emitter *Emitter) bool {
	return false
}

// Check if the next events represent an empty sequence.
func emitterCheckEmptySequence(emitter *Emitter) bool {
	if len(emitter.events)-emitter.eventsHead < 2 {
		return false
	}
	return emitter.events[emitter.eventsHead].typ == SequenceStartEvent &&
		emitter.events[emitter.eventsHead+1].typ == SequenceEndEvent
}

// Check if the next events represent an empty mapping.
func emitterCheckEmptyMapping(emitter *Emitter) bool {
	if len(emitter.events)-emitter.eventsHead < 2 {
		return false
	}
	return emitter.events[emitter.eventsHead].typ == MappingStartEvent &&
		emitter.events[emitter.eventsHead+1].typ == MappingEndEvent
}

// Check if the next node can be expressed as a simple key.
func emitterCheckSimpleKey(emitter *Emitter) bool {
	length := 0
	switch emitter.events[emitter.eventsHead].typ {
	case AliasEvent:
		length += len(emitter.anchorData.anchor)
	case ScalarEvent:
		if emitter.scalarData.multiline {
			return false
		}
		length += len(emitter.anchorData.anchor) +
			len(emitter.tagData.handle) +
			len(emitter.tagData.suffix) +
			len(emitter.scalarData.value)
	case SequenceStartEvent:
		if !emitterCheckEmptySequence(emitter) {
			return false
		}
		length += len(emitter.anchorData.anchor) +
			len(emitter.tagData.handle) +
			len(emitter.tagData.suffix)
	case MappingStartEvent:
		if !emitterCheckEmptyMapping(emitter) {
			return false
		}
		length += len(emitter.anchorData.anchor) +
			len(emitter.tagData.handle) +
			len(emitter.tagData.suffix)
	default:
		return false
	}
	return length <= 128
}

// Determine an acceptable scalar style.
func emitterSelectScalarStyle(emitter *Emitter, event *Event) bool {
	noTag := len(emitter.tagData.handle) == 0 && len(emitter.tagData.suffix) == 0
	if noTag && !event.implicit && !event.quotedImplicit {
		return emitterSetEmitterError(emitter, "neither tag nor implicit flags are specified")
	}

	style := event.scalarStyle()
	if style == AnyScalarStyle {
		style = PlainScalarStyle
	}
	if emitter.canonical {
		style = DoubleQuotedScalarStyle
	}
	if emitter.simpleKeyContext && emitter.scalarData.multiline {
		style = DoubleQuotedScalarStyle
	}

	if style == PlainScalarStyle {
		if emitter.flowLevel > 0 && !emitter.scalarData.flowPlainAllowed ||
			emitter.flowLevel == 0 && !emitter.scalarData.blockPlainAllowed {
			style = SingleQuotedScalarStyle
		}
		if len(emitter.scalarData.value) == 0 && (emitter.flowLevel > 0 || emitter.simpleKeyContext) {
			style = SingleQuotedScalarStyle
		}
		if noTag && !event.implicit {
			style = SingleQuotedScalarStyle
		}
	}
	if style == SingleQuotedScalarStyle {
		if !emitter.scalarData.singleQuotedAllowed {
			style = DoubleQuotedScalarStyle
		}
	}
	if style == LiteralScalarStyle || style == FoldedScalarStyle {
		if !emitter.scalarData.blockAllowed || emitter.flowLevel > 0 || emitter.simpleKeyContext {
			style = DoubleQuotedScalarStyle
		}
	}

	if noTag && !event.quotedImplicit && style != PlainScalarStyle {
		emitter.tagData.handle = []byte{'!'}
	}
	emitter.scalarData.style = style
	return true
}

// Write an anchor.
func emitterProcessAnchor(emitter *Emitter) bool {
	if emitter.anchorData.anchor == nil {
		return true
	}
	c := []byte{'&'}
	if emitter.anchorData.alias {
		c[0] = '*'
	}
	if !emitterWriteIndicator(emitter, c, true, false, false) {
		return false
	}
	return emitterWriteAnchor(emitter, emitter.anchorData.anchor)
}

// Write a tag.
func emitterProcessTag(emitter *Emitter) bool {
	if len(emitter.tagData.handle) == 0 && len(emitter.tagData.suffix) == 0 {
		return true
	}
	if len(emitter.tagData.handle) > 0 {
		if !emitterWriteTagHandle(emitter, emitter.tagData.handle) {
			return false
		}
		if len(emitter.tagData.suffix) > 0 {
			if !emitterWriteTagContent(emitter, emitter.tagData.suffix, false) {
				return false
			}
		}
	} else {
		if !emitterWriteIndicator(emitter, []byte("!<"), true, false, false) {
			return false
		}
		if !emitterWriteTagContent(emitter, emitter.tagData.suffix, false) {
			return false
		}
		if !emitterWriteIndicator(emitter, []byte{'>'}, false, false, false) {
			return false
		}
	}
	return true
}

// Write a scalar.
func emitterProcessScalar(emitter *Emitter) bool {
	switch emitter.scalarData.style {
	case PlainScalarStyle:
		return emitterWritePlainScalar(emitter, emitter.scalarData.value, !emitter.simpleKeyContext)

	case SingleQuotedScalarStyle:
		return emitterWriteSingleQuotedScalar(emitter, emitter.scalarData.value, !emitter.simpleKeyContext)

	case DoubleQuotedScalarStyle:
		return emitterWriteDoubleQuotedScalar(emitter, emitter.scalarData.value, !emitter.simpleKeyContext)

	case LiteralScalarStyle:
		return emitterWriteLiteralScalar(emitter, emitter.scalarData.value)

	case FoldedScalarStyle:
		return emitterWriteFoldedScalar(emitter, emitter.scalarData.value)
	}
	panic("unknown scalar style")
}

// Check if a %YAML directive is valid.
func emitterAnalyzeVersionDirective(emitter *Emitter, versionDirective *VersionDirective) bool {
	if !isSupportedVersion(versionDirective.major, versionDirective.minor) {
		return emitterSetEmitterError(emitter, "incompatible %YAML directive")
	}
	return true
}

// Check if a %TAG directive is valid.
func emitterAnalyzeTagDirective(emitter *Emitter, tagDirective *TagDirective) bool {
	handle := tagDirective.handle
	prefix := tagDirective.prefix
	if len(handle) == 0 {
		return emitterSetEmitterError(emitter, "tag handle must not be empty")
	}
	if handle[0] != '!' {
		return emitterSetEmitterError(emitter, "tag handle must start with '!'")
	}
	if handle[len(handle)-1] != '!' {
		return emitterSetEmitterError(emitter, "tag handle must end with '!'")
	}
	for i := 1; i < len(handle)-1; i += width(handle[i]) {
		if !isAlpha(handle, i) {
			return emitterSetEmitterError(emitter, "tag handle must contain alphanumerical characters only")
		}
	}
	if len(prefix) == 0 {
		return emitterSetEmitterError(emitter, "tag prefix must not be empty")
	}
	return true
}

// Check if an anchor is valid.
func emitterAnalyzeAnchor(emitter *Emitter, anchor []byte, alias bool) bool {
	if len(anchor) == 0 {
		problem := "anchor value must not be empty"
		if alias {
			problem = "alias value must not be empty"
		}
		return emitterSetEmitterError(emitter, problem)
	}
	for i := 0; i < len(anchor); i += width(anchor[i]) {
		if !isAlpha(anchor, i) {
			problem := "anchor value must contain alphanumerical characters only"
			if alias {
				problem = "alias value must contain alphanumerical characters only"
			}
			return emitterSetEmitterError(emitter, problem)
		}
	}
	emitter.anchorData.anchor = anchor
	emitter.anchorData.alias = alias
	return true
}

// Check if a tag is valid.
func emitterAnalyzeTag(emitter *Emitter, tag []byte) bool {
	if len(tag) == 0 {
		return emitterSetEmitterError(emitter, "tag value must not be empty")
	}
	for i := 0; i < len(emitter.tagDirectives); i++ {
		tagDirective := &emitter.tagDirectives[i]
		if bytes.HasPrefix(tag, tagDirective.prefix) {
			emitter.tagData.handle = tagDirective.handle
			emitter.tagData.suffix = tag[len(tagDirective.prefix):]
			return true
		}
	}
	emitter.tagData.suffix = tag
	return true
}

// Check if a scalar is valid.
func emitterAnalyzeScalar(emitter *Emitter, value []byte) bool {
	var (
		blockIndicators   = false
		flowIndicators    = false
		lineBreaks        = false
		specialCharacters = false

		leadingSpace  = false
		leadingBreak  = false
		trailingSpace = false
		trailingBreak = false
		breakSpace    = false
		spaceBreak    = false

		precededByWhitespace = false
		followedByWhitespace = false
		previousSpace        = false
		previousBreak        = false
	)

	emitter.scalarData.value = value

	if len(value) == 0 {
		emitter.scalarData.multiline = false
		emitter.scalarData.flowPlainAllowed = false
		emitter.scalarData.blockPlainAllowed = true
		emitter.scalarData.singleQuotedAllowed = true
		emitter.scalarData.blockAllowed = false
		return true
	}

	if len(value) >= 3 && ((value[0] == '-' && value[1] == '-' && value[2] == '-') || (value[0] == '.' && value[1] == '.' && value[2] == '.')) {
		blockIndicators = true
		flowIndicators = true
	}

	precededByWhitespace = true
	for i, w := 0, 0; i < len(value); i += w {
		w = width(value[i])
		followedByWhitespace = i+w >= len(value) || isBlank(value, i+w)

		if i == 0 {
			switch value[i] {
			case '#', ',', '[', ']', '{', '}', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
				flowIndicators = true
				blockIndicators = true
			case '?', ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '-':
				if followedByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		} else {
			switch value[i] {
			case ',', '?', '[', ']', '{', '}':
				flowIndicators = true
			case ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '#':
				if precededByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		}

		if !isPrintable(value, i) || !isASCII(value, i) && !emitter.unicode {
			specialCharacters = true
		}
		if isSpace(value, i) {
			if i == 0 {
				leadingSpace = true
			}
			if i+width(value[i]) == len(value) {
				trailingSpace = true
			}
			if previousBreak {
				breakSpace = true
			}
			previousSpace = true
			previousBreak = false
		} else if isBreak(value, i) {
			lineBreaks = true
			if i == 0 {
				leadingBreak = true
			}
			if i+width(value[i]) == len(value) {
				trailingBreak = true
			}
			if previousSpace {
				spaceBreak = true
			}
			previousSpace = false
			previousBreak = true
		} else {
			previousSpace = false
			previousBreak = false
		}

		precededByWhitespace = isBlankz(value, i)
	}

	emitter.scalarData.multiline = lineBreaks
	emitter.scalarData.flowPlainAllowed = true
	emitter.scalarData.blockPlainAllowed = true
	emitter.scalarData.singleQuotedAllowed = true
	emitter.scalarData.blockAllowed = true

	if leadingSpace || leadingBreak || trailingSpace || trailingBreak {
		emitter.scalarData.flowPlainAllowed = false
		emitter.scalarData.blockPlainAllowed = false
	}
	if trailingSpace {
		emitter.scalarData.blockAllowed = false
	}
	if breakSpace {
		emitter.scalarData.flowPlainAllowed = false
		emitter.scalarData.blockPlainAllowed = false
		emitter.scalarData.singleQuotedAllowed = false
	}
	if spaceBreak || specialCharacters {
		emitter.scalarData.flowPlainAllowed = false
		emitter.scalarData.blockPlainAllowed = false
		emitter.scalarData.singleQuotedAllowed = false
		emitter.scalarData.blockAllowed = false
	}
	if lineBreaks {
		emitter.scalarData.flowPlainAllowed = false
		emitter.scalarData.blockPlainAllowed = false
	}
	if flowIndicators {
		emitter.scalarData.flowPlainAllowed = false
	}
	if blockIndicators {
		emitter.scalarData.blockPlainAllowed = false
	}
	return true
}

// Check if the event data is valid.
func emitterAnalyzeEvent(emitter *Emitter, event *Event) bool {
	emitter.anchorData.anchor = nil
	emitter.tagData.handle = nil
	emitter.tagData.suffix = nil
	emitter.scalarData.value = nil

	switch event.typ {
	case AliasEvent:
		if !emitterAnalyzeAnchor(emitter, event.anchor, true) {
			return false
		}

	case ScalarEvent:
		if len(event.anchor) > 0 {
			if !emitterAnalyzeAnchor(emitter, event.anchor, false) {
				return false
			}
		}
		if len(event.tag) > 0 && (emitter.canonical || (!event.implicit && !event.quotedImplicit)) {
			if !emitterAnalyzeTag(emitter, event.tag) {
				return false
			}
		}
		if !emitterAnalyzeScalar(emitter, event.value) {
			return false
		}

	case SequenceStartEvent:
		if len(event.anchor) > 0 {
			if !emitterAnalyzeAnchor(emitter, event.anchor, false) {
				return false
			}
		}
		if len(event.tag) > 0 && (emitter.canonical || !event.implicit) {
			if !emitterAnalyzeTag(emitter, event.tag) {
				return false
			}
		}

	case MappingStartEvent:
		if len(event.anchor) > 0 {
			if !emitterAnalyzeAnchor(emitter, event.anchor, false) {
				return false
			}
		}
		if len(event.tag) > 0 && (emitter.canonical || !event.implicit) {
			if !emitterAnalyzeTag(emitter, event.tag) {
				return false
			}
		}
	}
	return true
}

// Write the BOM character.
func emitterWriteBom(emitter *Emitter) bool {
	if !flush(emitter) {
		return false
	}
	pos := emitter.bufferPos
	emitter.buffer[pos+0] = '\xEF'
	emitter.buffer[pos+1] = '\xBB'
	emitter.buffer[pos+2] = '\xBF'
	emitter.bufferPos += 3
	return true
}

func emitterWriteIndent(emitter *Emitter) bool {
	indent := emitter.indent
	if indent < 0 {
		indent = 0
	}
	if !emitter.indention || emitter.column > indent || (emitter.column == indent && !emitter.whitespace) {
		if !putBreak(emitter) {
			return false
		}
	}
	for emitter.column < indent {
		if !put(emitter, ' ') {
			return false
		}
	}
	emitter.whitespace = true
	emitter.indention = true
	return true
}

func emitterWriteIndicator(emitter *Emitter, indicator []byte, needWhitespace, isWhitespace, isIndention bool) bool {
	if needWhitespace && !emitter.whitespace {
		if !put(emitter, ' ') {
			return false
		}
	}
	if !writeAll(emitter, indicator) {
		return false
	}
	emitter.whitespace = isWhitespace
	emitter.indention = (emitter.indention && isIndention)
	emitter.openEnded = 0
	return true
}

func emitterWriteAnchor(emitter *Emitter, value []byte) bool {
	if !writeAll(emitter, value) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func emitterWriteTagHandle(emitter *Emitter, value []byte) bool {
	if !emitter.whitespace {
		if !put(emitter, ' ') {
			return false
		}
	}
	if !writeAll(emitter, value) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func emitterWriteTagContent(emitter *Emitter, value []byte, needWhitespace bool) bool {
	if needWhitespace && !emitter.whitespace {
		if !put(emitter, ' ') {
			return false
		}
	}
	for i := 0; i < len(value); {
		var mustWrite bool
		switch value[i] {
		case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '_', '.', '~', '*', '\'', '(', ')', '[', ']':
			mustWrite = true
		default:
			mustWrite = isAlpha(value, i)
		}
		if mustWrite {
			if !write(emitter, value, &i) {
				return false
			}
		} else {
			w := width(value[i])
			for k := 0; k < w; k++ {
				octet := value[i]
				i++
				if !put(emitter, '%') {
					return false
				}

				c := octet >> 4
				if c < 10 {
					c += '0'
				} else {
					c += 'A' - 10
				}
				if !put(emitter, c) {
					return false
				}

				c = octet & 0x0f
				if c < 10 {
					c += '0'
				} else {
					c += 'A' - 10
				}
				if !put(emitter, c) {
					return false
				}
			}
		}
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func emitterWritePlainScalar(emitter *Emitter, value []byte, allowBreaks bool) bool {
	if !emitter.whitespace {
		if !put(emitter, ' ') {
			return false
		}
	}

	spaces := false
	breaks := false
	for i := 0; i < len(value); {
		if isSpace(value, i) {
			if allowBreaks && !spaces && emitter.column > emitter.bestWidth && !isSpace(value, i+1) {
				if !emitterWriteIndent(emitter) {
					return false
				}
				i += width(value[i])
			} else {
				if !write(emitter, value, &i) {
					return false
				}
			}
			spaces = true
		} else if isBreak(value, i) {
			if !breaks && value[i] == '\n' {
				if !putBreak(emitter) {
					return false
				}
			}
			if !writeBreak(emitter, value, &i) {
				return false
			}
			emitter.indention = true
			breaks = true
		} else {
			if breaks {
				if !emitterWriteIndent(emitter) {
					return false
				}
			}
			if !write(emitter, value, &i) {
				return false
			}
			emitter.indention = false
			spaces = false
			breaks = false
		}
	}

	emitter.whitespace = false
	emitter.indention = false
	if emitter.rootContext {
		emitter.openEnded = 1
	}

	return true
}

func emitterWriteSingleQuotedScalar(emitter *Emitter, value []byte, allowBreaks bool) bool {
	if !emitterWriteIndicator(emitter, []byte{'\''}, true, false, false) {
		return false
	}

	spaces := false
	breaks := false
	for i := 0; i < len(value); {
		if isSpace(value, i) {
			if allowBreaks && !spaces && emitter.column > emitter.bestWidth && i > 0 && i < len(value)-1 && !isSpace(value, i+1) {
				if !emitterWriteIndent(emitter) {
					return false
				}
				i += width(value[i])
			} else {
				if !write(emitter, value, &i) {
					return false
				}
			}
			spaces = true
		} else if isBreak(value, i) {
			if !breaks && value[i] == '\n' {
				if !putBreak(emitter) {
					return false
				}
			}
			if !writeBreak(emitter, value, &i) {
				return false
			}
			emitter.indention = true
			breaks = true
		} else {
			if breaks {
				if !emitterWriteIndent(emitter) {
					return false
				}
			}
			if value[i] == '\'' {
				if !put(emitter, '\'') {
					return false
				}
			}
			if !write(emitter, value, &i) {
				return false
			}
			emitter.indention = false
			spaces = false
			breaks = false
		}
	}
	if !emitterWriteIndicator(emitter, []byte{'\''}, false, false, false) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func emitterWriteDoubleQuotedScalar(emitter *Emitter, value []byte, allowBreaks bool) bool {
	spaces := false
	if !emitterWriteIndicator(emitter, []byte{'"'}, true, false, false) {
		return false
	}

	for i := 0; i < len(value); {
		if !isPrintable(value, i) || (!emitter.unicode && !isASCII(value, i)) ||
			isBom(value, i) || isBreak(value, i) ||
			value[i] == '"' || value[i] == '\\' {
			octet := value[i]

			var w int
			var v rune
			switch {
			case octet&0x80 == 0x00:
				w, v = 1, rune(octet&0x7F)
			case octet&0xE0 == 0xC0:
				w, v = 2, rune(octet&0x1F)
			case octet&0xF0 == 0xE0:
				w, v = 3, rune(octet&0x0F)
			case octet&0xF8 == 0xF0:
				w, v = 4, rune(octet&0x07)
			}
			for k := 1; k < w; k++ {
				octet = value[i+k]
				v = (v << 6) + (rune(octet) & 0x3F)
			}
			i += w

			if !put(emitter, '\\') {
				return false
			}

			var ok bool
			switch v {
			case 0x00:
				ok = put(emitter, '0')
			case 0x07:
				ok = put(emitter, 'a')
			case 0x08:
				ok = put(emitter, 'b')
			case 0x09:
				ok = put(emitter, 't')
			case 0x0A:
				ok = put(emitter, 'n')
			case 0x0b:
				ok = put(emitter, 'v')
			case 0x0c:
				ok = put(emitter, 'f')
			case 0x0d:
				ok = put(emitter, 'r')
			case 0x1b:
				ok = put(emitter, 'e')
			case 0x22:
				ok = put(emitter, '"')
			case 0x5c:
				ok = put(emitter, '\\')
			case 0x85:
				ok = put(emitter, 'N')
			case 0xA0:
				ok = put(emitter, '_')
			case 0x2028:
				ok = put(emitter, 'L')
			case 0x2029:
				ok = put(emitter, 'P')
			default:
				if v <= 0xFF {
					ok = put(emitter, 'x')
					w = 2
				} else if v <= 0xFFFF {
					ok = put(emitter, 'u')
					w = 4
				} else {
					ok = put(emitter, 'U')
					w = 8
				}
				for k := (w - 1) * 4; ok && k >= 0; k -= 4 {
					digit := byte((v >> uint(k)) & 0x0F)
					if digit < 10 {
						ok = put(emitter, digit+'0')
					} else {
						ok = put(emitter, digit+'A'-10)
					}
				}
			}
			if !ok {
				return false
			}
			spaces = false
		} else if isSpace(value, i) {
			if allowBreaks && !spaces && emitter.column > emitter.bestWidth && i > 0 && i < len(value)-1 {
				if !emitterWriteIndent(emitter) {
					return false
				}
				if isSpace(value, i+1) {
					if !put(emitter, '\\') {
						return false
					}
				}
				i += width(value[i])
			} else if !write(emitter, value, &i) {
				return false
			}
			spaces = true
		} else {
			if !write(emitter, value, &i) {
				return false
			}
			spaces = false
		}
	}
	if !emitterWriteIndicator(emitter, []byte{'"'}, false, false, false) {
		return false
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func emitterWriteBlockScalarHints(emitter *Emitter, value []byte) bool {
	if isSpace(value, 0) || isBreak(value, 0) {
		indentHint := []byte{'0' + byte(emitter.bestIndent)}
		if !emitterWriteIndicator(emitter, indentHint, false, false, false) {
			return false
		}
	}

	emitter.openEnded = 0

	var chompHint [1]byte
	if len(value) == 0 {
		chompHint[0] = '-'
	} else {
		i := len(value) - 1
		for value[i]&0xC0 == 0x80 {
			i--
		}
		if !isBreak(value, i) {
			chompHint[0] = '-'
		} else if i == 0 {
			chompHint[0] = '+'
			emitter.openEnded = 2
		} else {
			i--
			for value[i]&0xC0 == 0x80 {
				i--
			}
			if isBreak(value, i) {
				chompHint[0] = '+'
				emitter.openEnded = 2
			}
		}
	}
	if chompHint[0] != 0 {
		if !emitterWriteIndicator(emitter, chompHint[:], false, false, false) {
			return false
		}
	}
	return true
}

func emitterWriteLiteralScalar(emitter *Emitter, value []byte) bool {
	if !emitterWriteIndicator(emitter, []byte{'|'}, true, false, false) {
		return false
	}
	if !emitterWriteBlockScalarHints(emitter, value) {
		return false
	}
	if !putBreak(emitter) {
		return false
	}
	emitter.indention = true
	emitter.whitespace = true
	breaks := true
	for i := 0; i < len(value); {
		if isBreak(value, i) {
			if !writeBreak(emitter, value, &i) {
				return false
			}
			emitter.indention = true
			breaks = true
		} else {
			if breaks {
				if !emitterWriteIndent(emitter) {
					return false
				}
			}
			if !write(emitter, value, &i) {
				return false
			}
			emitter.indention = false
			breaks = false
		}
	}

	return true
}

func emitterWriteFoldedScalar(emitter *Emitter, value []byte) bool {
	if !emitterWriteIndicator(emitter, []byte{'>'}, true, false, false) {
		return false
	}
	if !emitterWriteBlockScalarHints(emitter, value) {
		return false
	}

	if !putBreak(emitter) {
		return false
	}
	emitter.indention = true
	emitter.whitespace = true

	breaks := true
	leadingSpaces := true
	for i := 0; i < len(value); {
		if isBreak(value, i) {
			if !breaks && !leadingSpaces && value[i] == '\n' {
				k := 0
				for isBreak(value, k) {
					k += width(value[k])
				}
				if !isBlankz(value, k) {
					if !putBreak(emitter) {
						return false
					}
				}
			}
			if !writeBreak(emitter, value, &i) {
				return false
			}
			emitter.indention = true
			breaks = true
		} else {
			if breaks {
				if !emitterWriteIndent(emitter) {
					return false
				}
				leadingSpaces = isBlank(value, i)
			}
			if !breaks && isSpace(value, i) && !isSpace(value, i+1) && emitter.column > emitter.bestWidth {
				if !emitterWriteIndent(emitter) {
					return false
				}
				i += width(value[i])
			} else {
				if !write(emitter, value, &i) {
					return false
				}
			}
			emitter.indention = false
			breaks = false
		}
	}
	return true
}
