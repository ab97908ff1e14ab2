// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
)

// The parser implements the following grammar:
//
// stream               ::= STREAM-START implicit_document? explicit_document* STREAM-END
// implicit_document    ::= block_node DOCUMENT-END*
// explicit_document    ::= DIRECTIVE* DOCUMENT-START block_node? DOCUMENT-END*
// block_node_or_indentless_sequence    ::=
//                          ALIAS
//                          | properties (block_content | indentless_block_sequence)?
//                          | block_content
//                          | indentless_block_sequence
// block_node           ::= ALIAS
//                          | properties block_content?
//                          | block_content
// flow_node            ::= ALIAS
//                          | properties flow_content?
//                          | flow_content
// properties           ::= TAG ANCHOR? | ANCHOR TAG?
// block_content        ::= block_collection | flow_collection | SCALAR
// flow_content         ::= flow_collection | SCALAR
// block_collection     ::= block_sequence | block_mapping
// flow_collection      ::= flow_sequence | flow_mapping
// block_sequence       ::= BLOCK-SEQUENCE-START (BLOCK-ENTRY block_node?)* BLOCK-END
// indentless_sequence  ::= (BLOCK-ENTRY block_node?)+
// block_mapping        ::= BLOCK-MAPPING_START
//                          ((KEY block_node_or_indentless_sequence?)?
//                          (VALUE block_node_or_indentless_sequence?)?)*
//                          BLOCK-END
// flow_sequence        ::= FLOW-SEQUENCE-START
//                          (flow_sequence_entry FLOW-ENTRY)*
//                          flow_sequence_entry?
//                          FLOW-SEQUENCE-END
// flow_sequence_entry  ::= flow_node | KEY flow_node? (VALUE flow_node?)?
// flow_mapping         ::= FLOW-MAPPING-START
//                          (flow_mapping_entry FLOW-ENTRY)*
//                          flow_mapping_entry?
//                          FLOW-MAPPING-END
// flow_mapping_entry   ::= flow_node | KEY flow_node? (VALUE flow_node?)?

// Peek the next token in the token queue.
func peekToken(parser *Parser) *Token {
	if parser.tokenAvailable || parserFetchMoreTokens(parser) {
		return &parser.tokens[parser.tokensHead]
	}
	return nil
}

// Remove the next token from the queue (must be called after peek_token).
func skipToken(parser *Parser) {
	parser.tokenAvailable = false
	parser.tokensParsed++
	parser.streamEndProduced = parser.tokens[parser.tokensHead].typ == StreamEndToken
	parser.tokensHead++
}

// Get the next event.
func ParserParse(parser *Parser, event *Event) bool {
	*event = Event{}

	if parser.streamEndProduced || parser.error != NoError || parser.state == parseEndState {
		return true
	}

	return parserStateMachine(parser, event)
}

// Set parser error.
func parserSetParserError(parser *Parser, problem string, problemMark Mark) bool {
	parser.error = ParserError
	parser.problem = problem
	parser.problemMark = problemMark
	return false
}

func parserSetParserErrorContext(parser *Parser, context string, contextMark Mark, problem string, problemMark Mark) bool {
	parser.error = ParserError
	parser.context = context
	parser.contextMark = contextMark
	parser.problem = problem
	parser.problemMark = problemMark
	return false
}

// State dispatcher.
func parserStateMachine(parser *Parser, event *Event) bool {
	switch parser.state {
	case parseStreamStartState:
		return parserParseStreamStart(parser, event)

	case parseImplicitDocumentStartState:
		return parserParseDocumentStart(parser, event, true)

	case parseDocumentStartState:
		return parserParseDocumentStart(parser, event, false)

	case parseDocumentContentState:
		return parserParseDocumentContent(parser, event)

	case parseDocumentEndState:
		return parserParseDocumentEnd(parser, event)

	case parseBlockNodeState:
		return parserParseNode(parser, event, true, false)

	case parseBlockNodeOrIndentlessSequenceState:
		return parserParseNode(parser, event, true, true)

	case parseFlowNodeState:
		return parserParseNode(parser, event, false, false)

	case parseBlockSequenceFirstEntryState:
		return parserParseBlockSequenceEntry(parser, event, true)

	case parseBlockSequenceEntryState:
		return parserParseBlockSequenceEntry(parser, event, false)

	case parseIndentlessSequenceEntryState:
		return parserParseIndentlessSequenceEntry(parser, event)

	case parseBlockMappingFirstKeyState:
		return parserParseBlockMappingKey(parser, event, true)

	case parseBlockMappingKeyState:
		return parserParseBlockMappingKey(parser, event, false)

	case parseBlockMappingValueState:
		return parserParseBlockMappingValue(parser, event)

	case parseFlowSequenceFirstEntryState:
		return parserParseFlowSequenceEntry(parser, event, true)

	case parseFlowSequenceEntryState:
		return parserParseFlowSequenceEntry(parser, event, false)

	case parseFlowSequenceEntryMappingKeyState:
		return parserParseFlowSequenceEntryMappingKey(parser, event)

	case parseFlowSequenceEntryMappingValueState:
		return parserParseFlowSequenceEntryMappingValue(parser, event)

	case parseFlowSequenceEntryMappingEndState:
		return parserParseFlowSequenceEntryMappingEnd(parser, event)

	case parseFlowMappingFirstKeyState:
		return parserParseFlowMappingKey(parser, event, true)

	case parseFlowMappingKeyState:
		return parserParseFlowMappingKey(parser, event, false)

	case parseFlowMappingValueState:
		return parserParseFlowMappingValue(parser, event, false)

	case parseFlowMappingEmptyValueState:
		return parserParseFlowMappingValue(parser, event, true)

	default:
		panic("invalid parser state")
	}
}

// Parse the production:
// stream   ::= STREAM-START implicit_document? explicit_document* STREAM-END
//              ************
func parserParseStreamStart(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}
	if token.typ != StreamStartToken {
		return parserSetParserError(parser, "did not find expected <stream-start>", token.startMark)
	}
	parser.state = parseImplicitDocumentStartState
	*event = Event{
		typ:       StreamStartEvent,
		startMark: token.startMark,
		endMark:   token.endMark,
		encoding:  token.encoding,
	}
	skipToken(parser)
	return true
}

// Parse the productions:
// implicit_document    ::= block_node DOCUMENT-END*
//                          *
// explicit_document    ::= DIRECTIVE* DOCUMENT-START block_node? DOCUMENT-END*
//                          *************************
func parserParseDocumentStart(parser *Parser, event *Event, implicit bool) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}

	if !implicit {
		for token.typ == DocumentEndToken {
			skipToken(parser)
			token = peekToken(parser)
			if token == nil {
				return false
			}
		}
	}

	if implicit && token.typ != VersionDirectiveToken &&
		token.typ != TagDirectiveToken &&
		token.typ != DocumentStartToken &&
		token.typ != StreamEndToken {
		if !parserProcessDirectives(parser, nil, nil) {
			return false
		}
		parser.states = append(parser.states, parseDocumentEndState)
		parser.state = parseBlockNodeState

		*event = Event{
			typ:       DocumentStartEvent,
			startMark: token.startMark,
			endMark:   token.endMark,
			implicit:  true,
		}
	} else if token.typ != StreamEndToken {
		var versionDirective *VersionDirective
		var tagDirectives []TagDirective
		startMark := token.startMark
		if !parserProcessDirectives(parser, &versionDirective, &tagDirectives) {
			return false
		}
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ != DocumentStartToken {
			parserSetParserError(parser,
				"did not find expected <document start>", token.startMark)
			return false
		}
		parser.states = append(parser.states, parseDocumentEndState)
		parser.state = parseDocumentContentState
		endMark := token.endMark

		*event = Event{
			typ:              DocumentStartEvent,
			startMark:        startMark,
			endMark:          endMark,
			versionDirective: versionDirective,
			tagDirectives:    tagDirectives,
			implicit:         false,
		}
		skipToken(parser)
	} else {
		parser.state = parseEndState
		*event = Event{
			typ:       StreamEndEvent,
			startMark: token.startMark,
			endMark:   token.endMark,
		}
		skipToken(parser)
	}

	return true
}

// Parse the productions:
// explicit_document    ::= DIRECTIVE* DOCUMENT-START block_node? DOCUMENT-END*
//                                                    ***********
//
func parserParseDocumentContent(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}
	if token.typ == VersionDirectiveToken ||
		token.typ == TagDirectiveToken ||
		token.typ == DocumentStartToken ||
		token.typ == DocumentEndToken ||
		token.typ == StreamEndToken {
		parser.state = parser.states[len(parser.states)-1]
		parser.states = parser.states[:len(parser.states)-1]
		return parserProcessEmptyScalar(parser, event,
			token.startMark)
	}
	return parserParseNode(parser, event, true, false)
}

// Parse the productions:
// implicit_document    ::= block_node DOCUMENT-END*
//                                     *************
// explicit_document    ::= DIRECTIVE* DOCUMENT-START block_node? DOCUMENT-END*
//
func parserParseDocumentEnd(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}

	startMark := token.startMark
	endMark := token.startMark

	implicit := true
	if token.typ == DocumentEndToken {
		endMark = token.endMark
		skipToken(parser)
		implicit = false
	}

	parser.tagDirectives = parser.tagDirectives[:0]

	parser.state = parseDocumentStartState
	*event = Event{
		typ:       DocumentEndEvent,
		startMark: startMark,
		endMark:   endMark,
		implicit:  implicit,
	}
	return true
}

// Parse the productions:
// block_node_or_indentless_sequence    ::=
//                          ALIAS
//                          *****
//                          | properties (block_content | indentless_block_sequence)?
//                            **********  *
//                          | block_content | indentless_block_sequence
//                            *
// block_node           ::= ALIAS
//                          *****
//                          | properties block_content?
//                            ********** *
//                          | block_content
//                            *
// flow_node            ::= ALIAS
//                          *****
//                          | properties flow_content?
//                            ********** *
//                          | flow_content
//                            *
// properties           ::= TAG ANCHOR? | ANCHOR TAG?
//                          *************************
// block_content        ::= block_collection | flow_collection | SCALAR
//                                                               ******
// flow_content         ::= flow_collection | SCALAR
//                                            ******
func parserParseNode(parser *Parser, event *Event, block, indentlessSequence bool) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}

	if token.typ == AliasToken {
		parser.state = parser.states[len(parser.states)-1]
		parser.states = parser.states[:len(parser.states)-1]
		*event = Event{
			typ:       AliasEvent,
			startMark: token.startMark,
			endMark:   token.endMark,
			anchor:    token.value,
		}
		skipToken(parser)
		return true
	}

	startMark := token.startMark
	endMark := token.startMark

	var tagToken bool
	var tagHandle, tagSuffix, anchor []byte
	var tagMark Mark
	if token.typ == AnchorToken {
		anchor = token.value
		startMark = token.startMark
		endMark = token.endMark
		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ == TagToken {
			tagToken = true
			tagHandle = token.value
			tagSuffix = token.suffix
			tagMark = token.startMark
			endMark = token.endMark
			skipToken(parser)
			token = peekToken(parser)
			if token == nil {
				return false
			}
		}
	} else if token.typ == TagToken {
		tagToken = true
		tagHandle = token.value
		tagSuffix = token.suffix
		startMark = token.startMark
		tagMark = token.startMark
		endMark = token.endMark
		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ == AnchorToken {
			anchor = token.value
			endMark = token.endMark
			skipToken(parser)
			token = peekToken(parser)
			if token == nil {
				return false
			}
		}
	}

	var tag []byte
	if tagToken {
		if len(tagHandle) == 0 {
			tag = tagSuffix
			tagSuffix = nil
		} else {
			for i := range parser.tagDirectives {
				if bytes.Equal(parser.tagDirectives[i].handle, tagHandle) {
					tag = append([]byte(nil), parser.tagDirectives[i].prefix...)
					tag = append(tag, tagSuffix...)
					break
				}
			}
			if len(tag) == 0 {
				parserSetParserErrorContext(parser,
					"while parsing a node", startMark,
					"found undefined tag handle", tagMark)
				return false
			}
		}
	}

	implicit := len(tag) == 0
	if indentlessSequence && token.typ == BlockEntryToken {
		endMark = token.endMark
		parser.state = parseIndentlessSequenceEntryState
		*event = Event{
			typ:       SequenceStartEvent,
			startMark: startMark,
			endMark:   endMark,
			anchor:    anchor,
			tag:       tag,
			implicit:  implicit,
			style:     Style(BlockSequenceStyle),
		}
		return true
	}
	if token.typ == ScalarToken {
		var plainImplicit, quotedImplicit bool
		endMark = token.endMark
		if (len(tag) == 0 && token.style == PlainScalarStyle) || (len(tag) == 1 && tag[0] == '!') {
			plainImplicit = true
		} else if len(tag) == 0 {
			quotedImplicit = true
		}
		parser.state = parser.states[len(parser.states)-1]
		parser.states = parser.states[:len(parser.states)-1]

		*event = Event{
			typ:            ScalarEvent,
			startMark:      startMark,
			endMark:        endMark,
			anchor:         anchor,
			tag:            tag,
			value:          token.value,
			implicit:       plainImplicit,
			quotedImplicit: quotedImplicit,
			style:          Style(token.style),
		}
		skipToken(parser)
		return true
	}
	if token.typ == FlowSequenceStartToken {
		endMark = token.endMark
		parser.state = parseFlowSequenceFirstEntryState
		*event = Event{
			typ:       SequenceStartEvent,
			startMark: startMark,
			endMark:   endMark,
			anchor:    anchor,
			tag:       tag,
			implicit:  implicit,
			style:     Style(FlowSequenceStyle),
		}
		return true
	}
	if token.typ == FlowMappingStartToken {
		endMark = token.endMark
		parser.state = parseFlowMappingFirstKeyState
		*event = Event{
			typ:       MappingStartEvent,
			startMark: startMark,
			endMark:   endMark,
			anchor:    anchor,
			tag:       tag,
			implicit:  implicit,
			style:     Style(FlowMappingStyle),
		}
		return true
	}
	if block && token.typ == BlockSequenceStartToken {
		endMark = token.endMark
		parser.state = parseBlockSequenceFirstEntryState
		*event = Event{
			typ:       SequenceStartEvent,
			startMark: startMark,
			endMark:   endMark,
			anchor:    anchor,
			tag:       tag,
			implicit:  implicit,
			style:     Style(BlockSequenceStyle),
		}
		return true
	}
	if block && token.typ == BlockMappingStartToken {
		endMark = token.endMark
		parser.state = parseBlockMappingFirstKeyState
		*event = Event{
			typ:       MappingStartEvent,
			startMark: startMark,
			endMark:   endMark,
			anchor:    anchor,
			tag:       tag,
			implicit:  implicit,
			style:     Style(BlockMappingStyle),
		}
		return true
	}
	if len(anchor) > 0 || len(tag) > 0 {
		parser.state = parser.states[len(parser.states)-1]
		parser.states = parser.states[:len(parser.states)-1]

		*event = Event{
			typ:            ScalarEvent,
			startMark:      startMark,
			endMark:        endMark,
			anchor:         anchor,
			tag:            tag,
			implicit:       implicit,
			quotedImplicit: false,
			style:          Style(PlainScalarStyle),
		}
		return true
	}

	context := "while parsing a flow node"
	if block {
		context = "while parsing a block node"
	}
	parserSetParserErrorContext(parser, context, startMark,
		"did not find expected node content", token.startMark)
	return false
}

// Parse the productions:
// block_sequence ::= BLOCK-SEQUENCE-START (BLOCK-ENTRY block_node?)* BLOCK-END
//                    ********************  *********** *             *********
//
func parserParseBlockSequenceEntry(parser *Parser, event *Event, first bool) bool {
	if first {
		token := peekToken(parser)
		parser.marks = append(parser.marks, token.startMark)
		skipToken(parser)
	}

	token := peekToken(parser)
	if token == nil {
		return false
	}

	if token.typ == BlockEntryToken {
		mark := token.endMark
		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ != BlockEntryToken && token.typ != BlockEndToken {
			parser.states = append(parser.states, parseBlockSequenceEntryState)
			return parserParseNode(parser, event, true, false)
		}
		parser.state = parseBlockSequenceEntryState
		return parserProcessEmptyScalar(parser, event, mark)
	}
	if token.typ == BlockEndToken {
		parser.state = parser.states[len(parser.states)-1]
		parser.states = parser.states[:len(parser.states)-1]
		parser.marks = parser.marks[:len(parser.marks)-1]

		*event = Event{
			typ:       SequenceEndEvent,
			startMark: token.startMark,
			endMark:   token.endMark,
		}

		skipToken(parser)
		return true
	}

	contextMark := parser.marks[len(parser.marks)-1]
	parser.marks = parser.marks[:len(parser.marks)-1]
	return parserSetParserErrorContext(parser,
		"while parsing a block collection", contextMark,
		"did not find expected '-' indicator", token.startMark)
}

// Parse the productions:
// indentless_sequence  ::= (BLOCK-ENTRY block_node?)+
//                           *********** *
func parserParseIndentlessSequenceEntry(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}

	if token.typ == BlockEntryToken {
		mark := token.endMark
		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ != BlockEntryToken &&
			token.typ != KeyToken &&
			token.typ != ValueToken &&
			token.typ != BlockEndToken {
			parser.states = append(parser.states, parseIndentlessSequenceEntryState)
			return parserParseNode(parser, event, true, false)
		}
		parser.state = parseIndentlessSequenceEntryState
		return parserProcessEmptyScalar(parser, event, mark)
	}
	parser.state = parser.states[len(parser.states)-1]
	parser.states = parser.states[:len(parser.states)-1]

	*event = Event{
		typ:       SequenceEndEvent,
		startMark: token.startMark,
		endMark:   token.startMark,
	}
	return true
}

// Parse the productions:
// block_mapping        ::= BLOCK-MAPPING_START
//                          *******************
//                          ((KEY block_node_or_indentless_sequence?)?
//                            *** *
//                          (VALUE block_node_or_indentless_sequence?)?)*
//
//                          BLOCK-END
//                          *********
//
func parserParseBlockMappingKey(parser *Parser, event *Event, first bool) bool {
	if first {
		token := peekToken(parser)
		parser.marks = append(parser.marks, token.startMark)
		skipToken(parser)
	}

	token := peekToken(parser)
	if token == nil {
		return false
	}

	if token.typ == KeyToken {
		mark := token.endMark
		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ != KeyToken &&
			token.typ != ValueToken &&
			token.typ != BlockEndToken {
			parser.states = append(parser.states, parseBlockMappingValueState)
			return parserParseNode(parser, event, true, true)
		}
		parser.state = parseBlockMappingValueState
		return parserProcessEmptyScalar(parser, event, mark)
	} else if token.typ == BlockEndToken {
		parser.state = parser.states[len(parser.states)-1]
		parser.states = parser.states[:len(parser.states)-1]
		parser.marks = parser.marks[:len(parser.marks)-1]
		*event = Event{
			typ:       MappingEndEvent,
			startMark: token.startMark,
			endMark:   token.endMark,
		}
		skipToken(parser)
		return true
	}

	contextMark := parser.marks[len(parser.marks)-1]
	parser.marks = parser.marks[:len(parser.marks)-1]
	return parserSetParserErrorContext(parser,
		"while parsing a block mapping", contextMark,
		"did not find expected key", token.startMark)
}

// Parse the productions:
// block_mapping        ::= BLOCK-MAPPING_START
//
//                          ((KEY block_node_or_indentless_sequence?)?
//
//                          (VALUE block_node_or_indentless_sequence?)?)*
//                           ***** *
//                          BLOCK-END
//
//
func parserParseBlockMappingValue(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}
	if token.typ == ValueToken {
		mark := token.endMark
		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ != KeyToken &&
			token.typ != ValueToken &&
			token.typ != BlockEndToken {
			parser.states = append(parser.states, parseBlockMappingKeyState)
			return parserParseNode(parser, event, true, true)
		}
		parser.state = parseBlockMappingKeyState
		return parserProcessEmptyScalar(parser, event, mark)
	}
	parser.state = parseBlockMappingKeyState
	return parserProcessEmptyScalar(parser, event, token.startMark)
}

// Parse the productions:
// flow_sequence        ::= FLOW-SEQUENCE-START
//                          *******************
//                          (flow_sequence_entry FLOW-ENTRY)*
//                           *                   **********
//                          flow_sequence_entry?
//                          *
//                          FLOW-SEQUENCE-END
//                          *****************
// flow_sequence_entry  ::= flow_node | KEY flow_node? (VALUE flow_node?)?
//                          *
//
func parserParseFlowSequenceEntry(parser *Parser, event *Event, first bool) bool {
	if first {
		token := peekToken(parser)
		parser.marks = append(parser.marks, token.startMark)
		skipToken(parser)
	}
	token := peekToken(parser)
	if token == nil {
		return false
	}
	if token.typ != FlowSequenceEndToken {
		if !first {
			if token.typ == FlowEntryToken {
				skipToken(parser)
				token = peekToken(parser)
				if token == nil {
					return false
				}
			} else {
				contextMark := parser.marks[len(parser.marks)-1]
				parser.marks = parser.marks[:len(parser.marks)-1]
				return parserSetParserErrorContext(parser,
					"while parsing a flow sequence", contextMark,
					"did not find expected ',' or ']'", token.startMark)
			}
		}

		if token.typ == KeyToken {
			parser.state = parseFlowSequenceEntryMappingKeyState
			*event = Event{
				typ:       MappingStartEvent,
				startMark: token.startMark,
				endMark:   token.endMark,
				implicit:  true,
				style:     Style(FlowMappingStyle),
			}
			skipToken(parser)
			return true
		} else if token.typ != FlowSequenceEndToken {
			parser.states = append(parser.states, parseFlowSequenceEntryState)
			return parserParseNode(parser, event, false, false)
		}
	}

	parser.state = parser.states[len(parser.states)-1]
	parser.states = parser.states[:len(parser.states)-1]
	parser.marks = parser.marks[:len(parser.marks)-1]

	*event = Event{
		typ:       SequenceEndEvent,
		startMark: token.startMark,
		endMark:   token.endMark,
	}

	skipToken(parser)
	return true
}

//
// Parse the productions:
// flow_sequence_entry  ::= flow_node | KEY flow_node? (VALUE flow_node?)?
//                                      *** *
//
func parserParseFlowSequenceEntryMappingKey(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}
	if token.typ != ValueToken &&
		token.typ != FlowEntryToken &&
		token.typ != FlowSequenceEndToken {
		parser.states = append(parser.states, parseFlowSequenceEntryMappingValueState)
		return parserParseNode(parser, event, false, false)
	}
	mark := token.endMark
	skipToken(parser)
	parser.state = parseFlowSequenceEntryMappingValueState
	return parserProcessEmptyScalar(parser, event, mark)
}

// Parse the productions:
// flow_sequence_entry  ::= flow_node | KEY flow_node? (VALUE flow_node?)?
//                                                      ***** *
//
func parserParseFlowSequenceEntryMappingValue(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}
	if token.typ == ValueToken {
		skipToken(parser)
		token := peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ != FlowEntryToken && token.typ != FlowSequenceEndToken {
			parser.states = append(parser.states, parseFlowSequenceEntryMappingEndState)
			return parserParseNode(parser, event, false, false)
		}
	}
	parser.state = parseFlowSequenceEntryMappingEndState
	return parserProcessEmptyScalar(parser, event, token.startMark)
}

// Parse the productions:
// flow_sequence_entry  ::= flow_node | KEY flow_node? (VALUE flow_node?)?
//                                                                      *
//
func parserParseFlowSequenceEntryMappingEnd(parser *Parser, event *Event) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}
	parser.state = parseFlowSequenceEntryState
	*event = Event{
		typ:       MappingEndEvent,
		startMark: token.startMark,
		endMark:   token.startMark,
	}
	return true
}

// Parse the productions:
// flow_mapping         ::= FLOW-MAPPING-START
//                          ******************
//                          (flow_mapping_entry FLOW-ENTRY)*
//                           *                  **********
//                          flow_mapping_entry?
//                          ******************
//                          FLOW-MAPPING-END
//                          ****************
// flow_mapping_entry   ::= flow_node | KEY flow_node? (VALUE flow_node?)?
//                          *           *** *
//
func parserParseFlowMappingKey(parser *Parser, event *Event, first bool) bool {
	if first {
		token := peekToken(parser)
		parser.marks = append(parser.marks, token.startMark)
		skipToken(parser)
	}

	token := peekToken(parser)
	if token == nil {
		return false
	}

	if token.typ != FlowMappingEndToken {
		if !first {
			if token.typ == FlowEntryToken {
				skipToken(parser)
				token = peekToken(parser)
				if token == nil {
					return false
				}
			} else {
				contextMark := parser.marks[len(parser.marks)-1]
				parser.marks = parser.marks[:len(parser.marks)-1]
				return parserSetParserErrorContext(parser,
					"while parsing a flow mapping", contextMark,
					"did not find expected ',' or '}'", token.startMark)
			}
		}

		if token.typ == KeyToken {
			skipToken(parser)
			token = peekToken(parser)
			if token == nil {
				return false
			}
			if token.typ != ValueToken &&
				token.typ != FlowEntryToken &&
				token.typ != FlowMappingEndToken {
				parser.states = append(parser.states, parseFlowMappingValueState)
				return parserParseNode(parser, event, false, false)
			}
			parser.state = parseFlowMappingValueState
			return parserProcessEmptyScalar(parser, event, token.startMark)
		} else if token.typ != FlowMappingEndToken {
			parser.states = append(parser.states, parseFlowMappingEmptyValueState)
			return parserParseNode(parser, event, false, false)
		}
	}

	parser.state = parser.states[len(parser.states)-1]
	parser.states = parser.states[:len(parser.states)-1]
	parser.marks = parser.marks[:len(parser.marks)-1]
	*event = Event{
		typ:       MappingEndEvent,
		startMark: token.startMark,
		endMark:   token.endMark,
	}
	skipToken(parser)
	return true
}

// Parse the productions:
// flow_mapping_entry   ::= flow_node | KEY flow_node? (VALUE flow_node?)?
//                                   *                  ***** *
//
func parserParseFlowMappingValue(parser *Parser, event *Event, empty bool) bool {
	token := peekToken(parser)
	if token == nil {
		return false
	}
	if empty {
		parser.state = parseFlowMappingKeyState
		return parserProcessEmptyScalar(parser, event, token.startMark)
	}
	if token.typ == ValueToken {
		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
		if token.typ != FlowEntryToken && token.typ != FlowMappingEndToken {
			parser.states = append(parser.states, parseFlowMappingKeyState)
			return parserParseNode(parser, event, false, false)
		}
	}
	parser.state = parseFlowMappingKeyState
	return parserProcessEmptyScalar(parser, event, token.startMark)
}

// Generate an empty scalar event.
func parserProcessEmptyScalar(parser *Parser, event *Event, mark Mark) bool {
	*event = Event{
		typ:       ScalarEvent,
		startMark: mark,
		endMark:   mark,
		value:     nil, // Empty
		implicit:  true,
		style:     Style(PlainScalarStyle),
	}
	return true
}

var defaultTagDirectives = []TagDirective{
	{[]byte("!"), []byte("!")},
	{[]byte("!!"), []byte("tag:yaml.org,2002:")},
}

// Parse directives.
func parserProcessDirectives(parser *Parser,
	versionDirectiveRef **VersionDirective,
	tagDirectivesRef *[]TagDirective) bool {
	var versionDirective *VersionDirective
	var tagDirectives []TagDirective

	token := peekToken(parser)
	if token == nil {
		return false
	}

	for token.typ == VersionDirectiveToken || token.typ == TagDirectiveToken {
		if token.typ == VersionDirectiveToken {
			if versionDirective != nil {
				parserSetParserError(parser,
					"found duplicate %YAML directive", token.startMark)
				return false
			}
			if !isSupportedVersion(token.major, token.minor) {
				parserSetParserError(parser,
					"found incompatible YAML document", token.startMark)
				return false
			}
			versionDirective = &VersionDirective{
				major: token.major,
				minor: token.minor,
			}
		} else if token.typ == TagDirectiveToken {
			value := TagDirective{
				handle: token.value,
				prefix: token.prefix,
			}
			if !parserAppendTagDirective(parser, value, false, token.startMark) {
				return false
			}
			tagDirectives = append(tagDirectives, value)
		}

		skipToken(parser)
		token = peekToken(parser)
		if token == nil {
			return false
		}
	}

	for i := range defaultTagDirectives {
		if !parserAppendTagDirective(parser, defaultTagDirectives[i], true, token.startMark) {
			return false
		}
	}

	if versionDirectiveRef != nil {
		*versionDirectiveRef = versionDirective
	}
	if tagDirectivesRef != nil {
		*tagDirectivesRef = tagDirectives
	}
	return true
}

// Append a tag directive to the directives stack.
func parserAppendTagDirective(parser *Parser, value TagDirective, allowDuplicates bool, mark Mark) bool {
	for i := range parser.tagDirectives {
		if bytes.Equal(value.handle, parser.tagDirectives[i].handle) {
			if allowDuplicates {
				return true
			}
			return parserSetParserError(parser, "found duplicate %TAG directive", mark)
		}
	}

	valueCopy := TagDirective{
		handle: make([]byte, len(value.handle)),
		prefix: make([]byte, len(value.prefix)),
	}
	copy(valueCopy.handle, value.handle)
	copy(valueCopy.prefix, value.prefix)
	parser.tagDirectives = append(parser.tagDirectives, valueCopy)
	return true
}
