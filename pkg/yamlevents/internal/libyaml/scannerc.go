// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
)

// The scanner turns the character stream into tokens. Block collections
// are delimited by synthetic BLOCK-SEQUENCE-START, BLOCK-MAPPING-START and
// BLOCK-END tokens derived from indentation, and simple keys are resolved
// by inserting a KEY token retroactively once the ':' indicator is seen.

// Ensure that the buffer contains the required number of characters.
// Return true on success, false on failure (reader error or memory error).
func cache(parser *Parser, length int) bool {
	return parser.unread >= length || parserUpdateBuffer(parser, length)
}

// Advance the buffer pointer.
func skip(parser *Parser) {
	parser.mark.index++
	parser.mark.column++
	parser.unread--
	parser.bufferPos += width(parser.buffer[parser.bufferPos])
}

func skipLine(parser *Parser) {
	if isCrlf(parser.buffer, parser.bufferPos) {
		parser.mark.index += 2
		parser.mark.column = 0
		parser.mark.line++
		parser.unread -= 2
		parser.bufferPos += 2
	} else if isBreak(parser.buffer, parser.bufferPos) {
		parser.mark.index++
		parser.mark.column = 0
		parser.mark.line++
		parser.unread--
		parser.bufferPos += width(parser.buffer[parser.bufferPos])
	}
}

// Copy a character to a string buffer and advance pointers.
func read(parser *Parser, s []byte) []byte {
	w := width(parser.buffer[parser.bufferPos])
	if w == 0 {
		panic("invalid character sequence")
	}
	if len(s) == 0 {
		s = make([]byte, 0, 32)
	}
	if w == 1 && len(s)+w <= cap(s) {
		s = s[:len(s)+1]
		s[len(s)-1] = parser.buffer[parser.bufferPos]
		parser.bufferPos++
	} else {
		s = append(s, parser.buffer[parser.bufferPos:parser.bufferPos+w]...)
		parser.bufferPos += w
	}
	parser.mark.index++
	parser.mark.column++
	parser.unread--
	return s
}

// Copy a line break character to a string buffer and advance pointers.
func readLine(parser *Parser, s []byte) []byte {
	buf := parser.buffer
	pos := parser.bufferPos
	switch {
	case buf[pos] == '\r' && buf[pos+1] == '\n':
		s = append(s, '\n')
		parser.bufferPos += 2
		parser.mark.index++
		parser.unread--
	case buf[pos] == '\r' || buf[pos] == '\n':
		s = append(s, '\n')
		parser.bufferPos++
	case buf[pos] == '\xC2' && buf[pos+1] == '\x85':
		s = append(s, '\n')
		parser.bufferPos += 2
	case buf[pos] == '\xE2' && buf[pos+1] == '\x80' && (buf[pos+2] == '\xA8' || buf[pos+2] == '\xA9'):
		s = append(s, buf[parser.bufferPos:pos+3]...)
		parser.bufferPos += 3
	default:
		return s
	}
	parser.mark.index++
	parser.mark.column = 0
	parser.mark.line++
	parser.unread--
	return s
}

// Get the next token.
func parserScan(parser *Parser, token *Token) bool {
	*token = Token{}

	if parser.streamEndProduced || parser.error != NoError {
		return true
	}

	if !parser.tokenAvailable {
		if !parserFetchMoreTokens(parser) {
			return false
		}
	}

	*token = parser.tokens[parser.tokensHead]
	parser.tokensHead++
	parser.tokensParsed++
	parser.tokenAvailable = false

	if token.typ == StreamEndToken {
		parser.streamEndProduced = true
	}
	return true
}

// Set the scanner error and return false.
func parserSetScannerError(parser *Parser, context string, contextMark Mark, problem string) bool {
	parser.error = ScannerError
	parser.context = context
	parser.contextMark = contextMark
	parser.problem = problem
	parser.problemMark = parser.mark
	return false
}

func parserSetScannerTagError(parser *Parser, directive bool, contextMark Mark, problem string) bool {
	context := "while parsing a tag"
	if directive {
		context = "while parsing a %TAG directive"
	}
	return parserSetScannerError(parser, context, contextMark, problem)
}

// Ensure that the tokens queue contains at least one token which can be
// returned to the Parser.
func parserFetchMoreTokens(parser *Parser) bool {
	for {
		needMoreTokens := false

		if parser.tokensHead == len(parser.tokens) {
			needMoreTokens = true
		} else {
			if !parserStaleSimpleKeys(parser) {
				return false
			}

			for i := range parser.simpleKeys {
				simpleKey := &parser.simpleKeys[i]
				if simpleKey.possible && simpleKey.tokenNumber == parser.tokensParsed {
					needMoreTokens = true
					break
				}
			}
		}

		if !needMoreTokens {
			break
		}
		if !parserFetchNextToken(parser) {
			return false
		}
	}

	parser.tokenAvailable = true
	return true
}

// The dispatcher for token fetchers.
func parserFetchNextToken(parser *Parser) bool {
	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}

	if !parser.streamStartProduced {
		return parserFetchStreamStart(parser)
	}

	if !parserScanToNextToken(parser) {
		return false
	}

	if !parserStaleSimpleKeys(parser) {
		return false
	}

	if !parserUnrollIndent(parser, parser.mark.column) {
		return false
	}

	if parser.unread < 4 && !parserUpdateBuffer(parser, 4) {
		return false
	}

	if isZ(parser.buffer, parser.bufferPos) {
		return parserFetchStreamEnd(parser)
	}

	if parser.mark.column == 0 && parser.buffer[parser.bufferPos] == '%' {
		return parserFetchDirective(parser)
	}

	buf := parser.buffer
	pos := parser.bufferPos

	if parser.mark.column == 0 && buf[pos] == '-' && buf[pos+1] == '-' && buf[pos+2] == '-' && isBlankz(buf, pos+3) {
		return parserFetchDocumentIndicator(parser, DocumentStartToken)
	}

	if parser.mark.column == 0 && buf[pos] == '.' && buf[pos+1] == '.' && buf[pos+2] == '.' && isBlankz(buf, pos+3) {
		return parserFetchDocumentIndicator(parser, DocumentEndToken)
	}

	if buf[pos] == '[' {
		return parserFetchFlowCollectionStart(parser, FlowSequenceStartToken)
	}

	if parser.buffer[parser.bufferPos] == '{' {
		return parserFetchFlowCollectionStart(parser, FlowMappingStartToken)
	}

	if parser.buffer[parser.bufferPos] == ']' {
		return parserFetchFlowCollectionEnd(parser,
			FlowSequenceEndToken)
	}

	if parser.buffer[parser.bufferPos] == '}' {
		return parserFetchFlowCollectionEnd(parser,
			FlowMappingEndToken)
	}

	if parser.buffer[parser.bufferPos] == ',' {
		return parserFetchFlowEntry(parser)
	}

	if parser.buffer[parser.bufferPos] == '-' && isBlankz(parser.buffer, parser.bufferPos+1) {
		return parserFetchBlockEntry(parser)
	}

	if parser.buffer[parser.bufferPos] == '?' && (parser.flowLevel > 0 || isBlankz(parser.buffer, parser.bufferPos+1)) {
		return parserFetchKey(parser)
	}

	if parser.buffer[parser.bufferPos] == ':' && (parser.flowLevel > 0 || isBlankz(parser.buffer, parser.bufferPos+1)) {
		return parserFetchValue(parser)
	}

	if parser.buffer[parser.bufferPos] == '*' {
		return parserFetchAnchor(parser, AliasToken)
	}

	if parser.buffer[parser.bufferPos] == '&' {
		return parserFetchAnchor(parser, AnchorToken)
	}

	if parser.buffer[parser.bufferPos] == '!' {
		return parserFetchTag(parser)
	}

	if parser.buffer[parser.bufferPos] == '|' && parser.flowLevel == 0 {
		return parserFetchBlockScalar(parser, true)
	}

	if parser.buffer[parser.bufferPos] == '>' && parser.flowLevel == 0 {
		return parserFetchBlockScalar(parser, false)
	}

	if parser.buffer[parser.bufferPos] == '\'' {
		return parserFetchFlowScalar(parser, true)
	}

	if parser.buffer[parser.bufferPos] == '"' {
		return parserFetchFlowScalar(parser, false)
	}

	if !(isBlankz(parser.buffer, parser.bufferPos) || parser.buffer[parser.bufferPos] == '-' ||
		parser.buffer[parser.bufferPos] == '?' || parser.buffer[parser.bufferPos] == ':' ||
		parser.buffer[parser.bufferPos] == ',' || parser.buffer[parser.bufferPos] == '[' ||
		parser.buffer[parser.bufferPos] == ']' || parser.buffer[parser.bufferPos] == '{' ||
		parser.buffer[parser.bufferPos] == '}' || parser.buffer[parser.bufferPos] == '#' ||
		parser.buffer[parser.bufferPos] == '&' || parser.buffer[parser.bufferPos] == '*' ||
		parser.buffer[parser.bufferPos] == '!' || parser.buffer[parser.bufferPos] == '|' ||
		parser.buffer[parser.bufferPos] == '>' || parser.buffer[parser.bufferPos] == '\'' ||
		parser.buffer[parser.bufferPos] == '"' || parser.buffer[parser.bufferPos] == '%' ||
		parser.buffer[parser.bufferPos] == '@' || parser.buffer[parser.bufferPos] == '`') ||
		(parser.buffer[parser.bufferPos] == '-' && !isBlank(parser.buffer, parser.bufferPos+1)) ||
		(parser.flowLevel == 0 &&
			(parser.buffer[parser.bufferPos] == '?' || parser.buffer[parser.bufferPos] == ':') &&
			!isBlankz(parser.buffer, parser.bufferPos+1)) {
		return parserFetchPlainScalar(parser)
	}

	return parserSetScannerError(parser,
		"while scanning for the next token", parser.mark,
		"found character that cannot start any token")
}

// Check the list of potential simple keys and remove the positions that
// cannot contain simple keys anymore.
func parserStaleSimpleKeys(parser *Parser) bool {
	for i := range parser.simpleKeys {
		simpleKey := &parser.simpleKeys[i]

		if simpleKey.possible && (simpleKey.mark.line < parser.mark.line || simpleKey.mark.index+1024 < parser.mark.index) {
			if simpleKey.required {
				return parserSetScannerError(parser,
					"while scanning a simple key", simpleKey.mark,
					"could not find expected ':'")
			}
			simpleKey.possible = false
		}
	}
	return true
}

// Check if a simple key may start at the current position and add it if
// needed.
func parserSaveSimpleKey(parser *Parser) bool {
	required := parser.flowLevel == 0 && parser.indent == parser.mark.column

	if parser.simpleKeyAllowed {
		simpleKey := simpleKeyState{
			possible:    true,
			required:    required,
			tokenNumber: parser.tokensParsed + (len(parser.tokens) - parser.tokensHead),
		}
		simpleKey.mark = parser.mark

		if !parserRemoveSimpleKey(parser) {
			return false
		}
		parser.simpleKeys[len(parser.simpleKeys)-1] = simpleKey
	}
	return true
}

// Remove a potential simple key at the current flow level.
func parserRemoveSimpleKey(parser *Parser) bool {
	i := len(parser.simpleKeys) - 1
	if parser.simpleKeys[i].possible {
		if parser.simpleKeys[i].required {
			return parserSetScannerError(parser,
				"while scanning a simple key", parser.simpleKeys[i].mark,
				"could not find expected ':'")
		}
	}
	parser.simpleKeys[i].possible = false
	return true
}

// Increase the flow level and resize the simple key list if needed.
func parserIncreaseFlowLevel(parser *Parser) bool {
	parser.simpleKeys = append(parser.simpleKeys, simpleKeyState{})

	parser.flowLevel++
	return true
}

// Decrease the flow level.
func parserDecreaseFlowLevel(parser *Parser) bool {
	if parser.flowLevel > 0 {
		parser.flowLevel--
		parser.simpleKeys = parser.simpleKeys[:len(parser.simpleKeys)-1]
	}
	return true
}

// Push the current indentation level to the stack and set the new level
// the current column is greater than the indentation level.  In this case,
// append or insert the specified token into the token queue.
func parserRollIndent(parser *Parser, column, number int, typ TokenType, mark Mark) bool {
	if parser.flowLevel > 0 {
		return true
	}

	if parser.indent < column {
		parser.indents = append(parser.indents, parser.indent)
		parser.indent = column

		token := Token{
			typ:       typ,
			startMark: mark,
			endMark:   mark,
		}
		if number > -1 {
			number -= parser.tokensParsed
		}
		insertToken(parser, number, &token)
	}
	return true
}

// Pop indentation levels from the indents stack until the current level
// becomes less or equal to the column.  For each indentation level, append
// the BLOCK-END token.
func parserUnrollIndent(parser *Parser, column int) bool {
	if parser.flowLevel > 0 {
		return true
	}

	for parser.indent > column {
		token := Token{
			typ:       BlockEndToken,
			startMark: parser.mark,
			endMark:   parser.mark,
		}
		insertToken(parser, -1, &token)

		parser.indent = parser.indents[len(parser.indents)-1]
		parser.indents = parser.indents[:len(parser.indents)-1]
	}
	return true
}

// Initialize the scanner and produce the STREAM-START token.
func parserFetchStreamStart(parser *Parser) bool {
	parser.indent = -1

	parser.simpleKeys = append(parser.simpleKeys, simpleKeyState{})

	parser.simpleKeyAllowed = true

	parser.streamStartProduced = true

	token := Token{
		typ:       StreamStartToken,
		startMark: parser.mark,
		endMark:   parser.mark,
		encoding:  parser.encoding,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the STREAM-END token and shut down the scanner.
func parserFetchStreamEnd(parser *Parser) bool {
	if parser.mark.column != 0 {
		parser.mark.column = 0
		parser.mark.line++
	}

	if !parserUnrollIndent(parser, -1) {
		return false
	}

	if !parserRemoveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	token := Token{
		typ:       StreamEndToken,
		startMark: parser.mark,
		endMark:   parser.mark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce a VERSION-DIRECTIVE or TAG-DIRECTIVE token.
func parserFetchDirective(parser *Parser) bool {
	if !parserUnrollIndent(parser, -1) {
		return false
	}

	if !parserRemoveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	token := Token{}
	if !parserScanDirective(parser, &token) {
		return false
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the DOCUMENT-START or DOCUMENT-END token.
func parserFetchDocumentIndicator(parser *Parser, typ TokenType) bool {
	if !parserUnrollIndent(parser, -1) {
		return false
	}

	if !parserRemoveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	startMark := parser.mark

	skip(parser)
	skip(parser)
	skip(parser)

	endMark := parser.mark

	token := Token{
		typ:       typ,
		startMark: startMark,
		endMark:   endMark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the FLOW-SEQUENCE-START or FLOW-MAPPING-START token.
func parserFetchFlowCollectionStart(parser *Parser, typ TokenType) bool {
	if !parserSaveSimpleKey(parser) {
		return false
	}

	if !parserIncreaseFlowLevel(parser) {
		return false
	}

	parser.simpleKeyAllowed = true

	startMark := parser.mark
	skip(parser)
	endMark := parser.mark

	token := Token{
		typ:       typ,
		startMark: startMark,
		endMark:   endMark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the FLOW-SEQUENCE-END or FLOW-MAPPING-END token.
func parserFetchFlowCollectionEnd(parser *Parser, typ TokenType) bool {
	if !parserRemoveSimpleKey(parser) {
		return false
	}

	if !parserDecreaseFlowLevel(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	startMark := parser.mark
	skip(parser)
	endMark := parser.mark

	token := Token{
		typ:       typ,
		startMark: startMark,
		endMark:   endMark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the FLOW-ENTRY token.
func parserFetchFlowEntry(parser *Parser) bool {
	if !parserRemoveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = true

	startMark := parser.mark
	skip(parser)
	endMark := parser.mark

	token := Token{
		typ:       FlowEntryToken,
		startMark: startMark,
		endMark:   endMark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the BLOCK-ENTRY token.
func parserFetchBlockEntry(parser *Parser) bool {
	if parser.flowLevel == 0 {
		if !parser.simpleKeyAllowed {
			return parserSetScannerError(parser, "", parser.mark,
				"block sequence entries are not allowed in this context")
		}
		if !parserRollIndent(parser, parser.mark.column, -1, BlockSequenceStartToken, parser.mark) {
			return false
		}
	} else {
	}

	if !parserRemoveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = true

	startMark := parser.mark
	skip(parser)
	endMark := parser.mark

	token := Token{
		typ:       BlockEntryToken,
		startMark: startMark,
		endMark:   endMark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the KEY token.
func parserFetchKey(parser *Parser) bool {
	if parser.flowLevel == 0 {
		if !parser.simpleKeyAllowed {
			return parserSetScannerError(parser, "", parser.mark,
				"mapping keys are not allowed in this context")
		}
		if !parserRollIndent(parser, parser.mark.column, -1, BlockMappingStartToken, parser.mark) {
			return false
		}
	}

	if !parserRemoveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = parser.flowLevel == 0

	startMark := parser.mark
	skip(parser)
	endMark := parser.mark

	token := Token{
		typ:       KeyToken,
		startMark: startMark,
		endMark:   endMark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the VALUE token.
func parserFetchValue(parser *Parser) bool {
	simpleKey := &parser.simpleKeys[len(parser.simpleKeys)-1]

	if simpleKey.possible {
		token := Token{
			typ:       KeyToken,
			startMark: simpleKey.mark,
			endMark:   simpleKey.mark,
		}
		insertToken(parser, simpleKey.tokenNumber-parser.tokensParsed, &token)

		if !parserRollIndent(parser, simpleKey.mark.column,
			simpleKey.tokenNumber,
			BlockMappingStartToken, simpleKey.mark) {
			return false
		}

		simpleKey.possible = false

		parser.simpleKeyAllowed = false
	} else {
		if parser.flowLevel == 0 {
			if !parser.simpleKeyAllowed {
				return parserSetScannerError(parser, "", parser.mark,
					"mapping values are not allowed in this context")
			}

			if !parserRollIndent(parser, parser.mark.column, -1, BlockMappingStartToken, parser.mark) {
				return false
			}
		}

		parser.simpleKeyAllowed = parser.flowLevel == 0
	}

	startMark := parser.mark
	skip(parser)
	endMark := parser.mark

	token := Token{
		typ:       ValueToken,
		startMark: startMark,
		endMark:   endMark,
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the ALIAS or ANCHOR token.
func parserFetchAnchor(parser *Parser, typ TokenType) bool {
	if !parserSaveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	var token Token
	if !parserScanAnchor(parser, &token, typ) {
		return false
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the TAG token.
func parserFetchTag(parser *Parser) bool {
	if !parserSaveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	var token Token
	if !parserScanTag(parser, &token) {
		return false
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the SCALAR(...,literal) or SCALAR(...,folded) tokens.
func parserFetchBlockScalar(parser *Parser, literal bool) bool {
	if !parserRemoveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = true

	var token Token
	if !parserScanBlockScalar(parser, &token, literal) {
		return false
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the SCALAR(...,single-quoted) or SCALAR(...,double-quoted) tokens.
func parserFetchFlowScalar(parser *Parser, single bool) bool {
	if !parserSaveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	var token Token
	if !parserScanFlowScalar(parser, &token, single) {
		return false
	}
	insertToken(parser, -1, &token)
	return true
}

// Produce the SCALAR(...,plain) token.
func parserFetchPlainScalar(parser *Parser) bool {
	if !parserSaveSimpleKey(parser) {
		return false
	}

	parser.simpleKeyAllowed = false

	var token Token
	if !parserScanPlainScalar(parser, &token) {
		return false
	}
	insertToken(parser, -1, &token)
	return true
}

// Eat whitespaces and comments until the next token is found.
func parserScanToNextToken(parser *Parser) bool {
	for {
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
		if parser.mark.column == 0 && isBom(parser.buffer, parser.bufferPos) {
			skip(parser)
		}

		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}

		for parser.buffer[parser.bufferPos] == ' ' || ((parser.flowLevel > 0 || !parser.simpleKeyAllowed) && parser.buffer[parser.bufferPos] == '\t') {
			skip(parser)
			if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
				return false
			}
		}

		if parser.buffer[parser.bufferPos] == '#' {
			for !isBreakz(parser.buffer, parser.bufferPos) {
				skip(parser)
				if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
					return false
				}
			}
		}

		if isBreak(parser.buffer, parser.bufferPos) {
			if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
				return false
			}
			skipLine(parser)

			if parser.flowLevel == 0 {
				parser.simpleKeyAllowed = true
			}
		} else {
			break // We have found a token.
		}
	}

	return true
}

// Scan a YAML-DIRECTIVE or TAG-DIRECTIVE token.
//
// Scope:
//      %YAML    1.1    # a comment \n
//      ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
//      %TAG    !yaml!  tag:yaml.org,2002:  \n
//      ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
//
func parserScanDirective(parser *Parser, token *Token) bool {
	startMark := parser.mark
	skip(parser)

	var name []byte
	if !parserScanDirectiveName(parser, startMark, &name) {
		return false
	}

	if bytes.Equal(name, []byte("YAML")) {
		var major, minor int8
		if !parserScanVersionDirectiveValue(parser, startMark, &major, &minor) {
			return false
		}
		endMark := parser.mark

		*token = Token{
			typ:       VersionDirectiveToken,
			startMark: startMark,
			endMark:   endMark,
			major:     major,
			minor:     minor,
		}
	} else if bytes.Equal(name, []byte("TAG")) {
		var handle, prefix []byte
		if !parserScanTagDirectiveValue(parser, startMark, &handle, &prefix) {
			return false
		}
		endMark := parser.mark

		*token = Token{
			typ:       TagDirectiveToken,
			startMark: startMark,
			endMark:   endMark,
			value:     handle,
			prefix:    prefix,
		}
	} else {
		parserSetScannerError(parser, "while scanning a directive",
			startMark, "found unknown directive name")
		return false
	}

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}

	for isBlank(parser.buffer, parser.bufferPos) {
		skip(parser)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	if parser.buffer[parser.bufferPos] == '#' {
		for !isBreakz(parser.buffer, parser.bufferPos) {
			skip(parser)
			if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
				return false
			}
		}
	}

	if !isBreakz(parser.buffer, parser.bufferPos) {
		parserSetScannerError(parser, "while scanning a directive",
			startMark, "did not find expected comment or line break")
		return false
	}

	if isBreak(parser.buffer, parser.bufferPos) {
		if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
			return false
		}
		skipLine(parser)
	}

	return true
}

// Scan the directive name.
//
// Scope:
//      %YAML   1.1     # a comment \n
//       ^^^^
//      %TAG    !yaml!  tag:yaml.org,2002:  \n
//       ^^^
//
func parserScanDirectiveName(parser *Parser, startMark Mark, name *[]byte) bool {
	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}

	var s []byte
	for isAlpha(parser.buffer, parser.bufferPos) {
		s = read(parser, s)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	if len(s) == 0 {
		parserSetScannerError(parser, "while scanning a directive",
			startMark, "could not find expected directive name")
		return false
	}

	if !isBlankz(parser.buffer, parser.bufferPos) {
		parserSetScannerError(parser, "while scanning a directive",
			startMark, "found unexpected non-alphabetical character")
		return false
	}
	*name = s
	return true
}

// Scan the value of VERSION-DIRECTIVE.
//
// Scope:
//      %YAML   1.1     # a comment \n
//           ^^^^^^
func parserScanVersionDirectiveValue(parser *Parser, startMark Mark, major, minor *int8) bool {
	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	for isBlank(parser.buffer, parser.bufferPos) {
		skip(parser)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	if !parserScanVersionDirectiveNumber(parser, startMark, major) {
		return false
	}

	if parser.buffer[parser.bufferPos] != '.' {
		return parserSetScannerError(parser, "while scanning a %YAML directive",
			startMark, "did not find expected digit or '.' character")
	}

	skip(parser)

	if !parserScanVersionDirectiveNumber(parser, startMark, minor) {
		return false
	}
	return true
}

const maxNumberLength = 2

// Scan the version number of VERSION-DIRECTIVE.
//
// Scope:
//      %YAML   1.1     # a comment \n
//              ^
//      %YAML   1.1     # a comment \n
//                ^
func parserScanVersionDirectiveNumber(parser *Parser, startMark Mark, number *int8) bool {
	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	var value, length int8
	for isDigit(parser.buffer, parser.bufferPos) {
		length++
		if length > maxNumberLength {
			return parserSetScannerError(parser, "while scanning a %YAML directive",
				startMark, "found extremely long version number")
		}
		value = value*10 + int8(asDigit(parser.buffer, parser.bufferPos))
		skip(parser)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	if length == 0 {
		return parserSetScannerError(parser, "while scanning a %YAML directive",
			startMark, "did not find expected version number")
	}
	*number = value
	return true
}

// Scan the value of a TAG-DIRECTIVE token.
//
// Scope:
//      %TAG    !yaml!  tag:yaml.org,2002:  \n
//          ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
//
func parserScanTagDirectiveValue(parser *Parser, startMark Mark, handle, prefix *[]byte) bool {
	var handleValue, prefixValue []byte

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}

	for isBlank(parser.buffer, parser.bufferPos) {
		skip(parser)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	if !parserScanTagHandle(parser, true, startMark, &handleValue) {
		return false
	}

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	if !isBlank(parser.buffer, parser.bufferPos) {
		parserSetScannerError(parser, "while scanning a %TAG directive",
			startMark, "did not find expected whitespace")
		return false
	}

	for isBlank(parser.buffer, parser.bufferPos) {
		skip(parser)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	if !parserScanTagURI(parser, true, nil, startMark, &prefixValue) {
		return false
	}

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	if !isBlankz(parser.buffer, parser.bufferPos) {
		parserSetScannerError(parser, "while scanning a %TAG directive",
			startMark, "did not find expected whitespace or line break")
		return false
	}

	*handle = handleValue
	*prefix = prefixValue
	return true
}

func parserScanAnchor(parser *Parser, token *Token, typ TokenType) bool {
	var s []byte

	startMark := parser.mark
	skip(parser)

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}

	for isAlpha(parser.buffer, parser.bufferPos) {
		s = read(parser, s)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	endMark := parser.mark

	/*
	 * Check if length of the anchor is greater than 0 and it is followed by
	 * a whitespace character or one of the indicators:
	 *
	 *      '?', ':', ',', ']', '}', '%', '@', '`'.
	 */

	if len(s) == 0 ||
		!(isBlankz(parser.buffer, parser.bufferPos) || parser.buffer[parser.bufferPos] == '?' ||
			parser.buffer[parser.bufferPos] == ':' || parser.buffer[parser.bufferPos] == ',' ||
			parser.buffer[parser.bufferPos] == ']' || parser.buffer[parser.bufferPos] == '}' ||
			parser.buffer[parser.bufferPos] == '%' || parser.buffer[parser.bufferPos] == '@' ||
			parser.buffer[parser.bufferPos] == '`') {
		context := "while scanning an alias"
		if typ == AnchorToken {
			context = "while scanning an anchor"
		}
		parserSetScannerError(parser, context, startMark,
			"did not find expected alphabetic or numeric character")
		return false
	}

	*token = Token{
		typ:       typ,
		startMark: startMark,
		endMark:   endMark,
		value:     s,
	}

	return true
}

/*
 * Scan a TAG token.
 */

func parserScanTag(parser *Parser, token *Token) bool {
	var handle, suffix []byte

	startMark := parser.mark

	if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
		return false
	}

	if parser.buffer[parser.bufferPos+1] == '<' {
		skip(parser)
		skip(parser)

		if !parserScanTagURI(parser, false, nil, startMark, &suffix) {
			return false
		}

		if parser.buffer[parser.bufferPos] != '>' {
			parserSetScannerError(parser, "while scanning a tag",
				startMark, "did not find the expected '>'")
			return false
		}

		skip(parser)
	} else {
		if !parserScanTagHandle(parser, false, startMark, &handle) {
			return false
		}

		if handle[0] == '!' && len(handle) > 1 && handle[len(handle)-1] == '!' {
			if !parserScanTagURI(parser, false, nil, startMark, &suffix) {
				return false
			}
		} else {
			if !parserScanTagURI(parser, false, handle, startMark, &suffix) {
				return false
			}

			handle = []byte{'!'}

			if len(suffix) == 0 {
				handle, suffix = suffix, handle
			}
		}
	}

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	if !isBlankz(parser.buffer, parser.bufferPos) {
		parserSetScannerError(parser, "while scanning a tag",
			startMark, "did not find expected whitespace or line break")
		return false
	}

	endMark := parser.mark

	*token = Token{
		typ:       TagToken,
		startMark: startMark,
		endMark:   endMark,
		value:     handle,
		suffix:    suffix,
	}
	return true
}

// Scan a tag handle.
func parserScanTagHandle(parser *Parser, directive bool, startMark Mark, handle *[]byte) bool {
	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	if parser.buffer[parser.bufferPos] != '!' {
		parserSetScannerTagError(parser, directive,
			startMark, "did not find expected '!'")
		return false
	}

	var s []byte

	s = read(parser, s)

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	for isAlpha(parser.buffer, parser.bufferPos) {
		s = read(parser, s)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}

	if parser.buffer[parser.bufferPos] == '!' {
		s = read(parser, s)
	} else {
		if directive && string(s) != "!" {
			parserSetScannerTagError(parser, directive,
				startMark, "did not find expected '!'")
			return false
		}
	}

	*handle = s
	return true
}

// Scan a tag.
func parserScanTagURI(parser *Parser, directive bool, head []byte, startMark Mark, uri *[]byte) bool {
	var s []byte
	hasTag := len(head) > 0

	if len(head) > 1 {
		s = append(s, head[1:]...)
	}

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}

	for isAlpha(parser.buffer, parser.bufferPos) || parser.buffer[parser.bufferPos] == ';' ||
		parser.buffer[parser.bufferPos] == '/' || parser.buffer[parser.bufferPos] == '?' ||
		parser.buffer[parser.bufferPos] == ':' || parser.buffer[parser.bufferPos] == '@' ||
		parser.buffer[parser.bufferPos] == '&' || parser.buffer[parser.bufferPos] == '=' ||
		parser.buffer[parser.bufferPos] == '+' || parser.buffer[parser.bufferPos] == '$' ||
		parser.buffer[parser.bufferPos] == ',' || parser.buffer[parser.bufferPos] == '.' ||
		parser.buffer[parser.bufferPos] == '!' || parser.buffer[parser.bufferPos] == '~' ||
		parser.buffer[parser.bufferPos] == '*' || parser.buffer[parser.bufferPos] == '\'' ||
		parser.buffer[parser.bufferPos] == '(' || parser.buffer[parser.bufferPos] == ')' ||
		parser.buffer[parser.bufferPos] == '[' || parser.buffer[parser.bufferPos] == ']' ||
		parser.buffer[parser.bufferPos] == '%' {
		if parser.buffer[parser.bufferPos] == '%' {
			if !parserScanURIEscapes(parser, directive, startMark, &s) {
				return false
			}
		} else {
			s = read(parser, s)
		}
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
		hasTag = true
	}

	if !hasTag {
		parserSetScannerTagError(parser, directive,
			startMark, "did not find expected tag URI")
		return false
	}
	*uri = s
	return true
}

// Decode an URI-escape sequence corresponding to a single UTF-8 character.
func parserScanURIEscapes(parser *Parser, directive bool, startMark Mark, s *[]byte) bool {
	w := 1024
	for w > 0 {
		if parser.unread < 3 && !parserUpdateBuffer(parser, 3) {
			return false
		}

		if !(parser.buffer[parser.bufferPos] == '%' &&
			isHex(parser.buffer, parser.bufferPos+1) &&
			isHex(parser.buffer, parser.bufferPos+2)) {
			return parserSetScannerTagError(parser, directive,
				startMark, "did not find URI escaped octet")
		}

		octet := byte((asHex(parser.buffer, parser.bufferPos+1) << 4) + asHex(parser.buffer, parser.bufferPos+2))

		if w == 1024 {
			w = width(octet)
			if w == 0 {
				return parserSetScannerTagError(parser, directive,
					startMark, "found an incorrect leading UTF-8 octet")
			}
		} else {
			if octet&0xC0 != 0x80 {
				return parserSetScannerTagError(parser, directive,
					startMark, "found an incorrect trailing UTF-8 octet")
			}
		}

		*s = append(*s, octet)
		skip(parser)
		skip(parser)
		skip(parser)
		w--
	}
	return true
}

// Scan a block scalar.
func parserScanBlockScalar(parser *Parser, token *Token, literal bool) bool {
	startMark := parser.mark
	skip(parser)

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}

	var chomping, increment int
	if parser.buffer[parser.bufferPos] == '+' || parser.buffer[parser.bufferPos] == '-' {
		if parser.buffer[parser.bufferPos] == '+' {
			chomping = +1
		} else {
			chomping = -1
		}
		skip(parser)

		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
		if isDigit(parser.buffer, parser.bufferPos) {
			if parser.buffer[parser.bufferPos] == '0' {
				parserSetScannerError(parser, "while scanning a block scalar",
					startMark, "found an indentation indicator equal to 0")
				return false
			}

			increment = asDigit(parser.buffer, parser.bufferPos)
			skip(parser)
		}
	} else if isDigit(parser.buffer, parser.bufferPos) {
		if parser.buffer[parser.bufferPos] == '0' {
			parserSetScannerError(parser, "while scanning a block scalar",
				startMark, "found an indentation indicator equal to 0")
			return false
		}
		increment = asDigit(parser.buffer, parser.bufferPos)
		skip(parser)

		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
		if parser.buffer[parser.bufferPos] == '+' || parser.buffer[parser.bufferPos] == '-' {
			if parser.buffer[parser.bufferPos] == '+' {
				chomping = +1
			} else {
				chomping = -1
			}
			skip(parser)
		}
	}

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	for isBlank(parser.buffer, parser.bufferPos) {
		skip(parser)
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
	}
	if parser.buffer[parser.bufferPos] == '#' {
		for !isBreakz(parser.buffer, parser.bufferPos) {
			skip(parser)
			if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
				return false
			}
		}
	}

	if !isBreakz(parser.buffer, parser.bufferPos) {
		parserSetScannerError(parser, "while scanning a block scalar",
			startMark, "did not find expected comment or line break")
		return false
	}

	if isBreak(parser.buffer, parser.bufferPos) {
		if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
			return false
		}
		skipLine(parser)
	}

	endMark := parser.mark

	var indent int
	if increment > 0 {
		if parser.indent >= 0 {
			indent = parser.indent + increment
		} else {
			indent = increment
		}
	}

	var s, leadingBreak, trailingBreaks []byte
	if !parserScanBlockScalarBreaks(parser, &indent, &trailingBreaks, startMark, &endMark) {
		return false
	}

	if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
		return false
	}
	var leadingBlank, trailingBlank bool
	for parser.mark.column == indent && !isZ(parser.buffer, parser.bufferPos) {
		trailingBlank = isBlank(parser.buffer, parser.bufferPos)

		if !literal && !leadingBlank && !trailingBlank && len(leadingBreak) > 0 && leadingBreak[0] == '\n' {
			if len(trailingBreaks) == 0 {
				s = append(s, ' ')
			}
		} else {
			s = append(s, leadingBreak...)
		}
		leadingBreak = leadingBreak[:0]

		s = append(s, trailingBreaks...)
		trailingBreaks = trailingBreaks[:0]

		leadingBlank = isBlank(parser.buffer, parser.bufferPos)

		for !isBreakz(parser.buffer, parser.bufferPos) {
			s = read(parser, s)
			if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
				return false
			}
		}

		if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
			return false
		}

		leadingBreak = readLine(parser, leadingBreak)

		if !parserScanBlockScalarBreaks(parser, &indent, &trailingBreaks, startMark, &endMark) {
			return false
		}
	}

	if chomping != -1 {
		s = append(s, leadingBreak...)
	}
	if chomping == 1 {
		s = append(s, trailingBreaks...)
	}

	*token = Token{
		typ:       ScalarToken,
		startMark: startMark,
		endMark:   endMark,
		value:     s,
		style:     LiteralScalarStyle,
	}
	if !literal {
		token.style = FoldedScalarStyle
	}
	return true
}

// Scan indentation spaces and line breaks for a block scalar.  Determine the
// indentation level if needed.
func parserScanBlockScalarBreaks(parser *Parser, indent *int, breaks *[]byte, startMark Mark, endMark *Mark) bool {
	*endMark = parser.mark

	maxIndent := 0
	for {
		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}
		for (*indent == 0 || parser.mark.column < *indent) && isSpace(parser.buffer, parser.bufferPos) {
			skip(parser)
			if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
				return false
			}
		}
		if parser.mark.column > maxIndent {
			maxIndent = parser.mark.column
		}

		if (*indent == 0 || parser.mark.column < *indent) && isTab(parser.buffer, parser.bufferPos) {
			return parserSetScannerError(parser, "while scanning a block scalar",
				startMark, "found a tab character where an indentation space is expected")
		}

		if !isBreak(parser.buffer, parser.bufferPos) {
			break
		}

		if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
			return false
		}
		*breaks = readLine(parser, *breaks)
		*endMark = parser.mark
	}

	if *indent == 0 {
		*indent = maxIndent
		if *indent < parser.indent+1 {
			*indent = parser.indent + 1
		}
		if *indent < 1 {
			*indent = 1
		}
	}
	return true
}

// Scan a quoted scalar.
func parserScanFlowScalar(parser *Parser, token *Token, single bool) bool {
	startMark := parser.mark
	skip(parser)

	var s, leadingBreak, trailingBreaks, whitespaces []byte
	for {
		if parser.unread < 4 && !parserUpdateBuffer(parser, 4) {
			return false
		}

		if parser.mark.column == 0 &&
			((parser.buffer[parser.bufferPos+0] == '-' &&
				parser.buffer[parser.bufferPos+1] == '-' &&
				parser.buffer[parser.bufferPos+2] == '-') ||
				(parser.buffer[parser.bufferPos+0] == '.' &&
					parser.buffer[parser.bufferPos+1] == '.' &&
					parser.buffer[parser.bufferPos+2] == '.')) &&
			isBlankz(parser.buffer, parser.bufferPos+3) {
			parserSetScannerError(parser, "while scanning a quoted scalar",
				startMark, "found unexpected document indicator")
			return false
		}

		if isZ(parser.buffer, parser.bufferPos) {
			parserSetScannerError(parser, "while scanning a quoted scalar",
				startMark, "found unexpected end of stream")
			return false
		}

		leadingBlanks := false
		for !isBlankz(parser.buffer, parser.bufferPos) {
			if single && parser.buffer[parser.bufferPos] == '\'' && parser.buffer[parser.bufferPos+1] == '\'' {
				s = append(s, '\'')
				skip(parser)
				skip(parser)
			} else if single && parser.buffer[parser.bufferPos] == '\'' {
				break
			} else if !single && parser.buffer[parser.bufferPos] == '"' {
				break
			} else if !single && parser.buffer[parser.bufferPos] == '\\' && isBreak(parser.buffer, parser.bufferPos+1) {
				if parser.unread < 3 && !parserUpdateBuffer(parser, 3) {
					return false
				}
				skip(parser)
				skipLine(parser)
				leadingBlanks = true
				break
			} else if !single && parser.buffer[parser.bufferPos] == '\\' {
				codeLength := 0

				switch parser.buffer[parser.bufferPos+1] {
				case '0':
					s = append(s, 0)
				case 'a':
					s = append(s, '\x07')
				case 'b':
					s = append(s, '\x08')
				case 't', '\t':
					s = append(s, '\x09')
				case 'n':
					s = append(s, '\x0A')
				case 'v':
					s = append(s, '\x0B')
				case 'f':
					s = append(s, '\x0C')
				case 'r':
					s = append(s, '\x0D')
				case 'e':
					s = append(s, '\x1B')
				case ' ':
					s = append(s, '\x20')
				case '"':
					s = append(s, '"')
				case '\'':
					s = append(s, '\'')
				case '\\':
					s = append(s, '\\')
				case 'N': // NEL (#x85)
					s = append(s, '\xC2')
					s = append(s, '\x85')
				case '_': // #xA0
					s = append(s, '\xC2')
					s = append(s, '\xA0')
				case 'L': // LS (#x2028)
					s = append(s, '\xE2')
					s = append(s, '\x80')
					s = append(s, '\xA8')
				case 'P': // PS (#x2029)
					s = append(s, '\xE2')
					s = append(s, '\x80')
					s = append(s, '\xA9')
				case 'x':
					codeLength = 2
				case 'u':
					codeLength = 4
				case 'U':
					codeLength = 8
				default:
					parserSetScannerError(parser, "while parsing a quoted scalar",
						startMark, "found unknown escape character")
					return false
				}

				skip(parser)
				skip(parser)

				if codeLength > 0 {
					var value int

					if parser.unread < codeLength && !parserUpdateBuffer(parser, codeLength) {
						return false
					}
					for k := 0; k < codeLength; k++ {
						if !isHex(parser.buffer, parser.bufferPos+k) {
							parserSetScannerError(parser, "while parsing a quoted scalar",
								startMark, "did not find expected hexdecimal number")
							return false
						}
						value = (value << 4) + asHex(parser.buffer, parser.bufferPos+k)
					}

					if (value >= 0xD800 && value <= 0xDFFF) || value > 0x10FFFF {
						parserSetScannerError(parser, "while parsing a quoted scalar",
							startMark, "found invalid Unicode character escape code")
						return false
					}
					if value <= 0x7F {
						s = append(s, byte(value))
					} else if value <= 0x7FF {
						s = append(s, byte(0xC0+(value>>6)))
						s = append(s, byte(0x80+(value&0x3F)))
					} else if value <= 0xFFFF {
						s = append(s, byte(0xE0+(value>>12)))
						s = append(s, byte(0x80+((value>>6)&0x3F)))
						s = append(s, byte(0x80+(value&0x3F)))
					} else {
						s = append(s, byte(0xF0+(value>>18)))
						s = append(s, byte(0x80+((value>>12)&0x3F)))
						s = append(s, byte(0x80+((value>>6)&0x3F)))
						s = append(s, byte(0x80+(value&0x3F)))
					}

					for k := 0; k < codeLength; k++ {
						skip(parser)
					}
				}
			} else {
				s = read(parser, s)
			}
			if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
				return false
			}
		}

		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}

		if single {
			if parser.buffer[parser.bufferPos] == '\'' {
				break
			}
		} else {
			if parser.buffer[parser.bufferPos] == '"' {
				break
			}
		}

		for isBlank(parser.buffer, parser.bufferPos) || isBreak(parser.buffer, parser.bufferPos) {
			if isBlank(parser.buffer, parser.bufferPos) {
				if !leadingBlanks {
					whitespaces = read(parser, whitespaces)
				} else {
					skip(parser)
				}
			} else {
				if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
					return false
				}

				if !leadingBlanks {
					whitespaces = whitespaces[:0]
					leadingBreak = readLine(parser, leadingBreak)
					leadingBlanks = true
				} else {
					trailingBreaks = readLine(parser, trailingBreaks)
				}
			}
			if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
				return false
			}
		}

		if leadingBlanks {
			if len(leadingBreak) > 0 && leadingBreak[0] == '\n' {
				if len(trailingBreaks) == 0 {
					s = append(s, ' ')
				} else {
					s = append(s, trailingBreaks...)
				}
			} else {
				s = append(s, leadingBreak...)
				s = append(s, trailingBreaks...)
			}
			trailingBreaks = trailingBreaks[:0]
			leadingBreak = leadingBreak[:0]
		} else {
			s = append(s, whitespaces...)
			whitespaces = whitespaces[:0]
		}
	}

	skip(parser)
	endMark := parser.mark

	*token = Token{
		typ:       ScalarToken,
		startMark: startMark,
		endMark:   endMark,
		value:     s,
		style:     SingleQuotedScalarStyle,
	}
	if !single {
		token.style = DoubleQuotedScalarStyle
	}
	return true
}

// Scan a plain scalar.
func parserScanPlainScalar(parser *Parser, token *Token) bool {
	var s, leadingBreak, trailingBreaks, whitespaces []byte
	var leadingBlanks bool
	var indent = parser.indent + 1

	startMark := parser.mark
	endMark := parser.mark

	for {
		if parser.unread < 4 && !parserUpdateBuffer(parser, 4) {
			return false
		}
		if parser.mark.column == 0 &&
			((parser.buffer[parser.bufferPos+0] == '-' &&
				parser.buffer[parser.bufferPos+1] == '-' &&
				parser.buffer[parser.bufferPos+2] == '-') ||
				(parser.buffer[parser.bufferPos+0] == '.' &&
					parser.buffer[parser.bufferPos+1] == '.' &&
					parser.buffer[parser.bufferPos+2] == '.')) &&
			isBlankz(parser.buffer, parser.bufferPos+3) {
			break
		}

		if parser.buffer[parser.bufferPos] == '#' {
			break
		}

		for !isBlankz(parser.buffer, parser.bufferPos) {
			if (parser.buffer[parser.bufferPos] == ':' && isBlankz(parser.buffer, parser.bufferPos+1)) ||
				(parser.flowLevel > 0 &&
					(parser.buffer[parser.bufferPos] == ',' ||
						parser.buffer[parser.bufferPos] == '?' || parser.buffer[parser.bufferPos] == '[' ||
						parser.buffer[parser.bufferPos] == ']' || parser.buffer[parser.bufferPos] == '{' ||
						parser.buffer[parser.bufferPos] == '}')) {
				break
			}

			if leadingBlanks || len(whitespaces) > 0 {
				if leadingBlanks {
					if leadingBreak[0] == '\n' {
						if len(trailingBreaks) == 0 {
							s = append(s, ' ')
						} else {
							s = append(s, trailingBreaks...)
						}
					} else {
						s = append(s, leadingBreak...)
						s = append(s, trailingBreaks...)
					}
					trailingBreaks = trailingBreaks[:0]
					leadingBreak = leadingBreak[:0]
					leadingBlanks = false
				} else {
					s = append(s, whitespaces...)
					whitespaces = whitespaces[:0]
				}
			}

			s = read(parser, s)

			endMark = parser.mark
			if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
				return false
			}
		}

		if !(isBlank(parser.buffer, parser.bufferPos) || isBreak(parser.buffer, parser.bufferPos)) {
			break
		}

		if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
			return false
		}

		for isBlank(parser.buffer, parser.bufferPos) || isBreak(parser.buffer, parser.bufferPos) {
			if isBlank(parser.buffer, parser.bufferPos) {
				if leadingBlanks && parser.mark.column < indent && isTab(parser.buffer, parser.bufferPos) {
					parserSetScannerError(parser, "while scanning a plain scalar",
						startMark, "found a tab character that violates indentation")
					return false
				}

				if !leadingBlanks {
					whitespaces = read(parser, whitespaces)
				} else {
					skip(parser)
				}
			} else {
				if parser.unread < 2 && !parserUpdateBuffer(parser, 2) {
					return false
				}

				if !leadingBlanks {
					whitespaces = whitespaces[:0]
					leadingBreak = readLine(parser, leadingBreak)
					leadingBlanks = true
				} else {
					trailingBreaks = readLine(parser, trailingBreaks)
				}
			}
			if parser.unread < 1 && !parserUpdateBuffer(parser, 1) {
				return false
			}
		}

		if parser.flowLevel == 0 && parser.mark.column < indent {
			break
		}
	}

	*token = Token{
		typ:       ScalarToken,
		startMark: startMark,
		endMark:   endMark,
		value:     s,
		style:     PlainScalarStyle,
	}

	if leadingBlanks {
		parser.simpleKeyAllowed = true
	}
	return true
}
