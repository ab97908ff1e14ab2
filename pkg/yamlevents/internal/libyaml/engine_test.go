// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml_test

import (
	"bytes"

	. "gopkg.in/check.v1"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

type parsedEvent struct {
	typ   libyaml.EventType
	value string
}

func parseAll(c *C, input string) ([]parsedEvent, *libyaml.Parser) {
	var parser libyaml.Parser
	c.Assert(libyaml.ParserInitialize(&parser), Equals, true)
	libyaml.ParserSetInputString(&parser, []byte(input))

	var result []parsedEvent
	for {
		var event libyaml.Event
		if !libyaml.ParserParse(&parser, &event) {
			return result, &parser
		}
		result = append(result, parsedEvent{event.Type(), string(event.Value())})
		if event.Type() == libyaml.StreamEndEvent || event.Type() == libyaml.NoEvent {
			return result, &parser
		}
		libyaml.EventDelete(&event)
	}
}

func (s *S) TestParseBlockMapping(c *C) {
	events, parser := parseAll(c, "a: 1\n")
	c.Assert(libyaml.ParserErrorType(parser), Equals, libyaml.NoError)
	c.Assert(events, DeepEquals, []parsedEvent{
		{libyaml.StreamStartEvent, ""},
		{libyaml.DocumentStartEvent, ""},
		{libyaml.MappingStartEvent, ""},
		{libyaml.ScalarEvent, "a"},
		{libyaml.ScalarEvent, "1"},
		{libyaml.MappingEndEvent, ""},
		{libyaml.DocumentEndEvent, ""},
		{libyaml.StreamEndEvent, ""},
	})
}

func (s *S) TestParseSkipsComments(c *C) {
	events, parser := parseAll(c, "# head\n- x # line\n# foot\n")
	c.Assert(libyaml.ParserErrorType(parser), Equals, libyaml.NoError)
	c.Assert(events, HasLen, 7)
	c.Assert(events[3], Equals, parsedEvent{libyaml.ScalarEvent, "x"})
}

func (s *S) TestParseMarks(c *C) {
	var parser libyaml.Parser
	libyaml.ParserInitialize(&parser)
	libyaml.ParserSetInputString(&parser, []byte("key: value\n"))

	var event libyaml.Event
	for i := 0; i < 5; i++ {
		c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
	}
	c.Assert(event.Type(), Equals, libyaml.ScalarEvent)
	c.Assert(event.StartMark().Index(), Equals, 5)
	c.Assert(event.StartMark().Line(), Equals, 0)
	c.Assert(event.StartMark().Column(), Equals, 5)
	c.Assert(event.EndMark().Column(), Equals, 10)
}

func (s *S) TestParseVersionDirectives(c *C) {
	for _, version := range []string{"1.1", "1.2"} {
		var parser libyaml.Parser
		libyaml.ParserInitialize(&parser)
		libyaml.ParserSetInputString(&parser, []byte("%YAML "+version+"\n--- a\n"))

		var event libyaml.Event
		c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
		c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
		c.Assert(event.Type(), Equals, libyaml.DocumentStartEvent)
		c.Assert(event.VersionDirective(), NotNil)
		c.Assert(event.VersionDirective().Major(), Equals, int8(1))
		c.Assert(event.Implicit(), Equals, false)
	}

	_, parser := parseAll(c, "%YAML 2.0\n--- a\n")
	c.Assert(libyaml.ParserErrorType(parser), Equals, libyaml.ParserError)
	c.Assert(libyaml.ParserProblem(parser), Equals, "found incompatible YAML document")
}

func (s *S) TestParseImplicitDocument(c *C) {
	var parser libyaml.Parser
	libyaml.ParserInitialize(&parser)
	libyaml.ParserSetInputString(&parser, []byte("key: value\n--- b\n"))

	var event libyaml.Event
	c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
	c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
	c.Assert(event.Type(), Equals, libyaml.DocumentStartEvent)
	c.Assert(event.Implicit(), Equals, true)

	for event.Type() != libyaml.DocumentEndEvent {
		c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
	}
	c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
	c.Assert(event.Type(), Equals, libyaml.DocumentStartEvent)
	c.Assert(event.Implicit(), Equals, false)
}

func (s *S) TestParseInvalidUTF8(c *C) {
	_, parser := parseAll(c, "a: \xc3\x28\n")
	c.Assert(libyaml.ParserErrorType(parser), Equals, libyaml.ReaderError)
}

func (s *S) TestParseUnclosedFlow(c *C) {
	_, parser := parseAll(c, "[a, b\n")
	c.Assert(libyaml.ParserErrorType(parser), Not(Equals), libyaml.NoError)
	c.Assert(libyaml.ParserProblem(parser), Not(Equals), "")
}

func (s *S) TestParseAfterErrorIsInert(c *C) {
	_, parser := parseAll(c, "[a, b\n")

	var event libyaml.Event
	c.Assert(libyaml.ParserParse(parser, &event), Equals, true)
	c.Assert(event.Type(), Equals, libyaml.NoEvent)
}

func (s *S) TestParseUTF16LE(c *C) {
	input := "\xff\xfea\x00:\x00 \x001\x00\n\x00"
	events, parser := parseAll(c, input)
	c.Assert(libyaml.ParserErrorType(parser), Equals, libyaml.NoError)
	c.Assert(libyaml.ParserEncoding(parser), Equals, libyaml.UTF16LEEncoding)
	c.Assert(events[3], Equals, parsedEvent{libyaml.ScalarEvent, "a"})
	c.Assert(events[4], Equals, parsedEvent{libyaml.ScalarEvent, "1"})
}

func (s *S) TestParseFromReader(c *C) {
	var parser libyaml.Parser
	libyaml.ParserInitialize(&parser)
	libyaml.ParserSetInputReader(&parser, bytes.NewBufferString("- 1\n- 2\n"))

	var types []libyaml.EventType
	for {
		var event libyaml.Event
		c.Assert(libyaml.ParserParse(&parser, &event), Equals, true)
		types = append(types, event.Type())
		if event.Type() == libyaml.StreamEndEvent {
			break
		}
	}
	c.Assert(types, DeepEquals, []libyaml.EventType{
		libyaml.StreamStartEvent, libyaml.DocumentStartEvent, libyaml.SequenceStartEvent,
		libyaml.ScalarEvent, libyaml.ScalarEvent, libyaml.SequenceEndEvent,
		libyaml.DocumentEndEvent, libyaml.StreamEndEvent,
	})
}

func emitAll(c *C, init func(*libyaml.Emitter), events ...libyaml.Event) (string, *libyaml.Emitter) {
	var emitter libyaml.Emitter
	var out []byte
	libyaml.EmitterInitialize(&emitter)
	libyaml.EmitterSetOutputString(&emitter, &out)
	if init != nil {
		init(&emitter)
	}
	for i := range events {
		if !libyaml.EmitterEmit(&emitter, &events[i]) {
			return string(out), &emitter
		}
	}
	libyaml.EmitterFlush(&emitter)
	return string(out), &emitter
}

func scalarDocument(c *C, value string, style libyaml.ScalarStyle) []libyaml.Event {
	events := make([]libyaml.Event, 5)
	c.Assert(libyaml.StreamStartEventInitialize(&events[0], libyaml.UTF8Encoding), Equals, true)
	c.Assert(libyaml.DocumentStartEventInitialize(&events[1], nil, nil, true), Equals, true)
	c.Assert(libyaml.ScalarEventInitialize(&events[2], nil, nil, []byte(value), true, true, style), Equals, true)
	c.Assert(libyaml.DocumentEndEventInitialize(&events[3], true), Equals, true)
	c.Assert(libyaml.StreamEndEventInitialize(&events[4]), Equals, true)
	return events
}

func (s *S) TestEmitPlainScalar(c *C) {
	out, emitter := emitAll(c, nil, scalarDocument(c, "x", libyaml.AnyScalarStyle)...)
	c.Assert(libyaml.EmitterErrorType(emitter), Equals, libyaml.NoError)
	c.Assert(out, Equals, "x\n")
}

func (s *S) TestEmitDoubleQuotedScalar(c *C) {
	out, _ := emitAll(c, nil, scalarDocument(c, "x", libyaml.DoubleQuotedScalarStyle)...)
	c.Assert(out, Equals, "\"x\"\n")
}

func (s *S) TestEmitFlowSequence(c *C) {
	events := make([]libyaml.Event, 8)
	libyaml.StreamStartEventInitialize(&events[0], libyaml.UTF8Encoding)
	libyaml.DocumentStartEventInitialize(&events[1], nil, nil, true)
	libyaml.SequenceStartEventInitialize(&events[2], nil, nil, true, libyaml.FlowSequenceStyle)
	libyaml.ScalarEventInitialize(&events[3], nil, nil, []byte("a"), true, true, libyaml.PlainScalarStyle)
	libyaml.ScalarEventInitialize(&events[4], nil, nil, []byte("b"), true, true, libyaml.PlainScalarStyle)
	libyaml.SequenceEndEventInitialize(&events[5])
	libyaml.DocumentEndEventInitialize(&events[6], true)
	libyaml.StreamEndEventInitialize(&events[7])

	out, emitter := emitAll(c, nil, events...)
	c.Assert(libyaml.EmitterErrorType(emitter), Equals, libyaml.NoError)
	c.Assert(out, Equals, "[a, b]\n")
}

func (s *S) TestEmitOutOfOrder(c *C) {
	events := make([]libyaml.Event, 1)
	libyaml.StreamEndEventInitialize(&events[0])

	_, emitter := emitAll(c, nil, events...)
	c.Assert(libyaml.EmitterErrorType(emitter), Equals, libyaml.EmitterError)
	c.Assert(libyaml.EmitterProblem(emitter), Equals, "expected STREAM-START")
}

func (s *S) TestAliasRequiresAnchor(c *C) {
	var event libyaml.Event
	c.Assert(libyaml.AliasEventInitialize(&event, nil), Equals, false)
	c.Assert(libyaml.AliasEventInitialize(&event, []byte{}), Equals, false)
	c.Assert(libyaml.AliasEventInitialize(&event, []byte("a")), Equals, true)
	c.Assert(string(event.Anchor()), Equals, "a")
}

func (s *S) TestInitializersRejectInvalidAnchors(c *C) {
	var event libyaml.Event
	c.Assert(libyaml.ScalarEventInitialize(&event, []byte("bad anchor"), nil, []byte("v"), true, true, libyaml.AnyScalarStyle), Equals, false)
	c.Assert(libyaml.SequenceStartEventInitialize(&event, []byte("a*"), nil, true, libyaml.AnySequenceStyle), Equals, false)
	c.Assert(libyaml.MappingStartEventInitialize(&event, []byte("\xc3\xa9"), nil, true, libyaml.AnyMappingStyle), Equals, false)
	c.Assert(libyaml.AliasEventInitialize(&event, []byte("a b")), Equals, false)

	c.Assert(libyaml.ScalarEventInitialize(&event, nil, nil, []byte("v"), true, true, libyaml.AnyScalarStyle), Equals, true)
	c.Assert(libyaml.MappingStartEventInitialize(&event, []byte("ok_1-2"), nil, true, libyaml.AnyMappingStyle), Equals, true)
}

func (s *S) TestInitializersRejectInvalidUTF8(c *C) {
	var event libyaml.Event
	c.Assert(libyaml.ScalarEventInitialize(&event, nil, nil, []byte("\xff"), true, true, libyaml.AnyScalarStyle), Equals, false)
	c.Assert(libyaml.MappingStartEventInitialize(&event, []byte("\xc3"), nil, true, libyaml.AnyMappingStyle), Equals, false)
}

func (s *S) TestEventDelete(c *C) {
	var event libyaml.Event
	libyaml.ScalarEventInitialize(&event, []byte("a"), nil, []byte("v"), true, true, libyaml.PlainScalarStyle)
	value := event.Value()

	libyaml.EventDelete(&event)
	c.Assert(event.Type(), Equals, libyaml.NoEvent)
	c.Assert(event.Value(), IsNil)
	c.Assert(string(value), Equals, "v")
}

func (s *S) TestEmitterIndentFallback(c *C) {
	events := make([]libyaml.Event, 10)
	libyaml.StreamStartEventInitialize(&events[0], libyaml.UTF8Encoding)
	libyaml.DocumentStartEventInitialize(&events[1], nil, nil, true)
	libyaml.MappingStartEventInitialize(&events[2], nil, nil, true, libyaml.BlockMappingStyle)
	libyaml.ScalarEventInitialize(&events[3], nil, nil, []byte("a"), true, true, libyaml.PlainScalarStyle)
	libyaml.MappingStartEventInitialize(&events[4], nil, nil, true, libyaml.BlockMappingStyle)
	libyaml.ScalarEventInitialize(&events[5], nil, nil, []byte("b"), true, true, libyaml.PlainScalarStyle)
	libyaml.ScalarEventInitialize(&events[6], nil, nil, []byte("c"), true, true, libyaml.PlainScalarStyle)
	libyaml.MappingEndEventInitialize(&events[7])
	libyaml.MappingEndEventInitialize(&events[8])
	libyaml.DocumentEndEventInitialize(&events[9], true)

	out, _ := emitAll(c, func(e *libyaml.Emitter) { libyaml.EmitterSetIndent(e, 12) }, events...)
	c.Assert(out, Equals, "a:\n  b: c\n")
}
