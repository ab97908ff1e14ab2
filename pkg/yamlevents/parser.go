// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"io"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

type ParserOpts struct {
	// Encoding skips BOM detection when set.
	Encoding Encoding
}

type parserState int

const (
	parserActive parserState = iota
	parserEnded
)

// Parser reads events from a YAML stream. It only moves forward and
// is not safe for concurrent use.
type Parser struct {
	handle *libyaml.Parser
	input  io.Reader

	state   parserState
	current Event
	err     error
}

func NewParser(input io.Reader, opts ParserOpts) *Parser {
	handle := &libyaml.Parser{}
	libyaml.ParserInitialize(handle)
	libyaml.ParserSetInputReader(handle, input)
	if opts.Encoding != AnyEncoding {
		libyaml.ParserSetEncoding(handle, opts.Encoding.engineEncoding())
	}
	return &Parser{handle: handle, input: input}
}

// Next returns the next event of the stream. After StreamEnd it returns
// io.EOF. If the engine fails, Next returns a *ParseError and keeps
// returning it on every later call.
func (p *Parser) Next() (Event, error) {
	if p.handle == nil {
		return nil, ErrClosed
	}
	if p.state == parserEnded {
		if p.err != nil {
			return nil, p.err
		}
		return nil, io.EOF
	}

	p.releaseCurrent()

	raw := &libyaml.Event{}
	if !libyaml.ParserParse(p.handle, raw) {
		return nil, p.fail(newParseError(p.handle))
	}

	ev, err := newEvent(raw)
	if err != nil {
		libyaml.EventDelete(raw)
		return nil, p.fail(err)
	}

	p.current = ev
	if ev.Kind() == StreamEndKind {
		p.state = parserEnded
	}
	return ev, nil
}

// Current is the event last returned by Next, or nil.
func (p *Parser) Current() Event { return p.current }

// Close releases the engine state and drops the input reader.
// It does not close the reader. Calling Close again is a no-op.
func (p *Parser) Close() error {
	if p.handle == nil {
		return nil
	}
	p.releaseCurrent()
	libyaml.ParserDelete(p.handle)
	p.handle = nil
	p.input = nil
	p.state = parserEnded
	return nil
}

func (p *Parser) releaseCurrent() {
	if p.current != nil {
		p.current.Release()
	}
}

func (p *Parser) fail(err error) error {
	p.state = parserEnded
	p.err = err
	return err
}
