// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"errors"
	"io"
)

// Consume reads the next event and requires it to be a T.
func Consume[T Event](p *Parser) (T, error) {
	var zero T

	ev, err := p.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return zero, &UnexpectedEventError{Expected: kindOf[T]()}
		}
		return zero, err
	}

	typedEv, ok := ev.(T)
	if !ok {
		return zero, &UnexpectedEventError{Expected: kindOf[T](), Actual: ev}
	}
	return typedEv, nil
}

func kindOf[T Event]() Kind {
	var zero T
	if any(zero) == nil {
		return 0
	}
	return zero.Kind()
}

// SkipNode reads the next node, including every event nested in it, and
// returns the event that started it.
func (p *Parser) SkipNode() (Event, error) {
	first, err := p.Next()
	if err != nil {
		return nil, err
	}

	depth := nesting(first)
	for depth > 0 {
		ev, err := p.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return first, io.ErrUnexpectedEOF
			}
			return first, err
		}
		depth += nesting(ev)
	}
	return first, nil
}

func nesting(ev Event) int {
	switch ev.(type) {
	case *StreamStart, *DocumentStart, *SequenceStart, *MappingStart:
		return 1
	case *StreamEnd, *DocumentEnd, *SequenceEnd, *MappingEnd:
		return -1
	default:
		return 0
	}
}

// ReadAll parses input to the end. On failure it returns the events read
// so far together with the error.
func ReadAll(input io.Reader) ([]Event, error) {
	parser := NewParser(input, ParserOpts{})
	defer parser.Close()

	var events []Event
	for {
		ev, err := parser.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return events, err
		}
		events = append(events, ev)
	}
}
