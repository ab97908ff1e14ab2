// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

// Position is an immutable location in a stream. Line and column are
// zero based; the As*String helpers print them one based.
type Position struct {
	index  uint
	line   uint
	column uint
	known  bool
}

func NewPosition(index, line, column uint) Position {
	return Position{index: index, line: line, column: column, known: true}
}

// NewPositionFromInts is a convenience for engines that count with int.
// Negative values are clamped to zero.
func NewPositionFromInts(index, line, column int) Position {
	return NewPosition(clamp(index), clamp(line), clamp(column))
}

// NewUnknownPosition is equivalent of zero value Position
func NewUnknownPosition() Position {
	return Position{}
}

func clamp(v int) uint {
	if v < 0 {
		return 0
	}
	return uint(v)
}

func (p Position) IsKnown() bool { return p.known }

func (p Position) Index() uint  { return p.index }
func (p Position) Line() uint   { return p.line }
func (p Position) Column() uint { return p.column }

func (p Position) AsString() string {
	if !p.known {
		return "line ?"
	}
	return fmt.Sprintf("line %d, column %d", p.line+1, p.column+1)
}

func (p Position) AsCompactString() string {
	if !p.known {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.line+1, p.column+1)
}

func (p Position) AsIntString() string {
	if p.known {
		return fmt.Sprintf("%d", p.line+1)
	}
	return "?"
}

func (p Position) As4DigitString() string {
	if p.known {
		return fmt.Sprintf("%4d", p.line+1)
	}
	return "????"
}

// Before reports whether p is strictly earlier in the stream than other.
// Unknown positions are never before anything.
func (p Position) Before(other Position) bool {
	return p.known && other.known && p.index < other.index
}

// IsNextTo compares the location of one position with another.
func (p Position) IsNextTo(other Position) bool {
	if p.known && other.known {
		diff := int(p.line) - int(other.line)
		if -1 <= diff && 1 >= diff {
			return true
		}
	}
	return false
}
