// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/filepos"
	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

// Kind names an event variant.
type Kind int

const (
	StreamStartKind Kind = iota + 1
	StreamEndKind
	DocumentStartKind
	DocumentEndKind
	AliasKind
	ScalarKind
	SequenceStartKind
	SequenceEndKind
	MappingStartKind
	MappingEndKind
)

var kindNames = map[Kind]string{
	StreamStartKind:   "StreamStart",
	StreamEndKind:     "StreamEnd",
	DocumentStartKind: "DocumentStart",
	DocumentEndKind:   "DocumentEnd",
	AliasKind:         "Alias",
	ScalarKind:        "Scalar",
	SequenceStartKind: "SequenceStart",
	SequenceEndKind:   "SequenceEnd",
	MappingStartKind:  "MappingStart",
	MappingEndKind:    "MappingEnd",
}

func (k Kind) String() string {
	if name, found := kindNames[k]; found {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one unit of the YAML event grammar. The set of implementations
// is closed: *StreamStart, *StreamEnd, *DocumentStart, *DocumentEnd, *Alias,
// *Scalar, *SequenceStart, *SequenceEnd, *MappingStart and *MappingEnd.
type Event interface {
	Kind() Kind

	// Start and End are zero for events that were not parsed.
	Start() filepos.Position
	End() filepos.Position

	String() string

	// Release drops the engine record backing a parsed event.
	// Accessors keep working afterwards. Calling it again is a no-op.
	Release()

	sealed()
}

var _ = []Event{
	&StreamStart{}, &StreamEnd{},
	&DocumentStart{}, &DocumentEnd{},
	&Alias{}, &Scalar{},
	&SequenceStart{}, &SequenceEnd{},
	&MappingStart{}, &MappingEnd{},
}

// NodeProperties is implemented by the events that may carry an anchor
// and a tag: *Scalar, *SequenceStart and *MappingStart.
type NodeProperties interface {
	Anchor() string
	Tag() string
}

var _ = []NodeProperties{&Scalar{}, &SequenceStart{}, &MappingStart{}}

// PropertiesOf returns the anchor and tag holder of ev, if it has one.
func PropertiesOf(ev Event) (NodeProperties, bool) {
	switch typedEv := ev.(type) {
	case *Scalar:
		return typedEv, true
	case *SequenceStart:
		return typedEv, true
	case *MappingStart:
		return typedEv, true
	default:
		return nil, false
	}
}

type eventBase struct {
	start filepos.Position
	end   filepos.Position
	raw   *libyaml.Event
}

func parsedBase(raw *libyaml.Event) eventBase {
	return eventBase{
		start: newPosition(raw.StartMark()),
		end:   newPosition(raw.EndMark()),
		raw:   raw,
	}
}

func newPosition(mark libyaml.Mark) filepos.Position {
	return filepos.NewPositionFromInts(mark.Index(), mark.Line(), mark.Column())
}

func (b *eventBase) Start() filepos.Position { return b.start }
func (b *eventBase) End() filepos.Position   { return b.end }

func (b *eventBase) Release() {
	if b.raw != nil {
		libyaml.EventDelete(b.raw)
		b.raw = nil
	}
}

func (b *eventBase) sealed() {}

// lazyString keeps the engine's bytes until the value is first read.
type lazyString struct {
	raw     []byte
	decoded bool
	val     string
}

func rawString(b []byte) lazyString   { return lazyString{raw: b} }
func constString(s string) lazyString { return lazyString{val: s, decoded: true} }

func (s *lazyString) get() string {
	if !s.decoded {
		s.val = string(s.raw)
		s.raw = nil
		s.decoded = true
	}
	return s.val
}

// bytes returns the value for handing back to the engine.
func (s *lazyString) bytes() []byte {
	if !s.decoded {
		return s.raw
	}
	if s.val == "" {
		return nil
	}
	return []byte(s.val)
}
