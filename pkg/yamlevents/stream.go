// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

// StreamStart opens a stream.
type StreamStart struct {
	eventBase
	encoding Encoding
}

// NewStreamStart builds a StreamStart. The emitter always writes UTF-8,
// whatever encoding is given here.
func NewStreamStart(encoding Encoding) *StreamStart {
	return &StreamStart{encoding: encoding}
}

func parsedStreamStart(raw *libyaml.Event) *StreamStart {
	return &StreamStart{eventBase: parsedBase(raw), encoding: encodingFrom(raw.Encoding())}
}

func (*StreamStart) Kind() Kind { return StreamStartKind }

func (e *StreamStart) Encoding() Encoding { return e.encoding }

func (e *StreamStart) String() string {
	return fmt.Sprintf("StreamStart{encoding: %s}", e.encoding)
}

// StreamEnd closes a stream. It is always the last event.
type StreamEnd struct {
	eventBase
}

func NewStreamEnd() *StreamEnd { return &StreamEnd{} }

func parsedStreamEnd(raw *libyaml.Event) *StreamEnd {
	return &StreamEnd{eventBase: parsedBase(raw)}
}

func (*StreamEnd) Kind() Kind     { return StreamEndKind }
func (*StreamEnd) String() string { return "StreamEnd{}" }
