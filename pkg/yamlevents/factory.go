// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

// newEvent wraps raw in the variant matching its type. On success the
// returned event owns raw.
func newEvent(raw *libyaml.Event) (Event, error) {
	switch raw.Type() {
	case libyaml.NoEvent:
		return nil, ErrInvalidArgument
	case libyaml.StreamStartEvent:
		return parsedStreamStart(raw), nil
	case libyaml.StreamEndEvent:
		return parsedStreamEnd(raw), nil
	case libyaml.DocumentStartEvent:
		return parsedDocumentStart(raw), nil
	case libyaml.DocumentEndEvent:
		return parsedDocumentEnd(raw), nil
	case libyaml.AliasEvent:
		return parsedAlias(raw), nil
	case libyaml.ScalarEvent:
		return parsedScalar(raw), nil
	case libyaml.SequenceStartEvent:
		return parsedSequenceStart(raw), nil
	case libyaml.SequenceEndEvent:
		return parsedSequenceEnd(raw), nil
	case libyaml.MappingStartEvent:
		return parsedMappingStart(raw), nil
	case libyaml.MappingEndEvent:
		return parsedMappingEnd(raw), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, raw.Type())
	}
}

// encodeEvent fills raw from ev. The byte slices put into raw share
// memory with ev and are only valid while ev is.
func encodeEvent(ev Event, raw *libyaml.Event) error {
	var ok bool

	switch typedEv := ev.(type) {
	case *StreamStart:
		ok = libyaml.StreamStartEventInitialize(raw, libyaml.UTF8Encoding)

	case *StreamEnd:
		ok = libyaml.StreamEndEventInitialize(raw)

	case *DocumentStart:
		var directive *libyaml.VersionDirective
		if version, found := typedEv.Version(); found {
			if version.major > 127 || version.minor > 127 {
				return &EventConstructionError{Event: ev}
			}
			directive = libyaml.NewVersionDirective(int8(version.major), int8(version.minor))
		}
		ok = libyaml.DocumentStartEventInitialize(raw, directive, nil, typedEv.implicit)

	case *DocumentEnd:
		ok = libyaml.DocumentEndEventInitialize(raw, typedEv.implicit)

	case *Alias:
		ok = libyaml.AliasEventInitialize(raw, typedEv.anchor.bytes())

	case *Scalar:
		ok = libyaml.ScalarEventInitialize(raw, typedEv.anchor.bytes(), typedEv.tag.bytes(),
			typedEv.value.bytes(), typedEv.plainImplicit, typedEv.quotedImplicit, typedEv.style.engineStyle())

	case *SequenceStart:
		ok = libyaml.SequenceStartEventInitialize(raw, typedEv.anchor.bytes(), typedEv.tag.bytes(),
			typedEv.implicit, typedEv.style.sequenceStyle())

	case *SequenceEnd:
		ok = libyaml.SequenceEndEventInitialize(raw)

	case *MappingStart:
		ok = libyaml.MappingStartEventInitialize(raw, typedEv.anchor.bytes(), typedEv.tag.bytes(),
			typedEv.implicit, typedEv.style.mappingStyle())

	case *MappingEnd:
		ok = libyaml.MappingEndEventInitialize(raw)

	case nil:
		return ErrInvalidArgument

	default:
		return fmt.Errorf("%w: %T", ErrNotSupported, ev)
	}

	if !ok {
		return &EventConstructionError{Event: ev}
	}
	return nil
}
