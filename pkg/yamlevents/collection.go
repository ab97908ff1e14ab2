// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

type SequenceStartProto struct {
	Anchor string
	Tag    string
	// Implicit allows the tag to be omitted from the output.
	Implicit bool
	Style    CollectionStyle
}

type SequenceStart struct {
	eventBase
	collectionStart
}

// collectionStart holds what SequenceStart and MappingStart have in common.
type collectionStart struct {
	anchor   lazyString
	tag      lazyString
	implicit bool
	style    CollectionStyle
}

func (c *collectionStart) Anchor() string         { return c.anchor.get() }
func (c *collectionStart) Tag() string            { return c.tag.get() }
func (c *collectionStart) IsImplicit() bool       { return c.implicit }
func (c *collectionStart) Style() CollectionStyle { return c.style }

func (c *collectionStart) describe(name string) string {
	return fmt.Sprintf("%s{anchor: %q, tag: %q, implicit: %t, style: %s}",
		name, c.Anchor(), c.Tag(), c.implicit, c.style)
}

func NewSequenceStart(proto SequenceStartProto) *SequenceStart {
	return &SequenceStart{collectionStart: collectionStart{
		anchor:   constString(proto.Anchor),
		tag:      constString(proto.Tag),
		implicit: proto.Implicit,
		style:    proto.Style,
	}}
}

func parsedSequenceStart(raw *libyaml.Event) *SequenceStart {
	return &SequenceStart{eventBase: parsedBase(raw), collectionStart: collectionStart{
		anchor:   rawString(raw.Anchor()),
		tag:      rawString(raw.Tag()),
		implicit: raw.Implicit(),
		style:    sequenceStyleFrom(raw.SequenceStyle()),
	}}
}

func (*SequenceStart) Kind() Kind       { return SequenceStartKind }
func (e *SequenceStart) String() string { return e.describe("SequenceStart") }

type SequenceEnd struct {
	eventBase
}

func NewSequenceEnd() *SequenceEnd { return &SequenceEnd{} }

func parsedSequenceEnd(raw *libyaml.Event) *SequenceEnd {
	return &SequenceEnd{eventBase: parsedBase(raw)}
}

func (*SequenceEnd) Kind() Kind     { return SequenceEndKind }
func (*SequenceEnd) String() string { return "SequenceEnd{}" }

type MappingStartProto struct {
	Anchor string
	Tag    string
	// Implicit allows the tag to be omitted from the output.
	Implicit bool
	Style    CollectionStyle
}

type MappingStart struct {
	eventBase
	collectionStart
}

func NewMappingStart(proto MappingStartProto) *MappingStart {
	return &MappingStart{collectionStart: collectionStart{
		anchor:   constString(proto.Anchor),
		tag:      constString(proto.Tag),
		implicit: proto.Implicit,
		style:    proto.Style,
	}}
}

func parsedMappingStart(raw *libyaml.Event) *MappingStart {
	return &MappingStart{eventBase: parsedBase(raw), collectionStart: collectionStart{
		anchor:   rawString(raw.Anchor()),
		tag:      rawString(raw.Tag()),
		implicit: raw.Implicit(),
		style:    mappingStyleFrom(raw.MappingStyle()),
	}}
}

func (*MappingStart) Kind() Kind       { return MappingStartKind }
func (e *MappingStart) String() string { return e.describe("MappingStart") }

type MappingEnd struct {
	eventBase
}

func NewMappingEnd() *MappingEnd { return &MappingEnd{} }

func parsedMappingEnd(raw *libyaml.Event) *MappingEnd {
	return &MappingEnd{eventBase: parsedBase(raw)}
}

func (*MappingEnd) Kind() Kind     { return MappingEndKind }
func (*MappingEnd) String() string { return "MappingEnd{}" }
