// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

// Alias refers back to a node carrying the same anchor.
type Alias struct {
	eventBase
	anchor lazyString
}

// NewAlias builds an Alias. An empty anchor is rejected when the event
// is emitted.
func NewAlias(anchor string) *Alias {
	return &Alias{anchor: constString(anchor)}
}

func parsedAlias(raw *libyaml.Event) *Alias {
	return &Alias{eventBase: parsedBase(raw), anchor: rawString(raw.Anchor())}
}

func (*Alias) Kind() Kind { return AliasKind }

func (e *Alias) Anchor() string { return e.anchor.get() }

func (e *Alias) String() string {
	return fmt.Sprintf("Alias{anchor: %q}", e.Anchor())
}

type ScalarProto struct {
	Anchor string
	Tag    string
	Value  string
	// Length is reported by Scalar.Length. Zero, or anything longer
	// than Value, means len(Value). Value is always emitted whole.
	Length int

	PlainImplicit  bool
	QuotedImplicit bool
	Style          ScalarStyle
}

type Scalar struct {
	eventBase
	anchor lazyString
	tag    lazyString
	value  lazyString
	length int

	plainImplicit  bool
	quotedImplicit bool
	style          ScalarStyle
}

// NewScalar builds a Scalar. An untagged scalar with neither implicit
// flag set is made implicit in both styles, since it could not be
// emitted otherwise.
func NewScalar(proto ScalarProto) *Scalar {
	length := proto.Length
	if length <= 0 || length > len(proto.Value) {
		length = len(proto.Value)
	}

	plainImplicit, quotedImplicit := proto.PlainImplicit, proto.QuotedImplicit
	if proto.Tag == "" && !plainImplicit && !quotedImplicit {
		plainImplicit, quotedImplicit = true, true
	}

	return &Scalar{
		anchor:         constString(proto.Anchor),
		tag:            constString(proto.Tag),
		value:          constString(proto.Value),
		length:         length,
		plainImplicit:  plainImplicit,
		quotedImplicit: quotedImplicit,
		style:          proto.Style,
	}
}

func parsedScalar(raw *libyaml.Event) *Scalar {
	return &Scalar{
		eventBase:      parsedBase(raw),
		anchor:         rawString(raw.Anchor()),
		tag:            rawString(raw.Tag()),
		value:          rawString(raw.Value()),
		length:         len(raw.Value()),
		plainImplicit:  raw.Implicit(),
		quotedImplicit: raw.QuotedImplicit(),
		style:          scalarStyleFrom(raw.ScalarStyle()),
	}
}

func (*Scalar) Kind() Kind { return ScalarKind }

func (e *Scalar) Anchor() string { return e.anchor.get() }
func (e *Scalar) Tag() string    { return e.tag.get() }
func (e *Scalar) Value() string  { return e.value.get() }

// Length is the size of Value in bytes, unless a shorter one was given
// at construction.
func (e *Scalar) Length() int { return e.length }

func (e *Scalar) IsPlainImplicit() bool  { return e.plainImplicit }
func (e *Scalar) IsQuotedImplicit() bool { return e.quotedImplicit }
func (e *Scalar) Style() ScalarStyle     { return e.style }

func (e *Scalar) String() string {
	return fmt.Sprintf("Scalar{anchor: %q, tag: %q, value: %q, length: %d, plainImplicit: %t, quotedImplicit: %t, style: %s}",
		e.Anchor(), e.Tag(), e.Value(), e.length, e.plainImplicit, e.quotedImplicit, e.style)
}
