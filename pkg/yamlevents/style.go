// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

// ScalarStyle is the preferred rendering of a scalar.
// AnyScalarStyle leaves the choice to the emitter.
type ScalarStyle int

const (
	AnyScalarStyle ScalarStyle = iota
	PlainStyle
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
)

var scalarStyleNames = []string{
	AnyScalarStyle:    "any",
	PlainStyle:        "plain",
	SingleQuotedStyle: "single-quoted",
	DoubleQuotedStyle: "double-quoted",
	LiteralStyle:      "literal",
	FoldedStyle:       "folded",
}

func (s ScalarStyle) String() string {
	if s < 0 || int(s) >= len(scalarStyleNames) {
		return fmt.Sprintf("ScalarStyle(%d)", int(s))
	}
	return scalarStyleNames[s]
}

func scalarStyleFrom(s libyaml.ScalarStyle) ScalarStyle {
	switch s {
	case libyaml.PlainScalarStyle:
		return PlainStyle
	case libyaml.SingleQuotedScalarStyle:
		return SingleQuotedStyle
	case libyaml.DoubleQuotedScalarStyle:
		return DoubleQuotedStyle
	case libyaml.LiteralScalarStyle:
		return LiteralStyle
	case libyaml.FoldedScalarStyle:
		return FoldedStyle
	default:
		return AnyScalarStyle
	}
}

func (s ScalarStyle) engineStyle() libyaml.ScalarStyle {
	switch s {
	case PlainStyle:
		return libyaml.PlainScalarStyle
	case SingleQuotedStyle:
		return libyaml.SingleQuotedScalarStyle
	case DoubleQuotedStyle:
		return libyaml.DoubleQuotedScalarStyle
	case LiteralStyle:
		return libyaml.LiteralScalarStyle
	case FoldedStyle:
		return libyaml.FoldedScalarStyle
	default:
		return libyaml.AnyScalarStyle
	}
}

// CollectionStyle is the preferred rendering of a sequence or mapping.
type CollectionStyle int

const (
	AnyCollectionStyle CollectionStyle = iota
	BlockStyle
	FlowStyle
)

func (s CollectionStyle) String() string {
	switch s {
	case AnyCollectionStyle:
		return "any"
	case BlockStyle:
		return "block"
	case FlowStyle:
		return "flow"
	default:
		return fmt.Sprintf("CollectionStyle(%d)", int(s))
	}
}

func sequenceStyleFrom(s libyaml.SequenceStyle) CollectionStyle {
	switch s {
	case libyaml.BlockSequenceStyle:
		return BlockStyle
	case libyaml.FlowSequenceStyle:
		return FlowStyle
	default:
		return AnyCollectionStyle
	}
}

func mappingStyleFrom(s libyaml.MappingStyle) CollectionStyle {
	switch s {
	case libyaml.BlockMappingStyle:
		return BlockStyle
	case libyaml.FlowMappingStyle:
		return FlowStyle
	default:
		return AnyCollectionStyle
	}
}

func (s CollectionStyle) sequenceStyle() libyaml.SequenceStyle {
	switch s {
	case BlockStyle:
		return libyaml.BlockSequenceStyle
	case FlowStyle:
		return libyaml.FlowSequenceStyle
	default:
		return libyaml.AnySequenceStyle
	}
}

func (s CollectionStyle) mappingStyle() libyaml.MappingStyle {
	switch s {
	case BlockStyle:
		return libyaml.BlockMappingStyle
	case FlowStyle:
		return libyaml.FlowMappingStyle
	default:
		return libyaml.AnyMappingStyle
	}
}

// Encoding is the character encoding of a stream.
type Encoding int

const (
	AnyEncoding Encoding = iota
	UTF8Encoding
	UTF16LEEncoding
	UTF16BEEncoding
)

func (e Encoding) String() string {
	switch e {
	case AnyEncoding:
		return "any"
	case UTF8Encoding:
		return "UTF-8"
	case UTF16LEEncoding:
		return "UTF-16LE"
	case UTF16BEEncoding:
		return "UTF-16BE"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

func encodingFrom(e libyaml.Encoding) Encoding {
	switch e {
	case libyaml.UTF8Encoding:
		return UTF8Encoding
	case libyaml.UTF16LEEncoding:
		return UTF16LEEncoding
	case libyaml.UTF16BEEncoding:
		return UTF16BEEncoding
	default:
		return AnyEncoding
	}
}

func (e Encoding) engineEncoding() libyaml.Encoding {
	switch e {
	case UTF8Encoding:
		return libyaml.UTF8Encoding
	case UTF16LEEncoding:
		return libyaml.UTF16LEEncoding
	case UTF16BEEncoding:
		return libyaml.UTF16BEEncoding
	default:
		return libyaml.AnyEncoding
	}
}

// LineBreak selects the line break the emitter writes.
type LineBreak int

const (
	AnyLineBreak LineBreak = iota
	LF
	CR
	CRLF
)

func (b LineBreak) engineBreak() libyaml.LineBreak {
	switch b {
	case LF:
		return libyaml.LNBreak
	case CR:
		return libyaml.CRBreak
	case CRLF:
		return libyaml.CRLNBreak
	default:
		return libyaml.AnyBreak
	}
}

// ParseLineBreak accepts "lf", "cr", "crlf" and the empty string.
func ParseLineBreak(s string) (LineBreak, error) {
	switch s {
	case "":
		return AnyLineBreak, nil
	case "lf":
		return LF, nil
	case "cr":
		return CR, nil
	case "crlf":
		return CRLF, nil
	default:
		return AnyLineBreak, fmt.Errorf("unknown line break %q (expected lf, cr or crlf)", s)
	}
}
