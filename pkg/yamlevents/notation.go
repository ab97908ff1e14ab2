// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"
	"io"
	"strings"
)

var notationEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\b", `\b`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

// NotationString renders ev on one line in the event notation of the
// yaml-test-suite, e.g. "+MAP {} &a" or "=VAL :hello".
func NotationString(ev Event) string {
	var sb strings.Builder

	switch typedEv := ev.(type) {
	case *StreamStart:
		sb.WriteString("+STR")
	case *StreamEnd:
		sb.WriteString("-STR")
	case *DocumentStart:
		sb.WriteString("+DOC")
		if !typedEv.IsImplicit() {
			sb.WriteString(" ---")
		}
	case *DocumentEnd:
		sb.WriteString("-DOC")
		if !typedEv.IsImplicit() {
			sb.WriteString(" ...")
		}
	case *Alias:
		sb.WriteString("=ALI *")
		sb.WriteString(typedEv.Anchor())
	case *Scalar:
		sb.WriteString("=VAL")
		writeNodeProperties(&sb, typedEv)
		sb.WriteByte(' ')
		sb.WriteString(scalarIndicator(typedEv.Style()))
		sb.WriteString(notationEscaper.Replace(typedEv.Value()))
	case *SequenceStart:
		sb.WriteString("+SEQ")
		if typedEv.Style() == FlowStyle {
			sb.WriteString(" []")
		}
		writeNodeProperties(&sb, typedEv)
	case *SequenceEnd:
		sb.WriteString("-SEQ")
	case *MappingStart:
		sb.WriteString("+MAP")
		if typedEv.Style() == FlowStyle {
			sb.WriteString(" {}")
		}
		writeNodeProperties(&sb, typedEv)
	case *MappingEnd:
		sb.WriteString("-MAP")
	default:
		fmt.Fprintf(&sb, "?%T", ev)
	}

	return sb.String()
}

// WriteNotation writes NotationString(ev) followed by a newline.
func WriteNotation(w io.Writer, ev Event) error {
	_, err := io.WriteString(w, NotationString(ev)+"\n")
	return err
}

func writeNodeProperties(sb *strings.Builder, props NodeProperties) {
	if anchor := props.Anchor(); anchor != "" {
		sb.WriteString(" &")
		sb.WriteString(anchor)
	}
	if tag := props.Tag(); tag != "" {
		sb.WriteString(" <")
		sb.WriteString(tag)
		sb.WriteByte('>')
	}
}

func scalarIndicator(style ScalarStyle) string {
	switch style {
	case SingleQuotedStyle:
		return "'"
	case DoubleQuotedStyle:
		return `"`
	case LiteralStyle:
		return "|"
	case FoldedStyle:
		return ">"
	default:
		return ":"
	}
}
