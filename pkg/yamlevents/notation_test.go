// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carvel.dev/yamlevents/pkg/yamlevents"
)

func TestNotationString(t *testing.T) {
	cases := []struct {
		ev       yamlevents.Event
		expected string
	}{
		{yamlevents.NewStreamStart(yamlevents.AnyEncoding), "+STR"},
		{yamlevents.NewStreamEnd(), "-STR"},
		{yamlevents.NewDocumentStart(yamlevents.DocumentStartProto{Implicit: true}), "+DOC"},
		{yamlevents.NewDocumentStart(yamlevents.DocumentStartProto{}), "+DOC ---"},
		{yamlevents.NewDocumentEnd(true), "-DOC"},
		{yamlevents.NewDocumentEnd(false), "-DOC ..."},
		{yamlevents.NewAlias("a1"), "=ALI *a1"},
		{yamlevents.NewScalar(yamlevents.ScalarProto{Value: "plain"}), "=VAL :plain"},
		{yamlevents.NewScalar(yamlevents.ScalarProto{Value: "x", Style: yamlevents.SingleQuotedStyle}), "=VAL 'x"},
		{yamlevents.NewScalar(yamlevents.ScalarProto{Value: "x", Style: yamlevents.DoubleQuotedStyle}), `=VAL "x`},
		{yamlevents.NewScalar(yamlevents.ScalarProto{Value: "a\tb\\c\r\n", Style: yamlevents.LiteralStyle}), `=VAL |a\tb\\c\r\n`},
		{yamlevents.NewScalar(yamlevents.ScalarProto{Value: "\b", Style: yamlevents.FoldedStyle}), `=VAL >\b`},
		{yamlevents.NewScalar(yamlevents.ScalarProto{Anchor: "a", Tag: "tag:yaml.org,2002:int", Value: "1"}), "=VAL &a <tag:yaml.org,2002:int> :1"},
		{yamlevents.NewScalar(yamlevents.ScalarProto{}), "=VAL :"},
		{yamlevents.NewSequenceStart(yamlevents.SequenceStartProto{}), "+SEQ"},
		{yamlevents.NewSequenceStart(yamlevents.SequenceStartProto{Anchor: "s", Style: yamlevents.FlowStyle}), "+SEQ [] &s"},
		{yamlevents.NewSequenceEnd(), "-SEQ"},
		{yamlevents.NewMappingStart(yamlevents.MappingStartProto{Tag: "!m", Style: yamlevents.BlockStyle}), "+MAP <!m>"},
		{yamlevents.NewMappingStart(yamlevents.MappingStartProto{Style: yamlevents.FlowStyle}), "+MAP {}"},
		{yamlevents.NewMappingEnd(), "-MAP"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, yamlevents.NotationString(tc.ev), tc.ev.String())
	}
}

func TestWriteNotation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, yamlevents.WriteNotation(&buf, yamlevents.NewStreamStart(yamlevents.UTF8Encoding)))
	require.NoError(t, yamlevents.WriteNotation(&buf, yamlevents.NewStreamEnd()))

	assert.Equal(t, "+STR\n-STR\n", buf.String())
}
