// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"

	"carvel.dev/yamlevents/pkg/yamlevents"
)

func notations(events []yamlevents.Event) string {
	var lines []string
	for _, ev := range events {
		lines = append(lines, yamlevents.NotationString(ev))
	}
	return strings.Join(lines, "\n")
}

func parseNotation(t *testing.T, input string) string {
	events, err := yamlevents.ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	return notations(events)
}

func emitString(t *testing.T, events []yamlevents.Event, opts yamlevents.EmitterOpts) string {
	var buf bytes.Buffer
	require.NoError(t, yamlevents.EmitAll(&buf, events, opts))
	return buf.String()
}

func assertEqualLines(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
