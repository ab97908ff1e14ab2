// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell_test

import (
	"testing"

	"carvel.dev/yamlevents/pkg/spell"
	"github.com/stretchr/testify/assert"
)

func TestNearest(t *testing.T) {
	candidates := []string{"canonical", "indent", "width", "unicode", "line_break"}

	for _, tc := range []struct {
		word     string
		expected string
		found    bool
	}{
		{"indnet", "indent", true},
		{"widt", "width", true},
		{"linebreak", "line_break", true},
		{"unicode", "unicode", true},
		{"colour", "", false},
		{"", "", false},
	} {
		nearest, found := spell.Nearest(tc.word, candidates)
		assert.Equal(t, tc.found, found, tc.word)
		assert.Equal(t, tc.expected, nearest, tc.word)
	}
}

func TestHint(t *testing.T) {
	assert.Equal(t, " (did you mean 'always'?)", spell.Hint("alwys", []string{"auto", "always", "never"}))
	assert.Equal(t, "", spell.Hint("sometimes", []string{"auto", "always", "never"}))
}
