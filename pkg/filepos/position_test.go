// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carvel.dev/yamlevents/pkg/filepos"
)

func TestPositionAccessors(t *testing.T) {
	pos := filepos.NewPosition(12, 2, 4)

	assert.True(t, pos.IsKnown())
	assert.Equal(t, uint(12), pos.Index())
	assert.Equal(t, uint(2), pos.Line())
	assert.Equal(t, uint(4), pos.Column())
	assert.Equal(t, "line 3, column 5", pos.AsString())
	assert.Equal(t, "3:5", pos.AsCompactString())
	assert.Equal(t, "3", pos.AsIntString())
	assert.Equal(t, "   3", pos.As4DigitString())
}

func TestUnknownPosition(t *testing.T) {
	var zero filepos.Position

	assert.Equal(t, zero, filepos.NewUnknownPosition())
	assert.False(t, zero.IsKnown())
	assert.Equal(t, uint(0), zero.Line())
	assert.Equal(t, "line ?", zero.AsString())
	assert.Equal(t, "????", zero.As4DigitString())
	assert.False(t, zero.Before(filepos.NewPosition(1, 0, 1)))
}

func TestNewPositionFromIntsClamps(t *testing.T) {
	pos := filepos.NewPositionFromInts(-1, 3, -7)

	assert.Equal(t, filepos.NewPosition(0, 3, 0), pos)
}

func TestPositionOrdering(t *testing.T) {
	a := filepos.NewPosition(0, 0, 0)
	b := filepos.NewPosition(5, 1, 0)
	c := filepos.NewPosition(40, 6, 2)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, a.IsNextTo(b))
	assert.False(t, a.IsNextTo(c))
}
