// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carvel.dev/yamlevents/pkg/yamlevents"
)

func TestNewVersion(t *testing.T) {
	version, err := yamlevents.NewVersion(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, version.Major())
	assert.Equal(t, 2, version.Minor())
	assert.Equal(t, "1.2", version.String())
	assert.Equal(t, yamlevents.Version12, version)

	_, err = yamlevents.NewVersion(-1, 0)
	assert.EqualError(t, err, "invalid YAML version -1.0: components must not be negative")
}

func TestParseVersion(t *testing.T) {
	version, err := yamlevents.ParseVersion("1.1")
	require.NoError(t, err)
	assert.Equal(t, yamlevents.Version11, version)

	for _, invalid := range []string{"", "one", "1.2.3", "1.2-beta"} {
		_, err := yamlevents.ParseVersion(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, -1, yamlevents.Version11.Compare(yamlevents.Version12))
	assert.Equal(t, 0, yamlevents.Version12.Compare(yamlevents.Version12))
	assert.Equal(t, 1, yamlevents.Version12.Compare(yamlevents.Version11))

	v110, err := yamlevents.NewVersion(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, v110.Compare(yamlevents.Version12))
}
