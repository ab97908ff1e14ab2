// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents_test

import (
	"testing"

	"carvel.dev/yamlevents/test/filetests"
)

func TestFileTests(t *testing.T) {
	filetests.FileTests{
		PathToTests: "testdata/filetests",
	}.Run(t)
}
