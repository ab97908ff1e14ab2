// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"io"
	"testing"

	"carvel.dev/yamlevents/pkg/cmd/ui"
	"github.com/stretchr/testify/assert"
)

func TestTTYDebugOutputIsGated(t *testing.T) {
	var stdout, stderr bytes.Buffer

	quiet := ui.NewCustomWriterTTY(false, &stdout, &stderr)
	quiet.Printf("out %d\n", 1)
	quiet.Debugf("debug %d\n", 1)
	quiet.Warnf("warn\n")
	assert.Equal(t, io.Discard, quiet.DebugWriter())

	assert.Equal(t, "out 1\n", stdout.String())
	assert.Equal(t, "warn\n", stderr.String())

	stderr.Reset()
	loud := ui.NewCustomWriterTTY(true, &stdout, &stderr)
	loud.Debugf("debug %d\n", 2)
	assert.Equal(t, "debug 2\n", stderr.String())
}

func TestTTYIsTerminalForNonFileWriter(t *testing.T) {
	var stdout bytes.Buffer
	tty := ui.NewCustomWriterTTY(false, &stdout, nil)

	assert.False(t, tty.IsTerminal())
	assert.Same(t, &stdout, tty.Writer())
}
