// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	stdinMu          sync.Mutex
	hasStdinBeenRead bool
)

// StdinSource reads standard input. It may be opened only once per process.
type StdinSource struct {
	in io.Reader
}

func NewStdinSource() StdinSource { return StdinSource{os.Stdin} }

func (s StdinSource) Description() string { return "stdin" }

func (s StdinSource) Open() (io.ReadCloser, error) {
	stdinMu.Lock()
	defer stdinMu.Unlock()

	if hasStdinBeenRead {
		return nil, fmt.Errorf("Standard input has already been read, has the '-' argument been used more than once?")
	}
	hasStdinBeenRead = true
	return io.NopCloser(s.in), nil
}
