// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
yamlevents.

From top-down, the code is layered in this way:

# Entry Point

	./cmd/yamlevents           // the command-line tool
	pkg/cmd                    // cobra commands: events, roundtrip, version
	pkg/cmd/ui                 // terminal output and debug tracing

# Input

	pkg/files                  // local files, HTTP URLs and stdin as streams

# Event Layer

	pkg/yamlevents             // typed events, Parser, Emitter, notation
	pkg/yamlevents/internal/libyaml
	                           // the scanner/parser/emitter engine

# Support

	pkg/filepos                // positions of events within a stream
	pkg/spell                  // "did you mean" suggestions for errors
	pkg/version                // release version
*/
package pkg
