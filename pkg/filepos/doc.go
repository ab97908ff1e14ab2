// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a point in a YAML stream
given as a byte offset plus a line and column.

Positions are reported by the parser for every event it produces and are
crucial when reporting errors to the user.

Not every Position points into a stream (e.g. events built in code). The
zero-value of Position (also returned by NewUnknownPosition()) represents
this case.
*/
package filepos
