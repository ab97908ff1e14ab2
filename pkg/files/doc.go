// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files resolves command line paths into Source's that can be opened
as byte streams: local files, HTTP URLs and standard input ("-").

Sources are opened lazily and handed to the parser as readers, so input is
never buffered whole unless a command asks for it.
*/
package files
