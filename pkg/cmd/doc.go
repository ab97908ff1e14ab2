// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to yamlevents' "commands": instances of cobra.Command
(not to be confused with ./cmd which bootstraps the binary).

For a list of commands run:

	$ yamlevents help

"events" prints the event stream of YAML input in yaml-test-suite notation;
"roundtrip" parses input and emits it again through the emitter.
*/
package cmd
