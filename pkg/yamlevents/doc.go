// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlevents exposes YAML as a stream of typed events.

A Parser pulls events out of an io.Reader one at a time; an Emitter turns
the same events back into bytes. Events are one of ten variants (StreamStart,
DocumentStart, Scalar, ...) behind the sealed Event interface; use a type
switch to handle them.

Events that come out of a Parser decode their anchor, tag and value on first
access. Events built with the New* constructors carry their fields directly
and zero positions. Both behave the same through the Event API.

Scanning, composing and text emission are done by the libyaml port under
internal/libyaml.
*/
package yamlevents
