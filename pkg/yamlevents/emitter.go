// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"io"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

type EmitterOpts struct {
	Canonical bool
	// Indent is the block indentation, 2 to 9. Other values mean 2.
	Indent int
	// Width is the preferred line width. Zero means 80, negative means
	// no limit.
	Width int
	// Unicode writes non-ASCII characters unescaped.
	Unicode   bool
	LineBreak LineBreak
}

// Emitter writes events as YAML text. It does not check that events come
// in a valid order; the engine reports that as an *EmitError.
// Output is buffered until Flush or Close.
type Emitter struct {
	handle *libyaml.Emitter
	output io.Writer
	err    error
}

func NewEmitter(output io.Writer, opts EmitterOpts) *Emitter {
	handle := &libyaml.Emitter{}
	libyaml.EmitterInitialize(handle)
	libyaml.EmitterSetOutputWriter(handle, output)
	libyaml.EmitterSetEncoding(handle, libyaml.UTF8Encoding)
	libyaml.EmitterSetCanonical(handle, opts.Canonical)
	libyaml.EmitterSetIndent(handle, opts.Indent)
	libyaml.EmitterSetWidth(handle, opts.Width)
	libyaml.EmitterSetUnicode(handle, opts.Unicode)
	libyaml.EmitterSetBreak(handle, opts.LineBreak.engineBreak())
	return &Emitter{handle: handle, output: output}
}

// Emit hands ev to the engine. After an *EmitError every later call
// returns the same error.
func (e *Emitter) Emit(ev Event) error {
	if e.handle == nil {
		return ErrClosed
	}
	if e.err != nil {
		return e.err
	}

	var raw libyaml.Event
	defer libyaml.EventDelete(&raw)

	if err := encodeEvent(ev, &raw); err != nil {
		return err
	}
	if !libyaml.EmitterEmit(e.handle, &raw) {
		e.err = newEmitError(e.handle)
		return e.err
	}
	return nil
}

// Flush writes buffered output.
func (e *Emitter) Flush() error {
	if e.handle == nil {
		return ErrClosed
	}
	if e.err != nil {
		return e.err
	}
	if !libyaml.EmitterFlush(e.handle) {
		e.err = newEmitError(e.handle)
		return e.err
	}
	return nil
}

// Close flushes buffered output and releases the engine state. It does
// not close the writer. A sticky *EmitError is returned again here.
// Calling Close again is a no-op.
func (e *Emitter) Close() error {
	if e.handle == nil {
		return nil
	}

	err := e.err
	if err == nil && !libyaml.EmitterFlush(e.handle) {
		err = newEmitError(e.handle)
	}

	libyaml.EmitterDelete(e.handle)
	e.handle = nil
	e.output = nil
	return err
}

// EmitAll writes events to output and closes the emitter.
func EmitAll(output io.Writer, events []Event, opts EmitterOpts) error {
	emitter := NewEmitter(output, opts)
	for _, ev := range events {
		if err := emitter.Emit(ev); err != nil {
			emitter.Close()
			return err
		}
	}
	return emitter.Close()
}
