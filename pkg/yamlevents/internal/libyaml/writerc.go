// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

// Set the writer error and return false.
func emitterSetWriterError(emitter *Emitter, problem string) bool {
	emitter.error = WriterError
	emitter.problem = problem
	return false
}

// Flush the output buffer.
func EmitterFlush(emitter *Emitter) bool {
	if emitter.writeHandler == nil {
		panic("write handler not set")
	}

	if emitter.bufferPos == 0 {
		return true
	}

	if err := emitter.writeHandler(emitter, emitter.buffer[:emitter.bufferPos]); err != nil {
		return emitterSetWriterError(emitter, "write error: "+err.Error())
	}
	emitter.bufferPos = 0
	return true
}
