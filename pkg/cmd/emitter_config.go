// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/spell"
	"carvel.dev/yamlevents/pkg/yamlevents"
	"github.com/BurntSushi/toml"
)

// emitterConfigFile is the TOML layout accepted by --emitter-config:
//
//	canonical = false
//	indent = 4
//	width = 120
//	unicode = true
//	line_break = "crlf"
type emitterConfigFile struct {
	Canonical bool   `toml:"canonical"`
	Indent    int    `toml:"indent"`
	Width     int    `toml:"width"`
	Unicode   bool   `toml:"unicode"`
	LineBreak string `toml:"line_break"`
}

var emitterConfigKeys = []string{"canonical", "indent", "width", "unicode", "line_break"}

func DefaultEmitterOpts() yamlevents.EmitterOpts {
	return yamlevents.EmitterOpts{
		Indent:    2,
		Width:     80,
		Unicode:   true,
		LineBreak: yamlevents.LF,
	}
}

// LoadEmitterConfig overlays the keys present in the TOML file at path on opts.
func LoadEmitterConfig(path string, opts yamlevents.EmitterOpts) (yamlevents.EmitterOpts, error) {
	var raw emitterConfigFile

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return yamlevents.EmitterOpts{}, fmt.Errorf("Loading emitter config '%s': %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0].String()
		return yamlevents.EmitterOpts{}, fmt.Errorf("Loading emitter config '%s': unknown key '%s'%s",
			path, key, spell.Hint(key, emitterConfigKeys))
	}

	if meta.IsDefined("canonical") {
		opts.Canonical = raw.Canonical
	}
	if meta.IsDefined("indent") {
		opts.Indent = raw.Indent
	}
	if meta.IsDefined("width") {
		opts.Width = raw.Width
	}
	if meta.IsDefined("unicode") {
		opts.Unicode = raw.Unicode
	}
	if meta.IsDefined("line_break") {
		lineBreak, err := yamlevents.ParseLineBreak(raw.LineBreak)
		if err != nil {
			return yamlevents.EmitterOpts{}, fmt.Errorf("Loading emitter config '%s': %w", path, err)
		}
		opts.LineBreak = lineBreak
	}

	return opts, nil
}
