// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package libyaml is the event-level YAML engine: a scanner and parser that
// turn bytes into Event records, and an emitter that turns Event records back
// into bytes. It knows nothing about documents as trees.
//
// The engine tracks the Go port of libyaml carried by gopkg.in/yaml.v2
// (and vendored by ytt under pkg/yamlmeta/internal/yaml.v2), with libyaml
// 0.2.5 document rules. Local changes: comment tokens are skipped rather
// than collected, %YAML 1.2 is accepted, event initializers validate their
// input, bare documents are reported as implicit, and everything is
// reached through the exported API in apic.go.
// Fixes to the upstream scanner or parser should be ported here by hand.
//
// All state lives in Parser and Emitter values driven through the functions
// in apic.go. Failures are reported by a false return and recorded on the
// parser or emitter.
package libyaml
