// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"

	"carvel.dev/yamlevents/pkg/yamlevents/internal/libyaml"
)

type DocumentStartProto struct {
	// Version adds a %YAML directive when set.
	Version *Version
	// Implicit omits the "---" marker. It only has an effect on the
	// first document of a stream without directives.
	Implicit bool
}

type DocumentStart struct {
	eventBase
	version    Version
	hasVersion bool
	implicit   bool
}

func NewDocumentStart(proto DocumentStartProto) *DocumentStart {
	doc := &DocumentStart{implicit: proto.Implicit}
	if proto.Version != nil {
		doc.version = *proto.Version
		doc.hasVersion = true
	}
	return doc
}

func parsedDocumentStart(raw *libyaml.Event) *DocumentStart {
	doc := &DocumentStart{eventBase: parsedBase(raw), implicit: raw.Implicit()}
	if directive := raw.VersionDirective(); directive != nil {
		doc.version = Version{major: int(directive.Major()), minor: int(directive.Minor())}
		doc.hasVersion = true
	}
	return doc
}

func (*DocumentStart) Kind() Kind { return DocumentStartKind }

// Version returns the %YAML directive of the document, if there was one.
func (e *DocumentStart) Version() (Version, bool) { return e.version, e.hasVersion }

func (e *DocumentStart) IsImplicit() bool { return e.implicit }

func (e *DocumentStart) String() string {
	version := "none"
	if e.hasVersion {
		version = e.version.String()
	}
	return fmt.Sprintf("DocumentStart{version: %s, implicit: %t}", version, e.implicit)
}

type DocumentEnd struct {
	eventBase
	implicit bool
}

// NewDocumentEnd builds a DocumentEnd; an explicit one is written as "...".
func NewDocumentEnd(implicit bool) *DocumentEnd {
	return &DocumentEnd{implicit: implicit}
}

func parsedDocumentEnd(raw *libyaml.Event) *DocumentEnd {
	return &DocumentEnd{eventBase: parsedBase(raw), implicit: raw.Implicit()}
}

func (*DocumentEnd) Kind() Kind { return DocumentEndKind }

func (e *DocumentEnd) IsImplicit() bool { return e.implicit }

func (e *DocumentEnd) String() string {
	return fmt.Sprintf("DocumentEnd{implicit: %t}", e.implicit)
}
