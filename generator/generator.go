// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the code-emission core shared by all backends.
//
// A backend embeds [CodeGenerator], overrides the visitor handlers for the
// declaration kinds it supports, and implements Process. Kinds it does not
// handle fall through to the defaults here: context-like kinds traverse
// their children, typedef-like kinds share one handler, and every other
// kind fails with a [CoverageError].
package generator

import (
	"github.com/albertocavalcante/bindgen/ast"
)

// Generator is what a driver sees of a backend instance. One instance
// produces one output artifact.
type Generator interface {
	// FileExtension is the backend's output extension, without the dot.
	FileExtension() string

	// FilePath is the artifact's relative output path.
	FilePath() string

	// Process walks the bound translation units and fills the buffer.
	Process() error

	// Generate renders the buffer to text.
	Generate() string
}

// Backend creates generator instances for one output language.
type Backend interface {
	// Metadata returns information about this backend.
	Metadata() Metadata

	// New binds a generator to a context and one or more units; the first
	// unit is primary.
	New(ctx *Context, units []*ast.TranslationUnit) (Generator, error)
}

// Metadata describes a backend.
type Metadata struct {
	// Name is the short identifier (e.g., "csharp", "go").
	Name string

	// Kind is the generator kind the backend reports to the core.
	Kind Kind

	// Version is the backend version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".cs"]).
	FileExtensions []string
}

// Run processes g and renders its output.
func Run(g Generator) (string, error) {
	if err := g.Process(); err != nil {
		return "", err
	}
	return g.Generate(), nil
}
