// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/generator"
)

// GoBackend implements [generator.Backend] for Go code generation.
type GoBackend struct{}

// NewBackend creates a new Go backend.
func NewBackend() *GoBackend {
	return &GoBackend{}
}

// Metadata returns information about this backend.
func (b *GoBackend) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "go",
		Kind:           generator.Go,
		Version:        "1.0.0",
		Description:    "Generate Go declarations from C++ declarations",
		FileExtensions: []string{".go"},
	}
}

// New binds a Go generator to units.
func (b *GoBackend) New(ctx *generator.Context, units []*ast.TranslationUnit) (generator.Generator, error) {
	g, err := New(ctx, units...)
	if err != nil {
		return nil, err
	}
	return g, nil
}
