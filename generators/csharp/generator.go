// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/generator"
)

// Backend implements [generator.Backend] for C# code generation.
type Backend struct{}

// NewBackend creates a new C# backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Metadata returns information about this backend.
func (b *Backend) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "csharp",
		Kind:           generator.CSharp,
		Version:        "1.0.0",
		Description:    "Generate C# P/Invoke bindings from C++ declarations",
		FileExtensions: []string{".cs"},
	}
}

// New binds a C# generator to units.
func (b *Backend) New(ctx *generator.Context, units []*ast.TranslationUnit) (generator.Generator, error) {
	g, err := New(ctx, units...)
	if err != nil {
		return nil, err
	}
	return g, nil
}
