// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ast defines the language-agnostic declaration model consumed by
// the code generators.
//
// The model is produced by a frontend that parses foreign source and is
// treated as read-only by generators. Each declaration is one of a closed
// set of variants (see [Kind]); some variants are also declaration contexts
// that own an ordered list of child declarations.
package ast

import (
	"path/filepath"
	"slices"
	"strings"
)

// Decl is implemented by every declaration variant.
type Decl interface {
	// Kind returns the variant of the declaration.
	Kind() Kind

	// Base returns the attributes shared by all declarations.
	Base() *Declaration

	// Visit dispatches to the handler for the declaration's variant.
	Visit(v Visitor) error
}

// Context is a declaration that owns child declarations.
type Context interface {
	Decl

	// Declarations returns the children in source order.
	Declarations() []Decl
}

// Declaration holds the attributes common to all declaration variants.
type Declaration struct {
	Name string

	// Comment is the attached documentation, nil when absent.
	Comment *RawComment

	// DebugText is free-form text describing where the declaration came from.
	DebugText string

	// IsGenerated marks declarations that were already emitted elsewhere
	// (merged, moved, or generated by another pass). Traversal skips them.
	IsGenerated bool

	owner Context
}

func (d *Declaration) Base() *Declaration { return d }

// Owner returns the context the declaration belongs to, or nil for roots.
func (d *Declaration) Owner() Context { return d.owner }

// DeclarationContext is embedded by declarations that own children.
type DeclarationContext struct {
	Declaration

	Decls []Decl
}

func (c *DeclarationContext) Declarations() []Decl { return c.Decls }

// add appends d to the context owned by self.
func (c *DeclarationContext) add(self Context, d Decl) {
	d.Base().owner = self
	c.Decls = append(c.Decls, d)
}

// QualifiedName returns the "::"-joined names of d and its enclosing
// contexts. Translation units and anonymous contexts are not included.
func QualifiedName(d Decl) string {
	var parts []string
	for cur := Decl(d); cur != nil; {
		if cur.Kind() != KindTranslationUnit && cur.Base().Name != "" {
			parts = append(parts, cur.Base().Name)
		}
		owner := cur.Base().Owner()
		if owner == nil {
			break
		}
		cur = owner
	}
	slices.Reverse(parts)
	return strings.Join(parts, "::")
}

// TranslationUnit is the root context for one source input.
type TranslationUnit struct {
	DeclarationContext

	// FilePath is the path of the parsed source file.
	FilePath string
}

// NewTranslationUnit creates an empty unit for the given source path.
func NewTranslationUnit(path string) *TranslationUnit {
	u := &TranslationUnit{FilePath: path}
	u.Name = u.FileNameWithoutExtension()
	return u
}

// Add appends d to the unit.
func (u *TranslationUnit) Add(d Decl) { u.add(u, d) }

// FileNameWithoutExtension returns the base name of FilePath without its
// extension.
func (u *TranslationUnit) FileNameWithoutExtension() string {
	base := filepath.Base(u.FilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Namespace is a named declaration scope.
type Namespace struct {
	DeclarationContext

	IsInline bool
}

// Add appends d to the namespace.
func (n *Namespace) Add(d Decl) { n.add(n, d) }
