// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/block"
)

// Blocks is the part of the block engine the core writes through.
// [block.Buffer] implements it.
type Blocks interface {
	PushBlock(kind block.Kind) *block.Block
	PopBlock()
	WriteLine(format string, args ...any)
	NewLine()
	Indent()
	Unindent()
	Remove(kind block.Kind) int
	Render(skipFormatting bool) string
}

// Emitter is the outermost value of a backend: the visitor whose overrides
// the default handlers dispatch through.
type Emitter interface {
	ast.Visitor
	FileExtension() string
}

// CodeGenerator holds what every backend shares: the generation context,
// the bound translation units, and the block buffer output goes to.
//
// A backend embeds *CodeGenerator and calls [CodeGenerator.Bind] with
// itself so that default handlers recurse through its overrides.
type CodeGenerator struct {
	Blocks

	Context          *Context
	TranslationUnits []*ast.TranslationUnit

	kind Kind
	self Emitter
}

// Option configures a CodeGenerator.
type Option func(*CodeGenerator)

// WithBlocks replaces the default block buffer.
func WithBlocks(b Blocks) Option {
	return func(g *CodeGenerator) { g.Blocks = b }
}

// New creates a code generator of the given kind bound to units. The first
// unit is primary and names the output file.
func New(ctx *Context, kind Kind, units []*ast.TranslationUnit, opts ...Option) (*CodeGenerator, error) {
	if ctx == nil {
		return nil, errors.New("generator: nil context")
	}
	if len(units) == 0 {
		return nil, errors.Newf("generator: %s generator needs at least one translation unit", kind)
	}
	g := &CodeGenerator{
		Blocks:           block.NewBuffer(),
		Context:          ctx,
		TranslationUnits: append([]*ast.TranslationUnit(nil), units...),
		kind:             kind,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Bind installs the backend that embeds g.
func (g *CodeGenerator) Bind(e Emitter) { g.self = e }

// Kind returns the generator kind.
func (g *CodeGenerator) Kind() Kind { return g.kind }

// Options returns the run's options.
func (g *CodeGenerator) Options() *Options { return &g.Context.Options }

// TranslationUnit returns the primary unit.
func (g *CodeGenerator) TranslationUnit() *ast.TranslationUnit { return g.TranslationUnits[0] }

// FilePath returns "<primary unit base name>.<extension>".
func (g *CodeGenerator) FilePath() string {
	base := g.TranslationUnit().FileNameWithoutExtension()
	if g.self == nil {
		return base
	}
	return fmt.Sprintf("%s.%s", base, g.self.FileExtension())
}

// CommentPrefix returns the documentation comment prefix for this
// generator's kind.
func (g *CodeGenerator) CommentPrefix() string {
	return g.Context.Options.CommentPrefix(g.kind)
}

// SkipsFormatting reports whether Generate returns unformatted text. Only
// C# output compiled in-process skips formatting.
func (g *CodeGenerator) SkipsFormatting() bool {
	return g.kind == CSharp && g.Context.Options.CompileCode
}

// Generate renders the accumulated blocks. With StripComments set, block
// and inline comment regions are dropped first.
func (g *CodeGenerator) Generate() string {
	if g.Context.Options.StripComments {
		g.Remove(block.BlockComment)
		g.Remove(block.InlineComment)
	}
	return g.Render(g.SkipsFormatting())
}

// Region runs fn inside a block of the given kind. The block is closed on
// every return path, including errors and panics.
func (g *CodeGenerator) Region(kind block.Kind, fn func() error) error {
	g.PushBlock(kind)
	defer g.PopBlock()
	return fn()
}

// VisitAll visits each declaration not yet generated, stopping at the
// first error.
func (g *CodeGenerator) VisitAll(decls []ast.Decl) error {
	v := g.visitor()
	for _, d := range decls {
		if d.Base().IsGenerated {
			continue
		}
		if err := d.Visit(v); err != nil {
			return err
		}
	}
	return nil
}

// visitor returns the bound backend, or g itself when unbound.
func (g *CodeGenerator) visitor() ast.Visitor {
	if g.self != nil {
		return g.self
	}
	return g
}
