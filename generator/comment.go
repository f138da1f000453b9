// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"html"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/block"
)

// preamble is the boilerplate placed at the top of every generated file.
var preamble = []string{
	"----------------------------------------------------------------------------",
	"<auto-generated>",
	"This is autogenerated code by bindgen.",
	"Do not edit this file or all your changes will be lost after re-generation.",
	"</auto-generated>",
	"----------------------------------------------------------------------------",
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// GenerateDeclarationCommon emits the documentation of decl and, when
// enabled, its debug annotation. Declarations without documentation emit
// nothing.
func (g *CodeGenerator) GenerateDeclarationCommon(decl ast.Decl) {
	if decl.Base().Comment == nil {
		return
	}
	g.GenerateComment(decl.Base().Comment)
	g.GenerateDebug(decl)
}

// GenerateDebug emits "// DEBUG: <text>" when debug output is enabled and
// decl carries debug text. The line comment token is fixed regardless of
// the backend's comment style.
func (g *CodeGenerator) GenerateDebug(decl ast.Decl) {
	text := decl.Base().DebugText
	if !g.Context.Options.GenerateDebugOutput || strings.TrimSpace(text) == "" {
		return
	}
	g.WriteLine("// DEBUG: %s", strings.ReplaceAll(newlines.Replace(text), "\n", " "))
}

// GenerateComment emits c inside a block comment region. A structured
// comment renders itself; otherwise the brief text becomes a summary.
func (g *CodeGenerator) GenerateComment(c *ast.RawComment) {
	if c == nil {
		return
	}
	if c.FullComment != nil {
		g.PushBlock(block.BlockComment)
		defer g.PopBlock()
		g.WriteLine("%s", c.FullComment.CommentToString(g.CommentPrefix()))
		return
	}
	g.generateSummary(block.BlockComment, c.BriefText)
}

// GenerateInlineSummary emits the brief text of c inside an inline comment
// region. Structured comments are ignored.
func (g *CodeGenerator) GenerateInlineSummary(c *ast.RawComment) {
	if c == nil {
		return
	}
	g.generateSummary(block.InlineComment, c.BriefText)
}

// generateSummary writes brief as a one-line summary, or as one escaped
// paragraph per line when it spans several lines. Blank text writes
// nothing and opens no region.
func (g *CodeGenerator) generateSummary(kind block.Kind, brief string) {
	text := newlines.Replace(brief)
	if strings.TrimSpace(text) == "" {
		return
	}

	g.PushBlock(kind)
	defer g.PopBlock()

	prefix := g.CommentPrefix()
	if !strings.Contains(text, "\n") {
		g.WriteLine("%s <summary>%s</summary>", prefix, text)
		return
	}
	g.WriteLine("%s <summary>", prefix)
	for line := range strings.SplitSeq(html.EscapeString(text), "\n") {
		g.WriteLine("%s <para>%s</para>", prefix, line)
	}
	g.WriteLine("%s </summary>", prefix)
}

// GenerateMultiLineComment writes lines using the prologue, marker and
// epilogue tokens of kind. Blank prologues and epilogues are omitted.
func (g *CodeGenerator) GenerateMultiLineComment(lines []string, kind ast.CommentKind) error {
	style, err := kind.Style()
	if err != nil {
		return errors.Wrap(err, "multi-line comment")
	}
	if strings.TrimSpace(style.Prologue) != "" {
		g.WriteLine("%s", style.Prologue)
	}
	for _, line := range lines {
		g.WriteLine("%s %s", style.Marker, line)
	}
	if strings.TrimSpace(style.Epilogue) != "" {
		g.WriteLine("%s", style.Epilogue)
	}
	return nil
}

// PreambleKind returns the comment style configured for the preamble, or
// def when none is.
func (g *CodeGenerator) PreambleKind(def ast.CommentKind) (ast.CommentKind, error) {
	style := g.Context.Options.PreambleStyle
	if style == "" {
		return def, nil
	}
	kind, err := ast.ParseCommentKind(style)
	if err != nil {
		return ast.CommentInvalid, errors.WithHint(errors.Wrap(err, "preamble style"),
			"use one of bcpl, bcplslash, bcplexcl, c, javadoc, qt")
	}
	return kind, nil
}

// GenerateFilePreamble writes the auto-generated notice in a header
// region.
func (g *CodeGenerator) GenerateFilePreamble(kind ast.CommentKind) error {
	g.PushBlock(block.Header)
	defer g.PopBlock()
	return g.GenerateMultiLineComment(preamble, kind)
}
