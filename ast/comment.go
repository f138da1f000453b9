// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"html"
	"strings"

	"github.com/cockroachdb/errors"
)

// RawComment is the documentation attached to a declaration.
type RawComment struct {
	// BriefText is the plain summary, possibly spanning several lines.
	BriefText string

	// FullComment is the structured form, nil when the frontend did not
	// parse the comment.
	FullComment FullComment
}

// FullComment is a parsed documentation comment that knows how to render
// itself with a given line prefix.
type FullComment interface {
	CommentToString(prefix string) string
}

// DocComment is a structured documentation comment rendered as XML doc
// tags.
type DocComment struct {
	Summary []string   `json:"summary,omitempty"`
	Params  []ParamDoc `json:"params,omitempty"`
	Returns string     `json:"returns,omitempty"`
}

// ParamDoc documents one parameter.
type ParamDoc struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// CommentToString renders the comment, one prefixed line per tag.
func (c *DocComment) CommentToString(prefix string) string {
	var lines []string
	if len(c.Summary) > 0 {
		lines = append(lines, prefix+" <summary>")
		for _, p := range c.Summary {
			lines = append(lines, fmt.Sprintf("%s <para>%s</para>", prefix, html.EscapeString(p)))
		}
		lines = append(lines, prefix+" </summary>")
	}
	for _, p := range c.Params {
		lines = append(lines, fmt.Sprintf("%s <param name=\"%s\">%s</param>",
			prefix, html.EscapeString(p.Name), html.EscapeString(p.Text)))
	}
	if c.Returns != "" {
		lines = append(lines, fmt.Sprintf("%s <returns>%s</returns>", prefix, html.EscapeString(c.Returns)))
	}
	return strings.Join(lines, "\n")
}

// CommentKind is the lexical style of a comment block.
type CommentKind int

const (
	CommentInvalid CommentKind = iota
	// CommentBCPL is "// text".
	CommentBCPL
	// CommentBCPLSlash is "/// text".
	CommentBCPLSlash
	// CommentBCPLExcl is "//! text".
	CommentBCPLExcl
	// CommentC is "/* ... */".
	CommentC
	// CommentJavaDoc is "/** ... */".
	CommentJavaDoc
	// CommentQt is "/*! ... */".
	CommentQt
)

// CommentStyle holds the tokens used to emit a multi-line comment.
type CommentStyle struct {
	// Prologue is emitted on its own line before the body, if non-blank.
	Prologue string
	// Marker prefixes every body line.
	Marker string
	// Epilogue is emitted on its own line after the body, if non-blank.
	Epilogue string
}

var commentStyles = map[CommentKind]CommentStyle{
	CommentBCPL:      {Marker: "//"},
	CommentBCPLSlash: {Marker: "///"},
	CommentBCPLExcl:  {Prologue: "//!", Marker: "//"},
	CommentC:         {Prologue: "/*", Marker: " *", Epilogue: " */"},
	CommentJavaDoc:   {Prologue: "/**", Marker: " *", Epilogue: " */"},
	CommentQt:        {Prologue: "/*!", Marker: " *", Epilogue: " */"},
}

// Style returns the tokens for k.
func (k CommentKind) Style() (CommentStyle, error) {
	s, ok := commentStyles[k]
	if !ok {
		return CommentStyle{}, errors.Newf("unknown comment kind %d", int(k))
	}
	return s, nil
}

var commentKindNames = map[string]CommentKind{
	"bcpl":      CommentBCPL,
	"bcplslash": CommentBCPLSlash,
	"bcplexcl":  CommentBCPLExcl,
	"c":         CommentC,
	"javadoc":   CommentJavaDoc,
	"qt":        CommentQt,
}

// ParseCommentKind parses a case-insensitive comment kind name such as
// "javadoc" or "bcplslash".
func ParseCommentKind(s string) (CommentKind, error) {
	if k, ok := commentKindNames[strings.ToLower(s)]; ok {
		return k, nil
	}
	return CommentInvalid, errors.Newf("unknown comment kind %q", s)
}
