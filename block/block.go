// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package block implements the region-structured text buffer generators
// emit into.
//
// Output is a tree of named blocks. A generator opens a block with
// [Buffer.PushBlock], writes lines into it, and closes it with
// [Buffer.PopBlock]. Because every piece of output lives in a tagged block,
// cross-cutting content (headers, comments, debug annotations) can be
// located with [Buffer.Find], dropped with [Buffer.Remove], or moved with
// [Block.Detach] and [Buffer.Append] before the tree is rendered.
package block

import "fmt"

// Kind tags a block with the role of the content it wraps.
type Kind int

const (
	Unknown Kind = iota
	Header
	BlockComment
	InlineComment
	Namespace
	Class
	Field
	Function
	Method
	Enum
	Typedef
	Variable
	Macro
	Event
	Property
	Usings
	Footer
)

var kindNames = map[Kind]string{
	Unknown:       "unknown",
	Header:        "header",
	BlockComment:  "block-comment",
	InlineComment: "inline-comment",
	Namespace:     "namespace",
	Class:         "class",
	Field:         "field",
	Function:      "function",
	Method:        "method",
	Enum:          "enum",
	Typedef:       "typedef",
	Variable:      "variable",
	Macro:         "macro",
	Event:         "event",
	Property:      "property",
	Usings:        "usings",
	Footer:        "footer",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// line is one emitted line and the indentation level it was written at.
type line struct {
	text   string
	indent int
}

// part is either a line or a nested block, kept in emission order.
type part struct {
	line  *line
	block *Block
}

// Block is one region of output.
type Block struct {
	Kind Kind

	parent *Block
	parts  []part
}

// Parent returns the enclosing block, nil for the root.
func (b *Block) Parent() *Block { return b.parent }

// Lines returns the text of the lines written directly into b.
func (b *Block) Lines() []string {
	var lines []string
	for _, p := range b.parts {
		if p.line != nil {
			lines = append(lines, p.line.text)
		}
	}
	return lines
}

// Children returns the blocks nested directly inside b.
func (b *Block) Children() []*Block {
	var children []*Block
	for _, p := range b.parts {
		if p.block != nil {
			children = append(children, p.block)
		}
	}
	return children
}

// IsEmpty reports whether b and its descendants hold no lines.
func (b *Block) IsEmpty() bool {
	for _, p := range b.parts {
		if p.line != nil || !p.block.IsEmpty() {
			return false
		}
	}
	return true
}

// Detach removes b from its parent. It is a no-op for detached blocks.
func (b *Block) Detach() {
	if b.parent == nil {
		return
	}
	parts := b.parent.parts
	for i, p := range parts {
		if p.block == b {
			b.parent.parts = append(parts[:i:i], parts[i+1:]...)
			break
		}
	}
	b.parent = nil
}

// Adopt moves child to the end of b, detaching it from its current
// parent first.
func (b *Block) Adopt(child *Block) {
	child.Detach()
	b.append(child)
}

func (b *Block) append(child *Block) {
	child.parent = b
	b.parts = append(b.parts, part{block: child})
}

func (b *Block) walk(fn func(*Block)) {
	fn(b)
	for _, p := range b.parts {
		if p.block != nil {
			p.block.walk(fn)
		}
	}
}
