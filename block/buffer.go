// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package block

import (
	"fmt"
	"strings"
)

// IndentWidth is the number of spaces per indentation level when
// formatting.
const IndentWidth = 4

// Buffer is a stack-based writer over a block tree. It is not safe for
// concurrent use; each generator owns its buffer.
type Buffer struct {
	root   *Block
	cur    *Block
	indent int
}

// NewBuffer returns an empty buffer positioned at the root block.
func NewBuffer() *Buffer {
	root := &Block{Kind: Unknown}
	return &Buffer{root: root, cur: root}
}

// Root returns the root block.
func (buf *Buffer) Root() *Block { return buf.root }

// Current returns the innermost open block.
func (buf *Buffer) Current() *Block { return buf.cur }

// Depth returns the number of open blocks above the root.
func (buf *Buffer) Depth() int {
	n := 0
	for b := buf.cur; b.parent != nil; b = b.parent {
		n++
	}
	return n
}

// PushBlock opens a block of the given kind inside the current one.
func (buf *Buffer) PushBlock(kind Kind) *Block {
	b := &Block{Kind: kind}
	buf.cur.append(b)
	buf.cur = b
	return b
}

// PopBlock closes the current block. Popping the root is a programming
// error in the caller and panics.
func (buf *Buffer) PopBlock() {
	if buf.cur.parent == nil {
		panic("block: PopBlock without matching PushBlock")
	}
	buf.cur = buf.cur.parent
}

// WriteLine formats a line and appends it to the current block. Text with
// embedded newlines is split into several lines.
func (buf *Buffer) WriteLine(format string, args ...any) {
	for l := range strings.SplitSeq(fmt.Sprintf(format, args...), "\n") {
		buf.cur.parts = append(buf.cur.parts, part{line: &line{text: l, indent: buf.indent}})
	}
}

// NewLine appends a blank line.
func (buf *Buffer) NewLine() {
	buf.cur.parts = append(buf.cur.parts, part{line: &line{}})
}

// Indent increases the indentation of subsequent lines.
func (buf *Buffer) Indent() { buf.indent++ }

// Unindent decreases the indentation of subsequent lines.
func (buf *Buffer) Unindent() {
	if buf.indent > 0 {
		buf.indent--
	}
}

// Find returns the blocks of the given kind in document order.
func (buf *Buffer) Find(kind Kind) []*Block {
	var found []*Block
	buf.root.walk(func(b *Block) {
		if b.Kind == kind && b != buf.root {
			found = append(found, b)
		}
	})
	return found
}

// Remove detaches every block of the given kind and returns how many were
// removed. Blocks that are currently open are left in place.
func (buf *Buffer) Remove(kind Kind) int {
	open := make(map[*Block]bool)
	for b := buf.cur; b != nil; b = b.parent {
		open[b] = true
	}
	n := 0
	for _, b := range buf.Find(kind) {
		if open[b] {
			continue
		}
		b.Detach()
		n++
	}
	return n
}

// Append attaches a detached block to the end of the current block.
func (buf *Buffer) Append(b *Block) {
	buf.cur.Adopt(b)
}

// Render returns the buffer's text.
//
// With skipFormatting set, lines are concatenated exactly as written.
// Otherwise indentation is applied, trailing whitespace is trimmed, and
// runs of blank lines are collapsed to one. Both modes produce the same
// non-blank lines in the same order.
func (buf *Buffer) Render(skipFormatting bool) string {
	var lines []line
	collect(buf.root, &lines)

	var sb strings.Builder
	if skipFormatting {
		for _, l := range lines {
			sb.WriteString(l.text)
			sb.WriteByte('\n')
		}
		return sb.String()
	}

	blank := true // suppresses leading blank lines
	pending := false
	for _, l := range lines {
		text := strings.TrimRight(l.text, " \t")
		if strings.TrimSpace(text) == "" {
			if !blank {
				pending = true
			}
			continue
		}
		if pending {
			sb.WriteByte('\n')
			pending = false
		}
		sb.WriteString(strings.Repeat(" ", l.indent*IndentWidth))
		sb.WriteString(text)
		sb.WriteByte('\n')
		blank = false
	}
	return sb.String()
}

func collect(b *Block, out *[]line) {
	for _, p := range b.parts {
		if p.line != nil {
			*out = append(*out, *p.line)
			continue
		}
		collect(p.block, out)
	}
}
