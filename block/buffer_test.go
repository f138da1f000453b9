// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package block

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_PushPop(t *testing.T) {
	buf := NewBuffer()
	buf.PushBlock(Header)
	buf.WriteLine("// header")
	buf.PopBlock()

	cls := buf.PushBlock(Class)
	buf.WriteLine("class %s {", "Circle")
	buf.PushBlock(Field)
	if got := buf.Depth(); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
	buf.WriteLine("double radius;")
	buf.PopBlock()
	buf.WriteLine("};")
	buf.PopBlock()

	if buf.Current() != buf.Root() {
		t.Fatal("buffer not back at root after balanced push/pop")
	}
	if diff := cmp.Diff([]string{"class Circle {", "};"}, cls.Lines()); diff != "" {
		t.Errorf("class lines mismatch (-want +got):\n%s", diff)
	}
	if len(cls.Children()) != 1 || cls.Children()[0].Kind != Field {
		t.Errorf("class children = %v", cls.Children())
	}
}

func TestBuffer_PopRootPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when popping the root block")
		}
	}()
	NewBuffer().PopBlock()
}

func TestBuffer_WriteLine(t *testing.T) {
	buf := NewBuffer()
	buf.WriteLine("100%% literal")
	buf.WriteLine("%d%%", 50)
	buf.WriteLine("first\nsecond")

	want := []string{"100% literal", "50%", "first", "second"}
	if diff := cmp.Diff(want, buf.Root().Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func newSample() *Buffer {
	buf := NewBuffer()
	buf.NewLine()
	buf.PushBlock(Header)
	buf.WriteLine("// generated   ")
	buf.PopBlock()
	buf.NewLine()
	buf.NewLine()
	buf.PushBlock(Namespace)
	buf.WriteLine("namespace geo {")
	buf.Indent()
	buf.PushBlock(BlockComment)
	buf.WriteLine("/// <summary>A circle.</summary>")
	buf.PopBlock()
	buf.PushBlock(Class)
	buf.WriteLine("class Circle {")
	buf.Indent()
	buf.WriteLine("double radius;")
	buf.Unindent()
	buf.WriteLine("}")
	buf.PopBlock()
	buf.Unindent()
	buf.WriteLine("}")
	buf.PopBlock()
	buf.NewLine()
	return buf
}

func TestBuffer_Render(t *testing.T) {
	buf := newSample()

	formatted := buf.Render(false)
	wantFormatted := strings.Join([]string{
		"// generated",
		"",
		"namespace geo {",
		"    /// <summary>A circle.</summary>",
		"    class Circle {",
		"        double radius;",
		"    }",
		"}",
		"",
	}, "\n")
	if diff := cmp.Diff(wantFormatted, formatted); diff != "" {
		t.Errorf("formatted mismatch (-want +got):\n%s", diff)
	}

	raw := buf.Render(true)
	wantRaw := strings.Join([]string{
		"",
		"// generated   ",
		"",
		"",
		"namespace geo {",
		"/// <summary>A circle.</summary>",
		"class Circle {",
		"double radius;",
		"}",
		"}",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(wantRaw, raw); diff != "" {
		t.Errorf("unformatted mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(contentLines(formatted), contentLines(raw)); diff != "" {
		t.Errorf("modes differ beyond whitespace (-formatted +raw):\n%s", diff)
	}

	if buf.Render(false) != formatted {
		t.Error("Render is not repeatable")
	}
}

// contentLines strips whitespace and drops blank lines.
func contentLines(s string) []string {
	var out []string
	for l := range strings.SplitSeq(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func TestBuffer_FindRemoveRelocate(t *testing.T) {
	buf := newSample()

	comments := buf.Find(BlockComment)
	if len(comments) != 1 {
		t.Fatalf("Find(BlockComment) = %d blocks, want 1", len(comments))
	}

	// Relocate the header to the end of the document.
	header := buf.Find(Header)[0]
	header.Detach()
	if header.Parent() != nil {
		t.Error("detached block still has a parent")
	}
	buf.Append(header)
	lines := contentLines(buf.Render(false))
	if got := lines[len(lines)-1]; got != "// generated" {
		t.Errorf("last line = %q, want relocated header", got)
	}

	if n := buf.Remove(BlockComment); n != 1 {
		t.Errorf("Remove(BlockComment) = %d, want 1", n)
	}
	if strings.Contains(buf.Render(false), "summary") {
		t.Error("comment still rendered after Remove")
	}
	if len(buf.Find(BlockComment)) != 0 {
		t.Error("Find still reports removed blocks")
	}
}

func TestBuffer_RemoveSkipsOpenBlocks(t *testing.T) {
	buf := NewBuffer()
	buf.PushBlock(InlineComment)
	buf.WriteLine("// open")
	if n := buf.Remove(InlineComment); n != 0 {
		t.Errorf("Remove removed %d open blocks", n)
	}
	buf.PopBlock()
	if n := buf.Remove(InlineComment); n != 1 {
		t.Errorf("Remove = %d after closing, want 1", n)
	}
}

func TestBlock_IsEmpty(t *testing.T) {
	buf := NewBuffer()
	outer := buf.PushBlock(Namespace)
	buf.PushBlock(Class)
	buf.PopBlock()
	buf.PopBlock()
	if !outer.IsEmpty() {
		t.Error("block with only empty children should be empty")
	}
	buf.Append(&Block{Kind: Footer})
	if !buf.Root().IsEmpty() {
		t.Error("root should be empty")
	}
}

func TestKind_String(t *testing.T) {
	if got := BlockComment.String(); got != "block-comment" {
		t.Errorf("BlockComment.String() = %q", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}
