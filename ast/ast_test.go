// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKind_String(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		name := k.String()
		if name == "" || strings.HasPrefix(name, "Kind(") {
			t.Errorf("kind %d has no name", int(k))
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("kinds %d and %d share name %q", int(prev), int(k), name)
		}
		seen[name] = k

		got, ok := ParseKind(name)
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, true", name, got, ok, k)
		}
	}

	if got := Kind(-1).String(); got != "Kind(-1)" {
		t.Errorf("Kind(-1).String() = %q", got)
	}
	if _, ok := ParseKind("module"); ok {
		t.Error("ParseKind(module) succeeded")
	}
}

func TestKind_IsContext(t *testing.T) {
	var got []Kind
	for _, k := range Kinds() {
		if k.IsContext() {
			got = append(got, k)
		}
	}
	want := []Kind{KindTranslationUnit, KindNamespace, KindClass, KindClassTemplateSpecialization}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("context kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestQualifiedName(t *testing.T) {
	unit := NewTranslationUnit("include/geo/shapes.h")
	ns := &Namespace{}
	ns.Name = "geo"
	unit.Add(ns)

	class := &Class{}
	class.Name = "Circle"
	ns.Add(class)

	field := &Field{Type: Builtin("double")}
	field.Name = "radius"
	class.Add(field)

	anon := &Namespace{}
	unit.Add(anon)
	v := &Variable{Type: Builtin("int")}
	v.Name = "counter"
	anon.Add(v)

	tests := []struct {
		decl Decl
		want string
	}{
		{unit, ""},
		{ns, "geo"},
		{class, "geo::Circle"},
		{field, "geo::Circle::radius"},
		{v, "counter"},
	}
	for _, tt := range tests {
		if got := QualifiedName(tt.decl); got != tt.want {
			t.Errorf("QualifiedName(%s) = %q, want %q", tt.decl.Kind(), got, tt.want)
		}
	}

	if field.Owner() != Context(class) {
		t.Error("field owner is not the class")
	}
	if unit.Owner() != nil {
		t.Error("translation unit has an owner")
	}
}

func TestTranslationUnit_FileNameWithoutExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"shapes.h", "shapes"},
		{"include/geo/shapes.hpp", "shapes"},
		{"archive.tar.gz", "archive.tar"},
		{"Makefile", "Makefile"},
	}
	for _, tt := range tests {
		u := NewTranslationUnit(tt.path)
		if got := u.FileNameWithoutExtension(); got != tt.want {
			t.Errorf("FileNameWithoutExtension(%q) = %q, want %q", tt.path, got, tt.want)
		}
		if u.Name != tt.want {
			t.Errorf("Name = %q, want %q", u.Name, tt.want)
		}
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{nil, "void"},
		{Builtin("int"), "int"},
		{&Type{Kind: TypeBuiltin, Name: "char", Const: true}, "const char"},
		{PointerTo(Ref("geo::Circle")), "geo::Circle*"},
		{&Type{Kind: TypeArray, Element: Builtin("float"), Size: 4}, "float[4]"},
		{&Type{Kind: TypeArray, Element: Builtin("float")}, "float[]"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCommentKind_Style(t *testing.T) {
	tests := []struct {
		kind CommentKind
		want CommentStyle
	}{
		{CommentBCPL, CommentStyle{Marker: "//"}},
		{CommentBCPLSlash, CommentStyle{Marker: "///"}},
		{CommentBCPLExcl, CommentStyle{Prologue: "//!", Marker: "//"}},
		{CommentC, CommentStyle{Prologue: "/*", Marker: " *", Epilogue: " */"}},
		{CommentJavaDoc, CommentStyle{Prologue: "/**", Marker: " *", Epilogue: " */"}},
		{CommentQt, CommentStyle{Prologue: "/*!", Marker: " *", Epilogue: " */"}},
	}
	for _, tt := range tests {
		got, err := tt.kind.Style()
		if err != nil {
			t.Fatalf("Style(%d): %v", tt.kind, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Style(%d) mismatch (-want +got):\n%s", tt.kind, diff)
		}
	}

	if _, err := CommentInvalid.Style(); err == nil {
		t.Error("expected error for invalid comment kind")
	}
}

func TestParseCommentKind(t *testing.T) {
	k, err := ParseCommentKind("JavaDoc")
	if err != nil || k != CommentJavaDoc {
		t.Errorf("ParseCommentKind(JavaDoc) = %v, %v", k, err)
	}
	if _, err := ParseCommentKind("rst"); err == nil {
		t.Error("expected error for unknown comment kind")
	}
}

func TestDocComment_CommentToString(t *testing.T) {
	c := &DocComment{
		Summary: []string{"Computes a < b.", "Second paragraph."},
		Params:  []ParamDoc{{Name: "a", Text: "left & operand"}},
		Returns: "true when smaller",
	}
	want := strings.Join([]string{
		"/// <summary>",
		"/// <para>Computes a &lt; b.</para>",
		"/// <para>Second paragraph.</para>",
		"/// </summary>",
		`/// <param name="a">left &amp; operand</param>`,
		"/// <returns>true when smaller</returns>",
	}, "\n")
	if diff := cmp.Diff(want, c.CommentToString("///")); diff != "" {
		t.Errorf("CommentToString mismatch (-want +got):\n%s", diff)
	}
}
