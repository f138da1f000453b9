// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/bindgen/ast"
)

const resolveModel = `{"units": [{"kind": "translationUnit", "file": "geo.h", "decls": [
  {"kind": "namespace", "name": "geo", "decls": [
    {"kind": "class", "name": "Point", "decls": [
      {"kind": "field", "name": "x", "type": {"kind": "reference", "name": "geo::Real"}}
    ]},
    {"kind": "typedef", "name": "Real", "type": {"kind": "builtin", "name": "double"}},
    {"kind": "class", "name": "Shape", "decls": [
      {"kind": "method", "name": "origin", "returnType": {"kind": "pointer", "element": {"kind": "reference", "name": "geo::Point"}}}
    ]},
    {"kind": "class", "name": "Circle", "bases": [{"kind": "reference", "name": "geo::Shape"}], "decls": [
      {"kind": "field", "name": "radius", "type": {"kind": "reference", "name": "geo::Real"}},
      {"kind": "field", "name": "self", "type": {"kind": "pointer", "element": {"kind": "reference", "name": "geo::Circle"}}}
    ]},
    {"kind": "enum", "name": "Color", "type": {"kind": "reference", "name": "geo::Byte"}, "items": [{"name": "Red", "value": 1}]},
    {"kind": "typedef", "name": "Byte", "type": {"kind": "builtin", "name": "unsigned char"}},
    {"kind": "function", "name": "paint", "params": [
      {"name": "s", "type": {"kind": "pointer", "element": {"kind": "reference", "name": "geo::Shape"}}},
      {"name": "c", "type": {"kind": "reference", "name": "geo::Color"}}
    ]},
    {"kind": "function", "name": "paint", "params": [
      {"name": "s", "type": {"kind": "reference", "name": "std::string"}}
    ]},
    {"kind": "function", "name": "unrelated"}
  ]},
  {"kind": "macro", "name": "GEO_VERSION", "expression": "1"}
]}]}`

func decodeResolveModel(t *testing.T) []*ast.TranslationUnit {
	t.Helper()
	units, err := ast.DecodeUnits([]byte(resolveModel))
	if err != nil {
		t.Fatal(err)
	}
	return units
}

func TestResolveDeps(t *testing.T) {
	tests := []struct {
		name  string
		roots []string
		want  []string
	}{
		{
			name:  "leaf typedef",
			roots: []string{"geo::Real"},
			want:  []string{"geo::Real"},
		},
		{
			name:  "field type",
			roots: []string{"geo::Point"},
			want:  []string{"geo::Point", "geo::Real"},
		},
		{
			name:  "bases and self reference",
			roots: []string{"geo::Circle"},
			want:  []string{"geo::Circle", "geo::Point", "geo::Real", "geo::Shape"},
		},
		{
			name:  "overloads and enum underlying type",
			roots: []string{"geo::paint"},
			want:  []string{"geo::Byte", "geo::Color", "geo::Point", "geo::Real", "geo::Shape", "geo::paint"},
		},
		{
			name:  "several roots",
			roots: []string{"geo::unrelated", "GEO_VERSION"},
			want:  []string{"GEO_VERSION", "geo::unrelated"},
		},
		{
			name:  "member by qualified name",
			roots: []string{"geo::Shape::origin"},
			want:  []string{"geo::Point", "geo::Real", "geo::Shape::origin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDeps(decodeResolveModel(t), tt.roots)
			if err != nil {
				t.Fatalf("ResolveDeps: %v", err)
			}
			if diff := cmp.Diff(tt.want, Kept(got)); diff != "" {
				t.Errorf("ResolveDeps() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveDeps_Unknown(t *testing.T) {
	_, err := ResolveDeps(decodeResolveModel(t), []string{"geo::Circle", "geo::Square", "Point"})
	if err == nil || err.Error() != "unknown declarations: geo::Square, Point" {
		t.Errorf("ResolveDeps() error = %v", err)
	}
}

// generatedNames lists the qualified names of every declaration marked
// generated, in document order.
func generatedNames(c ast.Context) []string {
	var names []string
	for _, d := range c.Declarations() {
		if d.Base().IsGenerated {
			names = append(names, ast.QualifiedName(d))
			continue
		}
		if inner, ok := d.(ast.Context); ok {
			names = append(names, generatedNames(inner)...)
		}
	}
	return names
}

func TestRestrict(t *testing.T) {
	tests := []struct {
		name  string
		roots []string
		want  []string
	}{
		{
			name:  "class keeps its members",
			roots: []string{"geo::Point"},
			want:  []string{"geo::Shape", "geo::Circle", "geo::Color", "geo::Byte", "geo::paint", "geo::paint", "geo::unrelated", "GEO_VERSION"},
		},
		{
			name:  "namespace emptied",
			roots: []string{"GEO_VERSION"},
			want:  []string{"geo"},
		},
		{
			name:  "member keeps its owner",
			roots: []string{"geo::Shape::origin"},
			want:  []string{"geo::Circle", "geo::Color", "geo::Byte", "geo::paint", "geo::paint", "geo::unrelated", "GEO_VERSION"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := decodeResolveModel(t)
			keep, err := ResolveDeps(units, tt.roots)
			if err != nil {
				t.Fatal(err)
			}
			Restrict(units, keep)
			if diff := cmp.Diff(tt.want, generatedNames(units[0])); diff != "" {
				t.Errorf("generated declarations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRestrict_SkippedByTraversal(t *testing.T) {
	units := decodeResolveModel(t)
	keep, err := ResolveDeps(units, []string{"geo::Real"})
	if err != nil {
		t.Fatal(err)
	}
	Restrict(units, keep)

	r, err := newRecorder(testContext(), Go, units...)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Process(); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if diff := cmp.Diff([]string{"Real"}, r.visited); diff != "" {
		t.Errorf("visited mismatch (-want +got):\n%s", diff)
	}
}
