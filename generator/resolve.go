// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bindgen/ast"
)

// ResolveDeps expands roots, a list of qualified declaration names, to
// every declaration they transitively reference through types: field and
// parameter types, return types, bases, typedef targets and enum
// underlying types. Overloads share a qualified name and are kept
// together. References to names the model does not declare are ignored.
func ResolveDeps(units []*ast.TranslationUnit, roots []string) (map[string]bool, error) {
	index := make(map[string][]ast.Decl)
	for _, u := range units {
		indexDecls(u, index)
	}

	var missing []string
	for _, r := range roots {
		if _, ok := index[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return nil, errors.WithHint(
			errors.Newf("unknown declarations: %s", strings.Join(missing, ", ")),
			"use qualified names such as ns::Class")
	}

	keep := make(map[string]bool)
	for _, r := range roots {
		collectDeps(index, r, keep)
	}
	return keep, nil
}

func indexDecls(c ast.Context, index map[string][]ast.Decl) {
	for _, d := range c.Declarations() {
		if name := ast.QualifiedName(d); name != "" {
			index[name] = append(index[name], d)
		}
		if inner, ok := d.(ast.Context); ok {
			indexDecls(inner, index)
		}
	}
}

// collectDeps marks name and everything its declarations reference.
func collectDeps(index map[string][]ast.Decl, name string, keep map[string]bool) {
	if keep[name] {
		return // Already processed or cycle
	}
	keep[name] = true

	for _, d := range index[name] {
		for _, t := range typeRefs(d, nil) {
			if _, declared := index[t]; declared {
				collectDeps(index, t, keep)
			}
		}
	}
}

// typeRefs appends the names of the declared types d and its members
// refer to.
func typeRefs(d ast.Decl, refs []string) []string {
	add := func(types ...*ast.Type) {
		for _, t := range types {
			for t != nil {
				if t.Kind == ast.TypeReference {
					refs = append(refs, t.Name)
				}
				t = t.Element
			}
		}
	}
	params := func(ps []*ast.Parameter) {
		for _, p := range ps {
			add(p.Type)
		}
	}

	switch d := d.(type) {
	case *ast.Field:
		add(d.Type)
	case *ast.Function:
		add(d.ReturnType)
		params(d.Parameters)
	case *ast.Method:
		add(d.ReturnType)
		params(d.Parameters)
	case *ast.TypedefDecl:
		add(d.Type)
	case *ast.TypeAlias:
		add(d.Type)
	case *ast.Enumeration:
		add(d.Type)
	case *ast.Variable:
		add(d.Type)
	case *ast.Property:
		add(d.Type)
	case *ast.Event:
		params(d.Parameters)
	case *ast.Class:
		add(d.Bases...)
	case *ast.ClassTemplateSpecialization:
		add(d.Bases...)
	case *ast.ClassTemplate:
		for _, s := range d.Specializations {
			refs = typeRefs(s, refs)
		}
	case *ast.FunctionTemplate:
		for _, s := range d.Specializations {
			if s.Function != nil {
				refs = typeRefs(s.Function, refs)
			}
		}
	}

	if c, ok := d.(ast.Context); ok {
		for _, m := range c.Declarations() {
			refs = typeRefs(m, refs)
		}
	}
	return refs
}

// Restrict marks every declaration outside keep as generated so backends
// skip it. Kept declarations keep all their members; contexts left without
// kept descendants are marked too. It must run before generators share
// the model.
func Restrict(units []*ast.TranslationUnit, keep map[string]bool) {
	for _, u := range units {
		restrict(u, keep)
	}
}

// restrict reports whether anything below c survived.
func restrict(c ast.Context, keep map[string]bool) bool {
	kept := false
	for _, d := range c.Declarations() {
		if keep[ast.QualifiedName(d)] {
			kept = true
			continue
		}
		if inner, ok := d.(ast.Context); ok && restrict(inner, keep) {
			kept = true
			continue
		}
		d.Base().IsGenerated = true
	}
	return kept
}

// Kept returns the sorted names of keep, for diagnostics.
func Kept(keep map[string]bool) []string {
	return slices.Sorted(maps.Keys(keep))
}
