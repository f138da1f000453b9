// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Type kinds.
const (
	TypeBuiltin   = "builtin"
	TypeReference = "reference"
	TypePointer   = "pointer"
	TypeArray     = "array"
)

// Type is a type reference in the declaration model.
//
// The Kind field determines which other fields are relevant:
//   - "builtin": Name is a primitive ("int", "unsigned char", "void", ...)
//   - "reference": Name is the qualified name of a declared type
//   - "pointer": Element is the pointee
//   - "array": Element is the element type, Size the length (0 if unknown)
type Type struct {
	Kind    string `json:"kind"`
	Name    string `json:"name,omitempty"`
	Element *Type  `json:"element,omitempty"`
	Size    int    `json:"size,omitempty"`
	Const   bool   `json:"const,omitempty"`
}

// Builtin returns a builtin type.
func Builtin(name string) *Type { return &Type{Kind: TypeBuiltin, Name: name} }

// Ref returns a reference to a declared type.
func Ref(name string) *Type { return &Type{Kind: TypeReference, Name: name} }

// PointerTo returns a pointer to elem.
func PointerTo(elem *Type) *Type { return &Type{Kind: TypePointer, Element: elem} }

// IsVoid reports whether t is the builtin void type.
func (t *Type) IsVoid() bool {
	return t == nil || (t.Kind == TypeBuiltin && t.Name == "void")
}

// String renders t in C-like notation, mainly for diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	var s string
	switch t.Kind {
	case TypeBuiltin, TypeReference:
		s = t.Name
	case TypePointer:
		s = t.Element.String() + "*"
	case TypeArray:
		if t.Size > 0 {
			s = fmt.Sprintf("%s[%d]", t.Element, t.Size)
		} else {
			s = t.Element.String() + "[]"
		}
	default:
		s = "<" + t.Kind + ">"
	}
	if t.Const {
		s = "const " + s
	}
	return s
}

func (t *Type) validate() error {
	switch t.Kind {
	case TypeBuiltin, TypeReference:
		if strings.TrimSpace(t.Name) == "" {
			return errors.Newf("%s type without name", t.Kind)
		}
	case TypePointer, TypeArray:
		if t.Element == nil {
			return errors.Newf("%s type without element", t.Kind)
		}
		return t.Element.validate()
	default:
		return errors.Newf("unknown type kind: %q", t.Kind)
	}
	return nil
}
