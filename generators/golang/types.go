// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/internal/naming"
)

// builtinTypes maps C++ builtin type names to Go types, assuming an LP64
// target.
var builtinTypes = map[string]string{
	"bool":               "bool",
	"char":               "int8",
	"signed char":        "int8",
	"unsigned char":      "uint8",
	"short":              "int16",
	"unsigned short":     "uint16",
	"int":                "int32",
	"unsigned int":       "uint32",
	"long":               "int64",
	"unsigned long":      "uint64",
	"long long":          "int64",
	"unsigned long long": "uint64",
	"float":              "float32",
	"double":             "float64",
	"wchar_t":            "int32",
	"char16_t":           "uint16",
	"char32_t":           "rune",
	"int8_t":             "int8",
	"uint8_t":            "uint8",
	"int16_t":            "int16",
	"uint16_t":           "uint16",
	"int32_t":            "int32",
	"uint32_t":           "uint32",
	"int64_t":            "int64",
	"uint64_t":           "uint64",
	"size_t":             "uintptr",
	"ptrdiff_t":          "int",
	"intptr_t":           "int",
	"uintptr_t":          "uintptr",
}

// keywords are Go reserved words; identifiers that collide get a "_"
// suffix.
var keywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// typeNames maps the qualified C++ name of each declared type to the Go
// name it was given.
type typeNames map[string]string

// ref returns the Go name of the type with the given qualified name.
// Types outside the bound units keep the last component of their name.
func (tn typeNames) ref(qualified string) string {
	if name, ok := tn[qualified]; ok {
		return name
	}
	return typeName(qualified)
}

// goType converts a model type to a Go type. Void yields "".
func (tn typeNames) goType(t *ast.Type) (string, error) {
	if t.IsVoid() {
		return "", nil
	}
	switch t.Kind {
	case ast.TypeBuiltin:
		name, ok := builtinTypes[t.Name]
		if !ok {
			return "", errors.Newf("unsupported builtin type %q", t.Name)
		}
		return name, nil

	case ast.TypeReference:
		return tn.ref(t.Name), nil

	case ast.TypePointer:
		elem := t.Element
		if elem == nil {
			return "", errors.New("pointer type without element")
		}
		if elem.Kind == ast.TypeBuiltin {
			switch {
			case elem.Name == "char" && elem.Const:
				return "string", nil
			case elem.IsVoid():
				return "uintptr", nil
			}
		}
		inner, err := tn.goType(elem)
		if err != nil {
			return "", err
		}
		return "*" + inner, nil

	case ast.TypeArray:
		inner, err := tn.goType(t.Element)
		if err != nil {
			return "", err
		}
		if inner == "" {
			return "", errors.New("array of void")
		}
		if t.Size > 0 {
			return fmt.Sprintf("[%d]%s", t.Size, inner), nil
		}
		return "[]" + inner, nil

	default:
		return "", errors.Newf("unknown type kind %q", t.Kind)
	}
}

// signature renders the parameter list and result of fn.
func (tn typeNames) signature(fn *ast.Function) (string, error) {
	ret, err := tn.goType(fn.ReturnType)
	if err != nil {
		return "", errors.Wrap(err, "return type")
	}
	return tn.signatureReturning(fn, ret)
}

func (tn typeNames) signatureReturning(fn *ast.Function, ret string) (string, error) {
	params := make([]string, 0, len(fn.Parameters)+1)
	for i, p := range fn.Parameters {
		typ, err := tn.goType(p.Type)
		if err != nil {
			return "", errors.Wrapf(err, "parameter %d", i)
		}
		name := localName(p.Name)
		if p.Name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		params = append(params, name+" "+typ)
	}
	if fn.IsVariadic {
		params = append(params, "args ...any")
	}
	sig := "(" + strings.Join(params, ", ") + ")"
	if ret != "" {
		sig += " " + ret
	}
	return sig, nil
}

// specializationKey is the qualified name references use for a class
// template specialization, such as "geo::Vec<float, 4>".
func specializationKey(spec *ast.ClassTemplateSpecialization) string {
	return ast.QualifiedName(spec) + "<" + strings.Join(templateArgs(spec.Arguments), ", ") + ">"
}

func templateArgs(args []ast.TemplateArgument) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a.Type != nil {
			out[i] = a.Type.String()
		} else {
			out[i] = a.Value
		}
	}
	return out
}

// restates reports whether a typedef only repeats a tag name, as in
// "typedef struct Foo Foo".
func restates(typedef *ast.TypedefNameDecl) bool {
	t := typedef.Type
	return t != nil && t.Kind == ast.TypeReference && typeName(t.Name) == exportName(typedef.Name)
}

// typeName returns the exported Go name of a possibly qualified C++ type
// name. Go packages are flat, so only the last component is kept.
func typeName(qualified string) string {
	parts := strings.Split(qualified, "::")
	return exportName(parts[len(parts)-1])
}

// exportName returns the exported Go spelling of a C++ name.
func exportName(name string) string {
	return naming.ExportName(naming.SnakeToPascal(name))
}

// localName returns an unexported identifier, escaped when it is a Go
// keyword.
func localName(name string) string {
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return "x"
	}
	if naming.IsAllUpper(name) {
		name = strings.ToLower(name)
	} else {
		runes := []rune(name)
		runes[0] = unicode.ToLower(runes[0])
		name = string(runes)
	}
	return naming.Escape(name, keywords, "_")
}
