// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bindgen/ast"
)

// builtinTypes maps C++ builtin type names to C# keywords.
var builtinTypes = map[string]string{
	"void":               "void",
	"bool":               "bool",
	"char":               "sbyte",
	"signed char":        "sbyte",
	"unsigned char":      "byte",
	"short":              "short",
	"unsigned short":     "ushort",
	"int":                "int",
	"unsigned int":       "uint",
	"long":               "int",
	"unsigned long":      "uint",
	"long long":          "long",
	"unsigned long long": "ulong",
	"float":              "float",
	"double":             "double",
	"wchar_t":            "char",
	"char16_t":           "char",
	"char32_t":           "uint",
	"int8_t":             "sbyte",
	"uint8_t":            "byte",
	"int16_t":            "short",
	"uint16_t":           "ushort",
	"int32_t":            "int",
	"uint32_t":           "uint",
	"int64_t":            "long",
	"uint64_t":           "ulong",
	"size_t":             "ulong",
	"ptrdiff_t":          "long",
	"intptr_t":           "IntPtr",
	"uintptr_t":          "UIntPtr",
}

// systemTypes maps C# keywords to their System type names, which is what
// using aliases must refer to.
var systemTypes = map[string]string{
	"bool":    "System.Boolean",
	"sbyte":   "System.SByte",
	"byte":    "System.Byte",
	"short":   "System.Int16",
	"ushort":  "System.UInt16",
	"int":     "System.Int32",
	"uint":    "System.UInt32",
	"long":    "System.Int64",
	"ulong":   "System.UInt64",
	"float":   "System.Single",
	"double":  "System.Double",
	"char":    "System.Char",
	"string":  "System.String",
	"IntPtr":  "System.IntPtr",
	"UIntPtr": "System.UIntPtr",
}

// keywords are C# reserved words that need an "@" prefix as identifiers.
var keywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true, "default": true,
	"delegate": true, "do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true, "finally": true,
	"fixed": true, "float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true, "out": true,
	"override": true, "params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}

// identifier returns name, escaped when it is a C# keyword.
func identifier(name string) string {
	if keywords[name] {
		return "@" + name
	}
	return name
}

// csType converts a model type to a C# type usable in P/Invoke signatures.
func csType(t *ast.Type) (string, error) {
	if t == nil {
		return "void", nil
	}
	switch t.Kind {
	case ast.TypeBuiltin:
		name, ok := builtinTypes[t.Name]
		if !ok {
			return "", errors.Newf("unsupported builtin type %q", t.Name)
		}
		return name, nil

	case ast.TypeReference:
		return strings.ReplaceAll(t.Name, "::", "."), nil

	case ast.TypePointer:
		elem := t.Element
		if elem == nil {
			return "", errors.New("pointer type without element")
		}
		if elem.Kind == ast.TypeBuiltin {
			switch elem.Name {
			case "char":
				if elem.Const {
					return "string", nil
				}
			case "void":
				return "IntPtr", nil
			}
			inner, err := csType(elem)
			if err != nil {
				return "", err
			}
			return inner + "*", nil
		}
		return "IntPtr", nil

	case ast.TypeArray:
		inner, err := csType(t.Element)
		if err != nil {
			return "", err
		}
		return inner + "[]", nil

	default:
		return "", errors.Newf("unknown type kind %q", t.Kind)
	}
}

// aliasTarget converts t to a fully qualified type name for a using alias,
// which cannot see the file's other using directives. Declared types are
// qualified with ns.
func aliasTarget(t *ast.Type, ns string) (string, error) {
	if t != nil && t.Kind == ast.TypeReference {
		return fmt.Sprintf("%s.%s", ns, strings.ReplaceAll(t.Name, "::", ".")), nil
	}
	name, err := csType(t)
	if err != nil {
		return "", err
	}
	if strings.HasSuffix(name, "*") {
		return systemTypes["IntPtr"], nil
	}
	if sys, ok := systemTypes[name]; ok {
		return sys, nil
	}
	return "", errors.Newf("type %s cannot be aliased", t)
}
