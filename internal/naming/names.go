// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming provides the identifier transformations shared by the
// backends: turning C++ declaration names into names that are legal and
// conventional in the target language.
package naming

import (
	"strings"
	"unicode"
)

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ExportName returns an exported identifier for the given C++ name.
// Names starting with "_" are prefixed with "X" (e.g., "_foo" -> "Xfoo").
// All other names get their first letter uppercased.
func ExportName(name string) string {
	if name == "" {
		return ""
	}
	if name[0] == '_' {
		return "X" + strings.TrimLeft(name, "_")
	}
	return Capitalize(name)
}

// SnakeToPascal converts a snake_case name to PascalCase
// ("get_radius" -> "GetRadius"). Fully uppercase names such as macro
// names are returned as-is.
func SnakeToPascal(name string) string {
	if IsAllUpper(name) {
		return name
	}
	var result strings.Builder
	for word := range strings.SplitSeq(name, "_") {
		result.WriteString(Capitalize(word))
	}
	if result.Len() == 0 {
		return ExportName(name)
	}
	return result.String()
}

// Mangle builds an identifier from a base name and template arguments
// ("Vec", "float", "4" -> "Vec_float_4"). Argument text is reduced to
// identifier characters: pointers and references become "Ptr" and "Ref",
// everything else that is not a letter or digit becomes a separator.
func Mangle(base string, args ...string) string {
	parts := []string{sanitize(base)}
	for _, a := range args {
		if s := sanitize(a); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "_")
}

var symbols = strings.NewReplacer("*", " Ptr ", "&", " Ref ")

func sanitize(s string) string {
	words := strings.FieldsFunc(symbols.Replace(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "_")
}

// IsAllUpper reports whether every letter in name is uppercase and name
// has at least one letter.
func IsAllUpper(name string) bool {
	letters := false
	for _, r := range name {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters = true
	}
	return letters
}

// Escape appends suffix to name when it collides with a reserved word.
func Escape(name string, reserved map[string]bool, suffix string) string {
	if reserved[name] {
		return name + suffix
	}
	return name
}
