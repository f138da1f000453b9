// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		expr string
		want Literal
	}{
		{expr: "3", want: Literal{Kind: LiteralInt, Text: "3", Int: 3}},
		{expr: "(3)", want: Literal{Kind: LiteralInt, Text: "3", Int: 3}},
		{expr: "-42", want: Literal{Kind: LiteralInt, Text: "-42", Int: -42}},
		{expr: "0x1F", want: Literal{Kind: LiteralInt, Text: "0x1F", Int: 31}},
		{expr: "10u", want: Literal{Kind: LiteralInt, Text: "10", Int: 10, Unsigned: true}},
		{expr: "10ULL", want: Literal{Kind: LiteralInt, Text: "10", Int: 10, Unsigned: true, Long: true}},
		{expr: "010", want: Literal{Kind: LiteralInt, Text: "010", Int: 8}},
		{expr: "3.14", want: Literal{Kind: LiteralFloat, Text: "3.14"}},
		{expr: "1.5f", want: Literal{Kind: LiteralFloat, Text: "1.5", Single: true}},
		{expr: "1e-3", want: Literal{Kind: LiteralFloat, Text: "1e-3"}},
		{expr: `"geo"`, want: Literal{Kind: LiteralString, Text: `"geo"`}},
		{expr: `'x'`, want: Literal{Kind: LiteralChar, Text: `'x'`}},
		{expr: `'\n'`, want: Literal{Kind: LiteralChar, Text: `'\n'`}},
		{expr: "true", want: Literal{Kind: LiteralBool, Text: "true"}},
		{expr: "", want: Literal{}},
		{expr: "A | B", want: Literal{}},
		{expr: "FOO", want: Literal{}},
		{expr: "'ab'", want: Literal{}},
		{expr: "1.5L", want: Literal{}},
		{expr: "()", want: Literal{}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got := ParseLiteral(tt.expr)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLiteral(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestMacroDefinition_Literal(t *testing.T) {
	m := &MacroDefinition{Expression: " 7 "}
	if got := m.Literal(); got.Kind != LiteralInt || got.Int != 7 {
		t.Errorf("Literal() = %+v", got)
	}
}
