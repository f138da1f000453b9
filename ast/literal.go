// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

import (
	"strconv"
	"strings"
)

// LiteralKind classifies the value of an object-like macro.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralBool
	LiteralInt
	LiteralFloat
	LiteralChar
	LiteralString
)

// Literal is a macro expression recognized as a single constant.
type Literal struct {
	Kind LiteralKind

	// Text is the literal with C suffixes removed ("10u" -> "10").
	Text string

	// Unsigned and Long record integer suffixes; Single records "f".
	Unsigned bool
	Long     bool
	Single   bool

	// Int holds the value of integer literals.
	Int int64
}

// Literal classifies the macro's expression. Expressions that are not a
// single literal, possibly parenthesized, yield LiteralNone.
func (m *MacroDefinition) Literal() Literal {
	return ParseLiteral(m.Expression)
}

// ParseLiteral classifies a C literal expression.
func ParseLiteral(expr string) Literal {
	s := strings.TrimSpace(expr)
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	switch {
	case s == "":
		return Literal{}
	case s == "true" || s == "false":
		return Literal{Kind: LiteralBool, Text: s}
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		if _, err := strconv.Unquote(s); err != nil {
			return Literal{}
		}
		return Literal{Kind: LiteralString, Text: s}
	case len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'':
		if _, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\''); err != nil || tail != "" {
			return Literal{}
		}
		return Literal{Kind: LiteralChar, Text: s}
	}

	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	if isHex(body) {
		return parseInt(neg, body)
	}
	if strings.ContainsAny(body, ".eE") {
		lit := Literal{Kind: LiteralFloat}
		if t, ok := strings.CutSuffix(strings.ToLower(body), "f"); ok {
			lit.Single = true
			body = t
		}
		if _, err := strconv.ParseFloat(body, 64); err != nil {
			return Literal{}
		}
		lit.Text = sign(neg) + body
		return lit
	}
	return parseInt(neg, body)
}

func parseInt(neg bool, body string) Literal {
	lit := Literal{Kind: LiteralInt}
	digits := strings.TrimRightFunc(body, func(r rune) bool {
		switch r {
		case 'u', 'U':
			lit.Unsigned = true
			return true
		case 'l', 'L':
			lit.Long = true
			return true
		}
		return false
	})
	v, err := strconv.ParseInt(sign(neg)+digits, 0, 64)
	if err != nil {
		return Literal{}
	}
	lit.Text = sign(neg) + digits
	lit.Int = v
	return lit
}

func isHex(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func sign(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}
