// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

import "fmt"

// Kind identifies the variant of a declaration.
type Kind int

const (
	KindTranslationUnit Kind = iota
	KindNamespace
	KindClass
	KindField
	KindFunction
	KindMethod
	KindParameter
	KindTypedef
	KindTypeAlias
	KindEnum
	KindEnumItem
	KindVariable
	KindMacroDefinition
	KindEvent
	KindProperty
	KindFriend
	KindClassTemplate
	KindClassTemplateSpecialization
	KindFunctionTemplate
	KindFunctionTemplateSpecialization
	KindVarTemplate
	KindVarTemplateSpecialization
	KindTemplateTemplateParameter
	KindTypeTemplateParameter
	KindNonTypeTemplateParameter
	KindTypeAliasTemplate

	numKinds
)

// kindNames doubles as the JSON discriminator for each variant.
var kindNames = [numKinds]string{
	KindTranslationUnit:                "translationUnit",
	KindNamespace:                      "namespace",
	KindClass:                          "class",
	KindField:                          "field",
	KindFunction:                       "function",
	KindMethod:                         "method",
	KindParameter:                      "parameter",
	KindTypedef:                        "typedef",
	KindTypeAlias:                      "typeAlias",
	KindEnum:                           "enum",
	KindEnumItem:                       "enumItem",
	KindVariable:                       "variable",
	KindMacroDefinition:                "macro",
	KindEvent:                          "event",
	KindProperty:                       "property",
	KindFriend:                         "friend",
	KindClassTemplate:                  "classTemplate",
	KindClassTemplateSpecialization:    "classTemplateSpecialization",
	KindFunctionTemplate:               "functionTemplate",
	KindFunctionTemplateSpecialization: "functionTemplateSpecialization",
	KindVarTemplate:                    "varTemplate",
	KindVarTemplateSpecialization:      "varTemplateSpecialization",
	KindTemplateTemplateParameter:      "templateTemplateParameter",
	KindTypeTemplateParameter:          "typeTemplateParameter",
	KindNonTypeTemplateParameter:       "nonTypeTemplateParameter",
	KindTypeAliasTemplate:              "typeAliasTemplate",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsContext reports whether declarations of this kind own child
// declarations that default traversal descends into.
func (k Kind) IsContext() bool {
	switch k {
	case KindTranslationUnit, KindNamespace, KindClass, KindClassTemplateSpecialization:
		return true
	}
	return false
}

// Kinds returns every declaration kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := range numKinds {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind whose name is s.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}
