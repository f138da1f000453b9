// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

// Visitor has one handler per declaration variant. [Decl.Visit] routes a
// declaration to exactly one of them.
//
// VisitDeclContext and VisitTypedefNameDecl are not reached by dispatch
// directly; they are the shared handlers that context-like variants and
// typedef-like variants delegate to by default.
type Visitor interface {
	VisitDeclContext(ctx Context) error
	VisitTypedefNameDecl(typedef TypedefName) error

	VisitTranslationUnit(unit *TranslationUnit) error
	VisitNamespace(ns *Namespace) error
	VisitClassDecl(class *Class) error
	VisitFieldDecl(field *Field) error
	VisitFunctionDecl(function *Function) error
	VisitMethodDecl(method *Method) error
	VisitParameterDecl(param *Parameter) error
	VisitTypedefDecl(typedef *TypedefDecl) error
	VisitTypeAliasDecl(alias *TypeAlias) error
	VisitEnumDecl(enum *Enumeration) error
	VisitEnumItemDecl(item *EnumItem) error
	VisitVariableDecl(variable *Variable) error
	VisitMacroDefinition(macro *MacroDefinition) error
	VisitEvent(event *Event) error
	VisitProperty(property *Property) error
	VisitFriend(friend *Friend) error
	VisitClassTemplateDecl(template *ClassTemplate) error
	VisitClassTemplateSpecializationDecl(spec *ClassTemplateSpecialization) error
	VisitFunctionTemplateDecl(template *FunctionTemplate) error
	VisitFunctionTemplateSpecializationDecl(spec *FunctionTemplateSpecialization) error
	VisitVarTemplateDecl(template *VarTemplate) error
	VisitVarTemplateSpecializationDecl(spec *VarTemplateSpecialization) error
	VisitTemplateTemplateParameterDecl(param *TemplateTemplateParameter) error
	VisitTemplateParameterDecl(param *TypeTemplateParameter) error
	VisitNonTypeTemplateParameterDecl(param *NonTypeTemplateParameter) error
	VisitTypeAliasTemplateDecl(template *TypeAliasTemplate) error
}

func (d *TranslationUnit) Visit(v Visitor) error { return v.VisitTranslationUnit(d) }
func (d *Namespace) Visit(v Visitor) error       { return v.VisitNamespace(d) }
func (d *Class) Visit(v Visitor) error           { return v.VisitClassDecl(d) }
func (d *Field) Visit(v Visitor) error           { return v.VisitFieldDecl(d) }
func (d *Function) Visit(v Visitor) error        { return v.VisitFunctionDecl(d) }
func (d *Method) Visit(v Visitor) error          { return v.VisitMethodDecl(d) }
func (d *Parameter) Visit(v Visitor) error       { return v.VisitParameterDecl(d) }
func (d *TypedefDecl) Visit(v Visitor) error     { return v.VisitTypedefDecl(d) }
func (d *TypeAlias) Visit(v Visitor) error       { return v.VisitTypeAliasDecl(d) }
func (d *Enumeration) Visit(v Visitor) error     { return v.VisitEnumDecl(d) }
func (d *EnumItem) Visit(v Visitor) error        { return v.VisitEnumItemDecl(d) }
func (d *Variable) Visit(v Visitor) error        { return v.VisitVariableDecl(d) }
func (d *MacroDefinition) Visit(v Visitor) error { return v.VisitMacroDefinition(d) }
func (d *Event) Visit(v Visitor) error           { return v.VisitEvent(d) }
func (d *Property) Visit(v Visitor) error        { return v.VisitProperty(d) }
func (d *Friend) Visit(v Visitor) error          { return v.VisitFriend(d) }
func (d *ClassTemplate) Visit(v Visitor) error   { return v.VisitClassTemplateDecl(d) }

func (d *ClassTemplateSpecialization) Visit(v Visitor) error {
	return v.VisitClassTemplateSpecializationDecl(d)
}

func (d *FunctionTemplate) Visit(v Visitor) error { return v.VisitFunctionTemplateDecl(d) }

func (d *FunctionTemplateSpecialization) Visit(v Visitor) error {
	return v.VisitFunctionTemplateSpecializationDecl(d)
}

func (d *VarTemplate) Visit(v Visitor) error { return v.VisitVarTemplateDecl(d) }

func (d *VarTemplateSpecialization) Visit(v Visitor) error {
	return v.VisitVarTemplateSpecializationDecl(d)
}

func (d *TemplateTemplateParameter) Visit(v Visitor) error {
	return v.VisitTemplateTemplateParameterDecl(d)
}

func (d *TypeTemplateParameter) Visit(v Visitor) error { return v.VisitTemplateParameterDecl(d) }

func (d *NonTypeTemplateParameter) Visit(v Visitor) error {
	return v.VisitNonTypeTemplateParameterDecl(d)
}

func (d *TypeAliasTemplate) Visit(v Visitor) error { return v.VisitTypeAliasTemplateDecl(d) }
