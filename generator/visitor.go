// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/bindgen/ast"

// ── Context-like defaults ───────────────────────────────────────────

// VisitDeclContext visits the children of ctx in order, skipping those
// already generated.
func (g *CodeGenerator) VisitDeclContext(ctx ast.Context) error {
	return g.VisitAll(ctx.Declarations())
}

func (g *CodeGenerator) VisitTranslationUnit(unit *ast.TranslationUnit) error {
	return g.visitor().VisitDeclContext(unit)
}

func (g *CodeGenerator) VisitNamespace(ns *ast.Namespace) error {
	return g.visitor().VisitDeclContext(ns)
}

func (g *CodeGenerator) VisitClassDecl(class *ast.Class) error {
	return g.visitor().VisitDeclContext(class)
}

// VisitClassTemplateSpecializationDecl generates a specialization exactly
// like an ordinary class.
func (g *CodeGenerator) VisitClassTemplateSpecializationDecl(spec *ast.ClassTemplateSpecialization) error {
	return g.visitor().VisitClassDecl(&spec.Class)
}

// ── Shared-name defaults ────────────────────────────────────────────

func (g *CodeGenerator) VisitTypedefDecl(typedef *ast.TypedefDecl) error {
	return g.visitor().VisitTypedefNameDecl(typedef)
}

func (g *CodeGenerator) VisitTypeAliasDecl(alias *ast.TypeAlias) error {
	return g.visitor().VisitTypedefNameDecl(alias)
}

// VisitTypedefNameDecl is the shared handler of typedefs and aliases.
// The coverage error names the concrete variant.
func (g *CodeGenerator) VisitTypedefNameDecl(typedef ast.TypedefName) error {
	return g.notImplemented("VisitTypedefNameDecl", typedef.Kind().String(), typedef.Base())
}

// ── Terminal kinds: no default ──────────────────────────────────────

func (g *CodeGenerator) VisitFieldDecl(field *ast.Field) error {
	return g.notImplemented("VisitFieldDecl", ast.KindField.String(), &field.Declaration)
}

func (g *CodeGenerator) VisitFunctionDecl(function *ast.Function) error {
	return g.notImplemented("VisitFunctionDecl", ast.KindFunction.String(), &function.Declaration)
}

func (g *CodeGenerator) VisitMethodDecl(method *ast.Method) error {
	return g.notImplemented("VisitMethodDecl", ast.KindMethod.String(), &method.Declaration)
}

func (g *CodeGenerator) VisitParameterDecl(param *ast.Parameter) error {
	return g.notImplemented("VisitParameterDecl", ast.KindParameter.String(), &param.Declaration)
}

func (g *CodeGenerator) VisitEnumDecl(enum *ast.Enumeration) error {
	return g.notImplemented("VisitEnumDecl", ast.KindEnum.String(), &enum.Declaration)
}

func (g *CodeGenerator) VisitEnumItemDecl(item *ast.EnumItem) error {
	return g.notImplemented("VisitEnumItemDecl", ast.KindEnumItem.String(), &item.Declaration)
}

func (g *CodeGenerator) VisitVariableDecl(variable *ast.Variable) error {
	return g.notImplemented("VisitVariableDecl", ast.KindVariable.String(), &variable.Declaration)
}

func (g *CodeGenerator) VisitMacroDefinition(macro *ast.MacroDefinition) error {
	return g.notImplemented("VisitMacroDefinition", ast.KindMacroDefinition.String(), &macro.Declaration)
}

func (g *CodeGenerator) VisitEvent(event *ast.Event) error {
	return g.notImplemented("VisitEvent", ast.KindEvent.String(), &event.Declaration)
}

func (g *CodeGenerator) VisitProperty(property *ast.Property) error {
	return g.notImplemented("VisitProperty", ast.KindProperty.String(), &property.Declaration)
}

func (g *CodeGenerator) VisitFriend(friend *ast.Friend) error {
	return g.notImplemented("VisitFriend", ast.KindFriend.String(), &friend.Declaration)
}

func (g *CodeGenerator) VisitClassTemplateDecl(template *ast.ClassTemplate) error {
	return g.notImplemented("VisitClassTemplateDecl", ast.KindClassTemplate.String(), &template.Declaration)
}

func (g *CodeGenerator) VisitFunctionTemplateDecl(template *ast.FunctionTemplate) error {
	return g.notImplemented("VisitFunctionTemplateDecl", ast.KindFunctionTemplate.String(), &template.Declaration)
}

func (g *CodeGenerator) VisitFunctionTemplateSpecializationDecl(spec *ast.FunctionTemplateSpecialization) error {
	return g.notImplemented("VisitFunctionTemplateSpecializationDecl",
		ast.KindFunctionTemplateSpecialization.String(), &spec.Declaration)
}

func (g *CodeGenerator) VisitVarTemplateDecl(template *ast.VarTemplate) error {
	return g.notImplemented("VisitVarTemplateDecl", ast.KindVarTemplate.String(), &template.Declaration)
}

func (g *CodeGenerator) VisitVarTemplateSpecializationDecl(spec *ast.VarTemplateSpecialization) error {
	return g.notImplemented("VisitVarTemplateSpecializationDecl",
		ast.KindVarTemplateSpecialization.String(), &spec.Declaration)
}

func (g *CodeGenerator) VisitTemplateTemplateParameterDecl(param *ast.TemplateTemplateParameter) error {
	return g.notImplemented("VisitTemplateTemplateParameterDecl",
		ast.KindTemplateTemplateParameter.String(), &param.Declaration)
}

func (g *CodeGenerator) VisitTemplateParameterDecl(param *ast.TypeTemplateParameter) error {
	return g.notImplemented("VisitTemplateParameterDecl", ast.KindTypeTemplateParameter.String(), &param.Declaration)
}

func (g *CodeGenerator) VisitNonTypeTemplateParameterDecl(param *ast.NonTypeTemplateParameter) error {
	return g.notImplemented("VisitNonTypeTemplateParameterDecl",
		ast.KindNonTypeTemplateParameter.String(), &param.Declaration)
}

func (g *CodeGenerator) VisitTypeAliasTemplateDecl(template *ast.TypeAliasTemplate) error {
	return g.notImplemented("VisitTypeAliasTemplateDecl", ast.KindTypeAliasTemplate.String(), &template.Declaration)
}
