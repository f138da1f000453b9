// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package csharp generates C# P/Invoke bindings from the declaration model.
//
// The generated code uses these conventions:
//   - partial classes for C++ classes, sequential structs for C++ structs
//     and explicit-layout structs for unions
//   - [DllImport] externs for functions and methods; instance methods take
//     the native object as their first argument
//   - free functions, variables and macros live in a static partial class
//     named after the primary translation unit
//   - typedefs become file-level using aliases
//   - template specializations get mangled names ("Vec_float_4")
package csharp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/block"
	"github.com/albertocavalcante/bindgen/generator"
	"github.com/albertocavalcante/bindgen/internal/naming"
)

// Generator emits C# for one artifact.
type Generator struct {
	*generator.CodeGenerator

	namespace   string
	library     string
	staticClass string

	// aliases are using directives collected during traversal; they are
	// moved into the usings region once the namespace is complete.
	aliases []string

	// union is set while the members of a union are generated.
	union bool

	// anonymous counts unnamed enums, which C# cannot express.
	anonymous int

	// entries counts the uses of each derived entry point.
	entries map[string]int

	log *zap.Logger
}

// New creates a C# generator bound to units. The first unit is primary.
func New(ctx *generator.Context, units ...*ast.TranslationUnit) (*Generator, error) {
	base, err := generator.New(ctx, generator.CSharp, units)
	if err != nil {
		return nil, err
	}
	g := &Generator{CodeGenerator: base, entries: make(map[string]int)}
	base.Bind(g)

	unit := naming.ExportName(base.TranslationUnit().FileNameWithoutExtension())
	g.namespace = ctx.Options.OutputNamespace
	if g.namespace == "" {
		g.namespace = unit
	}
	g.library = ctx.Options.LibraryName
	if g.library == "" {
		g.library = base.TranslationUnit().FileNameWithoutExtension()
	}
	g.staticClass = ctx.Options.Option("static_class", unit+"Native")
	g.log = ctx.Logger.With(zap.String("backend", "csharp"), zap.String("file", g.FilePath()))
	return g, nil
}

// FileExtension returns "cs".
func (g *Generator) FileExtension() string { return "cs" }

// Process generates the whole file: preamble, usings, and one namespace
// holding every bound unit.
func (g *Generator) Process() error {
	kind, err := g.PreambleKind(ast.CommentBCPLSlash)
	if err != nil {
		return err
	}
	if err := g.GenerateFilePreamble(kind); err != nil {
		return err
	}
	g.NewLine()

	usings := g.PushBlock(block.Usings)
	g.WriteLine("using System;")
	g.WriteLine("using System.Runtime.InteropServices;")
	g.PopBlock()
	g.NewLine()

	err = g.Region(block.Namespace, func() error {
		g.WriteLine("namespace %s", g.namespace)
		return g.body(func() error {
			for _, u := range g.TranslationUnits {
				if err := u.Visit(g); err != nil {
					return errors.Wrapf(err, "generate %s", u.FilePath)
				}
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	if len(g.aliases) > 0 {
		aliases := g.PushBlock(block.Typedef)
		for _, a := range g.aliases {
			g.WriteLine("%s", a)
		}
		g.PopBlock()
		usings.Adopt(aliases)
	}
	g.log.Debug("processed", zap.Int("units", len(g.TranslationUnits)), zap.Int("aliases", len(g.aliases)))
	return nil
}

// body writes a braced, indented block around fn. The closing brace is
// written even when fn fails.
func (g *Generator) body(fn func() error) error {
	g.WriteLine("{")
	g.Indent()
	defer func() {
		g.Unindent()
		g.WriteLine("}")
	}()
	return fn()
}

// ── Contexts ────────────────────────────────────────────────────────

// VisitDeclContext generates the children of ctx. At namespace scope, C#
// has no free functions, so functions, variables and macros are gathered
// into the static class.
func (g *Generator) VisitDeclContext(ctx ast.Context) error {
	if k := ctx.Kind(); k != ast.KindTranslationUnit && k != ast.KindNamespace {
		return g.CodeGenerator.VisitDeclContext(ctx)
	}

	var types, free []ast.Decl
	for _, d := range ctx.Declarations() {
		if d.Base().IsGenerated {
			continue
		}
		switch d.Kind() {
		case ast.KindFunction, ast.KindVariable, ast.KindMacroDefinition,
			ast.KindFunctionTemplate, ast.KindFunctionTemplateSpecialization:
			free = append(free, d)
		default:
			types = append(types, d)
		}
	}
	if err := g.VisitAll(types); err != nil {
		return err
	}
	if len(free) == 0 {
		return nil
	}
	return g.Region(block.Class, func() error {
		g.WriteLine("public static unsafe partial class %s", g.staticClass)
		return g.body(func() error { return g.VisitAll(free) })
	})
}

func (g *Generator) VisitNamespace(ns *ast.Namespace) error {
	if ns.IsInline || ns.Name == "" {
		return g.VisitDeclContext(ns)
	}
	return g.Region(block.Namespace, func() error {
		g.GenerateDeclarationCommon(ns)
		g.WriteLine("namespace %s", identifier(ns.Name))
		return g.body(func() error { return g.VisitDeclContext(ns) })
	})
}

func (g *Generator) VisitClassDecl(class *ast.Class) error {
	return g.generateClass(class, class.Name)
}

// VisitClassTemplateSpecializationDecl generates the specialization as a
// class named after the template and its arguments.
func (g *Generator) VisitClassTemplateSpecializationDecl(spec *ast.ClassTemplateSpecialization) error {
	return g.generateClass(&spec.Class, naming.Mangle(spec.Name, templateArgs(spec.Arguments)...))
}

func (g *Generator) generateClass(class *ast.Class, name string) error {
	keyword := "class"
	modifiers := "public unsafe partial"
	var layout string
	switch {
	case class.IsUnion:
		keyword = "struct"
		layout = "[StructLayout(LayoutKind.Explicit)]"
	case class.IsStruct:
		keyword = "struct"
		layout = "[StructLayout(LayoutKind.Sequential)]"
	case class.IsAbstract:
		modifiers = "public abstract unsafe partial"
	}

	var bases []string
	if keyword == "class" {
		for _, b := range class.Bases {
			t, err := csType(b)
			if err != nil {
				return errors.Wrapf(err, "base of class %s", class.Name)
			}
			bases = append(bases, t)
		}
	}

	return g.Region(block.Class, func() error {
		g.GenerateDeclarationCommon(class)
		if layout != "" {
			g.WriteLine("%s", layout)
		}
		header := fmt.Sprintf("%s %s %s", modifiers, keyword, identifier(name))
		if len(bases) > 0 {
			header += " : " + strings.Join(bases, ", ")
		}
		g.WriteLine("%s", header)

		outer := g.union
		g.union = class.IsUnion
		defer func() { g.union = outer }()
		return g.body(func() error { return g.VisitDeclContext(class) })
	})
}

// ── Members ─────────────────────────────────────────────────────────

func (g *Generator) VisitFieldDecl(field *ast.Field) error {
	typ, err := csType(field.Type)
	if err != nil {
		return errors.Wrapf(err, "field %s", ast.QualifiedName(field))
	}
	return g.Region(block.Field, func() error {
		g.GenerateDeclarationCommon(field)
		if g.union {
			g.WriteLine("[FieldOffset(0)]")
		}
		g.WriteLine("%s %s %s;", access(field.Access), typ, identifier(field.Name))
		return nil
	})
}

func (g *Generator) VisitFunctionDecl(function *ast.Function) error {
	return g.generateExtern(function, function, externSig{
		name:  identifier(function.Name),
		entry: g.entryPoint(function.Mangled, naming.Mangle(ast.QualifiedName(function))),
	})
}

func (g *Generator) VisitMethodDecl(method *ast.Method) error {
	sig := externSig{
		access:   access(method.Access),
		name:     identifier(method.Name),
		instance: !method.IsStatic,
		kind:     block.Method,
	}
	derived := naming.Mangle(ast.QualifiedName(method))
	switch {
	case method.IsConstructor:
		sig.name = "Ctor"
		derived = naming.Mangle(ast.QualifiedName(method), "ctor")
		sig.void = true
	case method.IsDestructor:
		sig.name = "Dtor"
		derived = naming.Mangle(ast.QualifiedName(method.Owner()), "dtor")
		sig.void = true
	}
	sig.entry = g.entryPoint(method.Mangled, derived)
	return g.generateExtern(method, &method.Function, sig)
}

// entryPoint returns the native symbol an extern binds to: the mangled
// name when the model has one, otherwise derived. Overloads share a
// derived name, so its second use becomes "<derived>_2" and so on.
func (g *Generator) entryPoint(mangled, derived string) string {
	if mangled != "" {
		return mangled
	}
	g.entries[derived]++
	n := g.entries[derived]
	if n == 1 {
		return derived
	}
	g.log.Warn("overload without mangled name", zap.String("entry", derived), zap.Int("overload", n))
	return fmt.Sprintf("%s_%d", derived, n)
}

// externSig describes how a native function is exposed.
type externSig struct {
	access string
	name   string
	entry  string

	// instance adds the native object as first argument.
	instance bool

	// void forces a void return, for constructors and destructors.
	void bool

	kind block.Kind
}

func (g *Generator) generateExtern(decl ast.Decl, fn *ast.Function, sig externSig) error {
	ret := "void"
	if !sig.void {
		var err error
		if ret, err = csType(fn.ReturnType); err != nil {
			return errors.Wrapf(err, "return type of %s", ast.QualifiedName(decl))
		}
	}
	params, err := parameters(fn, sig.instance)
	if err != nil {
		return errors.Wrapf(err, "parameters of %s", ast.QualifiedName(decl))
	}
	if sig.access == "" {
		sig.access = "public"
	}
	if sig.kind == block.Unknown {
		sig.kind = block.Function
	}

	return g.Region(sig.kind, func() error {
		g.GenerateDeclarationCommon(decl)
		g.WriteLine(`[DllImport("%s", CallingConvention = CallingConvention.Cdecl, EntryPoint = "%s")]`,
			g.library, sig.entry)
		g.WriteLine("%s static extern %s %s(%s);", sig.access, ret, sig.name, params)
		return nil
	})
}

func parameters(fn *ast.Function, instance bool) (string, error) {
	var params []string
	if instance {
		params = append(params, "IntPtr __instance")
	}
	for i, p := range fn.Parameters {
		typ, err := csType(p.Type)
		if err != nil {
			return "", errors.Wrapf(err, "parameter %d", i)
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		param := typ + " " + identifier(name)
		if p.DefaultValue != "" {
			param += " = " + p.DefaultValue
		}
		params = append(params, param)
	}
	if fn.IsVariadic {
		params = append(params, "__arglist")
	}
	return strings.Join(params, ", "), nil
}

func access(a ast.AccessSpecifier) string {
	switch a {
	case ast.AccessProtected:
		return "protected"
	case ast.AccessPrivate:
		return "private"
	}
	return "public"
}

// VisitTypedefNameDecl records a using alias. Typedefs that only restate
// a tag name ("typedef struct Foo Foo") are dropped.
func (g *Generator) VisitTypedefNameDecl(decl ast.TypedefName) error {
	typedef := decl.Typedef()
	if t := typedef.Type; t != nil && t.Kind == ast.TypeReference {
		parts := strings.Split(t.Name, "::")
		if parts[len(parts)-1] == typedef.Name {
			return nil
		}
	}
	target, err := aliasTarget(typedef.Type, g.namespace)
	if err != nil {
		return errors.Wrapf(err, "typedef %s", typedef.Name)
	}
	g.aliases = append(g.aliases, fmt.Sprintf("using %s = %s;", identifier(typedef.Name), target))
	return nil
}

func (g *Generator) VisitEnumDecl(enum *ast.Enumeration) error {
	var underlying string
	if enum.Type != nil {
		t, err := csType(enum.Type)
		if err != nil {
			return errors.Wrapf(err, "underlying type of enum %s", enum.Name)
		}
		underlying = " : " + t
	}
	name := enum.Name
	if name == "" {
		g.anonymous++
		name = naming.Mangle(g.staticClass, "Enum", strconv.Itoa(g.anonymous))
	}

	return g.Region(block.Enum, func() error {
		g.GenerateDeclarationCommon(enum)
		if enum.IsFlags {
			g.WriteLine("[Flags]")
		}
		g.WriteLine("public enum %s%s", identifier(name), underlying)
		return g.body(func() error {
			for _, item := range enum.Items {
				if item.IsGenerated {
					continue
				}
				if err := item.Visit(g); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (g *Generator) VisitEnumItemDecl(item *ast.EnumItem) error {
	g.GenerateInlineSummary(item.Comment)
	value := strconv.FormatInt(item.Value, 10)
	if e := item.Enum(); e != nil && e.IsFlags && item.Value >= 0 {
		value = fmt.Sprintf("0x%X", item.Value)
	}
	g.WriteLine("%s = %s,", identifier(item.Name), value)
	return nil
}

func (g *Generator) VisitVariableDecl(variable *ast.Variable) error {
	typ, err := csType(variable.Type)
	if err != nil {
		return errors.Wrapf(err, "variable %s", ast.QualifiedName(variable))
	}
	name := identifier(variable.Name)
	return g.Region(block.Variable, func() error {
		g.GenerateDeclarationCommon(variable)
		switch {
		case variable.Initializer == "":
			g.WriteLine("public static %s %s;", typ, name)
		case variable.Type != nil && variable.Type.Const:
			g.WriteLine("public const %s %s = %s;", typ, name, variable.Initializer)
		default:
			g.WriteLine("public static %s %s = %s;", typ, name, variable.Initializer)
		}
		return nil
	})
}

// VisitMacroDefinition generates a constant for macros whose expansion is
// a single literal. Other macros have no C# equivalent and are skipped.
func (g *Generator) VisitMacroDefinition(macro *ast.MacroDefinition) error {
	lit := macro.Literal()
	typ, value := literalConst(lit)
	if typ == "" {
		g.log.Debug("skipping macro", zap.String("macro", macro.Name), zap.String("expression", macro.Expression))
		return nil
	}
	return g.Region(block.Macro, func() error {
		g.GenerateDeclarationCommon(macro)
		g.WriteLine("public const %s %s = %s;", typ, identifier(macro.Name), value)
		return nil
	})
}

func literalConst(lit ast.Literal) (typ, value string) {
	switch lit.Kind {
	case ast.LiteralBool:
		return "bool", lit.Text
	case ast.LiteralString:
		return "string", lit.Text
	case ast.LiteralChar:
		return "char", lit.Text
	case ast.LiteralFloat:
		if lit.Single {
			return "float", lit.Text + "f"
		}
		return "double", lit.Text
	case ast.LiteralInt:
		value = strconv.FormatInt(lit.Int, 10)
		if strings.HasPrefix(strings.ToLower(lit.Text), "0x") {
			value = lit.Text
		}
		switch {
		case lit.Unsigned && (lit.Long || lit.Int > 1<<32-1):
			return "ulong", value
		case lit.Unsigned:
			return "uint", value
		case lit.Long || lit.Int > 1<<31-1 || lit.Int < -1<<31:
			return "long", value
		}
		return "int", value
	}
	return "", ""
}

func (g *Generator) VisitEvent(event *ast.Event) error {
	handler := "Action"
	if len(event.Parameters) > 0 {
		types := make([]string, len(event.Parameters))
		for i, p := range event.Parameters {
			t, err := csType(p.Type)
			if err != nil {
				return errors.Wrapf(err, "event %s", event.Name)
			}
			types[i] = t
		}
		handler = fmt.Sprintf("Action<%s>", strings.Join(types, ", "))
	}
	return g.Region(block.Event, func() error {
		g.GenerateDeclarationCommon(event)
		g.WriteLine("public event %s %s;", handler, identifier(event.Name))
		return nil
	})
}

func (g *Generator) VisitProperty(property *ast.Property) error {
	typ, err := csType(property.Type)
	if err != nil {
		return errors.Wrapf(err, "property %s", property.Name)
	}
	accessors := "get;"
	if property.Setter != "" {
		accessors = "get; set;"
		if property.Getter == "" {
			accessors = "set;"
		}
	}
	return g.Region(block.Property, func() error {
		g.GenerateDeclarationCommon(property)
		g.WriteLine("public %s %s { %s }", typ, identifier(property.Name), accessors)
		return nil
	})
}

// VisitFriend generates nothing; C# has no friend access.
func (g *Generator) VisitFriend(*ast.Friend) error { return nil }

// ── Templates ───────────────────────────────────────────────────────

// VisitClassTemplateDecl generates each specialization; the template
// itself has no C# counterpart.
func (g *Generator) VisitClassTemplateDecl(template *ast.ClassTemplate) error {
	for _, spec := range template.Specializations {
		if spec.IsGenerated {
			continue
		}
		if err := spec.Visit(g); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) VisitFunctionTemplateDecl(template *ast.FunctionTemplate) error {
	for _, spec := range template.Specializations {
		if spec.IsGenerated {
			continue
		}
		if err := spec.Visit(g); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) VisitFunctionTemplateSpecializationDecl(spec *ast.FunctionTemplateSpecialization) error {
	fn := spec.Function
	if fn == nil && spec.Template != nil {
		fn = spec.Template.Pattern
	}
	if fn == nil {
		return errors.Newf("function template specialization %s has no signature", ast.QualifiedName(spec))
	}
	var mangled string
	if spec.Function != nil {
		mangled = spec.Function.Mangled
	}
	name := naming.Mangle(spec.Name, templateArgs(spec.Arguments)...)
	return g.generateExtern(spec, fn, externSig{
		name:  identifier(name),
		entry: g.entryPoint(mangled, naming.Mangle(ast.QualifiedName(spec), templateArgs(spec.Arguments)...)),
	})
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
