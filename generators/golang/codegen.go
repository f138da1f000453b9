// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package golang generates Go declarations from the declaration model.
//
// The generated code uses idiomatic Go patterns:
//   - struct types for classes, with an interface holding the instance
//     methods ("CircleMethods")
//   - function variables for free functions, static methods and
//     constructors, to be bound to native symbols at run time
//   - defined types with typed constants for enumerations
//   - type aliases for typedefs
//   - one struct per class template specialization ("VecFloat4")
//   - untyped constants for macros with a literal value
//
// Namespaces are flattened: Go packages have no nested scopes. Every type
// name is reserved before generation starts, so two C++ types that
// flatten to the same Go name get numbered names ("Point", "Point2") and
// references bind to the right one.
package golang

import (
	"fmt"
	"go/format"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/block"
	"github.com/albertocavalcante/bindgen/generator"
	"github.com/albertocavalcante/bindgen/internal/naming"
)

// Generator emits Go for one artifact.
type Generator struct {
	*generator.CodeGenerator

	pkg string

	// decls maps each package-level Go identifier to the qualified C++
	// name it was declared for.
	decls *orderedMap[string]

	// types resolves qualified C++ type names to their Go names, and
	// names holds the Go name reserved for each declaration.
	types typeNames
	names map[*ast.Declaration]string

	// class is the Go name of the class whose members are being
	// generated; methods holds the names used in its interface.
	class   string
	methods *orderedMap[string]

	log *zap.Logger
}

// New creates a Go generator bound to units. The first unit is primary.
func New(ctx *generator.Context, units ...*ast.TranslationUnit) (*Generator, error) {
	base, err := generator.New(ctx, generator.Go, units)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		CodeGenerator: base,
		decls:         newOrderedMap[string](),
		types:         make(typeNames),
		names:         make(map[*ast.Declaration]string),
	}
	base.Bind(g)

	g.pkg = ctx.Options.OutputNamespace
	if g.pkg == "" {
		g.pkg = base.TranslationUnit().FileNameWithoutExtension()
	}
	g.pkg = packageName(g.pkg)
	g.log = ctx.Logger.With(zap.String("backend", "go"), zap.String("file", g.FilePath()))
	return g, nil
}

var nonIdent = regexp.MustCompile(`[^a-z0-9_]+`)

// packageName lowercases s and drops characters Go package names cannot
// hold.
func packageName(s string) string {
	s = nonIdent.ReplaceAllString(strings.ToLower(s), "")
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "bindings" + s
	}
	return localName(s)
}

// FileExtension returns "go".
func (g *Generator) FileExtension() string { return "go" }

// Process generates the preamble, the package clause and every bound unit.
func (g *Generator) Process() error {
	kind, err := g.PreambleKind(ast.CommentBCPL)
	if err != nil {
		return err
	}
	if err := g.GenerateFilePreamble(kind); err != nil {
		return err
	}
	g.NewLine()
	g.WriteLine("package %s", g.pkg)

	g.declareTypes()
	for _, u := range g.TranslationUnits {
		if err := u.Visit(g); err != nil {
			return errors.Wrapf(err, "generate %s", u.FilePath)
		}
	}
	g.log.Debug("processed", zap.Int("units", len(g.TranslationUnits)), zap.Strings("decls", g.decls.keys()))
	return nil
}

// Generate renders the buffer and formats it with go/format. Source that
// does not parse is returned unformatted so the problem can be inspected.
func (g *Generator) Generate() string {
	src := g.CodeGenerator.Generate()
	if g.SkipsFormatting() {
		return src
	}
	out, err := format.Source([]byte(src))
	if err != nil {
		g.log.Warn("generated source does not parse", zap.Error(err))
		return src
	}
	return string(out)
}

// declare reserves a package-level identifier for d.
func (g *Generator) declare(name string, d ast.Decl) string {
	return g.decls.declare(name, ast.QualifiedName(d))
}

// declareType reserves the Go name of a type once and records that
// references to key resolve to it. Later calls return the same name.
func (g *Generator) declareType(d ast.Decl, key, name string) string {
	if n, ok := g.names[d.Base()]; ok {
		return n
	}
	n := g.declare(name, d)
	g.names[d.Base()] = n
	g.types[key] = n
	return n
}

func (g *Generator) declareSpecialization(spec *ast.ClassTemplateSpecialization) string {
	return g.declareType(spec, specializationKey(spec), exportName(naming.Mangle(spec.Name, templateArgs(spec.Arguments)...)))
}

// declareTypes reserves the names of every type in the bound units, in
// source order, before any declaration is generated. Typedefs that
// restate a tag name resolve to the tag's Go name.
func (g *Generator) declareTypes() {
	var restated []ast.TypedefName
	var walk func(decls []ast.Decl)
	walk = func(decls []ast.Decl) {
		for _, d := range decls {
			if d.Base().IsGenerated {
				continue
			}
			switch d := d.(type) {
			case *ast.Class:
				g.declareType(d, ast.QualifiedName(d), typeName(d.Name))
				walk(d.Declarations())
			case *ast.ClassTemplateSpecialization:
				g.declareSpecialization(d)
				walk(d.Declarations())
			case *ast.ClassTemplate:
				for _, spec := range d.Specializations {
					if spec.IsGenerated {
						continue
					}
					g.declareSpecialization(spec)
					walk(spec.Declarations())
				}
			case *ast.Enumeration:
				if d.Name != "" {
					g.declareType(d, ast.QualifiedName(d), typeName(d.Name))
				}
			case ast.TypedefName:
				if restates(d.Typedef()) {
					restated = append(restated, d)
					continue
				}
				g.declareType(d, ast.QualifiedName(d), exportName(d.Typedef().Name))
			case ast.Context:
				walk(d.Declarations())
			}
		}
	}
	for _, u := range g.TranslationUnits {
		walk(u.Declarations())
	}
	for _, d := range restated {
		g.types[ast.QualifiedName(d)] = g.types.ref(d.Typedef().Type.Name)
	}
}

// topLevel runs fn in a region of the given kind, separated from the
// previous declaration by a blank line.
func (g *Generator) topLevel(kind block.Kind, fn func() error) error {
	return g.Region(kind, func() error {
		g.NewLine()
		return fn()
	})
}

// ── Classes ─────────────────────────────────────────────────────────

// VisitClassDecl generates a struct holding the fields, an interface
// holding the instance methods, and function variables for constructors
// and static methods. Nested declarations follow at package level.
func (g *Generator) VisitClassDecl(class *ast.Class) error {
	return g.generateClass(class, g.declareType(class, ast.QualifiedName(class), typeName(class.Name)))
}

// VisitClassTemplateSpecializationDecl generates the specialization as a
// struct named after the template and its arguments.
func (g *Generator) VisitClassTemplateSpecializationDecl(spec *ast.ClassTemplateSpecialization) error {
	return g.generateClass(&spec.Class, g.declareSpecialization(spec))
}

// VisitClassTemplateDecl generates each specialization; the template
// itself has no Go counterpart.
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

func (g *Generator) generateClass(class *ast.Class, name string) error {
	var fields, methods, funcs, nested []ast.Decl
	for _, d := range class.Declarations() {
		if d.Base().IsGenerated {
			continue
		}
		switch m := d.(type) {
		case *ast.Field:
			fields = append(fields, d)
		case *ast.Method:
			if m.IsStatic || m.IsConstructor {
				funcs = append(funcs, d)
			} else {
				methods = append(methods, d)
			}
		default:
			nested = append(nested, d)
		}
	}

	outer, outerMethods := g.class, g.methods
	g.class = name
	defer func() { g.class, g.methods = outer, outerMethods }()

	err := g.topLevel(block.Class, func() error {
		g.GenerateDeclarationCommon(class)
		if class.IsUnion {
			g.WriteLine("// %s is a union; only one field is valid at a time.", g.class)
		}
		g.WriteLine("type %s struct {", g.class)
		g.Indent()
		defer func() {
			g.Unindent()
			g.WriteLine("}")
		}()
		for _, b := range class.Bases {
			base, err := g.types.goType(b)
			if err != nil {
				return errors.Wrapf(err, "base of class %s", class.Name)
			}
			g.WriteLine("%s", base)
		}
		return g.VisitAll(fields)
	})
	if err != nil {
		return err
	}

	if len(methods) > 0 {
		iface := g.declare(g.class+"Methods", class)
		g.methods = newOrderedMap[string]()
		err := g.topLevel(block.Method, func() error {
			g.WriteLine("// %s is implemented by bindings of %s.", iface, g.class)
			g.WriteLine("type %s interface {", iface)
			g.Indent()
			defer func() {
				g.Unindent()
				g.WriteLine("}")
			}()
			return g.VisitAll(methods)
		})
		if err != nil {
			return err
		}
	}

	if err := g.VisitAll(funcs); err != nil {
		return err
	}
	return g.VisitAll(nested)
}

func (g *Generator) VisitFieldDecl(field *ast.Field) error {
	typ, err := g.types.goType(field.Type)
	if err != nil {
		return errors.Wrapf(err, "field %s", ast.QualifiedName(field))
	}
	if typ == "" {
		return errors.Newf("field %s has type void", ast.QualifiedName(field))
	}
	name := exportName(field.Name)
	if field.Access == ast.AccessPrivate || field.Access == ast.AccessProtected {
		name = localName(field.Name)
	}
	return g.Region(block.Field, func() error {
		g.GenerateDeclarationCommon(field)
		g.WriteLine("%s %s", name, typ)
		return nil
	})
}

// VisitMethodDecl writes an interface method for instance methods and a
// function variable for constructors and static methods. Overloads get
// numbered names, in the interface as at package level.
func (g *Generator) VisitMethodDecl(method *ast.Method) error {
	sig, err := g.types.signature(&method.Function)
	if err != nil {
		return errors.Wrapf(err, "method %s", ast.QualifiedName(method))
	}

	switch {
	case method.IsConstructor:
		sig, err = g.types.signatureReturning(&method.Function, "*"+g.class)
		if err != nil {
			return errors.Wrapf(err, "constructor %s", ast.QualifiedName(method))
		}
		name := g.declare("New"+g.class, method)
		return g.topLevel(block.Function, func() error {
			g.GenerateDeclarationCommon(method)
			g.WriteLine("var %s func%s", name, sig)
			return nil
		})
	case method.IsStatic:
		name := g.declare(g.class+exportName(method.Name), method)
		return g.topLevel(block.Function, func() error {
			g.GenerateDeclarationCommon(method)
			g.WriteLine("var %s func%s", name, sig)
			return nil
		})
	}

	name := exportName(method.Name)
	if method.IsDestructor {
		name = "Destroy"
	}
	if g.methods == nil {
		g.methods = newOrderedMap[string]()
	}
	name = g.methods.declare(name, ast.QualifiedName(method))
	return g.Region(block.Method, func() error {
		g.GenerateDeclarationCommon(method)
		g.WriteLine("%s%s", name, sig)
		return nil
	})
}

func (g *Generator) VisitFunctionDecl(function *ast.Function) error {
	sig, err := g.types.signature(function)
	if err != nil {
		return errors.Wrapf(err, "function %s", ast.QualifiedName(function))
	}
	name := g.declare(exportName(function.Name), function)
	return g.topLevel(block.Function, func() error {
		g.GenerateDeclarationCommon(function)
		g.WriteLine("var %s func%s", name, sig)
		return nil
	})
}

// ── Types and values ────────────────────────────────────────────────

// VisitTypedefNameDecl generates a type alias for typedefs and alias
// declarations. Typedefs that restate a tag name ("typedef struct Foo
// Foo") are dropped.
func (g *Generator) VisitTypedefNameDecl(decl ast.TypedefName) error {
	typedef := decl.Typedef()
	if restates(typedef) {
		return nil
	}
	target, err := g.types.goType(typedef.Type)
	if err != nil {
		return errors.Wrapf(err, "typedef %s", typedef.Name)
	}
	if target == "" {
		return errors.Newf("typedef %s names void", typedef.Name)
	}
	name := g.declareType(decl, ast.QualifiedName(decl), exportName(typedef.Name))
	return g.topLevel(block.Typedef, func() error {
		g.GenerateDeclarationCommon(decl)
		g.WriteLine("type %s = %s", name, target)
		return nil
	})
}

func (g *Generator) VisitEnumDecl(enum *ast.Enumeration) error {
	underlying := "int32"
	if enum.Type != nil {
		t, err := g.types.goType(enum.Type)
		if err != nil {
			return errors.Wrapf(err, "underlying type of enum %s", enum.Name)
		}
		underlying = t
	}

	name := underlying
	if enum.Name != "" {
		name = g.declareType(enum, ast.QualifiedName(enum), typeName(enum.Name))
	}

	return g.topLevel(block.Enum, func() error {
		if enum.Name != "" {
			g.GenerateDeclarationCommon(enum)
			g.WriteLine("type %s %s", name, underlying)
			g.NewLine()
		}

		outer := g.class
		g.class = name
		if enum.Name == "" {
			g.class = ""
		}
		defer func() { g.class = outer }()

		g.WriteLine("const (")
		g.Indent()
		defer func() {
			g.Unindent()
			g.WriteLine(")")
		}()
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
}

// VisitEnumItemDecl writes one constant. Items of named enumerations are
// prefixed with the enumeration's name and typed with it.
func (g *Generator) VisitEnumItemDecl(item *ast.EnumItem) error {
	value := strconv.FormatInt(item.Value, 10)
	if e := item.Enum(); e != nil && e.IsFlags && item.Value >= 0 {
		value = fmt.Sprintf("0x%X", item.Value)
	}
	g.GenerateInlineSummary(item.Comment)
	if g.class == "" {
		g.WriteLine("%s = %s", g.declare(exportName(item.Name), item), value)
		return nil
	}
	g.WriteLine("%s %s = %s", g.declare(g.class+exportName(item.Name), item), g.class, value)
	return nil
}

func (g *Generator) VisitVariableDecl(variable *ast.Variable) error {
	typ, err := g.types.goType(variable.Type)
	if err != nil {
		return errors.Wrapf(err, "variable %s", ast.QualifiedName(variable))
	}
	if typ == "" {
		return errors.Newf("variable %s has type void", ast.QualifiedName(variable))
	}
	name := g.declare(exportName(variable.Name), variable)
	lit := ast.ParseLiteral(variable.Initializer)

	return g.topLevel(block.Variable, func() error {
		g.GenerateDeclarationCommon(variable)
		switch {
		case lit.Kind == ast.LiteralNone:
			g.WriteLine("var %s %s", name, typ)
		case variable.Type.Const:
			g.WriteLine("const %s %s = %s", name, typ, lit.Text)
		default:
			g.WriteLine("var %s %s = %s", name, typ, lit.Text)
		}
		return nil
	})
}

// VisitMacroDefinition generates an untyped constant for macros whose
// expansion is a single literal. Other macros are skipped.
func (g *Generator) VisitMacroDefinition(macro *ast.MacroDefinition) error {
	lit := macro.Literal()
	if lit.Kind == ast.LiteralNone {
		g.log.Debug("skipping macro", zap.String("macro", macro.Name), zap.String("expression", macro.Expression))
		return nil
	}
	name := g.declare(exportName(macro.Name), macro)
	return g.topLevel(block.Macro, func() error {
		g.GenerateDeclarationCommon(macro)
		g.WriteLine("const %s = %s", name, lit.Text)
		return nil
	})
}

// VisitFriend generates nothing; Go visibility is per package.
func (g *Generator) VisitFriend(*ast.Friend) error { return nil }
