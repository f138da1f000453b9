// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// document is the JSON a frontend writes: a list of translation units.
type document struct {
	Units []*node `json:"units"`
}

// node is the wire form of every declaration; the fields that matter
// depend on Kind.
type node struct {
	Kind      string       `json:"kind"`
	Name      string       `json:"name,omitempty"`
	Comment   *commentNode `json:"comment,omitempty"`
	Debug     string       `json:"debug,omitempty"`
	Generated bool         `json:"generated,omitempty"`

	// Contexts.
	File  string  `json:"file,omitempty"`
	Decls []*node `json:"decls,omitempty"`

	// Typed declarations.
	Type       *Type   `json:"type,omitempty"`
	ReturnType *Type   `json:"returnType,omitempty"`
	Params     []*node `json:"params,omitempty"`
	Default    string  `json:"default,omitempty"`
	Value      int64   `json:"value,omitempty"`
	Expression string  `json:"expression,omitempty"`
	Access     string  `json:"access,omitempty"`
	Bases      []*Type `json:"bases,omitempty"`
	Items      []*node `json:"items,omitempty"`
	Getter     string  `json:"getter,omitempty"`
	Setter     string  `json:"setter,omitempty"`
	Target     string  `json:"target,omitempty"`
	Position   int     `json:"position,omitempty"`
	Mangled    string  `json:"mangled,omitempty"`

	Flags []string `json:"flags,omitempty"`

	// Templates.
	TemplateParams  []*node            `json:"templateParams,omitempty"`
	Pattern         *node              `json:"pattern,omitempty"`
	Specializations []*node            `json:"specializations,omitempty"`
	Arguments       []TemplateArgument `json:"arguments,omitempty"`
}

type commentNode struct {
	Brief string      `json:"brief,omitempty"`
	Full  *DocComment `json:"full,omitempty"`
}

func (n *node) has(flag string) bool {
	for _, f := range n.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// DecodeUnits parses a JSON model into translation units.
func DecodeUnits(data []byte) ([]*TranslationUnit, error) {
	var f document
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode model")
	}
	units := make([]*TranslationUnit, 0, len(f.Units))
	for i, n := range f.Units {
		if n.Kind != KindTranslationUnit.String() {
			return nil, errors.Newf("unit %d: expected kind %q, got %q", i, KindTranslationUnit, n.Kind)
		}
		u := NewTranslationUnit(n.File)
		n.fill(&u.Declaration)
		if u.Name == "" {
			u.Name = u.FileNameWithoutExtension()
		}
		if err := decodeChildren(n.Decls, u.Add); err != nil {
			return nil, errors.Wrapf(err, "unit %q", u.FilePath)
		}
		units = append(units, u)
	}
	return units, nil
}

func decodeChildren(nodes []*node, add func(Decl)) error {
	for _, n := range nodes {
		if err := decodeInto(n, add); err != nil {
			return err
		}
	}
	return nil
}

// decodeInto decodes n and hands it to add before decoding anything that
// depends on the owner being set.
func decodeInto(n *node, add func(Decl)) error {
	kind, ok := ParseKind(n.Kind)
	if !ok {
		return errors.Newf("%q: unknown declaration kind %q", n.Name, n.Kind)
	}
	if err := n.validateTypes(); err != nil {
		return errors.Wrapf(err, "%s %q", kind, n.Name)
	}

	switch kind {
	case KindTranslationUnit:
		return errors.Newf("%q: translation units cannot be nested", n.Name)

	case KindNamespace:
		ns := &Namespace{IsInline: n.has("inline")}
		n.fill(&ns.Declaration)
		add(ns)
		return decodeChildren(n.Decls, ns.Add)

	case KindClass:
		c := n.class()
		add(c)
		return decodeChildren(n.Decls, c.Add)

	case KindClassTemplateSpecialization:
		spec := n.classSpecialization()
		add(spec)
		return decodeChildren(n.Decls, spec.Add)

	case KindClassTemplate:
		t := &ClassTemplate{}
		n.fill(&t.Declaration)
		if err := n.templateParams(&t.Template); err != nil {
			return err
		}
		if n.Pattern != nil {
			t.Pattern = n.Pattern.class()
		}
		add(t)
		for _, s := range n.Specializations {
			spec := s.classSpecialization()
			t.AddSpecialization(spec)
			if err := decodeChildren(s.Decls, spec.Add); err != nil {
				return err
			}
		}
		return nil

	case KindFunctionTemplate:
		t := &FunctionTemplate{}
		n.fill(&t.Declaration)
		if err := n.templateParams(&t.Template); err != nil {
			return err
		}
		if n.Pattern != nil {
			t.Pattern = n.Pattern.function()
		}
		add(t)
		for _, s := range n.Specializations {
			t.AddSpecialization(s.functionSpecialization())
		}
		return nil

	case KindVarTemplate:
		t := &VarTemplate{}
		n.fill(&t.Declaration)
		if err := n.templateParams(&t.Template); err != nil {
			return err
		}
		if n.Pattern != nil {
			t.Pattern = n.Pattern.variable()
		}
		add(t)
		for _, s := range n.Specializations {
			t.AddSpecialization(s.varSpecialization())
		}
		return nil

	case KindTypeAliasTemplate:
		t := &TypeAliasTemplate{}
		n.fill(&t.Declaration)
		if err := n.templateParams(&t.Template); err != nil {
			return err
		}
		if n.Pattern != nil {
			t.Pattern = n.Pattern.typeAlias()
			t.Pattern.Template = t
		}
		add(t)
		return nil

	case KindTemplateTemplateParameter:
		p := &TemplateTemplateParameter{IsParameterPack: n.has("pack")}
		n.fill(&p.Declaration)
		if err := n.templateParams(&p.Template); err != nil {
			return err
		}
		add(p)
		return nil

	case KindEnum:
		e := &Enumeration{Type: n.Type, IsFlags: n.has("flags"), IsScoped: n.has("scoped")}
		n.fill(&e.Declaration)
		for _, in := range n.Items {
			item := &EnumItem{Value: in.Value, Expression: in.Expression}
			in.fill(&item.Declaration)
			e.AddItem(item)
		}
		add(e)
		return nil
	}

	d, err := n.leaf(kind)
	if err != nil {
		return err
	}
	add(d)
	return nil
}

// leaf decodes variants that own no children.
func (n *node) leaf(kind Kind) (Decl, error) {
	switch kind {
	case KindField:
		f := &Field{Type: n.Type, Access: n.access()}
		n.fill(&f.Declaration)
		return f, nil
	case KindFunction:
		return n.function(), nil
	case KindMethod:
		m := &Method{
			Function:      *n.function(),
			Access:        n.access(),
			IsStatic:      n.has("static"),
			IsVirtual:     n.has("virtual"),
			IsConst:       n.has("const"),
			IsConstructor: n.has("constructor"),
			IsDestructor:  n.has("destructor"),
		}
		return m, nil
	case KindParameter:
		return n.parameter(), nil
	case KindTypedef:
		t := &TypedefDecl{}
		t.Type = n.Type
		n.fill(&t.Declaration)
		return t, nil
	case KindTypeAlias:
		return n.typeAlias(), nil
	case KindEnumItem:
		item := &EnumItem{Value: n.Value, Expression: n.Expression}
		n.fill(&item.Declaration)
		return item, nil
	case KindVariable:
		return n.variable(), nil
	case KindMacroDefinition:
		m := &MacroDefinition{Expression: n.Expression}
		n.fill(&m.Declaration)
		return m, nil
	case KindEvent:
		e := &Event{Parameters: n.parameters()}
		n.fill(&e.Declaration)
		return e, nil
	case KindProperty:
		p := &Property{Type: n.Type, Getter: n.Getter, Setter: n.Setter}
		n.fill(&p.Declaration)
		return p, nil
	case KindFriend:
		f := &Friend{Target: n.Target}
		n.fill(&f.Declaration)
		return f, nil
	case KindFunctionTemplateSpecialization:
		return n.functionSpecialization(), nil
	case KindVarTemplateSpecialization:
		return n.varSpecialization(), nil
	case KindTypeTemplateParameter:
		p := &TypeTemplateParameter{Default: n.Type, IsParameterPack: n.has("pack")}
		n.fill(&p.Declaration)
		return p, nil
	case KindNonTypeTemplateParameter:
		p := &NonTypeTemplateParameter{
			Type:            n.Type,
			Default:         n.Default,
			Position:        n.Position,
			IsParameterPack: n.has("pack"),
		}
		n.fill(&p.Declaration)
		return p, nil
	}
	return nil, errors.Newf("%q: %s cannot appear here", n.Name, kind)
}

func (n *node) fill(d *Declaration) {
	d.Name = n.Name
	d.DebugText = n.Debug
	d.IsGenerated = n.Generated
	if n.Comment != nil {
		d.Comment = &RawComment{BriefText: n.Comment.Brief}
		if n.Comment.Full != nil {
			d.Comment.FullComment = n.Comment.Full
		}
	}
}

func (n *node) access() AccessSpecifier {
	if n.Access == "" {
		return AccessPublic
	}
	return AccessSpecifier(n.Access)
}

func (n *node) class() *Class {
	c := &Class{
		Bases:      n.Bases,
		IsStruct:   n.has("struct"),
		IsUnion:    n.has("union"),
		IsAbstract: n.has("abstract"),
	}
	n.fill(&c.Declaration)
	return c
}

func (n *node) classSpecialization() *ClassTemplateSpecialization {
	spec := &ClassTemplateSpecialization{Class: *n.class(), Arguments: n.Arguments}
	return spec
}

func (n *node) function() *Function {
	f := &Function{
		ReturnType: n.ReturnType,
		Parameters: n.parameters(),
		IsVariadic: n.has("variadic"),
		IsInline:   n.has("inline"),
		Mangled:    n.Mangled,
	}
	n.fill(&f.Declaration)
	return f
}

func (n *node) functionSpecialization() *FunctionTemplateSpecialization {
	spec := &FunctionTemplateSpecialization{Arguments: n.Arguments}
	n.fill(&spec.Declaration)
	if n.Pattern != nil {
		spec.Function = n.Pattern.function()
	}
	return spec
}

func (n *node) variable() *Variable {
	v := &Variable{Type: n.Type, Initializer: n.Expression}
	n.fill(&v.Declaration)
	return v
}

func (n *node) varSpecialization() *VarTemplateSpecialization {
	return &VarTemplateSpecialization{Variable: *n.variable(), Arguments: n.Arguments}
}

func (n *node) typeAlias() *TypeAlias {
	a := &TypeAlias{}
	a.Type = n.Type
	n.fill(&a.Declaration)
	return a
}

func (n *node) parameter() *Parameter {
	p := &Parameter{Type: n.Type, DefaultValue: n.Default}
	n.fill(&p.Declaration)
	return p
}

func (n *node) parameters() []*Parameter {
	if len(n.Params) == 0 {
		return nil
	}
	params := make([]*Parameter, 0, len(n.Params))
	for _, p := range n.Params {
		params = append(params, p.parameter())
	}
	return params
}

func (n *node) templateParams(t *Template) error {
	for _, pn := range n.TemplateParams {
		if err := decodeInto(pn, func(d Decl) { t.Parameters = append(t.Parameters, d) }); err != nil {
			return err
		}
	}
	return nil
}

func (n *node) validateTypes() error {
	for _, t := range []*Type{n.Type, n.ReturnType} {
		if t == nil {
			continue
		}
		if err := t.validate(); err != nil {
			return err
		}
	}
	for _, p := range n.Params {
		if p.Type == nil {
			continue
		}
		if err := p.Type.validate(); err != nil {
			return errors.Wrapf(err, "parameter %q", p.Name)
		}
	}
	return nil
}
