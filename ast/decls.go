// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ast

// AccessSpecifier is the visibility of a class member.
type AccessSpecifier string

const (
	AccessPublic    AccessSpecifier = "public"
	AccessProtected AccessSpecifier = "protected"
	AccessPrivate   AccessSpecifier = "private"
)

// Class is a class, struct or union. Members are its child declarations.
type Class struct {
	DeclarationContext

	Bases      []*Type
	IsStruct   bool
	IsUnion    bool
	IsAbstract bool
}

// Add appends a member declaration.
func (c *Class) Add(d Decl) { c.add(c, d) }

// Field is a data member of a class.
type Field struct {
	Declaration

	Type   *Type
	Access AccessSpecifier
}

// Function is a free function.
type Function struct {
	Declaration

	ReturnType *Type
	Parameters []*Parameter
	IsVariadic bool
	IsInline   bool

	// Mangled is the linker symbol of the function, when the model
	// carries one.
	Mangled string
}

// Method is a member function.
type Method struct {
	Function

	Access        AccessSpecifier
	IsStatic      bool
	IsVirtual     bool
	IsConst       bool
	IsConstructor bool
	IsDestructor  bool
}

// Parameter is a function, method or event parameter.
type Parameter struct {
	Declaration

	Type         *Type
	DefaultValue string
}

// TypedefNameDecl is the shared base of [TypedefDecl] and [TypeAlias]:
// a name bound to an underlying type.
type TypedefNameDecl struct {
	Declaration

	Type *Type
}

// Typedef returns t. It lets handlers reach the shared fields through a
// [TypedefName].
func (t *TypedefNameDecl) Typedef() *TypedefNameDecl { return t }

// TypedefName is a typedef-like declaration: [TypedefDecl] or [TypeAlias].
type TypedefName interface {
	Decl
	Typedef() *TypedefNameDecl
}

// TypedefDecl is a C-style typedef.
type TypedefDecl struct {
	TypedefNameDecl
}

// TypeAlias is a C++ alias declaration ("using X = Y").
type TypeAlias struct {
	TypedefNameDecl

	// Template is set when the alias is the pattern of an alias template.
	Template *TypeAliasTemplate
}

// Enumeration is an enum type.
type Enumeration struct {
	Declaration

	// Type is the underlying integer type, nil for the default.
	Type     *Type
	Items    []*EnumItem
	IsFlags  bool
	IsScoped bool
}

// AddItem appends an enumerator.
func (e *Enumeration) AddItem(item *EnumItem) {
	item.enum = e
	e.Items = append(e.Items, item)
}

// EnumItem is a single enumerator.
type EnumItem struct {
	Declaration

	Value      int64
	Expression string

	enum *Enumeration
}

// Enum returns the enumeration the item belongs to.
func (i *EnumItem) Enum() *Enumeration { return i.enum }

// Variable is a global or static variable.
type Variable struct {
	Declaration

	Type        *Type
	Initializer string
}

// MacroDefinition is a preprocessor object-like macro.
type MacroDefinition struct {
	Declaration

	Expression string
}

// Event is a callback registration point.
type Event struct {
	Declaration

	Parameters []*Parameter
}

// Property is a getter/setter pair exposed as one member.
type Property struct {
	Declaration

	Type   *Type
	Getter string
	Setter string
}

// Friend is a friend declaration inside a class.
type Friend struct {
	Declaration

	Target string
}

// TemplateArgument is a single argument of a template specialization.
// Exactly one of Type and Value is set.
type TemplateArgument struct {
	Type  *Type  `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
}

// Template holds what all template declarations share.
type Template struct {
	Declaration

	// Parameters are template parameter declarations.
	Parameters []Decl
}

// ClassTemplate is a class template.
type ClassTemplate struct {
	Template

	Pattern         *Class
	Specializations []*ClassTemplateSpecialization
}

// AddSpecialization records spec as an instantiation of t.
func (t *ClassTemplate) AddSpecialization(spec *ClassTemplateSpecialization) {
	spec.TemplatedDecl = t
	spec.owner = t.owner
	t.Specializations = append(t.Specializations, spec)
}

// ClassTemplateSpecialization is a concrete instantiation of a class
// template. It is a class in its own right.
type ClassTemplateSpecialization struct {
	Class

	TemplatedDecl *ClassTemplate
	Arguments     []TemplateArgument
}

// Add appends a member declaration.
func (s *ClassTemplateSpecialization) Add(d Decl) { s.add(s, d) }

// FunctionTemplate is a function template.
type FunctionTemplate struct {
	Template

	Pattern         *Function
	Specializations []*FunctionTemplateSpecialization
}

// AddSpecialization records spec as an instantiation of t.
func (t *FunctionTemplate) AddSpecialization(spec *FunctionTemplateSpecialization) {
	spec.Template = t
	spec.owner = t.owner
	t.Specializations = append(t.Specializations, spec)
}

// FunctionTemplateSpecialization is a concrete instantiation of a function
// template.
type FunctionTemplateSpecialization struct {
	Declaration

	Template  *FunctionTemplate
	Function  *Function
	Arguments []TemplateArgument
}

// VarTemplate is a variable template.
type VarTemplate struct {
	Template

	Pattern         *Variable
	Specializations []*VarTemplateSpecialization
}

// AddSpecialization records spec as an instantiation of t.
func (t *VarTemplate) AddSpecialization(spec *VarTemplateSpecialization) {
	spec.TemplatedDecl = t
	spec.owner = t.owner
	t.Specializations = append(t.Specializations, spec)
}

// VarTemplateSpecialization is a concrete instantiation of a variable
// template.
type VarTemplateSpecialization struct {
	Variable

	TemplatedDecl *VarTemplate
	Arguments     []TemplateArgument
}

// TemplateTemplateParameter is a template parameter that is itself a
// template.
type TemplateTemplateParameter struct {
	Template

	IsParameterPack bool
}

// TypeTemplateParameter is a "typename T" template parameter.
type TypeTemplateParameter struct {
	Declaration

	Default         *Type
	IsParameterPack bool
}

// NonTypeTemplateParameter is a value template parameter.
type NonTypeTemplateParameter struct {
	Declaration

	Type            *Type
	Default         string
	Position        int
	IsParameterPack bool
}

// TypeAliasTemplate is an alias template ("template<class T> using X = ...").
type TypeAliasTemplate struct {
	Template

	Pattern *TypeAlias
}

// ── Kind ────────────────────────────────────────────────────────────

func (*TranslationUnit) Kind() Kind                { return KindTranslationUnit }
func (*Namespace) Kind() Kind                      { return KindNamespace }
func (*Class) Kind() Kind                          { return KindClass }
func (*Field) Kind() Kind                          { return KindField }
func (*Function) Kind() Kind                       { return KindFunction }
func (*Method) Kind() Kind                         { return KindMethod }
func (*Parameter) Kind() Kind                      { return KindParameter }
func (*TypedefDecl) Kind() Kind                    { return KindTypedef }
func (*TypeAlias) Kind() Kind                      { return KindTypeAlias }
func (*Enumeration) Kind() Kind                    { return KindEnum }
func (*EnumItem) Kind() Kind                       { return KindEnumItem }
func (*Variable) Kind() Kind                       { return KindVariable }
func (*MacroDefinition) Kind() Kind                { return KindMacroDefinition }
func (*Event) Kind() Kind                          { return KindEvent }
func (*Property) Kind() Kind                       { return KindProperty }
func (*Friend) Kind() Kind                         { return KindFriend }
func (*ClassTemplate) Kind() Kind                  { return KindClassTemplate }
func (*ClassTemplateSpecialization) Kind() Kind    { return KindClassTemplateSpecialization }
func (*FunctionTemplate) Kind() Kind               { return KindFunctionTemplate }
func (*FunctionTemplateSpecialization) Kind() Kind { return KindFunctionTemplateSpecialization }
func (*VarTemplate) Kind() Kind                    { return KindVarTemplate }
func (*VarTemplateSpecialization) Kind() Kind      { return KindVarTemplateSpecialization }
func (*TemplateTemplateParameter) Kind() Kind      { return KindTemplateTemplateParameter }
func (*TypeTemplateParameter) Kind() Kind          { return KindTypeTemplateParameter }
func (*NonTypeTemplateParameter) Kind() Kind       { return KindNonTypeTemplateParameter }
func (*TypeAliasTemplate) Kind() Kind              { return KindTypeAliasTemplate }
