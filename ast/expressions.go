// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

import (
	"github.com/charleso/projector-1/types"
)

// Name identifies a term-level binding.
type Name string

// Expr is the base for all expressions.
//
// Every node carries the source annotation it was elaborated with. During a
// check session, the generator assigns an inference type to every node; after
// solving, the final surface type is assigned. Both assignments happen on a
// copy of the input; input expressions are never mutated.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Annot returns the source annotation of the expression.
	Annot() interface{}
	// IType returns the inference type of an expression during a check session.
	IType() types.IType
	// Assign an inference type to an expression. Assignments should occur indirectly, during constraint generation.
	SetIType(types.IType)
	// Type returns the inferred type of an expression. Expression types are only available after checking.
	Type() types.Type
	// Assign a type to an expression. Type assignments should occur indirectly, during lowering.
	SetType(types.Type)
}

var (
	_ Expr = (*Lit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Lam)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*MapList)(nil)
	_ Expr = (*Con)(nil)
	_ Expr = (*Case)(nil)
	_ Expr = (*Prj)(nil)
	_ Expr = (*Foreign)(nil)
)

// Literal value
type Lit struct {
	Ann      interface{}
	Value    types.Value
	it       types.IType
	inferred types.Type
}

// "Lit"
func (e *Lit) ExprName() string { return "Lit" }
func (e *Lit) Annot() interface{} { return e.Ann }
func (e *Lit) IType() types.IType { return e.it }
func (e *Lit) SetIType(t types.IType) { e.it = t }
func (e *Lit) Type() types.Type { return e.inferred }
func (e *Lit) SetType(t types.Type) { e.inferred = t }

// Variable
type Var struct {
	Ann      interface{}
	Name     Name
	it       types.IType
	inferred types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }
func (e *Var) Annot() interface{} { return e.Ann }
func (e *Var) IType() types.IType { return e.it }
func (e *Var) SetIType(t types.IType) { e.it = t }
func (e *Var) Type() types.Type { return e.inferred }
func (e *Var) SetType(t types.Type) { e.inferred = t }

// Abstraction: `\x -> body`, with an optional type ascription on the binder
type Lam struct {
	Ann      interface{}
	Arg      Name
	ArgType  types.Type // nil when the binder is unascribed
	Body     Expr
	it       types.IType
	inferred types.Type
}

// "Lam"
func (e *Lam) ExprName() string { return "Lam" }
func (e *Lam) Annot() interface{} { return e.Ann }
func (e *Lam) IType() types.IType { return e.it }
func (e *Lam) SetIType(t types.IType) { e.it = t }
func (e *Lam) Type() types.Type { return e.inferred }
func (e *Lam) SetType(t types.Type) { e.inferred = t }

// Application: `f x`
type App struct {
	Ann      interface{}
	Func     Expr
	Arg      Expr
	it       types.IType
	inferred types.Type
}

// "App"
func (e *App) ExprName() string { return "App" }
func (e *App) Annot() interface{} { return e.Ann }
func (e *App) IType() types.IType { return e.it }
func (e *App) SetIType(t types.IType) { e.it = t }
func (e *App) Type() types.Type { return e.inferred }
func (e *App) SetType(t types.Type) { e.inferred = t }

// List literal with a given element type
type List struct {
	Ann      interface{}
	Elem     types.Type
	Elems    []Expr
	it       types.IType
	inferred types.Type
}

// "List"
func (e *List) ExprName() string { return "List" }
func (e *List) Annot() interface{} { return e.Ann }
func (e *List) IType() types.IType { return e.it }
func (e *List) SetIType(t types.IType) { e.it = t }
func (e *List) Type() types.Type { return e.inferred }
func (e *List) SetType(t types.Type) { e.inferred = t }

// Polymorphic list-map: `map f xs`
type MapList struct {
	Ann      interface{}
	Func     Expr
	List     Expr
	it       types.IType
	inferred types.Type
}

// "MapList"
func (e *MapList) ExprName() string { return "MapList" }
func (e *MapList) Annot() interface{} { return e.Ann }
func (e *MapList) IType() types.IType { return e.it }
func (e *MapList) SetIType(t types.IType) { e.it = t }
func (e *MapList) Type() types.Type { return e.inferred }
func (e *MapList) SetType(t types.Type) { e.inferred = t }

// Variant or record construction: `C ty e1 .. en`
type Con struct {
	Ann         interface{}
	Constructor types.Constructor
	TypeName    types.TypeName
	Args        []Expr
	it          types.IType
	inferred    types.Type
}

// "Con"
func (e *Con) ExprName() string { return "Con" }
func (e *Con) Annot() interface{} { return e.Ann }
func (e *Con) IType() types.IType { return e.it }
func (e *Con) SetIType(t types.IType) { e.it = t }
func (e *Con) Type() types.Type { return e.inferred }
func (e *Con) SetType(t types.Type) { e.inferred = t }

// Alt is a single case alternative.
type Alt struct {
	Pattern Pattern
	Body    Expr
}

// Case analysis over a non-empty list of alternatives
type Case struct {
	Ann       interface{}
	Scrutinee Expr
	Alts      []Alt
	it        types.IType
	inferred  types.Type
}

// "Case"
func (e *Case) ExprName() string { return "Case" }
func (e *Case) Annot() interface{} { return e.Ann }
func (e *Case) IType() types.IType { return e.it }
func (e *Case) SetIType(t types.IType) { e.it = t }
func (e *Case) Type() types.Type { return e.inferred }
func (e *Case) SetType(t types.Type) { e.inferred = t }

// Record field projection: `e.f`
type Prj struct {
	Ann      interface{}
	Record   Expr
	Field    types.FieldName
	it       types.IType
	inferred types.Type
}

// "Prj"
func (e *Prj) ExprName() string { return "Prj" }
func (e *Prj) Annot() interface{} { return e.Ann }
func (e *Prj) IType() types.IType { return e.it }
func (e *Prj) SetIType(t types.IType) { e.it = t }
func (e *Prj) Type() types.Type { return e.inferred }
func (e *Prj) SetType(t types.Type) { e.inferred = t }

// Opaque external binding with a fully resolved type
type Foreign struct {
	Ann         interface{}
	Name        Name
	ForeignType types.Type
	it          types.IType
	inferred    types.Type
}

// "Foreign"
func (e *Foreign) ExprName() string { return "Foreign" }
func (e *Foreign) Annot() interface{} { return e.Ann }
func (e *Foreign) IType() types.IType { return e.it }
func (e *Foreign) SetIType(t types.IType) { e.it = t }
func (e *Foreign) Type() types.Type { return e.inferred }
func (e *Foreign) SetType(t types.Type) { e.inferred = t }
