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

package types

// IType is the base interface for inference types. Inference types exist only
// within a single check session.
//
// Every inference type carries the source annotation of the expression it was
// created for, and a list of field constraints: fields the type must have,
// accumulated before the type is resolved. A shape other than a variable or a
// named type must end the session with an empty field list.
type IType interface {
	ITypeName() string
	Annot() interface{}
	Row() FieldMap
	// WithRow returns a copy of the type carrying the given field constraints.
	WithRow(FieldMap) IType
}

var (
	_ IType = (*IVar)(nil)
	_ IType = (*ILit)(nil)
	_ IType = (*INamed)(nil)
	_ IType = (*IArrow)(nil)
	_ IType = (*IList)(nil)
)

// Unresolved unification variable
type IVar struct {
	Ann    interface{}
	Id     int
	Fields FieldMap
}

func (t *IVar) ITypeName() string { return "IVar" }
func (t *IVar) Annot() interface{} { return t.Ann }
func (t *IVar) Row() FieldMap { return t.Fields }
func (t *IVar) WithRow(m FieldMap) IType {
	return &IVar{Ann: t.Ann, Id: t.Id, Fields: m}
}

// Literal type
type ILit struct {
	Ann    interface{}
	Kind   Ground
	Fields FieldMap
}

func (t *ILit) ITypeName() string { return "ILit" }
func (t *ILit) Annot() interface{} { return t.Ann }
func (t *ILit) Row() FieldMap { return t.Fields }
func (t *ILit) WithRow(m FieldMap) IType {
	return &ILit{Ann: t.Ann, Kind: t.Kind, Fields: m}
}

// Reference to a declared variant or record type
type INamed struct {
	Ann    interface{}
	Name   TypeName
	Fields FieldMap
}

func (t *INamed) ITypeName() string { return "INamed" }
func (t *INamed) Annot() interface{} { return t.Ann }
func (t *INamed) Row() FieldMap { return t.Fields }
func (t *INamed) WithRow(m FieldMap) IType {
	return &INamed{Ann: t.Ann, Name: t.Name, Fields: m}
}

// Function type
type IArrow struct {
	Ann    interface{}
	Arg    IType
	Return IType
	Fields FieldMap
}

func (t *IArrow) ITypeName() string { return "IArrow" }
func (t *IArrow) Annot() interface{} { return t.Ann }
func (t *IArrow) Row() FieldMap { return t.Fields }
func (t *IArrow) WithRow(m FieldMap) IType {
	return &IArrow{Ann: t.Ann, Arg: t.Arg, Return: t.Return, Fields: m}
}

// Homogeneous list type
type IList struct {
	Ann    interface{}
	Elem   IType
	Fields FieldMap
}

func (t *IList) ITypeName() string { return "IList" }
func (t *IList) Annot() interface{} { return t.Ann }
func (t *IList) Row() FieldMap { return t.Fields }
func (t *IList) WithRow(m FieldMap) IType {
	return &IList{Ann: t.Ann, Elem: t.Elem, Fields: m}
}

// Lift a surface type into an inference type carrying the given annotation at
// every node, with empty field constraints throughout.
func LiftType(t Type, ann interface{}) IType {
	switch t := t.(type) {
	case *Lit:
		return &ILit{Ann: ann, Kind: t.Kind, Fields: EmptyFieldMap}
	case *Named:
		return &INamed{Ann: ann, Name: t.Name, Fields: EmptyFieldMap}
	case *Arrow:
		return &IArrow{Ann: ann, Arg: LiftType(t.Arg, ann), Return: LiftType(t.Return, ann), Fields: EmptyFieldMap}
	case *List:
		return &IList{Ann: ann, Elem: LiftType(t.Elem, ann), Fields: EmptyFieldMap}
	}
	return nil
}
