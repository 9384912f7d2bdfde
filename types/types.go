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

import (
	"strconv"
)

// TypeName identifies a declared variant or record type.
type TypeName string

// FieldName identifies a record field.
type FieldName string

// Constructor identifies a variant constructor.
type Constructor string

// Ground is the closed set of literal kinds.
type Ground int

const (
	GString Ground = iota
	GInt
	GBool
)

func (g Ground) String() string {
	switch g {
	case GString:
		return "string"
	case GInt:
		return "int"
	case GBool:
		return "bool"
	}
	return "unknown"
}

// Value is a literal value with a ground kind.
type Value interface {
	Ground() Ground
	// Syntax is a string representation of the value. The syntax will be printed when the value is printed.
	Syntax() string
}

var (
	_ Value = VString("")
	_ Value = VInt(0)
	_ Value = VBool(false)
)

type VString string

func (v VString) Ground() Ground { return GString }
func (v VString) Syntax() string { return strconv.Quote(string(v)) }

type VInt int64

func (v VInt) Ground() Ground { return GInt }
func (v VInt) Syntax() string { return strconv.FormatInt(int64(v), 10) }

type VBool bool

func (v VBool) Ground() Ground { return GBool }
func (v VBool) Syntax() string { return strconv.FormatBool(bool(v)) }

// Type is the base interface for all surface types.
//
// Surface types appear in declarations, in ascriptions on expressions, and on
// every node of a checked expression tree after inference.
type Type interface {
	TypeName() string
	Eq(Type) bool
}

var (
	_ Type = (*Lit)(nil)
	_ Type = (*Named)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*List)(nil)
)

// Literal type
type Lit struct {
	Kind Ground
}

func (t *Lit) TypeName() string { return "Lit" }

func (t *Lit) Eq(other Type) bool {
	ot, ok := other.(*Lit)
	return ok && t.Kind == ot.Kind
}

// Reference to a declared variant or record type
type Named struct {
	Name TypeName
}

func (t *Named) TypeName() string { return "Named" }

func (t *Named) Eq(other Type) bool {
	ot, ok := other.(*Named)
	return ok && t.Name == ot.Name
}

// Function type
type Arrow struct {
	Arg    Type
	Return Type
}

func (t *Arrow) TypeName() string { return "Arrow" }

func (t *Arrow) Eq(other Type) bool {
	ot, ok := other.(*Arrow)
	return ok && t.Arg.Eq(ot.Arg) && t.Return.Eq(ot.Return)
}

// Homogeneous list type
type List struct {
	Elem Type
}

func (t *List) TypeName() string { return "List" }

func (t *List) Eq(other Type) bool {
	ot, ok := other.(*List)
	return ok && t.Elem.Eq(ot.Elem)
}
