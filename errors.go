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

package projector

import (
	"strconv"
	"strings"

	"github.com/charleso/projector-1/ast"
	"github.com/charleso/projector-1/types"
)

// FieldConstraint is a reported field requirement, carried by record errors.
type FieldConstraint struct {
	Name types.FieldName
	Type types.IType
}

func fieldConstraintString(fields []FieldConstraint) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(f.Name))
		sb.WriteString(": ")
		sb.WriteString(types.ITypeString(f.Type))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Two concrete shapes that cannot be reconciled.
type UnificationError struct {
	Left  types.IType
	Right types.IType
}

func (e *UnificationError) Error() string {
	return "Cannot unify " + types.ITypeString(e.Left) + " with " + types.ITypeString(e.Right)
}

// Occurs check failed: a variable would be unified with a type mentioning it.
type InfiniteTypeError struct {
	Var  *types.IVar
	Type types.IType
}

func (e *InfiniteTypeError) Error() string {
	return "Infinite type: " + types.ITypeString(e.Var) + " occurs in " + types.ITypeString(e.Type)
}

// A use with no binder.
type FreeVariableError struct {
	Name ast.Name
	Ann  interface{}
}

func (e *FreeVariableError) Error() string {
	return "Variable " + string(e.Name) + " not found"
}

// A construction names a type with no declaration.
type UndeclaredTypeError struct {
	Name types.TypeName
	Ann  interface{}
}

func (e *UndeclaredTypeError) Error() string {
	return "Type " + string(e.Name) + " is not declared"
}

// A construction names a constructor the declared variant does not have.
type BadConstructorNameError struct {
	Constructor types.Constructor
	TypeName    types.TypeName
	Decl        types.Decl
	Ann         interface{}
}

func (e *BadConstructorNameError) Error() string {
	return "Constructor " + string(e.Constructor) + " does not belong to type " + string(e.TypeName)
}

// A construction applies a constructor to the wrong number of arguments.
type BadConstructorArityError struct {
	Constructor types.Constructor
	Decl        types.Decl
	Actual      int
	Ann         interface{}
}

func (e *BadConstructorArityError) Error() string {
	return "Constructor " + string(e.Constructor) + " applied to " + strconv.Itoa(e.Actual) + " arguments"
}

// A pattern applies a constructor to the wrong number of sub-patterns.
type BadPatternArityError struct {
	Constructor types.Constructor
	Type        types.Type
	Expected    int
	Actual      int
	Ann         interface{}
}

func (e *BadPatternArityError) Error() string {
	return "Pattern constructor " + string(e.Constructor) + " of " + types.TypeString(e.Type) +
		" expects " + strconv.Itoa(e.Expected) + " sub-patterns, got " + strconv.Itoa(e.Actual)
}

// A pattern names an unknown constructor.
type BadPatternConstructorError struct {
	Constructor types.Constructor
	Ann         interface{}
}

func (e *BadPatternConstructorError) Error() string {
	return "Pattern constructor " + string(e.Constructor) + " is not declared"
}

// A variable escaped solving with no field constraints.
type InferenceError struct {
	Ann interface{}
}

func (e *InferenceError) Error() string {
	return "Could not infer a type"
}

// A variable escaped solving with open field constraints.
type RecordInferenceError struct {
	Ann    interface{}
	Fields []FieldConstraint
}

func (e *RecordInferenceError) Error() string {
	return "Could not infer a record type with fields " + fieldConstraintString(e.Fields)
}

// Field constraints were required on a type that cannot have fields.
type InvalidRecordFieldsError struct {
	Type   types.IType
	Fields []FieldConstraint
}

func (e *InvalidRecordFieldsError) Error() string {
	return "Type " + types.ITypeString(e.Type) + " cannot have fields " + fieldConstraintString(e.Fields)
}

// ErrorList is an accumulated, order-preserving list of type errors.
type ErrorList []error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As.
func (l ErrorList) Unwrap() []error { return l }

// ErrorOrNil returns the list as an error, or nil if the list is empty.
func (l ErrorList) ErrorOrNil() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func rowConstraints(row types.FieldMap) []FieldConstraint {
	if row.Len() == 0 {
		return nil
	}
	fields := make([]FieldConstraint, 0, row.Len())
	row.Range(func(name types.FieldName, t types.IType) bool {
		fields = append(fields, FieldConstraint{Name: name, Type: t})
		return true
	})
	return fields
}
