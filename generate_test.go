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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charleso/projector-1/ast"
	"github.com/charleso/projector-1/types"
)

func TestGenerateVarAssumption(t *testing.T) {
	root, cs, assume, errs := GenerateConstraints(testDecls(), &ast.Var{Ann: "a", Name: "x"})
	require.Empty(t, errs)
	assert.Empty(t, cs)
	require.Len(t, assume.Lookup("x"), 1)
	tv, ok := root.IType().(*types.IVar)
	require.True(t, ok)
	assert.Equal(t, "a", tv.Ann)
	assert.Same(t, tv, assume.Lookup("x")[0])
}

func TestGenerateLamDischargesBinder(t *testing.T) {
	expr := &ast.Lam{Ann: "a", Arg: "x", Body: &ast.Var{Ann: "b", Name: "x"}}
	root, cs, assume, errs := GenerateConstraints(testDecls(), expr)
	require.Empty(t, errs)
	assert.Zero(t, assume.Len(), "binder use must not escape the lambda")
	require.Len(t, cs, 1)
	arrow, ok := root.IType().(*types.IArrow)
	require.True(t, ok)
	// the single constraint equates the binder with its use in the body
	assert.Same(t, arrow.Arg, cs[0].Left)
}

func TestGenerateListElements(t *testing.T) {
	expr := &ast.List{Ann: "a", Elem: intT, Elems: []ast.Expr{
		&ast.Lit{Ann: "a", Value: types.VInt(1)},
		&ast.Lit{Ann: "a", Value: types.VInt(2)},
	}}
	root, cs, _, errs := GenerateConstraints(testDecls(), expr)
	require.Empty(t, errs)
	assert.Len(t, cs, 2)
	_, ok := root.IType().(*types.IList)
	assert.True(t, ok)
}

func TestGenerateRecordSeedsFields(t *testing.T) {
	root, _, _, errs := GenerateConstraints(testDecls(), pointExpr())
	require.Empty(t, errs)
	named, ok := root.IType().(*types.INamed)
	require.True(t, ok)
	assert.Equal(t, types.TypeName("Point"), named.Name)
	require.Equal(t, 2, named.Fields.Len())
	x, ok := named.Fields.Get("x")
	require.True(t, ok)
	lit, ok := x.(*types.ILit)
	require.True(t, ok)
	assert.Equal(t, types.GInt, lit.Kind)
}

func TestGenerateUndeclaredType(t *testing.T) {
	expr := &ast.Con{Ann: "a", Constructor: "Huh", TypeName: "Huh"}
	_, _, _, errs := GenerateConstraints(testDecls(), expr)
	uerr := findErr[*UndeclaredTypeError](t, errs.ErrorOrNil())
	assert.Equal(t, types.TypeName("Huh"), uerr.Name)
}

func TestGenerateBadConstructorName(t *testing.T) {
	expr := &ast.Con{Ann: "a", Constructor: "Triple", TypeName: "Pair"}
	_, _, _, errs := GenerateConstraints(testDecls(), expr)
	berr := findErr[*BadConstructorNameError](t, errs.ErrorOrNil())
	assert.Equal(t, types.Constructor("Triple"), berr.Constructor)
	assert.Equal(t, types.TypeName("Pair"), berr.TypeName)
}

func TestGenerateBadConstructorArity(t *testing.T) {
	expr := &ast.Con{Ann: "a", Constructor: "Pair", TypeName: "Pair", Args: []ast.Expr{
		&ast.Lit{Ann: "a", Value: types.VInt(1)},
	}}
	_, _, _, errs := GenerateConstraints(testDecls(), expr)
	berr := findErr[*BadConstructorArityError](t, errs.ErrorOrNil())
	assert.Equal(t, 1, berr.Actual)

	record := &ast.Con{Ann: "a", Constructor: "Point", TypeName: "Point"}
	_, _, _, errs = GenerateConstraints(testDecls(), record)
	berr = findErr[*BadConstructorArityError](t, errs.ErrorOrNil())
	assert.Equal(t, 0, berr.Actual)
}

func TestGenerateBadPatternConstructor(t *testing.T) {
	expr := &ast.Case{Ann: "a", Scrutinee: pointExpr(), Alts: []ast.Alt{
		{Pattern: &ast.PatternCon{Ann: "a", Constructor: "Nothing"}, Body: &ast.Lit{Ann: "a", Value: types.VInt(0)}},
	}}
	_, _, _, errs := GenerateConstraints(testDecls(), expr)
	berr := findErr[*BadPatternConstructorError](t, errs.ErrorOrNil())
	assert.Equal(t, types.Constructor("Nothing"), berr.Constructor)
}

func TestGenerateRecordPatternUnsupported(t *testing.T) {
	// record type names are constructors in expressions, not in patterns
	expr := &ast.Case{Ann: "a", Scrutinee: pointExpr(), Alts: []ast.Alt{
		{Pattern: &ast.PatternCon{Ann: "a", Constructor: "Point", Patterns: []ast.Pattern{
			&ast.PatternVar{Ann: "a", Name: "x"},
			&ast.PatternVar{Ann: "a", Name: "y"},
		}}, Body: &ast.Lit{Ann: "a", Value: types.VInt(0)}},
	}}
	_, _, _, errs := GenerateConstraints(testDecls(), expr)
	findErr[*BadPatternConstructorError](t, errs.ErrorOrNil())
}

func TestGenerateBadPatternArity(t *testing.T) {
	expr := &ast.Case{Ann: "a", Scrutinee: &ast.Con{Ann: "a", Constructor: "Zero", TypeName: "Nat"}, Alts: []ast.Alt{
		{Pattern: &ast.PatternCon{Ann: "a", Constructor: "Succ", Patterns: []ast.Pattern{
			&ast.PatternVar{Ann: "a", Name: "m"},
			&ast.PatternVar{Ann: "a", Name: "n"},
		}}, Body: &ast.Lit{Ann: "a", Value: types.VInt(0)}},
	}}
	_, _, _, errs := GenerateConstraints(testDecls(), expr)
	berr := findErr[*BadPatternArityError](t, errs.ErrorOrNil())
	assert.Equal(t, 1, berr.Expected)
	assert.Equal(t, 2, berr.Actual)
}

func TestAssumptionsWithBindings(t *testing.T) {
	as := NewAssumptions()
	outer := &types.IVar{Ann: "outer", Id: 0, Fields: types.EmptyFieldMap}
	as.Add("x", outer)

	inner := &types.IVar{Ann: "inner", Id: 1, Fields: types.EmptyFieldMap}
	collected := as.WithBindings([]ast.Name{"x"}, func() {
		assert.Empty(t, as.Lookup("x"), "binding must shadow the outer use")
		as.Add("x", inner)
	})

	require.Len(t, collected, 1)
	require.Len(t, collected[0], 1)
	assert.Same(t, inner, collected[0][0])

	// the outer use is restored afterwards
	require.Len(t, as.Lookup("x"), 1)
	assert.Same(t, outer, as.Lookup("x")[0])
}

func TestAssumptionsSetDelete(t *testing.T) {
	as := NewAssumptions()
	v := &types.IVar{Ann: "a", Id: 0, Fields: types.EmptyFieldMap}
	as.Add("x", v)
	as.Add("y", v)
	assert.Equal(t, []ast.Name{"x", "y"}, as.Names())

	as.Delete("x")
	assert.Empty(t, as.Lookup("x"))
	as.Set("y", nil)
	assert.Zero(t, as.Len())
}

func TestCaseBodyBeforePattern(t *testing.T) {
	// the alternative body is generated before its pattern is processed, so
	// pattern equalities for a binder come after the body's constraints
	expr := &ast.Case{Ann: "a", Scrutinee: &ast.Con{Ann: "a", Constructor: "Zero", TypeName: "Nat"}, Alts: []ast.Alt{
		{
			Pattern: &ast.PatternCon{Ann: "a", Constructor: "Succ", Patterns: []ast.Pattern{
				&ast.PatternVar{Ann: "a", Name: "m"},
			}},
			Body: &ast.Prj{Ann: "a", Record: &ast.Var{Ann: "a", Name: "m"}, Field: "x"},
		},
	}}
	_, cs, _, errs := GenerateConstraints(testDecls(), expr)
	require.Empty(t, errs)
	require.NotEmpty(t, cs)
	// the first constraint is the body's projection row, not the pattern's
	_, ok := cs[0].Left.(*types.IVar)
	assert.True(t, ok)
	assert.Equal(t, 1, cs[0].Left.Row().Len())
}
