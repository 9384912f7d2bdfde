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

	"github.com/charleso/projector-1/types"
)

func newVar(id int) *types.IVar {
	return &types.IVar{Ann: "t", Id: id, Fields: types.EmptyFieldMap}
}

func intLit() *types.ILit {
	return &types.ILit{Ann: "t", Kind: types.GInt, Fields: types.EmptyFieldMap}
}

func strLit() *types.ILit {
	return &types.ILit{Ann: "t", Kind: types.GString, Fields: types.EmptyFieldMap}
}

func newUnifier() *unifier {
	return &unifier{store: types.NewStore(), decls: testDecls()}
}

func TestUnifyVarWithLit(t *testing.T) {
	u := newUnifier()
	v := newVar(0)
	require.NoError(t, u.mgu(v, intLit()))
	rep, ok := u.store.Repr(v).(*types.ILit)
	require.True(t, ok)
	assert.Equal(t, types.GInt, rep.Kind)
}

func TestUnifyLitMismatch(t *testing.T) {
	u := newUnifier()
	err := u.mgu(intLit(), strLit())
	require.Error(t, err)
	findErr[*UnificationError](t, err)
}

func TestUnifyVarChain(t *testing.T) {
	u := newUnifier()
	a, b := newVar(0), newVar(1)
	require.NoError(t, u.mgu(a, b))
	require.NoError(t, u.mgu(b, intLit()))
	for _, v := range []*types.IVar{a, b} {
		rep, ok := u.store.Repr(v).(*types.ILit)
		require.True(t, ok)
		assert.Equal(t, types.GInt, rep.Kind)
	}
}

func TestUnifyArrows(t *testing.T) {
	u := newUnifier()
	a, b := newVar(0), newVar(1)
	left := &types.IArrow{Ann: "t", Arg: a, Return: b, Fields: types.EmptyFieldMap}
	right := &types.IArrow{Ann: "t", Arg: intLit(), Return: strLit(), Fields: types.EmptyFieldMap}
	require.NoError(t, u.mgu(left, right))
	assert.IsType(t, &types.ILit{}, u.store.Repr(a))
	assert.IsType(t, &types.ILit{}, u.store.Repr(b))
}

func TestUnifyArrowAccumulatesBothSides(t *testing.T) {
	u := newUnifier()
	left := &types.IArrow{Ann: "t", Arg: intLit(), Return: intLit(), Fields: types.EmptyFieldMap}
	right := &types.IArrow{Ann: "t", Arg: strLit(), Return: strLit(), Fields: types.EmptyFieldMap}
	err := u.mgu(left, right)
	require.Error(t, err)
	errs, ok := err.(ErrorList)
	require.True(t, ok)
	assert.Len(t, errs, 2, "both argument and return mismatches must be reported")
}

func TestOccursCheck(t *testing.T) {
	u := newUnifier()
	v := newVar(0)
	arrow := &types.IArrow{Ann: "t", Arg: v, Return: intLit(), Fields: types.EmptyFieldMap}
	err := u.mgu(v, arrow)
	require.Error(t, err)
	ierr := findErr[*InfiniteTypeError](t, err)
	assert.Equal(t, 0, ierr.Var.Id)
}

func TestOccursCheckThroughFields(t *testing.T) {
	u := newUnifier()
	v := newVar(0)
	carrier := newVar(1).WithRow(types.SingletonFieldMap("f", v))
	err := u.mgu(v, carrier)
	require.Error(t, err)
	findErr[*InfiniteTypeError](t, err)
}

func TestRowMergeDisjoint(t *testing.T) {
	u := newUnifier()
	a := newVar(0).WithRow(types.SingletonFieldMap("x", intLit()))
	b := newVar(1).WithRow(types.SingletonFieldMap("y", strLit()))
	require.NoError(t, u.mgu(a, b))
	rep := u.store.Repr(b.(*types.IVar))
	require.Equal(t, 2, rep.Row().Len())
	_, okX := rep.Row().Get("x")
	_, okY := rep.Row().Get("y")
	assert.True(t, okX && okY)
}

func TestRowMergeSharedFieldUnifies(t *testing.T) {
	u := newUnifier()
	shared := newVar(2)
	a := newVar(0).WithRow(types.SingletonFieldMap("x", shared))
	b := newVar(1).WithRow(types.SingletonFieldMap("x", intLit()))
	require.NoError(t, u.mgu(a, b))
	assert.IsType(t, &types.ILit{}, u.store.Repr(shared))
}

func TestRowMergeSharedFieldMismatch(t *testing.T) {
	u := newUnifier()
	a := newVar(0).WithRow(types.SingletonFieldMap("x", intLit()))
	b := newVar(1).WithRow(types.SingletonFieldMap("x", strLit()))
	err := u.mgu(a, b)
	require.Error(t, err)
	findErr[*UnificationError](t, err)
}

func TestNamedRowUnknownField(t *testing.T) {
	u := newUnifier()
	v := newVar(0).WithRow(types.SingletonFieldMap("z", newVar(1)))
	point := &types.INamed{Ann: "t", Name: "Point", Fields: types.EmptyFieldMap}
	err := u.mgu(v, point)
	require.Error(t, err)
	ferr := findErr[*InvalidRecordFieldsError](t, err)
	require.Len(t, ferr.Fields, 1)
	assert.Equal(t, types.FieldName("z"), ferr.Fields[0].Name)
}

func TestNamedRowDeclaredFieldAccepted(t *testing.T) {
	u := newUnifier()
	v := newVar(0).WithRow(types.SingletonFieldMap("x", newVar(1)))
	point := &types.INamed{Ann: "t", Name: "Point", Fields: types.EmptyFieldMap}
	require.NoError(t, u.mgu(v, point))
	rep, ok := u.store.Repr(v.(*types.IVar)).(*types.INamed)
	require.True(t, ok)
	_, ok = rep.Row().Get("x")
	assert.True(t, ok)
}

func TestFieldsOnVariantRejected(t *testing.T) {
	u := newUnifier()
	v := newVar(0).WithRow(types.SingletonFieldMap("x", newVar(1)))
	nat := &types.INamed{Ann: "t", Name: "Nat", Fields: types.EmptyFieldMap}
	err := u.mgu(v, nat)
	require.Error(t, err)
	findErr[*InvalidRecordFieldsError](t, err)
}

func TestFieldsOnLitRejected(t *testing.T) {
	u := newUnifier()
	withFields := &types.ILit{Ann: "t", Kind: types.GInt, Fields: types.SingletonFieldMap("x", newVar(0))}
	err := u.mgu(withFields, intLit())
	require.Error(t, err)
	findErr[*InvalidRecordFieldsError](t, err)
}

func TestNamedMismatch(t *testing.T) {
	u := newUnifier()
	point := &types.INamed{Ann: "t", Name: "Point", Fields: types.EmptyFieldMap}
	nat := &types.INamed{Ann: "t", Name: "Nat", Fields: types.EmptyFieldMap}
	err := u.mgu(point, nat)
	require.Error(t, err)
	findErr[*UnificationError](t, err)
}

func TestSolveAccumulatesPerConstraint(t *testing.T) {
	cs := []Constraint{
		{Left: intLit(), Right: strLit()},
		{Left: newVar(0), Right: intLit()},
		{Left: strLit(), Right: intLit()},
	}
	_, errs := SolveConstraints(testDecls(), cs)
	assert.Len(t, errs, 2, "independent failures must both be reported")
}
