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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueGrounds(t *testing.T) {
	assert.Equal(t, GString, VString("a").Ground())
	assert.Equal(t, GInt, VInt(1).Ground())
	assert.Equal(t, GBool, VBool(true).Ground())
	assert.Equal(t, `"a"`, VString("a").Syntax())
	assert.Equal(t, "42", VInt(42).Syntax())
	assert.Equal(t, "true", VBool(true).Syntax())
}

func TestTypeEq(t *testing.T) {
	intT := &Lit{Kind: GInt}
	assert.True(t, intT.Eq(&Lit{Kind: GInt}))
	assert.False(t, intT.Eq(&Lit{Kind: GString}))
	assert.False(t, intT.Eq(&Named{Name: "Int"}))

	arrow := &Arrow{Arg: intT, Return: &List{Elem: intT}}
	assert.True(t, arrow.Eq(&Arrow{Arg: &Lit{Kind: GInt}, Return: &List{Elem: &Lit{Kind: GInt}}}))
	assert.False(t, arrow.Eq(&Arrow{Arg: intT, Return: intT}))
}

func TestDeclsLookup(t *testing.T) {
	decls := NewDecls(map[TypeName]Decl{
		"Maybe": &VariantDecl{Constructors: []ConstructorDef{
			{Name: "Nothing"},
			{Name: "Just", Args: []Type{&Lit{Kind: GInt}}},
		}},
		"Point": &RecordDecl{Fields: []FieldDef{
			{Name: "x", Type: &Lit{Kind: GInt}},
		}},
	})

	decl, ok := decls.Lookup("Maybe")
	require.True(t, ok)
	variant, ok := decl.(*VariantDecl)
	require.True(t, ok)
	def, ok := variant.Lookup("Just")
	require.True(t, ok)
	assert.Len(t, def.Args, 1)

	_, ok = decls.Lookup("Nope")
	assert.False(t, ok)

	info, ok := decls.LookupConstructor("Just")
	require.True(t, ok)
	assert.Equal(t, TypeName("Maybe"), info.Name)
	assert.True(t, info.Type.Eq(&Named{Name: "Maybe"}))

	// record type names are not indexed as constructors
	_, ok = decls.LookupConstructor("Point")
	assert.False(t, ok)
}

func TestDeclsRangeSorted(t *testing.T) {
	decls := NewDecls(map[TypeName]Decl{
		"Zebra": &RecordDecl{},
		"Apple": &RecordDecl{},
		"Mango": &RecordDecl{},
	})
	var names []TypeName
	decls.Range(func(n TypeName, _ Decl) bool {
		names = append(names, n)
		return true
	})
	assert.Equal(t, []TypeName{"Apple", "Mango", "Zebra"}, names)
}

func TestFieldMapSortedRange(t *testing.T) {
	b := NewFieldMapBuilder()
	b.Set("y", &ILit{Kind: GInt, Fields: EmptyFieldMap})
	b.Set("x", &ILit{Kind: GString, Fields: EmptyFieldMap})
	m := b.Build()
	require.Equal(t, 2, m.Len())

	var names []FieldName
	m.Range(func(n FieldName, _ IType) bool {
		names = append(names, n)
		return true
	})
	assert.Equal(t, []FieldName{"x", "y"}, names)

	x, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, GString, x.(*ILit).Kind)
	_, ok = m.Get("z")
	assert.False(t, ok)
}

func TestFieldMapBuilderDoesNotMutate(t *testing.T) {
	m := SingletonFieldMap("x", &ILit{Kind: GInt, Fields: EmptyFieldMap})
	b := m.Builder()
	b.Set("y", &ILit{Kind: GBool, Fields: EmptyFieldMap})
	extended := b.Build()
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, extended.Len())
}

func TestLiftType(t *testing.T) {
	surface := &Arrow{
		Arg:    &List{Elem: &Lit{Kind: GInt}},
		Return: &Named{Name: "Point"},
	}
	lifted := LiftType(surface, "here")
	arrow, ok := lifted.(*IArrow)
	require.True(t, ok)
	assert.Equal(t, "here", arrow.Ann)
	list, ok := arrow.Arg.(*IList)
	require.True(t, ok)
	assert.Equal(t, "here", list.Ann)
	named, ok := arrow.Return.(*INamed)
	require.True(t, ok)
	assert.Equal(t, TypeName("Point"), named.Name)
	assert.Zero(t, named.Fields.Len())
}

func TestStoreUnionCarriesFields(t *testing.T) {
	s := NewStore()
	a := &IVar{Id: 0, Fields: EmptyFieldMap}
	b := &IVar{Id: 1, Fields: EmptyFieldMap}
	merged := SingletonFieldMap("x", &ILit{Kind: GInt, Fields: EmptyFieldMap})
	s.Union(merged, s.Point(a), s.Point(b))

	rep := s.Repr(a)
	v, ok := rep.(*IVar)
	require.True(t, ok)
	assert.Equal(t, 1, v.Id, "the merged class takes the second side's shape")
	assert.Equal(t, 1, rep.Row().Len())
	assert.Equal(t, rep, s.Repr(b))
}

func TestStoreUnionWithKnownShape(t *testing.T) {
	s := NewStore()
	v := &IVar{Id: 0, Fields: EmptyFieldMap}
	lit := &ILit{Kind: GBool, Fields: EmptyFieldMap}
	s.Union(EmptyFieldMap, s.Point(v), s.Point(lit))

	rep, ok := s.Repr(v).(*ILit)
	require.True(t, ok)
	assert.Equal(t, GBool, rep.Kind)
	// known shapes are never shared by id
	assert.Same(t, lit, s.Repr(lit).(*ILit))
}

func TestStorePointIsStablePerId(t *testing.T) {
	s := NewStore()
	a := &IVar{Id: 3, Fields: EmptyFieldMap}
	assert.Same(t, s.Point(a), s.Point(&IVar{Id: 3, Fields: EmptyFieldMap}))
	assert.Len(t, s.Ids(), 1)
}

func TestTypeString(t *testing.T) {
	arrow := &Arrow{
		Arg:    &Arrow{Arg: &Lit{Kind: GInt}, Return: &Lit{Kind: GBool}},
		Return: &List{Elem: &Named{Name: "Point"}},
	}
	assert.Equal(t, "(int -> bool) -> [Point]", TypeString(arrow))
}

func TestITypeString(t *testing.T) {
	v := &IVar{Id: 2, Fields: SingletonFieldMap("x", &ILit{Kind: GInt, Fields: EmptyFieldMap})}
	assert.Equal(t, "t2 {x: int}", ITypeString(v))

	arrow := &IArrow{
		Arg:    &IVar{Id: 0, Fields: EmptyFieldMap},
		Return: &IList{Elem: &ILit{Kind: GString, Fields: EmptyFieldMap}, Fields: EmptyFieldMap},
		Fields: EmptyFieldMap,
	}
	assert.Equal(t, "t0 -> [string]", ITypeString(arrow))
}
