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
	"github.com/charleso/projector-1/ast"
	"github.com/charleso/projector-1/types"
)

// Substitutions maps solved variable ids to their class representatives.
// Entries whose representative is the variable itself are filtered out.
type Substitutions map[int]types.IType

// NewSubstitutions reads the solved classes out of a store.
func NewSubstitutions(store *types.Store) Substitutions {
	subs := make(Substitutions)
	for _, id := range store.Ids() {
		rep := store.Repr(&types.IVar{Id: id, Fields: types.EmptyFieldMap})
		if rv, ok := rep.(*types.IVar); ok && rv.Id == id {
			continue
		}
		subs[id] = rep
	}
	return subs
}

// Apply resolves every substituted variable within t, recursively. Field
// constraint lists are carried over as-is; consumers must not rely on field
// lists being substituted.
func (s Substitutions) Apply(t types.IType) types.IType {
	switch t := t.(type) {
	case *types.IVar:
		if rep, ok := s[t.Id]; ok {
			return s.Apply(rep)
		}
		return t

	case *types.IArrow:
		return &types.IArrow{Ann: t.Ann, Arg: s.Apply(t.Arg), Return: s.Apply(t.Return), Fields: t.Fields}

	case *types.IList:
		return &types.IList{Ann: t.Ann, Elem: s.Apply(t.Elem), Fields: t.Fields}
	}
	return t
}

// lowerer turns solved inference types into surface types, refusing leftover
// unification variables and misplaced field constraints.
type lowerer struct {
	subs Substitutions
	errs ErrorList
}

// lower returns the surface type for t, or nil after recording an error.
func (l *lowerer) lower(t types.IType) types.Type {
	switch t := t.(type) {
	case *types.IVar:
		if t.Row().Len() == 0 {
			l.errs = append(l.errs, &InferenceError{Ann: t.Ann})
		} else {
			l.errs = append(l.errs, &RecordInferenceError{Ann: t.Ann, Fields: rowConstraints(t.Row())})
		}
		return nil

	case *types.INamed:
		// leftover fields on a declared type were consistency constraints,
		// already validated against the declaration during unification
		return &types.Named{Name: t.Name}

	case *types.ILit:
		if t.Row().Len() != 0 {
			l.errs = append(l.errs, &InvalidRecordFieldsError{Type: t, Fields: rowConstraints(t.Row())})
			return nil
		}
		return &types.Lit{Kind: t.Kind}

	case *types.IArrow:
		if t.Row().Len() != 0 {
			l.errs = append(l.errs, &InvalidRecordFieldsError{Type: t, Fields: rowConstraints(t.Row())})
			return nil
		}
		arg := l.lower(t.Arg)
		ret := l.lower(t.Return)
		if arg == nil || ret == nil {
			return nil
		}
		return &types.Arrow{Arg: arg, Return: ret}

	case *types.IList:
		if t.Row().Len() != 0 {
			l.errs = append(l.errs, &InvalidRecordFieldsError{Type: t, Fields: rowConstraints(t.Row())})
			return nil
		}
		elem := l.lower(t.Elem)
		if elem == nil {
			return nil
		}
		return &types.List{Elem: elem}
	}
	return nil
}

// resolve applies the substitutions to a node's inference type, lowers it,
// and assigns the result.
func (l *lowerer) resolve(set func(types.IType, types.Type), it types.IType) {
	if it == nil {
		return
	}
	resolved := l.subs.Apply(it)
	t := l.lower(resolved)
	set(resolved, t)
}

// annotateExpr substitutes and lowers every node of e, in pre-order.
func (l *lowerer) annotateExpr(e ast.Expr) {
	l.resolve(func(it types.IType, t types.Type) {
		e.SetIType(it)
		if t != nil {
			e.SetType(t)
		}
	}, e.IType())

	switch e := e.(type) {
	case *ast.Lam:
		l.annotateExpr(e.Body)
	case *ast.App:
		l.annotateExpr(e.Func)
		l.annotateExpr(e.Arg)
	case *ast.List:
		for _, el := range e.Elems {
			l.annotateExpr(el)
		}
	case *ast.MapList:
		l.annotateExpr(e.Func)
		l.annotateExpr(e.List)
	case *ast.Con:
		for _, arg := range e.Args {
			l.annotateExpr(arg)
		}
	case *ast.Case:
		l.annotateExpr(e.Scrutinee)
		for _, alt := range e.Alts {
			l.annotatePattern(alt.Pattern)
			l.annotateExpr(alt.Body)
		}
	case *ast.Prj:
		l.annotateExpr(e.Record)
	}
}

func (l *lowerer) annotatePattern(p ast.Pattern) {
	l.resolve(func(it types.IType, t types.Type) {
		p.SetIType(it)
		if t != nil {
			p.SetType(t)
		}
	}, p.IType())

	if p, ok := p.(*ast.PatternCon); ok {
		for _, sub := range p.Patterns {
			l.annotatePattern(sub)
		}
	}
}
