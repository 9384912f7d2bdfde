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
	"github.com/pkg/errors"

	"github.com/charleso/projector-1/ast"
	"github.com/charleso/projector-1/types"
)

// Constraint is an equality between two inference types, emitted by the
// generator and discharged by the solver.
type Constraint struct {
	Left  types.IType
	Right types.IType
}

// nameSupply produces unique variable ids within a check session.
type nameSupply struct {
	next int
}

func (s *nameSupply) fresh(ann interface{}) *types.IVar {
	id := s.next
	s.next++
	return &types.IVar{Ann: ann, Id: id, Fields: types.EmptyFieldMap}
}

// generator walks an expression bottom-up, assigning an inference type to
// every node, emitting equality constraints, and recording assumptions for
// free names.
//
// A generator cannot be used concurrently.
type generator struct {
	decls       types.Decls
	supply      *nameSupply
	assume      *Assumptions
	constraints []Constraint
	errs        ErrorList
}

func newGenerator(decls types.Decls) *generator {
	return &generator{
		decls:  decls,
		supply: &nameSupply{},
		assume: NewAssumptions(),
	}
}

func (g *generator) equal(t1, t2 types.IType) {
	g.constraints = append(g.constraints, Constraint{Left: t1, Right: t2})
}

func (g *generator) errorf(err error) {
	g.errs = append(g.errs, err)
}

// expr assigns inference types throughout e and returns e's inference type.
// Errors found along the way are accumulated; an erroneous node receives a
// fresh variable (or, on a constructor arity error, its declared type) so
// that checking of independent branches can continue.
func (g *generator) expr(e ast.Expr) types.IType {
	t := g.inferExpr(e)
	e.SetIType(t)
	return t
}

func (g *generator) inferExpr(e ast.Expr) types.IType {
	switch e := e.(type) {
	case *ast.Lit:
		return &types.ILit{Ann: e.Ann, Kind: e.Value.Ground(), Fields: types.EmptyFieldMap}

	case *ast.Var:
		t := g.supply.fresh(e.Ann)
		g.assume.Add(e.Name, t)
		return t

	case *ast.Lam:
		var ta types.IType
		if e.ArgType != nil {
			ta = types.LiftType(e.ArgType, e.Ann)
		} else {
			ta = g.supply.fresh(e.Ann)
		}
		var tbody types.IType
		collected := g.assume.WithBindings([]ast.Name{e.Arg}, func() {
			tbody = g.expr(e.Body)
		})
		for _, u := range collected[0] {
			g.equal(ta, u)
		}
		return &types.IArrow{Ann: e.Ann, Arg: ta, Return: tbody, Fields: types.EmptyFieldMap}

	case *ast.App:
		tf := g.expr(e.Func)
		tg := g.expr(e.Arg)
		t := g.supply.fresh(e.Ann)
		g.equal(&types.IArrow{Ann: e.Ann, Arg: tg, Return: t, Fields: types.EmptyFieldMap}, tf)
		return t

	case *ast.List:
		te := types.LiftType(e.Elem, e.Ann)
		for _, el := range e.Elems {
			g.equal(te, g.expr(el))
		}
		return &types.IList{Ann: e.Ann, Elem: te, Fields: types.EmptyFieldMap}

	case *ast.MapList:
		tf := g.expr(e.Func)
		tg := g.expr(e.List)
		ta := g.supply.fresh(e.Ann)
		tb := g.supply.fresh(e.Ann)
		g.equal(&types.IArrow{Ann: e.Ann, Arg: ta, Return: tb, Fields: types.EmptyFieldMap}, tf)
		g.equal(&types.IList{Ann: e.Ann, Elem: ta, Fields: types.EmptyFieldMap}, tg)
		return &types.IList{Ann: e.Ann, Elem: tb, Fields: types.EmptyFieldMap}

	case *ast.Con:
		return g.inferCon(e)

	case *ast.Case:
		ts := g.expr(e.Scrutinee)
		t := g.supply.fresh(e.Ann)
		for _, alt := range e.Alts {
			alt := alt
			g.assume.WithBindings(ast.BindersOf(alt.Pattern), func() {
				tbody := g.expr(alt.Body)
				g.pattern(alt.Pattern, ts)
				g.equal(t, tbody)
			})
		}
		return t

	case *ast.Prj:
		te := g.expr(e.Record)
		tp := g.supply.fresh(e.Ann)
		row := g.supply.fresh(e.Ann)
		g.equal(row.WithRow(types.SingletonFieldMap(e.Field, tp)), te)
		return tp

	case *ast.Foreign:
		return types.LiftType(e.ForeignType, e.Ann)
	}

	g.errorf(errors.Errorf("unhandled expression %s", e.ExprName()))
	return g.supply.fresh(e.Annot())
}

func (g *generator) inferCon(e *ast.Con) types.IType {
	// generate argument constraints first so their errors surface even when
	// the construction itself is malformed
	args := make([]types.IType, len(e.Args))
	for i, arg := range e.Args {
		args[i] = g.expr(arg)
	}

	decl, ok := g.decls.Lookup(e.TypeName)
	if !ok {
		g.errorf(&UndeclaredTypeError{Name: e.TypeName, Ann: e.Ann})
		return g.supply.fresh(e.Ann)
	}

	switch decl := decl.(type) {
	case *types.VariantDecl:
		def, ok := decl.Lookup(e.Constructor)
		if !ok {
			g.errorf(&BadConstructorNameError{Constructor: e.Constructor, TypeName: e.TypeName, Decl: decl, Ann: e.Ann})
			return g.supply.fresh(e.Ann)
		}
		if len(def.Args) != len(args) {
			g.errorf(&BadConstructorArityError{Constructor: e.Constructor, Decl: decl, Actual: len(args), Ann: e.Ann})
			return &types.INamed{Ann: e.Ann, Name: e.TypeName, Fields: types.EmptyFieldMap}
		}
		for i, declared := range def.Args {
			g.equal(types.LiftType(declared, e.Args[i].Annot()), args[i])
		}
		return &types.INamed{Ann: e.Ann, Name: e.TypeName, Fields: types.EmptyFieldMap}

	case *types.RecordDecl:
		// the record's type name acts as its sole constructor
		if types.Constructor(e.TypeName) != e.Constructor {
			g.errorf(&BadConstructorNameError{Constructor: e.Constructor, TypeName: e.TypeName, Decl: decl, Ann: e.Ann})
			return g.supply.fresh(e.Ann)
		}
		if len(decl.Fields) != len(args) {
			g.errorf(&BadConstructorArityError{Constructor: e.Constructor, Decl: decl, Actual: len(args), Ann: e.Ann})
			return &types.INamed{Ann: e.Ann, Name: e.TypeName, Fields: types.EmptyFieldMap}
		}
		// seed the node's field constraints with the declared fields, so a
		// projection on this very expression can be discharged
		fb := types.NewFieldMapBuilder()
		for i, f := range decl.Fields {
			declared := types.LiftType(f.Type, e.Args[i].Annot())
			g.equal(declared, args[i])
			fb.Set(f.Name, declared)
		}
		return &types.INamed{Ann: e.Ann, Name: e.TypeName, Fields: fb.Build()}
	}

	g.errorf(errors.Errorf("unhandled declaration %s for type %s", decl.DeclName(), e.TypeName))
	return g.supply.fresh(e.Ann)
}

// pattern discharges the assumptions a pattern's binders accumulated while the
// alternative body was generated, and constrains the pattern against the
// scrutinee's inference type.
func (g *generator) pattern(p ast.Pattern, scrutinee types.IType) {
	switch p := p.(type) {
	case *ast.PatternVar:
		for _, u := range g.assume.Lookup(p.Name) {
			g.equal(u, scrutinee)
		}
		p.SetIType(scrutinee)

	case *ast.PatternCon:
		info, ok := g.decls.LookupConstructor(p.Constructor)
		if !ok {
			g.errorf(&BadPatternConstructorError{Constructor: p.Constructor, Ann: p.Ann})
			p.SetIType(g.supply.fresh(p.Ann))
			return
		}
		owner := &types.INamed{Ann: p.Ann, Name: info.Name, Fields: types.EmptyFieldMap}
		p.SetIType(owner)
		g.equal(owner, scrutinee)
		if len(info.Args) != len(p.Patterns) {
			g.errorf(&BadPatternArityError{
				Constructor: p.Constructor,
				Type:        info.Type,
				Expected:    len(info.Args),
				Actual:      len(p.Patterns),
				Ann:         p.Ann,
			})
			return
		}
		for i, sub := range p.Patterns {
			g.pattern(sub, types.LiftType(info.Args[i], sub.Annot()))
		}
	}
}

// GenerateConstraints runs the constraint generator over a copy of e.
//
// The returned expression carries an inference type at every node. The
// assumption set holds the pending uses of names with no binder in e; the
// caller is responsible for discharging them. Exposed so the generator can be
// exercised independently of the solver.
func GenerateConstraints(decls types.Decls, e ast.Expr) (ast.Expr, []Constraint, *Assumptions, ErrorList) {
	g := newGenerator(decls)
	root := ast.CopyExpr(e)
	g.expr(root)
	return root, g.constraints, g.assume, g.errs
}
