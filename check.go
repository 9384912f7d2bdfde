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
	"sort"

	set "github.com/hashicorp/go-set"

	"github.com/charleso/projector-1/ast"
	"github.com/charleso/projector-1/types"
)

// TypeCheck checks a single expression against the declarations and returns
// its outer type, or the accumulated type errors as an ErrorList.
func TypeCheck(decls types.Decls, e ast.Expr) (types.Type, error) {
	root, err := TypeTree(decls, e)
	if err != nil {
		return nil, err
	}
	return root.Type(), nil
}

// TypeTree checks a single expression and returns a copy annotated with a
// fully resolved type at every node, or the accumulated type errors as an
// ErrorList. The input expression is not modified; source annotations are
// preserved on the copy.
//
// Names with no binder in e are free: each use produces a FreeVariableError.
func TypeTree(decls types.Decls, e ast.Expr) (ast.Expr, error) {
	root, cs, assume, errs := GenerateConstraints(decls, e)

	for _, n := range assume.Names() {
		for _, u := range assume.Lookup(n) {
			errs = append(errs, &FreeVariableError{Name: n, Ann: u.Annot()})
		}
	}

	store, solveErrs := SolveConstraints(decls, cs)
	errs = append(errs, solveErrs...)

	lw := &lowerer{subs: NewSubstitutions(store)}
	lw.annotateExpr(root)
	errs = append(errs, lw.errs...)

	if len(errs) != 0 {
		return nil, errs
	}
	return root, nil
}

// TypeCheckAll checks a batch of named definitions with top-level letrec
// semantics: every name in the batch is visible to every definition, without
// pre-declaration. Returns annotated copies of the definitions by name, or
// the accumulated type errors as an ErrorList.
func TypeCheckAll(decls types.Decls, exprs map[ast.Name]ast.Expr) (map[ast.Name]ast.Expr, error) {
	return TypeCheckIncremental(decls, nil, exprs)
}

// TypeCheckIncremental checks a batch of named definitions like TypeCheckAll,
// resolving names that are not defined in the batch against the known
// type-environment. Names found in neither produce a FreeVariableError per
// use-site.
//
// Definitions are processed in sorted order by name, so results and error
// lists are deterministic.
func TypeCheckIncremental(decls types.Decls, known *TypeEnv, exprs map[ast.Name]ast.Expr) (map[ast.Name]ast.Expr, error) {
	g := newGenerator(decls)

	names := make([]ast.Name, 0, len(exprs))
	for n := range exprs {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	defined := set.From(names)

	// one shared session across the batch
	roots := make(map[ast.Name]ast.Expr, len(exprs))
	inferred := make(map[ast.Name]types.IType, len(exprs))
	for _, n := range names {
		root := ast.CopyExpr(exprs[n])
		inferred[n] = g.expr(root)
		roots[n] = root
	}
	errs := g.errs

	// discharge assumptions against the batch and the known environment
	cs := g.constraints
	for _, n := range g.assume.Names() {
		uses := g.assume.Lookup(n)
		if defined.Contains(n) {
			for _, u := range uses {
				cs = append(cs, Constraint{Left: u, Right: inferred[n]})
			}
			continue
		}
		if t, ok := known.Lookup(n); ok {
			for _, u := range uses {
				cs = append(cs, Constraint{Left: u, Right: types.LiftType(t, u.Annot())})
			}
			continue
		}
		for _, u := range uses {
			errs = append(errs, &FreeVariableError{Name: n, Ann: u.Annot()})
		}
	}

	store, solveErrs := SolveConstraints(decls, cs)
	errs = append(errs, solveErrs...)

	subs := NewSubstitutions(store)
	for _, n := range names {
		lw := &lowerer{subs: subs}
		lw.annotateExpr(roots[n])
		errs = append(errs, lw.errs...)
	}

	if len(errs) != 0 {
		return nil, errs
	}
	return roots, nil
}
