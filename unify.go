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
	set "github.com/hashicorp/go-set"

	"github.com/charleso/projector-1/types"
)

type unifier struct {
	store *types.Store
	decls types.Decls
}

// mgu unifies two inference types, merging equivalence classes in the store.
// Dispatch happens on the class representatives of both sides.
func (u *unifier) mgu(a, b types.IType) error {
	a, b = u.store.Repr(a), u.store.Repr(b)

	if av, ok := a.(*types.IVar); ok {
		return u.unifyVar(av, b)
	}
	if bv, ok := b.(*types.IVar); ok {
		return u.unifyVar(bv, a)
	}

	switch a := a.(type) {
	case *types.INamed:
		if bn, ok := b.(*types.INamed); ok && a.Name == bn.Name {
			merged, err := u.unifyRows(a.Row(), bn.Row())
			return combineErrs(err, u.checkNamedRow(a, merged))
		}

	case *types.ILit:
		if bl, ok := b.(*types.ILit); ok && a.Kind == bl.Kind {
			return u.noFields(a, bl)
		}

	case *types.IArrow:
		if ba, ok := b.(*types.IArrow); ok {
			if err := u.noFields(a, ba); err != nil {
				return err
			}
			return combineErrs(u.mgu(a.Arg, ba.Arg), u.mgu(a.Return, ba.Return))
		}

	case *types.IList:
		if bl, ok := b.(*types.IList); ok {
			if err := u.noFields(a, bl); err != nil {
				return err
			}
			return u.mgu(a.Elem, bl.Elem)
		}
	}

	return &UnificationError{Left: a, Right: b}
}

// unifyVar unifies a variable (already its class representative in the usual
// path) with another type.
func (u *unifier) unifyVar(v *types.IVar, other types.IType) error {
	rep := u.store.Repr(v)
	if rv, ok := rep.(*types.IVar); ok {
		if rv.Id == v.Id {
			return u.safeUnion(v, other, rv.Row())
		}
		return u.mgu(rep, other)
	}
	// the class already resolved to a known shape; refresh the class with the
	// variable's own pending fields, then unify the shape with the other side
	if err := u.safeUnion(v, rep, v.Fields); err != nil {
		return err
	}
	return u.mgu(u.store.Repr(v), other)
}

// safeUnion merges the class of variable v with that of other, after the
// occurs check, carrying the union of both sides' field constraints.
func (u *unifier) safeUnion(v *types.IVar, other types.IType, rows types.FieldMap) error {
	if ov, ok := other.(*types.IVar); ok && ov.Id == v.Id {
		return nil
	}
	if u.occurs(v.Id, other) {
		return &InfiniteTypeError{Var: v, Type: other}
	}
	rep := u.store.Repr(other)
	merged, err := u.unifyRows(rows, rep.Row())
	if err != nil {
		return err
	}
	// accumulated fields flowing into a declared type must name declared
	// record fields; commit the union either way so checking can continue
	var rowErr error
	if named, ok := rep.(*types.INamed); ok {
		rowErr = u.checkNamedRow(named, merged)
	}
	u.store.Union(merged, u.store.Point(v), u.store.Point(other))
	return rowErr
}

// checkNamedRow rejects field constraints that a declared type cannot
// satisfy: any field on a variant, an undeclared field on a record.
func (u *unifier) checkNamedRow(t *types.INamed, row types.FieldMap) error {
	if row.Len() == 0 {
		return nil
	}
	decl, ok := u.decls.Lookup(t.Name)
	if !ok {
		// the generator has already reported the undeclared type
		return nil
	}
	switch decl := decl.(type) {
	case *types.RecordDecl:
		var unknown []FieldConstraint
		row.Range(func(name types.FieldName, ft types.IType) bool {
			if _, ok := decl.Lookup(name); !ok {
				unknown = append(unknown, FieldConstraint{Name: name, Type: ft})
			}
			return true
		})
		if len(unknown) != 0 {
			return &InvalidRecordFieldsError{Type: t, Fields: unknown}
		}
	case *types.VariantDecl:
		return &InvalidRecordFieldsError{Type: t, Fields: rowConstraints(row)}
	}
	return nil
}

// occurs reports whether variable id is mentioned anywhere reachable through
// arrow, list, variable, or field-constraint children of t.
func (u *unifier) occurs(id int, t types.IType) bool {
	return u.occursIn(id, t, set.New[int](8))
}

func (u *unifier) occursIn(id int, t types.IType, visited *set.Set[int]) bool {
	if v, ok := t.(*types.IVar); ok {
		if v.Id == id {
			return true
		}
		if !visited.Insert(v.Id) {
			return false
		}
		rep := u.store.Repr(v)
		if rv, ok := rep.(*types.IVar); ok && rv.Id == v.Id {
			// the class row is the authoritative superset of the variable's own
			return u.rowOccurs(id, rv.Row(), visited)
		}
		return u.occursIn(id, rep, visited)
	}

	switch t := t.(type) {
	case *types.IArrow:
		if u.occursIn(id, t.Arg, visited) || u.occursIn(id, t.Return, visited) {
			return true
		}
	case *types.IList:
		if u.occursIn(id, t.Elem, visited) {
			return true
		}
	}
	return u.rowOccurs(id, t.Row(), visited)
}

func (u *unifier) rowOccurs(id int, row types.FieldMap, visited *set.Set[int]) bool {
	found := false
	row.Range(func(_ types.FieldName, ft types.IType) bool {
		found = u.occursIn(id, ft, visited)
		return !found
	})
	return found
}

// unifyRows merges two field-constraint lists by name. Fields present in both
// lists have their types unified; the result carries the union of the keys,
// with shared keys pointing at the updated representative.
func (u *unifier) unifyRows(a, b types.FieldMap) (types.FieldMap, error) {
	if a.Len() == 0 {
		return b, nil
	}
	if b.Len() == 0 {
		return a, nil
	}
	var errs ErrorList
	mb := types.NewFieldMapBuilder()
	a.Range(func(name types.FieldName, ta types.IType) bool {
		if tb, ok := b.Get(name); ok {
			if err := u.mgu(ta, tb); err != nil {
				errs = appendErr(errs, err)
			}
			mb.Set(name, u.store.Repr(ta))
			return true
		}
		mb.Set(name, ta)
		return true
	})
	b.Range(func(name types.FieldName, tb types.IType) bool {
		if _, ok := a.Get(name); !ok {
			mb.Set(name, tb)
		}
		return true
	})
	return mb.Build(), errs.ErrorOrNil()
}

// noFields rejects field constraints on shapes that cannot carry fields.
func (u *unifier) noFields(a, b types.IType) error {
	var errs ErrorList
	if a.Row().Len() != 0 {
		errs = append(errs, &InvalidRecordFieldsError{Type: a, Fields: rowConstraints(a.Row())})
	}
	if b.Row().Len() != 0 {
		errs = append(errs, &InvalidRecordFieldsError{Type: b, Fields: rowConstraints(b.Row())})
	}
	return errs.ErrorOrNil()
}

func appendErr(list ErrorList, err error) ErrorList {
	if err == nil {
		return list
	}
	if el, ok := err.(ErrorList); ok {
		return append(list, el...)
	}
	return append(list, err)
}

func combineErrs(errs ...error) error {
	var list ErrorList
	for _, err := range errs {
		list = appendErr(list, err)
	}
	return list.ErrorOrNil()
}
