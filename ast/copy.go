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

package ast

// CopyExpr returns a deep copy of an expression, preserving annotations and
// any types already assigned. Checking annotates a copy so that input
// expressions stay immutable.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *Lit:
		return &Lit{e.Ann, e.Value, e.it, e.inferred}

	case *Var:
		return &Var{e.Ann, e.Name, e.it, e.inferred}

	case *Lam:
		return &Lam{e.Ann, e.Arg, e.ArgType, CopyExpr(e.Body), e.it, e.inferred}

	case *App:
		return &App{e.Ann, CopyExpr(e.Func), CopyExpr(e.Arg), e.it, e.inferred}

	case *List:
		elems := make([]Expr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = CopyExpr(el)
		}
		return &List{e.Ann, e.Elem, elems, e.it, e.inferred}

	case *MapList:
		return &MapList{e.Ann, CopyExpr(e.Func), CopyExpr(e.List), e.it, e.inferred}

	case *Con:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CopyExpr(arg)
		}
		return &Con{e.Ann, e.Constructor, e.TypeName, args, e.it, e.inferred}

	case *Case:
		alts := make([]Alt, len(e.Alts))
		for i, alt := range e.Alts {
			alts[i] = Alt{CopyPattern(alt.Pattern), CopyExpr(alt.Body)}
		}
		return &Case{e.Ann, CopyExpr(e.Scrutinee), alts, e.it, e.inferred}

	case *Prj:
		return &Prj{e.Ann, CopyExpr(e.Record), e.Field, e.it, e.inferred}

	case *Foreign:
		return &Foreign{e.Ann, e.Name, e.ForeignType, e.it, e.inferred}
	}
	return e
}

// CopyPattern returns a deep copy of a pattern.
func CopyPattern(p Pattern) Pattern {
	switch p := p.(type) {
	case *PatternVar:
		return &PatternVar{p.Ann, p.Name, p.it, p.inferred}

	case *PatternCon:
		pats := make([]Pattern, len(p.Patterns))
		for i, sub := range p.Patterns {
			pats[i] = CopyPattern(sub)
		}
		return &PatternCon{p.Ann, p.Constructor, pats, p.it, p.inferred}
	}
	return p
}
