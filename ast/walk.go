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

// Walk visits e and every sub-expression of e in pre-order. Patterns within
// case alternatives are visited through WalkPatterns.
// If f returns false, the walk will be stopped.
func Walk(e Expr, f func(Expr) bool) bool {
	if !f(e) {
		return false
	}
	switch e := e.(type) {
	case *Lam:
		return Walk(e.Body, f)

	case *App:
		return Walk(e.Func, f) && Walk(e.Arg, f)

	case *List:
		for _, el := range e.Elems {
			if !Walk(el, f) {
				return false
			}
		}

	case *MapList:
		return Walk(e.Func, f) && Walk(e.List, f)

	case *Con:
		for _, arg := range e.Args {
			if !Walk(arg, f) {
				return false
			}
		}

	case *Case:
		if !Walk(e.Scrutinee, f) {
			return false
		}
		for _, alt := range e.Alts {
			if !Walk(alt.Body, f) {
				return false
			}
		}

	case *Prj:
		return Walk(e.Record, f)
	}
	return true
}

// WalkPatterns visits p and every sub-pattern of p in pre-order.
// If f returns false, the walk will be stopped.
func WalkPatterns(p Pattern, f func(Pattern) bool) bool {
	if !f(p) {
		return false
	}
	if p, ok := p.(*PatternCon); ok {
		for _, sub := range p.Patterns {
			if !WalkPatterns(sub, f) {
				return false
			}
		}
	}
	return true
}
