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

import (
	"strings"

	"github.com/charleso/projector-1/types"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, e, false)
	return sb.String()
}

// PatternString returns a string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, p, false)
	return sb.String()
}

func exprString(sb *strings.Builder, e Expr, nested bool) {
	switch e := e.(type) {
	case *Lit:
		sb.WriteString(e.Value.Syntax())

	case *Var:
		sb.WriteString(string(e.Name))

	case *Lam:
		if nested {
			sb.WriteByte('(')
		}
		sb.WriteByte('\\')
		sb.WriteString(string(e.Arg))
		if e.ArgType != nil {
			sb.WriteString(" : ")
			sb.WriteString(types.TypeString(e.ArgType))
		}
		sb.WriteString(" -> ")
		exprString(sb, e.Body, false)
		if nested {
			sb.WriteByte(')')
		}

	case *App:
		if nested {
			sb.WriteByte('(')
		}
		exprString(sb, e.Func, true)
		sb.WriteByte(' ')
		exprString(sb, e.Arg, true)
		if nested {
			sb.WriteByte(')')
		}

	case *List:
		sb.WriteByte('[')
		for i, el := range e.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, el, false)
		}
		sb.WriteByte(']')

	case *MapList:
		if nested {
			sb.WriteByte('(')
		}
		sb.WriteString("map ")
		exprString(sb, e.Func, true)
		sb.WriteByte(' ')
		exprString(sb, e.List, true)
		if nested {
			sb.WriteByte(')')
		}

	case *Con:
		if nested && len(e.Args) > 0 {
			sb.WriteByte('(')
		}
		sb.WriteString(string(e.Constructor))
		for _, arg := range e.Args {
			sb.WriteByte(' ')
			exprString(sb, arg, true)
		}
		if nested && len(e.Args) > 0 {
			sb.WriteByte(')')
		}

	case *Case:
		if nested {
			sb.WriteByte('(')
		}
		sb.WriteString("case ")
		exprString(sb, e.Scrutinee, true)
		sb.WriteString(" of")
		for _, alt := range e.Alts {
			sb.WriteString(" | ")
			patternString(sb, alt.Pattern, false)
			sb.WriteString(" -> ")
			exprString(sb, alt.Body, false)
		}
		if nested {
			sb.WriteByte(')')
		}

	case *Prj:
		exprString(sb, e.Record, true)
		sb.WriteByte('.')
		sb.WriteString(string(e.Field))

	case *Foreign:
		sb.WriteString(string(e.Name))
	}
}

func patternString(sb *strings.Builder, p Pattern, nested bool) {
	switch p := p.(type) {
	case *PatternVar:
		sb.WriteString(string(p.Name))

	case *PatternCon:
		if nested && len(p.Patterns) > 0 {
			sb.WriteByte('(')
		}
		sb.WriteString(string(p.Constructor))
		for _, sub := range p.Patterns {
			sb.WriteByte(' ')
			patternString(sb, sub, true)
		}
		if nested && len(p.Patterns) > 0 {
			sb.WriteByte(')')
		}
	}
}
