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
	"strconv"
	"strings"
)

// TypeString returns a string representation of a surface type.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, t, false)
	return sb.String()
}

func typeString(sb *strings.Builder, t Type, nested bool) {
	switch t := t.(type) {
	case *Lit:
		sb.WriteString(t.Kind.String())
	case *Named:
		sb.WriteString(string(t.Name))
	case *Arrow:
		if nested {
			sb.WriteByte('(')
		}
		typeString(sb, t.Arg, true)
		sb.WriteString(" -> ")
		typeString(sb, t.Return, false)
		if nested {
			sb.WriteByte(')')
		}
	case *List:
		sb.WriteByte('[')
		typeString(sb, t.Elem, false)
		sb.WriteByte(']')
	default:
		sb.WriteString("<invalid>")
	}
}

// ITypeString returns a string representation of an inference type.
// Unresolved variables print as t<id>; non-empty field constraints print in
// braces after the shape.
func ITypeString(t IType) string {
	var sb strings.Builder
	itypeString(&sb, t, false)
	return sb.String()
}

func itypeString(sb *strings.Builder, t IType, nested bool) {
	if t == nil {
		sb.WriteString("<nil>")
		return
	}
	switch t := t.(type) {
	case *IVar:
		sb.WriteByte('t')
		sb.WriteString(strconv.Itoa(t.Id))
	case *ILit:
		sb.WriteString(t.Kind.String())
	case *INamed:
		sb.WriteString(string(t.Name))
	case *IArrow:
		if nested {
			sb.WriteByte('(')
		}
		itypeString(sb, t.Arg, true)
		sb.WriteString(" -> ")
		itypeString(sb, t.Return, false)
		if nested {
			sb.WriteByte(')')
		}
	case *IList:
		sb.WriteByte('[')
		itypeString(sb, t.Elem, false)
		sb.WriteByte(']')
	}
	if t.Row().Len() == 0 {
		return
	}
	sb.WriteString(" {")
	first := true
	t.Row().Range(func(name FieldName, ft IType) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(string(name))
		sb.WriteString(": ")
		itypeString(sb, ft, false)
		return true
	})
	sb.WriteByte('}')
}
