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
	"github.com/charleso/projector-1/types"
)

// Pattern is the base for all case patterns.
type Pattern interface {
	// Name of the syntax-type of the pattern.
	PatternName() string
	// Annot returns the source annotation of the pattern.
	Annot() interface{}
	// IType returns the inference type of a pattern during a check session.
	IType() types.IType
	// Assign an inference type to a pattern. Assignments should occur indirectly, during constraint generation.
	SetIType(types.IType)
	// Type returns the inferred type of a pattern. Pattern types are only available after checking.
	Type() types.Type
	// Assign a type to a pattern. Type assignments should occur indirectly, during lowering.
	SetType(types.Type)
}

var (
	_ Pattern = (*PatternVar)(nil)
	_ Pattern = (*PatternCon)(nil)
)

// Binding pattern: `x`
type PatternVar struct {
	Ann      interface{}
	Name     Name
	it       types.IType
	inferred types.Type
}

// "PatternVar"
func (p *PatternVar) PatternName() string { return "PatternVar" }
func (p *PatternVar) Annot() interface{} { return p.Ann }
func (p *PatternVar) IType() types.IType { return p.it }
func (p *PatternVar) SetIType(t types.IType) { p.it = t }
func (p *PatternVar) Type() types.Type { return p.inferred }
func (p *PatternVar) SetType(t types.Type) { p.inferred = t }

// Constructor pattern: `C p1 .. pn`
type PatternCon struct {
	Ann         interface{}
	Constructor types.Constructor
	Patterns    []Pattern
	it          types.IType
	inferred    types.Type
}

// "PatternCon"
func (p *PatternCon) PatternName() string { return "PatternCon" }
func (p *PatternCon) Annot() interface{} { return p.Ann }
func (p *PatternCon) IType() types.IType { return p.it }
func (p *PatternCon) SetIType(t types.IType) { p.it = t }
func (p *PatternCon) Type() types.Type { return p.inferred }
func (p *PatternCon) SetType(t types.Type) { p.inferred = t }

// BindersOf collects the names bound by a pattern, left to right.
func BindersOf(p Pattern) []Name {
	var names []Name
	var walk func(Pattern)
	walk = func(p Pattern) {
		switch p := p.(type) {
		case *PatternVar:
			names = append(names, p.Name)
		case *PatternCon:
			for _, sub := range p.Patterns {
				walk(sub)
			}
		}
	}
	walk(p)
	return names
}
