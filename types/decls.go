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
	"github.com/benbjohnson/immutable"
)

// Decl is a type declaration: either a variant or a record.
type Decl interface {
	DeclName() string
}

var (
	_ Decl = (*VariantDecl)(nil)
	_ Decl = (*RecordDecl)(nil)
)

// Variant declaration: an ordered list of constructors.
type VariantDecl struct {
	Constructors []ConstructorDef
}

func (d *VariantDecl) DeclName() string { return "Variant" }

// Lookup a constructor by name within the variant.
func (d *VariantDecl) Lookup(c Constructor) (ConstructorDef, bool) {
	for _, def := range d.Constructors {
		if def.Name == c {
			return def, true
		}
	}
	return ConstructorDef{}, false
}

// ConstructorDef is a named constructor with its declared argument types.
type ConstructorDef struct {
	Name Constructor
	Args []Type
}

// Record declaration: an ordered list of fields.
type RecordDecl struct {
	Fields []FieldDef
}

func (d *RecordDecl) DeclName() string { return "Record" }

// Lookup a field by name within the record.
func (d *RecordDecl) Lookup(n FieldName) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.Name == n {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldDef is a named record field with its declared type.
type FieldDef struct {
	Name FieldName
	Type Type
}

// ConstructorInfo is the result of a reverse constructor lookup.
type ConstructorInfo struct {
	Type Type
	Name TypeName
	Args []Type
}

var emptyDeclMap = immutable.NewSortedMap(nil)

// Decls maps type names to declarations, with a reverse index from variant
// constructor names to their owning types. Entries are iterated in sorted
// order by type name.
type Decls struct {
	m    *immutable.SortedMap
	cons map[Constructor]ConstructorInfo
}

// Create a declaration table. The reverse constructor index is built once, up
// front; record type names are not indexed as constructors.
func NewDecls(decls map[TypeName]Decl) Decls {
	m := emptyDeclMap
	cons := make(map[Constructor]ConstructorInfo)
	for name, decl := range decls {
		m = m.Set(string(name), decl)
		if v, ok := decl.(*VariantDecl); ok {
			for _, def := range v.Constructors {
				cons[def.Name] = ConstructorInfo{
					Type: &Named{Name: name},
					Name: name,
					Args: def.Args,
				}
			}
		}
	}
	return Decls{m: m, cons: cons}
}

// Get the number of declarations in the table.
func (d Decls) Len() int {
	if d.m == nil {
		return 0
	}
	return d.m.Len()
}

// Get the declaration for a type name.
func (d Decls) Lookup(n TypeName) (Decl, bool) {
	if d.m == nil {
		return nil, false
	}
	decl, ok := d.m.Get(string(n))
	if !ok {
		return nil, false
	}
	return decl.(Decl), true
}

// Get the owning type and declared argument types for a variant constructor.
func (d Decls) LookupConstructor(c Constructor) (ConstructorInfo, bool) {
	info, ok := d.cons[c]
	return info, ok
}

// Iterate over declarations in sorted order by type name.
// If f returns false, iteration will be stopped.
func (d Decls) Range(f func(TypeName, Decl) bool) {
	if d.m == nil {
		return
	}
	iter := d.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(TypeName(k.(string)), v.(Decl)) {
			return
		}
	}
}
