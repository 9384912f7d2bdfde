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

var emptyFieldMap = immutable.NewSortedMap(nil)

var EmptyFieldMap = FieldMap{emptyFieldMap}

// FieldMap contains immutable mappings from field names to inference types:
// the field constraints attached to an inference type. Entries are sorted by
// field name.
type FieldMap struct {
	m *immutable.SortedMap
}

func NewFieldMap() FieldMap { return FieldMap{emptyFieldMap} }

// Create a FieldMap with a single entry.
func SingletonFieldMap(name FieldName, t IType) FieldMap {
	return FieldMap{emptyFieldMap.Set(string(name), t)}
}

// Get the number of entries in the map.
func (m FieldMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type constrained for a field name.
func (m FieldMap) Get(name FieldName) (IType, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(string(name))
	if !ok {
		return nil, false
	}
	return t.(IType), true
}

// Iterate over entries in the map, in sorted order by field name.
// If f returns false, iteration will be stopped.
func (m FieldMap) Range(f func(FieldName, IType) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(FieldName(k.(string)), v.(IType)) {
			return
		}
	}
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m FieldMap) Builder() FieldMapBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyFieldMap
	}
	return FieldMapBuilder{immutable.NewSortedMapBuilder(imm)}
}

// FieldMapBuilder enables in-place updates of a map before finalization.
type FieldMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewFieldMapBuilder() FieldMapBuilder {
	return FieldMapBuilder{immutable.NewSortedMapBuilder(emptyFieldMap)}
}

// Get the number of entries in the builder.
func (b FieldMapBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Set the type for the given field name in the builder.
func (b FieldMapBuilder) Set(name FieldName, t IType) FieldMapBuilder {
	b.b.Set(string(name), t)
	return b
}

// Finalize the builder into an immutable map.
func (b FieldMapBuilder) Build() FieldMap {
	if b.b == nil {
		return EmptyFieldMap
	}
	return FieldMap{b.b.Map()}
}
