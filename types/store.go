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

// Point is a node in a union-find equivalence class. The descriptor of a
// class is held on its root.
type Point struct {
	parent *Point
	desc   IType
	rank   int
}

func (p *Point) root() *Point {
	r := p
	for r.parent != nil {
		r = r.parent
	}
	// path compression
	for p.parent != nil {
		next := p.parent
		p.parent = r
		p = next
	}
	return r
}

// Descriptor returns the representative descriptor of the point's class.
func (p *Point) Descriptor() IType { return p.root().desc }

// Store is a union-find store over inference types, local to one check
// session. Variables share classes by id; known shapes get fresh singleton
// classes.
//
// A store cannot be used concurrently.
type Store struct {
	points map[int]*Point
}

func NewStore() *Store {
	return &Store{points: make(map[int]*Point)}
}

// Get the point for an inference type, creating one for a variable id on
// first use.
func (s *Store) Point(t IType) *Point {
	if v, ok := t.(*IVar); ok {
		if p, ok := s.points[v.Id]; ok {
			return p
		}
		p := &Point{desc: t}
		s.points[v.Id] = p
		return p
	}
	return &Point{desc: t}
}

// Repr returns the representative descriptor of t's class. A variable with no
// point yet, or any known shape, is its own representative.
func (s *Store) Repr(t IType) IType {
	if v, ok := t.(*IVar); ok {
		if p, ok := s.points[v.Id]; ok {
			return p.Descriptor()
		}
	}
	return t
}

// Union merges the classes of a and b. The merged class's descriptor takes
// b's current representative shape, carrying the supplied field list. The
// unifier computes fields by merging both sides' rows before committing.
func (s *Store) Union(fields FieldMap, a, b *Point) {
	ra, rb := a.root(), b.root()
	desc := rb.desc.WithRow(fields)
	if ra == rb {
		rb.desc = desc
		return
	}
	if ra.rank > rb.rank {
		rb.parent = ra
		ra.desc = desc
		return
	}
	ra.parent = rb
	if ra.rank == rb.rank {
		rb.rank++
	}
	rb.desc = desc
}

// Ids returns the variable ids with points in the store, in unspecified
// order.
func (s *Store) Ids() []int {
	ids := make([]int, 0, len(s.points))
	for id := range s.points {
		ids = append(ids, id)
	}
	return ids
}
