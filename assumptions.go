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

	"github.com/charleso/projector-1/ast"
	"github.com/charleso/projector-1/types"
)

// Assumptions records the pending requirements of free names during bottom-up
// constraint generation: each use of a name contributes a fresh inference
// type, discharged later at the binding site.
//
// An assumption set cannot be used concurrently.
type Assumptions struct {
	m map[ast.Name][]types.IType
}

func NewAssumptions() *Assumptions {
	return &Assumptions{m: make(map[ast.Name][]types.IType)}
}

// Add appends a use of a name.
func (as *Assumptions) Add(n ast.Name, t types.IType) {
	as.m[n] = append(as.m[n], t)
}

// Lookup returns the recorded uses of a name, empty if absent.
func (as *Assumptions) Lookup(n ast.Name) []types.IType {
	return as.m[n]
}

// Delete removes all recorded uses of a name.
func (as *Assumptions) Delete(n ast.Name) {
	delete(as.m, n)
}

// Set replaces the recorded uses of a name.
func (as *Assumptions) Set(n ast.Name, ts []types.IType) {
	if len(ts) == 0 {
		delete(as.m, n)
		return
	}
	as.m[n] = ts
}

// Len returns the number of names with recorded uses.
func (as *Assumptions) Len() int { return len(as.m) }

// Names returns the names with recorded uses, sorted.
func (as *Assumptions) Names() []ast.Name {
	names := make([]ast.Name, 0, len(as.m))
	for n := range as.m {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// WithBindings scopes the given names for the duration of action: the names'
// current uses are saved and cleared, action runs, and the uses accumulated
// during action are collected and returned (aligned with names). The saved
// outer uses are restored afterwards, so enclosing uses of the same name are
// not lost.
func (as *Assumptions) WithBindings(names []ast.Name, action func()) [][]types.IType {
	saved := make([][]types.IType, len(names))
	for i, n := range names {
		saved[i] = as.m[n]
		as.Delete(n)
	}
	action()
	collected := make([][]types.IType, len(names))
	for i, n := range names {
		collected[i] = as.m[n]
		as.Set(n, saved[i])
	}
	return collected
}
