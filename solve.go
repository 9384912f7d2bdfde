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
	"os"

	"github.com/charleso/projector-1/types"
)

// SolveConstraints unifies every constraint in order against a fresh
// union-find store; the declarations validate field constraints that resolve
// against declared types. Constraints are processed independently, so one
// failure does not hide diagnostics from the rest; errors are accumulated in
// constraint order. Exposed so the solver can be exercised independently of
// the generator.
func SolveConstraints(decls types.Decls, cs []Constraint) (*types.Store, ErrorList) {
	u := &unifier{store: types.NewStore(), decls: decls}
	var errs ErrorList
	for _, c := range cs {
		if err := u.mgu(c.Left, c.Right); err != nil {
			errs = appendErr(errs, err)
		}
	}
	if dumpDebugOutput {
		dumpSession(os.Stderr, cs, u.store)
	}
	return u.store, errs
}
