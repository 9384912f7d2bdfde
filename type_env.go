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
	"github.com/charleso/projector-1/ast"
	"github.com/charleso/projector-1/types"
)

// TypeEnv contains mappings from names to already-resolved types, supplied by
// previously checked batches (for instance, other modules). Environments may
// be layered; lookups fall through to the parent.
//
// A type-environment cannot be used concurrently for checking; to share a
// type-environment across threads, create a new type-environment for each
// thread which inherits from the shared environment.
type TypeEnv struct {
	// Resolved types in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from names to resolved types in the current type-environment
	Types map[ast.Name]types.Type
}

// Create a type-environment. The new environment will inherit bindings from
// the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	return &TypeEnv{
		Parent: parent,
		Types:  make(map[ast.Name]types.Type),
	}
}

// Add a resolved type for a name to the current environment.
func (e *TypeEnv) Add(n ast.Name, t types.Type) {
	e.Types[n] = t
}

// Lookup a name in the environment and its parents.
func (e *TypeEnv) Lookup(n ast.Name) (types.Type, bool) {
	for env := e; env != nil; env = env.Parent {
		if t, ok := env.Types[n]; ok {
			return t, true
		}
	}
	return nil, false
}
