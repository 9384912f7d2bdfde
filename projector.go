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

// projector provides the type inference and checking core for a template
// language compiler.
//
// The checker is a constraint-based Hindley-Milner-style engine extended with
// field constraints for records: a unification variable can accumulate
// must-have-field requirements before it is resolved. Constraint generation
// proceeds bottom-up over assumption sets, so mutually recursive top-level
// bindings need no pre-existing environment; solving runs over a union-find
// store with an occurs check, accumulating errors instead of stopping at the
// first.
//
// Polymorphism at let-bindings is not supported: every unification variable
// left unresolved after solving is an inference error. Subtyping, type
// classes, and higher-kinded types are likewise out of scope.
//
// Checking an expression flows through four passes: constraint generation,
// solving, substitution, and lowering into surface types. The entry points
// TypeCheck, TypeTree, TypeCheckAll, and TypeCheckIncremental package the
// passes; GenerateConstraints, SolveConstraints, and Substitutions expose
// them individually.
//
// A check session owns all of its mutable state (name supply, assumption set,
// union-find store) exclusively; sessions for unrelated batches may run in
// parallel.
package projector
