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

// elab provides implicit argument resolution and universe checking for the core of a
// dependently-typed functional language.
//
// Elaboration fills every omitted argument of a call. Implicit arguments are solved by
// unification against the explicit arguments and the expected result type. Auto-implicit and
// default-implicit arguments which unification leaves open are found by a shallow proof
// search: hypotheses in the local context are tried innermost first, then equality goals are
// closed by reflexivity. Arguments of the wrong type may be wrapped by a single declared
// implicit conversion.
//
// Universe levels are inferred per checking unit. Each anonymous `Type` receives a level
// variable; the constraints collected while checking are solved by the universe package, which
// rejects any cycle through a strict constraint (e.g. `Type : Type`).
//
//
// Supported Features:
//
//   * Implicit, auto-implicit, and default-implicit parameters
//   * Named arguments for any parameter
//   * Dependent parameter types and reduction rules for definitional equality
//   * Implicit conversions, inserted at most once per argument
//   * Cumulative universes with inferred levels
//   * Deferred (open) obligations
//   * Parallel checking of independent units
//   * Foreign declarations over primitive types, and inert code-generation directives
//
//
// Links:
//
// Idris: A General Purpose Dependently Typed Programming Language (Brady, 2013): https://doi.org/10.1017/S095679681300018X
//
// Tarjan's strongly connected components algorithm: https://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm
package elab
