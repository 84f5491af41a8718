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

// Metavariable: a placeholder for an omitted argument, solved by unification, proof search,
// or a default. A linked metavariable has been solved.
type Var struct {
	link Term
	typ  Term
	name string
	id   int32
}

// Create a new unbound metavariable standing for the named parameter, with the given type.
func NewVar(id int, name string, typ Term) *Var {
	return &Var{id: int32(id), name: name, typ: typ}
}

// Id returns the unique identifier of the metavariable.
func (tv *Var) Id() int { return int(tv.id) }

// Name returns the name of the parameter which the metavariable stands for.
func (tv *Var) Name() string { return tv.name }

// Type returns the expected type of the metavariable's solution.
func (tv *Var) Type() Term { return tv.typ }

// Link returns the solution of the metavariable, if the metavariable is solved.
func (tv *Var) Link() Term { return tv.link }

func (tv *Var) IsUnboundVar() bool { return tv.link == nil }
func (tv *Var) IsLinkVar() bool    { return tv.link != nil }

// Set the solution of the metavariable.
func (tv *Var) SetLink(t Term) { tv.link = t }
