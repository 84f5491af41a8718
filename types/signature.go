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
	"errors"

	"github.com/wdamron/elab/universe"
)

// Plicity describes how an argument for a parameter is supplied.
type Plicity int

const (
	// Supplied positionally at the call site.
	Explicit Plicity = iota
	// Omitted; solved by unification.
	Implicit
	// Omitted; solved by unification, otherwise by the trivial proof search.
	Auto
	// Omitted; solved by unification, otherwise by the parameter's default tactic.
	Default
)

func (p Plicity) String() string {
	switch p {
	case Explicit:
		return "explicit"
	case Implicit:
		return "implicit"
	case Auto:
		return "auto"
	case Default:
		return "default"
	}
	return "invalid"
}

type TacticKind int

const (
	// Search the context for a matching hypothesis, then try reflexivity.
	Trivial TacticKind = iota
	// Use the given value.
	Exact
)

// Tactic produces a value for an omitted argument.
type Tactic struct {
	Kind TacticKind
	// Value is the term used by Exact. It may refer to earlier parameters by name.
	Value Term
}

// TrivialTactic is the tactic of every auto-implicit parameter.
var TrivialTactic = &Tactic{Kind: Trivial}

// Parameter of a declaration.
type Param struct {
	Name    string
	Type    Term
	Plicity Plicity
	// Default is required for Default parameters and ignored otherwise.
	Default *Tactic
}

// IsImplicit reports whether arguments for the parameter may be omitted.
func (p *Param) IsImplicit() bool { return p.Plicity != Explicit }

// Tactic returns the tactic used when unification leaves the parameter unsolved, or nil.
// Auto parameters are sugar for default parameters with the trivial tactic.
func (p *Param) Tactic() *Tactic {
	switch p.Plicity {
	case Auto:
		return TrivialTactic
	case Default:
		return p.Default
	}
	return nil
}

// Signature is the type of a declaration: an ordered sequence of parameters and a result
// type. Parameter and result types may refer to earlier parameters by name.
//
// A signature must not be modified after it is declared within a session.
type Signature struct {
	Name   string
	Params []Param
	Result Term
	// Constraints holds the finalized universe constraints of the unit which declared the
	// signature. Units which use the signature import them.
	Constraints []universe.Constraint
}

// Pi returns the signature as a dependent function type.
func (s *Signature) Pi() *Pi { return &Pi{Params: s.Params, Result: s.Result} }

// Param returns the index of the named parameter.
func (s *Signature) Param(name string) (int, bool) {
	for i := range s.Params {
		if s.Params[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// ExplicitCount returns the number of explicit parameters.
func (s *Signature) ExplicitCount() int {
	n := 0
	for i := range s.Params {
		if !s.Params[i].IsImplicit() {
			n++
		}
	}
	return n
}

// Validate checks that parameter names are unique and that every default parameter has a
// tactic.
func (s *Signature) Validate() error {
	if s.Name == "" {
		return errors.New("Signature must be named")
	}
	if s.Result == nil {
		return errors.New("Signature " + s.Name + " has no result type")
	}
	for i := range s.Params {
		p := &s.Params[i]
		if p.Type == nil {
			return errors.New("Parameter " + p.Name + " of " + s.Name + " has no type")
		}
		if p.Plicity == Default && p.Default == nil {
			return errors.New("Default parameter " + p.Name + " of " + s.Name + " has no tactic")
		}
		if p.Name == "" || p.Name == "_" {
			continue
		}
		for j := 0; j < i; j++ {
			if s.Params[j].Name == p.Name {
				return errors.New("Duplicate parameter " + p.Name + " in " + s.Name)
			}
		}
	}
	return nil
}
