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

package elab

import (
	"errors"

	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/elab/ffi"
	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// Session holds the declarations of a checking session: signatures, implicit conversions,
// reduction rules, and directives. A session may inherit declarations from a parent.
//
// A session cannot be modified concurrently. Checking units only read from the session they
// are checked in; finalized units become visible to later units through Commit.
type Session struct {
	// Declarations in the parent are visible in the current session
	Parent *Session
	// Signatures declared in the current session
	Signatures map[string]*types.Signature
	// Reduction rules defined in the current session
	Reductions map[string]*types.Reduction
	// Directives recorded in the current session, in the order they were added
	Directives []ffi.Directive

	conversions conversionTable
	units       *set.Set[string]
}

// Create a session. The new session will inherit declarations from the parent, if the parent
// is not nil. A session without a parent predeclares the primitive types as `Type 0`.
func NewSession(parent *Session) *Session {
	s := &Session{
		Parent:      parent,
		Signatures:  make(map[string]*types.Signature),
		Reductions:  make(map[string]*types.Reduction),
		conversions: emptyConversionTable,
		units:       set.New[string](0),
	}
	if parent == nil {
		for _, p := range ffi.Prims() {
			s.Signatures[p.String()] = p.Signature()
		}
	}
	return s
}

// Declare a signature within the session. Anonymous universes within the signature are
// assigned fresh levels; the checked copy is declared and returned.
func (s *Session) Declare(sig *types.Signature) (*types.Signature, error) {
	c := NewChecker(Options{})
	c.begin(s, universe.NewDeclStore(sig.Name))
	checked, err := c.CheckSignature(sig)
	if err != nil {
		return nil, err
	}
	if _, err = c.CheckUniverses(); err != nil {
		return nil, err
	}
	checked.Constraints = c.Constraints()
	if err = s.declare(checked); err != nil {
		return nil, err
	}
	return checked, nil
}

// Declare a foreign function within the session.
func (s *Session) DeclareForeign(f *ffi.Foreign) (*types.Signature, error) {
	prims := make([]ffi.Prim, 0, len(f.Args)+1)
	for _, p := range append(append(prims, f.Args...), f.Ret) {
		if s.LookupSignature(p.String()) == nil {
			return nil, errors.New("Primitive type " + p.String() + " of " + f.Name + " is not declared")
		}
	}
	return s.Declare(f.Signature())
}

func (s *Session) declare(sig *types.Signature) error {
	if s.LookupSignature(sig.Name) != nil {
		return errors.New(sig.Name + " is already declared")
	}
	s.Signatures[sig.Name] = sig
	return nil
}

// Define a reduction rule for a declared constant, used to normalize terms during
// unification and proof search.
func (s *Session) DefineReduction(name string, r *types.Reduction) error {
	if s.LookupSignature(name) == nil {
		return errors.New("Cannot define a reduction for undeclared " + name)
	}
	s.Reductions[name] = r
	return nil
}

// Record a directive. Directives are passed through untouched.
func (s *Session) AddDirective(d ffi.Directive) { s.Directives = append(s.Directives, d) }

// Lookup the signature for a name in the session or its parent session(s).
func (s *Session) LookupSignature(name string) *types.Signature {
	if sig, ok := s.Signatures[name]; ok {
		return sig
	}
	if s.Parent == nil {
		return nil
	}
	return s.Parent.LookupSignature(name)
}

// Lookup the reduction rule for a name in the session or its parent session(s).
func (s *Session) LookupReduction(name string) *types.Reduction {
	if r, ok := s.Reductions[name]; ok {
		return r
	}
	if s.Parent == nil {
		return nil
	}
	return s.Parent.LookupReduction(name)
}

// AllDirectives returns the directives of the parent session(s) followed by the directives of
// the current session.
func (s *Session) AllDirectives() []ffi.Directive {
	var chain []*Session
	for p := s; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	var out []ffi.Directive
	for i := len(chain) - 1; i >= 0; i-- {
		out = append(out, chain[i].Directives...)
	}
	return out
}

func (s *Session) hasUnit(name string) bool {
	if s.units.Contains(name) {
		return true
	}
	return s.Parent != nil && s.Parent.hasUnit(name)
}

// Commit the result of a checked unit, making its signatures, conversions, and directives
// visible to later units.
func (s *Session) Commit(result *UnitResult) error {
	if s.hasUnit(result.Name) {
		return errors.New("Unit " + result.Name + " is already committed")
	}
	for _, sig := range result.Signatures {
		if s.LookupSignature(sig.Name) != nil {
			return errors.New(sig.Name + " is already declared")
		}
	}
	for _, sig := range result.Signatures {
		s.Signatures[sig.Name] = sig
	}
	for _, name := range result.Conversions {
		if _, err := s.DeclareConversion(name); err != nil {
			return err
		}
	}
	s.Directives = append(s.Directives, result.Directives...)
	s.units.Insert(result.Name)
	return nil
}
