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

package universe

import (
	"github.com/hashicorp/go-set/v2"
)

// Store accumulates the universe constraints of a single checking unit.
//
// A store cannot be used concurrently. Units never share a store; constraints from
// previously finalized units are copied in with Import.
type Store struct {
	// Owner is assigned to level variables created by Fresh.
	Owner string

	decl        bool
	nextId      int
	constraints []Constraint
	seen        *set.Set[Constraint]
}

// Create an empty constraint store. Fresh level variables will belong to owner.
func NewStore(owner string) *Store {
	return &Store{Owner: owner, seen: set.New[Constraint](16)}
}

// Create an empty constraint store for checking a single declaration outside of a unit.
// Fresh level variables will belong to the declaration.
func NewDeclStore(decl string) *Store {
	s := NewStore(decl)
	s.decl = true
	return s
}

// Create a fresh level variable owned by the store.
func (s *Store) Fresh() LevelVar {
	v := LevelVar{Owner: s.Owner, Id: s.nextId, Decl: s.decl}
	s.nextId++
	return v
}

// FreshFor creates a fresh level variable owned by the declaration whose signature
// introduced it.
func (s *Store) FreshFor(decl string) LevelVar {
	v := LevelVar{Owner: decl, Id: s.nextId, Decl: true}
	s.nextId++
	return v
}

// Lt adds the constraint lo < hi.
func (s *Store) Lt(lo, hi Level, origin string) { s.add(Constraint{lo, hi, true, origin}) }

// Le adds the constraint lo <= hi.
func (s *Store) Le(lo, hi Level, origin string) { s.add(Constraint{lo, hi, false, origin}) }

// Equate constrains a and b to the same level.
func (s *Store) Equate(a, b Level, origin string) {
	if a == b {
		return
	}
	s.Le(a, b, origin)
	s.Le(b, a, origin)
}

// Cumulative records that a term observed at one level is used where a (possibly higher)
// level is required. Terms are never rewritten; only an ordering edge is added.
func (s *Store) Cumulative(observed, required Level, origin string) {
	s.Le(observed, required, origin)
}

func (s *Store) add(c Constraint) {
	if !c.Strict && c.Lo == c.Hi {
		return
	}
	if !s.seen.Insert(c) {
		return
	}
	s.constraints = append(s.constraints, c)
}

// Import copies constraints finalized by another unit into the store.
func (s *Store) Import(cs []Constraint) {
	for _, c := range cs {
		s.add(c)
	}
}

// Len returns the number of constraints in the store.
func (s *Store) Len() int { return len(s.constraints) }

// Constraints returns a copy of the constraints in insertion order.
func (s *Store) Constraints() []Constraint {
	cs := make([]Constraint, len(s.constraints))
	copy(cs, s.constraints)
	return cs
}

// Truncate drops every constraint added after the store contained n constraints.
// Speculative unification uses Len and Truncate to roll back.
func (s *Store) Truncate(n int) {
	if n >= len(s.constraints) {
		return
	}
	for _, c := range s.constraints[n:] {
		s.seen.Remove(c)
	}
	s.constraints = s.constraints[:n]
}

// Reset discards all constraints. Level variable ids keep increasing so that variables
// handed out before the reset stay distinct.
func (s *Store) Reset() {
	s.constraints = s.constraints[:0]
	s.seen = set.New[Constraint](16)
}
