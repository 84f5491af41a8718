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

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/elab/internal/typeutil"
	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// Conversion is an implicit conversion: a declared function with a single explicit parameter,
// inserted around an argument whose type is Source where Target is required.
type Conversion struct {
	Name   string
	Source types.Term
	Target types.Term
}

var emptyConversionMap = immutable.NewSortedMap(nil)

var emptyConversionTable = conversionTable{emptyConversionMap}

// conversionTable maps "Source -> Target" keys to immutable lists of conversions.
type conversionTable struct {
	m *immutable.SortedMap
}

func conversionKey(source, target types.Term) string {
	return types.TermString(source) + " -> " + types.TermString(target)
}

func (t conversionTable) get(key string) []*Conversion {
	if t.m == nil {
		return nil
	}
	v, ok := t.m.Get(key)
	if !ok {
		return nil
	}
	l := v.(*immutable.List)
	out := make([]*Conversion, l.Len())
	for i := range out {
		out[i] = l.Get(i).(*Conversion)
	}
	return out
}

func (t conversionTable) add(conv *Conversion) conversionTable {
	m := t.m
	if m == nil {
		m = emptyConversionMap
	}
	key := conversionKey(conv.Source, conv.Target)
	l := emptyList
	if v, ok := m.Get(key); ok {
		l = v.(*immutable.List)
	}
	return conversionTable{m.Set(key, l.Append(conv))}
}

var emptyList = immutable.NewList()

// Register a declared function as an implicit conversion. The function must have exactly one
// parameter, which must be explicit, and its result type must not depend on the parameter.
func (s *Session) DeclareConversion(name string) (*Conversion, error) {
	sig := s.LookupSignature(name)
	if sig == nil {
		return nil, errors.New("Cannot declare undeclared " + name + " as an implicit conversion")
	}
	if len(sig.Params) != 1 || sig.Params[0].Plicity != types.Explicit {
		return nil, errors.New("Implicit conversion " + name + " must have exactly one explicit parameter")
	}
	p := &sig.Params[0]
	if mentions(sig.Result, p.Name) {
		return nil, errors.New("Result type of implicit conversion " + name + " depends on its parameter")
	}
	// Lookup compares normalized types, so the key is normalized as well:
	var common typeutil.CommonContext
	common.Init(s, universe.NewStore(name))
	conv := &Conversion{Name: name, Source: common.Normalize(p.Type), Target: common.Normalize(sig.Result)}
	for _, existing := range s.Conversions(conv.Source, conv.Target) {
		if existing.Name == name {
			return nil, errors.New(name + " is already an implicit conversion")
		}
	}
	s.conversions = s.conversions.add(conv)
	return conv, nil
}

// Conversions returns the implicit conversions from source to target declared in the session
// or its parent session(s). Conversions are never composed.
func (s *Session) Conversions(source, target types.Term) []*Conversion {
	key := conversionKey(source, target)
	var out []*Conversion
	for p := s; p != nil; p = p.Parent {
		out = append(out, p.conversions.get(key)...)
	}
	return out
}

// Iterate over the implicit conversions declared in the current session, sorted by source and
// target type. If f returns false, iteration will be stopped.
func (s *Session) RangeConversions(f func(*Conversion) bool) {
	if s.conversions.m == nil {
		return
	}
	iter := s.conversions.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		l := v.(*immutable.List)
		for i := 0; i < l.Len(); i++ {
			if !f(l.Get(i).(*Conversion)) {
				return
			}
		}
	}
}

func mentions(t types.Term, name string) bool {
	switch t := types.RealTerm(t).(type) {
	case *types.Local:
		return t.Name == name
	case *types.App:
		if mentions(t.Func, name) {
			return true
		}
		for _, arg := range t.Args {
			if mentions(arg, name) {
				return true
			}
		}
	case *types.Pi:
		for _, p := range t.Params {
			if mentions(p.Type, name) {
				return true
			}
			if p.Name == name {
				return false
			}
		}
		return mentions(t.Result, name)
	case *types.Eq:
		return mentions(t.Lhs, name) || mentions(t.Rhs, name)
	case *types.Refl:
		return mentions(t.Value, name)
	}
	return false
}
