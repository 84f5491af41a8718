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

package typeutil

import (
	"errors"

	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// TypeOf computes the type of an elaborated term within a local context. Computing the type of
// a universe or a function type adds universe constraints to the unit's store.
func (ctx *CommonContext) TypeOf(hyps types.Context, t types.Term) (types.Term, error) {
	switch t := types.RealTerm(t).(type) {
	case *types.Const:
		sig := ctx.LookupSignature(t.Name)
		if sig == nil {
			return nil, errors.New("Constant " + t.Name + " not found")
		}
		if len(sig.Params) == 0 {
			return sig.Result, nil
		}
		return sig.Pi(), nil

	case *types.Lit:
		if t.Of == nil {
			return nil, errors.New("Literal " + t.Syntax + " has no type")
		}
		return t.Of, nil

	case *types.Local:
		typ, ok := hyps.Lookup(t.Name)
		if !ok {
			return nil, errors.New("Variable " + t.Name + " not found")
		}
		return typ, nil

	case *types.Var:
		if t.Type() == nil {
			return nil, errors.New("Metavariable ?" + t.Name() + " has no type")
		}
		return t.Type(), nil

	case *types.App:
		ft, err := ctx.TypeOf(hyps, t.Func)
		if err != nil {
			return nil, err
		}
		pi, ok := ctx.Normalize(ft).(*types.Pi)
		if !ok || len(t.Args) > len(pi.Params) {
			return nil, errors.New("Cannot apply " + types.TermString(t.Func) + " of type " + types.TermString(ft) + " to " + types.TermString(t))
		}
		sub := make(map[string]types.Term, len(t.Args))
		for i, arg := range t.Args {
			sub[pi.Params[i].Name] = arg
		}
		if len(t.Args) == len(pi.Params) {
			return types.Subst(pi.Result, sub), nil
		}
		return types.Subst(&types.Pi{Params: pi.Params[len(t.Args):], Result: pi.Result}, sub), nil

	case *types.Pi:
		level, err := ctx.piLevel(hyps, t)
		if err != nil {
			return nil, err
		}
		return &types.Sort{Level: level}, nil

	case *types.Sort:
		if t.Level == nil {
			return nil, errors.New("Universe has no assigned level")
		}
		if k, ok := t.Level.(universe.LevelConst); ok && k < 0 {
			return nil, errors.New("Universe level " + k.LevelString() + " is negative")
		}
		// The type of `Type i` is `Type m` for some m > i, never `Type i` itself:
		m := ctx.Levels.Fresh()
		ctx.Levels.Lt(t.Level, m, "type of Type "+t.Level.LevelString())
		return &types.Sort{Level: m}, nil

	case *types.Eq:
		lt, err := ctx.TypeOf(hyps, t.Lhs)
		if err != nil {
			return nil, err
		}
		level, err := ctx.LevelOf(hyps, lt)
		if err != nil {
			return nil, err
		}
		return &types.Sort{Level: level}, nil

	case *types.Refl:
		return &types.Eq{Lhs: t.Value, Rhs: t.Value}, nil
	}
	return nil, errors.New("Cannot compute the type of " + types.TermString(t))
}

// LevelOf returns the universe level of a type: the level i such that ty : Type i.
func (ctx *CommonContext) LevelOf(hyps types.Context, ty types.Term) (universe.Level, error) {
	if pi, ok := types.RealTerm(ty).(*types.Pi); ok {
		return ctx.piLevel(hyps, pi)
	}
	s, err := ctx.TypeOf(hyps, ty)
	if err != nil {
		return nil, err
	}
	switch s := ctx.Normalize(s).(type) {
	case *types.Sort:
		if s.Level != nil {
			return s.Level, nil
		}
	case *types.Var:
		return nil, errors.New("Cannot determine the universe of " + types.TermString(ty))
	}
	return nil, errors.New(types.TermString(ty) + " is not a type")
}

// A function type lives in a universe at least as large as the universes of its parameter
// and result types.
func (ctx *CommonContext) piLevel(hyps types.Context, pi *types.Pi) (universe.Level, error) {
	k := ctx.Levels.Fresh()
	inner := hyps
	for _, p := range pi.Params {
		level, err := ctx.LevelOf(inner, p.Type)
		if err != nil {
			return nil, err
		}
		ctx.Levels.Le(level, k, "parameter "+p.Name+" : "+types.TermString(p.Type))
		inner = inner.Extend(p.Name, p.Type)
	}
	level, err := ctx.LevelOf(inner, pi.Result)
	if err != nil {
		return nil, err
	}
	ctx.Levels.Le(level, k, "result "+types.TermString(pi.Result))
	return k, nil
}
