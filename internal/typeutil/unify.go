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

type UnifyTxn struct {
	Speculate bool
	LinkStash []StashedLink
	Levels    int
	Imports   int
}

// NewUnifyTxn starts a speculative unification. Metavariable solutions, level constraints,
// and imported signature constraints made after the transaction starts are undone by Rollback.
func (ctx *CommonContext) NewUnifyTxn() UnifyTxn {
	txn := UnifyTxn{ctx.Speculate, ctx.LinkStash, ctx.Levels.Len(), len(ctx.importLog)}
	ctx.Speculate = true
	return txn
}

func (ctx *CommonContext) Rollback(txn UnifyTxn) {
	ctx.UnstashLinks(len(ctx.LinkStash) - len(txn.LinkStash))
	ctx.Levels.Truncate(txn.Levels)
	for _, name := range ctx.importLog[txn.Imports:] {
		ctx.imported.Remove(name)
	}
	ctx.importLog = ctx.importLog[:txn.Imports]
	ctx.Speculate, ctx.LinkStash = txn.Speculate, txn.LinkStash
}

func (ctx *CommonContext) Commit(txn UnifyTxn) {
	ctx.Speculate = txn.Speculate
	// An enclosing transaction may still roll back the committed links:
	if !txn.Speculate {
		ctx.LinkStash = txn.LinkStash
	}
}

func (ctx *CommonContext) TryUnify(hyps types.Context, a, b types.Term) error {
	txn := ctx.NewUnifyTxn()
	if err := ctx.Unify(hyps, a, b); err != nil {
		ctx.Rollback(txn)
		return err
	}
	ctx.Commit(txn)
	return nil
}

// TrySubsume is the speculative form of Subsume.
func (ctx *CommonContext) TrySubsume(hyps types.Context, actual, expected types.Term) error {
	txn := ctx.NewUnifyTxn()
	if err := ctx.Subsume(hyps, actual, expected); err != nil {
		ctx.Rollback(txn)
		return err
	}
	ctx.Commit(txn)
	return nil
}

// Subsume checks that a term of type actual may be used where expected is required. Universes
// are cumulative: `Type i` is accepted where `Type j` is required when i <= j. Other types
// must unify.
func (ctx *CommonContext) Subsume(hyps types.Context, actual, expected types.Term) error {
	as, aok := ctx.Normalize(actual).(*types.Sort)
	es, eok := ctx.Normalize(expected).(*types.Sort)
	if aok && eok && as.Level != nil && es.Level != nil {
		ctx.Levels.Cumulative(as.Level, es.Level, "cumulativity: Type "+as.Level.LevelString()+" used as Type "+es.Level.LevelString())
		return nil
	}
	return ctx.Unify(hyps, actual, expected)
}

// Unify two terms up to definitional equality. Terms are first compared structurally; if that
// fails, both are normalized and compared again.
func (ctx *CommonContext) Unify(hyps types.Context, a, b types.Term) error {
	return ctx.unify(hyps, a, b, false)
}

func (ctx *CommonContext) unify(hyps types.Context, a, b types.Term, normalized bool) error {
	// Path compression:
	a, b = types.RealTerm(a), types.RealTerm(b)

	if a == b {
		return nil
	}

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar != nil:
		return ctx.bind(hyps, avar, b)
	case bvar != nil:
		return ctx.bind(hyps, bvar, a)
	}

	if normalized {
		return ctx.unifyStructural(hyps, a, b, true)
	}
	txn := ctx.NewUnifyTxn()
	if err := ctx.unifyStructural(hyps, a, b, false); err != nil {
		ctx.Rollback(txn)
		return ctx.unify(hyps, ctx.Normalize(a), ctx.Normalize(b), true)
	}
	ctx.Commit(txn)
	return nil
}

func (ctx *CommonContext) bind(hyps types.Context, tv *types.Var, t types.Term) error {
	if ctx.occurs(tv, t) {
		return errors.New("Cannot solve ?" + tv.Name() + " with " + types.TermString(t) + ": the solution would contain itself")
	}
	// A metavariable ranging over types constrains the universe of its solution:
	if typ := tv.Type(); typ != nil {
		if s, ok := ctx.Normalize(typ).(*types.Sort); ok && s.Level != nil {
			level, err := ctx.LevelOf(hyps, t)
			if err != nil {
				return errors.New("Cannot solve ?" + tv.Name() + " with " + types.TermString(t) + ": " + err.Error())
			}
			ctx.Levels.Cumulative(level, s.Level, "solution of ?"+tv.Name()+" : Type "+s.Level.LevelString())
		}
	}
	if ctx.Speculate {
		ctx.StashLink(tv)
	}
	tv.SetLink(t)
	return nil
}

func (ctx *CommonContext) occurs(tv *types.Var, t types.Term) bool {
	switch t := types.RealTerm(t).(type) {
	case *types.Var:
		return t == tv
	case *types.App:
		if ctx.occurs(tv, t.Func) {
			return true
		}
		for _, arg := range t.Args {
			if ctx.occurs(tv, arg) {
				return true
			}
		}
	case *types.Pi:
		for _, p := range t.Params {
			if ctx.occurs(tv, p.Type) {
				return true
			}
		}
		return ctx.occurs(tv, t.Result)
	case *types.Eq:
		return ctx.occurs(tv, t.Lhs) || ctx.occurs(tv, t.Rhs)
	case *types.Refl:
		return ctx.occurs(tv, t.Value)
	}
	return false
}

func (ctx *CommonContext) unifyStructural(hyps types.Context, a, b types.Term, normalized bool) error {
	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok && a.Name == b.Name {
			return nil
		}

	case *types.Lit:
		if b, ok := b.(*types.Lit); ok && a.Syntax == b.Syntax {
			return nil
		}

	case *types.Local:
		if b, ok := b.(*types.Local); ok && a.Name == b.Name {
			return nil
		}

	case *types.App:
		b, ok := b.(*types.App)
		if !ok || len(a.Args) != len(b.Args) {
			break
		}
		if err := ctx.unify(hyps, a.Func, b.Func, normalized); err != nil {
			return err
		}
		for i := range a.Args {
			if err := ctx.unify(hyps, a.Args[i], b.Args[i], normalized); err != nil {
				return err
			}
		}
		return nil

	case *types.Pi:
		b, ok := b.(*types.Pi)
		if !ok || len(a.Params) != len(b.Params) {
			break
		}
		// Rename parameters of b to the parameters of a:
		rename := make(map[string]types.Term, len(b.Params))
		inner := hyps
		for i := range a.Params {
			ap, bp := &a.Params[i], &b.Params[i]
			if ap.Plicity != bp.Plicity {
				return mismatch(a, b)
			}
			if err := ctx.unify(inner, ap.Type, types.Subst(bp.Type, rename), normalized); err != nil {
				return err
			}
			rename[bp.Name] = &types.Local{Name: ap.Name}
			inner = inner.Extend(ap.Name, ap.Type)
		}
		return ctx.unify(inner, a.Result, types.Subst(b.Result, rename), normalized)

	case *types.Sort:
		b, ok := b.(*types.Sort)
		if !ok {
			break
		}
		if a.Level == nil || b.Level == nil {
			return errors.New("Cannot unify universes without assigned levels")
		}
		ka, aconst := a.Level.(universe.LevelConst)
		kb, bconst := b.Level.(universe.LevelConst)
		if aconst && bconst {
			if ka != kb {
				return mismatch(a, b)
			}
			return nil
		}
		ctx.Levels.Equate(a.Level, b.Level, "unify Type "+a.Level.LevelString()+" with Type "+b.Level.LevelString())
		return nil

	case *types.Eq:
		b, ok := b.(*types.Eq)
		if !ok {
			break
		}
		if err := ctx.unify(hyps, a.Lhs, b.Lhs, normalized); err != nil {
			return err
		}
		return ctx.unify(hyps, a.Rhs, b.Rhs, normalized)

	case *types.Refl:
		if b, ok := b.(*types.Refl); ok {
			return ctx.unify(hyps, a.Value, b.Value, normalized)
		}
	}
	return mismatch(a, b)
}

func mismatch(a, b types.Term) error {
	return errors.New("Failed to unify " + types.TermString(a) + " with " + types.TermString(b))
}
