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
	"testing"

	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

type testEnv struct {
	sigs       map[string]*types.Signature
	reductions map[string]*types.Reduction
}

func (e *testEnv) LookupSignature(name string) *types.Signature { return e.sigs[name] }
func (e *testEnv) LookupReduction(name string) *types.Reduction { return e.reductions[name] }

func newTestContext() *CommonContext {
	env := &testEnv{
		sigs: map[string]*types.Signature{
			"Int":  {Name: "Int", Result: &types.Sort{Level: universe.LevelConst(0)}},
			"Bool": {Name: "Bool", Result: &types.Sort{Level: universe.LevelConst(0)}},
			"True": {Name: "True", Result: &types.Const{Name: "Bool"}},
			"not": {Name: "not", Params: []types.Param{{Name: "b", Type: &types.Const{Name: "Bool"}}},
				Result: &types.Const{Name: "Bool"}},
		},
		reductions: map[string]*types.Reduction{
			"not": {Arity: 1, Reduce: func(args []types.Term) (types.Term, bool) {
				c, ok := args[0].(*types.Const)
				if !ok {
					return nil, false
				}
				if c.Name == "True" {
					return &types.Const{Name: "False"}, true
				}
				return &types.Const{Name: "True"}, true
			}},
		},
	}
	ctx := &CommonContext{}
	ctx.Init(env, universe.NewStore("test"))
	return ctx
}

func TestRollbackRestoresLinksAndLevels(t *testing.T) {
	ctx := newTestContext()
	level := ctx.Levels.Fresh()
	tv := ctx.VarTracker.New("a", &types.Sort{Level: level})

	before := ctx.Levels.Len()
	txn := ctx.NewUnifyTxn()
	if err := ctx.Unify(types.EmptyContext, tv, &types.Const{Name: "Int"}); err != nil {
		t.Fatal(err)
	}
	if ctx.Levels.Len() == before {
		t.Fatalf("expected a universe constraint for the solution of a type metavariable")
	}
	ctx.Rollback(txn)

	if tv.IsLinkVar() {
		t.Fatalf("expected the metavariable to be unbound after rollback")
	}
	if ctx.Levels.Len() != before {
		t.Fatalf("expected constraints to be rolled back")
	}
}

func TestNestedCommitCanBeRolledBack(t *testing.T) {
	ctx := newTestContext()
	tv := ctx.VarTracker.New("x", &types.Const{Name: "Int"})

	outer := ctx.NewUnifyTxn()
	if err := ctx.TryUnify(types.EmptyContext, tv, &types.Lit{Syntax: "1", Of: &types.Const{Name: "Int"}}); err != nil {
		t.Fatal(err)
	}
	ctx.Rollback(outer)
	if tv.IsLinkVar() {
		t.Fatalf("expected the outer rollback to undo the inner commit")
	}
}

func TestUnifyUpToNormalization(t *testing.T) {
	ctx := newTestContext()
	notTrue := &types.App{Func: &types.Const{Name: "not"}, Args: []types.Term{&types.Const{Name: "True"}}}
	if err := ctx.Unify(types.EmptyContext, notTrue, &types.Const{Name: "False"}); err != nil {
		t.Fatal(err)
	}
	if err := ctx.TryUnify(types.EmptyContext, notTrue, &types.Const{Name: "True"}); err == nil {
		t.Fatalf("not(True) must not unify with True")
	}
}

func TestOccursCheck(t *testing.T) {
	ctx := newTestContext()
	tv := ctx.VarTracker.New("x", &types.Const{Name: "Bool"})
	loop := &types.App{Func: &types.Const{Name: "not"}, Args: []types.Term{tv}}
	if err := ctx.Unify(types.EmptyContext, tv, loop); err == nil {
		t.Fatalf("expected occurs-check failure")
	}
}

func TestSubsumeIsCumulative(t *testing.T) {
	ctx := newTestContext()
	lo := &types.Sort{Level: universe.LevelConst(0)}
	hi := &types.Sort{Level: universe.LevelConst(1)}

	if err := ctx.Subsume(types.EmptyContext, lo, hi); err != nil {
		t.Fatal(err)
	}
	if _, err := universe.Check(ctx.Levels); err != nil {
		t.Fatalf("Type 0 should be usable as Type 1: %v", err)
	}

	ctx.Levels.Reset()
	if err := ctx.Subsume(types.EmptyContext, hi, lo); err != nil {
		t.Fatal(err)
	}
	if _, err := universe.Check(ctx.Levels); !errors.Is(err, universe.ErrInconsistent) {
		t.Fatalf("Type 1 must not be usable as Type 0")
	}
}

func TestTypeOfSortIsLarger(t *testing.T) {
	ctx := newTestContext()
	i := ctx.Levels.Fresh()
	s := &types.Sort{Level: i}

	ts, err := ctx.TypeOf(types.EmptyContext, s)
	if err != nil {
		t.Fatal(err)
	}
	// Type i : Type i is rejected:
	if err := ctx.Subsume(types.EmptyContext, ts, s); err != nil {
		t.Fatal(err)
	}
	if _, err := universe.Check(ctx.Levels); !errors.Is(err, universe.ErrInconsistent) {
		t.Fatalf("expected Type i : Type i to be inconsistent")
	}
}

func TestLevelOfPi(t *testing.T) {
	ctx := newTestContext()
	pi := &types.Pi{
		Params: []types.Param{{Name: "x", Type: &types.Const{Name: "Int"}}},
		Result: &types.Const{Name: "Bool"},
	}
	level, err := ctx.LevelOf(types.EmptyContext, pi)
	if err != nil {
		t.Fatal(err)
	}
	levels, err := universe.Check(ctx.Levels)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := levels.Eval(level); n != 0 {
		t.Fatalf("expected Int -> Bool at level 0, got %d", n)
	}
	if _, err := ctx.LevelOf(types.EmptyContext, &types.Const{Name: "True"}); err == nil {
		t.Fatalf("True is not a type")
	}
}

func TestUnifyDistinctUniverses(t *testing.T) {
	ctx := newTestContext()
	p := func(level universe.Level) types.Term {
		return &types.App{Func: &types.Const{Name: "P"}, Args: []types.Term{&types.Sort{Level: level}}}
	}
	before := ctx.Levels.Len()
	if err := ctx.TryUnify(types.EmptyContext, p(universe.LevelConst(0)), p(universe.LevelConst(1))); err == nil {
		t.Fatalf("Type 0 must not unify with Type 1")
	}
	if ctx.Levels.Len() != before {
		t.Fatalf("expected no constraints from a failed unification")
	}
	if err := ctx.Unify(types.EmptyContext, p(universe.LevelConst(1)), p(universe.LevelConst(1))); err != nil {
		t.Fatal(err)
	}

	// A level variable is still equated rather than compared:
	u := ctx.Levels.Fresh()
	if err := ctx.Unify(types.EmptyContext, p(u), p(universe.LevelConst(1))); err != nil {
		t.Fatal(err)
	}
	levels, err := universe.Check(ctx.Levels)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := levels.Eval(u); n != 1 {
		t.Fatalf("expected %s = 1, got %d", u.LevelString(), n)
	}
}
