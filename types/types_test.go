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
	"testing"

	"github.com/wdamron/elab/universe"
)

func TestTermString(t *testing.T) {
	str := &Const{"String"}
	x := &Local{"x"}
	intString := &App{Func: &Const{"intString"}, Args: []Term{x}}
	concat := &App{Func: &Const{"++"}, Args: []Term{&Lit{Syntax: `"Number "`, Of: str}, intString}}

	cases := []struct {
		term   Term
		expect string
	}{
		{concat, `"Number " ++ intString(x)`},
		{&Eq{Lhs: &App{Func: &Const{"isCons"}, Args: []Term{&Local{"xs"}}}, Rhs: &Const{"True"}}, "isCons(xs) = True"},
		{&Sort{}, "Type"},
		{&Sort{Level: universe.LevelConst(1)}, "Type 1"},
		{&Pi{
			Params: []Param{
				{Name: "a", Type: &Sort{}, Plicity: Implicit},
				{Name: "xs", Type: &App{Func: &Const{"List"}, Args: []Term{&Local{"a"}}}},
				{Name: "p", Type: &Eq{Lhs: &App{Func: &Const{"isCons"}, Args: []Term{&Local{"xs"}}}, Rhs: &Const{"True"}}, Plicity: Auto},
			},
			Result: &Local{"a"},
		}, "{a : Type} -> (xs : List(a)) -> {auto p : isCons(xs) = True} -> a"},
		{&Refl{Value: &Const{"True"}}, "Refl(True)"},
		{NewVar(3, "a", &Sort{}), "?a3"},
	}
	for _, c := range cases {
		if s := TermString(c.term); s != c.expect {
			t.Fatalf("expected %s, got %s", c.expect, s)
		}
	}
}

func TestLinkedVarPrintsSolution(t *testing.T) {
	tv := NewVar(0, "a", &Sort{})
	tv.SetLink(&Const{"Int"})
	if s := TermString(&App{Func: &Const{"List"}, Args: []Term{tv}}); s != "List(Int)" {
		t.Fatalf("unexpected: %s", s)
	}
	if _, ok := Deref(tv).(*Const); !ok {
		t.Fatalf("expected Deref to follow the link")
	}
}

func TestContextInnermostFirst(t *testing.T) {
	ctx := NewContext(Hyp{"h", &Const{"A"}})
	inner := ctx.Extend("h", &Const{"B"})

	if ty, _ := inner.Lookup("h"); TermString(ty) != "B" {
		t.Fatalf("expected the innermost hypothesis, got %s", TermString(ty))
	}
	if ty, _ := ctx.Lookup("h"); TermString(ty) != "A" {
		t.Fatalf("extending a context must not modify it")
	}
	var order []string
	inner.RangeInnermost(func(h Hyp) bool {
		order = append(order, TermString(h.Type))
		return true
	})
	if len(order) != 2 || order[0] != "B" || order[1] != "A" {
		t.Fatalf("unexpected order: %v", order)
	}
	if _, ok := (Context{}).Lookup("h"); ok {
		t.Fatalf("zero context should be empty")
	}
}

func TestSubstRespectsShadowing(t *testing.T) {
	pi := &Pi{
		Params: []Param{{Name: "a", Type: &Sort{}}},
		Result: &App{Func: &Const{"Pair"}, Args: []Term{&Local{"a"}, &Local{"b"}}},
	}
	out := Subst(pi, map[string]Term{"a": &Const{"Int"}, "b": &Const{"Bool"}})
	if s := TermString(out); s != "(a : Type) -> Pair(a, Bool)" {
		t.Fatalf("unexpected: %s", s)
	}
}

func TestValidate(t *testing.T) {
	sig := &Signature{
		Name:   "f",
		Params: []Param{{Name: "x", Type: &Const{"Int"}}, {Name: "x", Type: &Const{"Int"}}},
		Result: &Const{"Int"},
	}
	if err := sig.Validate(); err == nil {
		t.Fatalf("expected duplicate parameter error")
	}
	sig.Params[1] = Param{Name: "d", Type: &Const{"Int"}, Plicity: Default}
	if err := sig.Validate(); err == nil {
		t.Fatalf("expected missing tactic error")
	}
	sig.Params[1].Default = &Tactic{Kind: Exact, Value: &Lit{Syntax: "0", Of: &Const{"Int"}}}
	if err := sig.Validate(); err != nil {
		t.Fatal(err)
	}
}
