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
	"github.com/wdamron/elab/universe"
)

// Term is the base interface for all terms. Types and values share one syntax.
type Term interface {
	TermName() string
}

var (
	_ Term = (*Const)(nil)
	_ Term = (*Lit)(nil)
	_ Term = (*Local)(nil)
	_ Term = (*Var)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Pi)(nil)
	_ Term = (*Sort)(nil)
	_ Term = (*Eq)(nil)
	_ Term = (*Refl)(nil)
)

func (t *Const) TermName() string { return "Const" }
func (t *Lit) TermName() string   { return "Lit" }
func (t *Local) TermName() string { return "Local" }
func (t *Var) TermName() string   { return "Var" }
func (t *App) TermName() string   { return "App" }
func (t *Pi) TermName() string    { return "Pi" }
func (t *Sort) TermName() string  { return "Sort" }
func (t *Eq) TermName() string    { return "Eq" }
func (t *Refl) TermName() string  { return "Refl" }

// Reference to a declared constant, constructor, or function: `Int`, `True`, `isCons`
type Const struct {
	Name string
}

// Literal value with a known type: `1`, `"Number "`
type Lit struct {
	Syntax string
	Of     Term
}

// Bound variable: a parameter or a hypothesis in the local context.
type Local struct {
	Name string
}

// Application: `isCons(xs)`. Elaborated calls carry all arguments, including implicit ones.
type App struct {
	Func Term
	Args []Term
}

// Dependent function type: `{a : Type} -> (x : a) -> a`
type Pi struct {
	Params []Param
	Result Term
}

// Universe: `Type`. A nil Level marks an occurrence which has not been assigned a level
// variable yet; levels are assigned when a signature is checked.
type Sort struct {
	Level universe.Level
}

// Propositional equality: `isCons(xs) = True`
type Eq struct {
	Lhs, Rhs Term
}

// Reflexivity proof: `Refl(x) : x = x`
type Refl struct {
	Value Term
}

// Get the underlying term for a chain of linked metavariables, when applicable.
func RealTerm(t Term) Term {
	for {
		tv, ok := t.(*Var)
		if !ok || !tv.IsLinkVar() {
			return t
		}
		t = tv.Link()
	}
}

// Deref returns a copy of t where every linked metavariable is replaced by its link.
// Unbound metavariables are kept.
func Deref(t Term) Term {
	switch t := RealTerm(t).(type) {
	case *App:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Deref(arg)
		}
		return &App{Func: Deref(t.Func), Args: args}
	case *Pi:
		params := make([]Param, len(t.Params))
		for i, p := range t.Params {
			params[i] = p
			params[i].Type = Deref(p.Type)
		}
		return &Pi{Params: params, Result: Deref(t.Result)}
	case *Eq:
		return &Eq{Lhs: Deref(t.Lhs), Rhs: Deref(t.Rhs)}
	case *Refl:
		return &Refl{Value: Deref(t.Value)}
	case *Lit:
		return &Lit{Syntax: t.Syntax, Of: Deref(t.Of)}
	default:
		return t
	}
}

// HasUnbound reports whether t contains an unbound metavariable.
func HasUnbound(t Term) bool {
	switch t := RealTerm(t).(type) {
	case *Var:
		return true
	case *App:
		if HasUnbound(t.Func) {
			return true
		}
		for _, arg := range t.Args {
			if HasUnbound(arg) {
				return true
			}
		}
	case *Pi:
		for _, p := range t.Params {
			if HasUnbound(p.Type) {
				return true
			}
		}
		return HasUnbound(t.Result)
	case *Eq:
		return HasUnbound(t.Lhs) || HasUnbound(t.Rhs)
	case *Refl:
		return HasUnbound(t.Value)
	}
	return false
}
