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

// Subst replaces bound variables in t with the terms mapped from their names. Parameters
// of nested function types shadow the substitution.
func Subst(t Term, sub map[string]Term) Term {
	if len(sub) == 0 {
		return t
	}
	switch t := RealTerm(t).(type) {
	case *Local:
		if s, ok := sub[t.Name]; ok {
			return s
		}
		return t
	case *App:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Subst(arg, sub)
		}
		return &App{Func: Subst(t.Func, sub), Args: args}
	case *Pi:
		params := make([]Param, len(t.Params))
		inner := sub
		for i, p := range t.Params {
			params[i] = p
			params[i].Type = Subst(p.Type, inner)
			if _, shadowed := inner[p.Name]; shadowed {
				inner = without(inner, p.Name)
			}
		}
		return &Pi{Params: params, Result: Subst(t.Result, inner)}
	case *Eq:
		return &Eq{Lhs: Subst(t.Lhs, sub), Rhs: Subst(t.Rhs, sub)}
	case *Refl:
		return &Refl{Value: Subst(t.Value, sub)}
	default:
		return t
	}
}

func without(sub map[string]Term, name string) map[string]Term {
	next := make(map[string]Term, len(sub))
	for k, v := range sub {
		if k != name {
			next[k] = v
		}
	}
	return next
}
