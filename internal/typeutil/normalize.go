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
	"github.com/wdamron/elab/types"
)

// Reduction steps allowed per normalization; reduction rules are not required to terminate.
const maxReductions = 1 << 12

// Normalize reduces t to normal form using the reduction rules of the environment.
// Metavariables are followed through their links; unsolved metavariables block reduction.
func (ctx *CommonContext) Normalize(t types.Term) types.Term {
	fuel := maxReductions
	return ctx.normalize(t, &fuel)
}

func (ctx *CommonContext) normalize(t types.Term, fuel *int) types.Term {
	switch t := types.RealTerm(t).(type) {
	case *types.Const:
		if out, ok := ctx.reduce(t.Name, nil, fuel); ok {
			return ctx.normalize(out, fuel)
		}
		return t

	case *types.App:
		fn := ctx.normalize(t.Func, fuel)
		args := make([]types.Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ctx.normalize(arg, fuel)
		}
		if c, ok := fn.(*types.Const); ok {
			if out, ok := ctx.reduce(c.Name, args, fuel); ok {
				return ctx.normalize(out, fuel)
			}
		}
		return &types.App{Func: fn, Args: args}

	case *types.Pi:
		params := make([]types.Param, len(t.Params))
		for i, p := range t.Params {
			params[i] = p
			params[i].Type = ctx.normalize(p.Type, fuel)
		}
		return &types.Pi{Params: params, Result: ctx.normalize(t.Result, fuel)}

	case *types.Eq:
		return &types.Eq{Lhs: ctx.normalize(t.Lhs, fuel), Rhs: ctx.normalize(t.Rhs, fuel)}

	case *types.Refl:
		return &types.Refl{Value: ctx.normalize(t.Value, fuel)}

	default:
		return t
	}
}

func (ctx *CommonContext) reduce(name string, args []types.Term, fuel *int) (types.Term, bool) {
	if ctx.Env == nil || *fuel <= 0 {
		return nil, false
	}
	r := ctx.Env.LookupReduction(name)
	if r == nil || r.Arity != len(args) {
		return nil, false
	}
	out, ok := r.Reduce(args)
	if !ok {
		return nil, false
	}
	*fuel--
	return out, true
}
