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

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/types"
)

// Resolved is a call with every argument made explicit.
type Resolved struct {
	// Args holds one term per parameter of the signature, in declaration order.
	Args []types.Term
	// Term is the elaborated call: the function applied to Args.
	Term types.Term
	// Type is the result type of the call, with arguments substituted.
	Type types.Term
	// Obligations closed by proof search for this call.
	Obligations []Obligation
	// Open obligations deferred for this call (see Options.DeferUnresolved).
	Open []Obligation
}

// ResolveImplicits elaborates a call of the function described by sig, filling every omitted
// argument. Positional arguments are matched with explicit parameters; named arguments may
// supply any parameter, including implicit ones. If expected is not nil, it is used as a hint
// for the result type.
//
// Omitted arguments are solved by unification, then auto and default arguments are found by
// proof search in declaration order. Arguments whose types do not match are converted by at
// most one implicit conversion.
func (c *Checker) ResolveImplicits(sig *types.Signature, args []ast.Arg, hyps types.Context, expected types.Term) (*Resolved, error) {
	if err := c.active(); err != nil {
		return nil, err
	}
	site := &ast.Call{Func: &ast.Var{Name: sig.Name}, Args: args}
	r, err := c.resolve(site, sig, args, hyps, expected)
	if err != nil {
		return nil, err
	}
	if err = c.finishPending(); err != nil {
		return nil, err
	}
	r.Args = derefAll(r.Args)
	r.Term, r.Type = types.Deref(r.Term), types.Deref(r.Type)
	return r, nil
}

func (c *Checker) resolve(site ast.Expr, sig *types.Signature, args []ast.Arg, hyps types.Context, expected types.Term) (*Resolved, error) {
	common := &c.common
	common.ImportSignature(sig)

	supplied, err := matchArgs(sig, args)
	if err != nil {
		return nil, c.fail(site, err)
	}

	// One metavariable per parameter; later parameter types refer to earlier arguments.
	sub := make(map[string]types.Term, len(sig.Params))
	metas := make([]*types.Var, len(sig.Params))
	for i := range sig.Params {
		p := &sig.Params[i]
		metas[i] = common.VarTracker.New(p.Name, types.Subst(p.Type, sub))
		if p.Name != "" && p.Name != "_" {
			sub[p.Name] = metas[i]
		}
	}
	result := types.Subst(sig.Result, sub)

	if expected != nil {
		if err := common.TrySubsume(hyps, result, expected); err != nil {
			c.log.Debug("result type hint not applied", "function", sig.Name, "expected", types.TermString(expected), "error", err.Error())
		}
	}

	c.depth++
	for i := range sig.Params {
		if supplied[i] == nil {
			continue
		}
		p := &sig.Params[i]
		term, err := c.checkArg(supplied[i], p.Name, hyps, metas[i].Type())
		if err != nil {
			c.depth--
			return nil, err
		}
		if err := common.Unify(hyps, metas[i], term); err != nil {
			c.depth--
			return nil, c.fail(supplied[i], &TypeMismatchError{
				Site: supplied[i], Param: p.Name, Expected: types.Deref(metas[i]), Actual: types.Deref(term), Cause: err,
			})
		}
	}
	c.depth--

	r := &Resolved{}
	traces := make([][]Attempt, len(sig.Params))
	for i := range sig.Params {
		p := &sig.Params[i]
		tactic := p.Tactic()
		if supplied[i] != nil || tactic == nil || !unsolved(metas[i]) {
			continue
		}
		ob, trace := c.search(sig.Name, p, tactic, metas[i].Type(), hyps, sub)
		traces[i] = trace
		if ob == nil {
			continue
		}
		if err := common.Unify(hyps, metas[i], ob.Value); err != nil {
			traces[i] = append(traces[i], Attempt{Strategy: ob.Strategy, Candidate: types.TermString(ob.Value), Detail: err.Error()})
			continue
		}
		c.log.Debug("resolved implicit argument", "function", sig.Name, "param", p.Name,
			"strategy", ob.Strategy.String(), "value", types.TermString(ob.Value))
		r.Obligations = append(r.Obligations, *ob)
	}

	for i := range sig.Params {
		if !unsolved(metas[i]) {
			continue
		}
		p := &sig.Params[i]
		if p.Tactic() == nil && c.depth > 0 {
			c.pending = append(c.pending, pending{site: site, function: sig.Name, param: p.Name, meta: metas[i], hyps: hyps})
			continue
		}
		if c.opts.DeferUnresolved {
			r.Open = append(r.Open, c.openObligation(sig.Name, p.Name, metas[i], hyps, traces[i]))
			continue
		}
		return nil, c.fail(site, &UnresolvedImplicitError{
			Site: site, Function: sig.Name, Param: p.Name, Expected: types.Deref(metas[i].Type()), Trace: traces[i],
		})
	}

	r.Args = make([]types.Term, len(metas))
	for i, tv := range metas {
		r.Args[i] = tv
	}
	if len(r.Args) == 0 {
		r.Term = &types.Const{Name: sig.Name}
	} else {
		r.Term = &types.App{Func: &types.Const{Name: sig.Name}, Args: r.Args}
	}
	r.Type = result
	c.obligations = append(c.obligations, r.Obligations...)
	c.open = append(c.open, r.Open...)
	return r, nil
}

// Match arguments with parameters. Positional arguments fill explicit parameters left to
// right; named arguments fill the parameter with the same name.
func matchArgs(sig *types.Signature, args []ast.Arg) ([]ast.Expr, error) {
	supplied := make([]ast.Expr, len(sig.Params))
	for _, arg := range args {
		if arg.Name == "" {
			continue
		}
		i, ok := sig.Param(arg.Name)
		if !ok {
			return nil, errors.New(sig.Name + " has no parameter named " + arg.Name)
		}
		if supplied[i] != nil {
			return nil, errors.New("Argument " + arg.Name + " of " + sig.Name + " is supplied more than once")
		}
		supplied[i] = arg.Value
	}
	next := 0
	for _, arg := range args {
		if arg.Name != "" {
			continue
		}
		for next < len(sig.Params) && (sig.Params[next].IsImplicit() || supplied[next] != nil) {
			next++
		}
		if next == len(sig.Params) {
			return nil, errors.New("Too many arguments for " + sig.Name)
		}
		supplied[next] = arg.Value
		next++
	}
	for i := range sig.Params {
		if !sig.Params[i].IsImplicit() && supplied[i] == nil {
			return nil, errors.New("Missing argument " + sig.Params[i].Name + " of " + sig.Name)
		}
	}
	return supplied, nil
}

// Check deferred plain implicits of nested calls once the outermost call is elaborated.
func (c *Checker) finishPending() error {
	if c.depth > 0 {
		return nil
	}
	pend := c.pending
	c.pending = nil
	for _, p := range pend {
		if !unsolved(p.meta) {
			continue
		}
		if c.opts.DeferUnresolved {
			c.open = append(c.open, c.openObligation(p.function, p.param, p.meta, p.hyps, nil))
			continue
		}
		return c.fail(p.site, &UnresolvedImplicitError{
			Site: p.site, Function: p.function, Param: p.param, Expected: types.Deref(p.meta.Type()),
		})
	}
	return nil
}

func (c *Checker) openObligation(function, param string, meta *types.Var, hyps types.Context, trace []Attempt) Obligation {
	c.log.Debug("deferred unresolved implicit argument", "function", function, "param", param,
		"goal", types.TermString(meta.Type()))
	return Obligation{
		Function: function,
		Param:    param,
		Goal:     types.Deref(meta.Type()),
		Context:  hyps,
		Value:    types.RealTerm(meta),
		Trace:    trace,
	}
}

func unsolved(tv *types.Var) bool {
	v, ok := types.RealTerm(tv).(*types.Var)
	return ok && v.IsUnboundVar()
}

func derefAll(ts []types.Term) []types.Term {
	out := make([]types.Term, len(ts))
	for i, t := range ts {
		out[i] = types.Deref(t)
	}
	return out
}
