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
	"strconv"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// Elaborate expr within the local context hyps, returning the elaborated term and its type.
// Omitted arguments of every call are resolved. If expected is not nil, the term is checked
// against it, and an implicit conversion is inserted when the types differ.
func (c *Checker) Elaborate(expr ast.Expr, hyps types.Context, expected types.Term) (types.Term, types.Term, error) {
	if err := c.active(); err != nil {
		return nil, nil, err
	}
	if expr == nil {
		return nil, nil, errors.New("Empty expression")
	}
	var (
		term, typ types.Term
		err       error
	)
	if expected != nil {
		term, err = c.checkArg(expr, "", hyps, expected)
		typ = expected
	} else {
		term, typ, err = c.elaborate(expr, hyps, nil)
	}
	if err != nil {
		return nil, nil, err
	}
	if err = c.finishPending(); err != nil {
		return nil, nil, err
	}
	return types.Deref(term), types.Deref(typ), nil
}

func (c *Checker) elaborate(expr ast.Expr, hyps types.Context, expected types.Term) (types.Term, types.Term, error) {
	common := &c.common
	switch e := expr.(type) {
	case *ast.Literal:
		if e.Of == nil {
			return nil, nil, c.fail(e, errors.New("Literal "+e.Syntax+" has no type"))
		}
		return &types.Lit{Syntax: e.Syntax, Of: e.Of}, e.Of, nil

	case *ast.Var:
		if typ, ok := hyps.Lookup(e.Name); ok {
			return &types.Local{Name: e.Name}, typ, nil
		}
		sig := common.LookupSignature(e.Name)
		if sig == nil {
			return nil, nil, c.fail(e, errors.New("Unknown identifier "+e.Name))
		}
		switch {
		case len(sig.Params) == 0:
			return &types.Const{Name: sig.Name}, sig.Result, nil
		case sig.ExplicitCount() > 0:
			return &types.Const{Name: sig.Name}, sig.Pi(), nil
		}
		// Every parameter is implicit: `Nil` stands for `Nil {a = ?}`.
		r, err := c.resolve(e, sig, nil, hyps, expected)
		if err != nil {
			return nil, nil, err
		}
		return r.Term, r.Type, nil

	case *ast.Call:
		head, ok := e.Func.(*ast.Var)
		if !ok {
			return nil, nil, c.fail(e, errors.New("Call of "+ast.ExprString(e.Func)+" must name a declared function"))
		}
		if _, isLocal := hyps.Lookup(head.Name); isLocal {
			return nil, nil, c.fail(e, errors.New("Cannot call local "+head.Name+" with implicit arguments"))
		}
		sig := common.LookupSignature(head.Name)
		if sig == nil {
			return nil, nil, c.fail(head, errors.New("Unknown function "+head.Name))
		}
		r, err := c.resolve(e, sig, e.Args, hyps, expected)
		if err != nil {
			return nil, nil, err
		}
		return r.Term, r.Type, nil

	case *ast.Sort:
		var s *types.Sort
		if e.Level != nil {
			if *e.Level < 0 {
				return nil, nil, c.fail(e, errors.New("Universe level "+strconv.Itoa(*e.Level)+" is negative"))
			}
			s = &types.Sort{Level: universe.LevelConst(*e.Level)}
		} else {
			s = &types.Sort{Level: c.levels.Fresh()}
		}
		typ, err := common.TypeOf(hyps, s)
		if err != nil {
			return nil, nil, c.fail(e, err)
		}
		return s, typ, nil

	case *ast.Term:
		typ, err := common.TypeOf(hyps, e.Value)
		if err != nil {
			return nil, nil, c.fail(e, err)
		}
		return e.Value, typ, nil
	}
	return nil, nil, c.fail(expr, errors.New("Unhandled expression type"))
}

// Elaborate an argument and check it against the parameter type, inserting at most one
// implicit conversion.
func (c *Checker) checkArg(expr ast.Expr, param string, hyps types.Context, expected types.Term) (types.Term, error) {
	common := &c.common
	term, actual, err := c.elaborate(expr, hyps, expected)
	if err != nil {
		return nil, err
	}
	cause := common.TrySubsume(hyps, actual, expected)
	if cause == nil {
		return term, nil
	}

	source, target := common.Normalize(actual), common.Normalize(expected)
	mismatch := &TypeMismatchError{Site: expr, Param: param, Expected: types.Deref(expected), Actual: types.Deref(actual), Cause: cause}
	// Conversions are only looked up between fully known types.
	if types.HasUnbound(source) || types.HasUnbound(target) {
		return nil, c.fail(expr, mismatch)
	}
	convs := c.sess.Conversions(source, target)
	switch len(convs) {
	case 0:
		return nil, c.fail(expr, mismatch)
	case 1:
	default:
		names := make([]string, len(convs))
		for i, conv := range convs {
			names[i] = conv.Name
		}
		return nil, c.fail(expr, &AmbiguousConversionError{Site: expr, Source: source, Target: target, Candidates: names})
	}

	conv := convs[0]
	if sig := common.LookupSignature(conv.Name); sig == nil {
		return nil, c.fail(expr, errors.New("Implicit conversion "+conv.Name+" is not declared"))
	}
	if err := common.TrySubsume(hyps, conv.Target, expected); err != nil {
		mismatch.Cause = err
		return nil, c.fail(expr, mismatch)
	}
	c.log.Debug("inserted implicit conversion", "conversion", conv.Name,
		"from", types.TermString(source), "to", types.TermString(target), "expr", ast.ExprString(expr))
	return &types.App{Func: &types.Const{Name: conv.Name}, Args: []types.Term{term}}, nil
}
