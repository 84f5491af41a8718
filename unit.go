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
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/ffi"
	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// Declaration is a named signature with an optional body.
type Declaration struct {
	Signature *types.Signature
	// Body is checked against the result type, with parameters bound in the local context.
	Body ast.Expr
	// Implicit registers the declaration as an implicit conversion.
	Implicit bool
}

// Unit is a group of declarations checked together. Universe constraints are collected and
// solved per unit.
type Unit struct {
	Name         string
	Declarations []Declaration
	Directives   []ffi.Directive
}

// UnitResult is the outcome of checking a unit. Commit the result to a session to make its
// declarations visible to later units.
type UnitResult struct {
	Name        string
	Signatures  []*types.Signature
	Bodies      map[string]types.Term
	Conversions []string
	Directives  []ffi.Directive
	Obligations []Obligation
	Open        []Obligation
	Levels      *universe.Assignment
}

// CheckSignature checks that every parameter and the result of sig are types, assigning fresh
// levels (owned by the declaration) to anonymous universes. The checked copy is returned; sig
// is not modified.
func (c *Checker) CheckSignature(sig *types.Signature) (*types.Signature, error) {
	if err := c.active(); err != nil {
		return nil, err
	}
	if err := sig.Validate(); err != nil {
		return nil, c.fail(nil, err)
	}
	common := &c.common
	fresh := func() universe.Level { return c.levels.FreshFor(sig.Name) }
	out := &types.Signature{Name: sig.Name, Params: make([]types.Param, len(sig.Params))}
	hyps := types.EmptyContext
	for i, p := range sig.Params {
		p.Type = assignLevels(p.Type, fresh)
		if _, err := common.LevelOf(hyps, p.Type); err != nil {
			return nil, c.fail(nil, fmt.Errorf("parameter %s of %s: %w", p.Name, sig.Name, err))
		}
		if p.Default != nil && p.Default.Kind == types.Exact {
			value := assignLevels(p.Default.Value, fresh)
			ty, err := common.TypeOf(hyps, value)
			if err == nil {
				err = common.Subsume(hyps, ty, p.Type)
			}
			if err != nil {
				return nil, c.fail(nil, fmt.Errorf("default value of %s in %s: %w", p.Name, sig.Name, err))
			}
			p.Default = &types.Tactic{Kind: types.Exact, Value: value}
		}
		out.Params[i] = p
		hyps = hyps.Extend(p.Name, p.Type)
	}
	out.Result = assignLevels(sig.Result, fresh)
	if _, err := common.LevelOf(hyps, out.Result); err != nil {
		return nil, c.fail(nil, fmt.Errorf("result of %s: %w", sig.Name, err))
	}
	return out, nil
}

// Copy t, assigning a fresh level to each universe without one.
func assignLevels(t types.Term, fresh func() universe.Level) types.Term {
	switch t := t.(type) {
	case *types.Sort:
		if t.Level == nil {
			return &types.Sort{Level: fresh()}
		}
	case *types.App:
		args := make([]types.Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = assignLevels(arg, fresh)
		}
		return &types.App{Func: assignLevels(t.Func, fresh), Args: args}
	case *types.Pi:
		params := make([]types.Param, len(t.Params))
		for i, p := range t.Params {
			params[i] = p
			params[i].Type = assignLevels(p.Type, fresh)
		}
		return &types.Pi{Params: params, Result: assignLevels(t.Result, fresh)}
	case *types.Eq:
		return &types.Eq{Lhs: assignLevels(t.Lhs, fresh), Rhs: assignLevels(t.Rhs, fresh)}
	case *types.Refl:
		return &types.Refl{Value: assignLevels(t.Value, fresh)}
	}
	return t
}

// CheckUnit checks the declarations of unit in order, within a child of sess, and solves the
// unit's universe constraints. Each declaration is visible to the declarations which follow
// it. The session is not modified; commit the result to make the declarations visible to
// later units.
//
// Any error aborts the unit and discards its constraints.
func (c *Checker) CheckUnit(sess *Session, unit *Unit) (*UnitResult, error) {
	if unit.Name == "" {
		return nil, errors.New("Unit must be named")
	}
	if sess.hasUnit(unit.Name) {
		return nil, errors.New("Unit " + unit.Name + " is already committed")
	}
	local := NewSession(sess)
	c.Begin(local, unit.Name)
	res, err := c.checkUnit(local, unit)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		c.levels.Reset()
		return nil, fmt.Errorf("unit %s: %w", unit.Name, err)
	}
	c.log.Debug("checked unit", "unit", unit.Name, "declarations", len(res.Signatures),
		"constraints", c.levels.Len(), "obligations", len(res.Obligations), "open", len(res.Open))
	return res, nil
}

func (c *Checker) checkUnit(local *Session, unit *Unit) (*UnitResult, error) {
	res := &UnitResult{Name: unit.Name, Bodies: make(map[string]types.Term), Directives: unit.Directives}
	for i := range unit.Declarations {
		d := &unit.Declarations[i]
		if d.Signature == nil {
			return nil, errors.New("Declaration without a signature")
		}
		sig, err := c.CheckSignature(d.Signature)
		if err != nil {
			return nil, err
		}
		if err = local.declare(sig); err != nil {
			return nil, c.fail(nil, err)
		}
		if d.Implicit {
			if _, err = local.DeclareConversion(sig.Name); err != nil {
				return nil, c.fail(nil, err)
			}
			res.Conversions = append(res.Conversions, sig.Name)
		}
		res.Signatures = append(res.Signatures, sig)
		if d.Body == nil {
			continue
		}
		hyps := types.EmptyContext
		for _, p := range sig.Params {
			hyps = hyps.Extend(p.Name, p.Type)
		}
		body, _, err := c.Elaborate(d.Body, hyps, sig.Result)
		if err != nil {
			return nil, fmt.Errorf("body of %s: %w", sig.Name, err)
		}
		res.Bodies[sig.Name] = body
	}
	levels, err := c.CheckUniverses()
	if err != nil {
		return nil, err
	}
	constraints := c.levels.Constraints()
	for _, sig := range res.Signatures {
		sig.Constraints = constraints
	}
	res.Levels, res.Obligations, res.Open = levels, c.obligations, c.open
	return res, nil
}

// CheckUnits checks units in parallel, each with its own checker, within sess. At most
// parallelism units are checked at once; parallelism <= 0 means no limit. Units only read
// from sess, and do not see each other's declarations.
//
// Results are returned in the order of units; the result of a failed unit is nil. The
// returned error joins the errors of every failed unit.
func CheckUnits(ctx context.Context, sess *Session, units []*Unit, opts Options, parallelism int) ([]*UnitResult, error) {
	results := make([]*UnitResult, len(units))
	errs := make([]error, len(units))
	var g errgroup.Group
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = NewChecker(opts).CheckUnit(sess, unit)
			return nil
		})
	}
	g.Wait()
	return results, errors.Join(errs...)
}
