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
	"io"
	"log/slog"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/internal/typeutil"
	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// Options configure a Checker.
type Options struct {
	// DeferUnresolved surfaces omitted arguments which remain unsolved as open obligations
	// instead of failing with an UnresolvedImplicitError.
	DeferUnresolved bool
	// Logger receives debug records for resolution, proof search, conversion insertion, and
	// unit completion. If nil, records are discarded.
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Checker is a reusable context for checking declarations, elaborating expressions, and
// resolving implicit arguments within a single checking unit.
//
// A checker cannot be used concurrently. To check units in parallel, create a checker for
// each unit (see CheckUnits).
type Checker struct {
	opts   Options
	log    *slog.Logger
	common typeutil.CommonContext
	sess   *Session
	levels *universe.Store

	depth       int
	pending     []pending
	obligations []Obligation
	open        []Obligation

	err     error
	invalid ast.Expr
}

// A plain implicit argument of a nested call which was left unsolved. Enclosing calls may
// still determine it.
type pending struct {
	site     ast.Expr
	function string
	param    string
	meta     *types.Var
	hyps     types.Context
}

// Create a checker. A checker may be reused for many units.
func NewChecker(opts Options) *Checker {
	c := &Checker{opts: opts, log: opts.Logger}
	if c.log == nil {
		c.log = discardLogger
	}
	return c
}

// Begin a new checking unit within sess. Universe levels created within the unit belong to
// owner. Any state from a previous unit is discarded.
func (c *Checker) Begin(sess *Session, owner string) {
	c.begin(sess, universe.NewStore(owner))
}

func (c *Checker) begin(sess *Session, levels *universe.Store) {
	c.Reset()
	c.sess, c.levels = sess, levels
	c.common.Init(sess, c.levels)
}

// Reset the state of the checker. The checker will be reset automatically by Begin.
func (c *Checker) Reset() {
	c.common.Reset()
	c.sess, c.levels = nil, nil
	c.depth, c.err, c.invalid = 0, nil, nil
	c.pending, c.obligations, c.open = nil, nil, nil
}

// Get the error which caused checking to fail.
func (c *Checker) Error() error { return c.err }

// Get the expression which caused checking to fail.
func (c *Checker) InvalidExpr() ast.Expr { return c.invalid }

// Obligations returns the goals closed by proof search within the current unit.
func (c *Checker) Obligations() []Obligation { return c.obligations }

// Open returns the unsolved obligations deferred within the current unit.
func (c *Checker) Open() []Obligation { return c.open }

// Constraints returns the universe constraints collected within the current unit.
func (c *Checker) Constraints() []universe.Constraint {
	if c.levels == nil {
		return nil
	}
	return c.levels.Constraints()
}

// CheckUniverses solves the universe constraints collected within the current unit.
func (c *Checker) CheckUniverses() (*universe.Assignment, error) {
	if c.levels == nil {
		return nil, errors.New("Checker has no active unit")
	}
	a, err := universe.Check(c.levels)
	if err != nil {
		c.err = err
		return nil, err
	}
	return a, nil
}

func (c *Checker) fail(expr ast.Expr, err error) error {
	if c.err == nil {
		c.err, c.invalid = err, expr
	}
	return err
}

func (c *Checker) active() error {
	if c.sess == nil {
		return errors.New("Checker has no active unit; call Begin first")
	}
	return nil
}
