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

package ast

import (
	"github.com/wdamron/elab/types"
)

// Expr is the base for all expressions handed to the core by surface elaboration.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Sort)(nil)
	_ Expr = (*Term)(nil)
)

// Literal value
type Literal struct {
	// Syntax is a string representation of the literal value. The syntax will be printed when the literal is printed.
	Syntax string
	// Of is the type of the literal.
	Of types.Term
}

// Returns the syntax of e.
func (e *Literal) ExprName() string { return e.Syntax }

// Variable: a bound variable, hypothesis, or declared name
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Application: `f(x, {p = h})`
type Call struct {
	Func Expr
	Args []Arg
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Argument of a call. Named arguments (`{name = value}`) supply any parameter by name,
// including implicit parameters; positional arguments fill explicit parameters in order.
type Arg struct {
	Name  string
	Value Expr
}

// Universe: `Type`, or `Type n` when Level is set
type Sort struct {
	Level *int
}

// "Sort"
func (e *Sort) ExprName() string { return "Sort" }

// Term embeds an already-elaborated term.
type Term struct {
	Value types.Term
}

// "Term"
func (e *Term) ExprName() string { return "Term" }
