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
	"strings"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/types"
)

var (
	// ErrUnresolvedImplicit is matched (with errors.Is) by every UnresolvedImplicitError.
	ErrUnresolvedImplicit = errors.New("unresolved implicit argument")
	// ErrTypeMismatch is matched (with errors.Is) by every TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrAmbiguousConversion is matched (with errors.Is) by every AmbiguousConversionError.
	ErrAmbiguousConversion = errors.New("ambiguous implicit conversion")
)

// Strategy is a proof-search strategy used for auto and default implicit arguments.
type Strategy int

const (
	// Search the local context for a hypothesis whose type matches the goal, innermost first.
	ContextScan Strategy = iota
	// Close an equality goal whose sides are definitionally equal.
	Reflexivity
	// Use the value given by a default tactic.
	UserTactic
)

func (s Strategy) String() string {
	switch s {
	case ContextScan:
		return "context scan"
	case Reflexivity:
		return "reflexivity"
	case UserTactic:
		return "user tactic"
	}
	return "invalid"
}

// Attempt is one step of proof search, recorded in the search trace.
type Attempt struct {
	Strategy Strategy
	// Candidate is the hypothesis or term which was tried, if any.
	Candidate string
	// Detail describes why the attempt failed.
	Detail string
	Ok     bool
}

func (a Attempt) String() string {
	var sb strings.Builder
	sb.WriteString(a.Strategy.String())
	if a.Candidate != "" {
		sb.WriteByte(' ')
		sb.WriteString(a.Candidate)
	}
	if a.Ok {
		sb.WriteString(": ok")
	} else if a.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(a.Detail)
	}
	return sb.String()
}

// Obligation is a goal produced for an omitted argument, together with the value found by
// proof search. Open obligations (see Options.DeferUnresolved) carry the unsolved
// metavariable as their value.
type Obligation struct {
	Function string
	Param    string
	Goal     types.Term
	Context  types.Context
	Value    types.Term
	Strategy Strategy
	Trace    []Attempt
}

// UnresolvedImplicitError is returned when an omitted argument is determined neither by
// unification nor by proof search.
type UnresolvedImplicitError struct {
	Site     ast.Expr
	Function string
	Param    string
	Expected types.Term
	Trace    []Attempt
}

func (e *UnresolvedImplicitError) Error() string {
	var sb strings.Builder
	sb.WriteString("Cannot resolve implicit argument ")
	sb.WriteString(e.Param)
	sb.WriteString(" : ")
	sb.WriteString(types.TermString(e.Expected))
	sb.WriteString(" of ")
	sb.WriteString(e.Function)
	if e.Site != nil {
		sb.WriteString(" in ")
		sb.WriteString(ast.ExprString(e.Site))
	}
	if len(e.Trace) > 0 {
		sb.WriteString(" (tried ")
		for i, a := range e.Trace {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

func (e *UnresolvedImplicitError) Is(target error) bool { return target == ErrUnresolvedImplicit }

// TypeMismatchError is returned when an argument does not have the required type and no
// implicit conversion applies.
type TypeMismatchError struct {
	Site     ast.Expr
	Param    string
	Expected types.Term
	Actual   types.Term
	Cause    error
}

func (e *TypeMismatchError) Error() string {
	var sb strings.Builder
	sb.WriteString("Type mismatch")
	if e.Site != nil {
		sb.WriteString(" for ")
		sb.WriteString(ast.ExprString(e.Site))
	}
	if e.Param != "" {
		sb.WriteString(" (parameter ")
		sb.WriteString(e.Param)
		sb.WriteByte(')')
	}
	sb.WriteString(": expected ")
	sb.WriteString(types.TermString(e.Expected))
	sb.WriteString(", found ")
	sb.WriteString(types.TermString(e.Actual))
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func (e *TypeMismatchError) Unwrap() error { return e.Cause }

// AmbiguousConversionError is returned when more than one implicit conversion applies to an
// argument.
type AmbiguousConversionError struct {
	Site       ast.Expr
	Source     types.Term
	Target     types.Term
	Candidates []string
}

func (e *AmbiguousConversionError) Error() string {
	var sb strings.Builder
	sb.WriteString("Ambiguous implicit conversion from ")
	sb.WriteString(types.TermString(e.Source))
	sb.WriteString(" to ")
	sb.WriteString(types.TermString(e.Target))
	if e.Site != nil {
		sb.WriteString(" for ")
		sb.WriteString(ast.ExprString(e.Site))
	}
	sb.WriteString(": ")
	sb.WriteString(strings.Join(e.Candidates, ", "))
	return sb.String()
}

func (e *AmbiguousConversionError) Is(target error) bool { return target == ErrAmbiguousConversion }
