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
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

// Hyp is a named hypothesis (or bound variable) in a local context.
type Hyp struct {
	Name string
	Type Term
}

// Context is a persistent sequence of hypotheses visible at a call site. Extending a context
// never mutates it, so contexts may be shared between call sites and checking units.
type Context struct {
	l *immutable.List
}

// EmptyContext contains no hypotheses.
var EmptyContext = Context{emptyList}

// Create a context from hypotheses, outermost first.
func NewContext(hyps ...Hyp) Context {
	b := immutable.NewListBuilder(emptyList)
	for _, h := range hyps {
		b.Append(h)
	}
	return Context{b.List()}
}

func (c Context) list() *immutable.List {
	if c.l == nil {
		return emptyList
	}
	return c.l
}

// Len returns the number of hypotheses in the context.
func (c Context) Len() int { return c.list().Len() }

// At returns the i-th hypothesis, counting from the outermost.
func (c Context) At(i int) Hyp { return c.list().Get(i).(Hyp) }

// Extend returns a new context with an innermost hypothesis added.
func (c Context) Extend(name string, t Term) Context {
	return Context{c.list().Append(Hyp{Name: name, Type: t})}
}

// Lookup finds the type of the innermost hypothesis with the given name.
func (c Context) Lookup(name string) (Term, bool) {
	var found Term
	c.RangeInnermost(func(h Hyp) bool {
		if h.Name == name {
			found = h.Type
			return false
		}
		return true
	})
	return found, found != nil
}

// Iterate over hypotheses, innermost (most-recently bound) first.
// If f returns false, iteration will be stopped.
func (c Context) RangeInnermost(f func(Hyp) bool) {
	l := c.list()
	for i := l.Len() - 1; i >= 0; i-- {
		if !f(l.Get(i).(Hyp)) {
			return
		}
	}
}
