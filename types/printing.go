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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &termPrinter{} },
}

type termPrinter struct {
	sb strings.Builder
}

func newTermPrinter() *termPrinter { return printerPool.Get().(*termPrinter) }

func (p *termPrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// TermString returns a string representation of a Term.
func TermString(t Term) string {
	if t == nil {
		return "<nil>"
	}
	p := newTermPrinter()
	termString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// IsOperator reports whether a constant name is printed infix when applied to two arguments.
func IsOperator(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune("!#$%&*+-./:<=>?@\\^|~", r) {
			return false
		}
	}
	return true
}

func termString(p *termPrinter, simple bool, t Term) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Lit:
		p.sb.WriteString(t.Syntax)

	case *Local:
		p.sb.WriteString(t.Name)

	case *Var:
		if t.IsLinkVar() {
			termString(p, simple, t.Link())
			return
		}
		p.sb.WriteByte('?')
		if t.name != "" && t.name != "_" {
			p.sb.WriteString(t.name)
		} else {
			p.sb.WriteByte('_')
		}
		p.sb.WriteString(strconv.Itoa(t.Id()))

	case *App:
		if c, ok := RealTerm(t.Func).(*Const); ok && IsOperator(c.Name) && len(t.Args) == 2 {
			if simple {
				p.sb.WriteByte('(')
			}
			termString(p, true, t.Args[0])
			p.sb.WriteByte(' ')
			p.sb.WriteString(c.Name)
			p.sb.WriteByte(' ')
			termString(p, true, t.Args[1])
			if simple {
				p.sb.WriteByte(')')
			}
			return
		}
		termString(p, true, t.Func)
		p.sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			termString(p, false, arg)
		}
		p.sb.WriteByte(')')

	case *Pi:
		if simple {
			p.sb.WriteByte('(')
		}
		for _, param := range t.Params {
			open, close := "(", ")"
			if param.IsImplicit() {
				open, close = "{", "}"
			}
			p.sb.WriteString(open)
			switch param.Plicity {
			case Auto:
				p.sb.WriteString("auto ")
			case Default:
				p.sb.WriteString("default ")
			}
			p.sb.WriteString(param.Name)
			p.sb.WriteString(" : ")
			termString(p, false, param.Type)
			p.sb.WriteString(close)
			p.sb.WriteString(" -> ")
		}
		termString(p, false, t.Result)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Sort:
		p.sb.WriteString("Type")
		if t.Level != nil {
			p.sb.WriteByte(' ')
			p.sb.WriteString(t.Level.LevelString())
		}

	case *Eq:
		if simple {
			p.sb.WriteByte('(')
		}
		termString(p, true, t.Lhs)
		p.sb.WriteString(" = ")
		termString(p, true, t.Rhs)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Refl:
		p.sb.WriteString("Refl(")
		termString(p, false, t.Value)
		p.sb.WriteByte(')')

	default:
		p.sb.WriteString("<invalid>")
	}
}
