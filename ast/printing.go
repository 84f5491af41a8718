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
	"strconv"
	"strings"

	"github.com/wdamron/elab/types"
)

// ExprString returns a string representation of an expression.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, false, expr)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, expr Expr) {
	switch et := expr.(type) {
	case *Literal:
		sb.WriteString(et.Syntax)

	case *Var:
		sb.WriteString(et.Name)

	case *Call:
		if v, ok := et.Func.(*Var); ok && types.IsOperator(v.Name) && len(et.Args) == 2 && et.Args[0].Name == "" && et.Args[1].Name == "" {
			if simple {
				sb.WriteByte('(')
			}
			exprString(sb, true, et.Args[0].Value)
			sb.WriteByte(' ')
			sb.WriteString(v.Name)
			sb.WriteByte(' ')
			exprString(sb, true, et.Args[1].Value)
			if simple {
				sb.WriteByte(')')
			}
			return
		}
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			if arg.Name != "" {
				sb.WriteByte('{')
				sb.WriteString(arg.Name)
				sb.WriteString(" = ")
				exprString(sb, false, arg.Value)
				sb.WriteByte('}')
				continue
			}
			exprString(sb, false, arg.Value)
		}
		sb.WriteByte(')')

	case *Sort:
		sb.WriteString("Type")
		if et.Level != nil {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(*et.Level))
		}

	case *Term:
		sb.WriteString(types.TermString(et.Value))

	case nil:
		sb.WriteString("<nil>")
	}
}
