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

package construct

import (
	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// Terms

// Constant: `Int`, `True`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Literal: `1`, `"hello"`
func TLit(syntax string, of types.Term) *types.Lit {
	return &types.Lit{Syntax: syntax, Of: of}
}

// Bound variable
func TLocal(name string) *types.Local {
	return &types.Local{Name: name}
}

// Application: `isCons(xs)`
func TApp(fn types.Term, args ...types.Term) *types.App {
	return &types.App{Func: fn, Args: args}
}

// Application of a named constant: `List(Int)`
func TCall(name string, args ...types.Term) *types.App {
	return &types.App{Func: TConst(name), Args: args}
}

// Universe with a level assigned when the enclosing signature is checked: `Type`
func TType() *types.Sort {
	return &types.Sort{}
}

// Universe at a concrete level: `Type 0`
func TTypeAt(level int) *types.Sort {
	return &types.Sort{Level: universe.LevelConst(level)}
}

// Equality: `a = b`
func TEq(lhs, rhs types.Term) *types.Eq {
	return &types.Eq{Lhs: lhs, Rhs: rhs}
}

// Reflexivity proof: `Refl(x)`
func TRefl(value types.Term) *types.Refl {
	return &types.Refl{Value: value}
}

// Dependent function type: `(x : a) -> b`
func TPi(result types.Term, params ...types.Param) *types.Pi {
	return &types.Pi{Params: params, Result: result}
}

// Function type with anonymous explicit parameters: `(Int, Int) -> Int`
func TArrow(args []types.Term, ret types.Term) *types.Pi {
	params := make([]types.Param, len(args))
	for i, arg := range args {
		params[i] = types.Param{Name: "_", Type: arg}
	}
	return &types.Pi{Params: params, Result: ret}
}

// Parameters

// Explicit parameter: `(x : t)`
func Explicit(name string, t types.Term) types.Param {
	return types.Param{Name: name, Type: t, Plicity: types.Explicit}
}

// Implicit parameter: `{x : t}`
func Implicit(name string, t types.Term) types.Param {
	return types.Param{Name: name, Type: t, Plicity: types.Implicit}
}

// Auto-implicit parameter: `{auto x : t}`
func Auto(name string, t types.Term) types.Param {
	return types.Param{Name: name, Type: t, Plicity: types.Auto}
}

// Default-implicit parameter with an explicit default value: `{default v x : t}`
func Default(name string, t types.Term, value types.Term) types.Param {
	return types.Param{Name: name, Type: t, Plicity: types.Default, Default: &types.Tactic{Kind: types.Exact, Value: value}}
}

// Default-implicit parameter with the trivial tactic: `{default trivial x : t}`
func DefaultTrivial(name string, t types.Term) types.Param {
	return types.Param{Name: name, Type: t, Plicity: types.Default, Default: types.TrivialTactic}
}

// Signature: `name : params -> result`
func Sig(name string, result types.Term, params ...types.Param) *types.Signature {
	return &types.Signature{Name: name, Params: params, Result: result}
}

// Expressions

// Variable expression
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Literal expression
func Lit(syntax string, of types.Term) *ast.Literal {
	return &ast.Literal{Syntax: syntax, Of: of}
}

// Call expression: `f(args...)`
func Call(fn string, args ...ast.Arg) *ast.Call {
	return &ast.Call{Func: Var(fn), Args: args}
}

// Call expression with positional arguments only
func CallPos(fn string, args ...ast.Expr) *ast.Call {
	return Call(fn, Pos(args...)...)
}

// Positional arguments
func Pos(args ...ast.Expr) []ast.Arg {
	out := make([]ast.Arg, len(args))
	for i, arg := range args {
		out[i] = ast.Arg{Value: arg}
	}
	return out
}

// Named argument: `{name = value}`
func Named(name string, value ast.Expr) ast.Arg {
	return ast.Arg{Name: name, Value: value}
}

// Universe expression: `Type`
func Type() *ast.Sort {
	return &ast.Sort{}
}

// Embedded term
func Term(t types.Term) *ast.Term {
	return &ast.Term{Value: t}
}
