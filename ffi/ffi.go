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

// Package ffi describes foreign declarations at the type level.
//
// A foreign function is typed over a closed set of primitive element types, each of which maps
// to exactly one host representation. Native calls are not performed here; directives are
// recorded and passed through to the code generator untouched.
package ffi

import (
	"errors"
	"strconv"

	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

// Prim is a primitive element type usable in foreign declarations.
type Prim int

const (
	Int Prim = iota
	Float
	Char
	String
	Ptr
	Unit
)

var primNames = [...]string{
	Int:    "Int",
	Float:  "Float",
	Char:   "Char",
	String: "String",
	Ptr:    "Ptr",
	Unit:   "Unit",
}

var hostTypes = [...]string{
	Int:    "int",
	Float:  "double",
	Char:   "char",
	String: "char*",
	Ptr:    "void*",
	Unit:   "void",
}

// Prims returns every primitive element type.
func Prims() []Prim { return []Prim{Int, Float, Char, String, Ptr, Unit} }

func (p Prim) String() string {
	if p < 0 || int(p) >= len(primNames) {
		return "Prim(" + strconv.Itoa(int(p)) + ")"
	}
	return primNames[p]
}

// HostType returns the host representation of a primitive.
func HostType(p Prim) string {
	if p < 0 || int(p) >= len(hostTypes) {
		return ""
	}
	return hostTypes[p]
}

// Term returns the type constant for a primitive.
func (p Prim) Term() *types.Const { return &types.Const{Name: p.String()} }

// Signature declares the primitive as a type at level 0.
func (p Prim) Signature() *types.Signature {
	return &types.Signature{Name: p.String(), Result: &types.Sort{Level: universe.LevelConst(0)}}
}

// ParsePrim finds a primitive by name.
func ParsePrim(name string) (Prim, error) {
	for i, n := range primNames {
		if n == name {
			return Prim(i), nil
		}
	}
	return 0, errors.New("Unknown foreign primitive type " + name)
}

// Foreign is the type-level description of a foreign function.
type Foreign struct {
	Name string
	Args []Prim
	Ret  Prim
}

// Signature returns the signature used to type-check calls to the foreign function.
// Every parameter is explicit.
func (f *Foreign) Signature() *types.Signature {
	params := make([]types.Param, len(f.Args))
	for i, arg := range f.Args {
		params[i] = types.Param{Name: "x" + strconv.Itoa(i), Type: arg.Term()}
	}
	return &types.Signature{Name: f.Name, Params: params, Result: f.Ret.Term()}
}

// HostSignature returns the host representation of the argument and return types.
func (f *Foreign) HostSignature() (args []string, ret string) {
	args = make([]string, len(f.Args))
	for i, arg := range f.Args {
		args[i] = HostType(arg)
	}
	return args, HostType(f.Ret)
}
