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

package universe

import "strconv"

// Level is a universe level: either a concrete natural number or a level variable
// which is solved when the constraints of a checking unit are finalized.
type Level interface {
	LevelString() string
}

var (
	_ Level = LevelConst(0)
	_ Level = LevelVar{}
)

// Concrete level: `0`, `1`, ...
type LevelConst int

// Level variable. Owner names the declaration or unit which introduced the variable;
// Id is unique within the owner. Decl separates declaration-owned variables from
// unit-owned variables, so a unit and a declaration may share a name.
type LevelVar struct {
	Owner string
	Id    int
	Decl  bool
}

func (l LevelConst) LevelString() string { return strconv.Itoa(int(l)) }

func (l LevelVar) LevelString() string {
	switch {
	case l.Owner == "":
		return "u" + strconv.Itoa(l.Id)
	case l.Decl:
		return l.Owner + ".u" + strconv.Itoa(l.Id)
	}
	return l.Owner + "/u" + strconv.Itoa(l.Id)
}

// Constraint orders two levels: Lo < Hi when Strict, otherwise Lo <= Hi.
type Constraint struct {
	Lo, Hi Level
	Strict bool
	// Origin describes the construct which produced the constraint.
	Origin string
}

func (c Constraint) String() string {
	op := " <= "
	if c.Strict {
		op = " < "
	}
	s := c.Lo.LevelString() + op + c.Hi.LevelString()
	if c.Origin != "" {
		s += " (" + c.Origin + ")"
	}
	return s
}
