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

package ffi

import (
	"testing"

	"github.com/wdamron/elab/types"
)

func TestEveryPrimHasOneHostType(t *testing.T) {
	seen := map[string]Prim{}
	for _, p := range Prims() {
		host := HostType(p)
		if host == "" {
			t.Fatalf("missing host type for %s", p)
		}
		if other, dup := seen[host]; dup {
			t.Fatalf("%s and %s share host type %s", p, other, host)
		}
		seen[host] = p
		parsed, err := ParsePrim(p.String())
		if err != nil || parsed != p {
			t.Fatalf("failed to parse %s", p)
		}
	}
	if _, err := ParsePrim("Double"); err == nil {
		t.Fatalf("expected unknown primitive error")
	}
}

func TestForeignSignature(t *testing.T) {
	f := &Foreign{Name: "sqrt", Args: []Prim{Float}, Ret: Float}
	sig := f.Signature()
	if err := sig.Validate(); err != nil {
		t.Fatal(err)
	}
	if s := types.TermString(sig.Pi()); s != "(x0 : Float) -> Float" {
		t.Fatalf("unexpected signature: %s", s)
	}
	args, ret := f.HostSignature()
	if len(args) != 1 || args[0] != "double" || ret != "double" {
		t.Fatalf("unexpected host signature: %v %s", args, ret)
	}
}

func TestParseDirective(t *testing.T) {
	cases := []struct {
		line   string
		expect Directive
	}{
		{`%lib C "m"`, Directive{Kind: Lib, Target: "C", Payload: "m"}},
		{`%include C "math.h"`, Directive{Kind: Include, Target: "C", Payload: "math.h"}},
		{`%link C "obj.o"`, Directive{Kind: Link, Target: "C", Payload: "obj.o"}},
		{`%dynamic "libm.so"`, Directive{Kind: Dynamic, Payload: "libm.so"}},
	}
	for _, c := range cases {
		d, err := ParseDirective(c.line)
		if err != nil {
			t.Fatal(err)
		}
		if d != c.expect {
			t.Fatalf("%s: expected %+v, got %+v", c.line, c.expect, d)
		}
		if d.String() != c.line {
			t.Fatalf("expected %s to print as itself, got %s", c.line, d.String())
		}
	}
	for _, bad := range []string{`lib C "m"`, `%export C "f"`, `%lib C m`} {
		if _, err := ParseDirective(bad); err == nil {
			t.Fatalf("expected an error for %s", bad)
		}
	}
}
