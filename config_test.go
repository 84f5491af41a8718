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
	"strings"
	"testing"

	"github.com/wdamron/elab/config"
	. "github.com/wdamron/elab/construct"
	"github.com/wdamron/elab/ffi"
	"github.com/wdamron/elab/types"
)

func TestNewSessionFromConfig(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
defer_unresolved: true
directives: ['%include C "math.h"', '%lib C "m"']
foreign:
  - {name: sqrt, args: [Float], ret: Float}
`))
	if err != nil {
		t.Fatal(err)
	}
	sess, opts, err := NewSessionFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !opts.DeferUnresolved {
		t.Fatalf("expected deferred resolution to be enabled")
	}
	if ds := sess.AllDirectives(); len(ds) != 2 || ds[0].Kind != ffi.Include || ds[1].Payload != "m" {
		t.Fatalf("unexpected directives: %v", ds)
	}

	c := NewChecker(opts)
	c.Begin(NewSession(sess), "main")
	term, ty, err := c.Elaborate(CallPos("sqrt", Lit("2.0", TConst("Float"))), types.EmptyContext, nil)
	if err != nil {
		t.Fatal(err)
	}
	if types.TermString(term) != "sqrt(2.0)" || types.TermString(ty) != "Float" {
		t.Fatalf("unexpected elaboration: %s : %s", types.TermString(term), types.TermString(ty))
	}
	_, _, err = c.Elaborate(CallPos("sqrt", Lit("2", TConst("Int"))), types.EmptyContext, nil)
	if err == nil {
		t.Fatalf("expected a type mismatch for an Int argument")
	}
}
