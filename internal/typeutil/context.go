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

package typeutil

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/elab/types"
	"github.com/wdamron/elab/universe"
)

type StashedLink struct {
	v    *types.Var
	prev types.Var
}

func (l *StashedLink) Restore() { *l.v = l.prev }

// CommonContext holds the mutable state of a single checking unit: metavariables, the
// universe constraint store, and the stash used to undo speculative unification.
type CommonContext struct {
	Env        types.Env
	VarTracker VarTracker
	Levels     *universe.Store
	LinkStash  []StashedLink // stashed metavariables (during speculative unification)
	Speculate  bool

	imported  *set.Set[string] // signatures whose constraints were imported into Levels
	importLog []string

	// initial space:
	_linkStash [32]StashedLink
}

func (ctx *CommonContext) Init(env types.Env, levels *universe.Store) {
	ctx.Env, ctx.Levels = env, levels
	ctx.LinkStash, ctx.Speculate = ctx._linkStash[:0], false
	ctx.imported, ctx.importLog = set.New[string](16), nil
}

func (ctx *CommonContext) Reset() {
	ctx.VarTracker.Reset()
	for i := range ctx._linkStash {
		ctx._linkStash[i] = StashedLink{}
	}
	ctx.LinkStash, ctx.Speculate = ctx._linkStash[:0], false
	ctx.imported, ctx.importLog = set.New[string](16), nil
	if ctx.Levels != nil {
		ctx.Levels.Reset()
	}
}

// ImportSignature copies the finalized universe constraints of sig into the unit's store,
// once per signature.
func (ctx *CommonContext) ImportSignature(sig *types.Signature) {
	if len(sig.Constraints) == 0 || !ctx.imported.Insert(sig.Name) {
		return
	}
	ctx.importLog = append(ctx.importLog, sig.Name)
	ctx.Levels.Import(sig.Constraints)
}

// LookupSignature finds a signature in the environment and imports its constraints.
func (ctx *CommonContext) LookupSignature(name string) *types.Signature {
	sig := ctx.Env.LookupSignature(name)
	if sig != nil {
		ctx.ImportSignature(sig)
	}
	return sig
}

func (ctx *CommonContext) StashLink(v *types.Var) {
	ctx.LinkStash = append(ctx.LinkStash, StashedLink{v, *v})
}

func (ctx *CommonContext) UnstashLinks(count int) {
	if count <= 0 {
		return
	}
	stash := ctx.LinkStash
	for i := len(stash) - 1; i > len(stash)-1-count; i-- {
		stash[i].Restore()
	}
}
