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
	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/elab/types"
)

// Proof search for an omitted argument. The search is shallow: it never recurses into
// subgoals, so it always terminates.
//
// The trivial tactic runs ContextScan, then Reflexivity. An exact default runs UserTactic.
// The returned obligation is nil when every strategy failed; the trace records each attempt.
func (c *Checker) search(function string, p *types.Param, tactic *types.Tactic, goal types.Term, hyps types.Context, sub map[string]types.Term) (*Obligation, []Attempt) {
	var (
		trace []Attempt
		value types.Term
		by    Strategy
	)
	switch tactic.Kind {
	case types.Exact:
		value, trace = c.userTactic(tactic, goal, hyps, sub)
		by = UserTactic

	default:
		value, trace = c.contextScan(goal, hyps)
		by = ContextScan
		if value == nil {
			var refl []Attempt
			value, refl = c.reflexivity(goal, hyps)
			trace = append(trace, refl...)
			by = Reflexivity
		}
	}
	if value == nil {
		c.log.Debug("proof search failed", "function", function, "param", p.Name, "goal", types.TermString(goal), "attempts", len(trace))
		return nil, trace
	}
	return &Obligation{
		Function: function,
		Param:    p.Name,
		Goal:     types.Deref(goal),
		Context:  hyps,
		Value:    value,
		Strategy: by,
		Trace:    trace,
	}, trace
}

// Try each hypothesis, innermost first. Shadowed hypotheses are skipped.
func (c *Checker) contextScan(goal types.Term, hyps types.Context) (types.Term, []Attempt) {
	var (
		trace []Attempt
		found types.Term
	)
	common := &c.common
	goal = common.Normalize(goal)
	seen := set.New[string](hyps.Len())
	hyps.RangeInnermost(func(h types.Hyp) bool {
		if !seen.Insert(h.Name) {
			return true
		}
		if err := common.TryUnify(hyps, common.Normalize(h.Type), goal); err != nil {
			trace = append(trace, Attempt{Strategy: ContextScan, Candidate: h.Name, Detail: err.Error()})
			return true
		}
		trace = append(trace, Attempt{Strategy: ContextScan, Candidate: h.Name, Ok: true})
		found = &types.Local{Name: h.Name}
		return false
	})
	if hyps.Len() == 0 {
		trace = append(trace, Attempt{Strategy: ContextScan, Detail: "no hypotheses"})
	}
	return found, trace
}

// Close `l = r` when both sides are definitionally equal.
func (c *Checker) reflexivity(goal types.Term, hyps types.Context) (types.Term, []Attempt) {
	common := &c.common
	eq, ok := common.Normalize(goal).(*types.Eq)
	if !ok {
		return nil, []Attempt{{Strategy: Reflexivity, Detail: "goal is not an equality"}}
	}
	if err := common.TryUnify(hyps, eq.Lhs, eq.Rhs); err != nil {
		return nil, []Attempt{{Strategy: Reflexivity, Candidate: types.TermString(eq), Detail: err.Error()}}
	}
	return &types.Refl{Value: types.Deref(eq.Lhs)}, []Attempt{{Strategy: Reflexivity, Candidate: types.TermString(eq), Ok: true}}
}

// Use the default value, with earlier arguments substituted for their parameters.
func (c *Checker) userTactic(tactic *types.Tactic, goal types.Term, hyps types.Context, sub map[string]types.Term) (types.Term, []Attempt) {
	common := &c.common
	value := types.Subst(tactic.Value, sub)
	candidate := types.TermString(value)
	ty, err := common.TypeOf(hyps, value)
	if err != nil {
		return nil, []Attempt{{Strategy: UserTactic, Candidate: candidate, Detail: err.Error()}}
	}
	if err := common.TrySubsume(hyps, ty, goal); err != nil {
		return nil, []Attempt{{Strategy: UserTactic, Candidate: candidate, Detail: err.Error()}}
	}
	return value, []Attempt{{Strategy: UserTactic, Candidate: candidate, Ok: true}}
}
