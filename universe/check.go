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

import (
	"errors"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/elab/internal/util"
)

// ErrInconsistent is matched (with errors.Is) by every InconsistencyError.
var ErrInconsistent = errors.New("universe inconsistency")

// InconsistencyError reports an unsatisfiable set of universe constraints. Chain is the
// offending sequence of constraints: either a cycle through a strict constraint, or a chain
// of constraints which forces a concrete level above its value.
type InconsistencyError struct {
	Chain []Constraint
}

func (e *InconsistencyError) Error() string {
	var sb strings.Builder
	sb.WriteString("universe inconsistency: ")
	for i, c := range e.Chain {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

func (e *InconsistencyError) Is(target error) bool { return target == ErrInconsistent }

// Assignment maps level variables to concrete levels. Variables constrained to be equal
// (by cycles of non-strict constraints) share a class.
type Assignment struct {
	levels  map[LevelVar]int
	classes map[LevelVar]LevelVar
}

// Level returns the concrete level assigned to v.
func (a *Assignment) Level(v LevelVar) (int, bool) {
	n, ok := a.levels[v]
	return n, ok
}

// Eval returns the concrete value of a level.
func (a *Assignment) Eval(l Level) (int, bool) {
	switch l := l.(type) {
	case LevelConst:
		return int(l), true
	case LevelVar:
		return a.Level(l)
	}
	return 0, false
}

// Class returns the representative of the equivalence class containing v.
func (a *Assignment) Class(v LevelVar) LevelVar {
	if rep, ok := a.classes[v]; ok {
		return rep
	}
	return v
}

// Len returns the number of assigned level variables.
func (a *Assignment) Len() int { return len(a.levels) }

type levelGraph struct {
	graph  util.Graph
	nodes  []Level
	index  map[Level]int
	edges  map[[2]int]Constraint
	preds  [][]int
	consts []int // node indexes of concrete levels, ascending by value
}

func (lg *levelGraph) node(l Level) int {
	if i, ok := lg.index[l]; ok {
		return i
	}
	i := len(lg.nodes)
	lg.nodes, lg.index[l] = append(lg.nodes, l), i
	return i
}

func (lg *levelGraph) addEdge(c Constraint) {
	from, to := lg.index[c.Lo], lg.index[c.Hi]
	key := [2]int{from, to}
	if existing, ok := lg.edges[key]; ok {
		// A strict constraint subsumes a non-strict one between the same levels:
		if c.Strict && !existing.Strict {
			lg.edges[key] = c
		}
		return
	}
	lg.edges[key] = c
	lg.graph.AddEdge(from, to)
	lg.preds[to] = append(lg.preds[to], from)
}

func buildLevelGraph(cs []Constraint) *levelGraph {
	lg := &levelGraph{index: make(map[Level]int), edges: make(map[[2]int]Constraint)}
	for _, c := range cs {
		lg.node(c.Lo)
		lg.node(c.Hi)
	}
	for i, l := range lg.nodes {
		if _, ok := l.(LevelConst); ok {
			lg.consts = append(lg.consts, i)
		}
	}
	sort.Slice(lg.consts, func(i, j int) bool {
		return lg.nodes[lg.consts[i]].(LevelConst) < lg.nodes[lg.consts[j]].(LevelConst)
	})
	lg.graph, lg.preds = util.NewGraph(len(lg.nodes)), make([][]int, len(lg.nodes))
	for _, c := range cs {
		lg.addEdge(c)
	}
	// Concrete levels are ordered among themselves:
	for i := 1; i < len(lg.consts); i++ {
		lo, hi := lg.nodes[lg.consts[i-1]], lg.nodes[lg.consts[i]]
		lg.addEdge(Constraint{Lo: lo, Hi: hi, Strict: true, Origin: "level order"})
	}
	return lg
}

// Check decides whether the constraints in the store are satisfiable, and assigns the least
// consistent concrete level to every level variable.
//
// The constraints are satisfiable iff no cycle passes through a strict constraint and no
// concrete level is forced above its own value. Cycles of non-strict constraints collapse
// their variables into one equivalence class.
func Check(s *Store) (*Assignment, error) {
	lg := buildLevelGraph(s.constraints)
	sccs := lg.graph.SCC()
	comp := make([]int, len(lg.nodes))
	for ci, scc := range sccs {
		for _, v := range scc {
			comp[v] = ci
		}
	}

	// Reject cycles through strict constraints:
	for ci, scc := range sccs {
		members := set.From(scc)
		for _, from := range scc {
			for _, to := range lg.graph[from] {
				c := lg.edges[[2]int{from, to}]
				if comp[to] != ci || !c.Strict {
					continue
				}
				chain := []Constraint{c}
				if to != from {
					path := lg.graph.Path(to, from, members.Contains)
					for i := 1; i < len(path); i++ {
						chain = append(chain, lg.edges[[2]int{path[i-1], path[i]}])
					}
				}
				return nil, &InconsistencyError{Chain: chain}
			}
		}
	}

	// Collapse each component into one class:
	uf := newUnionFind(len(lg.nodes))
	for _, scc := range sccs {
		for _, v := range scc[1:] {
			uf.union(scc[0], v)
		}
	}

	// Assign least levels in topological order:
	values := make([]int, len(sccs))
	witness := make([]int, len(sccs)) // node of the predecessor which determined the value
	witnessEdge := make([][2]int, len(sccs))
	for ci, scc := range sccs {
		value, fixed, bound := 0, -1, -1
		witness[ci] = -1
		for _, v := range scc {
			if k, ok := lg.nodes[v].(LevelConst); ok {
				fixed = int(k)
			}
			for _, p := range lg.preds[v] {
				pc := comp[p]
				if pc == ci {
					continue
				}
				lower := values[pc]
				if lg.edges[[2]int{p, v}].Strict {
					lower++
				}
				if lower > bound {
					bound, witness[ci], witnessEdge[ci] = lower, pc, [2]int{p, v}
				}
			}
		}
		if bound > value {
			value = bound
		}
		if fixed >= 0 {
			if value > fixed {
				return nil, &InconsistencyError{Chain: witnessChain(lg, witness, witnessEdge, ci)}
			}
			value = fixed
		}
		values[ci] = value
	}

	a := &Assignment{levels: make(map[LevelVar]int), classes: make(map[LevelVar]LevelVar)}
	for i, l := range lg.nodes {
		v, ok := l.(LevelVar)
		if !ok {
			continue
		}
		a.levels[v] = values[comp[i]]
		if rep, ok := lg.nodes[uf.find(i)].(LevelVar); ok {
			a.classes[v] = rep
		}
	}
	return a, nil
}

func witnessChain(lg *levelGraph, witness []int, witnessEdge [][2]int, ci int) []Constraint {
	var chain []Constraint
	for ; witness[ci] >= 0; ci = witness[ci] {
		chain = append(chain, lg.edges[witnessEdge[ci]])
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	a, b = uf.find(a), uf.find(b)
	switch {
	case a == b:
	case uf.rank[a] < uf.rank[b]:
		uf.parent[a] = b
	case uf.rank[a] > uf.rank[b]:
		uf.parent[b] = a
	default:
		uf.parent[b] = a
		uf.rank[a]++
	}
}
