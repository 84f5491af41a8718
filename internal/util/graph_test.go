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

package util_test

import (
	"testing"

	. "github.com/wdamron/elab/internal/util"
)

func TestSCCTopologicalOrder(t *testing.T) {
	// 0 -> {1 <-> 2} -> 3
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	g.AddEdge(2, 3)
	if len(g[2]) != 2 {
		t.Fatalf("expected duplicate edges to be ignored: %#+v", g[2])
	}

	sccs := g.SCC()
	if len(sccs) != 3 {
		t.Fatalf("unexpected components: %#+v", sccs)
	}
	comp := make([]int, len(g))
	for i, scc := range sccs {
		for _, v := range scc {
			comp[v] = i
		}
	}
	if comp[1] != comp[2] {
		t.Fatalf("expected 1 and 2 in one component: %#+v", sccs)
	}
	if !(comp[0] < comp[1] && comp[1] < comp[3]) {
		t.Fatalf("expected topological order: %#+v", sccs)
	}
}

func TestPath(t *testing.T) {
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 2)

	path := g.Path(0, 2, nil)
	if len(path) != 3 || path[0] != 0 || path[1] != 1 || path[2] != 2 {
		t.Fatalf("expected the shortest path, found %#+v", path)
	}
	path = g.Path(0, 2, func(v int) bool { return v != 1 })
	if len(path) != 4 || path[1] != 3 || path[2] != 4 {
		t.Fatalf("expected a path avoiding 1, found %#+v", path)
	}
	if path = g.Path(2, 0, nil); path != nil {
		t.Fatalf("expected no path, found %#+v", path)
	}
	if path = g.Path(1, 1, nil); len(path) != 1 {
		t.Fatalf("expected a trivial path, found %#+v", path)
	}
}
