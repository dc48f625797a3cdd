// Package simplify implements the default rewrite pipeline used by the
// full-reduce optimizer: build a gate graph from a translation unit, reduce it
// to a fixpoint, extract a new unit.
package simplify

import (
	"sort"

	"github.com/PolyhedraZK/zxtransformer/zx"
)

type node struct {
	gate  zx.Gate
	alive bool
}

// Graph holds the gates of a unit in program order. wires[q] lists, in
// order, the nodes acting on qubit q.
type Graph struct {
	nbQubits int
	nodes    []*node
	wires    [][]int
}

// FromCircuit builds the graph of c. c is not modified.
func FromCircuit(c *zx.Circuit) *Graph {
	g := &Graph{
		nbQubits: c.NbQubits,
		nodes:    make([]*node, len(c.Gates)),
		wires:    make([][]int, c.NbQubits),
	}
	for i, gate := range c.Gates {
		g.nodes[i] = &node{gate: gate, alive: true}
		for _, q := range gate.Qubits() {
			g.wires[q] = append(g.wires[q], i)
		}
	}
	return g
}

// NumGates returns the number of gates still in the graph.
func (g *Graph) NumGates() int {
	n := 0
	for _, x := range g.nodes {
		if x.alive {
			n++
		}
	}
	return n
}

// predecessors returns the live nodes before node i sharing a qubit with it,
// nearest first.
func (g *Graph) predecessors(i int) []int {
	seen := make(map[int]bool)
	res := []int{}
	for _, q := range g.nodes[i].gate.Qubits() {
		for _, j := range g.wires[q] {
			if j >= i {
				break
			}
			if g.nodes[j].alive && !seen[j] {
				seen[j] = true
				res = append(res, j)
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(res)))
	return res
}

// Extract returns the live gates as a new circuit.
func (g *Graph) Extract() *zx.Circuit {
	c := zx.NewCircuit(g.nbQubits)
	for _, x := range g.nodes {
		if x.alive {
			c.AddGate(x.gate)
		}
	}
	return c
}
