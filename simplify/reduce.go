package simplify

import (
	"github.com/PolyhedraZK/zxtransformer/zx"
)

// FullReduce rewrites g until no rule applies and returns the number of
// rewrites. Rules:
//  1. phase gates with a zero phase are removed
//  2. two identical self-inverse gates cancel
//  3. two phase gates around the same axis on the same qubit fuse
//
// The two gates of rules 2 and 3 may be separated by gates they commute with.
func FullReduce(g *Graph) int {
	total := 0
	for {
		n := g.dropZeroPhases()
		n += g.mergePass()
		if n == 0 {
			return total
		}
		total += n
	}
}

func (g *Graph) dropZeroPhases() int {
	n := 0
	for _, x := range g.nodes {
		if !x.alive {
			continue
		}
		if axis(x.gate) != 0 && zx.IsZeroPhase(x.gate.Phases()[0]) {
			x.alive = false
			n++
		}
	}
	return n
}

func (g *Graph) mergePass() int {
	n := 0
	for i, x := range g.nodes {
		if !x.alive {
			continue
		}
		for _, j := range g.predecessors(i) {
			p := g.nodes[j]
			if res, ok := merge(p.gate, x.gate); ok {
				x.alive = false
				if res == nil {
					p.alive = false
				} else {
					p.gate = res
				}
				n++
				break
			}
			if !commutes(p.gate, x.gate) {
				break
			}
		}
	}
	return n
}

// axis returns 'x', 'y' or 'z' for phase gates and 0 otherwise.
func axis(g zx.Gate) byte {
	switch g.(type) {
	case zx.XPhase:
		return 'x'
	case zx.YPhase:
		return 'y'
	case zx.ZPhase, zx.S, zx.T:
		return 'z'
	}
	return 0
}

func phaseGate(ax byte, target int, phase float64) zx.Gate {
	switch ax {
	case 'x':
		return zx.XPhase{Target: target, Phase: phase}
	case 'y':
		return zx.YPhase{Target: target, Phase: phase}
	}
	return zx.ZPhase{Target: target, Phase: phase}
}

func diagonal(g zx.Gate) bool {
	switch g.(type) {
	case zx.CZ, zx.CCZ:
		return true
	}
	return axis(g) == 'z'
}

func contains(qs []int, q int) bool {
	for _, x := range qs {
		if x == q {
			return true
		}
	}
	return false
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !contains(b, x) {
			return false
		}
	}
	return true
}

func disjoint(a, b []int) bool {
	for _, x := range a {
		if contains(b, x) {
			return false
		}
	}
	return true
}

// merge returns the gate equal to applying a then b, with ok set when the
// pair can be merged. A nil gate means the pair is the identity.
func merge(a, b zx.Gate) (zx.Gate, bool) {
	if ax := axis(a); ax != 0 && ax == axis(b) {
		t := a.Qubits()[0]
		if t != b.Qubits()[0] {
			return nil, false
		}
		sum := a.Phases()[0] + b.Phases()[0]
		if zx.IsZeroPhase(sum) {
			return nil, true
		}
		return phaseGate(ax, t, zx.NormalizePhase(sum)), true
	}
	switch a := a.(type) {
	case zx.HAD:
		if b, ok := b.(zx.HAD); ok && a == b {
			return nil, true
		}
	case zx.CNOT:
		if b, ok := b.(zx.CNOT); ok && a == b {
			return nil, true
		}
	case zx.CZ:
		if _, ok := b.(zx.CZ); ok && sameSet(a.Qubits(), b.Qubits()) {
			return nil, true
		}
	case zx.SWAP:
		if _, ok := b.(zx.SWAP); ok && sameSet(a.Qubits(), b.Qubits()) {
			return nil, true
		}
	case zx.CCZ:
		if _, ok := b.(zx.CCZ); ok && sameSet(a.Qubits(), b.Qubits()) {
			return nil, true
		}
	}
	return nil, false
}

func commutesWithCNOT(g zx.Gate, c zx.CNOT) bool {
	if diagonal(g) && !contains(g.Qubits(), c.Target) {
		return true
	}
	if axis(g) == 'x' && g.Qubits()[0] == c.Target {
		return true
	}
	if o, ok := g.(zx.CNOT); ok {
		if o.Control == c.Control && o.Target != c.Target {
			return true
		}
		if o.Target == c.Target && o.Control != c.Control {
			return true
		}
	}
	return false
}

func commutes(a, b zx.Gate) bool {
	if disjoint(a.Qubits(), b.Qubits()) {
		return true
	}
	if diagonal(a) && diagonal(b) {
		return true
	}
	if c, ok := b.(zx.CNOT); ok && commutesWithCNOT(a, c) {
		return true
	}
	if c, ok := a.(zx.CNOT); ok && commutesWithCNOT(b, c) {
		return true
	}
	return false
}
