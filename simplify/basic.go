package simplify

import "github.com/PolyhedraZK/zxtransformer/zx"

// BasicGates rewrites c using only ZPhase, HAD and CNOT.
func BasicGates(c *zx.Circuit) *zx.Circuit {
	res := zx.NewCircuit(c.NbQubits)
	z := func(t int, p float64) {
		res.AddGate(zx.ZPhase{Target: t, Phase: p})
	}
	h := func(t int) {
		res.AddGate(zx.HAD{Target: t})
	}
	cx := func(c, t int) {
		res.AddGate(zx.CNOT{Control: c, Target: t})
	}
	for _, g := range c.Gates {
		switch g := g.(type) {
		case zx.XPhase:
			h(g.Target)
			z(g.Target, g.Phase)
			h(g.Target)
		case zx.YPhase:
			// Y^p = S X^p S^-1
			z(g.Target, -0.5)
			h(g.Target)
			z(g.Target, g.Phase)
			h(g.Target)
			z(g.Target, 0.5)
		case zx.ZPhase:
			res.AddGate(g)
		case zx.S, zx.T:
			z(g.Qubits()[0], g.Phases()[0])
		case zx.CZ:
			h(g.Target)
			cx(g.Control, g.Target)
			h(g.Target)
		case zx.SWAP:
			cx(g.Control, g.Target)
			cx(g.Target, g.Control)
			cx(g.Control, g.Target)
		case zx.CCZ:
			a, b, t := g.Ctrl1, g.Ctrl2, g.Target
			cx(b, t)
			z(t, -0.25)
			cx(a, t)
			z(t, 0.25)
			cx(b, t)
			z(t, -0.25)
			cx(a, t)
			z(b, 0.25)
			z(t, 0.25)
			cx(a, b)
			z(a, 0.25)
			z(b, -0.25)
			cx(a, b)
		default:
			res.AddGate(g)
		}
	}
	return res
}
