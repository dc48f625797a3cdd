package simplify

import (
	"testing"

	"github.com/PolyhedraZK/zxtransformer/test"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/stretchr/testify/require"
)

func unit(n int, gates ...zx.Gate) *zx.Circuit {
	c := zx.NewCircuit(n)
	for _, g := range gates {
		c.AddGate(g)
	}
	return c
}

func reduce(c *zx.Circuit) *zx.Circuit {
	g := FromCircuit(c)
	FullReduce(g)
	return g.Extract()
}

func TestFullReduce(t *testing.T) {
	cases := []struct {
		name string
		in   *zx.Circuit
		want []zx.Gate
	}{
		{
			"hadamards cancel",
			unit(1, zx.HAD{Target: 0}, zx.HAD{Target: 0}),
			nil,
		},
		{
			"z phases fuse",
			unit(1, zx.ZPhase{Target: 0, Phase: 0.25}, zx.ZPhase{Target: 0, Phase: 0.75}),
			[]zx.Gate{zx.ZPhase{Target: 0, Phase: 1}},
		},
		{
			"phases fuse to identity",
			unit(1, zx.YPhase{Target: 0, Phase: 1.5}, zx.YPhase{Target: 0, Phase: 0.5}),
			nil,
		},
		{
			"zero phase dropped",
			unit(2, zx.XPhase{Target: 0, Phase: 2}, zx.CZ{Control: 0, Target: 1}, zx.ZPhase{Target: 1, Phase: -4}),
			[]zx.Gate{zx.CZ{Control: 0, Target: 1}},
		},
		{
			"z phase through cz",
			unit(2, zx.ZPhase{Target: 0, Phase: 0.25}, zx.CZ{Control: 0, Target: 1}, zx.ZPhase{Target: 0, Phase: 0.25}),
			[]zx.Gate{zx.ZPhase{Target: 0, Phase: 0.5}, zx.CZ{Control: 0, Target: 1}},
		},
		{
			"cnots cancel around a control phase",
			unit(2, zx.CNOT{Control: 0, Target: 1}, zx.ZPhase{Target: 0, Phase: 0.5}, zx.CNOT{Control: 0, Target: 1}),
			[]zx.Gate{zx.ZPhase{Target: 0, Phase: 0.5}},
		},
		{
			"x phase through cnot target",
			unit(2, zx.XPhase{Target: 1, Phase: 0.5}, zx.CNOT{Control: 0, Target: 1}, zx.XPhase{Target: 1, Phase: 0.5}),
			[]zx.Gate{zx.XPhase{Target: 1, Phase: 1}, zx.CNOT{Control: 0, Target: 1}},
		},
		{
			"hadamard blocks fusion",
			unit(1, zx.ZPhase{Target: 0, Phase: 0.25}, zx.HAD{Target: 0}, zx.ZPhase{Target: 0, Phase: 0.25}),
			[]zx.Gate{zx.ZPhase{Target: 0, Phase: 0.25}, zx.HAD{Target: 0}, zx.ZPhase{Target: 0, Phase: 0.25}},
		},
		{
			"symmetric gates cancel in any order",
			unit(3,
				zx.CZ{Control: 0, Target: 1}, zx.CZ{Control: 1, Target: 0},
				zx.SWAP{Control: 2, Target: 1}, zx.SWAP{Control: 1, Target: 2},
				zx.CCZ{Ctrl1: 0, Ctrl2: 1, Target: 2}, zx.CCZ{Ctrl1: 2, Ctrl2: 0, Target: 1},
			),
			nil,
		},
		{
			"cnots in the other direction do not cancel",
			unit(2, zx.CNOT{Control: 0, Target: 1}, zx.CNOT{Control: 1, Target: 0}),
			[]zx.Gate{zx.CNOT{Control: 0, Target: 1}, zx.CNOT{Control: 1, Target: 0}},
		},
		{
			"cascade",
			unit(2,
				zx.HAD{Target: 1},
				zx.CNOT{Control: 0, Target: 1},
				zx.ZPhase{Target: 0, Phase: 0.5},
				zx.CNOT{Control: 0, Target: 1},
				zx.HAD{Target: 1},
				zx.ZPhase{Target: 0, Phase: -0.5},
			),
			nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := reduce(c.in)
			require.Equal(t, c.in.NbQubits, out.NbQubits)
			require.Equal(t, c.want, out.Gates)
			test.NewAssert(t).SameUnitaryZX(c.in, out)
		})
	}
}

func TestFullReduceCount(t *testing.T) {
	g := FromCircuit(unit(1, zx.HAD{Target: 0}, zx.HAD{Target: 0}, zx.XPhase{Target: 0, Phase: 0}))
	require.Equal(t, 3, g.NumGates())
	require.Equal(t, 2, FullReduce(g))
	require.Equal(t, 0, g.NumGates())
	require.Equal(t, 0, FullReduce(g))
}

func TestFullReduceKeepsInput(t *testing.T) {
	in := unit(1, zx.HAD{Target: 0}, zx.HAD{Target: 0})
	reduce(in)
	require.Len(t, in.Gates, 2)
}

func TestCommutes(t *testing.T) {
	cnot := zx.CNOT{Control: 0, Target: 1}
	require.True(t, commutes(zx.ZPhase{Target: 0, Phase: 0.3}, cnot))
	require.False(t, commutes(zx.ZPhase{Target: 1, Phase: 0.3}, cnot))
	require.True(t, commutes(cnot, zx.XPhase{Target: 1, Phase: 0.3}))
	require.False(t, commutes(cnot, zx.XPhase{Target: 0, Phase: 0.3}))
	require.True(t, commutes(cnot, zx.CNOT{Control: 0, Target: 2}))
	require.True(t, commutes(cnot, zx.CNOT{Control: 2, Target: 1}))
	require.False(t, commutes(cnot, zx.CNOT{Control: 1, Target: 2}))
	require.True(t, commutes(zx.CCZ{Ctrl1: 0, Ctrl2: 1, Target: 2}, zx.S{Target: 1}))
	require.True(t, commutes(zx.HAD{Target: 3}, cnot))
	require.False(t, commutes(zx.HAD{Target: 0}, zx.T{Target: 0}))
}

func TestBasicGates(t *testing.T) {
	in := unit(3,
		zx.XPhase{Target: 0, Phase: 0.3},
		zx.YPhase{Target: 1, Phase: -0.7},
		zx.ZPhase{Target: 2, Phase: 0.1},
		zx.HAD{Target: 0},
		zx.CZ{Control: 2, Target: 0},
		zx.SWAP{Control: 1, Target: 2},
		zx.CCZ{Ctrl1: 0, Ctrl2: 1, Target: 2},
		zx.CNOT{Control: 1, Target: 0},
	)
	out := BasicGates(in)
	for _, g := range out.Gates {
		switch g.(type) {
		case zx.ZPhase, zx.HAD, zx.CNOT:
		default:
			t.Fatalf("unexpected gate %s", g)
		}
	}
	require.Len(t, in.Gates, 8)
	test.NewAssert(t).SameUnitaryZX(in, out)

	for _, ccz := range []zx.CCZ{{Ctrl1: 0, Ctrl2: 1, Target: 2}, {Ctrl1: 2, Ctrl2: 0, Target: 1}} {
		test.NewAssert(t).SameUnitaryZX(unit(3, ccz), BasicGates(unit(3, ccz)))
	}
}

func TestBasicGatesCliffordT(t *testing.T) {
	out := BasicGates(unit(1, zx.S{Target: 0, Adjoint: true}, zx.T{Target: 0}))
	require.Equal(t, []zx.Gate{zx.ZPhase{Target: 0, Phase: -0.5}, zx.ZPhase{Target: 0, Phase: 0.25}}, out.Gates)
}
