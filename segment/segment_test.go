package segment

import (
	"testing"

	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/translate"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/stretchr/testify/require"
)

func TestSegmentMeasurement(t *testing.T) {
	q := circuit.LineQubits(2)
	m := circuit.MeasureGate("m").On(q[0])
	c := circuit.New(
		circuit.H.On(q[0]),
		circuit.CNOT.On(q[0], q[1]),
		m,
		circuit.H.On(q[0]),
	)
	segs, idx, err := Segment(c)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())
	require.Len(t, segs, 3)
	require.Equal(t, 2, segs.NumUnits())

	require.True(t, segs[0].IsUnit())
	require.Equal(t, []zx.Gate{zx.HAD{Target: 0}, zx.CNOT{Control: 0, Target: 1}}, segs[0].Unit.Gates)
	require.False(t, segs[1].IsUnit())
	require.True(t, segs[1].Op.Equal(m))
	require.Equal(t, []zx.Gate{zx.HAD{Target: 0}}, segs[2].Unit.Gates)
	require.Equal(t, 2, segs[2].Unit.NbQubits)
}

func TestSegmentClassicalControl(t *testing.T) {
	q := circuit.LineQubits(2)
	ctrl := circuit.X.On(q[1]).WithClassicalControls("m")
	c := circuit.New(
		circuit.CZ.On(q[0], q[1]),
		circuit.MeasureGate("m").On(q[0]),
		ctrl,
		circuit.Z.On(q[1]),
	)
	segs, _, err := Segment(c)
	require.NoError(t, err)
	require.Len(t, segs, 4)
	require.True(t, segs[0].IsUnit())
	require.Equal(t, circuit.Measure, segs[1].Op.Gate.Kind)
	require.True(t, segs[2].Op.Equal(ctrl))
	require.True(t, segs[3].IsUnit())
}

func TestSegmentEmpty(t *testing.T) {
	segs, idx, err := Segment(circuit.New())
	require.NoError(t, err)
	require.Empty(t, segs)
	require.Equal(t, 0, idx.Len())

	// only untranslatable operations
	q := circuit.LineQubits(1)
	segs, _, err = Segment(circuit.New(circuit.MeasureGate("a").On(q[0])))
	require.NoError(t, err)
	require.Len(t, segs, 1)
	require.Equal(t, 0, segs.NumUnits())
}

func TestSegmentIgnoreTags(t *testing.T) {
	q := circuit.LineQubits(2)
	keep := circuit.H.On(q[1]).WithTags("no_opt")
	c := circuit.New(circuit.H.On(q[0]), keep, circuit.CNOT.On(q[0], q[1]))

	segs, _, err := Segment(c)
	require.NoError(t, err)
	require.Len(t, segs, 1)

	segs, _, err = New(IgnoreTags("no_opt", "other")).Segment(c)
	require.NoError(t, err)
	require.Len(t, segs, 3)
	require.True(t, segs[1].Op.Equal(keep))
}

func TestSegmentUnsupportedExponent(t *testing.T) {
	q := circuit.LineQubits(1)
	_, _, err := Segment(circuit.New(circuit.PowGate(circuit.HPow, 0.5).On(q[0])))
	require.ErrorIs(t, err, translate.ErrUnsupportedExponent)

	// classically controlled operations are never translated
	segs, _, err := Segment(circuit.New(circuit.PowGate(circuit.HPow, 0.5).On(q[0]).WithClassicalControls("k")))
	require.NoError(t, err)
	require.Len(t, segs, 1)
}

func TestSegmentQubitIndex(t *testing.T) {
	a, b := circuit.NamedQubit("b"), circuit.NamedQubit("a")
	c := circuit.New(circuit.CNOT.On(a, b), circuit.CustomGate("u", 1).On(a))
	segs, idx, err := Segment(c)
	require.NoError(t, err)
	require.Equal(t, []circuit.Qubit{b, a}, idx.Qubits())
	i, ok := idx.Index(a)
	require.True(t, ok)
	require.Equal(t, 1, i)
	_, ok = idx.Index(circuit.LineQubit(0))
	require.False(t, ok)
	require.Equal(t, zx.CNOT{Control: 1, Target: 0}, segs[0].Unit.Gates[0])

	ops, err := segs.Operations(idx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.True(t, ops[0].Equal(circuit.CNOT.On(a, b)))
	require.Equal(t, "u", ops[1].Gate.Name)
}

func TestOperationsRecoveryError(t *testing.T) {
	u := zx.NewCircuit(1)
	u.AddGate(zx.T{Target: 0, Adjoint: true})
	_, err := List{{Unit: u}}.Operations(NewIndexMap(circuit.LineQubits(1)))
	require.ErrorIs(t, err, translate.ErrUnsupportedGate)
}

func TestSegmentSingleQubitScenarios(t *testing.T) {
	q := circuit.LineQubit(0)
	m := circuit.MeasureGate("c").On(q)
	segs, _, err := Segment(circuit.New(circuit.H.On(q), m, circuit.H.On(q)))
	require.NoError(t, err)
	require.Len(t, segs, 3)
	require.Equal(t, []zx.Gate{zx.HAD{Target: 0}}, segs[0].Unit.Gates)
	require.True(t, segs[1].Op.Equal(m))
	require.Equal(t, []zx.Gate{zx.HAD{Target: 0}}, segs[2].Unit.Gates)

	ctrl := circuit.H.On(q).WithClassicalControls("c")
	segs, _, err = Segment(circuit.New(circuit.X.On(q), ctrl, circuit.X.On(q)))
	require.NoError(t, err)
	require.Len(t, segs, 3)
	require.Equal(t, []zx.Gate{zx.XPhase{Target: 0, Phase: 1}}, segs[0].Unit.Gates)
	require.True(t, segs[1].Op.Equal(ctrl))
	require.True(t, segs[2].IsUnit())
}

func TestElement(t *testing.T) {
	op := circuit.H.On(circuit.LineQubit(0))
	e := OpElement(op)
	require.False(t, e.IsUnit())
	require.True(t, e.Op.Equal(op))

	u := zx.NewCircuit(1)
	e = UnitElement(u)
	require.True(t, e.IsUnit())
	require.Same(t, u, e.Unit)
	require.Panics(t, func() { UnitElement(nil) })
}
