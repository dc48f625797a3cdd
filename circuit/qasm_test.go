package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const mod5 = `
OPENQASM 2.0;
include "qelib1.inc";
qreg q[5];
creg c[1];
x q[4];
h q[4];
ccz q[0],q[3],q[4]; // toffoli core
h q[4];
rz(pi/4) q[2];
measure q[4] -> c[0];
if(c==1) x q[0];
my_gate(0.1) q[1],q[2];
`

func TestParseQASM(t *testing.T) {
	c, err := ParseQASM(mod5)
	require.NoError(t, err)
	ops := c.AllOperations()
	require.Len(t, ops, 8)

	// operations come back moment by moment
	q := LineQubits(5)
	require.True(t, ops[0].Equal(X.On(q[4])))
	require.Equal(t, ZPow, ops[1].Gate.Kind)
	require.InDelta(t, 0.25, ops[1].Gate.Exponent, 1e-12)
	require.True(t, ops[2].Equal(H.On(q[4])))
	require.Equal(t, Custom, ops[3].Gate.Kind)
	require.Equal(t, "my_gate(0.1)", ops[3].Gate.Name)
	require.Equal(t, 2, ops[3].Gate.Arity)
	require.True(t, ops[4].Equal(CCZ.On(q[0], q[3], q[4])))
	require.True(t, ops[6].Equal(MeasureGate("c").On(q[4])))
	require.True(t, ops[7].Equal(X.On(q[0]).WithClassicalControls("c")))
}

func TestParseQASMBroadcast(t *testing.T) {
	c, err := ParseQASM("qreg q[3]; creg m[2]; h q; measure q[1] -> m[1]; if(m[1]==1) sdg q[2];")
	require.NoError(t, err)
	ops := c.AllOperations()
	require.Len(t, ops, 5)
	for i := 0; i < 3; i++ {
		require.True(t, ops[i].Equal(H.On(LineQubit(i))))
	}
	require.Equal(t, "m[1]", ops[3].Gate.Key)
	require.Equal(t, []string{"m[1]"}, ops[4].Conditions)
	require.Equal(t, -0.5, ops[4].Gate.Exponent)
}

func TestParseQASMErrors(t *testing.T) {
	for _, src := range []string{
		"qreg q[2]; cx q[0];",
		"qreg q[2]; x q[2];",
		"qreg q[2]; x r[0];",
		"qreg q[2]; cx q[1],q[1];",
		"qreg q[2]; qreg r[2];",
		"qreg q[2]; creg c[2]; if(c==1) x q[0];",
		"qreg q[2]; creg c[1]; if(c==0) x q[0];",
		"qreg q[2]; gate foo a { x a; }",
		"qreg q[2]; rx(pi/) q[0];",
		"qreg q[2]; measure q[0] -> d[0];",
	} {
		_, err := ParseQASM(src)
		require.ErrorIs(t, err, ErrQASM, src)
	}
}

func TestFormatQASMRoundTrip(t *testing.T) {
	c, err := ParseQASM(mod5)
	require.NoError(t, err)
	out, err := FormatQASM(c)
	require.NoError(t, err)
	require.Contains(t, out, "qreg q[5];")
	require.Contains(t, out, "creg c[1];")
	require.Contains(t, out, "measure q[4] -> c[0];")
	require.Contains(t, out, "if(c==1) x q[0];")
	require.Contains(t, out, "t q[2];")

	back, err := ParseQASM(out)
	require.NoError(t, err)
	a, b := c.AllOperations(), back.AllOperations()
	require.Len(t, b, len(a))
	for i := range a {
		require.Equal(t, a[i].Gate.Kind, b[i].Gate.Kind)
		require.InDelta(t, a[i].Gate.Exponent, b[i].Gate.Exponent, 1e-12)
		require.Equal(t, a[i].Qubits, b[i].Qubits)
		require.Equal(t, a[i].Conditions, b[i].Conditions)
	}
}

func TestFormatQASMPhaseNames(t *testing.T) {
	q := LineQubit(0)
	for _, c := range []struct {
		gate Gate
		want string
	}{
		{S, "s q[0];"},
		{PowGate(ZPow, -0.5), "sdg q[0];"},
		{T, "t q[0];"},
		{PowGate(ZPow, -0.25), "tdg q[0];"},
		{Z, "z q[0];"},
		{PowGate(ZPow, 0.125), "rz(0.125*pi) q[0];"},
		{PowGate(XPow, 0.25), "rx(0.25*pi) q[0];"},
		{PowGate(YPow, -0.5), "ry(-0.5*pi) q[0];"},
	} {
		out, err := FormatQASM(New(c.gate.On(q)))
		require.NoError(t, err)
		require.Contains(t, out, "\n"+c.want+"\n", c.gate.String())

		back, err := ParseQASM(out)
		require.NoError(t, err)
		ops := back.AllOperations()
		require.Len(t, ops, 1)
		require.Equal(t, c.gate.Kind, ops[0].Gate.Kind)
		require.InDelta(t, c.gate.Exponent, ops[0].Gate.Exponent, 1e-12)
	}
}

func TestFormatQASMErrors(t *testing.T) {
	q := LineQubits(2)
	_, err := FormatQASM(New(PowGate(HPow, 0.5).On(q[0])))
	require.ErrorIs(t, err, ErrQASM)
	_, err = FormatQASM(New(X.On(q[0]).WithClassicalControls("a", "b")))
	require.ErrorIs(t, err, ErrQASM)
}

func TestFormatQASMConditionOnBit(t *testing.T) {
	q := LineQubits(2)
	c := New(
		MeasureGate("m[0]").On(q[0]),
		MeasureGate("m[1]").On(q[1]),
		X.On(q[0]).WithClassicalControls("m[1]"),
	)
	_, err := FormatQASM(c)
	require.ErrorIs(t, err, ErrQASM)

	// a one bit register is conditioned on as a whole
	c = New(MeasureGate("a[0]").On(q[0]), X.On(q[1]).WithClassicalControls("a[0]"))
	out, err := FormatQASM(c)
	require.NoError(t, err)
	require.Contains(t, out, "creg a[1];")
	require.Contains(t, out, "measure q[0] -> a[0];")
	require.Contains(t, out, "if(a==1) x q[1];")
}

func TestFormatQASMNamedQubits(t *testing.T) {
	c := New(CNOT.On(NamedQubit("b"), NamedQubit("a")), S.On(NamedQubit("a")))
	out, err := FormatQASM(c)
	require.NoError(t, err)
	require.Contains(t, out, "cx q[1],q[0];")
	require.Contains(t, out, "s q[0];")
}
