package test

import (
	"math"
	"math/cmplx"

	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/translate"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/pkg/errors"
)

// Matrix is a square complex matrix indexed [row][col].
type Matrix [][]complex128

// Unitary returns the matrix of the circuit over qubits, where bit i of a
// basis index is the value of qubits[i]. Measurements, classically controlled
// operations and custom gates have no unitary and are rejected.
func Unitary(c circuit.Reader, qubits []circuit.Qubit) (Matrix, error) {
	index := make(map[circuit.Qubit]int, len(qubits))
	for i, q := range qubits {
		index[q] = i
	}
	ops := circuit.Operations(c)
	for _, op := range ops {
		if op.HasClassicalControls() {
			return nil, errors.Errorf("%s is classically controlled", op)
		}
		for _, q := range op.Qubits {
			if _, ok := index[q]; !ok {
				return nil, errors.Errorf("%s uses qubit %s outside the register", op, q)
			}
		}
	}
	dim := 1 << len(qubits)
	res := make(Matrix, dim)
	for i := range res {
		res[i] = make([]complex128, dim)
	}
	state := make([]complex128, dim)
	for col := 0; col < dim; col++ {
		for i := range state {
			state[i] = 0
		}
		state[col] = 1
		for _, op := range ops {
			bits := make([]int, len(op.Qubits))
			for i, q := range op.Qubits {
				bits[i] = index[q]
			}
			if err := apply(state, op.Gate, bits); err != nil {
				return nil, errors.Wrapf(err, "%s", op)
			}
		}
		for row := 0; row < dim; row++ {
			res[row][col] = state[row]
		}
	}
	return res, nil
}

// UnitaryZX returns the matrix of a translation unit, qubit i being bit i.
func UnitaryZX(c *zx.Circuit) (Matrix, error) {
	qubits := circuit.LineQubits(c.NbQubits)
	host := circuit.New()
	for _, g := range c.Gates {
		op, err := translate.ToHost(g, qubits)
		if err != nil {
			return nil, err
		}
		host.Append(op)
	}
	return Unitary(host, qubits)
}

func turn(t float64) complex128 {
	return cmplx.Exp(complex(0, math.Pi*t))
}

// powMatrix returns P^t for a Pauli P: ((1+w) I + (1-w) P) / 2.
func powMatrix(p [2][2]complex128, t float64) [2][2]complex128 {
	w := turn(t)
	a, b := (1+w)/2, (1-w)/2
	return [2][2]complex128{
		{a + b*p[0][0], b * p[0][1]},
		{b * p[1][0], a + b*p[1][1]},
	}
}

var (
	pauliX = [2][2]complex128{{0, 1}, {1, 0}}
	pauliY = [2][2]complex128{{0, -1i}, {1i, 0}}
)

func applySingle(state []complex128, m [2][2]complex128, bit int, ctrlMask int) {
	for i := range state {
		if i&(1<<bit) != 0 || i&ctrlMask != ctrlMask {
			continue
		}
		j := i | 1<<bit
		a0, a1 := state[i], state[j]
		state[i] = m[0][0]*a0 + m[0][1]*a1
		state[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

func applyPhase(state []complex128, mask int, w complex128) {
	for i := range state {
		if i&mask == mask {
			state[i] *= w
		}
	}
}

func apply(state []complex128, g circuit.Gate, bits []int) error {
	switch g.Kind {
	case circuit.XPow:
		applySingle(state, powMatrix(pauliX, g.Exponent), bits[0], 0)
	case circuit.YPow:
		applySingle(state, powMatrix(pauliY, g.Exponent), bits[0], 0)
	case circuit.ZPow:
		applyPhase(state, 1<<bits[0], turn(g.Exponent))
	case circuit.HPow:
		if g.Exponent != 1 {
			return errors.Errorf("no unitary for %s", g)
		}
		s := complex(1/math.Sqrt2, 0)
		applySingle(state, [2][2]complex128{{s, s}, {s, -s}}, bits[0], 0)
	case circuit.CZPow:
		applyPhase(state, 1<<bits[0]|1<<bits[1], turn(g.Exponent))
	case circuit.CCZPow:
		applyPhase(state, 1<<bits[0]|1<<bits[1]|1<<bits[2], turn(g.Exponent))
	case circuit.CNotPow:
		applySingle(state, powMatrix(pauliX, g.Exponent), bits[1], 1<<bits[0])
	case circuit.SwapPow:
		if g.Exponent != 1 {
			return errors.Errorf("no unitary for %s", g)
		}
		a, b := 1<<bits[0], 1<<bits[1]
		for i := range state {
			if i&a != 0 && i&b == 0 {
				j := i ^ a ^ b
				state[i], state[j] = state[j], state[i]
			}
		}
	default:
		return errors.Errorf("no unitary for %s", g)
	}
	return nil
}

// EqualUpToGlobalPhase reports whether a = e^{iφ} b for some φ, entry by
// entry within atol.
func EqualUpToGlobalPhase(a, b Matrix, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	r, c, best := 0, 0, -1.0
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if v := cmplx.Abs(a[i][j]); v > best {
				r, c, best = i, j, v
			}
		}
	}
	if best <= atol {
		return true
	}
	if cmplx.Abs(b[r][c]) <= atol {
		return false
	}
	phase := b[r][c] / a[r][c]
	phase /= complex(cmplx.Abs(phase), 0)
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(a[i][j]*phase-b[i][j]) > atol {
				return false
			}
		}
	}
	return true
}
