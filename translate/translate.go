// Package translate maps gates between the host circuit model and the
// intermediate representation. The mapping is a fixed table; extending one
// direction requires extending the other.
package translate

import (
	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedExponent is returned for a non phase gate raised to an
	// exponent other than 1.
	ErrUnsupportedExponent = errors.New("unsupported exponent")
	// ErrUnsupportedGate is returned when an intermediate gate has no host
	// counterpart.
	ErrUnsupportedGate = errors.New("unsupported gate")
	// ErrMissingPhase is returned when a phase gate decodes without a phase.
	ErrMissingPhase = errors.New("missing phase")
	// ErrQubitMismatch is returned when the qubit arguments do not fit the gate.
	ErrQubitMismatch = errors.New("qubit mismatch")
)

// hostKinds is keyed by canonical intermediate name. Adjoint names must map
// to the same kind, so they are looked up here too.
var hostKinds = map[string]circuit.Kind{
	"rx":   circuit.XPow,
	"ry":   circuit.YPow,
	"rz":   circuit.ZPow,
	"h":    circuit.HPow,
	"cx":   circuit.CNotPow,
	"cz":   circuit.CZPow,
	"swap": circuit.SwapPow,
	"ccz":  circuit.CCZPow,
}

// gates of these kinds are only translated at exponent 1, and recover with
// exponent 1
var fixedExponent = map[circuit.Kind]bool{
	circuit.HPow:    true,
	circuit.CZPow:   true,
	circuit.CNotPow: true,
	circuit.SwapPow: true,
	circuit.CCZPow:  true,
}

// Translatable reports whether the gate kind has an intermediate counterpart.
// It does not check the exponent.
func Translatable(g circuit.Gate) bool {
	switch g.Kind {
	case circuit.XPow, circuit.YPow, circuit.ZPow, circuit.HPow,
		circuit.CZPow, circuit.CNotPow, circuit.SwapPow, circuit.CCZPow:
		return true
	}
	return false
}

// ToZX translates a host gate applied to the given qubit indices. A nil gate
// with a nil error means there is no mapping and the operation must be passed
// through.
func ToZX(g circuit.Gate, qubits []int) (zx.Gate, error) {
	if !Translatable(g) {
		return nil, nil
	}
	if len(qubits) != g.NumQubits() {
		return nil, errors.Wrapf(ErrQubitMismatch, "%s on %d qubits", g, len(qubits))
	}
	if fixedExponent[g.Kind] && g.Exponent != 1 {
		return nil, errors.Wrapf(ErrUnsupportedExponent, "%s", g)
	}
	switch g.Kind {
	case circuit.XPow:
		return zx.XPhase{Target: qubits[0], Phase: g.Exponent}, nil
	case circuit.YPow:
		return zx.YPhase{Target: qubits[0], Phase: g.Exponent}, nil
	case circuit.ZPow:
		return zx.ZPhase{Target: qubits[0], Phase: g.Exponent}, nil
	case circuit.HPow:
		return zx.HAD{Target: qubits[0]}, nil
	case circuit.CZPow:
		return zx.CZ{Control: qubits[0], Target: qubits[1]}, nil
	case circuit.CNotPow:
		return zx.CNOT{Control: qubits[0], Target: qubits[1]}, nil
	case circuit.SwapPow:
		return zx.SWAP{Control: qubits[0], Target: qubits[1]}, nil
	case circuit.CCZPow:
		return zx.CCZ{Ctrl1: qubits[0], Ctrl2: qubits[1], Target: qubits[2]}, nil
	}
	return nil, nil
}

// ToHost translates an intermediate gate back to a host operation. qubits maps
// intermediate indices to host qubits.
func ToHost(g zx.Gate, qubits []circuit.Qubit) (circuit.Operation, error) {
	name := zx.QASMName(g)
	kind, ok := hostKinds[name]
	if !ok {
		return circuit.Operation{}, errors.Wrapf(ErrUnsupportedGate, "%s", name)
	}

	idx := g.Qubits()
	qargs := make([]circuit.Qubit, len(idx))
	for i, q := range idx {
		if q < 0 || q >= len(qubits) {
			return circuit.Operation{}, errors.Wrapf(ErrQubitMismatch, "%s: qubit index %d out of %d", g, q, len(qubits))
		}
		qargs[i] = qubits[q]
		for j := 0; j < i; j++ {
			if idx[j] == q {
				return circuit.Operation{}, errors.Wrapf(ErrQubitMismatch, "%s: qubit index %d used twice", g, q)
			}
		}
	}

	// host gates carry a single exponent
	exponent := 1.0
	switch phases := g.Phases(); {
	case len(phases) > 1:
		return circuit.Operation{}, errors.Wrapf(ErrUnsupportedGate, "%s: %d phases", g, len(phases))
	case len(phases) == 1:
		exponent = phases[0]
	case !fixedExponent[kind]:
		return circuit.Operation{}, errors.Wrapf(ErrMissingPhase, "%s", g)
	}

	gate := circuit.PowGate(kind, exponent)
	if len(qargs) != gate.NumQubits() {
		return circuit.Operation{}, errors.Wrapf(ErrQubitMismatch, "%s: %d qubits for %s", g, len(qargs), gate)
	}
	return gate.On(qargs...), nil
}
