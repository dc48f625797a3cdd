package test

import (
	"testing"

	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/zx"
)

const atol = 1e-7

type Assert struct {
	t testing.TB
}

func NewAssert(t testing.TB) *Assert {
	return &Assert{t: t}
}

func unionQubits(cs ...circuit.Reader) []circuit.Qubit {
	seen := make(map[circuit.Qubit]bool)
	res := []circuit.Qubit{}
	for _, c := range cs {
		for _, q := range c.AllQubits() {
			if !seen[q] {
				seen[q] = true
				res = append(res, q)
			}
		}
	}
	circuit.SortQubits(res)
	return res
}

// SameUnitary fails the test unless both circuits have the same unitary up to
// global phase. Qubits missing from one circuit are idle in it.
func (a *Assert) SameUnitary(expected, actual circuit.Reader) {
	a.t.Helper()
	qubits := unionQubits(expected, actual)
	ue, err := Unitary(expected, qubits)
	if err != nil {
		a.t.Fatal(err)
	}
	ua, err := Unitary(actual, qubits)
	if err != nil {
		a.t.Fatal(err)
	}
	if !EqualUpToGlobalPhase(ue, ua, atol) {
		a.t.Fatalf("unitaries differ\nexpected:\n%v\nactual:\n%v", expected, actual)
	}
}

// SameUnitaryZX is SameUnitary for translation units.
func (a *Assert) SameUnitaryZX(expected, actual *zx.Circuit) {
	a.t.Helper()
	if expected.NbQubits != actual.NbQubits {
		a.t.Fatalf("qubit count %d != %d", expected.NbQubits, actual.NbQubits)
	}
	ue, err := UnitaryZX(expected)
	if err != nil {
		a.t.Fatal(err)
	}
	ua, err := UnitaryZX(actual)
	if err != nil {
		a.t.Fatal(err)
	}
	if !EqualUpToGlobalPhase(ue, ua, atol) {
		a.t.Fatalf("unitaries differ\nexpected:\n%s\nactual:\n%s", expected, actual)
	}
}

// SameOperations fails the test unless both lists hold equal operations in
// the same order.
func (a *Assert) SameOperations(expected, actual []circuit.Operation) {
	a.t.Helper()
	if len(expected) != len(actual) {
		a.t.Fatalf("expected %d operations, got %d", len(expected), len(actual))
	}
	for i := range expected {
		if !expected[i].Equal(actual[i]) {
			a.t.Fatalf("operation %d: expected %s, got %s", i, expected[i], actual[i])
		}
	}
}
