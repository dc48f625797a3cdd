package circuit

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the variant of a Gate.
type Kind int

const (
	_ Kind = iota
	XPow
	YPow
	ZPow
	HPow
	CZPow
	CNotPow
	SwapPow
	CCZPow
	Measure
	Custom
)

var kindNames = map[Kind]string{
	XPow:    "X",
	YPow:    "Y",
	ZPow:    "Z",
	HPow:    "H",
	CZPow:   "CZ",
	CNotPow: "CNOT",
	SwapPow: "SWAP",
	CCZPow:  "CCZ",
	Measure: "M",
	Custom:  "Custom",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Gate is a host gate. Exponent is meaningful for the power gates, Key for
// measurements, Name and Arity for custom gates.
type Gate struct {
	Kind     Kind
	Exponent float64
	Key      string
	Name     string
	Arity    int
}

// X, Y, Z, H, CZ, CNOT, SWAP and CCZ are the power gates raised to exponent 1.
var (
	X    = Gate{Kind: XPow, Exponent: 1}
	Y    = Gate{Kind: YPow, Exponent: 1}
	Z    = Gate{Kind: ZPow, Exponent: 1}
	H    = Gate{Kind: HPow, Exponent: 1}
	CZ   = Gate{Kind: CZPow, Exponent: 1}
	CNOT = Gate{Kind: CNotPow, Exponent: 1}
	SWAP = Gate{Kind: SwapPow, Exponent: 1}
	CCZ  = Gate{Kind: CCZPow, Exponent: 1}
	S    = Gate{Kind: ZPow, Exponent: 0.5}
	T    = Gate{Kind: ZPow, Exponent: 0.25}
)

// PowGate returns the power gate of the given kind raised to exponent.
func PowGate(k Kind, exponent float64) Gate {
	if k == Measure || k == Custom {
		panic("not a power gate: " + k.String())
	}
	return Gate{Kind: k, Exponent: exponent}
}

// Rx returns the X rotation by rads radians, i.e. XPow with exponent rads/π.
func Rx(rads float64) Gate {
	return Gate{Kind: XPow, Exponent: rads / math.Pi}
}

// Ry returns the Y rotation by rads radians.
func Ry(rads float64) Gate {
	return Gate{Kind: YPow, Exponent: rads / math.Pi}
}

// Rz returns the Z rotation by rads radians.
func Rz(rads float64) Gate {
	return Gate{Kind: ZPow, Exponent: rads / math.Pi}
}

// MeasureGate measures one qubit into the classical key.
func MeasureGate(key string) Gate {
	return Gate{Kind: Measure, Key: key, Arity: 1}
}

// CustomGate is an opaque gate with no intermediate counterpart.
func CustomGate(name string, arity int) Gate {
	return Gate{Kind: Custom, Name: name, Arity: arity}
}

// NumQubits returns how many qubits the gate acts on.
func (g Gate) NumQubits() int {
	switch g.Kind {
	case XPow, YPow, ZPow, HPow:
		return 1
	case CZPow, CNotPow, SwapPow:
		return 2
	case CCZPow:
		return 3
	}
	return g.Arity
}

// On applies the gate to qubits. It panics when the number of qubits does not
// match the gate.
func (g Gate) On(qubits ...Qubit) Operation {
	if len(qubits) != g.NumQubits() {
		panic(fmt.Sprintf("gate %s acts on %d qubits, got %d", g, g.NumQubits(), len(qubits)))
	}
	for i := range qubits {
		for j := 0; j < i; j++ {
			if qubits[i] == qubits[j] {
				panic(fmt.Sprintf("gate %s applied to duplicate qubit %s", g, qubits[i]))
			}
		}
	}
	qs := make([]Qubit, len(qubits))
	copy(qs, qubits)
	return Operation{Gate: g, Qubits: qs}
}

func (g Gate) String() string {
	switch g.Kind {
	case Measure:
		return "M('" + g.Key + "')"
	case Custom:
		return g.Name
	}
	if g.Exponent == 1 {
		return g.Kind.String()
	}
	return g.Kind.String() + "**" + strconv.FormatFloat(g.Exponent, 'g', -1, 64)
}
