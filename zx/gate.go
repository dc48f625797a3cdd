package zx

import (
	"strconv"
	"strings"
)

// Gate is a gate of the intermediate representation. The set of variants is
// closed: every implementation lives in this package.
//
// Qubits returns the qubit roles in the fixed order ctrl1, ctrl2, control,
// target, skipping the roles a variant does not have. Phases returns nil for
// gates that carry no phase.
type Gate interface {
	Name() string
	AdjointName() string
	IsAdjoint() bool
	Qubits() []int
	Phases() []float64
	String() string
	isGate()
}

// XPhase rotates Target around the X axis by Phase half turns.
type XPhase struct {
	Target int
	Phase  float64
}

// YPhase rotates Target around the Y axis by Phase half turns.
type YPhase struct {
	Target int
	Phase  float64
}

// ZPhase rotates Target around the Z axis by Phase half turns.
type ZPhase struct {
	Target int
	Phase  float64
}

type HAD struct {
	Target int
}

type CZ struct {
	Control int
	Target  int
}

type CNOT struct {
	Control int
	Target  int
}

type SWAP struct {
	Control int
	Target  int
}

type CCZ struct {
	Ctrl1  int
	Ctrl2  int
	Target int
}

// S is the quarter turn Z phase, or its inverse when Adjoint is set.
type S struct {
	Target  int
	Adjoint bool
}

// T is the eighth turn Z phase, or its inverse when Adjoint is set.
type T struct {
	Target  int
	Adjoint bool
}

func (XPhase) Name() string { return "rx" }
func (YPhase) Name() string { return "ry" }
func (ZPhase) Name() string { return "rz" }
func (HAD) Name() string    { return "h" }
func (CZ) Name() string     { return "cz" }
func (CNOT) Name() string   { return "cx" }
func (SWAP) Name() string   { return "swap" }
func (CCZ) Name() string    { return "ccz" }
func (S) Name() string      { return "s" }
func (T) Name() string      { return "t" }

func (g XPhase) AdjointName() string { return g.Name() }
func (g YPhase) AdjointName() string { return g.Name() }
func (g ZPhase) AdjointName() string { return g.Name() }
func (g HAD) AdjointName() string    { return g.Name() }
func (g CZ) AdjointName() string     { return g.Name() }
func (g CNOT) AdjointName() string   { return g.Name() }
func (g SWAP) AdjointName() string   { return g.Name() }
func (g CCZ) AdjointName() string    { return g.Name() }
func (S) AdjointName() string        { return "sdg" }
func (T) AdjointName() string        { return "tdg" }

func (XPhase) IsAdjoint() bool { return false }
func (YPhase) IsAdjoint() bool { return false }
func (ZPhase) IsAdjoint() bool { return false }
func (HAD) IsAdjoint() bool    { return false }
func (CZ) IsAdjoint() bool     { return false }
func (CNOT) IsAdjoint() bool   { return false }
func (SWAP) IsAdjoint() bool   { return false }
func (CCZ) IsAdjoint() bool    { return false }
func (g S) IsAdjoint() bool    { return g.Adjoint }
func (g T) IsAdjoint() bool    { return g.Adjoint }

func (g XPhase) Qubits() []int { return []int{g.Target} }
func (g YPhase) Qubits() []int { return []int{g.Target} }
func (g ZPhase) Qubits() []int { return []int{g.Target} }
func (g HAD) Qubits() []int    { return []int{g.Target} }
func (g CZ) Qubits() []int     { return []int{g.Control, g.Target} }
func (g CNOT) Qubits() []int   { return []int{g.Control, g.Target} }
func (g SWAP) Qubits() []int   { return []int{g.Control, g.Target} }
func (g CCZ) Qubits() []int    { return []int{g.Ctrl1, g.Ctrl2, g.Target} }
func (g S) Qubits() []int      { return []int{g.Target} }
func (g T) Qubits() []int      { return []int{g.Target} }

func (g XPhase) Phases() []float64 { return []float64{g.Phase} }
func (g YPhase) Phases() []float64 { return []float64{g.Phase} }
func (g ZPhase) Phases() []float64 { return []float64{g.Phase} }
func (HAD) Phases() []float64      { return nil }
func (CZ) Phases() []float64       { return nil }
func (CNOT) Phases() []float64     { return nil }
func (SWAP) Phases() []float64     { return nil }
func (CCZ) Phases() []float64      { return nil }

func (g S) Phases() []float64 {
	if g.Adjoint {
		return []float64{-0.5}
	}
	return []float64{0.5}
}

func (g T) Phases() []float64 {
	if g.Adjoint {
		return []float64{-0.25}
	}
	return []float64{0.25}
}

func (XPhase) isGate() {}
func (YPhase) isGate() {}
func (ZPhase) isGate() {}
func (HAD) isGate()    {}
func (CZ) isGate()     {}
func (CNOT) isGate()   {}
func (SWAP) isGate()   {}
func (CCZ) isGate()    {}
func (S) isGate()      {}
func (T) isGate()      {}

// QASMName returns the adjoint name for adjoint gates and the canonical name
// otherwise.
func QASMName(g Gate) string {
	if g.IsAdjoint() {
		return g.AdjointName()
	}
	return g.Name()
}

func format(g Gate) string {
	var sb strings.Builder
	sb.WriteString(QASMName(g))
	if ps := g.Phases(); ps != nil && (g.Name() == "rx" || g.Name() == "ry" || g.Name() == "rz") {
		strs := make([]string, len(ps))
		for i, p := range ps {
			strs[i] = strconv.FormatFloat(p, 'g', -1, 64) + "*pi"
		}
		sb.WriteString("(" + strings.Join(strs, ",") + ")")
	}
	qs := g.Qubits()
	for i, q := range qs {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(',')
		}
		sb.WriteString("q[" + strconv.Itoa(q) + "]")
	}
	return sb.String()
}

func (g XPhase) String() string { return format(g) }
func (g YPhase) String() string { return format(g) }
func (g ZPhase) String() string { return format(g) }
func (g HAD) String() string    { return format(g) }
func (g CZ) String() string     { return format(g) }
func (g CNOT) String() string   { return format(g) }
func (g SWAP) String() string   { return format(g) }
func (g CCZ) String() string    { return format(g) }
func (g S) String() string      { return format(g) }
func (g T) String() string      { return format(g) }
