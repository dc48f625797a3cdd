package zx

import "math"

type Stats struct {
	// number of gates of any kind
	NbGates int
	// number of gates acting on two or more qubits
	NbMultiQubit int
	NbCCZ        int
	// number of phase gates whose phase is not a multiple of 1/2
	NbNonClifford int
	// number of gates per canonical name
	NbByName map[string]int
}

// GetStats collects gate counts of the circuit.
func (c *Circuit) GetStats() Stats {
	r := Stats{NbByName: make(map[string]int)}
	for _, g := range c.Gates {
		r.NbGates++
		r.NbByName[g.Name()]++
		if len(g.Qubits()) >= 2 {
			r.NbMultiQubit++
		}
		if _, ok := g.(CCZ); ok {
			r.NbCCZ++
		}
		for _, p := range g.Phases() {
			if !IsMultipleOf(p, 0.5) {
				r.NbNonClifford++
				break
			}
		}
	}
	return r
}

// PhaseTolerance is the slack used when comparing phases.
const PhaseTolerance = 1e-9

// NormalizePhase maps a phase to [0, 2).
func NormalizePhase(p float64) float64 {
	p = math.Mod(p, 2)
	if p < 0 {
		p += 2
	}
	if p >= 2-PhaseTolerance {
		p = 0
	}
	return p
}

// IsZeroPhase reports whether the phase is a multiple of 2 within tolerance.
func IsZeroPhase(p float64) bool {
	return NormalizePhase(p) < PhaseTolerance
}

// IsMultipleOf reports whether p is an integer multiple of step.
func IsMultipleOf(p, step float64) bool {
	r := p / step
	return math.Abs(r-math.Round(r)) < PhaseTolerance
}
