package test

import (
	"fmt"
	"math/rand"

	"github.com/PolyhedraZK/zxtransformer/circuit"
)

type RandRange struct {
	L int
	R int
}

func (rr RandRange) sample(r *rand.Rand) int {
	return r.Intn(rr.R-rr.L+1) + rr.L
}

// RandomCircuitConfig drives RandomCircuit. The percentages are cumulative
// thresholds on a draw in [0, 100): below PhasePercent a power gate with a
// random exponent, then Clifford single qubit gates, two qubit gates, CCZ,
// and above CCZPercent an operation that cannot be translated.
type RandomCircuitConfig struct {
	Seed            int64
	NbQubits        RandRange
	NbOps           RandRange
	PhasePercent    int
	CliffordPercent int
	TwoQubitPercent int
	CCZPercent      int
}

// UnitaryOnly returns a configuration whose circuits have a unitary.
func UnitaryOnly(seed int64, nbQubits, nbOps RandRange) *RandomCircuitConfig {
	return &RandomCircuitConfig{
		Seed:            seed,
		NbQubits:        nbQubits,
		NbOps:           nbOps,
		PhasePercent:    25,
		CliffordPercent: 55,
		TwoQubitPercent: 90,
		CCZPercent:      100,
	}
}

var cliffords = []circuit.Gate{circuit.X, circuit.Y, circuit.Z, circuit.H, circuit.S, circuit.T}

var twoQubitGates = []circuit.Gate{circuit.CZ, circuit.CNOT, circuit.SWAP}

// RandomCircuit generates a circuit. The result depends only on conf.
func RandomCircuit(conf *RandomCircuitConfig) *circuit.Circuit {
	r := rand.New(rand.NewSource(conf.Seed))
	n := conf.NbQubits.sample(r)
	qubits := circuit.LineQubits(n)
	pick := func(k int) []circuit.Qubit {
		p := r.Perm(n)
		res := make([]circuit.Qubit, k)
		for i := 0; i < k; i++ {
			res[i] = qubits[p[i]]
		}
		return res
	}
	c := circuit.New()
	m := conf.NbOps.sample(r)
	for i := 0; i < m; i++ {
		op := r.Intn(100)
		switch {
		case op < conf.PhasePercent:
			kind := []circuit.Kind{circuit.XPow, circuit.YPow, circuit.ZPow}[r.Intn(3)]
			// half of the exponents are multiples of 1/4 so that rewrites trigger
			t := r.Float64()*4 - 2
			if r.Intn(2) == 0 {
				t = float64(r.Intn(16)-8) / 4
			}
			c.Append(circuit.PowGate(kind, t).On(pick(1)...))
		case op < conf.CliffordPercent:
			c.Append(cliffords[r.Intn(len(cliffords))].On(pick(1)...))
		case op < conf.TwoQubitPercent && n >= 2:
			c.Append(twoQubitGates[r.Intn(len(twoQubitGates))].On(pick(2)...))
		case op < conf.CCZPercent && n >= 3:
			c.Append(circuit.CCZ.On(pick(3)...))
		case op < conf.CCZPercent:
			c.Append(circuit.H.On(pick(1)...))
		default:
			switch r.Intn(3) {
			case 0:
				c.Append(circuit.MeasureGate(fmt.Sprintf("m%d", i)).On(pick(1)...))
			case 1:
				c.Append(circuit.H.On(pick(1)...).WithClassicalControls(fmt.Sprintf("k%d", r.Intn(3))))
			default:
				c.Append(circuit.CustomGate("u", 1).On(pick(1)...))
			}
		}
	}
	return c
}
