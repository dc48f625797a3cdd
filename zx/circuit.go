// Package zx is the intermediate circuit representation handed to the
// optimizers: gates addressed by integer qubit indices local to one circuit.
package zx

import (
	"fmt"
	"strings"
)

// Circuit is a translation unit. Gates are applied in slice order.
type Circuit struct {
	NbQubits int
	Gates    []Gate
}

func NewCircuit(nbQubits int) *Circuit {
	return &Circuit{NbQubits: nbQubits}
}

func (c *Circuit) AddGate(g Gate) {
	c.Gates = append(c.Gates, g)
}

// Copy returns a circuit with its own gate slice. Gates are values so the
// copy shares nothing with c.
func (c *Circuit) Copy() *Circuit {
	res := &Circuit{
		NbQubits: c.NbQubits,
		Gates:    make([]Gate, len(c.Gates)),
	}
	copy(res.Gates, c.Gates)
	return res
}

// Validate checks that every gate addresses distinct qubits in [0, NbQubits).
func Validate(c *Circuit) error {
	if c.NbQubits < 0 {
		return fmt.Errorf("negative qubit count %d", c.NbQubits)
	}
	for i, g := range c.Gates {
		if g == nil {
			return fmt.Errorf("gate %d is nil", i)
		}
		qs := g.Qubits()
		for j, q := range qs {
			if q < 0 || q >= c.NbQubits {
				return fmt.Errorf("gate %d (%s): qubit %d is out of bound", i, g, q)
			}
			for k := 0; k < j; k++ {
				if qs[k] == q {
					return fmt.Errorf("gate %d (%s): qubit %d is used twice", i, g, q)
				}
			}
		}
	}
	return nil
}

func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NbQubits)
	for _, g := range c.Gates {
		sb.WriteString(g.String())
		sb.WriteString(";\n")
	}
	return sb.String()
}

func (c *Circuit) Print() {
	fmt.Print(c.String())
}
