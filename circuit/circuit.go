// Package circuit is the host circuit model: qubits, gates, operations and
// moments, with an append strategy that keeps every moment free of conflicts.
package circuit

import (
	"strings"
)

// Moment is one time step. Operations in a moment act on disjoint qubits.
type Moment struct {
	Operations []Operation
}

func (m Moment) touches(op Operation) bool {
	for _, other := range m.Operations {
		for _, q := range other.Qubits {
			for _, p := range op.Qubits {
				if q == p {
					return true
				}
			}
		}
		for _, k := range other.keys() {
			for _, l := range op.keys() {
				if k == l {
					return true
				}
			}
		}
	}
	return false
}

// Reader is the read-only view of a circuit consumed by the segmenter.
type Reader interface {
	// AllQubits returns every qubit used by the circuit in sorted order.
	AllQubits() []Qubit
	// Moments returns the moments in time order.
	Moments() []Moment
}

// Circuit is an ordered sequence of moments.
type Circuit struct {
	moments []Moment
}

// New returns a circuit holding ops, each appended with Append.
func New(ops ...Operation) *Circuit {
	c := &Circuit{}
	c.Append(ops...)
	return c
}

// FromMoments builds a circuit holding a copy of the given moments as they are.
func FromMoments(moments []Moment) *Circuit {
	c := &Circuit{moments: make([]Moment, len(moments))}
	for i, m := range moments {
		ops := make([]Operation, len(m.Operations))
		for j, op := range m.Operations {
			ops[j] = op.clone()
		}
		c.moments[i] = Moment{Operations: ops}
	}
	return c
}

// Append places each operation in the earliest moment after the last moment
// it conflicts with, creating a new moment at the end when needed.
func (c *Circuit) Append(ops ...Operation) {
	for _, op := range ops {
		idx := 0
		for i := len(c.moments) - 1; i >= 0; i-- {
			if c.moments[i].touches(op) {
				idx = i + 1
				break
			}
		}
		if idx == len(c.moments) {
			c.moments = append(c.moments, Moment{})
		}
		c.moments[idx].Operations = append(c.moments[idx].Operations, op.clone())
	}
}

func (c *Circuit) Moments() []Moment {
	return c.moments
}

func (c *Circuit) AllQubits() []Qubit {
	seen := make(map[Qubit]bool)
	res := []Qubit{}
	for _, m := range c.moments {
		for _, op := range m.Operations {
			for _, q := range op.Qubits {
				if !seen[q] {
					seen[q] = true
					res = append(res, q)
				}
			}
		}
	}
	SortQubits(res)
	return res
}

// AllOperations returns the operations moment by moment.
func (c *Circuit) AllOperations() []Operation {
	return Operations(c)
}

func (c *Circuit) NumOperations() int {
	n := 0
	for _, m := range c.moments {
		n += len(m.Operations)
	}
	return n
}

func (c *Circuit) Copy() *Circuit {
	return FromMoments(c.moments)
}

func (c *Circuit) String() string {
	var sb strings.Builder
	for i, m := range c.moments {
		ops := make([]string, len(m.Operations))
		for j, op := range m.Operations {
			ops[j] = op.String()
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(ops, " | "))
	}
	return sb.String()
}

// Operations linearises any Reader moment by moment.
func Operations(r Reader) []Operation {
	res := []Operation{}
	for _, m := range r.Moments() {
		res = append(res, m.Operations...)
	}
	return res
}
