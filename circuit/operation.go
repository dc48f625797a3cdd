package circuit

import (
	"strings"
)

// Operation is a gate applied to an ordered tuple of qubits. Conditions holds
// the classical keys the operation is controlled by; Tags are free-form labels.
type Operation struct {
	Gate       Gate
	Qubits     []Qubit
	Conditions []string
	Tags       []string
}

// WithClassicalControls returns a copy of the operation conditioned on keys.
func (op Operation) WithClassicalControls(keys ...string) Operation {
	res := op.clone()
	res.Conditions = append(res.Conditions, keys...)
	return res
}

// WithTags returns a copy of the operation carrying the additional tags.
func (op Operation) WithTags(tags ...string) Operation {
	res := op.clone()
	res.Tags = append(res.Tags, tags...)
	return res
}

func (op Operation) HasClassicalControls() bool {
	return len(op.Conditions) > 0
}

func (op Operation) HasTag(tag string) bool {
	for _, t := range op.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// keys returns the classical keys the operation writes or reads.
func (op Operation) keys() []string {
	keys := op.Conditions
	if op.Gate.Kind == Measure {
		keys = append(append([]string{}, keys...), op.Gate.Key)
	}
	return keys
}

func (op Operation) clone() Operation {
	return Operation{
		Gate:       op.Gate,
		Qubits:     append([]Qubit(nil), op.Qubits...),
		Conditions: append([]string(nil), op.Conditions...),
		Tags:       append([]string(nil), op.Tags...),
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal reports whether both operations apply the same gate to the same
// qubits with the same classical controls and tags.
func (op Operation) Equal(other Operation) bool {
	if op.Gate != other.Gate || len(op.Qubits) != len(other.Qubits) {
		return false
	}
	for i := range op.Qubits {
		if op.Qubits[i] != other.Qubits[i] {
			return false
		}
	}
	return equalStrings(op.Conditions, other.Conditions) && equalStrings(op.Tags, other.Tags)
}

func (op Operation) String() string {
	qs := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		qs[i] = q.String()
	}
	s := op.Gate.String() + "(" + strings.Join(qs, ", ") + ")"
	if len(op.Conditions) > 0 {
		s += ".with_classical_controls(" + strings.Join(op.Conditions, ", ") + ")"
	}
	if len(op.Tags) > 0 {
		s += "[" + strings.Join(op.Tags, ", ") + "]"
	}
	return s
}
