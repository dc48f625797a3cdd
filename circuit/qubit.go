package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Qubit is an opaque qubit identifier. Implementations must be comparable so
// they can be used as map keys, and Compare must define a total order across
// every Qubit implementation.
type Qubit interface {
	fmt.Stringer
	Compare(other Qubit) int
}

// LineQubit is a qubit on a line, identified by its position.
type LineQubit int

// NamedQubit is a qubit identified by a name.
type NamedQubit string

// GridQubit is a qubit on a two dimensional grid.
type GridQubit struct {
	Row int
	Col int
}

// LineQubits returns the qubits 0..n-1.
func LineQubits(n int) []Qubit {
	res := make([]Qubit, n)
	for i := 0; i < n; i++ {
		res[i] = LineQubit(i)
	}
	return res
}

// qubits of different types are ordered by type first
func typeRank(q Qubit) int {
	switch q.(type) {
	case GridQubit:
		return 0
	case LineQubit:
		return 1
	case NamedQubit:
		return 2
	}
	return 3
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareRank(a, b Qubit) (int, bool) {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return compareInts(ra, rb), true
	}
	return 0, false
}

func (q LineQubit) String() string {
	return fmt.Sprintf("q(%d)", int(q))
}

func (q LineQubit) Compare(other Qubit) int {
	if r, ok := compareRank(q, other); ok {
		return r
	}
	return compareInts(int(q), int(other.(LineQubit)))
}

func (q NamedQubit) String() string {
	return string(q)
}

func (q NamedQubit) Compare(other Qubit) int {
	if r, ok := compareRank(q, other); ok {
		return r
	}
	return strings.Compare(string(q), string(other.(NamedQubit)))
}

func (q GridQubit) String() string {
	return fmt.Sprintf("q(%d, %d)", q.Row, q.Col)
}

func (q GridQubit) Compare(other Qubit) int {
	if r, ok := compareRank(q, other); ok {
		return r
	}
	o := other.(GridQubit)
	if q.Row != o.Row {
		return compareInts(q.Row, o.Row)
	}
	return compareInts(q.Col, o.Col)
}

// SortQubits sorts qubits in place by their total order.
func SortQubits(qs []Qubit) {
	sort.Slice(qs, func(i, j int) bool {
		return qs[i].Compare(qs[j]) < 0
	})
}
