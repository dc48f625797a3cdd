// Package segment splits a host circuit into maximal runs of translatable
// gates, each held in a translation unit, and the operations in between.
package segment

import (
	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/translate"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/pkg/errors"
)

// IndexMap is the bijection between the circuit's qubits and [0, n).
type IndexMap struct {
	qubits []circuit.Qubit
	index  map[circuit.Qubit]int
}

// NewIndexMap numbers qubits in the given order.
func NewIndexMap(qubits []circuit.Qubit) *IndexMap {
	m := &IndexMap{
		qubits: append([]circuit.Qubit(nil), qubits...),
		index:  make(map[circuit.Qubit]int, len(qubits)),
	}
	for i, q := range m.qubits {
		m.index[q] = i
	}
	return m
}

// Len returns the number of qubits.
func (m *IndexMap) Len() int {
	return len(m.qubits)
}

// Index returns the index of q and whether q belongs to the map.
func (m *IndexMap) Index(q circuit.Qubit) (int, bool) {
	i, ok := m.index[q]
	return i, ok
}

// Qubits returns the qubits in index order. The slice must not be modified.
func (m *IndexMap) Qubits() []circuit.Qubit {
	return m.qubits
}

// Element is either a translation unit or a single operation kept verbatim.
// Exactly one of Unit and Op is set; build elements with UnitElement and
// OpElement.
type Element struct {
	Unit *zx.Circuit
	Op   circuit.Operation
}

// UnitElement wraps a translation unit.
func UnitElement(u *zx.Circuit) Element {
	if u == nil {
		panic("segment: nil translation unit")
	}
	return Element{Unit: u}
}

// OpElement wraps an operation kept verbatim.
func OpElement(op circuit.Operation) Element {
	return Element{Op: op}
}

// IsUnit reports whether e holds a translation unit.
func (e Element) IsUnit() bool {
	return e.Unit != nil
}

// List is the ordered output of Segment.
type List []Element

// Segmenter decides which operations are translated.
type Segmenter struct {
	ignoreTags map[string]bool
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// IgnoreTags passes operations carrying any of the tags through untouched.
func IgnoreTags(tags ...string) Option {
	return func(s *Segmenter) {
		for _, t := range tags {
			s.ignoreTags[t] = true
		}
	}
}

// New returns a Segmenter translating every supported operation.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{ignoreTags: make(map[string]bool)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Segment partitions r with a default Segmenter.
func Segment(r circuit.Reader) (List, *IndexMap, error) {
	return New().Segment(r)
}

func (s *Segmenter) passThrough(op circuit.Operation) bool {
	if op.HasClassicalControls() || !translate.Translatable(op.Gate) {
		return true
	}
	for _, t := range op.Tags {
		if s.ignoreTags[t] {
			return true
		}
	}
	return false
}

// Segment walks r moment by moment. Runs of translatable operations are
// collected into translation units sized to every qubit of r; any other
// operation closes the open unit and is appended on its own. Translation
// errors abort segmentation.
func (s *Segmenter) Segment(r circuit.Reader) (List, *IndexMap, error) {
	idx := NewIndexMap(r.AllQubits())
	res := List{}
	var cur *zx.Circuit
	flush := func() {
		if cur != nil {
			res = append(res, UnitElement(cur))
			cur = nil
		}
	}
	for mi, m := range r.Moments() {
		for _, op := range m.Operations {
			if s.passThrough(op) {
				flush()
				res = append(res, OpElement(op))
				continue
			}
			qubits := make([]int, len(op.Qubits))
			for i, q := range op.Qubits {
				id, ok := idx.Index(q)
				if !ok {
					return nil, nil, errors.Errorf("moment %d: %s uses unknown qubit %s", mi, op, q)
				}
				qubits[i] = id
			}
			g, err := translate.ToZX(op.Gate, qubits)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "moment %d: %s", mi, op)
			}
			if g == nil {
				flush()
				res = append(res, OpElement(op))
				continue
			}
			if cur == nil {
				cur = zx.NewCircuit(idx.Len())
			}
			cur.AddGate(g)
		}
	}
	flush()
	return res, idx, nil
}

// NumUnits returns the number of translation units in the list.
func (l List) NumUnits() int {
	n := 0
	for _, e := range l {
		if e.IsUnit() {
			n++
		}
	}
	return n
}

// Operations flattens the list back into host operations, translating the
// gates of each unit in order.
func (l List) Operations(idx *IndexMap) ([]circuit.Operation, error) {
	res := []circuit.Operation{}
	for i, e := range l {
		if !e.IsUnit() {
			res = append(res, e.Op)
			continue
		}
		for j, g := range e.Unit.Gates {
			op, err := translate.ToHost(g, idx.Qubits())
			if err != nil {
				return nil, errors.Wrapf(err, "segment %d gate %d", i, j)
			}
			res = append(res, op)
		}
	}
	return res, nil
}
