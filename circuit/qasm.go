package circuit

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrQASM is returned for programs outside the supported OpenQASM 2.0 subset.
var ErrQASM = errors.New("invalid qasm")

var (
	regRegex     = regexp.MustCompile(`^(qreg|creg)\s+(\w+)\s*\[\s*(\d+)\s*\]$`)
	measureRegex = regexp.MustCompile(`^measure\s+(\w+)\s*\[\s*(\d+)\s*\]\s*->\s*(\w+)\s*\[\s*(\d+)\s*\]$`)
	ifRegex      = regexp.MustCompile(`^if\s*\(\s*(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*==\s*(\d+)\s*\)\s*(.+)$`)
	gateRegex    = regexp.MustCompile(`^(\w+)\s*(?:\(([^)]*)\))?\s+(.+)$`)
	argRegex     = regexp.MustCompile(`^(\w+)\s*(?:\[\s*(\d+)\s*\])?$`)
)

var fixedGates = map[string]Gate{
	"x":    X,
	"y":    Y,
	"z":    Z,
	"h":    H,
	"s":    S,
	"sdg":  PowGate(ZPow, -0.5),
	"t":    T,
	"tdg":  PowGate(ZPow, -0.25),
	"cx":   CNOT,
	"CX":   CNOT,
	"cz":   CZ,
	"swap": SWAP,
	"ccz":  CCZ,
}

var rotationGates = map[string]Kind{
	"rx": XPow,
	"ry": YPow,
	"rz": ZPow,
}

type qasmReader struct {
	qreg  string
	nbQ   int
	cregs map[string]int
	c     *Circuit
}

// ParseQASM reads a program in the supported OpenQASM 2.0 subset. Unknown
// gates become custom gates that are preserved verbatim. Conditions on a
// single bit such as if(m[1]==1) are accepted, although FormatQASM only
// writes conditions on whole one bit registers.
func ParseQASM(src string) (*Circuit, error) {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		if k := strings.Index(l, "//"); k >= 0 {
			lines[i] = l[:k]
		}
	}
	r := &qasmReader{cregs: make(map[string]int), c: New()}
	for n, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		stmt = strings.Join(strings.Fields(stmt), " ")
		if stmt == "" {
			continue
		}
		if err := r.statement(stmt); err != nil {
			return nil, errors.Wrapf(err, "statement %d %q", n+1, stmt)
		}
	}
	return r.c, nil
}

func (r *qasmReader) statement(stmt string) error {
	if strings.HasPrefix(stmt, "OPENQASM") || strings.HasPrefix(stmt, "include") {
		return nil
	}
	if strings.HasPrefix(stmt, "gate ") || strings.HasPrefix(stmt, "opaque ") {
		return errors.Wrap(ErrQASM, "gate definitions are not supported")
	}
	if m := regRegex.FindStringSubmatch(stmt); m != nil {
		size, _ := strconv.Atoi(m[3])
		if m[1] == "creg" {
			r.cregs[m[2]] = size
			return nil
		}
		if r.qreg != "" {
			return errors.Wrap(ErrQASM, "only one qreg is supported")
		}
		r.qreg, r.nbQ = m[2], size
		return nil
	}
	ops, err := r.operations(stmt)
	if err != nil {
		return err
	}
	r.c.Append(ops...)
	return nil
}

func (r *qasmReader) operations(stmt string) ([]Operation, error) {
	if m := ifRegex.FindStringSubmatch(stmt); m != nil {
		if m[3] != "1" {
			return nil, errors.Wrapf(ErrQASM, "only conditions on value 1 are supported")
		}
		key, err := r.classicalKey(m[1], m[2])
		if err != nil {
			return nil, err
		}
		ops, err := r.operations(m[4])
		if err != nil {
			return nil, err
		}
		for i := range ops {
			ops[i] = ops[i].WithClassicalControls(key)
		}
		return ops, nil
	}
	if m := measureRegex.FindStringSubmatch(stmt); m != nil {
		q, err := r.qubit(m[1], m[2])
		if err != nil {
			return nil, err
		}
		key, err := r.classicalKey(m[3], m[4])
		if err != nil {
			return nil, err
		}
		return []Operation{MeasureGate(key).On(q)}, nil
	}
	m := gateRegex.FindStringSubmatch(stmt)
	if m == nil {
		return nil, errors.Wrap(ErrQASM, "malformed statement")
	}
	name, params, args := m[1], m[2], strings.Split(m[3], ",")

	var gate Gate
	if g, ok := fixedGates[name]; ok && params == "" {
		gate = g
	} else if k, ok := rotationGates[name]; ok {
		rads, err := ParseAngle(params)
		if err != nil {
			return nil, errors.Wrap(ErrQASM, err.Error())
		}
		gate = PowGate(k, rads/math.Pi)
	} else {
		raw := name
		if params != "" {
			raw += "(" + params + ")"
		}
		gate = CustomGate(raw, 0)
	}

	// a bare register applies a single qubit gate to every qubit
	if len(args) == 1 && gate.Kind != Custom && gate.NumQubits() == 1 {
		if am := argRegex.FindStringSubmatch(strings.TrimSpace(args[0])); am != nil && am[2] == "" && am[1] == r.qreg {
			ops := make([]Operation, r.nbQ)
			for i := 0; i < r.nbQ; i++ {
				ops[i] = gate.On(LineQubit(i))
			}
			return ops, nil
		}
	}

	qubits := []Qubit{}
	for _, a := range args {
		am := argRegex.FindStringSubmatch(strings.TrimSpace(a))
		if am == nil {
			return nil, errors.Wrapf(ErrQASM, "malformed argument %q", a)
		}
		if am[2] == "" && gate.Kind == Custom && am[1] == r.qreg {
			qubits = append(qubits, LineQubits(r.nbQ)...)
			continue
		}
		q, err := r.qubit(am[1], am[2])
		if err != nil {
			return nil, err
		}
		qubits = append(qubits, q)
	}
	if gate.Kind == Custom {
		gate.Arity = len(qubits)
	}
	if len(qubits) != gate.NumQubits() {
		return nil, errors.Wrapf(ErrQASM, "%s expects %d qubits, got %d", name, gate.NumQubits(), len(qubits))
	}
	for i := range qubits {
		for j := 0; j < i; j++ {
			if qubits[i] == qubits[j] {
				return nil, errors.Wrapf(ErrQASM, "%s applied twice to %s", name, qubits[i])
			}
		}
	}
	return []Operation{gate.On(qubits...)}, nil
}

func (r *qasmReader) qubit(reg, idx string) (Qubit, error) {
	if reg != r.qreg {
		return nil, errors.Wrapf(ErrQASM, "unknown qreg %q", reg)
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i >= r.nbQ {
		return nil, errors.Wrapf(ErrQASM, "qubit %s[%s] out of range", reg, idx)
	}
	return LineQubit(i), nil
}

// classicalKey names a classical bit: the register name for one bit
// registers, "name[i]" otherwise.
func (r *qasmReader) classicalKey(reg, idx string) (string, error) {
	size, ok := r.cregs[reg]
	if !ok {
		return "", errors.Wrapf(ErrQASM, "unknown creg %q", reg)
	}
	if idx == "" {
		if size != 1 {
			return "", errors.Wrapf(ErrQASM, "condition on the whole %d bit register %q", size, reg)
		}
		return reg, nil
	}
	i, _ := strconv.Atoi(idx)
	if i >= size {
		return "", errors.Wrapf(ErrQASM, "bit %s[%d] out of range", reg, i)
	}
	if size == 1 {
		return reg, nil
	}
	return fmt.Sprintf("%s[%d]", reg, i), nil
}

var keyRegex = regexp.MustCompile(`^(\w+)(?:\[(\d+)\])?$`)

// FormatQASM writes the circuit as OpenQASM 2.0. Qubits are numbered by their
// sorted order.
func FormatQASM(r Reader) (string, error) {
	qubits := r.AllQubits()
	index := make(map[Qubit]int, len(qubits))
	for i, q := range qubits {
		index[q] = i
	}
	ops := Operations(r)

	cregs := map[string]int{}
	addKey := func(key string) error {
		m := keyRegex.FindStringSubmatch(key)
		if m == nil {
			return errors.Wrapf(ErrQASM, "classical key %q has no qasm form", key)
		}
		size := 1
		if m[2] != "" {
			i, _ := strconv.Atoi(m[2])
			size = i + 1
		}
		if size > cregs[m[1]] {
			cregs[m[1]] = size
		}
		return nil
	}
	for _, op := range ops {
		for _, k := range op.keys() {
			if err := addKey(k); err != nil {
				return "", err
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", len(qubits))
	names := make([]string, 0, len(cregs))
	for name := range cregs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "creg %s[%d];\n", name, cregs[name])
	}

	for _, op := range ops {
		line, err := formatOperation(op, index, cregs)
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
		sb.WriteString(";\n")
	}
	return sb.String(), nil
}

func formatBit(key string) string {
	if strings.HasSuffix(key, "]") {
		return key
	}
	return key + "[0]"
}

// formatCondition writes a condition on key. OpenQASM 2.0 only compares whole
// registers, so key must name a register of one bit.
func formatCondition(key string, cregs map[string]int) (string, error) {
	m := keyRegex.FindStringSubmatch(key)
	if m == nil || cregs[m[1]] != 1 {
		return "", errors.Wrapf(ErrQASM, "condition on %q is not a whole one bit register", key)
	}
	return fmt.Sprintf("if(%s==1) ", m[1]), nil
}

func formatOperation(op Operation, index map[Qubit]int, cregs map[string]int) (string, error) {
	args := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		args[i] = fmt.Sprintf("q[%d]", index[q])
	}
	prefix := ""
	switch len(op.Conditions) {
	case 0:
	case 1:
		var err error
		if prefix, err = formatCondition(op.Conditions[0], cregs); err != nil {
			return "", errors.Wrapf(err, "%s", op)
		}
	default:
		return "", errors.Wrapf(ErrQASM, "%s has more than one classical control", op)
	}

	g := op.Gate
	var name string
	switch g.Kind {
	case Measure:
		return prefix + fmt.Sprintf("measure %s -> %s", args[0], formatBit(g.Key)), nil
	case Custom:
		return prefix + g.Name + " " + strings.Join(args, ","), nil
	case XPow, YPow, ZPow:
		name = rotationName(g)
	case HPow, CZPow, CNotPow, SwapPow, CCZPow:
		if g.Exponent != 1 {
			return "", errors.Wrapf(ErrQASM, "%s has no qasm form", g)
		}
		name = map[Kind]string{HPow: "h", CZPow: "cz", CNotPow: "cx", SwapPow: "swap", CCZPow: "ccz"}[g.Kind]
	default:
		return "", errors.Wrapf(ErrQASM, "unknown gate %s", g)
	}
	return prefix + name + " " + strings.Join(args, ","), nil
}

func rotationName(g Gate) string {
	base := map[Kind]string{XPow: "x", YPow: "y", ZPow: "z"}[g.Kind]
	switch {
	case g.Exponent == 1:
		return base
	case g.Kind == ZPow && g.Exponent == 0.5:
		return "s"
	case g.Kind == ZPow && g.Exponent == -0.5:
		return "sdg"
	case g.Kind == ZPow && g.Exponent == 0.25:
		return "t"
	case g.Kind == ZPow && g.Exponent == -0.25:
		return "tdg"
	}
	return "r" + base + "(" + strconv.FormatFloat(g.Exponent, 'g', -1, 64) + "*pi)"
}
