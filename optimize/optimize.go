// Package optimize holds the strategies the transformer runs on each
// translation unit.
package optimize

import (
	"sort"

	"github.com/PolyhedraZK/zxtransformer/simplify"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/pkg/errors"
)

// Optimizer rewrites a translation unit. The result must keep the qubit count
// of its input. Implementations must not modify their argument.
type Optimizer interface {
	Optimize(c *zx.Circuit) (*zx.Circuit, error)
}

// Func adapts a function to the Optimizer interface.
type Func func(c *zx.Circuit) (*zx.Circuit, error)

func (f Func) Optimize(c *zx.Circuit) (*zx.Circuit, error) {
	return f(c)
}

// Identity returns every unit unchanged.
func Identity() Optimizer {
	return Func(func(c *zx.Circuit) (*zx.Circuit, error) {
		return c.Copy(), nil
	})
}

// FullReduce builds a gate graph, reduces it and extracts the result. It is
// the default strategy.
func FullReduce() Optimizer {
	return Func(func(c *zx.Circuit) (*zx.Circuit, error) {
		g := simplify.FromCircuit(c)
		simplify.FullReduce(g)
		return g.Extract(), nil
	})
}

// BasicGates normalises every unit to ZPhase, HAD and CNOT without
// simplifying.
func BasicGates() Optimizer {
	return Func(func(c *zx.Circuit) (*zx.Circuit, error) {
		return simplify.BasicGates(c), nil
	})
}

// Chain runs the optimizers in order, feeding each the previous result.
func Chain(opts ...Optimizer) Optimizer {
	return Func(func(c *zx.Circuit) (*zx.Circuit, error) {
		cur := c
		for i, o := range opts {
			next, err := o.Optimize(cur)
			if err != nil {
				return nil, errors.Wrapf(err, "chain step %d", i)
			}
			cur = next
		}
		if cur == c {
			cur = c.Copy()
		}
		return cur, nil
	})
}

var registry = map[string]func() Optimizer{
	"identity":    Identity,
	"full_reduce": FullReduce,
	"basic_gates": BasicGates,
}

// ByName returns one of the registered strategies.
func ByName(name string) (Optimizer, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown optimizer %q (known: %v)", name, Names())
	}
	return f(), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	res := make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
