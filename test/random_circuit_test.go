package test

import (
	"fmt"
	"testing"

	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/optimize"
	"github.com/PolyhedraZK/zxtransformer/segment"
	"github.com/stretchr/testify/require"
)

func TestRandomCircuitDeterministic(t *testing.T) {
	conf := UnitaryOnly(7, RandRange{3, 4}, RandRange{20, 30})
	a := RandomCircuit(conf)
	b := RandomCircuit(conf)
	NewAssert(t).SameOperations(a.AllOperations(), b.AllOperations())
}

func TestRandomCircuitOptimizers(t *testing.T) {
	for _, name := range optimize.Names() {
		o, err := optimize.ByName(name)
		require.NoError(t, err)
		for i := 0; i < 30; i++ {
			t.Run(fmt.Sprintf("%s/%d", name, i), func(t *testing.T) {
				c := RandomCircuit(UnitaryOnly(int64(i), RandRange{1, 4}, RandRange{1, 40}))
				segs, idx, err := segment.Segment(c)
				require.NoError(t, err)
				require.LessOrEqual(t, len(segs), 1)
				if len(segs) == 0 {
					return
				}
				u, err := o.Optimize(segs[0].Unit)
				require.NoError(t, err)
				NewAssert(t).SameUnitaryZX(segs[0].Unit, u)

				ops, err := segment.List{{Unit: u}}.Operations(idx)
				require.NoError(t, err)
				NewAssert(t).SameUnitary(c, circuit.New(ops...))
			})
		}
	}
}

func TestRandomCircuitFullReduceShrinks(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := RandomCircuit(UnitaryOnly(int64(100+i), RandRange{2, 3}, RandRange{10, 50}))
		segs, _, err := segment.Segment(c)
		require.NoError(t, err)
		u, err := optimize.FullReduce().Optimize(segs[0].Unit)
		require.NoError(t, err)
		require.LessOrEqual(t, len(u.Gates), len(segs[0].Unit.Gates))
	}
}

func TestRandomCircuitSegmentation(t *testing.T) {
	for i := 0; i < 30; i++ {
		conf := UnitaryOnly(int64(200+i), RandRange{1, 4}, RandRange{1, 40})
		conf.CCZPercent = 80
		c := RandomCircuit(conf)
		segs, idx, err := segment.Segment(c)
		require.NoError(t, err)
		require.Equal(t, len(c.AllQubits()), idx.Len())

		// consecutive units never occur, and every unit spans every qubit
		for j, e := range segs {
			if e.IsUnit() {
				require.Equal(t, idx.Len(), e.Unit.NbQubits)
				require.NotEmpty(t, e.Unit.Gates)
				if j > 0 {
					require.False(t, segs[j-1].IsUnit())
				}
			}
		}

		ops, err := segs.Operations(idx)
		require.NoError(t, err)
		NewAssert(t).SameOperations(circuit.Operations(c), ops)
	}
}
