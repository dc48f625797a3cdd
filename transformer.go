// Package zxtransformer optimizes host circuits by translating maximal runs of
// supported gates into the intermediate representation, running an optimizer
// on each run and translating the result back. Measurements, classically
// controlled operations and unsupported gates are kept verbatim, in place.
package zxtransformer

import (
	"time"

	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/metrics"
	"github.com/PolyhedraZK/zxtransformer/optimize"
	"github.com/PolyhedraZK/zxtransformer/segment"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrInvalidUnit is returned when an optimizer produces a unit that does not
// fit the qubits of the segment it replaces.
var ErrInvalidUnit = errors.New("invalid optimized unit")

// Transformer holds the optimization strategy. Every Transform call builds
// its own segment list and qubit index map, so a Transformer may be shared by
// goroutines as long as its optimizer is safe for concurrent use.
type Transformer struct {
	optimizer optimize.Optimizer
	segmenter *segment.Segmenter
	log       zerolog.Logger
}

// New returns a Transformer running optimize.FullReduce unless an option
// says otherwise.
func New(opts ...Option) (*Transformer, error) {
	conf := transformerConfig{}
	for _, o := range opts {
		if err := o(&conf); err != nil {
			return nil, errors.Wrap(err, "apply option")
		}
	}
	t := &Transformer{
		optimizer: conf.optimizer,
		segmenter: segment.New(segment.IgnoreTags(conf.ignoreTags...)),
	}
	if t.optimizer == nil {
		t.optimizer = optimize.FullReduce()
	}
	if conf.cacheSize > 0 {
		cached, err := optimize.NewCached(t.optimizer, conf.cacheSize)
		if err != nil {
			return nil, err
		}
		t.optimizer = cached
	}
	if conf.log != nil {
		t.log = *conf.log
	} else {
		t.log = logger.Logger()
	}
	return t, nil
}

// FullReduce transforms c with the default strategy.
func FullReduce(c circuit.Reader) (*circuit.Circuit, error) {
	t, err := New()
	if err != nil {
		return nil, err
	}
	return t.Transform(c)
}

// Transform returns an optimized copy of c. c is never modified. Any
// translation or optimizer error aborts the whole call.
func (t *Transformer) Transform(c circuit.Reader) (*circuit.Circuit, error) {
	start := time.Now()
	defer func() {
		metrics.TransformDuration.Observe(time.Since(start).Seconds())
	}()

	res, result, err := t.transform(c)
	metrics.Transforms.WithLabelValues(result).Inc()
	if err != nil {
		t.log.Err(err).Msg("transform failed")
		return nil, err
	}
	return res, nil
}

func (t *Transformer) transform(c circuit.Reader) (*circuit.Circuit, string, error) {
	segs, idx, err := t.segmenter.Segment(c)
	if err != nil {
		return nil, "error", errors.Wrap(err, "segment")
	}
	if len(segs) == 0 {
		return circuit.FromMoments(c.Moments()), "empty", nil
	}

	optimized, err := t.optimizeUnits(segs)
	if err != nil {
		return nil, "error", err
	}

	ops, err := optimized.Operations(idx)
	if err != nil {
		return nil, "error", errors.Wrap(err, "recover circuit")
	}
	out := circuit.New(ops...)

	gatesIn, gatesOut := 0, 0
	for i := range segs {
		if segs[i].IsUnit() {
			gatesIn += len(segs[i].Unit.Gates)
			gatesOut += len(optimized[i].Unit.Gates)
		}
	}
	t.log.Info().
		Int("nbQubits", idx.Len()).
		Int("nbSegments", len(segs)).
		Int("nbUnits", segs.NumUnits()).
		Int("nbGatesIn", gatesIn).
		Int("nbGatesOut", gatesOut).
		Int("nbOperations", out.NumOperations()).
		Msg("transformed circuit")
	return out, "ok", nil
}

// optimizeUnits runs the optimizer on every unit of segs, leaving the
// verbatim operations alone. segs is not modified.
func (t *Transformer) optimizeUnits(segs segment.List) (segment.List, error) {
	res := make(segment.List, len(segs))
	for i, e := range segs {
		if !e.IsUnit() {
			metrics.Segments.WithLabelValues("passthrough").Inc()
			t.log.Debug().Int("segment", i).Stringer("op", e.Op).Msg("passing operation through")
			res[i] = e
			continue
		}
		metrics.Segments.WithLabelValues("unit").Inc()
		u, err := t.optimizer.Optimize(e.Unit)
		if err != nil {
			return nil, errors.Wrapf(err, "optimize segment %d", i)
		}
		if err := checkUnit(e.Unit, u); err != nil {
			return nil, errors.Wrapf(ErrInvalidUnit, "segment %d: %v", i, err)
		}
		metrics.GatesIn.Add(float64(len(e.Unit.Gates)))
		metrics.GatesOut.Add(float64(len(u.Gates)))
		t.log.Debug().
			Int("segment", i).
			Int("nbGatesIn", len(e.Unit.Gates)).
			Int("nbGatesOut", len(u.Gates)).
			Msg("optimized segment")
		res[i] = segment.UnitElement(u)
	}
	return res, nil
}

func checkUnit(in, out *zx.Circuit) error {
	if out == nil {
		return errors.New("optimizer returned no circuit")
	}
	if out.NbQubits != in.NbQubits {
		return errors.Errorf("qubit count changed from %d to %d", in.NbQubits, out.NbQubits)
	}
	return zx.Validate(out)
}
