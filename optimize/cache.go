package optimize

import (
	"github.com/PolyhedraZK/zxtransformer/metrics"
	"github.com/PolyhedraZK/zxtransformer/zx"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"lukechampine.com/blake3"
)

// Cached memoises an optimizer. Units are keyed by the BLAKE3 digest of their
// serialization, so equal units share one entry. It is safe for concurrent use
// when the wrapped optimizer is.
type Cached struct {
	inner Optimizer
	cache *lru.Cache[[32]byte, *zx.Circuit]
}

// NewCached wraps inner with an LRU cache holding up to size results.
func NewCached(inner Optimizer, size int) (*Cached, error) {
	cache, err := lru.New[[32]byte, *zx.Circuit](size)
	if err != nil {
		return nil, errors.Wrap(err, "new optimizer cache")
	}
	return &Cached{inner: inner, cache: cache}, nil
}

func (c *Cached) Optimize(u *zx.Circuit) (*zx.Circuit, error) {
	key := blake3.Sum256(u.Serialize())
	if res, ok := c.cache.Get(key); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return res.Copy(), nil
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()
	res, err := c.inner.Optimize(u)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, res.Copy())
	return res, nil
}

// Len returns the number of cached results.
func (c *Cached) Len() int {
	return c.cache.Len()
}

func (c *Cached) Purge() {
	c.cache.Purge()
}
