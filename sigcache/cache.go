package sigcache

import (
	"github.com/ledgercore/sigcache/crypto"
	"github.com/ledgercore/sigcache/libs/log"
	"github.com/ledgercore/sigcache/libs/rand"
	cmtsync "github.com/ledgercore/sigcache/libs/sync"
)

// SigCache defines the store of known-valid signature fingerprints consulted
// by a CachingVerifier. Membership of a fingerprint means a prior
// verification with the exact same inputs returned valid.
type SigCache interface {
	// Fingerprint derives the cache key for a verification triple.
	Fingerprint(msgHash, pubKey, sig []byte) Fingerprint

	// Has reports whether fp is present. Checking for presence is not
	// treated as an access of the entry.
	Has(fp Fingerprint) bool

	// Push adds fp, evicting random entries first if the store would exceed
	// its byte bound. It returns true if fp was newly added.
	Push(fp Fingerprint) bool

	// Remove deletes fp if present.
	Remove(fp Fingerprint)

	// Reset resets the cache to an empty state.
	Reset()

	// Size returns the number of resident fingerprints.
	Size() int

	// SizeBytes returns the estimated dynamic footprint of the store.
	SizeBytes() int64
}

// numShards is the fixed partitioning of the fingerprint set. Eviction
// samples shard indices uniformly at random; fingerprints are assigned to
// shards by their first byte.
const numShards = 256

var _ SigCache = (*Cache)(nil)

// Cache is a memory-bounded set of fingerprints of valid signatures.
//
// A single reader/writer lock guards the whole store: lookups run
// concurrently with each other, mutations are exclusive. The nonce is fixed
// at construction and read without synchronization.
type Cache struct {
	nonce [nonceSize]byte

	mtx    cmtsync.RWMutex
	shards [numShards]map[Fingerprint]struct{}
	size   int

	maxBytes int64
	rng      *rand.Rand

	logger  log.Logger
	metrics *Metrics
}

// CacheOption sets an optional parameter on the Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger.
func WithLogger(l log.Logger) CacheOption {
	return func(c *Cache) { c.logger = l }
}

// WithMetrics sets the metrics.
func WithMetrics(m *Metrics) CacheOption {
	return func(c *Cache) { c.metrics = m }
}

// NewCache returns a cache bounded to maxBytes of estimated dynamic usage.
// A non-positive bound disables population: Has and Remove work normally but
// Push never retains anything.
//
// The per-cache nonce is drawn here, once, from the OS entropy source;
// construction panics if that source fails, since a predictable nonce would
// let an adversary poison or probe the cache.
func NewCache(maxBytes int64, opts ...CacheOption) *Cache {
	c := &Cache{
		maxBytes: maxBytes,
		rng:      rand.NewRand(),
		logger:   log.NewNopLogger(),
		metrics:  NopMetrics(),
	}
	copy(c.nonce[:], crypto.CRandBytes(nonceSize))

	for i := range c.shards {
		c.shards[i] = make(map[Fingerprint]struct{})
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger.Info("signature cache initialized",
		"max_bytes", maxBytes,
		"capacity", capacityFor(maxBytes))

	return c
}

// Fingerprint derives the cache key for a verification triple. The same
// cache always derives the same fingerprint for the same inputs; two caches
// with different nonces derive different ones.
func (c *Cache) Fingerprint(msgHash, pubKey, sig []byte) Fingerprint {
	return computeFingerprint(c.nonce[:], msgHash, pubKey, sig)
}

func (c *Cache) Has(fp Fingerprint) bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	_, ok := c.shards[fp[0]][fp]
	if ok {
		c.metrics.Hits.Add(1)
	} else {
		c.metrics.Misses.Add(1)
	}
	return ok
}

func (c *Cache) Push(fp Fingerprint) bool {
	if c.maxBytes <= 0 {
		return false
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	shard := c.shards[fp[0]]
	if _, ok := shard[fp]; ok {
		return false
	}

	// Evict until the insert fits. A bound too small for even one entry
	// drains the store to empty and the insert still goes through.
	for c.size > 0 && dynamicUsage(c.size+1) > c.maxBytes {
		c.evictOne()
		c.metrics.Evictions.Add(1)
	}

	shard[fp] = struct{}{}
	c.size++
	c.updateSizeMetrics()

	return true
}

// evictOne deletes one arbitrary fingerprint from a uniformly random shard,
// resampling while the sampled shard is empty. Callers must hold the write
// lock and guarantee size > 0.
func (c *Cache) evictOne() {
	for {
		shard := c.shards[c.rng.Intn(numShards)]
		for fp := range shard {
			delete(shard, fp)
			c.size--
			c.logger.Debug("evicted signature cache entry", "size", c.size)
			return
		}
	}
}

func (c *Cache) Remove(fp Fingerprint) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	shard := c.shards[fp[0]]
	if _, ok := shard[fp]; ok {
		delete(shard, fp)
		c.size--
		c.updateSizeMetrics()
	}
}

func (c *Cache) Reset() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.shards {
		c.shards[i] = make(map[Fingerprint]struct{})
	}
	c.size = 0
	c.updateSizeMetrics()
}

func (c *Cache) Size() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.size
}

func (c *Cache) SizeBytes() int64 {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return dynamicUsage(c.size)
}

// updateSizeMetrics refreshes the size gauges. Callers must hold the write
// lock.
func (c *Cache) updateSizeMetrics() {
	c.metrics.Size.Set(float64(c.size))
	c.metrics.SizeBytes.Set(float64(dynamicUsage(c.size)))
}

// -------------------------------------

// NopCache is a signature cache that retains nothing.
type NopCache struct{}

var _ SigCache = (*NopCache)(nil)

func (NopCache) Fingerprint(_, _, _ []byte) Fingerprint { return Fingerprint{} }
func (NopCache) Has(Fingerprint) bool                   { return false }
func (NopCache) Push(Fingerprint) bool                  { return false }
func (NopCache) Remove(Fingerprint)                     {}
func (NopCache) Reset()                                 {}
func (NopCache) Size() int                              { return 0 }
func (NopCache) SizeBytes() int64                       { return 0 }
