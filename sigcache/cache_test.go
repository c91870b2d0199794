package sigcache

import (
	"encoding/binary"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fingerprintN builds a distinct fingerprint per index, spread across shards.
func fingerprintN(i int) Fingerprint {
	var fp Fingerprint
	binary.BigEndian.PutUint64(fp[:8], uint64(i))
	fp[0] = byte(i) // spread across shards
	return fp
}

func TestCachePushHasRemove(t *testing.T) {
	cache := NewCache(CacheSizeBytes(1))
	fp := cache.Fingerprint([]byte("hash"), []byte("key"), []byte("sig"))

	assert.False(t, cache.Has(fp))
	assert.True(t, cache.Push(fp))
	assert.True(t, cache.Has(fp))
	assert.Equal(t, 1, cache.Size())

	// pushing an existing entry is a no-op
	assert.False(t, cache.Push(fp))
	assert.Equal(t, 1, cache.Size())

	cache.Remove(fp)
	assert.False(t, cache.Has(fp))
	assert.Equal(t, 0, cache.Size())

	// removing an absent entry is a no-op
	cache.Remove(fp)
	assert.Equal(t, 0, cache.Size())
}

func TestCacheReset(t *testing.T) {
	cache := NewCache(CacheSizeBytes(1))
	for i := 0; i < 10; i++ {
		cache.Push(fingerprintN(i))
	}
	require.Equal(t, 10, cache.Size())

	cache.Reset()
	assert.Equal(t, 0, cache.Size())
	for i := 0; i < 10; i++ {
		assert.False(t, cache.Has(fingerprintN(i)))
	}
}

func TestCacheDisabledPopulation(t *testing.T) {
	for _, maxBytes := range []int64{0, -1, CacheSizeBytes(0), CacheSizeBytes(-5)} {
		cache := NewCache(maxBytes)
		fp := fingerprintN(1)

		assert.False(t, cache.Push(fp))
		assert.Equal(t, 0, cache.Size())
		assert.False(t, cache.Has(fp))

		// lookups and removals stay functional
		cache.Remove(fp)
		assert.False(t, cache.Has(fp))
	}
}

func TestCacheEvictionBound(t *testing.T) {
	const capacity = 100
	maxBytes := dynamicUsage(capacity)
	cache := NewCache(maxBytes)

	// overfill by 3x
	for i := 0; i < 3*capacity; i++ {
		cache.Push(fingerprintN(i))
		require.LessOrEqual(t, cache.SizeBytes(), maxBytes, "bound exceeded after push %d", i)
	}

	assert.LessOrEqual(t, cache.Size(), capacity)
	assert.Greater(t, cache.Size(), 0)
}

func TestCacheEvictionKeepsArbitrarySubset(t *testing.T) {
	const capacity = 50
	cache := NewCache(dynamicUsage(capacity))

	for i := 0; i < 2*capacity; i++ {
		cache.Push(fingerprintN(i))
	}

	// Which entries survive is unspecified; membership must still be a
	// subset of what was pushed.
	survivors := 0
	for i := 0; i < 2*capacity; i++ {
		if cache.Has(fingerprintN(i)) {
			survivors++
		}
	}
	assert.Equal(t, cache.Size(), survivors)
	assert.LessOrEqual(t, survivors, capacity)
}

func TestCacheSizeBytesTracksUsage(t *testing.T) {
	cache := NewCache(CacheSizeBytes(1))
	require.Equal(t, dynamicUsage(0), cache.SizeBytes())

	cache.Push(fingerprintN(1))
	cache.Push(fingerprintN(2))
	require.Equal(t, dynamicUsage(2), cache.SizeBytes())

	cache.Remove(fingerprintN(1))
	require.Equal(t, dynamicUsage(1), cache.SizeBytes())
}

func TestCacheSizeBytesHelper(t *testing.T) {
	assert.EqualValues(t, 1<<20, CacheSizeBytes(1))
	assert.EqualValues(t, 40<<20, CacheSizeBytes(40))
	assert.EqualValues(t, 0, CacheSizeBytes(0))
	assert.EqualValues(t, 0, CacheSizeBytes(-3))
}

func TestCacheFingerprintDeterminism(t *testing.T) {
	cache := NewCache(CacheSizeBytes(1))

	fp1 := cache.Fingerprint([]byte("hash"), []byte("key"), []byte("sig"))
	fp2 := cache.Fingerprint([]byte("hash"), []byte("key"), []byte("sig"))
	assert.Equal(t, fp1, fp2)

	fp3 := cache.Fingerprint([]byte("hash"), []byte("key"), []byte("gis"))
	assert.NotEqual(t, fp1, fp3)
}

func TestCacheNonceSeparation(t *testing.T) {
	c1 := NewCache(CacheSizeBytes(1))
	c2 := NewCache(CacheSizeBytes(1))

	fp1 := c1.Fingerprint([]byte("hash"), []byte("key"), []byte("sig"))
	fp2 := c2.Fingerprint([]byte("hash"), []byte("key"), []byte("sig"))
	assert.NotEqual(t, fp1, fp2)
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache(dynamicUsage(1000))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				fp := fingerprintN(g*500 + i)
				cache.Push(fp)
				cache.Has(fp)
				if i%3 == 0 {
					cache.Remove(fp)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.SizeBytes(), dynamicUsage(1000))
}

func TestNopCache(t *testing.T) {
	var cache NopCache
	fp := fingerprintN(7)

	assert.False(t, cache.Push(fp))
	assert.False(t, cache.Has(fp))
	assert.Equal(t, 0, cache.Size())
	assert.EqualValues(t, 0, cache.SizeBytes())
	cache.Remove(fp)
	cache.Reset()
}
