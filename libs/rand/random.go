// Package rand provides a pseudo-random number generator seeded with OS
// randomness.
//
// None of the provided methods are suitable for cryptographic usage; they all
// utilize math/rand's prng internally. For secure randomness see the crypto
// package.
package rand

import (
	crand "crypto/rand"
	mrand "math/rand"

	cmtsync "github.com/ledgercore/sigcache/libs/sync"
)

// Rand is a prng seeded with OS randomness.
//
// All of the methods here are suitable for concurrent use. This is achieved
// by using a mutex lock on all of the provided methods.
type Rand struct {
	cmtsync.Mutex
	rand *mrand.Rand
}

func NewRand() *Rand {
	rand := &Rand{}
	rand.init()
	return rand
}

func (r *Rand) init() {
	r.reset(newSeed())
}

func (r *Rand) reset(seed int64) {
	// G404: Use of weak random number generator (math/rand instead of crypto/rand)
	//nolint:gosec
	r.rand = mrand.New(mrand.NewSource(seed))
}

func newSeed() int64 {
	bz := cRandBytes(8)
	var seed uint64
	for i := 0; i < 8; i++ {
		seed |= uint64(bz[i])
		seed <<= 8
	}
	return int64(seed)
}

// Seed resets the generator to a deterministic state. Test use only.
func (r *Rand) Seed(seed int64) {
	r.Lock()
	r.reset(seed)
	r.Unlock()
}

func (r *Rand) Uint64() uint64 {
	r.Lock()
	u64 := r.rand.Uint64()
	r.Unlock()
	return u64
}

func (r *Rand) Int63() int64 {
	r.Lock()
	i63 := r.rand.Int63()
	r.Unlock()
	return i63
}

// Intn returns, as an int, a uniform pseudo-random number in the range [0, n).
// It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	r.Lock()
	i := r.rand.Intn(n)
	r.Unlock()
	return i
}

// Bytes returns n random bytes generated from the internal prng.
func (r *Rand) Bytes(n int) []byte {
	// cRandBytes isn't guaranteed to be fast so instead
	// use random bytes generated from the internal PRNG
	bs := make([]byte, n)
	for i := 0; i < len(bs); i++ {
		bs[i] = byte(r.Int63() & 0xFF)
	}
	return bs
}

// NOTE: This relies on the os's random number generator.
// For real security, we should salt that with some seed.
// See the crypto package for a more secure reader.
func cRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	_, err := crand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}
