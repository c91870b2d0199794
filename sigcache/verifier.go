package sigcache

import (
	"github.com/ledgercore/sigcache/crypto/ed25519"
	"github.com/ledgercore/sigcache/crypto/secp256k1"
)

// VerifyFunc is the underlying verification primitive wrapped by a
// CachingVerifier. It reports whether sig is a valid signature by pubKey over
// msgHash. Its correctness is out of the cache's scope.
type VerifyFunc func(pubKey, msgHash, sig []byte) bool

// CachingVerifier consults a SigCache before delegating to the underlying
// verification primitive.
type CachingVerifier struct {
	cache SigCache
	base  VerifyFunc
}

func NewCachingVerifier(cache SigCache, base VerifyFunc) *CachingVerifier {
	return &CachingVerifier{cache: cache, base: base}
}

// VerifySignature reports whether sig is valid for pubKey over msgHash,
// running the underlying primitive only on a cache miss.
//
// store controls retention: a successful miss is cached only when store is
// true, and a hit with store false purges the entry it benefited from, so a
// caller that asks for no persistent cache effects leaves none behind.
// Failed verifications are never cached; every call on invalid inputs
// re-executes the full check.
func (v *CachingVerifier) VerifySignature(pubKey, msgHash, sig []byte, store bool) bool {
	fp := v.cache.Fingerprint(msgHash, pubKey, sig)

	if v.cache.Has(fp) {
		if !store {
			v.cache.Remove(fp)
		}
		return true
	}

	if !v.base(pubKey, msgHash, sig) {
		return false
	}

	if store {
		v.cache.Push(fp)
	}
	return true
}

// NewEd25519Verifier returns a CachingVerifier backed by Ed25519
// verification.
func NewEd25519Verifier(cache SigCache) *CachingVerifier {
	return NewCachingVerifier(cache, func(pubKey, msgHash, sig []byte) bool {
		if len(pubKey) != ed25519.PubKeySize {
			return false
		}
		return ed25519.PubKey(pubKey).VerifySignature(msgHash, sig)
	})
}

// NewSecp256k1Verifier returns a CachingVerifier backed by secp256k1 ECDSA
// verification.
func NewSecp256k1Verifier(cache SigCache) *CachingVerifier {
	return NewCachingVerifier(cache, func(pubKey, msgHash, sig []byte) bool {
		if len(pubKey) != secp256k1.PubKeySize {
			return false
		}
		return secp256k1.PubKey(pubKey).VerifySignature(msgHash, sig)
	})
}
