package sigcache

import (
	"github.com/ledgercore/sigcache/crypto"
)

const (
	// FingerprintSize is the size of a cache entry.
	FingerprintSize = crypto.HashSize

	// nonceSize is the size of the per-cache secret mixed into every
	// fingerprint.
	nonceSize = 32
)

// Fingerprint identifies one verified (message hash, public key, signature)
// triple. It is the only thing the cache stores.
type Fingerprint [FingerprintSize]byte

// computeFingerprint is SHA256(nonce || msgHash || pubKey || sig). The nonce
// goes in first: without it an adversary could precompute fingerprints or
// engineer collisions to poison the cache with chosen entries.
func computeFingerprint(nonce, msgHash, pubKey, sig []byte) Fingerprint {
	h := crypto.New256()
	h.Write(nonce)
	h.Write(msgHash)
	h.Write(pubKey)
	h.Write(sig)

	var fp Fingerprint
	h.Sum(fp[:0])
	return fp
}
