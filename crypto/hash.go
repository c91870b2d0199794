package crypto

import (
	"hash"

	"github.com/minio/sha256-simd"
)

const (
	// HashSize is the size of a SHA256 digest.
	HashSize = sha256.Size

	// TruncatedSize is the size of an address digest.
	TruncatedSize = AddressSize
)

// New256 returns a new SHA256 hash.Hash.
func New256() hash.Hash {
	return sha256.New()
}

// Sha256 returns the SHA256 of the bz.
func Sha256(bytes []byte) []byte {
	hasher := sha256.New()
	hasher.Write(bytes)
	return hasher.Sum(nil)
}

// SumMany takes at least 1 byteslice along with a variadic
// number of other byteslices and produces the SHA256 sum from
// hashing them as if they were 1 joined slice.
func SumMany(data []byte, rest ...[]byte) []byte {
	h := sha256.New()
	h.Write(data)
	for _, data := range rest {
		h.Write(data)
	}
	return h.Sum(nil)
}

// SumTruncated returns the first TruncatedSize bytes of SHA256 of the bz.
func SumTruncated(bz []byte) []byte {
	hash := sha256.Sum256(bz)
	return hash[:TruncatedSize]
}
