package crypto

import (
	crand "crypto/rand"
	"io"
)

// CRandBytes returns numBytes of cryptographically secure random bytes.
// It panics if the OS entropy source fails; callers must never proceed with
// predictable randomness.
func CRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	if _, err := io.ReadFull(CReader(), b); err != nil {
		panic(err)
	}
	return b
}

// CReader returns a crand.Reader.
func CReader() io.Reader {
	return crand.Reader
}
