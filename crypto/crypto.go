package crypto

const (
	// AddressSize is the size of a pubkey address.
	AddressSize = 20
)

// Address is an address derived from a public key: the first AddressSize
// bytes of its SHA256 digest.
type Address = []byte

func AddressHash(bz []byte) Address {
	return Address(SumTruncated(bz))
}

type PubKey interface {
	Address() Address
	Bytes() []byte
	VerifySignature(msg []byte, sig []byte) bool
	Type() string
}

type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) ([]byte, error)
	PubKey() PubKey
	Type() string
}
