package secp256k1

import (
	"fmt"
	"io"
	"math/big"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ledgercore/sigcache/crypto"
)

const (
	KeyType = "secp256k1"

	// PrivKeySize is the size, in bytes, of a serialized private key.
	PrivKeySize = 32
	// PubKeySize is the size, in bytes, of a compressed public key.
	PubKeySize = 33
	// SignatureSize is the size, in bytes, of a serialized (r, s) signature.
	SignatureSize = 64
)

var (
	_ crypto.PrivKey = PrivKey{}
	_ crypto.PubKey  = PubKey{}
)

// PrivKey implements crypto.PrivKey.
type PrivKey []byte

// Bytes returns the serialized private key.
func (privKey PrivKey) Bytes() []byte {
	return []byte(privKey)
}

// PubKey performs the point-scalar multiplication from the privKey on the
// generator point to get the pubkey.
func (privKey PrivKey) PubKey() crypto.PubKey {
	priv, _ := secp256k1.PrivKeyFromBytes(privKey)
	return PubKey(priv.PubKey().SerializeCompressed())
}

func (PrivKey) Type() string {
	return KeyType
}

// Sign creates an ECDSA signature on curve secp256k1, using SHA256 on the msg.
// The returned signature will be of the form R || S (in lower-S form).
func (privKey PrivKey) Sign(msg []byte) ([]byte, error) {
	priv, _ := secp256k1.PrivKeyFromBytes(privKey)

	sig := ecdsa.SignCompact(priv, crypto.Sha256(msg), false)

	// remove the first byte which is the compactSigRecoveryCode
	return sig[1:], nil
}

// GenPrivKey generates a new ECDSA private key on curve secp256k1.
// It uses OS randomness to generate the private key.
func GenPrivKey() PrivKey {
	return genPrivKey(crypto.CReader())
}

// genPrivKey generates a new secp256k1 private key using the provided reader.
func genPrivKey(rand io.Reader) PrivKey {
	var privKeyBytes [PrivKeySize]byte
	d := new(big.Int)

	for {
		_, err := io.ReadFull(rand, privKeyBytes[:])
		if err != nil {
			panic(err)
		}

		d.SetBytes(privKeyBytes[:])
		// break if we found a valid point (i.e. > 0 and < N == curveOrder)
		isValidFieldElement := 0 < d.Sign() && d.Cmp(secp256k1.S256().N) < 0
		if isValidFieldElement {
			break
		}
	}

	return PrivKey(privKeyBytes[:])
}

// -------------------------------------

// PubKey implements crypto.PubKey.
// It is the compressed form of the pubkey. The first byte depends is a 0x02
// byte if the y-coordinate is the lexicographically largest of the two
// associated with the x-coordinate. Otherwise the first byte is a 0x03.
// This prefix is followed with the x-coordinate.
type PubKey []byte

// Address is the SHA256-20 of the raw pubkey bytes.
func (pubKey PubKey) Address() crypto.Address {
	if len(pubKey) != PubKeySize {
		panic("length of pubkey is incorrect")
	}
	return crypto.AddressHash(pubKey)
}

// Bytes returns the pubkey byte format.
func (pubKey PubKey) Bytes() []byte {
	return []byte(pubKey)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", []byte(pubKey))
}

func (PubKey) Type() string {
	return KeyType
}

// VerifySignature verifies a signature of the form R || S.
// It rejects signatures which are not in lower-S form.
func (pubKey PubKey) VerifySignature(msg []byte, sigStr []byte) bool {
	if len(sigStr) != SignatureSize {
		return false
	}

	pub, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	// parse the signature, will return error if it is not in lower-S form
	signature, err := signatureFromBytes(sigStr)
	if err != nil {
		return false
	}

	return signature.Verify(crypto.Sha256(msg), pub)
}

// Read Signature struct from R || S. Caller needs to ensure
// that len(sigStr) == 64.
// Rejects malleable signatures (if S value if it is over half order).
func signatureFromBytes(sigStr []byte) (*ecdsa.Signature, error) {
	var r secp256k1.ModNScalar
	if r.SetByteSlice(sigStr[:32]) {
		return nil, fmt.Errorf("invalid signature: R >= group order")
	}
	var s secp256k1.ModNScalar
	if s.SetByteSlice(sigStr[32:64]) {
		return nil, fmt.Errorf("invalid signature: S >= group order")
	}
	if s.IsOverHalfOrder() {
		return nil, fmt.Errorf("signature is not in lower-S form")
	}

	return ecdsa.NewSignature(&r, &s), nil
}
