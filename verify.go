package nemsign

import (
	"filippo.io/edwards25519"

	"github.com/nemforge/go-nemsign/keccak"
)

// Verify reports whether sig is a valid signature of message under pubHex,
// by checking S·B == R + hram·A. Malformed input of any kind, including a
// non-canonical S or an undecodable point, returns false rather than an
// error or a panic.
func Verify(message []byte, pubHex string, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}

	pk, err := decodePublicKey(pubHex)
	if err != nil {
		return false
	}

	A, err := new(edwards25519.Point).SetBytes(pk)
	if err != nil {
		return false
	}

	R, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return false
	}

	S, err := new(edwards25519.Scalar).SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	h := keccak.New512()
	h.Write(sig[:32])
	h.Write(pk)
	h.Write(message)
	hram, err := new(edwards25519.Scalar).SetUniformBytes(h.Sum(nil))
	if err != nil {
		return false
	}

	// S·B - hram·A == R
	res := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(
		new(edwards25519.Scalar).Negate(hram), A, S)
	return res.Equal(R) == 1
}
