package nemsign

import (
	"bytes"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/nemforge/go-nemsign/keccak"
	"github.com/nemforge/go-nemsign/memzero"
)

// Sign produces the 64-byte signature R ‖ S over message. The nonce is
// derived from the expanded key's second half and the message, so signing is
// fully deterministic: no entropy is consumed, and equal inputs always yield
// byte-identical signatures.
//
// pubHex must be the public key derived from privHex; a mismatching key is
// rejected with ErrPublicKeyMismatch before any signing arithmetic, so the
// hash transcript never contains an untrusted public key.
func Sign(message []byte, pubHex, privHex string) ([]byte, error) {
	sk, err := decodePrivateKey(privHex)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(sk)

	pk, err := decodePublicKey(pubHex)
	if err != nil {
		return nil, err
	}

	a, prefix, err := expandKey(sk)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(prefix)

	A := new(edwards25519.Point).ScalarBaseMult(a)
	if !bytes.Equal(pk, A.Bytes()) {
		return nil, ErrPublicKeyMismatch
	}

	// r = Keccak-512(prefix ‖ message) reduced mod the group order. The
	// reduction happens on the full 64-byte digest, before any arithmetic.
	h := keccak.New512()
	h.Write(prefix)
	h.Write(message)
	rDigest := h.Sum(nil)
	r, err := new(edwards25519.Scalar).SetUniformBytes(rDigest)
	memzero.Zero(rDigest)
	if err != nil {
		return nil, fmt.Errorf("nemsign: nonce reduction: %w", err)
	}

	R := new(edwards25519.Point).ScalarBaseMult(r)
	RBytes := R.Bytes()

	// hram = Keccak-512(R ‖ pk ‖ message) reduced mod the group order.
	h = keccak.New512()
	h.Write(RBytes)
	h.Write(pk)
	h.Write(message)
	hram, err := new(edwards25519.Scalar).SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("nemsign: challenge reduction: %w", err)
	}

	// S = r + hram*a mod the group order.
	S := new(edwards25519.Scalar).MultiplyAdd(hram, a, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, RBytes...)
	sig = append(sig, S.Bytes()...)
	return sig, nil
}
