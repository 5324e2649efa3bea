package nemsign

import (
	"crypto/rand"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/tyler-smith/go-bip39"

	"github.com/nemforge/go-nemsign/hexcodec"
	"github.com/nemforge/go-nemsign/keccak"
	"github.com/nemforge/go-nemsign/memzero"
)

const (
	// SeedSize is the byte length of the random seed a key pair is derived from.
	SeedSize = 32
	// PrivateKeySize is the byte length of a decoded private key.
	PrivateKeySize = 32
	// PublicKeySize is the byte length of a decoded (compressed point) public key.
	PublicKeySize = 32
	// SignatureSize is the byte length of a signature (R ‖ S).
	SignatureSize = 64
)

// GeneratePrivateKey draws a fresh 32-byte seed from crypto/rand and returns
// the derived private key as a 64-character hex string. A failing random
// source returns ErrEntropy; there is no weaker fallback.
func GeneratePrivateKey() (string, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	defer memzero.Zero(seed)
	return PrivateKeyFromSeed(seed)
}

// PrivateKeyFromSeed derives the private key for a 32-byte seed: the hex
// encoding of the first half of Keccak-512(seed). The hex string itself, not
// the seed, is the private key in this scheme.
func PrivateKeyFromSeed(seed []byte) (string, error) {
	if len(seed) != SeedSize {
		return "", fmt.Errorf("%w, got %d", errSeedSize, len(seed))
	}
	digest := keccak.Sum512(seed)
	defer memzero.Zero(digest[:])
	return hexcodec.Encode(digest[:PrivateKeySize]), nil
}

// PrivateKeyFromMnemonic derives a private key from a BIP-39 mnemonic
// sentence. The mnemonic is checksum-validated; the first 32 bytes of the
// PBKDF2 seed feed PrivateKeyFromSeed.
func PrivateKeyFromMnemonic(mnemonic, passphrase string) (string, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return "", fmt.Errorf("nemsign: invalid mnemonic: %w", err)
	}
	defer memzero.Zero(seed)
	return PrivateKeyFromSeed(seed[:SeedSize])
}

// DerivePublicKey derives the hex-encoded public key for a private key. The
// result is deterministic: equal inputs always yield equal outputs.
func DerivePublicKey(privHex string) (string, error) {
	sk, err := decodePrivateKey(privHex)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(sk)

	a, prefix, err := expandKey(sk)
	if err != nil {
		return "", err
	}
	memzero.Zero(prefix)

	A := new(edwards25519.Point).ScalarBaseMult(a)
	return hexcodec.Encode(A.Bytes()), nil
}

// decodePrivateKey decodes the 64-char hex form and reverses the byte order.
// The reversal is the NIS-era storage convention; the arithmetic layer
// expects the opposite order from the one wallets persist.
func decodePrivateKey(s string) ([]byte, error) {
	b, err := hexcodec.DecodeExact(s, PrivateKeySize)
	if err != nil {
		return nil, err
	}
	rev := hexcodec.Reverse(b)
	memzero.Zero(b)
	return rev, nil
}

// decodePublicKey decodes the 64-char hex form. Public key bytes are used in
// encoded order; this deliberately has no reversal counterpart.
func decodePublicKey(s string) ([]byte, error) {
	return hexcodec.DecodeExact(s, PublicKeySize)
}

// expandKey hashes the reversed private-key bytes into the 64-byte expanded
// key and splits it: the clamped first half becomes the signing scalar, the
// second half is returned as nonce-prefix material. The caller must wipe the
// prefix. Raw private-key bytes are never used as a scalar directly.
func expandKey(sk []byte) (*edwards25519.Scalar, []byte, error) {
	digest := keccak.Sum512(sk)
	defer memzero.Zero(digest[:])

	clampScalarBytes(digest[:32])
	a, err := new(edwards25519.Scalar).SetBytesWithClamping(digest[:32])
	if err != nil {
		// unreachable for 32-byte input
		return nil, nil, fmt.Errorf("nemsign: scalar from expanded key: %w", err)
	}

	prefix := make([]byte, 32)
	copy(prefix, digest[32:])
	return a, prefix, nil
}

// clampScalarBytes applies the standard Ed25519 clamp to a 32-byte scalar:
// low 3 bits of the first byte cleared, bit 255 cleared, bit 254 set.
func clampScalarBytes(b []byte) {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}
