// Package keccak wraps the pre-standardisation Keccak hash family used by
// the NEM protocol. These are NOT the NIST SHA-3 functions: the sponge
// padding differs, so sha3.Sum256/Sum512 produce different digests.
package keccak

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

const (
	// Size256 is the byte length of a Keccak-256 digest.
	Size256 = 32
	// Size512 is the byte length of a Keccak-512 digest.
	Size512 = 64
)

// New256 returns a streaming Keccak-256 hash.
func New256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// New512 returns a streaming Keccak-512 hash.
func New512() hash.Hash {
	return sha3.NewLegacyKeccak512()
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [Size256]byte
	h.Sum(out[:0])
	return out
}

// Sum512 returns the Keccak-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	h := sha3.NewLegacyKeccak512()
	h.Write(data)
	var out [Size512]byte
	h.Sum(out[:0])
	return out
}
