// Package nemsign implements NEM's key derivation and transaction signing:
// the Ed25519 signature scheme with every SHA-512 step replaced by the
// original-padding Keccak-512, and key material carried across the API
// boundary as lowercase hex strings.
//
// The private-key format is a compatibility quirk inherited from the NIS-era
// clients and must be preserved bit-for-bit: a private key is the hex
// encoding of the first 32 bytes of Keccak-512(seed), and its decoded bytes
// are byte-reversed before any arithmetic use. Public key bytes are used in
// their encoded order, without reversal.
//
// All operations are pure functions over explicit buffers; only
// GeneratePrivateKey consumes entropy. Callers own storage of key material.
package nemsign
