package nemsign

import (
	"github.com/nemforge/go-nemsign/hexcodec"
	"github.com/nemforge/go-nemsign/keccak"
)

// Keccak256Hex hashes data with Keccak-256 and returns the lowercase hex
// digest. The NIS-era clients exposed this helper under a SHA-256 label even
// though it always computed Keccak; callers depend on the Keccak output, so
// it is kept, under an honest name.
func Keccak256Hex(data []byte) string {
	digest := keccak.Sum256(data)
	return hexcodec.Encode(digest[:])
}
