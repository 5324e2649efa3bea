// Package hexcodec converts between raw byte buffers and the lowercase hex
// strings NEM key material is exchanged in, and provides the byte-reversal
// primitive the private-key convention requires.
package hexcodec

import (
	"encoding/hex"
	"fmt"
)

// A FormatError reports hex input that cannot be decoded: odd length, a
// non-hex character, or a decoded size other than the one required.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "hexcodec: " + e.Reason
}

// Encode returns the lowercase hex encoding of b, two characters per byte.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode converts a hex string back to bytes. It returns a *FormatError if
// the input has odd length or contains a non-hex character.
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}
	return b, nil
}

// DecodeExact decodes s and requires the result to be exactly size bytes.
func DecodeExact(s string, size int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, &FormatError{
			Reason: fmt.Sprintf("decoded %d bytes, need %d", len(b), size),
		}
	}
	return b, nil
}

// Reverse returns a new buffer holding b in reversed byte order. The input
// is not modified.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
