package nemsign

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256Hex(t *testing.T) {
	// Keccak, not SHA3-256: the empty-input digests differ
	require.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		Keccak256Hex(nil))
	require.Equal(t,
		"4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		Keccak256Hex([]byte("abc")))
}
