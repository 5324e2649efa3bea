package memzero

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	Zero(b)
	require.Equal(t, make([]byte, 5), b)

	Zero(nil)
	Zero([]byte{})
}
