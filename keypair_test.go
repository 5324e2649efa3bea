package nemsign

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nemforge/go-nemsign/hexcodec"
)

// Key pairs from the published NEM test vectors, plus the degenerate
// all-zero seed as a fixed regression anchor.
var keyPairVectors = []struct {
	priv, pub string
}{
	{
		priv: "575dbb3062267eff57c970a336ebbc8fbcfe12c5bd3ed7bc11eb0481d7704ced",
		pub:  "c5f54ba980fcbb657dbaaa42700539b207873e134d2375efeab5f1ab52f87844",
	},
	{
		priv: "5b0e3fa5d3b49a79022d7c1e121ba1cbbf4db5821f47ab8c708ef88defc29bfe",
		pub:  "96eb2a145211b1b7ab5f0d4b14f8abc8d695c7aee31a3cfc2d4881313c68eea3",
	},
	{
		// derived from the all-zero seed
		priv: "0f6f7226432c21d4dfa2a1538a1fdc72ee1faf405a60e5f408b344a2f5aab2dd",
		pub:  "81e0fd0cbfeb6109af858eaced36a3baa2306cc3dc0567039e5b99f5a7fb9a29",
	},
}

func TestPrivateKeyFromSeed(t *testing.T) {
	priv, err := PrivateKeyFromSeed(make([]byte, SeedSize))
	require.NoError(t, err)
	require.Equal(t, "0f6f7226432c21d4dfa2a1538a1fdc72ee1faf405a60e5f408b344a2f5aab2dd", priv)
}

func TestPrivateKeyFromSeedBadLength(t *testing.T) {
	_, err := PrivateKeyFromSeed(make([]byte, 31))
	require.Error(t, err)

	_, err = PrivateKeyFromSeed(nil)
	require.Error(t, err)
}

func TestDerivePublicKey(t *testing.T) {
	for _, tv := range keyPairVectors {
		pub, err := DerivePublicKey(tv.priv)
		require.NoError(t, err)
		require.Equal(t, tv.pub, pub)
	}
}

func TestDerivePublicKeyStable(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)

	first, err := DerivePublicKey(priv)
	require.NoError(t, err)
	second, err := DerivePublicKey(priv)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDerivePublicKeyMalformed(t *testing.T) {
	for _, priv := range []string{
		"",
		"575dbb3062267eff57c970a336ebbc8fbcfe12c5bd3ed7bc11eb0481d7704ce",    // 63 chars
		"575dbb3062267eff57c970a336ebbc8fbcfe12c5bd3ed7bc11eb0481d7704cedff", // 66 chars
		"575dbb3062267eff57c970a336ebbc8fbcfe12c5bd3ed7bc11eb0481d7704czz",   // bad digit
	} {
		_, err := DerivePublicKey(priv)
		require.Error(t, err, "input %q", priv)

		var ferr *hexcodec.FormatError
		require.True(t, errors.As(err, &ferr), "input %q", priv)
	}
}

func TestGeneratePrivateKey(t *testing.T) {
	a, err := GeneratePrivateKey()
	require.NoError(t, err)
	require.Len(t, a, 2*PrivateKeySize)

	b, err := GeneratePrivateKey()
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	// a generated key must be usable as-is
	_, err = DerivePublicKey(a)
	require.NoError(t, err)
}

func TestPrivateKeyFromMnemonic(t *testing.T) {
	const mnemonic = "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"

	priv, err := PrivateKeyFromMnemonic(mnemonic, "TREZOR")
	require.NoError(t, err)
	require.Equal(t, "c8a5e8d48b8dedaf6b8455c13f76dbefc093df4780bcc3a4958eaf7aacf63bf5", priv)

	pub, err := DerivePublicKey(priv)
	require.NoError(t, err)
	require.Equal(t, "078bdf554f8cfe28d885ed1711807a5b41c6cea603c8c9af4483487dd441d050", pub)

	_, err = PrivateKeyFromMnemonic("not a valid mnemonic sentence", "")
	require.Error(t, err)
}

func TestClampScalarBytes(t *testing.T) {
	for i := 0; i < 32; i++ {
		b := make([]byte, 32)
		_, err := rand.Read(b)
		require.NoError(t, err)

		clampScalarBytes(b)
		require.Zero(t, b[0]&7, "low 3 bits must be clear")
		require.Zero(t, b[31]&128, "bit 255 must be clear")
		require.EqualValues(t, 64, b[31]&64, "bit 254 must be set")
	}
}

// The signer re-derives the expanded key instead of caching it; both
// derivations must agree for the same private key.
func TestExpandKeyDeterministic(t *testing.T) {
	sk, err := decodePrivateKey(keyPairVectors[0].priv)
	require.NoError(t, err)

	a1, prefix1, err := expandKey(sk)
	require.NoError(t, err)
	a2, prefix2, err := expandKey(sk)
	require.NoError(t, err)

	require.Equal(t, 1, a1.Equal(a2))
	require.Equal(t, prefix1, prefix2)
}

func TestDecodePrivateKeyReverses(t *testing.T) {
	sk, err := decodePrivateKey(keyPairVectors[0].priv)
	require.NoError(t, err)

	direct, err := hexcodec.Decode(keyPairVectors[0].priv)
	require.NoError(t, err)
	require.Equal(t, hexcodec.Reverse(direct), sk)
}
