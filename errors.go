package nemsign

import "errors"

var (
	// ErrEntropy is returned when the system random source fails during key
	// generation. The call is fatal; there is no fallback source.
	ErrEntropy = errors.New("nemsign: entropy source unavailable")

	// ErrPublicKeyMismatch is returned by Sign when the supplied public key
	// is not the one derived from the private key.
	ErrPublicKeyMismatch = errors.New("nemsign: public key does not match private key")

	errSeedSize = errors.New("nemsign: seed must be 32 bytes")
)
