package nemsign

import (
	"encoding/base32"

	"golang.org/x/crypto/ripemd160"

	"github.com/nemforge/go-nemsign/keccak"
)

// Network selects the address version byte.
type Network byte

const (
	// Mainnet is the NEM main network.
	Mainnet Network = 0x68
	// Testnet is the NEM test network.
	Testnet Network = 0x98
	// Mijin is the private-chain network.
	Mijin Network = 0x60
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Mijin:
		return "mijin"
	default:
		return "unknown"
	}
}

// Address derives the 40-character base32 account address for a public key:
// base32( version ‖ ripemd160(keccak256(pk)) ‖ checksum ), where the
// checksum is the first 4 bytes of keccak256 over the preceding 21 bytes.
func Address(pubHex string, network Network) (string, error) {
	pk, err := decodePublicKey(pubHex)
	if err != nil {
		return "", err
	}

	kd := keccak.Sum256(pk)
	r := ripemd160.New()
	r.Write(kd[:])

	payload := make([]byte, 0, 25)
	payload = append(payload, byte(network))
	payload = r.Sum(payload)

	chk := keccak.Sum256(payload)
	payload = append(payload, chk[:4]...)

	return base32.StdEncoding.EncodeToString(payload), nil
}
