// Package commands defines the nemsign CLI.
//
// Commands
//
//   - keygen    Generate a private key (random, or from a BIP-39 mnemonic)
//   - mnemonic  Generate a BIP-39 mnemonic sentence
//   - pubkey    Derive the public key for a private key
//   - address   Derive the account address for a public key
//   - sign      Sign a message read from a file or stdin
//   - verify    Check a signature over a message
//
// The signing core is stateless; each command is a single pure computation
// over its arguments, and nothing is persisted.
package commands
