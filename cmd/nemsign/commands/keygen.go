package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	nemsign "github.com/nemforge/go-nemsign"
)

func keygenCmd() *cobra.Command {
	var (
		mnemonic   string
		passphrase string
		network    string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key and print the derived key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				priv string
				err  error
			)
			if mnemonic != "" {
				priv, err = nemsign.PrivateKeyFromMnemonic(mnemonic, passphrase)
			} else {
				priv, err = nemsign.GeneratePrivateKey()
			}
			if err != nil {
				return err
			}

			pub, err := nemsign.DerivePublicKey(priv)
			if err != nil {
				return err
			}

			net, err := networkFromFlag(network)
			if err != nil {
				return err
			}
			addr, err := nemsign.Address(pub, net)
			if err != nil {
				return err
			}

			fmt.Printf("private key: %s\n", priv)
			fmt.Printf("public key:  %s\n", pub)
			fmt.Printf("address:     %s (%s)\n", addr, net)
			return nil
		},
	}

	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "derive the key from a BIP-39 mnemonic instead of random entropy")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "optional BIP-39 passphrase")
	cmd.Flags().StringVar(&network, "network", "mainnet", "network for the printed address (mainnet, testnet, mijin)")
	return cmd
}
