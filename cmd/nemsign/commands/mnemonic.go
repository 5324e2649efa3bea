package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
)

func mnemonicCmd() *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a BIP-39 mnemonic sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			entropy, err := bip39.NewEntropy(bits)
			if err != nil {
				return err
			}
			mnemonic, err := bip39.NewMnemonic(entropy)
			if err != nil {
				return err
			}
			fmt.Println(mnemonic)
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 256, "entropy size in bits (128-256, multiple of 32)")
	return cmd
}
