package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	nemsign "github.com/nemforge/go-nemsign"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <private-key-hex>",
		Short: "Derive the public key for a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := nemsign.DerivePublicKey(args[0])
			if err != nil {
				return err
			}
			fmt.Println(pub)
			return nil
		},
	}
}
