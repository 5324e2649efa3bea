package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	nemsign "github.com/nemforge/go-nemsign"
)

func addressCmd() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "address <public-key-hex>",
		Short: "Derive the account address for a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := networkFromFlag(network)
			if err != nil {
				return err
			}
			addr, err := nemsign.Address(args[0], net)
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}

	cmd.Flags().StringVar(&network, "network", "mainnet", "mainnet, testnet or mijin")
	return cmd
}
