package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	nemsign "github.com/nemforge/go-nemsign"
	"github.com/nemforge/go-nemsign/hexcodec"
)

func signCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sign <private-key-hex>",
		Short: "Sign a message read from --file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(file)
			if err != nil {
				return err
			}

			pub, err := nemsign.DerivePublicKey(args[0])
			if err != nil {
				return err
			}

			sig, err := nemsign.Sign(msg, pub, args[0])
			if err != nil {
				return err
			}
			fmt.Println(hexcodec.Encode(sig))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the message bytes (default: stdin)")
	return cmd
}
