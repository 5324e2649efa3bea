package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	nemsign "github.com/nemforge/go-nemsign"
	"github.com/nemforge/go-nemsign/hexcodec"
)

func verifyCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "verify <public-key-hex> <signature-hex>",
		Short: "Check a signature over a message read from --file or stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(file)
			if err != nil {
				return err
			}

			sig, err := hexcodec.Decode(args[1])
			if err != nil {
				return err
			}

			if !nemsign.Verify(msg, args[0], sig) {
				return errors.New("signature is INVALID")
			}
			fmt.Println("signature is valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the message bytes (default: stdin)")
	return cmd
}
