package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	nemsign "github.com/nemforge/go-nemsign"
)

func Execute() error {
	root := &cobra.Command{
		Use:          "nemsign",
		Short:        "NEM Ed25519/Keccak key and signature tool",
		SilenceUsage: true,
	}

	root.AddCommand(
		keygenCmd(),
		mnemonicCmd(),
		pubkeyCmd(),
		addressCmd(),
		signCmd(),
		verifyCmd(),
	)
	return root.Execute()
}

// readMessage returns the message bytes: the file contents when path is
// non-empty, stdin otherwise.
func readMessage(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func networkFromFlag(name string) (nemsign.Network, error) {
	switch name {
	case "mainnet":
		return nemsign.Mainnet, nil
	case "testnet":
		return nemsign.Testnet, nil
	case "mijin":
		return nemsign.Mijin, nil
	default:
		return 0, fmt.Errorf("unknown network %q (want mainnet, testnet or mijin)", name)
	}
}
