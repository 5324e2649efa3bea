package main

import (
	"os"

	"github.com/nemforge/go-nemsign/cmd/nemsign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
