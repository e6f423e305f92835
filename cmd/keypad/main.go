package main

import (
	"os"

	"github.com/zephyrtronium/keypad/cmd/keypad/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
