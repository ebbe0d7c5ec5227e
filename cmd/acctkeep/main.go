package main

import (
	"os"

	"acctkeep/cmd/acctkeep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
