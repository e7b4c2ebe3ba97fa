package main

import (
	"os"

	"github.com/faultbook/faultbook/cmd/faultbook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
