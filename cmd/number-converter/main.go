package main

import (
	"os"

	"number-converter/cmd/number-converter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
