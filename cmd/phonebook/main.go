// Package main is the entry point for the phonebook command.
package main

import (
	"fmt"
	"os"

	"github.com/jsamuelsen11/phonebook/cmd/phonebook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
