// Package main is the entry point for the gematria CLI.
package main

import (
	"os"

	"github.com/mshalev/gematria/cmd/gematria/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
