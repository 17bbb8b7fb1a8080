// Package main is the entry point for the fingerspell CLI.
package main

import (
	"os"

	"github.com/pathu11/fingerspell/cmd/fingerspell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
