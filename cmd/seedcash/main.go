// Package main is the entry point for the SeedCash CLI.
package main

import (
	"os"

	"github.com/seedcash/seedcash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
