package main

import (
	"os"

	"github.com/epirus-io/epirus-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
