package main

import (
	"os"

	"github.com/pydevkit/frameeval/cmd/frameeval/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
