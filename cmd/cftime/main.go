package main

import (
	"os"

	"github.com/msto63/cftime/cmd/cftime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
