package main

import (
	"os"

	"github.com/msto63/netrc/cmd/netrc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
