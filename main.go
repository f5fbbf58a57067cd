package main

import (
	"os"

	"github.com/git-kubik/azure-architecture-map/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
