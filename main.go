package main

import (
	"os"

	"github.com/rahardian/soalgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
