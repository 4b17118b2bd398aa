package main

import (
	"os"

	"github.com/vitruves/fixgen/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
