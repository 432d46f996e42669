package main

import (
	"os"

	"github.com/trknhr/kanarank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
