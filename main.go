package main

import (
	"os"

	"github.com/jkeller/etude/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
